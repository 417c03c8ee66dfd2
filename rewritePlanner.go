package main

import "path/filepath"

// ImportRequest is one visited import declaration.
type ImportRequest struct {
	Source     string
	Specifiers []ImportSpecifier
	SourcePath string // file containing the import, empty when unknown
	BaseDir    string // resolves relative sources when SourcePath is empty
}

// Dir is the directory relative sources are resolved against.
func (r ImportRequest) Dir() string {
	if r.SourcePath != "" {
		return filepath.Dir(r.SourcePath)
	}
	return r.BaseDir
}

// NamedFile binds one enumerated file to its derived name and generated namespace reference.
type NamedFile struct {
	File      CandidateFile
	Name      string
	Ref       Identifier
	Specifier string // module source of the emitted import
}

// Binding is a local name taken from the aggregate object. An empty Property binds
// the aggregate itself.
type Binding struct {
	Local    Identifier
	Property string
}

type RewritePlan struct {
	Mode        PathMode
	CopyExports bool // copy every export key instead of assigning the namespace
	Files       []NamedFile
	Aggregate   Identifier // empty when the import has no specifiers
	Bindings    []Binding
}

// PlanRewrite names every file, allocates references from uids and works out how
// the original specifiers bind to the aggregate.
func PlanRewrite(req ImportRequest, classification PathClassification, files []CandidateFile, nameTransform NameTransform, uids UidGenerator) RewritePlan {
	plan := RewritePlan{
		Mode:        classification.Mode,
		CopyExports: classification.ExplicitWildcard,
		Files:       make([]NamedFile, 0, len(files)),
	}

	sourcePathKnown := req.SourcePath != ""
	for _, file := range files {
		leaf := file.Leaf()
		plan.Files = append(plan.Files, NamedFile{
			File:      file,
			Name:      nameTransform(leaf),
			Ref:       uids.GenerateUid(leaf),
			Specifier: classification.ModuleSpecifier(file, sourcePathKnown),
		})
	}

	if len(req.Specifiers) == 0 {
		return plan
	}

	plan.Aggregate = uids.GenerateUid("dirImport")
	plan.Bindings = make([]Binding, 0, len(req.Specifiers))
	for _, spec := range req.Specifiers {
		if spec.IsType {
			// type-only names have no runtime value
			continue
		}
		switch spec.Kind {
		case DefaultSpecifier, NamespaceSpecifier:
			plan.Bindings = append(plan.Bindings, Binding{Local: Identifier(spec.Local)})
		case NamedSpecifier:
			plan.Bindings = append(plan.Bindings, Binding{Local: Identifier(spec.Local), Property: spec.Imported})
		}
	}
	return plan
}

package main

import (
	"io"

	"github.com/charmbracelet/log"
)

type DirImportOptions struct {
	Exts          []string // module extensions without the dot, defaults to js, mjs, jsx
	NoStrip       bool     // keep extensions in path segments
	SnakeCase     bool
	ListTransform ListTransform
}

// DirImportRule expands imports of whole directories into per-file imports.
type DirImportRule struct {
	Options  DirImportOptions
	Resolver ModuleResolver
	Logger   *log.Logger
}

func NewDirImportRule(options DirImportOptions, resolver ModuleResolver, logger *log.Logger) *DirImportRule {
	if resolver == nil {
		resolver = NewNodeResolver(options.Exts...)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &DirImportRule{Options: options, Resolver: resolver, Logger: logger}
}

// ImportReport describes what happened to one import declaration.
type ImportReport struct {
	Source string
	Skip   SkipReason
	Mode   PathMode
	Files  []NamedFile
}

// Expand classifies the request and enumerates its files without touching any source.
func (r *DirImportRule) Expand(req ImportRequest) (PathClassification, []CandidateFile, SkipReason, error) {
	classification, skip := ClassifyImportPath(req.Source, req.Dir(), r.Resolver)
	if skip != SkipNone {
		return classification, nil, skip, nil
	}

	files, err := GetModuleFiles(classification.CheckPath, r.Options.Exts, r.Options.NoStrip, classification.Recursive())
	if err != nil {
		return classification, nil, SkipNone, err
	}
	if r.Options.ListTransform != nil {
		files = r.Options.ListTransform(files)
	}
	if len(files) == 0 {
		return classification, nil, SkipEmptyExpansion, nil
	}
	return classification, files, SkipNone, nil
}

// VisitImportDeclaration rewrites the import at path when it names a directory.
// sourcePath is the importing file; baseDir stands in for its directory when
// sourcePath is empty. Nothing is spliced unless the whole expansion succeeds.
func (r *DirImportRule) VisitImportDeclaration(path *StatementPath, sourcePath string, baseDir string, uids UidGenerator) (ImportReport, error) {
	node := path.Node
	report := ImportReport{Source: node.Source}

	switch {
	case node.IsTypeOnly || onlyTypeSpecifiers(node.Specifiers):
		report.Skip = SkipTypeOnly
	case node.Attributes != "":
		report.Skip = SkipAttributes
	}
	if report.Skip != SkipNone {
		r.Logger.Debug("import skipped", "source", node.Source, "reason", report.Skip)
		return report, nil
	}

	req := ImportRequest{Source: node.Source, Specifiers: node.Specifiers, SourcePath: sourcePath, BaseDir: baseDir}
	classification, files, skip, err := r.Expand(req)
	report.Mode = classification.Mode
	if err != nil {
		return report, err
	}
	if skip != SkipNone {
		report.Skip = skip
		r.Logger.Debug("import skipped", "source", node.Source, "reason", skip)
		return report, nil
	}

	plan := PlanRewrite(req, classification, files, nameTransformFor(r.Options.SnakeCase), uids)
	EmitStatements(plan).Splice(path)

	report.Files = plan.Files
	r.Logger.Debug("import expanded", "source", node.Source, "mode", classification.Mode, "files", len(plan.Files))
	return report, nil
}

// onlyTypeSpecifiers reports whether every specifier carries an inline `type`
// modifier, which makes the whole import type-only.
func onlyTypeSpecifiers(specifiers []ImportSpecifier) bool {
	if len(specifiers) == 0 {
		return false
	}
	for _, spec := range specifiers {
		if !spec.IsType {
			return false
		}
	}
	return true
}

package main

import (
	"fmt"
	"os"
)

type TransformResult struct {
	Code    string
	Changed bool
	Imports []ImportReport
}

// Expanded returns the reports of imports that were rewritten.
func (r TransformResult) Expanded() []ImportReport {
	expanded := make([]ImportReport, 0, len(r.Imports))
	for _, imp := range r.Imports {
		if imp.Skip == SkipNone {
			expanded = append(expanded, imp)
		}
	}
	return expanded
}

// Transformer runs DirImportRule over every import declaration of a file.
type Transformer struct {
	Rule *DirImportRule
}

func NewTransformer(rule *DirImportRule) *Transformer {
	return &Transformer{Rule: rule}
}

// TransformCode rewrites code as if it lived at sourcePath. Any failing import
// fails the whole file and no change is returned.
func (t *Transformer) TransformCode(code []byte, sourcePath string) (TransformResult, error) {
	return t.transform(code, sourcePath, "")
}

// TransformSource rewrites code whose file is unknown, like stdin. Relative imports
// resolve against baseDir and keep the specifier style of the import.
func (t *Transformer) TransformSource(code []byte, baseDir string) (TransformResult, error) {
	return t.transform(code, "", baseDir)
}

func (t *Transformer) transform(code []byte, sourcePath string, baseDir string) (TransformResult, error) {
	declarations := ParseImportDeclarations(code)
	result := TransformResult{
		Code:    string(code),
		Imports: make([]ImportReport, 0, len(declarations)),
	}
	if len(declarations) == 0 {
		return result, nil
	}

	scope := NewScopeForCode(code)
	changes := make([]Change, 0, len(declarations))
	for _, decl := range declarations {
		path := NewStatementPath(decl, code)
		report, err := t.Rule.VisitImportDeclaration(path, sourcePath, baseDir, scope)
		if err != nil {
			return TransformResult{Code: string(code)}, fmt.Errorf("%s: import %q: %w", displayPath(sourcePath), decl.Source, err)
		}
		result.Imports = append(result.Imports, report)
		if change, ok := path.Change(); ok {
			changes = append(changes, change)
		}
	}

	if len(changes) > 0 {
		result.Code = applyChangesToContent(string(code), changes)
		result.Changed = true
	}
	return result, nil
}

// TransformFile reads and rewrites filePath without writing it back.
func (t *Transformer) TransformFile(filePath string) (TransformResult, []Change, error) {
	code, err := os.ReadFile(filePath)
	if err != nil {
		return TransformResult{}, nil, err
	}
	result, err := t.TransformCode(code, filePath)
	if err != nil {
		return result, nil, err
	}
	if !result.Changed {
		return result, nil, nil
	}
	// one change over the whole file keeps ApplyFileChanges idempotent per file
	return result, []Change{{Start: 0, End: int32(len(code)), Text: result.Code}}, nil
}

func displayPath(sourcePath string) string {
	if sourcePath == "" {
		return "<stdin>"
	}
	return sourcePath
}

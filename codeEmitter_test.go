package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmitSideEffectImports(t *testing.T) {
	plan := RewritePlan{Files: []NamedFile{
		{Name: "a", Ref: "_a", Specifier: "./dir/a"},
		{Name: "b", Ref: "_b", Specifier: "./dir/b"},
	}}

	r := EmitStatements(plan)

	assert.Empty(t, r.Before)
	assert.Empty(t, r.After)
	assert.Equal(t, "import \"./dir/a\";\nimport \"./dir/b\";", PrintStatements(r.Statements()))
}

func TestEmitAggregateAssignments(t *testing.T) {
	plan := RewritePlan{
		Files: []NamedFile{
			{Name: "a", Ref: "_a", Specifier: "./dir/a"},
			{Name: "myFile", Ref: "_myFile", Specifier: "./dir/my-file"},
		},
		Aggregate: "_dirImport",
		Bindings:  []Binding{{Local: "Foo"}, {Local: "a", Property: "a"}},
	}

	expected := `const _dirImport = {};
import * as _a from "./dir/a";
import * as _myFile from "./dir/my-file";
_dirImport.a = _a;
_dirImport.myFile = _myFile;
const Foo = _dirImport;
const a = _dirImport.a;`
	assert.Equal(t, expected, PrintStatements(EmitStatements(plan).Statements()))
}

func TestEmitCopyLoops(t *testing.T) {
	plan := RewritePlan{
		Mode:        PathModeWildcardFlat,
		CopyExports: true,
		Files:       []NamedFile{{Name: "a", Ref: "_a", Specifier: "./dir/a"}},
		Aggregate:   "_dirImport",
		Bindings:    []Binding{{Local: "Foo"}},
	}

	expected := `const _dirImport = {};
import * as _a from "./dir/a";
for (let key in _a) {
  _dirImport[key === "default" ? "a" : key] = _a[key];
}
const Foo = _dirImport;`
	assert.Equal(t, expected, PrintStatements(EmitStatements(plan).Statements()))
}

func TestEmitNameCollisionLastWriteWins(t *testing.T) {
	plan := RewritePlan{
		Files: []NamedFile{
			{Name: "fooBar", Ref: "_fooBar", Specifier: "./dir/foo-bar"},
			{Name: "fooBar", Ref: "_foo_bar", Specifier: "./dir/foo_bar"},
		},
		Aggregate: "_dirImport",
		Bindings:  []Binding{{Local: "Foo"}},
	}

	r := EmitStatements(plan)
	require.Len(t, r.After, 3)
	assert.Equal(t, "_dirImport.fooBar = _fooBar;", r.After[0].String())
	assert.Equal(t, "_dirImport.fooBar = _foo_bar;", r.After[1].String())
}

type recordingSplicer struct {
	calls []string
}

func (s *recordingSplicer) InsertBefore(statements ...Statement) {
	for _, st := range statements {
		s.calls = append(s.calls, "before "+st.String())
	}
}

func (s *recordingSplicer) InsertAfter(statements ...Statement) {
	for _, st := range statements {
		s.calls = append(s.calls, "after "+st.String())
	}
}

func (s *recordingSplicer) ReplaceWithMultiple(statements []Statement) {
	s.calls = append(s.calls, "replace "+PrintStatements(statements))
}

func TestReplacementSpliceFeedsAfterBackToFront(t *testing.T) {
	plan := RewritePlan{
		Files:     []NamedFile{{Name: "a", Ref: "_a", Specifier: "./dir/a"}},
		Aggregate: "_dirImport",
		Bindings:  []Binding{{Local: "Foo"}},
	}
	splicer := &recordingSplicer{}

	EmitStatements(plan).Splice(splicer)

	assert.Equal(t, []string{
		"before const _dirImport = {};",
		"after const Foo = _dirImport;",
		"after _dirImport.a = _a;",
		`replace import * as _a from "./dir/a";`,
	}, splicer.calls)
}

func TestReplacementSpliceOnStatementPathKeepsOrder(t *testing.T) {
	plan := RewritePlan{
		Files: []NamedFile{
			{Name: "a", Ref: "_a", Specifier: "./dir/a"},
			{Name: "b", Ref: "_b", Specifier: "./dir/b"},
		},
		Aggregate: "_dirImport",
		Bindings:  []Binding{{Local: "Foo"}, {Local: "b", Property: "b"}},
	}
	r := EmitStatements(plan)
	path := newTestPath(t, `import Foo, { b } from './dir';`)

	r.Splice(path)

	assert.Equal(t, PrintStatements(r.Statements()), path.Text())
}

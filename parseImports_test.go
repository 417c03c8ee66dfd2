package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseSingle(t *testing.T, code string) ImportDeclaration {
	t.Helper()
	decls := ParseImportDeclarations([]byte(code))
	require.Len(t, decls, 1, "code: %s", code)
	return decls[0]
}

func TestParseSideEffectImport(t *testing.T) {
	code := `import './dir'`
	decl := parseSingle(t, code)

	assert.Equal(t, "./dir", decl.Source)
	assert.Empty(t, decl.Specifiers)
	assert.Equal(t, uint32(0), decl.Start)
	assert.Equal(t, uint32(len(code)), decl.End)
}

func TestParseStatementSpanIncludesSemicolon(t *testing.T) {
	code := "const a = 1;\nimport x from \"./dir\";\nconst b = 2;"
	decl := parseSingle(t, code)

	assert.Equal(t, `import x from "./dir";`, code[decl.Start:decl.End])
	assert.Equal(t, "./dir", code[decl.SourceStart:decl.SourceEnd])
}

func TestParseSpecifiers(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		expected []ImportSpecifier
	}{
		{
			name:     "default",
			code:     `import Foo from './dir'`,
			expected: []ImportSpecifier{{Kind: DefaultSpecifier, Imported: "default", Local: "Foo"}},
		},
		{
			name:     "namespace",
			code:     `import * as Foo from './dir'`,
			expected: []ImportSpecifier{{Kind: NamespaceSpecifier, Imported: "*", Local: "Foo"}},
		},
		{
			name: "named with alias",
			code: `import { a, b as c } from './dir'`,
			expected: []ImportSpecifier{
				{Kind: NamedSpecifier, Imported: "a", Local: "a"},
				{Kind: NamedSpecifier, Imported: "b", Local: "c"},
			},
		},
		{
			name: "default and named",
			code: `import Foo, { bar } from './dir'`,
			expected: []ImportSpecifier{
				{Kind: DefaultSpecifier, Imported: "default", Local: "Foo"},
				{Kind: NamedSpecifier, Imported: "bar", Local: "bar"},
			},
		},
		{
			name: "default and namespace",
			code: `import Foo, * as All from './dir'`,
			expected: []ImportSpecifier{
				{Kind: DefaultSpecifier, Imported: "default", Local: "Foo"},
				{Kind: NamespaceSpecifier, Imported: "*", Local: "All"},
			},
		},
		{
			name:     "string name",
			code:     `import { "my-file" as myFile } from './dir'`,
			expected: []ImportSpecifier{{Kind: NamedSpecifier, Imported: "my-file", Local: "myFile"}},
		},
		{
			name: "multiline with comments",
			code: "import {\n  a, // first\n  /* second */ b,\n} from './dir';",
			expected: []ImportSpecifier{
				{Kind: NamedSpecifier, Imported: "a", Local: "a"},
				{Kind: NamedSpecifier, Imported: "b", Local: "b"},
			},
		},
		{
			name:     "inline type modifier",
			code:     `import { type A, b } from './dir'`,
			expected: []ImportSpecifier{{Kind: NamedSpecifier, Imported: "A", Local: "A", IsType: true}, {Kind: NamedSpecifier, Imported: "b", Local: "b"}},
		},
		{
			name:     "dollar identifiers",
			code:     `import $ from './dir'`,
			expected: []ImportSpecifier{{Kind: DefaultSpecifier, Imported: "default", Local: "$"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decl := parseSingle(t, tt.code)
			assert.Equal(t, "./dir", decl.Source)
			assert.Equal(t, tt.expected, decl.Specifiers)
		})
	}
}

func TestParseTypeOnlyImports(t *testing.T) {
	t.Run("import type", func(t *testing.T) {
		decl := parseSingle(t, `import type { A } from './dir'`)
		assert.True(t, decl.IsTypeOnly)
	})

	t.Run("default import named type", func(t *testing.T) {
		decl := parseSingle(t, `import type from './dir'`)
		assert.False(t, decl.IsTypeOnly)
		assert.Equal(t, []ImportSpecifier{{Kind: DefaultSpecifier, Imported: "default", Local: "type"}}, decl.Specifiers)
	})

	t.Run("default named type with named imports", func(t *testing.T) {
		decl := parseSingle(t, `import type, { a } from './dir'`)
		assert.False(t, decl.IsTypeOnly)
		assert.Len(t, decl.Specifiers, 2)
	})
}

func TestParseImportAttributes(t *testing.T) {
	code := `import data from './data.json' with { type: 'json' };`
	decl := parseSingle(t, code)

	assert.Equal(t, "with { type: 'json' }", decl.Attributes)
	assert.Equal(t, uint32(len(code)), decl.End)
}

func TestParseIgnoresNonDeclarations(t *testing.T) {
	tests := []struct {
		name string
		code string
	}{
		{"dynamic import", `const m = import('./dir')`},
		{"import meta", `const url = import.meta.url`},
		{"require", `const m = require('./dir')`},
		{"export from", `export { a } from './dir'`},
		{"inside string", `const s = "import x from './dir'"`},
		{"inside template", "const s = `import x from './dir'`"},
		{"inside line comment", `// import x from './dir'`},
		{"inside block comment", `/* import x from './dir' */`},
		{"inside function body", "function f() {\n  import x from './dir'\n}"},
		{"identifier suffix", `reimport from './dir'`},
		{"member access", `loader.import('./dir')`},
		{"declare module block", "declare module 'x' {\n  import y from './dir'\n}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, ParseImportDeclarations([]byte(tt.code)))
		})
	}
}

func TestParseMultipleImportsKeepsOrder(t *testing.T) {
	code := `import a from './a'
import './side-effect'
import * as b from "../b";
export const x = 1
import { c } from '/abs/c'`

	decls := ParseImportDeclarations([]byte(code))
	require.Len(t, decls, 4)

	sources := make([]string, 0, len(decls))
	for _, d := range decls {
		sources = append(sources, d.Source)
	}
	assert.Equal(t, []string{"./a", "./side-effect", "../b", "/abs/c"}, sources)
}

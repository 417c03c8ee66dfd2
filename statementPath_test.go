package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPath(t *testing.T, code string) *StatementPath {
	t.Helper()
	decls := ParseImportDeclarations([]byte(code))
	require.Len(t, decls, 1)
	return NewStatementPath(decls[0], []byte(code))
}

func TestStatementPathUntouched(t *testing.T) {
	path := newTestPath(t, `import x from './x';`)

	assert.False(t, path.Modified())
	_, ok := path.Change()
	assert.False(t, ok)
}

func TestStatementPathInsertAfterStacksInFront(t *testing.T) {
	path := newTestPath(t, `import x from './x';`)

	path.InsertAfter(VariableDeclaration{Kind: "const", Name: "b", Init: Identifier("x")})
	path.InsertAfter(VariableDeclaration{Kind: "const", Name: "a", Init: Identifier("x")})

	assert.Equal(t, "import x from './x';\nconst a = x;\nconst b = x;", path.Text())
}

func TestStatementPathSplices(t *testing.T) {
	code := "before();\nimport x from './x';\nafter();"
	path := newTestPath(t, code)

	path.InsertBefore(VariableDeclaration{Kind: "const", Name: "_agg", Init: ObjectExpression{}})
	path.InsertAfter(VariableDeclaration{Kind: "const", Name: "x", Init: Identifier("_agg")})
	path.ReplaceWithMultiple([]Statement{
		ImportDeclarationStatement{Namespace: "_a", Source: "./x/a"},
		ImportDeclarationStatement{Namespace: "_b", Source: "./x/b"},
	})

	change, ok := path.Change()
	require.True(t, ok)
	assert.Equal(t, int32(10), change.Start)
	assert.Equal(t, int32(30), change.End)

	expected := "before();\n" +
		"const _agg = {};\n" +
		"import * as _a from \"./x/a\";\n" +
		"import * as _b from \"./x/b\";\n" +
		"const x = _agg;\n" +
		"after();"
	assert.Equal(t, expected, applyChangesToContent(code, []Change{change}))
}

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNodeResolverExtensions(t *testing.T) {
	r := NewNodeResolver("mjs", ".jsx", "js", "")
	assert.Equal(t, []string{".js", ".json", ".node", ".mjs", ".jsx"}, r.Extensions)
}

func TestNodeResolverResolve(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root,
		"file.js",
		"plain/a.js",
		"withIndex/index.js",
		"withIndex/b.js",
		"withMain/lib/entry.js",
		"withMainDir/lib/index.js",
		"brokenMain/a.js",
		"mjsIndex/index.mjs",
	)
	require.NoError(t, os.WriteFile(filepath.Join(root, "withMain", "package.json"), []byte(`{"main": "lib/entry"}`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "withMainDir", "package.json"), []byte("{\n  // comment\n  \"main\": \"./lib\",\n}"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "brokenMain", "package.json"), []byte(`{"main": "missing.js"}`), 0644))

	resolver := NewNodeResolver()

	tests := []struct {
		path     string
		resolves bool
	}{
		{"file", true},
		{"file.js", true},
		{"plain", false},
		{"withIndex", true},
		{"withMain", true},
		{"withMainDir", true},
		{"brokenMain", false},
		{"mjsIndex", false},
		{"missing", false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.resolves, resolver.Resolve(filepath.Join(root, tt.path)))
		})
	}

	t.Run("extra extensions", func(t *testing.T) {
		assert.True(t, NewNodeResolver("mjs").Resolve(filepath.Join(root, "mjsIndex")))
	})
}

func TestResolverFunc(t *testing.T) {
	var seen string
	r := ResolverFunc(func(p string) bool {
		seen = p
		return true
	})

	assert.True(t, r.Resolve("/x"))
	assert.Equal(t, "/x", seen)
}

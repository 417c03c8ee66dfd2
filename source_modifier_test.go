package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyChangesToContent(t *testing.T) {
	content := `import a from './a';
import b from './b';`
	// "import a from './a';" spans 0..20, "import b from './b';" spans 21..41

	tests := []struct {
		name     string
		changes  []Change
		expected string
	}{
		{
			name:     "single replacement",
			changes:  []Change{{Start: 0, End: 20, Text: `import "./a/x";`}},
			expected: "import \"./a/x\";\nimport b from './b';",
		},
		{
			name: "unordered changes are applied by position",
			changes: []Change{
				{Start: 21, End: 41, Text: "B"},
				{Start: 0, End: 20, Text: "A"},
			},
			expected: "A\nB",
		},
		{
			name: "nested change loses to the enclosing one",
			changes: []Change{
				{Start: 7, End: 8, Text: "z"},
				{Start: 0, End: 20, Text: "A"},
			},
			expected: "A\nimport b from './b';",
		},
		{
			name: "overlap tie goes to the earliest start",
			changes: []Change{
				{Start: 10, End: 30, Text: "second"},
				{Start: 0, End: 20, Text: "first"},
			},
			expected: "first\nimport b from './b';",
		},
		{
			name:     "out of range change is ignored",
			changes:  []Change{{Start: 30, End: 99, Text: "x"}},
			expected: content,
		},
		{
			name:     "no changes",
			changes:  []Change{},
			expected: content,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, applyChangesToContent(content, tt.changes))
		})
	}
}

func TestApplyChangesDoesNotReorderInput(t *testing.T) {
	changes := []Change{{Start: 21, End: 41, Text: "B"}, {Start: 0, End: 20, Text: "A"}}
	applyChangesToContent("import a from './a';\nimport b from './b';", changes)

	assert.Equal(t, int32(21), changes[0].Start)
}

func TestApplyFileChanges(t *testing.T) {
	tmpDir := t.TempDir()
	filePath := filepath.Join(tmpDir, "index.js")
	require.NoError(t, os.WriteFile(filePath, []byte("import x from './x';"), 0600))
	untouched := filepath.Join(tmpDir, "other.js")
	require.NoError(t, os.WriteFile(untouched, []byte("keep"), 0644))

	err := ApplyFileChanges(map[string][]Change{
		filePath:  {{Start: 7, End: 8, Text: "y"}},
		untouched: nil,
	})
	require.NoError(t, err)

	content, err := os.ReadFile(filePath)
	require.NoError(t, err)
	assert.Equal(t, "import y from './x';", string(content))

	info, err := os.Stat(filePath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	content, err = os.ReadFile(untouched)
	require.NoError(t, err)
	assert.Equal(t, "keep", string(content))
}

func TestApplyFileChangesMissingFile(t *testing.T) {
	err := ApplyFileChanges(map[string][]Change{
		filepath.Join(t.TempDir(), "missing.js"): {{Start: 0, End: 0, Text: "x"}},
	})
	assert.Error(t, err)
}

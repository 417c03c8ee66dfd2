package main

import (
	"path/filepath"
	"testing"
)

func TestResolveAbsolutePath(t *testing.T) {
	cwd := filepath.FromSlash("/project")

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"relative", "src/index.js", filepath.FromSlash("/project/src/index.js")},
		{"dot segments", "./src/../lib", filepath.FromSlash("/project/lib")},
		{"absolute", filepath.FromSlash("/other/./file.js"), filepath.FromSlash("/other/file.js")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveAbsolutePath(cwd, tt.input); got != tt.expected {
				t.Errorf("ResolveAbsolutePath() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRelativeToCwd(t *testing.T) {
	cwd := filepath.FromSlash("/project")

	if got := RelativeToCwd(cwd, filepath.FromSlash("/project/src/a.js")); got != filepath.FromSlash("src/a.js") {
		t.Errorf("RelativeToCwd() = %v, want src/a.js", got)
	}
	outside := filepath.FromSlash("/elsewhere/a.js")
	if got := RelativeToCwd(cwd, outside); got != outside {
		t.Errorf("RelativeToCwd() = %v, want %v", got, outside)
	}
}

func TestPadRight(t *testing.T) {
	if got := PadRight("ab", ' ', 4); got != "ab  " {
		t.Errorf("PadRight() = %q", got)
	}
	if got := PadRight("abcdef", ' ', 4); got != "abcdef" {
		t.Errorf("PadRight() = %q", got)
	}
}

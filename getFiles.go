package main

import (
	"os"
	"path/filepath"
	"strings"
)

// sourceExts are the files `transform` looks at when given a directory.
var sourceExts = map[string]struct{}{
	".js":  {},
	".jsx": {},
	".mjs": {},
	".cjs": {},
	".ts":  {},
	".tsx": {},
	".mts": {},
	".cts": {},
}

func isSourceFile(name string) bool {
	if strings.HasSuffix(name, ".d.ts") {
		return false
	}
	_, ok := sourceExts[filepath.Ext(name)]
	return ok
}

func parseGitIgnore(fileContent string, dirPath string) []GlobMatcher {
	lines := strings.Split(fileContent, "\n")
	patterns := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		// negations are not supported
		if trimmed != "" && !strings.HasPrefix(trimmed, "#") && !strings.HasPrefix(trimmed, "!") {
			patterns = append(patterns, trimmed)
		}
	}
	return CreateGlobMatchers(patterns, dirPath)
}

// FindGitIgnoreMatchersUpToRepoRoot collects .gitignore rules from dirPath up to
// the directory holding .git, or the filesystem root.
func FindGitIgnoreMatchersUpToRepoRoot(dirPath string) []GlobMatcher {
	var matchers []GlobMatcher
	for {
		if content, err := os.ReadFile(filepath.Join(dirPath, ".gitignore")); err == nil {
			matchers = append(matchers, parseGitIgnore(string(content), dirPath)...)
		}

		if gitDir, err := os.Stat(filepath.Join(dirPath, ".git")); err == nil && gitDir.IsDir() {
			return matchers
		}

		parent := filepath.Dir(dirPath)
		if parent == dirPath {
			return matchers
		}
		dirPath = parent
	}
}

// GetSourceFiles walks directory and returns JS/TS sources not excluded by
// parentMatchers or any nested .gitignore. node_modules is always skipped.
func GetSourceFiles(directory string, existingFiles []string, parentMatchers []GlobMatcher) []string {
	entries, err := os.ReadDir(directory)
	if err != nil {
		return existingFiles
	}

	for _, entry := range entries {
		entryName := entry.Name()
		entryPath := filepath.Join(directory, entryName)

		if entry.IsDir() {
			if entryName == "node_modules" || entryName == ".git" || MatchesAnyGlobMatcher(entryPath, parentMatchers) {
				continue
			}
			matchers := parentMatchers
			if content, err := os.ReadFile(filepath.Join(entryPath, ".gitignore")); err == nil {
				nested := parseGitIgnore(string(content), entryPath)
				if len(nested) > 0 {
					matchers = append(append([]GlobMatcher{}, parentMatchers...), nested...)
				}
			}
			existingFiles = GetSourceFiles(entryPath, existingFiles, matchers)
			continue
		}

		if isSourceFile(entryName) && !MatchesAnyGlobMatcher(entryPath, parentMatchers) {
			existingFiles = append(existingFiles, entryPath)
		}
	}

	return existingFiles
}

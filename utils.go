package main

import (
	"os"
	"path/filepath"
	"strings"
)

func ResolveAbsoluteCwd(cwd string) string {
	if filepath.IsAbs(cwd) {
		return filepath.Clean(cwd)
	}
	workingDir, _ := os.Getwd()
	return filepath.Join(workingDir, cwd)
}

// ResolveAbsolutePath resolves p against cwd unless it is already absolute.
func ResolveAbsolutePath(cwd string, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(cwd, p)
}

// RelativeToCwd shortens p for display; paths outside cwd are returned unchanged.
func RelativeToCwd(cwd string, p string) string {
	rel, err := filepath.Rel(cwd, p)
	if err != nil || strings.HasPrefix(rel, "..") {
		return p
	}
	return rel
}

func PadRight(text string, char byte, length int) string {
	if len(text) >= length {
		return text
	}
	return text + strings.Repeat(string(char), length-len(text))
}

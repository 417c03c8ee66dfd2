package main

import (
	"path/filepath"
	"runtime"
	"strings"
)

// NormalizePathForInternal converts an OS path into forward-slash form so it can be
// matched against glob patterns. It is a no-op outside Windows.
// Examples:
// - "C:\\project\\src\\file.ts" -> "C:/project/src/file.ts"
// - "C:\\project\\src\\" -> "C:/project/src"
func NormalizePathForInternal(p string) string {
	if runtime.GOOS != "windows" || p == "" {
		return p
	}
	s := filepath.ToSlash(filepath.Clean(p))
	if len(s) > 1 && strings.HasSuffix(s, "/") {
		s = strings.TrimRight(s, "/")
	}
	return s
}

// NormalizeGlobPattern normalizes glob pattern separators to forward slashes.
func NormalizeGlobPattern(pattern string) string {
	if runtime.GOOS != "windows" || pattern == "" {
		return pattern
	}
	return strings.ReplaceAll(pattern, `\`, "/")
}

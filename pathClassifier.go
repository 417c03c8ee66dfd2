package main

import (
	"os"
	"path"
	"path/filepath"
	"strings"
)

type PathMode uint8

const (
	PathModePlain             PathMode = iota
	PathModeWildcardFlat               // trailing `/*`
	PathModeWildcardRecursive          // trailing `/**`
)

func (m PathMode) String() string {
	switch m {
	case PathModePlain:
		return "plain"
	case PathModeWildcardFlat:
		return "wildcard"
	case PathModeWildcardRecursive:
		return "recursive"
	}
	return "unknown"
}

// SkipReason tells why an import was left untouched. SkipNone means it was expanded.
type SkipReason uint8

const (
	SkipNone SkipReason = iota
	SkipNotEligible
	SkipResolvesAsModule
	SkipTargetMissing
	SkipEmptyExpansion
	SkipTypeOnly
	SkipAttributes
)

func (r SkipReason) String() string {
	switch r {
	case SkipNone:
		return "expanded"
	case SkipNotEligible:
		return "not eligible"
	case SkipResolvesAsModule:
		return "resolves as module"
	case SkipTargetMissing:
		return "not a directory"
	case SkipEmptyExpansion:
		return "empty expansion"
	case SkipTypeOnly:
		return "type-only import"
	case SkipAttributes:
		return "import attributes"
	}
	return "unknown"
}

type PathClassification struct {
	Mode PathMode
	// ExplicitWildcard is set by a trailing `/*`, including the `/**/*` form, and
	// switches aggregation to copying every export.
	ExplicitWildcard bool
	CleanedPath      string // source without the wildcard suffix
	CheckPath        string // absolute filesystem path of the directory
	IsAbsolute       bool
	PathPrefix       string // first source segment plus "/"
}

// Recursive reports whether nested directories are expanded.
func (c PathClassification) Recursive() bool {
	return c.Mode == PathModeWildcardRecursive
}

// ModuleSpecifier builds the import source of one enumerated file.
// Relative results keep their leading `./` so they never turn into package imports.
func (c PathClassification) ModuleSpecifier(file CandidateFile, sourcePathKnown bool) string {
	joined := path.Join(append([]string{c.CleanedPath}, file...)...)
	if c.IsAbsolute || joined == ".." || strings.HasPrefix(joined, "../") {
		return joined
	}
	if !sourcePathKnown {
		return c.PathPrefix + joined
	}
	return "./" + joined
}

// ClassifyImportPath decides whether src names a directory to expand.
// Relative sources are resolved against fromDir, or the process working directory
// when fromDir is empty.
func ClassifyImportPath(src string, fromDir string, resolver ModuleResolver) (PathClassification, SkipReason) {
	if src == "" || (src[0] != '.' && src[0] != '/') {
		return PathClassification{}, SkipNotEligible
	}

	c := PathClassification{
		PathPrefix: strings.Split(src, "/")[0] + "/",
		IsAbsolute: src[0] == '/',
	}

	cleaned := src
	if strings.HasSuffix(cleaned, "/*") {
		c.ExplicitWildcard = true
		cleaned = strings.TrimSuffix(cleaned, "/*")
	}
	recursive := strings.HasSuffix(cleaned, "/**")
	cleaned = strings.TrimSuffix(cleaned, "/**")
	c.CleanedPath = cleaned

	switch {
	case recursive:
		c.Mode = PathModeWildcardRecursive
	case c.ExplicitWildcard:
		c.Mode = PathModeWildcardFlat
	default:
		c.Mode = PathModePlain
	}

	checkPath := filepath.FromSlash(cleaned)
	if !c.IsAbsolute {
		checkPath = filepath.Join(fromDir, checkPath)
	}
	if abs, err := filepath.Abs(checkPath); err == nil {
		checkPath = abs
	}
	c.CheckPath = checkPath

	if resolver != nil && resolver.Resolve(checkPath) {
		return c, SkipResolvesAsModule
	}

	info, err := os.Stat(checkPath)
	if err != nil || !info.IsDir() {
		return c, SkipTargetMissing
	}

	return c, SkipNone
}

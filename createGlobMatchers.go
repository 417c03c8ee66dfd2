package main

import (
	"slices"
	"strings"

	"github.com/gobwas/glob"
)

type GlobMatcher struct {
	globPattern glob.Glob
	inputString string
	// plain names (no `/` or `*`) match any file or directory with that name, like .gitignore
	matchesAnyFileOrDirWithName bool
	patternRoot                 string
}

func compileGlob(pattern string) (glob.Glob, error) {
	return glob.Compile(NormalizeGlobPattern(pattern), '/')
}

// CreateGlobMatchers compiles gitignore-like patterns rooted at patternsRoot.
// Patterns that fail to compile are dropped.
func CreateGlobMatchers(patterns []string, patternsRoot string) []GlobMatcher {
	globMatchers := make([]GlobMatcher, 0, len(patterns))
	root := NormalizePathForInternal(patternsRoot)
	if root != "" && !strings.HasSuffix(root, "/") {
		root += "/"
	}

	for _, pattern := range patterns {
		pattern = strings.TrimPrefix(pattern, "/")
		plainName := !strings.Contains(pattern, "/") && !strings.Contains(pattern, "*")

		if strings.HasSuffix(pattern, "/") && !strings.Contains(pattern, "*") {
			// trailing `/` matches the whole directory
			pattern = "**" + pattern + "**"
		} else if !plainName && !strings.Contains(pattern, "/") {
			// wildcard names without a slash match at any depth
			pattern = "**/" + pattern
		}

		compiled, err := compileGlob(pattern)
		if err != nil {
			continue
		}
		globMatchers = append(globMatchers, GlobMatcher{
			globPattern:                 compiled,
			inputString:                 pattern,
			patternRoot:                 root,
			matchesAnyFileOrDirWithName: plainName,
		})

		// `**/` does not match zero directories in gobwas/glob
		if strings.HasPrefix(pattern, "**/") {
			rootPattern := strings.TrimPrefix(pattern, "**/")
			if compiledRoot, err := compileGlob(rootPattern); err == nil {
				globMatchers = append(globMatchers, GlobMatcher{
					globPattern: compiledRoot,
					inputString: rootPattern,
					patternRoot: root,
				})
			}
		}
	}
	return globMatchers
}

func (m GlobMatcher) Match(filePath string) bool {
	relative := strings.TrimPrefix(NormalizePathForInternal(filePath), m.patternRoot)
	if m.globPattern.Match(relative) {
		return true
	}
	if !m.matchesAnyFileOrDirWithName {
		return false
	}
	return relative == m.inputString ||
		strings.HasSuffix(relative, "/"+m.inputString) ||
		strings.HasPrefix(relative, m.inputString+"/") ||
		strings.Contains(relative, "/"+m.inputString+"/")
}

func MatchesAnyGlobMatcher(filePath string, matchers []GlobMatcher) bool {
	for _, matcher := range matchers {
		if matcher.Match(filePath) {
			return true
		}
	}
	return false
}

// NewExcludeListTransform drops candidates whose segment path matches any pattern.
func NewExcludeListTransform(patterns []string) (ListTransform, error) {
	for _, pattern := range patterns {
		if _, err := compileGlob(pattern); err != nil {
			return nil, err
		}
	}
	matchers := CreateGlobMatchers(patterns, "")
	return func(files []CandidateFile) []CandidateFile {
		kept := make([]CandidateFile, 0, len(files))
		for _, file := range files {
			if !MatchesAnyGlobMatcher(file.String(), matchers) {
				kept = append(kept, file)
			}
		}
		return kept
	}, nil
}

// SortListTransform orders candidates by their joined segment path. Ties keep
// directory order.
func SortListTransform(files []CandidateFile) []CandidateFile {
	sorted := slices.Clone(files)
	slices.SortStableFunc(sorted, func(a, b CandidateFile) int {
		return strings.Compare(a.String(), b.String())
	})
	return sorted
}

// ComposeListTransforms applies transforms in order. It returns nil when there is
// nothing to apply.
func ComposeListTransforms(transforms ...ListTransform) ListTransform {
	active := make([]ListTransform, 0, len(transforms))
	for _, t := range transforms {
		if t != nil {
			active = append(active, t)
		}
	}
	if len(active) == 0 {
		return nil
	}
	return func(files []CandidateFile) []CandidateFile {
		for _, t := range active {
			files = t(files)
		}
		return files
	}
}

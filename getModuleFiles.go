package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// ErrEnumeration marks a failure to read a directory being expanded.
var ErrEnumeration = errors.New("directory enumeration failed")

// CandidateFile is the path of one module relative to the expanded directory,
// split into segments.
type CandidateFile []string

// Leaf is the last segment, the one names are derived from.
func (f CandidateFile) Leaf() string {
	if len(f) == 0 {
		return ""
	}
	return f[len(f)-1]
}

func (f CandidateFile) String() string {
	return strings.Join(f, "/")
}

// ListTransform rewrites the enumerated list before names are derived.
type ListTransform func(files []CandidateFile) []CandidateFile

var defaultModuleExts = []string{"js", "mjs", "jsx"}

// splitFileName splits a directory entry name into base name and extension the way
// Node's path.parse does: a leading dot does not start an extension.
func splitFileName(fileName string) (name string, ext string) {
	idx := strings.LastIndexByte(fileName, '.')
	if idx <= 0 {
		return fileName, ""
	}
	return fileName[:idx], fileName[idx+1:]
}

// GetModuleFiles lists module files under parent in directory order. Entries whose
// extension is in exts become candidates; other directories are descended into only
// when recursive is set.
func GetModuleFiles(parent string, exts []string, nostrip bool, recursive bool) ([]CandidateFile, error) {
	if exts == nil {
		exts = defaultModuleExts
	}
	return getModuleFiles(parent, exts, nostrip, recursive, nil, []CandidateFile{})
}

func getModuleFiles(parent string, exts []string, nostrip bool, recursive bool, segments []string, files []CandidateFile) ([]CandidateFile, error) {
	entries, err := readDirUnsorted(parent)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEnumeration, err)
	}

	for _, entry := range entries {
		child := entry.Name()
		name, ext := splitFileName(child)

		if slices.Contains(exts, ext) {
			leaf := name
			if nostrip {
				leaf = child
			}
			files = append(files, appendSegment(segments, leaf))
			continue
		}

		if !recursive {
			continue
		}

		childPath := filepath.Join(parent, child)
		info, err := os.Stat(childPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrEnumeration, err)
		}
		if info.IsDir() {
			files, err = getModuleFiles(childPath, exts, nostrip, recursive, appendSegment(segments, child), files)
			if err != nil {
				return nil, err
			}
		}
	}

	return files, nil
}

// readDirUnsorted returns entries in the order the filesystem reports them,
// unlike os.ReadDir which sorts by name.
func readDirUnsorted(dir string) ([]os.DirEntry, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return f.ReadDir(-1)
}

func appendSegment(segments []string, segment string) CandidateFile {
	file := make(CandidateFile, 0, len(segments)+1)
	file = append(file, segments...)
	return append(file, segment)
}

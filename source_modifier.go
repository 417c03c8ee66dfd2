package main

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// Change represents a text replacement in a file.
// Start and End are byte offsets in the original file content.
type Change struct {
	Start int32
	End   int32
	Text  string
}

// ApplyFileChanges rewrites every file in changesByFile with its changes applied.
func ApplyFileChanges(changesByFile map[string][]Change) error {
	for filePath, changes := range changesByFile {
		if err := applyChangesToFile(filePath, changes); err != nil {
			return err
		}
	}
	return nil
}

func applyChangesToFile(filePath string, changes []Change) error {
	if len(changes) == 0 {
		return nil
	}
	content, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	info, err := os.Stat(filePath)
	if err != nil {
		return err
	}

	newContent := applyChangesToContent(string(content), changes)
	if err := os.WriteFile(filePath, []byte(newContent), info.Mode().Perm()); err != nil {
		return fmt.Errorf("write %s: %w", filePath, err)
	}
	return nil
}

// applyChangesToContent applies non-overlapping changes. When changes overlap the
// longest one wins, ties going to the earliest start.
func applyChangesToContent(content string, changes []Change) string {
	if len(changes) == 0 {
		return content
	}

	ordered := make([]Change, len(changes))
	copy(ordered, changes)
	sort.SliceStable(ordered, func(i, j int) bool {
		lenI := ordered[i].End - ordered[i].Start
		lenJ := ordered[j].End - ordered[j].Start
		if lenI != lenJ {
			return lenI > lenJ
		}
		return ordered[i].Start < ordered[j].Start
	})

	var picked []Change
	for _, c := range ordered {
		if c.Start < 0 || c.End < c.Start || int(c.End) > len(content) {
			continue
		}
		overlaps := false
		for _, p := range picked {
			if c.Start < p.End && p.Start < c.End {
				overlaps = true
				break
			}
		}
		if !overlaps {
			picked = append(picked, c)
		}
	}

	sort.SliceStable(picked, func(i, j int) bool {
		return picked[i].Start < picked[j].Start
	})

	var builder strings.Builder
	lastPos := int32(0)
	for _, c := range picked {
		if c.Start > lastPos {
			builder.WriteString(content[lastPos:c.Start])
		}
		builder.WriteString(c.Text)
		lastPos = c.End
	}

	if int(lastPos) < len(content) {
		builder.WriteString(content[lastPos:])
	}

	return builder.String()
}

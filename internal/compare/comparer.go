package compare

import (
	"fmt"
	"sort"
	"strings"

	"srcmerge/internal/hash"
	"srcmerge/internal/tree"
)

type ChangeType string

const (
	Added    ChangeType = "ADDED"
	Modified ChangeType = "MODIFIED"
	Deleted  ChangeType = "DELETED"
)

// FileData summarizes one merged file for comparison.
type FileData struct {
	Hash  string
	Size  int
	Lines int
}

type Change struct {
	Type    ChangeType
	Path    string
	OldData *FileData
	NewData *FileData
}

type CompareResult struct {
	Added    []Change
	Modified []Change
	Deleted  []Change
}

func (r *CompareResult) HasChanges() bool {
	return len(r.Added) > 0 || len(r.Modified) > 0 || len(r.Deleted) > 0
}

func summarize(content string) *FileData {
	lines := 0
	if content != "" {
		lines = strings.Count(content, "\n") + 1
	}
	return &FileData{Hash: hash.HashContent(content), Size: len(content), Lines: lines}
}

func index(root *tree.Node) map[string]*FileData {
	files := make(map[string]*FileData)
	for _, f := range root.Files() {
		files[f.Path] = summarize(f.Content)
	}
	return files
}

// Compare reports file level differences between two merge documents. Paths
// are relative to each document's root folder so documents produced from
// differently named roots can still be compared. Either side may be nil.
func Compare(oldTree, newTree *tree.Node) *CompareResult {
	result := &CompareResult{
		Added:    make([]Change, 0),
		Modified: make([]Change, 0),
		Deleted:  make([]Change, 0),
	}

	oldFiles := index(oldTree)
	newFiles := index(newTree)

	paths := make([]string, 0, len(oldFiles)+len(newFiles))
	for path := range oldFiles {
		paths = append(paths, path)
	}
	for path := range newFiles {
		if _, seen := oldFiles[path]; !seen {
			paths = append(paths, path)
		}
	}
	sort.Strings(paths)

	for _, path := range paths {
		before, inOld := oldFiles[path]
		after, inNew := newFiles[path]
		switch {
		case !inOld:
			result.Added = append(result.Added, Change{Type: Added, Path: path, NewData: after})
		case !inNew:
			result.Deleted = append(result.Deleted, Change{Type: Deleted, Path: path, OldData: before})
		case before.Hash != after.Hash:
			result.Modified = append(result.Modified, Change{Type: Modified, Path: path, OldData: before, NewData: after})
		}
	}

	return result
}

// FormatReport renders result as a plain text listing grouped by change type.
func FormatReport(result *CompareResult) string {
	if !result.HasChanges() {
		return "No changes detected."
	}

	var report strings.Builder
	report.WriteString("Changes detected:\n\n")

	section := func(title string, changes []Change, line func(Change)) {
		if len(changes) == 0 {
			return
		}
		fmt.Fprintf(&report, "%s (%d files):\n", title, len(changes))
		for _, change := range changes {
			line(change)
		}
		report.WriteString("\n")
	}

	section("ADDED", result.Added, func(c Change) {
		fmt.Fprintf(&report, "  + %s (%d lines, hash %s)\n", c.Path, c.NewData.Lines, c.NewData.Hash)
	})
	section("MODIFIED", result.Modified, func(c Change) {
		fmt.Fprintf(&report, "  ~ %s (%d -> %d lines, %+d chars)\n",
			c.Path, c.OldData.Lines, c.NewData.Lines, c.NewData.Size-c.OldData.Size)
	})
	section("DELETED", result.Deleted, func(c Change) {
		fmt.Fprintf(&report, "  - %s (%d lines, hash %s)\n", c.Path, c.OldData.Lines, c.OldData.Hash)
	})

	fmt.Fprintf(&report, "Summary: %d added, %d modified, %d deleted\n",
		len(result.Added), len(result.Modified), len(result.Deleted))

	return report.String()
}

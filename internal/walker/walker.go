// Package walker prints the directory listing of what a merge would include,
// without reading any file content.
package walker

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"srcmerge/internal/tree"
)

type Entry struct {
	Depth int
	Name  string
	IsDir bool
}

type WalkResult struct {
	Entries []Entry
	Files   int
	Errors  []error
}

// Walk lists root with the same inclusion rules and pruning as the merge.
// Unreadable directories are recorded in Errors and treated as empty.
func Walk(fs afero.Fs, rootPath string, policy *tree.Policy) (*WalkResult, error) {
	info, err := fs.Stat(rootPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", tree.ErrRootNotFound, rootPath)
		}
		return nil, fmt.Errorf("failed to access root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", tree.ErrRootNotDir, rootPath)
	}

	result := &WalkResult{
		Entries: make([]Entry, 0),
		Errors:  make([]error, 0),
	}
	result.Entries = walkDir(fs, rootPath, ".", 0, policy, result)
	return result, nil
}

func walkDir(fs afero.Fs, dir, rel string, depth int, policy *tree.Policy, result *WalkResult) []Entry {
	infos, err := afero.ReadDir(fs, dir)
	if err != nil {
		result.Errors = append(result.Errors, err)
		return nil
	}

	var below []Entry
	for _, info := range infos {
		name := info.Name()
		full := filepath.Join(dir, name)
		childRel := path.Join(rel, name)

		if info.Mode()&os.ModeSymlink != 0 {
			if info, err = fs.Stat(full); err != nil {
				result.Errors = append(result.Errors, err)
				continue
			}
		}

		switch {
		case info.IsDir():
			if !policy.IncludeDir(name) {
				continue
			}
			below = append(below, walkDir(fs, full, childRel, depth+1, policy, result)...)
		case info.Mode().IsRegular():
			if !policy.IncludeFile(childRel) {
				continue
			}
			below = append(below, Entry{Depth: depth + 1, Name: name})
			result.Files++
		}
	}

	if len(below) == 0 {
		return nil
	}
	return append([]Entry{{Depth: depth, Name: filepath.Base(dir), IsDir: true}}, below...)
}

// Print writes the listing as an indented list, two spaces per level.
// Directories end with a slash.
func Print(w io.Writer, result *WalkResult) error {
	for _, e := range result.Entries {
		name := e.Name
		if e.IsDir {
			name += "/"
		}
		if _, err := fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", e.Depth), name); err != nil {
			return err
		}
	}
	return nil
}

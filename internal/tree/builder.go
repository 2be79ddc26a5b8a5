package tree

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"

	"srcmerge/internal/normalize"
	"srcmerge/internal/progress"
	"srcmerge/internal/textread"
)

var (
	ErrRootNotFound = errors.New("root directory does not exist")
	ErrRootNotDir   = errors.New("root path is not a directory")
)

// Builder walks a directory depth first and assembles the merge document.
// Siblings are visited in name order, so the same filesystem always yields
// the same document.
type Builder struct {
	Fs         afero.Fs
	Policy     *Policy
	Classifier *normalize.Classifier
	Logger     *log.Logger
	Stats      *progress.Stats
}

func NewBuilder(fs afero.Fs, policy *Policy, classifier *normalize.Classifier, logger *log.Logger) *Builder {
	return &Builder{
		Fs:         fs,
		Policy:     policy,
		Classifier: classifier,
		Logger:     logger,
		Stats:      progress.New(),
	}
}

// Build returns the folder node for root, or nil when nothing below root is
// eligible. Only a missing or non-directory root is reported as an error;
// everything else is logged and skipped.
func (b *Builder) Build(root string) (*Node, error) {
	info, err := b.Fs.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRootNotFound, root)
		}
		return nil, fmt.Errorf("failed to access root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrRootNotDir, root)
	}

	return b.folder(root, "."), nil
}

func (b *Builder) folder(dir, rel string) *Node {
	b.Logger.Debug("Processing folder", "path", rel)

	entries, err := afero.ReadDir(b.Fs, dir)
	if err != nil {
		if os.IsPermission(err) {
			b.Logger.Warn("Permission denied reading directory, skipping", "path", dir)
		} else {
			b.Logger.Error("Error reading directory", "path", dir, "err", err)
		}
		b.Stats.ReadErrors++
		return nil
	}

	var children []*Node
	for _, entry := range entries {
		name := entry.Name()
		full := filepath.Join(dir, name)
		childRel := path.Join(rel, name)

		if entry.Mode()&os.ModeSymlink != 0 {
			target, err := b.Fs.Stat(full)
			if err != nil {
				b.Logger.Warn("Broken symbolic link, skipping", "path", full, "err", err)
				continue
			}
			entry = target
		}

		switch {
		case entry.IsDir():
			if !b.Policy.IncludeDir(name) {
				b.Logger.Debug("Excluding directory", "name", name)
				b.Stats.SkippedDirs++
				continue
			}
			if sub := b.folder(full, childRel); sub != nil {
				children = append(children, sub)
			}

		case entry.Mode().IsRegular():
			if !b.Policy.IncludeFile(childRel) {
				b.Logger.Debug("Excluding file", "name", name, "ext", Extension(name))
				b.Stats.SkippedFiles++
				continue
			}
			children = append(children, NewFile(name, b.content(full, name)))
			b.Stats.Files++
		}
	}

	node := NewFolder(filepath.Base(dir), children)
	if node == nil {
		b.Logger.Debug("Skipping empty or fully excluded folder", "path", rel)
		return nil
	}

	b.Stats.Folders++
	b.Logger.Info("Finished processing folder", "path", rel, "items", len(children))
	return node
}

func (b *Builder) content(full, name string) string {
	text, outcome := textread.Read(b.Fs, full, b.Logger)
	switch outcome {
	case textread.Failed:
		b.Stats.ReadErrors++
		return text
	case textread.FellBack:
		b.Stats.DecodeFallbacks++
	}

	n := b.Classifier.Classify(Extension(name))
	if n == nil {
		return text
	}
	out, ok := normalize.Apply(n, text, full, b.Logger)
	if ok {
		b.Stats.Normalized++
	} else {
		b.Stats.PassedThrough++
	}
	return out
}

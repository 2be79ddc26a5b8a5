package tree

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Policy decides which directories and files take part in the merge.
type Policy struct {
	// ExcludeDirs holds lowercase directory names skipped at any depth.
	ExcludeDirs map[string]struct{}
	// AllowedExts holds lowercase extensions with leading dot.
	AllowedExts map[string]struct{}
	// Skip holds doublestar patterns matched against the slash separated
	// path relative to the root. Patterns without a slash match base names.
	Skip []string
}

func (p *Policy) IncludeDir(name string) bool {
	_, excluded := p.ExcludeDirs[strings.ToLower(name)]
	return !excluded
}

func (p *Policy) IncludeFile(relPath string) bool {
	name := path.Base(relPath)
	if _, ok := p.AllowedExts[Extension(name)]; !ok {
		return false
	}
	return !p.skipped(relPath)
}

func (p *Policy) skipped(relPath string) bool {
	for _, pattern := range p.Skip {
		target := relPath
		if !strings.Contains(pattern, "/") {
			target = path.Base(relPath)
		}
		if matched, err := doublestar.Match(pattern, target); err == nil && matched {
			return true
		}
	}
	return false
}

// Extension returns the lowercase final suffix of name including the dot.
// Dot files such as ".gitignore" have no extension.
func Extension(name string) string {
	trimmed := strings.TrimLeft(name, ".")
	if !strings.Contains(trimmed, ".") || strings.HasSuffix(trimmed, ".") {
		return ""
	}
	return strings.ToLower(filepath.Ext(name))
}

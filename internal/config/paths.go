package config

import (
	"path/filepath"
	"strings"
)

// ResolveRoot turns the user supplied relative path into an absolute one.
// A bare separator means the working directory itself. Existence is checked
// by the tree builder, not here.
func ResolveRoot(cwd, rel string) (string, error) {
	if rel == `\` || rel == "/" || rel == "" {
		rel = "."
	}
	if strings.Contains(rel, "..") {
		return "", ErrParentReference
	}
	if filepath.IsAbs(rel) {
		return filepath.Clean(rel), nil
	}
	return filepath.Join(cwd, rel), nil
}

// OutputPath derives the output file location. An explicit output keeps its
// directory and stem but always gets ext as suffix; otherwise the name is
// "<cwd name>.<rel with separators as dots><ext>" inside cwd.
func OutputPath(cwd, rel, output, ext string) string {
	if output != "" {
		if !filepath.IsAbs(output) {
			output = filepath.Join(cwd, output)
		}
		return strings.TrimSuffix(output, suffix(filepath.Base(output))) + ext
	}

	name := filepath.Base(cwd)
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "Root"
	}

	cleaned := strings.Trim(rel, `.\/`)
	dotted := strings.NewReplacer(`\`, ".", "/", ".").Replace(cleaned)
	dotted = strings.Trim(dotted, ".")

	base := name
	if dotted != "" {
		base = name + "." + dotted
	}
	return filepath.Join(cwd, strings.ReplaceAll(base, " ", "")+ext)
}

// suffix returns the final ".ext" of name. A leading dot or a trailing dot
// does not start a suffix, so ".hidden" and "name." have none.
func suffix(name string) string {
	i := strings.LastIndex(name, ".")
	if i <= 0 || i == len(name)-1 {
		return ""
	}
	return name[i:]
}

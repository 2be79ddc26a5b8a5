package normalize

import (
	"strings"
)

// CSharp compacts C# source line by line: trailing whitespace, blank lines,
// whole-line "//" comments and #region markers are dropped. XML doc comments
// ("///") are kept. It never fails.
type CSharp struct{}

func (CSharp) Name() string { return "csharp" }

func (CSharp) Normalize(text string) (string, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")

	kept := lines[:0]
	for _, line := range lines {
		line = strings.TrimRight(line, " \t\r\f\v")
		trimmed := strings.TrimLeft(line, " \t")
		switch {
		case trimmed == "":
			continue
		case strings.HasPrefix(trimmed, "//") && !strings.HasPrefix(trimmed, "///"):
			continue
		case isRegionDirective(trimmed):
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n"), nil
}

func isRegionDirective(line string) bool {
	if !strings.HasPrefix(line, "#") {
		return false
	}
	directive := strings.TrimLeft(line[1:], " \t")
	return strings.HasPrefix(directive, "region") || strings.HasPrefix(directive, "endregion")
}

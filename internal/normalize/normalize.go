// Package normalize strips insignificant formatting from file content before
// it is merged into the document.
//
// Every Normalizer is idempotent: running it over its own output yields the
// same text. Failures never reach the caller of Apply; the original text is
// kept instead.
package normalize

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// Normalizer compacts text written in one syntax.
type Normalizer interface {
	Name() string
	// Normalize returns the compacted text or an error when the input is not
	// valid for the syntax.
	Normalize(text string) (string, error)
}

// Apply runs n over text and falls back to text when n fails.
func Apply(n Normalizer, text, path string, logger *log.Logger) (out string, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			logger.Warn("Normalizer panicked, keeping original content", "normalizer", n.Name(), "path", path, "panic", fmt.Sprint(r))
			out, ok = text, false
		}
	}()

	logger.Debug("Normalizing content", "normalizer", n.Name(), "path", path)
	normalized, err := n.Normalize(text)
	if err != nil {
		logger.Warn("Could not normalize content, keeping original", "normalizer", n.Name(), "path", path, "err", err)
		return text, false
	}
	return normalized, true
}

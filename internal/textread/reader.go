// Package textread turns file bytes into text for the merge document.
//
// Content is decoded as strict UTF-8 first. Files that are not valid UTF-8
// are decoded with the Windows-1252 code page instead, where bytes without a
// mapping become U+FFFD. A single leading byte order mark is dropped.
package textread

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

const bom = "\ufeff"

// Fallback is the code page used when strict UTF-8 decoding fails.
var Fallback = charmap.Windows1252

// Decode converts data to text. The boolean reports whether the fallback
// code page had to be used.
func Decode(data []byte) (string, bool) {
	if utf8.Valid(data) {
		return strings.TrimPrefix(string(data), bom), false
	}

	// The code page decoder maps every byte, unassigned ones to U+FFFD, so
	// it cannot fail.
	decoded, _, _ := transform.Bytes(Fallback.NewDecoder(), data)
	return strings.TrimPrefix(string(decoded), bom), true
}

// Outcome tells how a Read went.
type Outcome int

const (
	Decoded Outcome = iota
	FellBack
	Failed
)

// Read returns the decoded content of the file at path. Read failures are
// logged and yield an empty string so the walk can continue.
func Read(fs afero.Fs, path string, logger *log.Logger) (string, Outcome) {
	logger.Debug("Reading file", "path", path)

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		logger.Error("Failed to read file", "path", path, "err", err)
		return "", Failed
	}

	text, fellBack := Decode(data)
	if fellBack {
		logger.Warn("File is not valid UTF-8, decoded with fallback code page", "path", path, "encoding", Fallback.String())
		return text, FellBack
	}
	return text, Decoded
}

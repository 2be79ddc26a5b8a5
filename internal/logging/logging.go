// Package logging builds the per-run logger handed to every component.
//
// There is no package-level logger: the command creates one with New, passes
// it down explicitly and closes it when the run ends.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// Options controls where and how much a run logs.
type Options struct {
	Verbose bool
	// LogFile, when set, receives a copy of every record.
	LogFile string
}

// New returns a logger writing to w and, if requested, to a log file. The
// returned close function must be called once the run is over.
func New(w io.Writer, opts Options) (*log.Logger, func() error, error) {
	level := log.InfoLevel
	if opts.Verbose {
		level = log.DebugLevel
	}

	closer := func() error { return nil }
	if opts.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(opts.LogFile), 0755); err != nil {
			return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.Create(opts.LogFile)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create log file: %w", err)
		}
		w = io.MultiWriter(w, f)
		closer = f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "2006-01-02 15:04:05",
		Level:           level,
	})
	return logger, closer, nil
}

// Discard returns a logger that drops everything. Used by tests and callers
// that do not care about diagnostics.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}

package progress

import (
	"fmt"
	"time"
)

// Stats counts what happened during one merge run. It is owned by a single
// run and is not safe for concurrent use.
type Stats struct {
	Folders         int
	Files           int
	SkippedDirs     int
	SkippedFiles    int
	ReadErrors      int
	DecodeFallbacks int
	Normalized      int
	PassedThrough   int
	start           time.Time
}

func New() *Stats {
	return &Stats{start: time.Now()}
}

func (s *Stats) Elapsed() time.Duration {
	return time.Since(s.start).Round(time.Millisecond)
}

// Warnings is the number of isolated failures absorbed during the walk.
func (s *Stats) Warnings() int {
	return s.ReadErrors + s.DecodeFallbacks + s.PassedThrough
}

func (s *Stats) String() string {
	return fmt.Sprintf("%d folders, %d files (%d normalized), %d dirs and %d files skipped, %d warnings in %s",
		s.Folders, s.Files, s.Normalized, s.SkippedDirs, s.SkippedFiles, s.Warnings(), s.Elapsed())
}

package progress

import (
	"strings"
	"testing"
)

func TestWarnings(t *testing.T) {
	s := New()
	s.ReadErrors = 2
	s.DecodeFallbacks = 1
	s.PassedThrough = 3
	s.SkippedFiles = 10

	if got := s.Warnings(); got != 6 {
		t.Errorf("Expected 6 warnings, got %d", got)
	}
}

func TestString(t *testing.T) {
	s := New()
	s.Folders = 2
	s.Files = 5
	s.Normalized = 3

	out := s.String()
	for _, want := range []string{"2 folders", "5 files (3 normalized)", "0 warnings"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in %q", want, out)
		}
	}
}

func TestElapsed(t *testing.T) {
	if New().Elapsed() < 0 {
		t.Error("Expected non-negative elapsed time")
	}
}

package hash

import (
	"encoding/hex"
	"testing"

	"github.com/cespare/xxhash/v2"
)

func TestHashContent(t *testing.T) {
	content := "Hello, World!"

	hash := HashContent(content)

	h := xxhash.New()
	h.Write([]byte(content))
	expected := hex.EncodeToString(h.Sum(nil))

	if hash != expected {
		t.Errorf("Hash mismatch: expected %s, got %s", expected, hash)
	}
}

func TestHashContent_Empty(t *testing.T) {
	if hash := HashContent(""); len(hash) != 16 {
		t.Errorf("Expected 16 hex characters, got %q", hash)
	}
}

func TestXXHashFunc(t *testing.T) {
	data := []byte("test data")

	hashBytes, err := XXHashFunc(data)
	if err != nil {
		t.Fatalf("XXHashFunc failed: %v", err)
	}

	if len(hashBytes) != 8 {
		t.Errorf("Expected 8 bytes, got %d", len(hashBytes))
	}

	// Test consistency - same input should produce same output
	hashBytes2, err := XXHashFunc(data)
	if err != nil {
		t.Fatalf("XXHashFunc failed on second call: %v", err)
	}

	if hex.EncodeToString(hashBytes) != hex.EncodeToString(hashBytes2) {
		t.Error("XXHashFunc should be deterministic")
	}
}

func TestFingerprint_Deterministic(t *testing.T) {
	entries := []Entry{
		{Path: "a.cs", Content: "class A {}"},
		{Path: "b/c.json", Content: `{"k":1}`},
		{Path: "b/d.xml", Content: "<r/>"},
	}

	first, err := Fingerprint(entries)
	if err != nil {
		t.Fatalf("Fingerprint failed: %v", err)
	}
	second, err := Fingerprint(entries)
	if err != nil {
		t.Fatalf("Fingerprint failed: %v", err)
	}

	if first != second {
		t.Error("Same entries should produce same fingerprint")
	}
}

func TestFingerprint_DetectsChanges(t *testing.T) {
	base := []Entry{
		{Path: "a.cs", Content: "class A {}"},
		{Path: "b.cs", Content: "class B {}"},
	}
	changed := []Entry{
		{Path: "a.cs", Content: "class A { }"},
		{Path: "b.cs", Content: "class B {}"},
	}
	reordered := []Entry{base[1], base[0]}

	fp, err := Fingerprint(base)
	if err != nil {
		t.Fatalf("Fingerprint failed: %v", err)
	}
	for _, other := range [][]Entry{changed, reordered} {
		got, err := Fingerprint(other)
		if err != nil {
			t.Fatalf("Fingerprint failed: %v", err)
		}
		if got == fp {
			t.Errorf("Expected different fingerprint for %+v", other)
		}
	}
}

func TestFingerprint_SmallInputs(t *testing.T) {
	empty, err := Fingerprint(nil)
	if err != nil {
		t.Fatalf("Fingerprint failed: %v", err)
	}
	single, err := Fingerprint([]Entry{{Path: "a.md", Content: "a"}})
	if err != nil {
		t.Fatalf("Fingerprint failed: %v", err)
	}

	if empty == "" || single == "" {
		t.Error("Fingerprint should never be empty")
	}
	if empty == single {
		t.Error("Empty and single-entry fingerprints should differ")
	}
}

//go:build unix

package mmfile

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMapReadOnlyUnix(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.bin")
	want := []byte{0x7f, 'E', 'L', 'F', 0x42}
	if err := os.WriteFile(path, want, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	data, unmap, err := Map(path)
	if err != nil {
		t.Fatalf("Map: %v", err)
	}
	if string(data) != string(want) {
		t.Fatalf("mapped bytes mismatch: %v", data)
	}
	if err := unmap(); err != nil {
		t.Fatalf("unmap: %v", err)
	}
	// Second unmap is tolerated.
	if err := unmap(); err != nil {
		t.Fatalf("second unmap: %v", err)
	}
}

func TestMapEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.bin")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	data, unmap, err := Map(path)
	if err != nil {
		t.Fatalf("Map: %v", err)
	}
	if len(data) != 0 {
		t.Fatalf("expected empty mapping, got %d bytes", len(data))
	}
	if err := unmap(); err != nil {
		t.Fatalf("unmap: %v", err)
	}
}

func TestMapMissingFile(t *testing.T) {
	if _, _, err := Map(filepath.Join(t.TempDir(), "nope.bin")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

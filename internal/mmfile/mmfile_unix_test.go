//go:build unix

package mmfile

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMapReadOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.bin")
	want := []byte{0xde, 0xad, 0xbe, 0xef, 0x42}
	if err := os.WriteFile(path, want, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	data, cleanup, err := Map(path)
	if err != nil {
		t.Fatalf("Map: %v", err)
	}
	defer func() {
		if cleanupErr := cleanup(); cleanupErr != nil {
			t.Fatalf("cleanup: %v", cleanupErr)
		}
	}()
	if len(data) != len(want) {
		t.Fatalf("len mismatch: got %d want %d", len(data), len(want))
	}
	for i, b := range want {
		if data[i] != b {
			t.Fatalf("byte %d mismatch: got 0x%x want 0x%x", i, data[i], b)
		}
	}
}

func TestMapZeroLength(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.bin")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	data, cleanup, err := Map(path)
	if err != nil {
		t.Fatalf("Map: %v", err)
	}
	if len(data) != 0 {
		t.Fatalf("expected zero-length mapping, got %d", len(data))
	}
	if cleanupErr := cleanup(); cleanupErr != nil {
		t.Fatalf("cleanup: %v", cleanupErr)
	}
}

func TestMapMissingFile(t *testing.T) {
	if _, _, err := Map(filepath.Join(t.TempDir(), "nope.bin")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

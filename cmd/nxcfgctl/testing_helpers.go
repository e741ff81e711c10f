package main

import (
	"encoding/binary"
	"io"
	"os"
	"path/filepath"
	"testing"
)

// Table layout mirrored from the library's format package: 16-byte header
// (count, data offset, data size, reserved) followed by 64-byte records.
const (
	testHeaderSize = 16
	testRecordSize = 64
)

type testRecord struct {
	name string
	tag  byte
	size uint32
	area [8]byte
}

// writeTestBlob assembles a settings blob from records plus a data region and
// writes it to a temp file, returning its path.
func writeTestBlob(t *testing.T, records []testRecord, data []byte) string {
	t.Helper()

	dataOff := testHeaderSize + len(records)*testRecordSize
	blob := make([]byte, dataOff+len(data))
	binary.LittleEndian.PutUint32(blob[0:], uint32(len(records)))
	binary.LittleEndian.PutUint32(blob[4:], uint32(dataOff))
	binary.LittleEndian.PutUint32(blob[8:], uint32(len(data)))
	for i, rec := range records {
		b := blob[testHeaderSize+i*testRecordSize:]
		copy(b[:48], rec.name)
		b[0x30] = rec.tag
		binary.LittleEndian.PutUint32(b[0x34:], rec.size)
		copy(b[0x38:0x40], rec.area[:])
	}
	copy(blob[dataOff:], data)

	path := filepath.Join(t.TempDir(), "settings.bin")
	if err := os.WriteFile(path, blob, 0o644); err != nil {
		t.Fatalf("failed to write test blob: %v", err)
	}
	return path
}

// boolArea returns an inline payload area holding a boolean.
func boolArea(v bool) (a [8]byte) {
	if v {
		a[0] = 1
	}
	return a
}

// u32Area returns an inline payload area holding a little-endian u32.
func u32Area(v uint32) (a [8]byte) {
	binary.LittleEndian.PutUint32(a[:], v)
	return a
}

// captureOutput captures stdout while running a function.
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	fnErr := fn()

	w.Close()
	os.Stdout = origStdout

	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("failed to read captured output: %v", err)
	}
	return string(out), fnErr
}

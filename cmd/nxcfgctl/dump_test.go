package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func usbTestBlob(t *testing.T) string {
	t.Helper()
	return writeTestBlob(t, []testRecord{
		{name: "usb!is_enabled", tag: 0x04, size: 1, area: boolArea(true)},
		{name: "usb!port_count", tag: 0x03, size: 4, area: u32Area(4)},
	}, nil)
}

func TestDumpCommandStdout(t *testing.T) {
	quiet = false
	verbose = false
	dumpEncoding = "utf8"
	dumpBOM = false
	dumpStdout = true

	output, err := captureOutput(t, func() error {
		return runDump([]string{usbTestBlob(t)})
	})
	require.NoError(t, err)
	assert.Equal(t, "[usb]\nis_enabled = true\nport_count = 4\n", output)
}

func TestDumpCommandToFile(t *testing.T) {
	quiet = false
	verbose = false
	dumpEncoding = "utf8"
	dumpBOM = false
	dumpStdout = false

	outPath := filepath.Join(t.TempDir(), "settings.ini")
	err := runDump([]string{usbTestBlob(t), outPath})
	require.NoError(t, err)

	got, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "[usb]\nis_enabled = true\nport_count = 4\n", string(got))
}

func TestDumpCommandArgValidation(t *testing.T) {
	dumpStdout = true
	err := runDump([]string{"in.bin", "out.ini"})
	require.Error(t, err, "output file and --stdout are mutually exclusive")

	dumpStdout = false
	err = runDump([]string{"in.bin"})
	require.Error(t, err, "either output file or --stdout is required")
}

func TestDumpCommandBadEncoding(t *testing.T) {
	dumpStdout = true
	dumpEncoding = "latin1"
	defer func() { dumpEncoding = "utf8" }()

	err := runDump([]string{usbTestBlob(t)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported encoding")
}

func TestDumpCommandDecodeErrorWritesNothing(t *testing.T) {
	quiet = false
	verbose = false
	dumpEncoding = "utf8"
	dumpStdout = true

	// Name without separator fails the decode.
	path := writeTestBlob(t, []testRecord{
		{name: "nosep", tag: 0x02, size: 1},
	}, nil)

	output, err := captureOutput(t, func() error {
		return runDump([]string{path})
	})
	require.Error(t, err)
	assert.Empty(t, output, "no partial output on decode failure")
}

func TestDumpCommandUTF16LE(t *testing.T) {
	quiet = false
	verbose = false
	dumpEncoding = "utf16le"
	dumpBOM = true
	dumpStdout = false
	defer func() {
		dumpEncoding = "utf8"
		dumpBOM = false
	}()

	outPath := filepath.Join(t.TempDir(), "settings.ini")
	require.NoError(t, runDump([]string{usbTestBlob(t), outPath}))

	got, err := os.ReadFile(outPath)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(got), 4)
	assert.Equal(t, []byte{0xff, 0xfe}, got[:2], "expected little-endian BOM")
	assert.Equal(t, byte('['), got[2])
	assert.Equal(t, byte(0), got[3])
}

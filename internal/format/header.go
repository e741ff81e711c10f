package format

import (
	"fmt"

	"github.com/DarkMatterCore/nx-cfg-parser/internal/buf"
)

// Header captures the fields of the table header required to walk the entry
// table and resolve referenced payloads.
type Header struct {
	EntryCount uint32
	DataOffset uint32
	DataSize   uint32
}

// ParseHeader validates and extracts the table header from b, which must be
// the whole blob. Beyond the fixed-width reads it enforces two sanity bounds
// so a hostile header cannot demand unbounded work or out-of-buffer access:
// the declared entry table and the declared data region must both fit inside b.
func ParseHeader(b []byte) (Header, error) {
	if len(b) < HeaderSize {
		return Header{}, fmt.Errorf("table header: %w (have %d, need %d)", ErrTruncated, len(b), HeaderSize)
	}
	count := buf.U32LE(b[HeaderCountOffset:])
	dataOff := buf.U32LE(b[HeaderDataOffOffset:])
	dataSize := buf.U32LE(b[HeaderDataSizeOffset:])

	tableSize, ok := buf.MulOverflowSafe(int(count), EntryRecordSize)
	if !ok {
		return Header{}, fmt.Errorf("table header: entry count %d: %w", count, ErrTruncated)
	}
	tableEnd, ok := buf.AddOverflowSafe(HeaderSize, tableSize)
	if !ok || tableEnd > len(b) {
		return Header{}, fmt.Errorf("table header: %d entries do not fit in %d bytes: %w",
			count, len(b), ErrTruncated)
	}

	regionEnd, ok := buf.AddOverflowSafe(int(dataOff), int(dataSize))
	if !ok || regionEnd > len(b) {
		return Header{}, fmt.Errorf("table header: data region [0x%x, 0x%x) exceeds %d bytes: %w",
			dataOff, uint64(dataOff)+uint64(dataSize), len(b), ErrTruncated)
	}

	return Header{
		EntryCount: count,
		DataOffset: dataOff,
		DataSize:   dataSize,
	}, nil
}

// EntryRecordOffset returns the blob offset of entry record i.
func EntryRecordOffset(i int) int {
	return HeaderSize + i*EntryRecordSize
}

// Package testutil builds synthetic settings tables for tests. Tests assemble
// well-formed blobs through the typed Add helpers and deliberately broken ones
// through AddRaw or by patching the built bytes.
package testutil

import (
	"github.com/DarkMatterCore/nx-cfg-parser/internal/buf"
	"github.com/DarkMatterCore/nx-cfg-parser/internal/format"
)

// TableBuilder accumulates entry records and a data region, then serializes
// them into a blob laid out exactly as the decoder expects.
type TableBuilder struct {
	records []recordSpec
	data    []byte
}

type recordSpec struct {
	name string
	tag  byte
	size uint32
	area [format.EntryPayloadAreaSize]byte
}

// NewTableBuilder returns an empty builder.
func NewTableBuilder() *TableBuilder {
	return &TableBuilder{}
}

// AddString appends a referenced string entry. The stored payload carries a
// NUL terminator, matching the source format.
func (tb *TableBuilder) AddString(name, value string) *TableBuilder {
	return tb.addReferenced(name, format.TagString, append([]byte(value), 0))
}

// AddHexBlob appends a referenced opaque-bytes entry.
func (tb *TableBuilder) AddHexBlob(name string, blob []byte) *TableBuilder {
	return tb.addReferenced(name, format.TagHexBlob, blob)
}

// AddBool appends an inline boolean entry.
func (tb *TableBuilder) AddBool(name string, v bool) *TableBuilder {
	var area [format.EntryPayloadAreaSize]byte
	if v {
		area[0] = 1
	}
	return tb.AddRaw(name, format.TagBool, 1, area)
}

// AddU8 appends an inline one-byte integer entry.
func (tb *TableBuilder) AddU8(name string, v uint8) *TableBuilder {
	var area [format.EntryPayloadAreaSize]byte
	area[0] = v
	return tb.AddRaw(name, format.TagU8, 1, area)
}

// AddU32 appends an inline little-endian u32 entry.
func (tb *TableBuilder) AddU32(name string, v uint32) *TableBuilder {
	var area [format.EntryPayloadAreaSize]byte
	buf.PutU32LE(area[:], v)
	return tb.AddRaw(name, format.TagU32, 4, area)
}

// AddU64 appends an inline little-endian u64 entry.
func (tb *TableBuilder) AddU64(name string, v uint64) *TableBuilder {
	var area [format.EntryPayloadAreaSize]byte
	buf.PutU64LE(area[:], v)
	return tb.AddRaw(name, format.TagU64, 8, area)
}

// AddRaw appends an entry record with the given fields verbatim. Use it to
// build malformed records: wrong sizes, unknown tags, separator-less names.
func (tb *TableBuilder) AddRaw(name string, tag byte, size uint32, area [format.EntryPayloadAreaSize]byte) *TableBuilder {
	tb.records = append(tb.records, recordSpec{name: name, tag: tag, size: size, area: area})
	return tb
}

func (tb *TableBuilder) addReferenced(name string, tag byte, payload []byte) *TableBuilder {
	var area [format.EntryPayloadAreaSize]byte
	buf.PutU32LE(area[:], uint32(len(tb.data)))
	tb.data = append(tb.data, payload...)
	return tb.AddRaw(name, tag, uint32(len(payload)), area)
}

// Build serializes the accumulated records into a complete blob: header,
// entry table, then the data region.
func (tb *TableBuilder) Build() []byte {
	dataOff := format.HeaderSize + len(tb.records)*format.EntryRecordSize
	blob := make([]byte, dataOff+len(tb.data))

	buf.PutU32LE(blob[format.HeaderCountOffset:], uint32(len(tb.records)))
	buf.PutU32LE(blob[format.HeaderDataOffOffset:], uint32(dataOff))
	buf.PutU32LE(blob[format.HeaderDataSizeOffset:], uint32(len(tb.data)))

	for i, rec := range tb.records {
		b := blob[format.EntryRecordOffset(i):]
		copy(b[format.EntryNameOffset:format.EntryNameOffset+format.EntryNameSize], rec.name)
		b[format.EntryTypeOffset] = rec.tag
		buf.PutU32LE(b[format.EntrySizeOffset:], rec.size)
		copy(b[format.EntryPayloadOffset:format.EntryPayloadOffset+format.EntryPayloadAreaSize], rec.area[:])
	}

	copy(blob[dataOff:], tb.data)
	return blob
}

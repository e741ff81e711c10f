// Package format houses the low-level decoder for the binary system settings
// table carved out of a firmware image. The goal is to keep the parsing
// focused, allocation-light, and independent from the public API so higher
// level packages can orchestrate the data in a more ergonomic form.
package format

const (
	// HeaderSize is the size of the table header in bytes.
	// Layout (little-endian):
	//
	//	Offset  Size  Description
	//	------  ----  ----------------------------------------
	//	 0x00    4    Entry count
	//	 0x04    4    Data region offset (from start of blob)
	//	 0x08    4    Data region size
	//	 0x0C    4    Reserved
	HeaderSize = 16

	// Header field offsets.
	HeaderCountOffset    = 0x00
	HeaderDataOffOffset  = 0x04
	HeaderDataSizeOffset = 0x08
	HeaderReservedOffset = 0x0C

	// EntryRecordSize is the size of one fixed-width entry record. Records
	// follow the header back to back, entry_count of them.
	// Layout (little-endian):
	//
	//	Offset  Size  Description
	//	------  ----  ----------------------------------------
	//	 0x00   48    Entry name, NUL-padded ("category!key")
	//	 0x30    1    Type tag
	//	 0x31    3    Reserved
	//	 0x34    4    Payload size
	//	 0x38    8    Payload area: inline payload bytes for
	//	              fixed-width tags, or a u32 data-region
	//	              offset at 0x38 for referenced tags
	EntryRecordSize = 64

	// Entry record field offsets.
	EntryNameOffset    = 0x00
	EntryNameSize      = 48
	EntryTypeOffset    = 0x30
	EntrySizeOffset    = 0x34
	EntryPayloadOffset = 0x38

	// EntryPayloadAreaSize is the width of the inline payload area.
	EntryPayloadAreaSize = 8

	// NameSeparator divides the category prefix from the key in an entry
	// name. Every well-formed name contains at least one.
	NameSeparator = '!'
)

// Type tags. Tags 0x01 through 0x03 carry the numbering of the source
// format; the remaining tags extend it. The set is closed: any other value
// is a decode error, never coerced.
const (
	TagString  = 0x01 // referenced, NUL-terminated text
	TagU8      = 0x02 // inline, 1 byte
	TagU32     = 0x03 // inline, 4 bytes
	TagBool    = 0x04 // inline, 1 byte, zero/nonzero
	TagU64     = 0x05 // inline, 8 bytes
	TagHexBlob = 0x06 // referenced, opaque bytes
)

// TagInfo describes how a type tag stores its payload.
type TagInfo struct {
	// Inline is true when the payload lives in the record's payload area.
	Inline bool
	// Width is the exact payload size for inline tags; 0 for referenced
	// tags, whose size is free-form.
	Width int
}

// LookupTag returns the storage description for a type tag. ok is false for
// tags outside the closed enumeration.
func LookupTag(tag byte) (TagInfo, bool) {
	switch tag {
	case TagString:
		return TagInfo{Inline: false}, true
	case TagU8:
		return TagInfo{Inline: true, Width: 1}, true
	case TagU32:
		return TagInfo{Inline: true, Width: 4}, true
	case TagBool:
		return TagInfo{Inline: true, Width: 1}, true
	case TagU64:
		return TagInfo{Inline: true, Width: 8}, true
	case TagHexBlob:
		return TagInfo{Inline: false}, true
	default:
		return TagInfo{}, false
	}
}

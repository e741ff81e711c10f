package format

import (
	"bytes"
	"fmt"

	"github.com/DarkMatterCore/nx-cfg-parser/internal/buf"
)

// EntryRecord models one fixed-width entry record. The name is kept raw (NUL
// padding intact) so the text layer decides how to interpret it.
type EntryRecord struct {
	NameRaw     []byte
	TypeTag     byte
	PayloadSize uint32
	PayloadArea []byte
}

// Name returns the entry name with trailing NUL padding stripped.
func (e EntryRecord) Name() string {
	return string(bytes.TrimRight(e.NameRaw, "\x00"))
}

// DecodeEntryRecord decodes the fixed fields of a single entry record. b must
// be exactly one EntryRecordSize slice; callers carve it out of the table.
func DecodeEntryRecord(b []byte) (EntryRecord, error) {
	if len(b) < EntryRecordSize {
		return EntryRecord{}, fmt.Errorf("entry record: %w (have %d, need %d)", ErrTruncated, len(b), EntryRecordSize)
	}
	return EntryRecord{
		NameRaw:     b[EntryNameOffset : EntryNameOffset+EntryNameSize],
		TypeTag:     b[EntryTypeOffset],
		PayloadSize: buf.U32LE(b[EntrySizeOffset:]),
		PayloadArea: b[EntryPayloadOffset : EntryPayloadOffset+EntryPayloadAreaSize],
	}, nil
}

// ResolvePayload materializes the payload bytes for a decoded record. Inline
// tags read from the record's payload area after an exact width check;
// referenced tags read PayloadSize bytes at the u32 offset stored in the
// payload area, relative to the data region. The returned slice is always a
// copy, never a view into the source buffer.
func ResolvePayload(rec EntryRecord, dataRegion []byte) ([]byte, error) {
	info, ok := LookupTag(rec.TypeTag)
	if !ok {
		return nil, fmt.Errorf("tag 0x%02x: %w", rec.TypeTag, ErrUnknownTypeTag)
	}

	if info.Inline {
		if int(rec.PayloadSize) != info.Width {
			return nil, fmt.Errorf("tag 0x%02x declares %d payload bytes, want %d: %w",
				rec.TypeTag, rec.PayloadSize, info.Width, ErrPayloadLengthMismatch)
		}
		payload := make([]byte, info.Width)
		copy(payload, rec.PayloadArea[:info.Width])
		return payload, nil
	}

	off := buf.U32LE(rec.PayloadArea)
	src, ok := buf.Slice(dataRegion, int(off), int(rec.PayloadSize))
	if !ok {
		return nil, fmt.Errorf("payload [0x%x, 0x%x) exceeds data region of %d bytes: %w",
			off, uint64(off)+uint64(rec.PayloadSize), len(dataRegion), ErrTruncated)
	}
	payload := make([]byte, len(src))
	copy(payload, src)
	return payload, nil
}

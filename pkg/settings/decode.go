package settings

import (
	"fmt"
	"strings"

	"github.com/DarkMatterCore/nx-cfg-parser/internal/format"
	"github.com/DarkMatterCore/nx-cfg-parser/pkg/types"
)

// Decode parses a raw settings table blob into an ordered entry sequence.
// Table order is authoritative and preserved in the result. The first
// malformed entry aborts the whole decode; no prefix is ever returned.
// Returned entries own their payloads, so data may be freed or reused
// independently.
func Decode(data []byte) ([]types.Entry, error) {
	h, err := format.ParseHeader(data)
	if err != nil {
		return nil, err
	}
	dataRegion := data[h.DataOffset : int(h.DataOffset)+int(h.DataSize)]

	entries := make([]types.Entry, 0, h.EntryCount)
	for i := 0; i < int(h.EntryCount); i++ {
		off := format.EntryRecordOffset(i)
		rec, err := format.DecodeEntryRecord(data[off : off+format.EntryRecordSize])
		if err != nil {
			return nil, fmt.Errorf("entry %d at offset 0x%x: %w", i, off, err)
		}

		payload, err := format.ResolvePayload(rec, dataRegion)
		if err != nil {
			return nil, fmt.Errorf("entry %d at offset 0x%x: %w", i, off, err)
		}

		category, key, err := splitName(rec.Name())
		if err != nil {
			return nil, fmt.Errorf("entry %d at offset 0x%x: %w", i, off, err)
		}

		entries = append(entries, types.Entry{
			Category: category,
			Key:      key,
			Type:     types.ValueType(rec.TypeTag),
			Data:     payload,
		})
	}

	return entries, nil
}

// splitName divides a NUL-stripped entry name into category and key on the
// first separator. This is a pure string operation; the byte layer has
// already dealt with padding.
func splitName(name string) (category, key string, err error) {
	i := strings.IndexByte(name, format.NameSeparator)
	if i < 0 {
		return "", "", fmt.Errorf("name %q lacks a %q separator: %w",
			name, format.NameSeparator, format.ErrMalformedEntryName)
	}
	category, key = name[:i], name[i+1:]
	if category == "" || key == "" {
		return "", "", fmt.Errorf("name %q has an empty category or key: %w",
			name, format.ErrMalformedEntryName)
	}
	return category, key, nil
}

package settings

import (
	"fmt"

	"github.com/DarkMatterCore/nx-cfg-parser/internal/format"
	"github.com/DarkMatterCore/nx-cfg-parser/internal/mmfile"
)

// TableInfo summarizes a decoded settings table for inspection tooling.
type TableInfo struct {
	EntryCount int            `json:"entry_count"`
	DataOffset uint32         `json:"data_offset"`
	DataSize   uint32         `json:"data_size"`
	Categories []string       `json:"categories"`
	TypeCounts map[string]int `json:"type_counts"`
}

// Stat decodes a settings blob and reports header metadata plus per-category
// and per-type tallies. Categories are listed in first-seen table order.
func Stat(data []byte) (TableInfo, error) {
	h, err := format.ParseHeader(data)
	if err != nil {
		return TableInfo{}, err
	}
	entries, err := Decode(data)
	if err != nil {
		return TableInfo{}, err
	}

	info := TableInfo{
		EntryCount: len(entries),
		DataOffset: h.DataOffset,
		DataSize:   h.DataSize,
		TypeCounts: make(map[string]int),
	}
	seen := make(map[string]bool)
	for _, e := range entries {
		if !seen[e.Category] {
			seen[e.Category] = true
			info.Categories = append(info.Categories, e.Category)
		}
		info.TypeCounts[e.Type.String()]++
	}
	return info, nil
}

// StatFile maps the blob at path read-only and runs Stat on it.
func StatFile(path string) (TableInfo, error) {
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return TableInfo{}, fmt.Errorf("failed to map %s: %w", path, err)
	}
	defer cleanup() //nolint:errcheck // read-only mapping

	return Stat(data)
}

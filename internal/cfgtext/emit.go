package cfgtext

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"

	"github.com/DarkMatterCore/nx-cfg-parser/internal/buf"
	"github.com/DarkMatterCore/nx-cfg-parser/pkg/types"
)

// ErrInternalRender indicates an entry with a type outside the closed
// enumeration reached the renderer. The decoder rejects such tags, so this
// only fires for hand-built entry sequences or a decoder bug.
var ErrInternalRender = errors.New("cfgtext: internal render error")

// section accumulates the ordered key/value pairs of one output section.
type section struct {
	name  string
	lines []line
}

type line struct {
	key   string
	value string
}

// Render groups entries by category and emits the final text. Grouping is a
// single forward pass: categories appear in first-seen order, and keys keep
// their entry order within each category. Output order is a correctness
// requirement here, not cosmetics, so the grouping uses an explicit ordered
// slice with a name index rather than map iteration.
func Render(entries []types.Entry, opts types.RenderOptions) ([]byte, error) {
	var sections []*section
	index := make(map[string]int)

	for _, e := range entries {
		value, err := FormatValue(e)
		if err != nil {
			return nil, err
		}
		i, ok := index[e.Category]
		if !ok {
			i = len(sections)
			index[e.Category] = i
			sections = append(sections, &section{name: e.Category})
		}
		sections[i].lines = append(sections[i].lines, line{key: e.Key, value: value})
	}

	var out bytes.Buffer
	for i, s := range sections {
		if i > 0 {
			out.WriteString(LF)
		}
		out.WriteString(SectionOpen)
		out.WriteString(s.name)
		out.WriteString(SectionClose + LF)
		for _, l := range s.lines {
			out.WriteString(l.key)
			out.WriteString(KeyValueSeparator)
			out.WriteString(l.value)
			out.WriteString(LF)
		}
	}

	return encodeOutput(out.Bytes(), opts)
}

// FormatValue renders a single entry's payload per its type tag.
func FormatValue(e types.Entry) (string, error) {
	switch e.Type {
	case types.TypeString:
		return string(bytes.TrimRight(e.Data, "\x00")), nil
	case types.TypeBool:
		if len(e.Data) != 1 {
			return "", fmt.Errorf("bool payload of %d bytes: %w", len(e.Data), ErrInternalRender)
		}
		if e.Data[0] != 0 {
			return BoolTrue, nil
		}
		return BoolFalse, nil
	case types.TypeU8:
		if len(e.Data) != 1 {
			return "", fmt.Errorf("u8 payload of %d bytes: %w", len(e.Data), ErrInternalRender)
		}
		return strconv.FormatUint(uint64(e.Data[0]), 10), nil
	case types.TypeU32:
		if len(e.Data) != 4 {
			return "", fmt.Errorf("u32 payload of %d bytes: %w", len(e.Data), ErrInternalRender)
		}
		return strconv.FormatUint(uint64(buf.U32LE(e.Data)), 10), nil
	case types.TypeU64:
		if len(e.Data) != 8 {
			return "", fmt.Errorf("u64 payload of %d bytes: %w", len(e.Data), ErrInternalRender)
		}
		return strconv.FormatUint(buf.U64LE(e.Data), 10), nil
	case types.TypeHexBlob:
		return hex.EncodeToString(e.Data), nil
	default:
		return "", fmt.Errorf("tag 0x%02x: %w", uint8(e.Type), ErrInternalRender)
	}
}

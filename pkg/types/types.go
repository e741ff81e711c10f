// Package types defines the shared data model for decoded system settings.
// It sits below both the decoder and the renderer so neither depends on the
// other's internals.
package types

import "fmt"

// ValueType identifies how an entry's payload bytes must be interpreted.
// The numeric values match the on-disk type tags.
type ValueType uint8

const (
	TypeString  ValueType = 0x01
	TypeU8      ValueType = 0x02
	TypeU32     ValueType = 0x03
	TypeBool    ValueType = 0x04
	TypeU64     ValueType = 0x05
	TypeHexBlob ValueType = 0x06
)

// String returns the conventional name of the value type.
func (t ValueType) String() string {
	switch t {
	case TypeString:
		return "String"
	case TypeU8:
		return "U8"
	case TypeU32:
		return "U32"
	case TypeBool:
		return "Bool"
	case TypeU64:
		return "U64"
	case TypeHexBlob:
		return "HexBlob"
	default:
		return fmt.Sprintf("Unknown(0x%02X)", uint8(t))
	}
}

// Entry is one decoded record from the binary settings table. Entries are
// created by the decoder, consumed read-only by the renderer, and never
// mutated after creation. Data is always an owned copy, never a view into
// the source blob.
type Entry struct {
	// Category is the grouping prefix of the entry's name, rendered as an
	// output section header. Never empty.
	Category string
	// Key is the remainder of the name after the separator. Never empty.
	Key string
	// Type tells the renderer how to format Data.
	Type ValueType
	// Data holds the raw payload bytes.
	Data []byte
}

// RenderOptions controls text output production.
type RenderOptions struct {
	// OutputEncoding selects the byte encoding of the rendered text:
	// "" or "UTF-8" (default), or "UTF-16LE".
	OutputEncoding string
	// WithBOM prepends a byte-order mark when encoding to UTF-16LE.
	WithBOM bool
}

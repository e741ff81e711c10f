// Package buf contains helpers for endian-safe decoding routines.
package buf

import "encoding/binary"

// U32LE reads a little-endian uint32 from b. Returns 0 when b is too short.
func U32LE(b []byte) uint32 {
	if len(b) < 4 {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

// U64LE reads a little-endian uint64 from b. Returns 0 when b is too short.
func U64LE(b []byte) uint64 {
	if len(b) < 8 {
		return 0
	}
	return binary.LittleEndian.Uint64(b)
}

// PutU32LE writes v to the first four bytes of b in little-endian order.
func PutU32LE(b []byte, v uint32) {
	binary.LittleEndian.PutUint32(b, v)
}

// PutU64LE writes v to the first eight bytes of b in little-endian order.
func PutU64LE(b []byte, v uint64) {
	binary.LittleEndian.PutUint64(b, v)
}

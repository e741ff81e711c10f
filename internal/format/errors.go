package format

import "errors"

var (
	// ErrTruncated indicates the buffer lacked the bytes a structure declared.
	ErrTruncated = errors.New("format: truncated input")
	// ErrUnknownTypeTag indicates a type tag outside the closed enumeration.
	ErrUnknownTypeTag = errors.New("format: unknown type tag")
	// ErrMalformedEntryName indicates an entry name without a category separator.
	ErrMalformedEntryName = errors.New("format: malformed entry name")
	// ErrPayloadLengthMismatch indicates a fixed-width tag whose size field
	// disagrees with the tag's width.
	ErrPayloadLengthMismatch = errors.New("format: payload length mismatch")
)

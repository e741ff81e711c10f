// Package cfgtext renders decoded settings entries as INI-style text.
// Entries are grouped into sections by category, in first-seen order, and
// each value is formatted according to its type tag. Output is deterministic:
// the same entry sequence always produces byte-identical text.
package cfgtext

const (
	// SectionOpen and SectionClose bracket a category name on its own line.
	SectionOpen  = "["
	SectionClose = "]"

	// KeyValueSeparator sits between a key and its rendered value.
	KeyValueSeparator = " = "

	// LF terminates every output line. Sections are separated by exactly
	// one blank line; no blank line follows the final section.
	LF = "\n"

	// BoolTrue and BoolFalse are the canonical boolean tokens.
	BoolTrue  = "true"
	BoolFalse = "false"

	// EncodingUTF8 and EncodingUTF16LE name the supported output encodings.
	EncodingUTF8    = "UTF-8"
	EncodingUTF16LE = "UTF-16LE"
)

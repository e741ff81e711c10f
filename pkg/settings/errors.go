package settings

import (
	"github.com/DarkMatterCore/nx-cfg-parser/internal/cfgtext"
	"github.com/DarkMatterCore/nx-cfg-parser/internal/format"
)

// Error classification for decode and render failures. All are terminal for
// the call that raised them.
var (
	// ErrTruncated reports a header, entry table, or referenced payload
	// that falls outside the input buffer.
	ErrTruncated = format.ErrTruncated
	// ErrUnknownTypeTag reports a type tag outside the closed enumeration.
	ErrUnknownTypeTag = format.ErrUnknownTypeTag
	// ErrMalformedEntryName reports an entry name without a category
	// separator, or with an empty category or key.
	ErrMalformedEntryName = format.ErrMalformedEntryName
	// ErrPayloadLengthMismatch reports a fixed-width payload whose declared
	// size disagrees with its type tag.
	ErrPayloadLengthMismatch = format.ErrPayloadLengthMismatch
	// ErrInternalRender reports an entry the renderer cannot format. It is
	// unreachable for decoder-produced sequences.
	ErrInternalRender = cfgtext.ErrInternalRender
)

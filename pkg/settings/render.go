package settings

import (
	"github.com/DarkMatterCore/nx-cfg-parser/internal/cfgtext"
	"github.com/DarkMatterCore/nx-cfg-parser/pkg/types"
)

// Render produces the textual representation of an entry sequence. Sections
// follow first-seen category order; keys keep entry order within a section.
// For identical input the output is byte-identical.
func Render(entries []types.Entry, opts types.RenderOptions) ([]byte, error) {
	return cfgtext.Render(entries, opts)
}

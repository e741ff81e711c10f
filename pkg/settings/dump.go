package settings

import (
	"fmt"

	"github.com/DarkMatterCore/nx-cfg-parser/internal/mmfile"
	"github.com/DarkMatterCore/nx-cfg-parser/pkg/types"
)

// Dump decodes a settings blob and renders it in one call.
func Dump(data []byte, opts types.RenderOptions) ([]byte, error) {
	entries, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return Render(entries, opts)
}

// DumpFile maps the blob at path read-only and dumps it. The mapping is
// released before returning; the result never aliases the file.
func DumpFile(path string, opts types.RenderOptions) ([]byte, error) {
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return nil, fmt.Errorf("failed to map %s: %w", path, err)
	}
	defer cleanup() //nolint:errcheck // read-only mapping

	return Dump(data, opts)
}

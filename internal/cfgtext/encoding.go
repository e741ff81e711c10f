package cfgtext

import (
	"errors"
	"strings"

	"golang.org/x/text/encoding/unicode"

	"github.com/DarkMatterCore/nx-cfg-parser/pkg/types"
)

var errUnsupportedEncoding = errors.New("cfgtext: unsupported output encoding")

// encodeOutput transcodes the rendered UTF-8 text into the requested output
// encoding. UTF-8 passes through untouched.
func encodeOutput(text []byte, opts types.RenderOptions) ([]byte, error) {
	switch strings.ToUpper(opts.OutputEncoding) {
	case "", EncodingUTF8:
		return text, nil
	case EncodingUTF16LE:
		bom := unicode.IgnoreBOM
		if opts.WithBOM {
			bom = unicode.UseBOM
		}
		enc := unicode.UTF16(unicode.LittleEndian, bom).NewEncoder()
		return enc.Bytes(text)
	default:
		return nil, errUnsupportedEncoding
	}
}

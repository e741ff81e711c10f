package settings

import "github.com/DarkMatterCore/nx-cfg-parser/pkg/types"

// Re-exported aliases so callers only need this package.
type (
	Entry         = types.Entry
	ValueType     = types.ValueType
	RenderOptions = types.RenderOptions
)

const (
	TypeString  = types.TypeString
	TypeU8      = types.TypeU8
	TypeU32     = types.TypeU32
	TypeBool    = types.TypeBool
	TypeU64     = types.TypeU64
	TypeHexBlob = types.TypeHexBlob
)

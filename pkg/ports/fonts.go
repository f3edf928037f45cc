package ports

import "golang.org/x/image/font"

// FontSource tells where a loaded font actually came from.
type FontSource int

const (
	// FontRequested means the requested font file was loaded.
	FontRequested FontSource = iota
	// FontSystem means a platform system font was used instead.
	FontSystem
	// FontBuiltin means the embedded default font was used.
	FontBuiltin
)

// String returns the string representation of the font source.
func (s FontSource) String() string {
	switch s {
	case FontRequested:
		return "requested"
	case FontSystem:
		return "system"
	case FontBuiltin:
		return "builtin"
	default:
		return "unknown"
	}
}

// Font is a font face bound to a point size.
type Font struct {
	Face   font.Face
	Path   string // File the face was parsed from, empty for the builtin font
	Size   float64
	Source FontSource
}

// FontLoader loads font faces. Load never fails: when the requested file
// cannot be used it falls back to a system font and then to a builtin one.
type FontLoader interface {
	Load(path string, size float64) Font
}

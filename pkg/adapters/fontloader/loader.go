// Package fontloader loads TrueType/OpenType fonts with a fallback chain.
package fontloader

import (
	"fmt"
	"runtime"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/user/shotframe/pkg/ports"
)

// dpi of 72 makes one point equal one pixel.
const dpi = 72

// Loader implements ports.FontLoader.
type Loader struct {
	fs          ports.FileSystem
	logger      ports.Logger
	systemFonts []string
}

// New creates a Loader that falls back to the system fonts of the current platform.
func New(fs ports.FileSystem, logger ports.Logger) *Loader {
	return NewWithSystemFonts(fs, logger, SystemFonts(runtime.GOOS))
}

// NewWithSystemFonts creates a Loader with an explicit list of system font candidates.
func NewWithSystemFonts(fs ports.FileSystem, logger ports.Logger, systemFonts []string) *Loader {
	return &Loader{
		fs:          fs,
		logger:      logger.WithComponent("fonts"),
		systemFonts: systemFonts,
	}
}

// SystemFonts returns Hangul-capable fonts commonly installed on goos.
func SystemFonts(goos string) []string {
	switch goos {
	case "darwin":
		return []string{
			"/System/Library/Fonts/AppleSDGothicNeo.ttc",
			"/System/Library/Fonts/Supplemental/AppleGothic.ttf",
		}
	case "linux":
		return []string{
			"/usr/share/fonts/truetype/nanum/NanumGothic.ttf",
			"/usr/share/fonts/opentype/noto/NotoSansCJK-Regular.ttc",
		}
	case "windows":
		return []string{`C:\Windows\Fonts\malgun.ttf`}
	default:
		return nil
	}
}

// Load returns a face for path at size points. If the file cannot be read or
// parsed, a warning is logged and the system fonts are tried in order, then
// the builtin Go Regular face.
func (l *Loader) Load(path string, size float64) ports.Font {
	face, err := l.loadFile(path, size)
	if err == nil {
		l.logger.Debug("Loaded font %s at %.0fpt", path, size)
		return ports.Font{Face: face, Path: path, Size: size, Source: ports.FontRequested}
	}
	l.logger.Warn("Could not load font %s: %s", path, err)

	for _, candidate := range l.systemFonts {
		face, err := l.loadFile(candidate, size)
		if err != nil {
			l.logger.Debug("System font %s unavailable: %s", candidate, err)
			continue
		}
		l.logger.Warn("Using system font %s", candidate)
		return ports.Font{Face: face, Path: candidate, Size: size, Source: ports.FontSystem}
	}

	l.logger.Warn("Using builtin default font")
	return ports.Font{Face: Builtin(size), Size: size, Source: ports.FontBuiltin}
}

func (l *Loader) loadFile(path string, size float64) (font.Face, error) {
	data, err := l.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	return Parse(data, size)
}

// Parse builds a face from TTF, OTF, TTC or OTC data. For collections the
// first font is used.
func Parse(data []byte, size float64) (font.Face, error) {
	coll, err := opentype.ParseCollection(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	if coll.NumFonts() == 0 {
		return nil, fmt.Errorf("parse font: empty collection")
	}
	f, err := coll.Font(0)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create face: %w", err)
	}
	return face, nil
}

// Builtin returns the embedded Go Regular face at size points. It only
// degrades to the fixed 7x13 bitmap face if the embedded data fails to parse.
func Builtin(size float64) font.Face {
	face, err := Parse(goregular.TTF, size)
	if err != nil {
		return basicfont.Face7x13
	}
	return face
}

// Ensure Loader implements ports.FontLoader
var _ ports.FontLoader = (*Loader)(nil)

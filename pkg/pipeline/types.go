package pipeline

import (
	"image"
	"image/color"

	"github.com/user/shotframe/pkg/ports"
)

// =============================================================================
// Common Types
// =============================================================================

// Dimension represents width and height.
type Dimension struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Rectangle represents a rectangular area.
type Rectangle struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// ScreenshotSpec describes one framed screenshot: the source file and the
// two lines of text placed above it.
type ScreenshotSpec struct {
	File    string
	Keyword string
	Title   string
}

// =============================================================================
// Background Stage Types
// =============================================================================

// BackgroundInput contains parameters for the background.
type BackgroundInput struct {
	Width        int
	Height       int
	GradientPath string // Optional pre-rendered backdrop; empty disables the lookup
	Top          color.RGBA
	Bottom       color.RGBA
}

// BackgroundResult contains the canvas-sized background. It is shared by
// every entry and never drawn on; the compose stage copies it per canvas.
type BackgroundResult struct {
	Image    image.Image
	FromFile bool // True when GradientPath was loaded instead of synthesized
}

// =============================================================================
// Layout Stage Types
// =============================================================================

// LayoutInput contains the measured sizes the placement is computed from.
type LayoutInput struct {
	CanvasWidth  int
	CanvasHeight int
	Padding      int // Horizontal padding on each side and bottom padding (default: 80)
	TopMargin    int // Distance from canvas top to the keyword line (default: 180)
	TextGap      int // Gap between keyword and title (default: 30)
	ShotGap      int // Gap between title and screenshot area (default: 60)
	Keyword      Dimension
	Title        Dimension
	Source       Dimension // Screenshot size before scaling
}

// DefaultLayoutInput returns LayoutInput with default spacing and canvas size.
func DefaultLayoutInput() LayoutInput {
	return LayoutInput{
		CanvasWidth:  1290,
		CanvasHeight: 2796,
		Padding:      80,
		TopMargin:    180,
		TextGap:      30,
		ShotGap:      60,
	}
}

// LayoutResult contains the placement of text and screenshot on the canvas.
type LayoutResult struct {
	// Keyword and Title hold the draw anchor (X, Y) and the measured text size.
	Keyword Rectangle `json:"keyword"`
	Title   Rectangle `json:"title"`

	// Available is the area below the text the screenshot must fit into.
	Available Rectangle `json:"available"`

	// Screenshot is the scaled screenshot, centered in Available.
	Screenshot Rectangle `json:"screenshot"`

	// Scale is the uniform factor applied to the source screenshot.
	Scale float64 `json:"scale"`
}

// =============================================================================
// Compose Stage Types
// =============================================================================

// ComposeStyle holds the text color and spacing used for every entry.
type ComposeStyle struct {
	TextColor color.Color
	Padding   int
	TopMargin int
	TextGap   int
	ShotGap   int
}

// DefaultComposeStyle returns white text with the default spacing.
func DefaultComposeStyle() ComposeStyle {
	return ComposeStyle{
		TextColor: color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Padding:   80,
		TopMargin: 180,
		TextGap:   30,
		ShotGap:   60,
	}
}

// ComposeInput contains everything needed to frame a single screenshot.
type ComposeInput struct {
	Spec          ScreenshotSpec
	ScreenshotDir string
	Background    image.Image // Canvas-sized; its bounds define the output size
	KeywordFont   ports.Font
	TitleFont     ports.Font
	Style         ComposeStyle
}

// ComposeResult contains the framed image and where things were placed.
type ComposeResult struct {
	Image  image.Image
	Layout LayoutResult
}

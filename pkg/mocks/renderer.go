package mocks

import (
	"image"

	"golang.org/x/image/font"

	"github.com/user/shotframe/pkg/ports"
)

// Renderer is a mock implementation of ports.Renderer.
type Renderer struct {
	CanvasFromFunc  func(img image.Image) ports.Canvas
	DecodeImageFunc func(data []byte) (image.Image, error)
	EncodePNGFunc   func(img image.Image) ([]byte, error)
	ResizeImageFunc func(img image.Image, width, height int) image.Image

	// LastCanvas is the most recent canvas handed out by CanvasFrom.
	LastCanvas *Canvas
}

func (m *Renderer) CanvasFrom(img image.Image) ports.Canvas {
	if m.CanvasFromFunc != nil {
		return m.CanvasFromFunc(img)
	}
	b := img.Bounds()
	m.LastCanvas = NewCanvas(b.Dx(), b.Dy())
	return m.LastCanvas
}

func (m *Renderer) DecodeImage(data []byte) (image.Image, error) {
	if m.DecodeImageFunc != nil {
		return m.DecodeImageFunc(data)
	}
	return image.NewRGBA(image.Rect(0, 0, 100, 200)), nil
}

func (m *Renderer) EncodePNG(img image.Image) ([]byte, error) {
	if m.EncodePNGFunc != nil {
		return m.EncodePNGFunc(img)
	}
	return []byte("png"), nil
}

func (m *Renderer) ResizeImage(img image.Image, width, height int) image.Image {
	if m.ResizeImageFunc != nil {
		return m.ResizeImageFunc(img, width, height)
	}
	return image.NewRGBA(image.Rect(0, 0, width, height))
}

var _ ports.Renderer = (*Renderer)(nil)

// DrawnText records a DrawText call.
type DrawnText struct {
	Text  string
	X, Y  int
	Style ports.TextStyle
}

// DrawnImage records a DrawImage call.
type DrawnImage struct {
	Image image.Image
	X, Y  int
}

// Canvas is a mock implementation of ports.Canvas that records draw calls.
// MeasureText returns TextWidth per rune and a fixed TextHeight.
type Canvas struct {
	width  int
	height int

	TextWidth  int
	TextHeight int

	Texts  []DrawnText
	Images []DrawnImage
}

// NewCanvas creates a mock canvas measuring 10px per rune and 20px tall text.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{width: width, height: height, TextWidth: 10, TextHeight: 20}
}

func (m *Canvas) DrawImage(img image.Image, x, y int) {
	m.Images = append(m.Images, DrawnImage{Image: img, X: x, Y: y})
}

func (m *Canvas) DrawText(text string, x, y int, style ports.TextStyle) {
	m.Texts = append(m.Texts, DrawnText{Text: text, X: x, Y: y, Style: style})
}

func (m *Canvas) MeasureText(text string, face font.Face) image.Rectangle {
	return image.Rect(0, 0, len([]rune(text))*m.TextWidth, m.TextHeight)
}

func (m *Canvas) Size() (int, int) {
	return m.width, m.height
}

func (m *Canvas) ToImage() image.Image {
	return image.NewRGBA(image.Rect(0, 0, m.width, m.height))
}

var _ ports.Canvas = (*Canvas)(nil)

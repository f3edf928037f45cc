// Package ggrenderer provides a renderer implementation using the gg library.
package ggrenderer

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"

	"github.com/user/shotframe/pkg/ports"
)

// Renderer implements ports.Renderer using gg for drawing and imaging for resampling.
type Renderer struct {
	filter imaging.ResampleFilter
}

// New creates a new Renderer that resamples with the Lanczos filter.
func New() *Renderer {
	return &Renderer{filter: imaging.Lanczos}
}

// CanvasFrom creates a canvas holding a copy of img, rebased to (0,0).
func (r *Renderer) CanvasFrom(img image.Image) ports.Canvas {
	return &Canvas{dc: gg.NewContextForRGBA(ToRGBA(img))}
}

// DecodeImage decodes image data into an image.Image.
func (r *Renderer) DecodeImage(data []byte) (image.Image, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

// EncodePNG encodes an image as PNG. The encoder is deterministic, so equal
// pixels always produce equal bytes.
func (r *Renderer) EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}

// ResizeImage resamples an image to the specified dimensions.
func (r *Renderer) ResizeImage(img image.Image, width, height int) image.Image {
	return imaging.Resize(img, width, height, r.filter)
}

// Ensure Renderer implements ports.Renderer
var _ ports.Renderer = (*Renderer)(nil)

// ToRGBA returns a copy of img as *image.RGBA with bounds starting at (0,0).
func ToRGBA(img image.Image) *image.RGBA {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

// Canvas implements ports.Canvas using gg.Context.
type Canvas struct {
	dc *gg.Context
}

// DrawImage composites img over the canvas at (x, y).
// gg.DrawImage goes through a bilinear transformer; pasting at integer offsets
// is done with draw.Draw so source pixels land unchanged.
func (c *Canvas) DrawImage(img image.Image, x, y int) {
	dst, ok := c.dc.Image().(draw.Image)
	if !ok {
		c.dc.DrawImage(img, x, y)
		return
	}
	b := img.Bounds()
	r := image.Rect(x, y, x+b.Dx(), y+b.Dy())
	draw.Draw(dst, r, img, b.Min, draw.Over)
}

// DrawText draws text with the top of its line box at y.
func (c *Canvas) DrawText(text string, x, y int, style ports.TextStyle) {
	if style.Face == nil {
		return
	}
	c.dc.SetFontFace(style.Face)
	c.dc.SetColor(style.Color)
	ascent := style.Face.Metrics().Ascent.Ceil()
	c.dc.DrawString(text, float64(x), float64(y+ascent))
}

// MeasureText returns the ink bounds of text relative to the DrawText anchor.
func (c *Canvas) MeasureText(text string, face font.Face) image.Rectangle {
	if face == nil || text == "" {
		return image.Rectangle{}
	}
	bounds, _ := font.BoundString(face, text)
	ascent := face.Metrics().Ascent.Ceil()
	return image.Rect(
		bounds.Min.X.Floor(),
		bounds.Min.Y.Floor()+ascent,
		bounds.Max.X.Ceil(),
		bounds.Max.Y.Ceil()+ascent,
	)
}

// Size returns the canvas dimensions.
func (c *Canvas) Size() (int, int) {
	return c.dc.Width(), c.dc.Height()
}

// ToImage returns the canvas as an image.Image.
func (c *Canvas) ToImage() image.Image {
	return c.dc.Image()
}

// Ensure Canvas implements ports.Canvas
var _ ports.Canvas = (*Canvas)(nil)

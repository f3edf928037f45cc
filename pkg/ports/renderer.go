package ports

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
)

// Renderer abstracts image decoding, encoding and resampling.
type Renderer interface {
	// CanvasFrom creates a canvas initialized with a copy of img.
	// The source image is never modified by drawing on the canvas.
	CanvasFrom(img image.Image) Canvas

	// DecodeImage decodes PNG or JPEG data into an image.Image.
	DecodeImage(data []byte) (image.Image, error)

	// EncodePNG encodes an image as PNG.
	EncodePNG(img image.Image) ([]byte, error)

	// ResizeImage resamples an image to the specified dimensions.
	ResizeImage(img image.Image, width, height int) image.Image
}

// Canvas provides drawing operations for compositing a framed screenshot.
type Canvas interface {
	// DrawImage draws an image with its top-left corner at (x, y),
	// blending through the image's own alpha channel.
	DrawImage(img image.Image, x, y int)

	// DrawText draws text anchored at its ascender line, so (x, y) is the
	// top-left of the line box rather than the baseline.
	DrawText(text string, x, y int, style TextStyle)

	// MeasureText returns the ink bounding box of the text relative to the
	// same anchor DrawText uses.
	MeasureText(text string, face font.Face) image.Rectangle

	// Size returns the canvas dimensions.
	Size() (width, height int)

	// ToImage returns the canvas as an image.Image.
	ToImage() image.Image
}

// TextStyle defines text rendering properties.
type TextStyle struct {
	Face  font.Face
	Color color.Color
}

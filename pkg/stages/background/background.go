// Package background implements the gradient background stage.
package background

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/user/shotframe/pkg/pipeline"
	"github.com/user/shotframe/pkg/ports"
)

// Stage produces the canvas-sized backdrop shared by every entry.
type Stage struct {
	fs       ports.FileSystem
	renderer ports.Renderer
	sink     ports.DebugSink
	logger   ports.Logger
}

// NewStage creates a new background stage.
func NewStage(fs ports.FileSystem, renderer ports.Renderer, sink ports.DebugSink, logger ports.Logger) *Stage {
	return &Stage{
		fs:       fs,
		renderer: renderer,
		sink:     sink,
		logger:   logger.WithComponent("background"),
	}
}

// Execute loads the gradient file when it exists and resamples it to the
// canvas size. Otherwise a vertical gradient is synthesized.
func (s *Stage) Execute(ctx context.Context, input pipeline.BackgroundInput) (pipeline.BackgroundResult, error) {
	if input.Width <= 0 || input.Height <= 0 {
		return pipeline.BackgroundResult{}, fmt.Errorf("invalid canvas size %dx%d", input.Width, input.Height)
	}

	result, err := s.build(input)
	if err != nil {
		return result, err
	}

	if s.sink.Enabled() {
		if err := s.sink.SaveBackground(result.Image); err != nil {
			s.logger.Warn("Failed to save debug output: %s", err)
		}
	}
	return result, nil
}

func (s *Stage) build(input pipeline.BackgroundInput) (pipeline.BackgroundResult, error) {
	if input.GradientPath != "" {
		exists, err := s.fs.Exists(input.GradientPath)
		if err != nil {
			return pipeline.BackgroundResult{}, fmt.Errorf("stat gradient: %w", err)
		}
		if exists {
			s.logger.Debug("Loading gradient %s", input.GradientPath)
			img, err := s.load(input)
			if err != nil {
				return pipeline.BackgroundResult{}, err
			}
			return pipeline.BackgroundResult{Image: img, FromFile: true}, nil
		}
	}

	s.logger.Debug("Gradient not found, generating %dx%d", input.Width, input.Height)
	return pipeline.BackgroundResult{
		Image: Gradient(input.Width, input.Height, input.Top, input.Bottom),
	}, nil
}

func (s *Stage) load(input pipeline.BackgroundInput) (image.Image, error) {
	data, err := s.fs.ReadFile(input.GradientPath)
	if err != nil {
		return nil, fmt.Errorf("read gradient: %w", err)
	}
	img, err := s.renderer.DecodeImage(data)
	if err != nil {
		return nil, fmt.Errorf("gradient %s: %w", input.GradientPath, err)
	}
	return s.renderer.ResizeImage(img, input.Width, input.Height), nil
}

// Gradient returns an opaque vertical gradient from top (first row) to
// bottom (last row). Channels are interpolated linearly and rounded.
func Gradient(width, height int, top, bottom color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		t := 0.0
		if height > 1 {
			t = float64(y) / float64(height-1)
		}
		c := color.RGBA{
			R: lerp(top.R, bottom.R, t),
			G: lerp(top.G, bottom.G, t),
			B: lerp(top.B, bottom.B, t),
			A: 255,
		}
		row := img.Pix[y*img.Stride : y*img.Stride+width*4]
		for x := 0; x < width; x++ {
			row[x*4] = c.R
			row[x*4+1] = c.G
			row[x*4+2] = c.B
			row[x*4+3] = c.A
		}
	}
	return img
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + t*(float64(b)-float64(a))))
}

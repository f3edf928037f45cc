// Package compose implements the screenshot framing stage.
package compose

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"path/filepath"

	"github.com/user/shotframe/pkg/pipeline"
	"github.com/user/shotframe/pkg/ports"
)

// ErrScreenshotNotFound is returned when the source screenshot does not exist.
var ErrScreenshotNotFound = errors.New("screenshot not found")

// Stage frames one screenshot: background, keyword, title and the scaled
// screenshot, in that order.
type Stage struct {
	fs          ports.FileSystem
	renderer    ports.Renderer
	layoutStage pipeline.Stage[pipeline.LayoutInput, pipeline.LayoutResult]
	sink        ports.DebugSink
	logger      ports.Logger
}

// NewStage creates a new compose stage.
func NewStage(
	fs ports.FileSystem,
	renderer ports.Renderer,
	layoutStage pipeline.Stage[pipeline.LayoutInput, pipeline.LayoutResult],
	sink ports.DebugSink,
	logger ports.Logger,
) *Stage {
	return &Stage{
		fs:          fs,
		renderer:    renderer,
		layoutStage: layoutStage,
		sink:        sink,
		logger:      logger.WithComponent("compose"),
	}
}

// Execute composes the framed image for input.Spec.
func (s *Stage) Execute(ctx context.Context, input pipeline.ComposeInput) (pipeline.ComposeResult, error) {
	path := filepath.Join(input.ScreenshotDir, input.Spec.File)
	exists, err := s.fs.Exists(path)
	if err != nil {
		return pipeline.ComposeResult{}, fmt.Errorf("stat screenshot: %w", err)
	}
	if !exists {
		s.logger.Debug("Screenshot not found: %s", path)
		return pipeline.ComposeResult{}, fmt.Errorf("%w: %s", ErrScreenshotNotFound, path)
	}

	data, err := s.fs.ReadFile(path)
	if err != nil {
		return pipeline.ComposeResult{}, fmt.Errorf("read screenshot: %w", err)
	}
	shot, err := s.renderer.DecodeImage(data)
	if err != nil {
		return pipeline.ComposeResult{}, fmt.Errorf("screenshot %s: %w", path, err)
	}

	canvas := s.renderer.CanvasFrom(input.Background)
	width, height := canvas.Size()

	keywordBox := canvas.MeasureText(input.Spec.Keyword, input.KeywordFont.Face)
	titleBox := canvas.MeasureText(input.Spec.Title, input.TitleFont.Face)
	s.logger.Debug("Measured keyword %dx%d, title %dx%d",
		keywordBox.Dx(), keywordBox.Dy(), titleBox.Dx(), titleBox.Dy())

	src := shot.Bounds()
	layout, err := s.layoutStage.Execute(ctx, pipeline.LayoutInput{
		CanvasWidth:  width,
		CanvasHeight: height,
		Padding:      input.Style.Padding,
		TopMargin:    input.Style.TopMargin,
		TextGap:      input.Style.TextGap,
		ShotGap:      input.Style.ShotGap,
		Keyword:      pipeline.Dimension{Width: keywordBox.Dx(), Height: keywordBox.Dy()},
		Title:        pipeline.Dimension{Width: titleBox.Dx(), Height: titleBox.Dy()},
		Source:       pipeline.Dimension{Width: src.Dx(), Height: src.Dy()},
	})
	if err != nil {
		return pipeline.ComposeResult{}, fmt.Errorf("layout %s: %w", input.Spec.File, err)
	}

	canvas.DrawText(input.Spec.Keyword, layout.Keyword.X, layout.Keyword.Y, ports.TextStyle{
		Face:  input.KeywordFont.Face,
		Color: input.Style.TextColor,
	})
	canvas.DrawText(input.Spec.Title, layout.Title.X, layout.Title.Y, ports.TextStyle{
		Face:  input.TitleFont.Face,
		Color: input.Style.TextColor,
	})

	scaled := s.renderer.ResizeImage(shot, layout.Screenshot.Width, layout.Screenshot.Height)
	s.logger.Debug("Scaled screenshot %dx%d -> %dx%d (scale %.4f)",
		src.Dx(), src.Dy(), layout.Screenshot.Width, layout.Screenshot.Height, layout.Scale)
	canvas.DrawImage(scaled, layout.Screenshot.X, layout.Screenshot.Y)

	if s.sink.Enabled() {
		s.saveDebug(input.Spec.File, scaled, layout)
	}

	return pipeline.ComposeResult{
		Image:  canvas.ToImage(),
		Layout: layout,
	}, nil
}

func (s *Stage) saveDebug(name string, scaled image.Image, layout pipeline.LayoutResult) {
	if err := s.sink.SaveScaledScreenshot(name, scaled); err != nil {
		s.logger.Warn("Failed to save debug output: %s", err)
	}
	data, err := json.MarshalIndent(layout, "", "  ")
	if err != nil {
		s.logger.Warn("Failed to save debug output: %s", err)
		return
	}
	if err := s.sink.SaveLayoutJSON(name, data); err != nil {
		s.logger.Warn("Failed to save debug output: %s", err)
	}
}

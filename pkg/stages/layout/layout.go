// Package layout computes where text and the screenshot go on the canvas.
package layout

import (
	"context"
	"errors"
	"math"

	"github.com/user/shotframe/pkg/pipeline"
)

var (
	// ErrNoSpace means the text leaves no vertical room for the screenshot.
	ErrNoSpace = errors.New("no space left for screenshot")
	// ErrEmptySource means the screenshot has a zero dimension.
	ErrEmptySource = errors.New("screenshot has zero size")
)

// Stage computes the placement for one entry.
// This is a pure function with no external dependencies.
type Stage struct{}

// NewStage creates a new layout stage.
func NewStage() *Stage {
	return &Stage{}
}

// Execute computes the placement from the measured sizes.
func (s *Stage) Execute(ctx context.Context, input pipeline.LayoutInput) (pipeline.LayoutResult, error) {
	return Compute(input)
}

// Compute stacks keyword and title from the top margin, each horizontally
// centered, and fits the screenshot into the area left below them:
//
//	keyword.y    = topMargin
//	title.y      = keyword.y + keyword.h + textGap
//	textBottom   = title.y + title.h + shotGap
//	available    = (W - 2*padding) x (H - textBottom - padding)
//	scale        = min(availableW/srcW, availableH/srcH)
//
// The scaled screenshot is centered horizontally on the canvas and
// vertically within the available area. Divisions floor.
func Compute(input pipeline.LayoutInput) (pipeline.LayoutResult, error) {
	if input.Source.Width <= 0 || input.Source.Height <= 0 {
		return pipeline.LayoutResult{}, ErrEmptySource
	}

	w, h := input.CanvasWidth, input.CanvasHeight

	keyword := pipeline.Rectangle{
		X:      (w - input.Keyword.Width) / 2,
		Y:      input.TopMargin,
		Width:  input.Keyword.Width,
		Height: input.Keyword.Height,
	}
	title := pipeline.Rectangle{
		X:      (w - input.Title.Width) / 2,
		Y:      keyword.Y + keyword.Height + input.TextGap,
		Width:  input.Title.Width,
		Height: input.Title.Height,
	}

	textBottom := title.Y + title.Height + input.ShotGap
	available := pipeline.Rectangle{
		X:      input.Padding,
		Y:      textBottom,
		Width:  w - 2*input.Padding,
		Height: h - textBottom - input.Padding,
	}
	if available.Width <= 0 || available.Height <= 0 {
		return pipeline.LayoutResult{Keyword: keyword, Title: title, Available: available}, ErrNoSpace
	}

	scale := FitScale(available.Width, available.Height, input.Source.Width, input.Source.Height)
	newW := scaled(input.Source.Width, scale)
	newH := scaled(input.Source.Height, scale)

	return pipeline.LayoutResult{
		Keyword:   keyword,
		Title:     title,
		Available: available,
		Screenshot: pipeline.Rectangle{
			X:      (w - newW) / 2,
			Y:      textBottom + (available.Height-newH)/2,
			Width:  newW,
			Height: newH,
		},
		Scale: scale,
	}, nil
}

// FitScale returns the largest uniform scale that fits a srcW x srcH image
// into availW x availH.
func FitScale(availW, availH, srcW, srcH int) float64 {
	return math.Min(float64(availW)/float64(srcW), float64(availH)/float64(srcH))
}

// scaled floors v*scale, absorbing float error so that the bounding side
// of an exact fit keeps its full length. The result is at least 1.
func scaled(v int, scale float64) int {
	n := int(math.Floor(float64(v)*scale + 1e-9))
	if n < 1 {
		return 1
	}
	return n
}

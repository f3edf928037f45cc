package background

import (
	"context"
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/user/shotframe/pkg/mocks"
	"github.com/user/shotframe/pkg/pipeline"
)

var (
	top    = color.RGBA{R: 88, G: 86, B: 214, A: 255}
	bottom = color.RGBA{R: 45, G: 60, B: 170, A: 255}
)

func rgbaAt(img image.Image, x, y int) color.RGBA {
	return color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
}

func defaultInput() pipeline.BackgroundInput {
	return pipeline.BackgroundInput{
		Width:        1290,
		Height:       2796,
		GradientPath: "backgrounds/gradient.png",
		Top:          top,
		Bottom:       bottom,
	}
}

func TestGradient_Endpoints(t *testing.T) {
	img := Gradient(1290, 2796, top, bottom)

	if b := img.Bounds(); b.Dx() != 1290 || b.Dy() != 2796 {
		t.Fatalf("expected 1290x2796, got %dx%d", b.Dx(), b.Dy())
	}

	for _, x := range []int{0, 645, 1289} {
		if got := img.RGBAAt(x, 0); got != top {
			t.Errorf("top row x=%d: expected %v, got %v", x, top, got)
		}
		if got := img.RGBAAt(x, 2795); got != bottom {
			t.Errorf("bottom row x=%d: expected %v, got %v", x, bottom, got)
		}
	}
}

func TestGradient_RowsUniformAndMonotonic(t *testing.T) {
	img := Gradient(64, 300, top, bottom)

	prev := img.RGBAAt(0, 0)
	for y := 0; y < 300; y++ {
		first := img.RGBAAt(0, y)
		for x := 1; x < 64; x++ {
			if got := img.RGBAAt(x, y); got != first {
				t.Fatalf("row %d not uniform: %v vs %v", y, got, first)
			}
		}
		if first.A != 255 {
			t.Fatalf("row %d not opaque", y)
		}
		// Every channel descends from top to bottom for the default colors.
		if first.R > prev.R || first.G > prev.G || first.B > prev.B {
			t.Fatalf("row %d brighter than row above: %v > %v", y, first, prev)
		}
		prev = first
	}
}

func TestGradient_SingleRow(t *testing.T) {
	img := Gradient(3, 1, top, bottom)
	if got := img.RGBAAt(1, 0); got != top {
		t.Errorf("expected top color for single row, got %v", got)
	}
}

func TestStage_SynthesizesWhenFileMissing(t *testing.T) {
	fs := mocks.NewFileSystem()
	sink := mocks.NewDebugSink(true)
	stage := NewStage(fs, &mocks.Renderer{}, sink, mocks.NewLogger())

	result, err := stage.Execute(context.Background(), defaultInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.FromFile {
		t.Error("expected synthesized background")
	}
	if got := rgbaAt(result.Image, 0, 0); got != top {
		t.Errorf("expected top color, got %v", got)
	}
	if sink.Background == nil {
		t.Error("expected background to be sent to the debug sink")
	}
}

func TestStage_LoadsAndResizesFile(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.AddFile("backgrounds/gradient.png", []byte("png"))

	var resizedTo image.Point
	renderer := &mocks.Renderer{
		DecodeImageFunc: func(data []byte) (image.Image, error) {
			return image.NewRGBA(image.Rect(0, 0, 10, 20)), nil
		},
		ResizeImageFunc: func(img image.Image, w, h int) image.Image {
			resizedTo = image.Pt(w, h)
			out := image.NewNRGBA(image.Rect(0, 0, w, h))
			out.SetNRGBA(0, 0, color.NRGBA{R: 1, G: 2, B: 3, A: 255})
			return out
		},
	}
	stage := NewStage(fs, renderer, mocks.NewDebugSink(false), mocks.NewLogger())

	result, err := stage.Execute(context.Background(), defaultInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.FromFile {
		t.Error("expected background from file")
	}
	if resizedTo != image.Pt(1290, 2796) {
		t.Errorf("expected resize to canvas size, got %v", resizedTo)
	}
	if got := rgbaAt(result.Image, 0, 0); got != (color.RGBA{R: 1, G: 2, B: 3, A: 255}) {
		t.Errorf("expected loaded pixel, got %v", got)
	}
}

func TestStage_UsesResizedImageAsIs(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.AddFile("backgrounds/gradient.png", []byte("png"))

	resized := image.NewNRGBA(image.Rect(0, 0, 1290, 2796))
	renderer := &mocks.Renderer{
		ResizeImageFunc: func(img image.Image, w, h int) image.Image {
			return resized
		},
	}
	stage := NewStage(fs, renderer, mocks.NewDebugSink(false), mocks.NewLogger())

	result, err := stage.Execute(context.Background(), defaultInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Image != image.Image(resized) {
		t.Error("expected the renderer's resized image to be returned without another copy")
	}
}

func TestStage_UndecodableFileFails(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.AddFile("backgrounds/gradient.png", []byte("garbage"))
	renderer := &mocks.Renderer{
		DecodeImageFunc: func(data []byte) (image.Image, error) {
			return nil, errors.New("bad image")
		},
	}
	stage := NewStage(fs, renderer, mocks.NewDebugSink(false), mocks.NewLogger())

	if _, err := stage.Execute(context.Background(), defaultInput()); err == nil {
		t.Error("expected error for undecodable gradient")
	}
}

func TestStage_EmptyPathSkipsLookup(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.ExistsFunc = func(path string) (bool, error) {
		t.Errorf("unexpected lookup of %q", path)
		return false, nil
	}
	stage := NewStage(fs, &mocks.Renderer{}, mocks.NewDebugSink(false), mocks.NewLogger())

	input := defaultInput()
	input.GradientPath = ""
	if _, err := stage.Execute(context.Background(), input); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestStage_InvalidSize(t *testing.T) {
	stage := NewStage(mocks.NewFileSystem(), &mocks.Renderer{}, mocks.NewDebugSink(false), mocks.NewLogger())

	input := defaultInput()
	input.Height = 0
	if _, err := stage.Execute(context.Background(), input); err == nil {
		t.Error("expected error for zero height")
	}
}

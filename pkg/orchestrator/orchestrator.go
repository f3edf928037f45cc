// Package orchestrator runs the batch: fonts and background once, then one
// compose pass per screenshot entry.
package orchestrator

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"path/filepath"
	"strings"

	"github.com/corona10/goimagehash"

	"github.com/user/shotframe/pkg/pipeline"
	"github.com/user/shotframe/pkg/ports"
)

// Config contains all configuration for a batch run. Paths are used as given.
type Config struct {
	Screenshots []pipeline.ScreenshotSpec

	// Paths
	ScreenshotDir   string
	OutputDir       string
	OutputSuffix    string
	GradientPath    string
	KeywordFontPath string
	TitleFontPath   string

	// Canvas
	CanvasWidth    int
	CanvasHeight   int
	GradientTop    color.RGBA
	GradientBottom color.RGBA

	// Text
	KeywordFontSize float64
	TitleFontSize   float64
	TextColor       color.RGBA

	// Spacing
	Padding   int
	TopMargin int
	TextGap   int
	ShotGap   int
}

// DefaultConfig returns a Config with the App Store 6.7" defaults and no entries.
func DefaultConfig() Config {
	return Config{
		ScreenshotDir:   filepath.Join("screenshots", "ko"),
		OutputDir:       filepath.Join("screenshots", "ko"),
		OutputSuffix:    "_framed",
		GradientPath:    filepath.Join("backgrounds", "gradient.png"),
		KeywordFontPath: filepath.Join("fonts", "Pretendard-Bold.ttf"),
		TitleFontPath:   filepath.Join("fonts", "Pretendard-Regular.ttf"),

		CanvasWidth:    1290,
		CanvasHeight:   2796,
		GradientTop:    color.RGBA{R: 88, G: 86, B: 214, A: 255},
		GradientBottom: color.RGBA{R: 45, G: 60, B: 170, A: 255},

		KeywordFontSize: 100,
		TitleFontSize:   48,
		TextColor:       color.RGBA{R: 255, G: 255, B: 255, A: 255},

		Padding:   80,
		TopMargin: 180,
		TextGap:   30,
		ShotGap:   60,
	}
}

// EntryResult is the outcome of one screenshot entry.
type EntryResult struct {
	Spec   pipeline.ScreenshotSpec
	Output string // Written file; empty when Err is set
	Bytes  int    // Size of the encoded PNG
	Err    error
	Layout pipeline.LayoutResult
	Hash   string // Perceptual hash of the framed image, empty if unavailable
}

// OK reports whether the entry was written.
func (e EntryResult) OK() bool {
	return e.Err == nil
}

// RunResult contains the outcome of a batch run.
type RunResult struct {
	KeywordFont ports.Font
	TitleFont   ports.Font
	Background  pipeline.BackgroundResult
	Entries     []EntryResult
	Succeeded   int
	Failed      int
}

// Orchestrator coordinates the batch.
type Orchestrator struct {
	backgroundStage pipeline.Stage[pipeline.BackgroundInput, pipeline.BackgroundResult]
	composeStage    pipeline.Stage[pipeline.ComposeInput, pipeline.ComposeResult]
	fonts           ports.FontLoader
	renderer        ports.Renderer
	fs              ports.FileSystem
	logger          ports.Logger
}

// New creates a new Orchestrator.
func New(
	backgroundStage pipeline.Stage[pipeline.BackgroundInput, pipeline.BackgroundResult],
	composeStage pipeline.Stage[pipeline.ComposeInput, pipeline.ComposeResult],
	fonts ports.FontLoader,
	renderer ports.Renderer,
	fs ports.FileSystem,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		backgroundStage: backgroundStage,
		composeStage:    composeStage,
		fonts:           fonts,
		renderer:        renderer,
		fs:              fs,
		logger:          logger,
	}
}

// Run processes every entry in order. A failing entry is logged and recorded
// and the batch continues. The returned error is non-nil only when the run
// could not start or was cancelled; RunResult is valid in both cases.
func (o *Orchestrator) Run(ctx context.Context, config Config) (RunResult, error) {
	var result RunResult
	o.logger.Info("Starting batch of %d screenshots", len(config.Screenshots))

	result.KeywordFont = o.fonts.Load(config.KeywordFontPath, config.KeywordFontSize)
	result.TitleFont = o.fonts.Load(config.TitleFontPath, config.TitleFontSize)
	o.logger.Info("Using keyword font: %s (%s)", fontName(result.KeywordFont), result.KeywordFont.Source)
	o.logger.Info("Using title font: %s (%s)", fontName(result.TitleFont), result.TitleFont.Source)

	bg, err := o.backgroundStage.Execute(ctx, pipeline.BackgroundInput{
		Width:        config.CanvasWidth,
		Height:       config.CanvasHeight,
		GradientPath: config.GradientPath,
		Top:          config.GradientTop,
		Bottom:       config.GradientBottom,
	})
	if err != nil {
		return result, fmt.Errorf("background stage: %w", err)
	}
	result.Background = bg

	if err := o.fs.MkdirAll(config.OutputDir); err != nil {
		return result, fmt.Errorf("create output directory: %w", err)
	}

	style := pipeline.ComposeStyle{
		TextColor: config.TextColor,
		Padding:   config.Padding,
		TopMargin: config.TopMargin,
		TextGap:   config.TextGap,
		ShotGap:   config.ShotGap,
	}

	for _, spec := range config.Screenshots {
		if err := ctx.Err(); err != nil {
			o.logger.Warn("Interrupted, stopping batch...")
			return result, err
		}

		o.logger.Info("Processing %s...", spec.File)
		entry := o.processEntry(ctx, config, spec, bg.Image, result.KeywordFont, result.TitleFont, style)
		if entry.OK() {
			result.Succeeded++
			o.logger.Info("  Saved: %s", entry.Output)
		} else {
			result.Failed++
			o.logger.Error("  Failed to process %s: %s", spec.File, entry.Err)
		}
		result.Entries = append(result.Entries, entry)
	}

	o.logger.Info("Done! %d saved, %d failed", result.Succeeded, result.Failed)
	return result, nil
}

func (o *Orchestrator) processEntry(
	ctx context.Context,
	config Config,
	spec pipeline.ScreenshotSpec,
	bg image.Image,
	keywordFont, titleFont ports.Font,
	style pipeline.ComposeStyle,
) EntryResult {
	entry := EntryResult{Spec: spec}

	composed, err := o.composeStage.Execute(ctx, pipeline.ComposeInput{
		Spec:          spec,
		ScreenshotDir: config.ScreenshotDir,
		Background:    bg,
		KeywordFont:   keywordFont,
		TitleFont:     titleFont,
		Style:         style,
	})
	if err != nil {
		entry.Err = err
		return entry
	}
	entry.Layout = composed.Layout

	data, err := o.renderer.EncodePNG(composed.Image)
	if err != nil {
		entry.Err = fmt.Errorf("encode %s: %w", spec.File, err)
		return entry
	}

	output := filepath.Join(config.OutputDir, OutputName(spec.File, config.OutputSuffix))
	if err := o.fs.WriteFile(output, data); err != nil {
		entry.Err = fmt.Errorf("write %s: %w", output, err)
		return entry
	}
	entry.Output = output
	entry.Bytes = len(data)

	hash, err := goimagehash.PerceptionHash(composed.Image)
	if err != nil {
		o.logger.Debug("Failed to hash %s: %s", output, err)
	} else {
		entry.Hash = hash.ToString()
	}
	return entry
}

// OutputName inserts suffix before the extension of file's base name:
// "01_counter_ko.png" becomes "01_counter_ko_framed.png". A name without an
// extension gets ".png" appended after the suffix.
func OutputName(file, suffix string) string {
	base := filepath.Base(file)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	if ext == "" {
		ext = ".png"
	}
	return stem + suffix + ext
}

func fontName(f ports.Font) string {
	if f.Path == "" {
		return "builtin"
	}
	return f.Path
}

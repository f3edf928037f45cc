// Package summarizer provides summary generation for batch results.
package summarizer

import (
	"time"

	"github.com/user/shotframe/pkg/orchestrator"
	"github.com/user/shotframe/pkg/ports"
)

// Summary contains all data collected during a batch run.
type Summary struct {
	// Metadata
	GeneratedAt time.Time

	// Batch settings
	Settings Settings

	// Fonts actually used after fallback
	KeywordFont FontInfo
	TitleFont   FontInfo

	// Whether the background came from the gradient file
	BackgroundFromFile bool

	// Per-entry outcome, in processing order
	Entries []EntryInfo

	Succeeded int
	Failed    int
}

// Settings contains the batch configuration worth reporting.
type Settings struct {
	CanvasWidth   int
	CanvasHeight  int
	ScreenshotDir string
	OutputDir     string
	OutputSuffix  string
	GradientPath  string
}

// FontInfo describes a resolved font.
type FontInfo struct {
	Path   string
	Size   float64
	Source ports.FontSource
}

// EntryInfo describes one processed screenshot.
type EntryInfo struct {
	File    string
	Keyword string
	Title   string

	Output string
	Error  string

	Scale       float64
	ShotWidth   int
	ShotHeight  int
	FileSize    int64
	PerceptHash string
}

// OK reports whether the entry was written.
func (e EntryInfo) OK() bool {
	return e.Error == ""
}

// NewSummary creates a new Summary with the current timestamp.
func NewSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Now(),
	}
}

// Builder provides a fluent interface for building a Summary.
type Builder struct {
	summary *Summary
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		summary: NewSummary(),
	}
}

// WithSettings sets batch settings.
func (b *Builder) WithSettings(settings Settings) *Builder {
	b.summary.Settings = settings
	return b
}

// WithConfig derives settings from an orchestrator config.
func (b *Builder) WithConfig(cfg orchestrator.Config) *Builder {
	return b.WithSettings(Settings{
		CanvasWidth:   cfg.CanvasWidth,
		CanvasHeight:  cfg.CanvasHeight,
		ScreenshotDir: cfg.ScreenshotDir,
		OutputDir:     cfg.OutputDir,
		OutputSuffix:  cfg.OutputSuffix,
		GradientPath:  cfg.GradientPath,
	})
}

// WithFonts sets the resolved fonts.
func (b *Builder) WithFonts(keyword, title ports.Font) *Builder {
	b.summary.KeywordFont = fontInfo(keyword)
	b.summary.TitleFont = fontInfo(title)
	return b
}

// WithEntry appends one entry and updates the counters.
func (b *Builder) WithEntry(entry EntryInfo) *Builder {
	b.summary.Entries = append(b.summary.Entries, entry)
	if entry.OK() {
		b.summary.Succeeded++
	} else {
		b.summary.Failed++
	}
	return b
}

// WithRun copies fonts, background origin and entries from a run result.
func (b *Builder) WithRun(result orchestrator.RunResult) *Builder {
	b.WithFonts(result.KeywordFont, result.TitleFont)
	b.summary.BackgroundFromFile = result.Background.FromFile
	for _, e := range result.Entries {
		info := EntryInfo{
			File:        e.Spec.File,
			Keyword:     e.Spec.Keyword,
			Title:       e.Spec.Title,
			Output:      e.Output,
			FileSize:    int64(e.Bytes),
			PerceptHash: e.Hash,
		}
		if e.Err != nil {
			info.Error = e.Err.Error()
		} else {
			info.Scale = e.Layout.Scale
			info.ShotWidth = e.Layout.Screenshot.Width
			info.ShotHeight = e.Layout.Screenshot.Height
		}
		b.WithEntry(info)
	}
	return b
}

// Build returns the constructed Summary.
func (b *Builder) Build() *Summary {
	return b.summary
}

func fontInfo(f ports.Font) FontInfo {
	return FontInfo{Path: f.Path, Size: f.Size, Source: f.Source}
}

package summarizer

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/user/shotframe/pkg/orchestrator"
	"github.com/user/shotframe/pkg/pipeline"
	"github.com/user/shotframe/pkg/ports"
)

func TestNewSummary(t *testing.T) {
	before := time.Now()
	summary := NewSummary()
	after := time.Now()

	if summary.GeneratedAt.Before(before) || summary.GeneratedAt.After(after) {
		t.Errorf("GeneratedAt should be between %v and %v, got %v",
			before, after, summary.GeneratedAt)
	}
}

func TestBuilder_WithConfig(t *testing.T) {
	cfg := orchestrator.DefaultConfig()
	summary := NewBuilder().WithConfig(cfg).Build()

	want := Settings{
		CanvasWidth:   1290,
		CanvasHeight:  2796,
		ScreenshotDir: cfg.ScreenshotDir,
		OutputDir:     cfg.OutputDir,
		OutputSuffix:  "_framed",
		GradientPath:  cfg.GradientPath,
	}
	if diff := cmp.Diff(want, summary.Settings); diff != "" {
		t.Errorf("settings mismatch (-want +got):\n%s", diff)
	}
}

func TestBuilder_WithEntry_Counts(t *testing.T) {
	summary := NewBuilder().
		WithEntry(EntryInfo{File: "a.png", Output: "out/a.png"}).
		WithEntry(EntryInfo{File: "b.png", Error: "screenshot not found"}).
		WithEntry(EntryInfo{File: "c.png", Output: "out/c.png"}).
		Build()

	if summary.Succeeded != 2 || summary.Failed != 1 {
		t.Errorf("expected 2/1, got %d/%d", summary.Succeeded, summary.Failed)
	}
	if len(summary.Entries) != 3 || summary.Entries[1].File != "b.png" {
		t.Errorf("entries out of order: %+v", summary.Entries)
	}
}

func TestBuilder_WithRun(t *testing.T) {
	result := orchestrator.RunResult{
		KeywordFont: ports.Font{Path: "fonts/Pretendard-Bold.ttf", Size: 100, Source: ports.FontRequested},
		TitleFont:   ports.Font{Size: 48, Source: ports.FontBuiltin},
		Background:  pipeline.BackgroundResult{FromFile: true},
		Entries: []orchestrator.EntryResult{
			{
				Spec:   pipeline.ScreenshotSpec{File: "01.png", Keyword: "k", Title: "t"},
				Output: "out/01_framed.png",
				Bytes:  2048,
				Hash:   "p:00ff",
				Layout: pipeline.LayoutResult{
					Scale:      0.5,
					Screenshot: pipeline.Rectangle{Width: 645, Height: 1398},
				},
			},
			{
				Spec: pipeline.ScreenshotSpec{File: "02.png"},
				Err:  errors.New("screenshot not found"),
			},
		},
	}

	summary := NewBuilder().WithRun(result).Build()

	if summary.Succeeded != 1 || summary.Failed != 1 {
		t.Errorf("expected 1/1, got %d/%d", summary.Succeeded, summary.Failed)
	}
	if !summary.BackgroundFromFile {
		t.Error("expected background from file")
	}
	if summary.TitleFont.Source != ports.FontBuiltin || summary.KeywordFont.Size != 100 {
		t.Errorf("unexpected fonts %+v / %+v", summary.KeywordFont, summary.TitleFont)
	}

	want := []EntryInfo{
		{
			File: "01.png", Keyword: "k", Title: "t",
			Output: "out/01_framed.png",
			Scale:  0.5, ShotWidth: 645, ShotHeight: 1398,
			FileSize: 2048, PerceptHash: "p:00ff",
		},
		{File: "02.png", Error: "screenshot not found"},
	}
	if diff := cmp.Diff(want, summary.Entries); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
}

package main

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/user/shotframe/pkg/config"
)

func TestBuildConfig_NoFlags(t *testing.T) {
	cmd := &FrameCmd{Dir: "."}

	cfg, err := cmd.buildConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(config.NewConfigBuilder().Build(), cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildConfig_Flags(t *testing.T) {
	intp := func(v int) *int { return &v }
	floatp := func(v float64) *float64 { return &v }

	cmd := &FrameCmd{
		Dir:            ".",
		Output:         "out",
		Suffix:         strPtr("_store"),
		Screenshots:    strPtr("screenshots/en"),
		Gradient:       strPtr("backgrounds/bg.png"),
		Width:          intp(1242),
		Padding:        intp(40),
		TopMargin:      intp(120),
		TextGap:        intp(16),
		ShotGap:        intp(32),
		KeywordSize:    floatp(90),
		TitleSize:      floatp(40),
		KeywordFont:    strPtr("fonts/Bold.otf"),
		TitleFont:      strPtr("fonts/Regular.otf"),
		TextColor:      strPtr("#101010"),
		GradientTop:    strPtr("#FF0000"),
		GradientBottom: strPtr("0000ff"),
	}

	cfg, err := cmd.buildConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := config.Defaults()
	want.Canvas.Width = 1242
	want.Canvas.Padding = 40
	want.Canvas.TopMargin = 120
	want.Canvas.TextGap = 16
	want.Canvas.ShotGap = 32
	want.Canvas.GradientTop = "#ff0000"
	want.Canvas.GradientBottom = "#0000ff"
	want.Text.KeywordSize = 90
	want.Text.TitleSize = 40
	want.Text.KeywordFont = "fonts/Bold.otf"
	want.Text.TitleFont = "fonts/Regular.otf"
	want.Text.Color = "#101010"
	want.Paths.Screenshots = "screenshots/en"
	want.Paths.Gradient = "backgrounds/bg.png"
	want.Paths.Output = "out"
	want.Paths.OutputSuffix = "_store"

	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildConfig_InvalidColor(t *testing.T) {
	tests := []struct {
		name string
		cmd  FrameCmd
		flag string
	}{
		{"text color", FrameCmd{TextColor: strPtr("white")}, "--text-color"},
		{"gradient top", FrameCmd{GradientTop: strPtr("#12345")}, "--gradient-top"},
		{"gradient bottom", FrameCmd{GradientBottom: strPtr("#gggggg")}, "--gradient-bottom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.cmd.buildConfig()
			if err == nil {
				t.Fatal("expected error for invalid colour")
			}
			if !strings.HasPrefix(err.Error(), tt.flag) {
				t.Errorf("expected error to name %s, got %v", tt.flag, err)
			}
		})
	}
}

func strPtr(v string) *string { return &v }

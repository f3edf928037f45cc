// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/user/shotframe/pkg/orchestrator"
	"github.com/user/shotframe/pkg/pipeline"
)

// Config represents the full configuration for shotframe.
type Config struct {
	Canvas      CanvasConfig       `yaml:"canvas"`
	Text        TextConfig         `yaml:"text"`
	Paths       PathsConfig        `yaml:"paths"`
	Screenshots []ScreenshotConfig `yaml:"screenshots"`
}

// CanvasConfig describes the output size, spacing and backdrop.
type CanvasConfig struct {
	Width          int    `yaml:"width"`
	Height         int    `yaml:"height"`
	Padding        int    `yaml:"padding"`
	TopMargin      int    `yaml:"top_margin"`
	TextGap        int    `yaml:"text_gap"`
	ShotGap        int    `yaml:"shot_gap"`
	GradientTop    string `yaml:"gradient_top"`
	GradientBottom string `yaml:"gradient_bottom"`
}

// TextConfig describes the two text lines.
type TextConfig struct {
	KeywordFont string  `yaml:"keyword_font"`
	KeywordSize float64 `yaml:"keyword_size"`
	TitleFont   string  `yaml:"title_font"`
	TitleSize   float64 `yaml:"title_size"`
	Color       string  `yaml:"color"`
}

// PathsConfig holds directories and files, relative to the base directory.
type PathsConfig struct {
	Screenshots  string `yaml:"screenshots"`
	Output       string `yaml:"output"`
	OutputSuffix string `yaml:"output_suffix"`
	Gradient     string `yaml:"gradient"`
}

// ScreenshotConfig is one entry of the batch.
type ScreenshotConfig struct {
	File    string `yaml:"file"`
	Keyword string `yaml:"keyword"`
	Title   string `yaml:"title"`
}

// DefaultScreenshots returns the five Korean App Store entries.
func DefaultScreenshots() []ScreenshotConfig {
	return []ScreenshotConfig{
		{File: "01_counter_ko.png", Keyword: "손은 뜨개질에만", Title: `"다음" 한마디로 카운트`},
		{File: "02_projects_ko.png", Keyword: "3개 동시에? OK", Title: "여러 프로젝트 동시에"},
		{File: "03_memo_ko.png", Keyword: "메모해두면 알려드려요", Title: "특정 단에 메모 알림"},
		{File: "04_progress_ko.png", Keyword: "27% 완성!", Title: "목표까지 얼마나 남았을까"},
		{File: "05_settings_ko.png", Keyword: "내 스타일대로", Title: "다크모드, 햅틱 피드백"},
	}
}

// Defaults returns a Config with default values for an iPhone 6.7" listing.
// Values come from orchestrator.DefaultConfig so each constant has one home.
func Defaults() Config {
	d := orchestrator.DefaultConfig()
	return Config{
		Canvas: CanvasConfig{
			Width:          d.CanvasWidth,
			Height:         d.CanvasHeight,
			Padding:        d.Padding,
			TopMargin:      d.TopMargin,
			TextGap:        d.TextGap,
			ShotGap:        d.ShotGap,
			GradientTop:    FormatColor(d.GradientTop),
			GradientBottom: FormatColor(d.GradientBottom),
		},
		Text: TextConfig{
			KeywordFont: d.KeywordFontPath,
			KeywordSize: d.KeywordFontSize,
			TitleFont:   d.TitleFontPath,
			TitleSize:   d.TitleFontSize,
			Color:       FormatColor(d.TextColor),
		},
		Paths: PathsConfig{
			Screenshots:  d.ScreenshotDir,
			Output:       d.OutputDir,
			OutputSuffix: d.OutputSuffix,
			Gradient:     d.GradientPath,
		},
		Screenshots: DefaultScreenshots(),
	}
}

// LoadFromFile loads configuration from a YAML file on top of Defaults.
// Keys absent from the file keep their defaults; a screenshots list in the
// file replaces the default list entirely.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	for i, s := range cfg.Screenshots {
		if s.File == "" {
			return cfg, fmt.Errorf("parse %s: screenshot %d has no file", path, i+1)
		}
	}
	return cfg, nil
}

// ParseColor parses a "#rrggbb" or "rrggbb" hex string into an opaque color.
func ParseColor(hex string) (color.RGBA, error) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color %q: want #rrggbb", hex)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

// FormatColor formats c as "#rrggbb", the form ParseColor accepts.
func FormatColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ToOrchestratorConfig converts Config to orchestrator.Config, resolving
// relative paths against baseDir.
func (c Config) ToOrchestratorConfig(baseDir string) (orchestrator.Config, error) {
	top, err := ParseColor(c.Canvas.GradientTop)
	if err != nil {
		return orchestrator.Config{}, fmt.Errorf("gradient_top: %w", err)
	}
	bottom, err := ParseColor(c.Canvas.GradientBottom)
	if err != nil {
		return orchestrator.Config{}, fmt.Errorf("gradient_bottom: %w", err)
	}
	text, err := ParseColor(c.Text.Color)
	if err != nil {
		return orchestrator.Config{}, fmt.Errorf("text color: %w", err)
	}

	specs := make([]pipeline.ScreenshotSpec, len(c.Screenshots))
	for i, s := range c.Screenshots {
		specs[i] = pipeline.ScreenshotSpec{File: s.File, Keyword: s.Keyword, Title: s.Title}
	}

	return orchestrator.Config{
		Screenshots: specs,

		ScreenshotDir:   resolve(baseDir, c.Paths.Screenshots),
		OutputDir:       resolve(baseDir, c.Paths.Output),
		OutputSuffix:    c.Paths.OutputSuffix,
		GradientPath:    resolve(baseDir, c.Paths.Gradient),
		KeywordFontPath: resolve(baseDir, c.Text.KeywordFont),
		TitleFontPath:   resolve(baseDir, c.Text.TitleFont),

		CanvasWidth:    c.Canvas.Width,
		CanvasHeight:   c.Canvas.Height,
		GradientTop:    top,
		GradientBottom: bottom,

		KeywordFontSize: c.Text.KeywordSize,
		TitleFontSize:   c.Text.TitleSize,
		TextColor:       text,

		Padding:   c.Canvas.Padding,
		TopMargin: c.Canvas.TopMargin,
		TextGap:   c.Canvas.TextGap,
		ShotGap:   c.Canvas.ShotGap,
	}, nil
}

// resolve joins a relative path onto baseDir. Empty paths stay empty so that
// an unset gradient disables the lookup.
func resolve(baseDir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}

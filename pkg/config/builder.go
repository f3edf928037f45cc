package config

import "image/color"

// ConfigBuilder applies overrides to a Config through a fluent interface.
type ConfigBuilder struct {
	config Config
}

// NewConfigBuilder creates a ConfigBuilder starting from Defaults.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{config: Defaults()}
}

// NewConfigBuilderFrom creates a ConfigBuilder starting from cfg, typically
// one loaded with LoadFromFile.
func NewConfigBuilderFrom(cfg Config) *ConfigBuilder {
	return &ConfigBuilder{config: cfg}
}

// Build returns the final Config with out-of-range values corrected:
// canvas dimensions and font sizes below 1 fall back to the defaults
// and negative spacing is clamped to zero.
func (b *ConfigBuilder) Build() Config {
	cfg := b.config
	def := Defaults()

	if cfg.Canvas.Width < 1 {
		cfg.Canvas.Width = def.Canvas.Width
	}
	if cfg.Canvas.Height < 1 {
		cfg.Canvas.Height = def.Canvas.Height
	}
	if cfg.Text.KeywordSize < 1 {
		cfg.Text.KeywordSize = def.Text.KeywordSize
	}
	if cfg.Text.TitleSize < 1 {
		cfg.Text.TitleSize = def.Text.TitleSize
	}

	cfg.Canvas.Padding = nonNegative(cfg.Canvas.Padding)
	cfg.Canvas.TopMargin = nonNegative(cfg.Canvas.TopMargin)
	cfg.Canvas.TextGap = nonNegative(cfg.Canvas.TextGap)
	cfg.Canvas.ShotGap = nonNegative(cfg.Canvas.ShotGap)

	cfg.Screenshots = append([]ScreenshotConfig(nil), cfg.Screenshots...)
	return cfg
}

func nonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

// WithCanvasSize sets the output canvas dimensions.
func (b *ConfigBuilder) WithCanvasSize(width, height int) *ConfigBuilder {
	b.config.Canvas.Width = width
	b.config.Canvas.Height = height
	return b
}

// WithPadding sets the side and bottom padding around the screenshot.
func (b *ConfigBuilder) WithPadding(padding int) *ConfigBuilder {
	b.config.Canvas.Padding = padding
	return b
}

// WithTopMargin sets the distance from the top of the canvas to the keyword.
func (b *ConfigBuilder) WithTopMargin(margin int) *ConfigBuilder {
	b.config.Canvas.TopMargin = margin
	return b
}

// WithTextGap sets the gap between the keyword and title lines.
func (b *ConfigBuilder) WithTextGap(gap int) *ConfigBuilder {
	b.config.Canvas.TextGap = gap
	return b
}

// WithShotGap sets the gap between the title and the screenshot area.
func (b *ConfigBuilder) WithShotGap(gap int) *ConfigBuilder {
	b.config.Canvas.ShotGap = gap
	return b
}

// WithKeywordSize sets the keyword font size in points.
func (b *ConfigBuilder) WithKeywordSize(size float64) *ConfigBuilder {
	b.config.Text.KeywordSize = size
	return b
}

// WithTitleSize sets the title font size in points.
func (b *ConfigBuilder) WithTitleSize(size float64) *ConfigBuilder {
	b.config.Text.TitleSize = size
	return b
}

// WithKeywordFont sets the keyword font file.
func (b *ConfigBuilder) WithKeywordFont(path string) *ConfigBuilder {
	b.config.Text.KeywordFont = path
	return b
}

// WithTitleFont sets the title font file.
func (b *ConfigBuilder) WithTitleFont(path string) *ConfigBuilder {
	b.config.Text.TitleFont = path
	return b
}

// WithTextColor sets the text color.
func (b *ConfigBuilder) WithTextColor(c color.RGBA) *ConfigBuilder {
	b.config.Text.Color = FormatColor(c)
	return b
}

// WithGradientTop sets the color of the first gradient row.
func (b *ConfigBuilder) WithGradientTop(c color.RGBA) *ConfigBuilder {
	b.config.Canvas.GradientTop = FormatColor(c)
	return b
}

// WithGradientBottom sets the color of the last gradient row.
func (b *ConfigBuilder) WithGradientBottom(c color.RGBA) *ConfigBuilder {
	b.config.Canvas.GradientBottom = FormatColor(c)
	return b
}

// WithScreenshotDir sets the directory the source screenshots are read from.
func (b *ConfigBuilder) WithScreenshotDir(dir string) *ConfigBuilder {
	b.config.Paths.Screenshots = dir
	return b
}

// WithOutputDir sets the directory framed images are written to.
func (b *ConfigBuilder) WithOutputDir(dir string) *ConfigBuilder {
	b.config.Paths.Output = dir
	return b
}

// WithOutputSuffix sets the suffix inserted before the output extension.
func (b *ConfigBuilder) WithOutputSuffix(suffix string) *ConfigBuilder {
	b.config.Paths.OutputSuffix = suffix
	return b
}

// WithGradientFile sets the optional pre-rendered background image.
// An empty path always synthesizes the gradient.
func (b *ConfigBuilder) WithGradientFile(path string) *ConfigBuilder {
	b.config.Paths.Gradient = path
	return b
}

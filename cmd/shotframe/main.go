// Package main provides the CLI entry point for shotframe.
package main

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/ideamans/go-l10n"

	"github.com/user/shotframe/pkg/adapters/filesink"
	"github.com/user/shotframe/pkg/adapters/fontloader"
	"github.com/user/shotframe/pkg/adapters/ggrenderer"
	"github.com/user/shotframe/pkg/adapters/logger"
	"github.com/user/shotframe/pkg/adapters/nullsink"
	"github.com/user/shotframe/pkg/adapters/osfilesystem"
	"github.com/user/shotframe/pkg/config"
	"github.com/user/shotframe/pkg/orchestrator"
	"github.com/user/shotframe/pkg/ports"
	"github.com/user/shotframe/pkg/stages/background"
	"github.com/user/shotframe/pkg/stages/compose"
	"github.com/user/shotframe/pkg/stages/layout"
	"github.com/user/shotframe/pkg/summarizer"
)

// CLI defines the command-line interface with subcommands.
type CLI struct {
	Frame   FrameCmd   `cmd:"" default:"withargs" help:"Frame App Store screenshots with a gradient and caption."`
	Version VersionCmd `cmd:"" help:"Show version information."`
}

// FrameCmd defines the frame subcommand, which is also the default.
type FrameCmd struct {
	// Locations
	Dir    string  `short:"C" default:"." help:"Base directory that screenshots/, fonts/ and backgrounds/ are resolved against."`
	Config string  `short:"c" type:"existingfile" help:"YAML file with settings and the screenshot list."`
	Output string  `short:"o" help:"Output directory, relative to --dir (default: the screenshot directory)."`
	Suffix *string `help:"Suffix inserted before the output extension (default: _framed)."`

	// Input overrides
	Screenshots *string `help:"Screenshot directory, relative to --dir (default: screenshots/ko)."`
	Gradient    *string `help:"Background image used instead of the synthesized gradient."`

	// Canvas overrides
	Width     *int `short:"W" help:"Canvas width (default: 1290)."`
	Height    *int `short:"H" help:"Canvas height (default: 2796)."`
	Padding   *int `help:"Horizontal padding around the screenshot (default: 80)."`
	TopMargin *int `help:"Space above the keyword (default: 180)."`
	TextGap   *int `help:"Gap between keyword and title (default: 30)."`
	ShotGap   *int `help:"Gap between title and screenshot (default: 60)."`

	// Text overrides
	KeywordSize *float64 `help:"Keyword font size in points (default: 100)."`
	TitleSize   *float64 `help:"Title font size in points (default: 48)."`
	KeywordFont *string  `help:"Keyword font file, relative to --dir."`
	TitleFont   *string  `help:"Title font file, relative to --dir."`

	// Colour overrides, #rrggbb
	TextColor      *string `help:"Caption colour (default: #ffffff)."`
	GradientTop    *string `help:"Gradient colour at the top edge (default: #5856d6)."`
	GradientBottom *string `help:"Gradient colour at the bottom edge (default: #2d3caa)."`

	// Summary
	Summary string `short:"s" help:"Write a Markdown summary of the run to this file."`

	// Debug options
	Debug    bool   `short:"d" help:"Enable debug output."`
	DebugDir string `default:"./debug" help:"Directory for debug output."`

	// Logging options
	LogLevel string `short:"l" default:"info" enum:"debug,info,warn,error" help:"Log level (debug, info, warn, error)."`
	Quiet    bool   `short:"Q" help:"Suppress all log output."`
}

// VersionCmd shows version information.
type VersionCmd struct{}

var version = "dev"

func main() {
	cli := CLI{}

	ctx := kong.Parse(&cli,
		kong.Name("shotframe"),
		kong.Description("Frame App Store screenshots with a gradient background, keyword and title."),
		kong.UsageOnError(),
	)

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

// Run executes the frame command.
func (cmd *FrameCmd) Run() error {
	cfg, err := cmd.buildConfig()
	if err != nil {
		return err
	}
	orchConfig, err := cfg.ToOrchestratorConfig(cmd.Dir)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Create logger
	var log ports.Logger
	if cmd.Quiet {
		log = logger.NewNoop()
	} else {
		log = logger.NewConsole(ports.ParseLogLevel(cmd.LogLevel))
	}

	// Setup context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			log.Warn("Interrupted, shutting down...")
			cancel()
		case <-ctx.Done():
		}
	}()

	// Create adapters
	fs := osfilesystem.New()
	renderer := ggrenderer.New()
	fonts := fontloader.New(fs, log)

	// Create debug sink
	var sink ports.DebugSink
	if cmd.Debug {
		if err := fs.MkdirAll(cmd.DebugDir); err != nil {
			return fmt.Errorf("create debug directory: %w", err)
		}
		sink = filesink.New(cmd.DebugDir, fs, renderer)
	} else {
		sink = nullsink.New()
	}

	// Create stages
	backgroundStage := background.NewStage(fs, renderer, sink, log)
	composeStage := compose.NewStage(fs, renderer, layout.NewStage(), sink, log)

	orch := orchestrator.New(backgroundStage, composeStage, fonts, renderer, fs, log)

	log.Info("Framing screenshots in %s...", orchConfig.ScreenshotDir)

	result, runErr := orch.Run(ctx, orchConfig)

	// A cancelled run still reports what it finished.
	if cmd.Summary != "" && (runErr == nil || errors.Is(runErr, context.Canceled)) {
		summary := summarizer.NewBuilder().
			WithConfig(orchConfig).
			WithRun(result).
			Build()
		writer := summarizer.NewWriter(
			summarizer.NewMarkdownFormatter(
				summarizer.WithTranslator(l10n.T),
				summarizer.WithVersion(version),
			),
			fs,
		)
		if err := writer.Write(cmd.Summary, summary); err != nil {
			log.Warn("Failed to write summary: %s", err)
		} else {
			log.Info("Summary written to %s", cmd.Summary)
		}
	}

	return runErr
}

// buildConfig loads the optional YAML file and applies CLI overrides.
func (cmd *FrameCmd) buildConfig() (config.Config, error) {
	base := config.Defaults()
	if cmd.Config != "" {
		loaded, err := config.LoadFromFile(cmd.Config)
		if err != nil {
			return config.Config{}, fmt.Errorf("load config: %w", err)
		}
		base = loaded
	}

	builder := config.NewConfigBuilderFrom(base)

	if cmd.Output != "" {
		builder.WithOutputDir(cmd.Output)
	}
	if cmd.Suffix != nil {
		builder.WithOutputSuffix(*cmd.Suffix)
	}
	if cmd.Width != nil || cmd.Height != nil {
		width, height := base.Canvas.Width, base.Canvas.Height
		if cmd.Width != nil {
			width = *cmd.Width
		}
		if cmd.Height != nil {
			height = *cmd.Height
		}
		builder.WithCanvasSize(width, height)
	}
	if cmd.Screenshots != nil {
		builder.WithScreenshotDir(*cmd.Screenshots)
	}
	if cmd.Gradient != nil {
		builder.WithGradientFile(*cmd.Gradient)
	}
	if cmd.Padding != nil {
		builder.WithPadding(*cmd.Padding)
	}
	if cmd.TopMargin != nil {
		builder.WithTopMargin(*cmd.TopMargin)
	}
	if cmd.TextGap != nil {
		builder.WithTextGap(*cmd.TextGap)
	}
	if cmd.ShotGap != nil {
		builder.WithShotGap(*cmd.ShotGap)
	}
	if cmd.KeywordSize != nil {
		builder.WithKeywordSize(*cmd.KeywordSize)
	}
	if cmd.TitleSize != nil {
		builder.WithTitleSize(*cmd.TitleSize)
	}
	if cmd.KeywordFont != nil {
		builder.WithKeywordFont(*cmd.KeywordFont)
	}
	if cmd.TitleFont != nil {
		builder.WithTitleFont(*cmd.TitleFont)
	}

	colors := []struct {
		flag  string
		value *string
		apply func(color.RGBA) *config.ConfigBuilder
	}{
		{"--text-color", cmd.TextColor, builder.WithTextColor},
		{"--gradient-top", cmd.GradientTop, builder.WithGradientTop},
		{"--gradient-bottom", cmd.GradientBottom, builder.WithGradientBottom},
	}
	for _, c := range colors {
		if c.value == nil {
			continue
		}
		parsed, err := config.ParseColor(*c.value)
		if err != nil {
			return config.Config{}, fmt.Errorf("%s: %w", c.flag, err)
		}
		c.apply(parsed)
	}

	return builder.Build(), nil
}

// Run executes the version command.
func (cmd *VersionCmd) Run() error {
	fmt.Println(l10n.F("shotframe version %s", version))
	return nil
}

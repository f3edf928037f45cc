package summarizer

import (
	"fmt"
	"strings"
)

// MarkdownFormatter renders a Summary as a Markdown report.
type MarkdownFormatter struct {
	translate func(string) string
	version   string
}

// MarkdownOption configures a MarkdownFormatter.
type MarkdownOption func(*MarkdownFormatter)

// WithTranslator sets the function used to translate headings and labels.
func WithTranslator(translate func(string) string) MarkdownOption {
	return func(f *MarkdownFormatter) {
		f.translate = translate
	}
}

// WithVersion sets the version printed in the footer.
func WithVersion(version string) MarkdownOption {
	return func(f *MarkdownFormatter) {
		f.version = version
	}
}

// NewMarkdownFormatter creates a new MarkdownFormatter.
func NewMarkdownFormatter(opts ...MarkdownOption) *MarkdownFormatter {
	f := &MarkdownFormatter{
		translate: func(s string) string { return s },
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Format implements Formatter.
func (f *MarkdownFormatter) Format(s *Summary) string {
	t := f.translate
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", t("Screenshot Summary"))
	fmt.Fprintf(&sb, "%s: %s\n\n", t("Generated"), s.GeneratedAt.Format("2006-01-02 15:04:05"))

	fmt.Fprintf(&sb, "## %s\n\n", t("Settings"))
	fmt.Fprintf(&sb, "| %s | %s |\n", t("Item"), t("Value"))
	sb.WriteString("|---|---|\n")
	fmt.Fprintf(&sb, "| %s | %dx%d |\n", t("Canvas Size"), s.Settings.CanvasWidth, s.Settings.CanvasHeight)
	fmt.Fprintf(&sb, "| %s | %s |\n", t("Screenshot Directory"), s.Settings.ScreenshotDir)
	fmt.Fprintf(&sb, "| %s | %s |\n", t("Output Directory"), s.Settings.OutputDir)
	fmt.Fprintf(&sb, "| %s | %s |\n", t("Output Suffix"), s.Settings.OutputSuffix)
	fmt.Fprintf(&sb, "| %s | %s |\n", t("Background"), f.background(s))
	fmt.Fprintf(&sb, "| %s | %s |\n", t("Keyword Font"), f.font(s.KeywordFont))
	fmt.Fprintf(&sb, "| %s | %s |\n", t("Title Font"), f.font(s.TitleFont))
	sb.WriteString("\n")

	fmt.Fprintf(&sb, "## %s\n\n", t("Screenshots"))
	fmt.Fprintf(&sb, "| # | %s | %s | %s | %s | %s | %s |\n",
		t("File"), t("Output"), t("Status"), t("Scale"), t("Size"), t("Hash"))
	sb.WriteString("|---|---|---|---|---|---|---|\n")
	for i, e := range s.Entries {
		if e.OK() {
			fmt.Fprintf(&sb, "| %d | %s | %s | %s | %.4f (%dx%d) | %s | %s |\n",
				i+1, e.File, e.Output, t("OK"), e.Scale, e.ShotWidth, e.ShotHeight,
				formatBytes(e.FileSize), orNA(e.PerceptHash))
		} else {
			fmt.Fprintf(&sb, "| %d | %s | - | %s: %s | - | - | - |\n",
				i+1, e.File, t("Failed"), escapeCell(e.Error))
		}
	}
	sb.WriteString("\n")

	fmt.Fprintf(&sb, "**%s**: %d %s, %d %s\n", t("Result"),
		s.Succeeded, t("saved"), s.Failed, t("failed"))

	if f.version != "" {
		fmt.Fprintf(&sb, "\n---\n\nshotframe %s\n", f.version)
	}
	return sb.String()
}

func (f *MarkdownFormatter) background(s *Summary) string {
	if s.BackgroundFromFile {
		return s.Settings.GradientPath
	}
	return f.translate("Generated gradient")
}

func (f *MarkdownFormatter) font(info FontInfo) string {
	name := info.Path
	if name == "" {
		name = "builtin"
	}
	return fmt.Sprintf("%s %.0fpt (%s)", name, info.Size, f.translate(info.Source.String()))
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// formatBytes formats a byte count with binary units.
func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < 2; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %cB", float64(bytes)/float64(div), "KMG"[exp])
}

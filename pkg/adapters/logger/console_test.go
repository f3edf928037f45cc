package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/user/shotframe/pkg/ports"
)

func TestConsoleLogger_Streams(t *testing.T) {
	var out, errOut bytes.Buffer
	log := NewConsoleWriter(ports.LevelInfo, &out, &errOut)

	log.Debug("hidden %d", 1)
	log.Info("Processing %s...", "a.png")
	log.Warn("careful")
	log.Error("broken %s", "b.png")

	if strings.Contains(out.String(), "hidden") {
		t.Error("debug message should be filtered at info level")
	}
	if !strings.Contains(out.String(), "a.png") {
		t.Errorf("expected info on out, got %q", out.String())
	}
	if !strings.Contains(errOut.String(), "careful") || !strings.Contains(errOut.String(), "broken b.png") {
		t.Errorf("expected warn and error on errOut, got %q", errOut.String())
	}
	if strings.Contains(out.String(), "\033[") {
		t.Error("expected no color codes on a non-terminal writer")
	}
}

func TestConsoleLogger_WithComponent(t *testing.T) {
	var out bytes.Buffer
	log := NewConsoleWriter(ports.LevelDebug, &out, &out)

	log.WithComponent("compose").Debug("measured")

	if got := out.String(); got != "[compose] measured\n" {
		t.Errorf("unexpected output %q", got)
	}
}

func TestConsoleLogger_Quiet(t *testing.T) {
	var out bytes.Buffer
	log := NewConsoleWriter(ports.LevelQuiet, &out, &out)

	log.Error("nothing")

	if out.Len() != 0 {
		t.Errorf("expected no output, got %q", out.String())
	}
}

package summarizer

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/user/shotframe/pkg/mocks"
)

func TestWriter_Write(t *testing.T) {
	fs := mocks.NewFileSystem()
	formatter := FormatFunc(func(s *Summary) string { return "report" })
	w := NewWriter(formatter, fs)

	path := filepath.Join("out", "reports", "summary.md")
	if err := w.Write(path, NewSummary()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !fs.HasDir(filepath.Join("out", "reports")) {
		t.Error("expected parent directory to be created")
	}
	data, ok := fs.GetFile(path)
	if !ok || string(data) != "report" {
		t.Errorf("expected report to be written, got %q", data)
	}
}

func TestWriter_Write_CurrentDir(t *testing.T) {
	fs := mocks.NewFileSystem()
	mkdirs := 0
	fs.MkdirAllFunc = func(path string) error {
		mkdirs++
		return nil
	}

	w := NewWriter(FormatFunc(func(s *Summary) string { return "x" }), fs)
	if err := w.Write("summary.md", NewSummary()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mkdirs != 0 {
		t.Errorf("expected no directory creation, got %d", mkdirs)
	}
}

func TestWriter_Write_Error(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.WriteFileFunc = func(path string, data []byte) error {
		return errors.New("disk full")
	}

	w := NewWriter(NewMarkdownFormatter(), fs)
	if err := w.Write("summary.md", NewSummary()); err == nil {
		t.Error("expected error")
	}
}

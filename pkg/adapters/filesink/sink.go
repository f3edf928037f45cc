// Package filesink provides a file-based debug sink implementation.
package filesink

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/user/shotframe/pkg/ports"
)

// Sink saves debug output under a base directory:
//
//	background.png
//	scaled/<name>.png
//	layout/<name>.json
type Sink struct {
	baseDir  string
	fs       ports.FileSystem
	renderer ports.Renderer
}

// New creates a new file sink.
func New(baseDir string, fs ports.FileSystem, renderer ports.Renderer) *Sink {
	return &Sink{
		baseDir:  baseDir,
		fs:       fs,
		renderer: renderer,
	}
}

// Enabled returns true as this sink saves output.
func (s *Sink) Enabled() bool {
	return true
}

// SaveBackground saves the shared background image.
func (s *Sink) SaveBackground(img image.Image) error {
	return s.savePNG(filepath.Join(s.baseDir, "background.png"), img)
}

// SaveScaledScreenshot saves a resampled screenshot.
func (s *Sink) SaveScaledScreenshot(name string, img image.Image) error {
	return s.savePNG(filepath.Join(s.baseDir, "scaled", stem(name)+".png"), img)
}

// SaveLayoutJSON saves the placement of one entry.
func (s *Sink) SaveLayoutJSON(name string, data []byte) error {
	return s.fs.WriteFile(filepath.Join(s.baseDir, "layout", stem(name)+".json"), data)
}

func (s *Sink) savePNG(path string, img image.Image) error {
	data, err := s.renderer.EncodePNG(img)
	if err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	return s.fs.WriteFile(path, data)
}

func stem(name string) string {
	base := filepath.Base(name)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Ensure Sink implements ports.DebugSink
var _ ports.DebugSink = (*Sink)(nil)

package ports

import (
	"image"
)

// DebugSink receives intermediate results of a batch run.
type DebugSink interface {
	// Enabled returns true if debug output is enabled.
	Enabled() bool

	// SaveBackground saves the shared background image.
	SaveBackground(img image.Image) error

	// SaveScaledScreenshot saves a screenshot after resampling, before it is pasted.
	SaveScaledScreenshot(name string, img image.Image) error

	// SaveLayoutJSON saves the computed placement of one entry.
	SaveLayoutJSON(name string, data []byte) error
}

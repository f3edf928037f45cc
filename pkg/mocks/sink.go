package mocks

import (
	"image"
	"sync"

	"github.com/user/shotframe/pkg/ports"
)

// DebugSink is a mock implementation of ports.DebugSink.
type DebugSink struct {
	mu sync.RWMutex

	enabled bool

	Background        image.Image
	ScaledScreenshots map[string]image.Image
	Layouts           map[string][]byte
}

// NewDebugSink creates a new mock DebugSink.
func NewDebugSink(enabled bool) *DebugSink {
	return &DebugSink{
		enabled:           enabled,
		ScaledScreenshots: make(map[string]image.Image),
		Layouts:           make(map[string][]byte),
	}
}

func (m *DebugSink) Enabled() bool {
	return m.enabled
}

func (m *DebugSink) SaveBackground(img image.Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Background = img
	return nil
}

func (m *DebugSink) SaveScaledScreenshot(name string, img image.Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ScaledScreenshots[name] = img
	return nil
}

func (m *DebugSink) SaveLayoutJSON(name string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Layouts[name] = data
	return nil
}

var _ ports.DebugSink = (*DebugSink)(nil)

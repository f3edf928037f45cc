package mocks

import (
	"sync"

	"golang.org/x/image/font/basicfont"

	"github.com/user/shotframe/pkg/ports"
)

// FontLoader is a mock implementation of ports.FontLoader.
// Without LoadFunc it returns the 7x13 bitmap face tagged as requested.
type FontLoader struct {
	mu       sync.Mutex
	LoadFunc func(path string, size float64) ports.Font
	Calls    []string
}

func (m *FontLoader) Load(path string, size float64) ports.Font {
	m.mu.Lock()
	m.Calls = append(m.Calls, path)
	m.mu.Unlock()
	if m.LoadFunc != nil {
		return m.LoadFunc(path, size)
	}
	return ports.Font{Face: basicfont.Face7x13, Path: path, Size: size, Source: ports.FontRequested}
}

var _ ports.FontLoader = (*FontLoader)(nil)

package mocks

import (
	"fmt"
	"strings"
	"sync"

	"github.com/user/shotframe/pkg/ports"
)

// Entry is one recorded log line.
type Entry struct {
	Level     ports.LogLevel
	Component string
	Message   string
}

// Logger is a mock ports.Logger that records formatted messages.
// Component loggers share the parent's record.
type Logger struct {
	component string
	rec       *record
}

type record struct {
	mu      sync.Mutex
	entries []Entry
}

// NewLogger creates a new recording logger.
func NewLogger() *Logger {
	return &Logger{rec: &record{}}
}

func (m *Logger) Debug(msg string, args ...interface{}) { m.add(ports.LevelDebug, msg, args) }
func (m *Logger) Info(msg string, args ...interface{})  { m.add(ports.LevelInfo, msg, args) }
func (m *Logger) Warn(msg string, args ...interface{})  { m.add(ports.LevelWarn, msg, args) }
func (m *Logger) Error(msg string, args ...interface{}) { m.add(ports.LevelError, msg, args) }

func (m *Logger) WithComponent(component string) ports.Logger {
	return &Logger{component: component, rec: m.rec}
}

func (m *Logger) add(level ports.LogLevel, msg string, args []interface{}) {
	m.rec.mu.Lock()
	defer m.rec.mu.Unlock()
	m.rec.entries = append(m.rec.entries, Entry{
		Level:     level,
		Component: m.component,
		Message:   fmt.Sprintf(msg, args...),
	})
}

// Entries returns all recorded entries at the given level.
func (m *Logger) Entries(level ports.LogLevel) []Entry {
	m.rec.mu.Lock()
	defer m.rec.mu.Unlock()
	var out []Entry
	for _, e := range m.rec.entries {
		if e.Level == level {
			out = append(out, e)
		}
	}
	return out
}

// Contains reports whether any message at level contains substr.
func (m *Logger) Contains(level ports.LogLevel, substr string) bool {
	for _, e := range m.Entries(level) {
		if strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

var _ ports.Logger = (*Logger)(nil)

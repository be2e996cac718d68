package state

import (
	"slices"
	"strings"
	"sync"
	"time"
)

// Mock is a test double for Manager.
type Mock struct {
	mu       sync.Mutex
	settings map[string]string
	levels   *Levels
	closed   bool
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{settings: make(map[string]string)}
}

func (m *Mock) GetSetting(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.settings[key]
	return v, ok, nil
}

func (m *Mock) SetSetting(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings[key] = value
	return nil
}

func (m *Mock) DeleteSetting(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.settings, key)
	return nil
}

func (m *Mock) ListSettings() ([]Setting, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Setting, 0, len(m.settings))
	for k, v := range m.settings {
		out = append(out, Setting{Key: k, Value: v, UpdatedAt: time.Time{}})
	}
	slices.SortFunc(out, func(a, b Setting) int { return strings.Compare(a.Key, b.Key) })
	return out, nil
}

func (m *Mock) GetLevels() (*Levels, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.levels == nil {
		return &Levels{Volume: 1.0, Brightness: 1.0}, nil
	}
	l := *m.levels
	return &l, nil
}

func (m *Mock) SaveLevels(l Levels) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.levels = &l
	return nil
}

func (m *Mock) QueueLevels(l Levels) {
	_ = m.SaveLevels(l)
}

func (m *Mock) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// IsClosed returns whether Close was called.
func (m *Mock) IsClosed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)

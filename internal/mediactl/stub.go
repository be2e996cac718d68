//go:build !linux

package mediactl

import "github.com/charmbracelet/log"

// System is a no-op controller on non-Linux platforms.
type System struct{}

// NewSystem returns a no-op controller on non-Linux platforms.
func NewSystem(_ *log.Logger) *System {
	return &System{}
}

func (s *System) SetVolume(_ float64) {}

func (s *System) SetBrightness(_ float64) {}

// Close is a no-op on non-Linux platforms.
func (s *System) Close() error {
	return nil
}

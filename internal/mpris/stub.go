//go:build !linux

package mpris

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/llehouerou/peek/internal/position"
)

// Source is a no-op on non-Linux platforms.
type Source struct{}

// NewSource returns a no-op source on non-Linux platforms.
func NewSource(_ *log.Logger) (*Source, error) {
	return &Source{}, nil
}

// Run blocks until ctx is done.
func (s *Source) Run(ctx context.Context, _ func(position.NowPlaying)) error {
	<-ctx.Done()
	return nil
}

// Close is a no-op on non-Linux platforms.
func (s *Source) Close() error {
	return nil
}

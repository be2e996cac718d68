// Package looptest provides helpers for running code on a loop in tests.
package looptest

import (
	"context"
	"testing"

	"github.com/llehouerou/peek/internal/loop"
)

// Start runs a new loop in the background. The returned stop function
// cancels it and waits for Run to return; call it before leaving a
// synctest bubble.
func Start(t testing.TB) (*loop.Loop, func()) {
	t.Helper()
	l := loop.New()
	ctx, cancel := context.WithCancel(context.Background())
	go l.Run(ctx)
	return l, func() {
		cancel()
		<-l.Done()
	}
}

// Do runs fn on l and fails the test if the loop is gone.
func Do(t testing.TB, l *loop.Loop, fn func()) {
	t.Helper()
	if err := l.Do(context.Background(), fn); err != nil {
		t.Fatalf("loop.Do: %v", err)
	}
}

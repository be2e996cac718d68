// Package mediactl writes absolute volume and brightness levels to the OS.
// Writes are fire-and-forget: failures are logged, never returned.
package mediactl

import (
	"context"
	"sync"
)

// Controller accepts absolute levels in [0, 1].
type Controller interface {
	SetVolume(level float64)
	SetBrightness(level float64)
}

// Recorder is a Controller that remembers the last levels written.
// Useful when no OS surface is available and in tests.
type Recorder struct {
	mu         sync.Mutex
	volume     []float64
	brightness []float64
}

// Verify Recorder implements Controller at compile time.
var _ Controller = (*Recorder)(nil)

func (r *Recorder) SetVolume(level float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.volume = append(r.volume, clamp(level))
}

func (r *Recorder) SetBrightness(level float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.brightness = append(r.brightness, clamp(level))
}

// Volumes returns every volume level written, oldest first.
func (r *Recorder) Volumes() []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]float64(nil), r.volume...)
}

// Brightnesses returns every brightness level written, oldest first.
func (r *Recorder) Brightnesses() []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]float64(nil), r.brightness...)
}

func clamp(level float64) float64 {
	if level != level { // NaN
		return 0
	}
	return min(max(level, 0), 1)
}

// latest applies only the most recent level. A drag produces writes faster
// than the OS applies them; intermediate levels are skipped.
type latest struct {
	apply func(ctx context.Context, level float64) error
	onErr func(error)

	mu      sync.Mutex
	level   float64
	pending bool
	wake    chan struct{}
	done    chan struct{}
	cancel  context.CancelFunc
}

func newLatest(apply func(ctx context.Context, level float64) error, onErr func(error)) *latest {
	ctx, cancel := context.WithCancel(context.Background())
	l := &latest{
		apply:  apply,
		onErr:  onErr,
		wake:   make(chan struct{}, 1),
		done:   make(chan struct{}),
		cancel: cancel,
	}
	go l.run(ctx)
	return l
}

func (l *latest) set(level float64) {
	l.mu.Lock()
	l.level = clamp(level)
	l.pending = true
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
}

func (l *latest) close() {
	l.cancel()
	<-l.done
}

func (l *latest) run(ctx context.Context) {
	defer close(l.done)
	for {
		select {
		case <-ctx.Done():
			return
		case <-l.wake:
		}

		l.mu.Lock()
		level, pending := l.level, l.pending
		l.pending = false
		l.mu.Unlock()

		if !pending {
			continue
		}
		if err := l.apply(ctx, level); err != nil && l.onErr != nil {
			l.onErr(err)
		}
	}
}

package app

import (
	"context"
	"time"

	"github.com/llehouerou/peek/internal/timer"
)

// StartTimer begins a local countdown.
func (e *Engine) StartTimer(ctx context.Context, name string, d time.Duration) error {
	var err error
	if qerr := e.query(ctx, func() { err = e.timer.Start(name, d) }); qerr != nil {
		return qerr
	}
	if err == nil {
		e.logger.Info("timer started", "name", name, "duration", d)
	}
	return err
}

// TimerOp is a bridge operation reporting whether it applied.
type TimerOp func(*timer.Bridge) bool

// Timer operations for RunTimer.
var (
	TimerPause  TimerOp = (*timer.Bridge).Pause
	TimerResume TimerOp = (*timer.Bridge).Resume
	TimerToggle TimerOp = (*timer.Bridge).Toggle
	TimerReset  TimerOp = (*timer.Bridge).Reset
	TimerEnd    TimerOp = (*timer.Bridge).End
)

// RunTimer applies op and reports whether the bridge accepted it.
func (e *Engine) RunTimer(ctx context.Context, op TimerOp) (bool, error) {
	var ok bool
	err := e.query(ctx, func() {
		if e.closed {
			return
		}
		ok = op(e.timer)
	})
	return ok, err
}

// MirrorTimer forwards an external timer observation.
func (e *Engine) MirrorTimer(ext timer.External) {
	e.post(func() { e.timer.Mirror(ext) })
}

// SubscribeTimer returns a subscription to countdown changes.
func (e *Engine) SubscribeTimer(ctx context.Context) (*timer.Subscription, error) {
	var sub *timer.Subscription
	err := e.query(ctx, func() { sub = e.timer.Subscribe() })
	return sub, err
}

// Package app wires the activity engine together and exposes it to the
// outside world. Every component lives on one loop; the Engine methods
// post work onto it and are safe to call from any goroutine.
package app

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/log"

	"github.com/llehouerou/peek/internal/activity"
	"github.com/llehouerou/peek/internal/autohide"
	"github.com/llehouerou/peek/internal/errmsg"
	"github.com/llehouerou/peek/internal/hud"
	"github.com/llehouerou/peek/internal/loop"
	"github.com/llehouerou/peek/internal/mediactl"
	"github.com/llehouerou/peek/internal/position"
	"github.com/llehouerou/peek/internal/state"
	"github.com/llehouerou/peek/internal/suppress"
	"github.com/llehouerou/peek/internal/timer"
)

// Settings is everything the engine reads from configuration.
type Settings interface {
	activity.Settings
	timer.Settings
	DragGuard() time.Duration
}

// LevelStore persists slider levels across runs. QueueLevels takes every
// change and must not block; SaveLevels runs once on Close.
type LevelStore interface {
	GetLevels() (*state.Levels, error)
	SaveLevels(l state.Levels) error
	QueueLevels(l state.Levels)
}

// Deps are the engine's collaborators. Only Settings is required.
type Deps struct {
	Settings Settings
	Media    mediactl.Controller
	External timer.ExternalCanceller
	Levels   LevelStore
	Logger   *log.Logger
}

// Engine owns the single execution context and every component on it.
type Engine struct {
	loop   *loop.Loop
	logger *log.Logger
	levels LevelStore

	sched      *autohide.Scheduler
	reg        *suppress.Registry
	coord      *activity.Coordinator
	panel      *activity.Panel
	tracker    *position.Tracker
	timer      *timer.Bridge
	volume     *hud.Slider
	brightness *hud.Slider
	pulses     *hud.Pulses
	nowPlaying position.NowPlaying

	cancel context.CancelFunc
	closed bool
}

// New builds an engine. Call Start to run it.
func New(deps Deps) *Engine {
	logger := deps.Logger
	if logger == nil {
		logger = log.Default()
	}
	media := deps.Media
	if media == nil {
		media = &mediactl.Recorder{}
	}

	l := loop.New()
	sched := autohide.New(l)
	reg := suppress.New()
	coord := activity.New(sched, deps.Settings)

	vol, bright := 1.0, 1.0
	if deps.Levels != nil {
		if saved, err := deps.Levels.GetLevels(); err != nil {
			logger.Warn(errmsg.Format(errmsg.OpLevelsRestore, err))
		} else {
			vol, bright = saved.Volume, saved.Brightness
		}
	}

	return &Engine{
		loop:       l,
		logger:     logger,
		levels:     deps.Levels,
		sched:      sched,
		reg:        reg,
		coord:      coord,
		panel:      activity.NewPanel(coord, reg),
		tracker:    position.NewTracker(deps.Settings.DragGuard()),
		timer:      timer.New(sched, coord, deps.Settings, deps.External),
		volume:     hud.NewSlider(hud.TargetVolume, vol, media, coord, reg),
		brightness: hud.NewSlider(hud.TargetBrightness, bright, media, coord, reg),
		pulses:     hud.NewPulses(sched, nil),
	}
}

// Start runs the loop until ctx is done or Close is called.
func (e *Engine) Start(ctx context.Context) {
	ctx, e.cancel = context.WithCancel(ctx)
	go e.loop.Run(ctx)
}

// Done is closed once the loop has stopped.
func (e *Engine) Done() <-chan struct{} {
	return e.loop.Done()
}

// Close tears every component down on the loop, saves slider levels and
// stops the loop. It also works after the start ctx has stopped the loop.
// Safe to call twice.
func (e *Engine) Close() error {
	var (
		levels   state.Levels
		tornDown bool
	)
	teardown := func() {
		if e.closed {
			return
		}
		e.closed = true
		tornDown = true
		levels = state.Levels{Volume: e.volume.Value(), Brightness: e.brightness.Value()}
		e.volume.Close()
		e.brightness.Close()
		e.pulses.Close()
		e.panel.Release()
		e.timer.Close()
		e.coord.Close()
		e.sched.CancelAll()
	}

	if e.cancel == nil {
		// Never started: nothing else touches the components.
		teardown()
		if tornDown {
			e.saveLevels(levels)
		}
		return nil
	}

	err := e.loop.Do(context.Background(), teardown)
	e.cancel()
	<-e.loop.Done()
	if errors.Is(err, loop.ErrStopped) {
		// The start ctx stopped the loop first. It no longer runs
		// anything, so tearing down here is race free.
		teardown()
		err = nil
	}
	if tornDown {
		e.saveLevels(levels)
	}
	return err
}

// queueLevels hands the current levels to the store. Runs on the loop.
func (e *Engine) queueLevels() {
	if e.levels == nil {
		return
	}
	e.levels.QueueLevels(state.Levels{Volume: e.volume.Value(), Brightness: e.brightness.Value()})
}

func (e *Engine) saveLevels(l state.Levels) {
	if e.levels == nil {
		return
	}
	if err := e.levels.SaveLevels(l); err != nil {
		e.logger.Warn(errmsg.Format(errmsg.OpLevelsSave, err))
	}
}

// post runs fn on the loop unless the engine is closed.
func (e *Engine) post(fn func()) {
	e.loop.Post(func() {
		if e.closed {
			return
		}
		fn()
	})
}

// query runs fn on the loop and waits for it.
func (e *Engine) query(ctx context.Context, fn func()) error {
	return e.loop.Do(ctx, fn)
}

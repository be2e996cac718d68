// Package timer reconciles a countdown started here with one mirrored from
// an external, system-level timer facility. Only one countdown is shown at
// a time.
//
// Every Bridge method must run on the engine loop.
package timer

import (
	"errors"
	"time"

	"github.com/llehouerou/peek/internal/activity"
	"github.com/llehouerou/peek/internal/autohide"
	"github.com/llehouerou/peek/internal/icons"
)

// SlotDeadline is the scheduler slot of the countdown deadline.
const SlotDeadline autohide.Slot = "timer.deadline"

// Icon is the symbol shown with timer sneak peeks.
const Icon = icons.Timer

// ErrInvalidDuration is returned by Start for non-positive durations.
var ErrInvalidDuration = errors.New("timer duration must be positive")

// Settings supplies the timer configuration.
type Settings interface {
	// AllowOvertime keeps counting past the deadline instead of stopping.
	AllowOvertime() bool
	// AllowExternalControl lets End cancel an external timer.
	AllowExternalControl() bool
}

// StaticSettings is a fixed Settings value.
type StaticSettings struct {
	Overtime        bool
	ExternalControl bool
}

func (s StaticSettings) AllowOvertime() bool        { return s.Overtime }
func (s StaticSettings) AllowExternalControl() bool { return s.ExternalControl }

// Signaller is the part of the activity coordinator the bridge drives.
type Signaller interface {
	ShowSneakPeek(kind activity.Kind, value float64, icon string, opts ...activity.ShowOption)
	HideSneakPeek(kind activity.Kind)
}

// ExternalCanceller asks the external timer facility to end a timer.
// Fire-and-forget: implementations report their own failures.
type ExternalCanceller interface {
	CancelExternal(id string)
}

// External is an observation of a system-level timer.
type External struct {
	ID         string
	Name       string
	Duration   time.Duration
	Remaining  time.Duration // negative once past the deadline
	ObservedAt time.Time     // zero means now
	Running    bool          // false when the facility no longer has it
}

// Snapshot is the read model of the countdown.
type Snapshot struct {
	Owner     Owner
	State     State
	Name      string
	Duration  time.Duration
	Elapsed   time.Duration // may exceed Duration in overtime
	Remaining time.Duration // negative in overtime
	Progress  float64       // Elapsed/Duration clamped to [0, 1]
	Display   string
}

// Bridge owns the single visible countdown.
type Bridge struct {
	sched    *autohide.Scheduler
	sig      Signaller
	settings Settings
	ext      ExternalCanceller
	hub      hub

	owner    Owner
	state    State
	id       string
	name     string
	duration time.Duration

	// elapsed = accumulated + (now - since) while ticking
	accumulated time.Duration
	since       time.Time
}

// New creates an inactive bridge. ext may be nil when no external
// facility exists.
func New(sched *autohide.Scheduler, sig Signaller, settings Settings, ext ExternalCanceller) *Bridge {
	if settings == nil {
		settings = StaticSettings{Overtime: true, ExternalControl: true}
	}
	return &Bridge{sched: sched, sig: sig, settings: settings, ext: ext}
}

// Start begins a local countdown of d, replacing any current one.
func (b *Bridge) Start(name string, d time.Duration) error {
	if d <= 0 {
		return ErrInvalidDuration
	}
	now := time.Now()
	b.owner = OwnerLocal
	b.state = StateRunning
	b.id = ""
	b.name = name
	b.duration = d
	b.accumulated = 0
	b.since = now
	b.armDeadline(now)
	b.sig.ShowSneakPeek(activity.KindTimer, 0, Icon)
	b.emit(now)
	return nil
}

// Pause freezes a running local countdown. Rejected (false) for external
// runs or any other state.
func (b *Bridge) Pause() bool {
	if b.owner != OwnerLocal || b.state != StateRunning {
		return false
	}
	now := time.Now()
	b.accumulated = b.elapsed(now)
	b.state = StatePaused
	b.sched.Cancel(SlotDeadline)
	b.emit(now)
	return true
}

// Resume continues a paused local countdown.
func (b *Bridge) Resume() bool {
	if b.owner != OwnerLocal || b.state != StatePaused {
		return false
	}
	now := time.Now()
	b.since = now
	b.state = StateRunning
	b.armDeadline(now)
	b.emit(now)
	return true
}

// Toggle pauses a running local countdown or resumes a paused one.
func (b *Bridge) Toggle() bool {
	if b.state == StatePaused {
		return b.Resume()
	}
	return b.Pause()
}

// Reset restarts a local countdown from its full duration. A paused
// countdown stays paused.
func (b *Bridge) Reset() bool {
	if b.owner != OwnerLocal || !b.state.IsActive() {
		return false
	}
	now := time.Now()
	b.accumulated = 0
	b.since = now
	if b.state == StatePaused {
		b.emit(now)
		return true
	}
	b.state = StateRunning
	b.armDeadline(now)
	b.emit(now)
	return true
}

// End stops the countdown and hides it. For an external run it asks the
// external facility to cancel, which is only allowed when configured.
func (b *Bridge) End() bool {
	switch b.owner {
	case OwnerNone:
		return false
	case OwnerExternal:
		if !b.settings.AllowExternalControl() {
			return false
		}
		if b.ext != nil {
			b.ext.CancelExternal(b.id)
		}
	case OwnerLocal:
	}
	b.clear(time.Now())
	return true
}

// Mirror reconciles an observation of an external timer. A local run has
// precedence: observations are ignored while one is active. It reports
// whether the observation was applied.
func (b *Bridge) Mirror(ext External) bool {
	if b.owner == OwnerLocal && b.state.IsActive() {
		return false
	}

	now := time.Now()
	if !ext.Running {
		if b.owner == OwnerExternal && b.id == ext.ID {
			b.clear(now)
			return true
		}
		return false
	}
	if ext.Duration <= 0 {
		return false
	}

	observed := ext.ObservedAt
	if observed.IsZero() {
		observed = now
	}
	fresh := b.owner != OwnerExternal || b.id != ext.ID

	b.owner = OwnerExternal
	b.id = ext.ID
	b.name = ext.Name
	b.duration = ext.Duration
	b.accumulated = ext.Duration - ext.Remaining
	b.since = observed

	if b.accumulated+max(now.Sub(observed), 0) >= b.duration {
		b.sched.Cancel(SlotDeadline)
		b.expire(now)
	} else {
		b.state = StateRunning
		b.armDeadline(now)
	}
	if fresh {
		b.sig.ShowSneakPeek(activity.KindTimer, b.progress(now), Icon)
	}
	b.emit(now)
	return true
}

// Snapshot returns the countdown read model at now.
func (b *Bridge) Snapshot(now time.Time) Snapshot {
	elapsed := b.elapsed(now)
	remaining := b.duration - elapsed
	if b.state != StateOvertime {
		remaining = max(remaining, 0)
	}
	s := Snapshot{
		Owner:     b.owner,
		State:     b.state,
		Name:      b.name,
		Duration:  b.duration,
		Elapsed:   elapsed,
		Remaining: remaining,
		Progress:  b.progress(now),
	}
	if b.state.IsActive() {
		s.Display = FormatRemaining(remaining)
		if b.state == StateOvertime && remaining == 0 {
			s.Display = "+" + FormatRemaining(0)
		}
	}
	return s
}

// Subscribe creates a new event subscription.
func (b *Bridge) Subscribe() *Subscription {
	return b.hub.subscribe()
}

// Close cancels the deadline and closes every subscription.
func (b *Bridge) Close() {
	b.sched.Cancel(SlotDeadline)
	b.hub.closeAll()
}

func (b *Bridge) armDeadline(now time.Time) {
	b.sched.Schedule(SlotDeadline, b.duration-b.elapsed(now), b.onDeadline)
}

func (b *Bridge) onDeadline() {
	if b.state != StateRunning {
		return
	}
	now := time.Now()
	b.expire(now)
	b.sig.ShowSneakPeek(activity.KindTimer, 1, Icon)
	b.emit(now)
}

func (b *Bridge) expire(now time.Time) {
	if b.settings.AllowOvertime() {
		b.state = StateOvertime
		return
	}
	b.state = StateFinished
	b.accumulated = b.duration
	b.since = now
}

func (b *Bridge) clear(now time.Time) {
	b.sched.Cancel(SlotDeadline)
	b.owner = OwnerNone
	b.state = StateInactive
	b.id = ""
	b.name = ""
	b.duration = 0
	b.accumulated = 0
	b.since = time.Time{}
	b.sig.HideSneakPeek(activity.KindTimer)
	b.emit(now)
}

func (b *Bridge) elapsed(now time.Time) time.Duration {
	if !b.state.Ticking() {
		return b.accumulated
	}
	return b.accumulated + max(now.Sub(b.since), 0)
}

func (b *Bridge) progress(now time.Time) float64 {
	if b.duration <= 0 {
		return 0
	}
	p := float64(b.elapsed(now)) / float64(b.duration)
	return min(max(p, 0), 1)
}

func (b *Bridge) emit(now time.Time) {
	b.hub.send(b.Snapshot(now))
}

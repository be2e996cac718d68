package hud

import (
	"time"

	"github.com/llehouerou/peek/internal/autohide"
	"github.com/llehouerou/peek/internal/icons"
)

// Feedback durations.
const (
	PressEffectDuration  = 200 * time.Millisecond
	CopyFeedbackDuration = 2 * time.Second
)

// Well-known pulse names.
const (
	PulseSkipForward  = icons.SkipForward
	PulseSkipBackward = icons.SkipBackward
	PulseCopied       = icons.Copied
)

// Direction of a key pulse.
type Direction int

const (
	Backward Direction = iota
	Forward
)

// PulseSlot is the scheduler slot resetting the named pulse. Each pulse
// has its own slot so resets never collide.
func PulseSlot(name string) autohide.Slot {
	return autohide.Slot("hud.pulse." + name)
}

// Pulses holds short-lived feedback flags: a skip button's press effect, a
// "copied" checkmark. Pulsing again while active extends the flag.
type Pulses struct {
	sched    *autohide.Scheduler
	active   map[string]bool
	onChange func(name string, active bool)
}

// NewPulses creates an empty set. onChange may be nil.
func NewPulses(sched *autohide.Scheduler, onChange func(name string, active bool)) *Pulses {
	return &Pulses{
		sched:    sched,
		active:   make(map[string]bool),
		onChange: onChange,
	}
}

// Pulse sets name active and resets it after d.
func (p *Pulses) Pulse(name string, d time.Duration) {
	if !p.active[name] {
		p.active[name] = true
		p.notify(name, true)
	}
	p.sched.Schedule(PulseSlot(name), d, func() { p.reset(name) })
}

// KeyPulse plays the press effect of a skip key.
func (p *Pulses) KeyPulse(dir Direction) {
	name := PulseSkipBackward
	if dir == Forward {
		name = PulseSkipForward
	}
	p.Pulse(name, PressEffectDuration)
}

// Copied plays the copy confirmation.
func (p *Pulses) Copied() {
	p.Pulse(PulseCopied, CopyFeedbackDuration)
}

// Active reports whether name is currently pulsing.
func (p *Pulses) Active(name string) bool {
	return p.active[name]
}

// Close cancels every pending reset and clears all flags.
func (p *Pulses) Close() {
	for name := range p.active {
		p.sched.Cancel(PulseSlot(name))
		delete(p.active, name)
	}
}

func (p *Pulses) reset(name string) {
	if !p.active[name] {
		return
	}
	delete(p.active, name)
	p.notify(name, false)
}

func (p *Pulses) notify(name string, active bool) {
	if p.onChange != nil {
		p.onChange(name, active)
	}
}

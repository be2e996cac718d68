// Package hud turns drag and key input into OS level writes and feedback
// state: the volume and brightness sliders and the short press effects.
//
// Every method must run on the engine loop.
package hud

import (
	"github.com/llehouerou/peek/internal/activity"
	"github.com/llehouerou/peek/internal/icons"
	"github.com/llehouerou/peek/internal/mediactl"
	"github.com/llehouerou/peek/internal/suppress"
)

// Target is the OS level a slider drives.
type Target int

const (
	TargetVolume Target = iota
	TargetBrightness
)

// String returns the target name.
func (t Target) String() string {
	if t == TargetBrightness {
		return "brightness"
	}
	return "volume"
}

// Kind returns the sneak peek kind shown while the slider moves.
func (t Target) Kind() activity.Kind {
	if t == TargetBrightness {
		return activity.KindBrightness
	}
	return activity.KindVolume
}

// Shower is the part of the coordinator a slider drives.
type Shower interface {
	ShowSneakPeek(kind activity.Kind, value float64, icon string, opts ...activity.ShowOption)
}

// Slider is a drag-driven HUD control. While a drag is in progress it holds
// the panel open and disables scroll-to-close.
type Slider struct {
	target Target
	ctl    mediactl.Controller
	coord  Shower

	autoClose *suppress.Hold
	scroll    *suppress.Hold

	value    float64
	dragging bool
	closed   bool
}

// NewSlider creates a slider starting at value.
func NewSlider(target Target, value float64, ctl mediactl.Controller, coord Shower, reg *suppress.Registry) *Slider {
	owner := "hud." + target.String()
	return &Slider{
		target:    target,
		ctl:       ctl,
		coord:     coord,
		autoClose: reg.NewHold(suppress.AutoClose, owner),
		scroll:    reg.NewHold(suppress.ScrollGesture, owner),
		value:     clampUnit(value),
	}
}

// Value returns the last level written.
func (s *Slider) Value() float64 {
	return s.value
}

// Dragging reports whether a drag is in progress.
func (s *Slider) Dragging() bool {
	return s.dragging
}

// Begin starts a drag.
func (s *Slider) Begin() {
	if s.closed || s.dragging {
		return
	}
	s.dragging = true
	s.autoClose.Set(true)
	s.scroll.Set(true)
}

// Change moves the slider to level during a drag.
func (s *Slider) Change(level float64) {
	if !s.dragging {
		return
	}
	s.apply(level)
}

// End finishes a drag.
func (s *Slider) End() {
	if !s.dragging {
		return
	}
	s.dragging = false
	s.autoClose.Set(false)
	s.scroll.Set(false)
}

// Step nudges the level by delta, as volume and brightness keys do.
func (s *Slider) Step(delta float64) {
	if s.closed {
		return
	}
	s.apply(s.value + delta)
}

// Close ends any drag and releases the slider's suppression tokens.
func (s *Slider) Close() {
	s.dragging = false
	s.closed = true
	s.autoClose.Release()
	s.scroll.Release()
}

func (s *Slider) apply(level float64) {
	s.value = clampUnit(level)
	switch s.target {
	case TargetVolume:
		s.ctl.SetVolume(s.value)
	case TargetBrightness:
		s.ctl.SetBrightness(s.value)
	}
	s.coord.ShowSneakPeek(s.target.Kind(), s.value, Icon(s.target, s.value))
}

// Icon picks the symbol for a level.
func Icon(t Target, level float64) string {
	if t == TargetBrightness {
		if level < 0.5 {
			return icons.SunMin
		}
		return icons.SunMax
	}
	switch {
	case level <= 0:
		return icons.SpeakerSlash
	case level < 0.34:
		return icons.SpeakerWave1
	case level < 0.67:
		return icons.SpeakerWave2
	default:
		return icons.SpeakerWave3
	}
}

func clampUnit(v float64) float64 {
	if v != v {
		return 0
	}
	return min(max(v, 0), 1)
}

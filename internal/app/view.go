package app

import (
	"context"
	"slices"
	"time"

	"github.com/llehouerou/peek/internal/activity"
	"github.com/llehouerou/peek/internal/hud"
	"github.com/llehouerou/peek/internal/position"
	"github.com/llehouerou/peek/internal/suppress"
	"github.com/llehouerou/peek/internal/timer"
)

// View is a consistent snapshot of everything a renderer shows.
type View struct {
	At         time.Time
	SneakPeek  activity.SneakPeek
	Expanded   activity.ExpandedItem
	Panel      activity.PanelState
	Hovered    bool
	Suppressed map[suppress.Channel]bool
	Holders    map[suppress.Channel][]string // owners voting active, sorted
	NowPlaying position.NowPlaying
	Position   position.Estimate
	Fraction   float64
	Dragging   bool
	Timer      timer.Snapshot
	Volume     float64
	Brightness float64
	Pulses     map[string]bool
}

// View captures the current state.
func (e *Engine) View(ctx context.Context) (View, error) {
	var v View
	err := e.query(ctx, func() {
		now := time.Now()
		v = View{
			At:         now,
			SneakPeek:  e.coord.SneakPeek(),
			Expanded:   e.coord.Expanded(),
			Panel:      e.panel.State(),
			Hovered:    e.panel.Hovered(),
			Suppressed: make(map[suppress.Channel]bool, len(suppress.Channels)),
			Holders:    make(map[suppress.Channel][]string),
			NowPlaying: e.nowPlaying,
			Position:   e.tracker.Displayed(now),
			Fraction:   e.tracker.Fraction(now),
			Dragging:   e.tracker.Dragging(),
			Timer:      e.timer.Snapshot(now),
			Volume:     e.volume.Value(),
			Brightness: e.brightness.Value(),
			Pulses:     make(map[string]bool),
		}
		for _, ch := range suppress.Channels {
			v.Suppressed[ch] = e.reg.Active(ch)
			for _, tok := range e.reg.Holders(ch) {
				v.Holders[ch] = append(v.Holders[ch], tok.Owner())
			}
			slices.Sort(v.Holders[ch])
		}
		for _, name := range []string{hud.PulseSkipBackward, hud.PulseSkipForward, hud.PulseCopied} {
			v.Pulses[name] = e.pulses.Active(name)
		}
	})
	return v, err
}

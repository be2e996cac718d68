package app

import (
	"context"

	"github.com/llehouerou/peek/internal/activity"
	"github.com/llehouerou/peek/internal/hud"
	"github.com/llehouerou/peek/internal/suppress"
)

// ShowSneakPeek posts a sneak peek.
func (e *Engine) ShowSneakPeek(kind activity.Kind, value float64, icon string, opts ...activity.ShowOption) {
	e.post(func() { e.coord.ShowSneakPeek(kind, value, icon, opts...) })
}

// HideSneakPeek hides the sneak peek if kind is showing.
func (e *Engine) HideSneakPeek(kind activity.Kind) {
	e.post(func() { e.coord.HideSneakPeek(kind) })
}

// ShowExpandedView posts an expanded view.
func (e *Engine) ShowExpandedView(kind activity.Kind, value float64, opts ...activity.ShowOption) {
	e.post(func() { e.coord.ShowExpandedView(kind, value, opts...) })
}

// HideExpandedView hides the expanded view.
func (e *Engine) HideExpandedView() {
	e.post(e.coord.HideExpandedView)
}

// Subscribe returns a subscription to activity changes.
func (e *Engine) Subscribe(ctx context.Context) (*activity.Subscription, error) {
	var sub *activity.Subscription
	err := e.query(ctx, func() { sub = e.coord.Subscribe() })
	return sub, err
}

// OpenPanel opens the notch panel.
func (e *Engine) OpenPanel() { e.post(e.panel.Open) }

// ClosePanel closes the notch panel.
func (e *Engine) ClosePanel() { e.post(e.panel.Close) }

// HoverBegan reports the pointer entering the panel.
func (e *Engine) HoverBegan() { e.post(e.panel.HoverBegan) }

// HoverEnded reports the pointer leaving the panel.
func (e *Engine) HoverEnded() { e.post(e.panel.HoverEnded) }

// Scroll forwards a scroll gesture to the panel.
func (e *Engine) Scroll(delta float64) {
	e.post(func() { e.panel.Scroll(delta) })
}

// SetSuppressed votes tok active or inactive on ch.
func (e *Engine) SetSuppressed(ch suppress.Channel, tok suppress.Token, active bool) {
	e.post(func() { e.reg.SetActive(ch, tok, active) })
}

// ReleaseToken removes tok from every channel.
func (e *Engine) ReleaseToken(tok suppress.Token) {
	e.post(func() { e.reg.RemoveAll(tok) })
}

func (e *Engine) slider(t hud.Target) *hud.Slider {
	if t == hud.TargetBrightness {
		return e.brightness
	}
	return e.volume
}

// SliderBegan starts dragging the target slider.
func (e *Engine) SliderBegan(t hud.Target) {
	e.post(func() { e.slider(t).Begin() })
}

// SliderChanged moves the target slider to level.
func (e *Engine) SliderChanged(t hud.Target, level float64) {
	e.post(func() {
		e.slider(t).Change(level)
		e.queueLevels()
	})
}

// SliderEnded finishes dragging the target slider.
func (e *Engine) SliderEnded(t hud.Target) {
	e.post(func() { e.slider(t).End() })
}

// Step nudges the target level, as a hardware key would.
func (e *Engine) Step(t hud.Target, delta float64) {
	e.post(func() {
		e.slider(t).Step(delta)
		e.queueLevels()
	})
}

// KeyPulse plays a skip key's press effect.
func (e *Engine) KeyPulse(dir hud.Direction) {
	e.post(func() { e.pulses.KeyPulse(dir) })
}

// Copied plays the copy confirmation.
func (e *Engine) Copied() {
	e.post(e.pulses.Copied)
}

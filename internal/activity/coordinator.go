// Package activity arbitrates the single-occupancy overlay region: which
// sneak peek and which expanded view are on screen, for how long, and when
// the panel collapses.
//
// Every Coordinator and Panel method must run on the engine loop.
package activity

import (
	"time"

	"github.com/llehouerou/peek/internal/autohide"
)

// Default display durations.
const (
	GlanceDuration          = 1500 * time.Millisecond
	TimerSneakPeekDuration  = 5 * time.Second
	DefaultReminderDuration = 8 * time.Second
	ExpandedShortDuration   = 2 * time.Second
	ExpandedDuration        = 3 * time.Second
	DefaultIdleCollapse     = 3 * time.Second
)

// Slots owned by this package.
const (
	SlotSneakPeek     autohide.Slot = "activity.sneakpeek"
	SlotExpanded      autohide.Slot = "activity.expanded"
	SlotPanelCollapse autohide.Slot = "activity.panel.collapse"
)

// Settings supplies the configuration the coordinator reads on every call.
type Settings interface {
	// ReplaceLegacyIndicator is false when the OS's own indicator stays
	// authoritative for non-interactive kinds.
	ReplaceLegacyIndicator() bool
	ReminderDuration() time.Duration
	IdleCollapse() time.Duration
}

// StaticSettings is a fixed Settings value.
type StaticSettings struct {
	ReplaceLegacy bool
	Reminder      time.Duration
	Idle          time.Duration
}

// DefaultSettings returns the built-in configuration.
func DefaultSettings() StaticSettings {
	return StaticSettings{
		ReplaceLegacy: true,
		Reminder:      DefaultReminderDuration,
		Idle:          DefaultIdleCollapse,
	}
}

func (s StaticSettings) ReplaceLegacyIndicator() bool { return s.ReplaceLegacy }

func (s StaticSettings) ReminderDuration() time.Duration {
	if s.Reminder <= 0 {
		return DefaultReminderDuration
	}
	return s.Reminder
}

func (s StaticSettings) IdleCollapse() time.Duration {
	if s.Idle <= 0 {
		return DefaultIdleCollapse
	}
	return s.Idle
}

// ShowOption customizes a show call.
type ShowOption func(*showOptions)

type showOptions struct {
	duration time.Duration
	browser  BrowserVariant
}

// WithDuration overrides the kind's default display duration.
func WithDuration(d time.Duration) ShowOption {
	return func(o *showOptions) { o.duration = d }
}

// WithBrowser sets the browser variant of a download expanded view.
func WithBrowser(b BrowserVariant) ShowOption {
	return func(o *showOptions) { o.browser = b }
}

// Coordinator is the single writer of the SneakPeek and ExpandedItem records.
type Coordinator struct {
	sched    *autohide.Scheduler
	settings Settings
	hub      hub

	sneak    SneakPeek
	expanded ExpandedItem
}

// New creates a coordinator with both overlays hidden.
func New(sched *autohide.Scheduler, settings Settings) *Coordinator {
	if settings == nil {
		settings = DefaultSettings()
	}
	return &Coordinator{sched: sched, settings: settings}
}

// SneakPeek returns a copy of the current sneak peek.
func (c *Coordinator) SneakPeek() SneakPeek {
	return c.sneak
}

// Expanded returns a copy of the current expanded item.
func (c *Coordinator) Expanded() ExpandedItem {
	return c.expanded
}

// Subscribe creates a new event subscription.
func (c *Coordinator) Subscribe() *Subscription {
	return c.hub.subscribe()
}

// Unsubscribe closes sub and stops delivering to it.
func (c *Coordinator) Unsubscribe(sub *Subscription) {
	c.hub.unsubscribe(sub)
}

// Close cancels pending expirations and closes every subscription.
func (c *Coordinator) Close() {
	c.sched.Cancel(SlotSneakPeek)
	c.sched.Cancel(SlotExpanded)
	c.hub.closeAll()
}

// ShowSneakPeek puts kind on screen, replacing whatever occupied the slot,
// and restarts the auto-hide countdown.
//
// Non-interactive kinds are dropped when the legacy indicator is left
// authoritative.
func (c *Coordinator) ShowSneakPeek(kind Kind, value float64, icon string, opts ...ShowOption) {
	if !kind.Interactive() && !c.settings.ReplaceLegacyIndicator() {
		return
	}

	o := showOptions{duration: c.sneakPeekDuration(kind)}
	for _, opt := range opts {
		opt(&o)
	}

	prev := c.sneak
	c.sneak = SneakPeek{
		Visible: true,
		Kind:    kind,
		Value:   clampUnit(value),
		Icon:    icon,
	}
	c.sched.Schedule(SlotSneakPeek, o.duration, c.expireSneakPeek)

	if prev != c.sneak {
		c.hub.sneakPeek(SneakPeekChange{Previous: prev, Current: c.sneak})
	}
}

// HideSneakPeek hides the sneak peek if kind still occupies it. A hide for
// any other kind is a no-op: the current occupant and its countdown are
// left untouched.
func (c *Coordinator) HideSneakPeek(kind Kind) {
	if c.sneak.Kind != kind {
		return
	}
	c.sched.Cancel(SlotSneakPeek)
	if c.sneak.Visible {
		c.setSneakHidden()
	}
}

// ShowExpandedView puts kind in the expanded overlay and restarts its
// countdown.
func (c *Coordinator) ShowExpandedView(kind Kind, value float64, opts ...ShowOption) {
	o := showOptions{duration: expandedDuration(kind)}
	for _, opt := range opts {
		opt(&o)
	}

	prev := c.expanded
	c.expanded = ExpandedItem{
		Visible: true,
		Kind:    kind,
		Value:   clampUnit(value),
		Browser: o.browser,
	}
	c.sched.Schedule(SlotExpanded, o.duration, c.HideExpandedView)

	if prev != c.expanded {
		c.hub.expanded(ExpandedChange{Previous: prev, Current: c.expanded})
	}
}

// HideExpandedView hides the expanded overlay unconditionally.
func (c *Coordinator) HideExpandedView() {
	c.sched.Cancel(SlotExpanded)
	if !c.expanded.Visible {
		return
	}
	prev := c.expanded
	c.expanded.Visible = false
	c.hub.expanded(ExpandedChange{Previous: prev, Current: c.expanded})
}

func (c *Coordinator) expireSneakPeek() {
	if c.sneak.Visible {
		c.setSneakHidden()
	}
}

func (c *Coordinator) setSneakHidden() {
	prev := c.sneak
	c.sneak.Visible = false
	c.hub.sneakPeek(SneakPeekChange{Previous: prev, Current: c.sneak})
}

func (c *Coordinator) sneakPeekDuration(kind Kind) time.Duration {
	switch kind {
	case KindReminder:
		return c.settings.ReminderDuration()
	case KindTimer:
		return TimerSneakPeekDuration
	default:
		return GlanceDuration
	}
}

func expandedDuration(kind Kind) time.Duration {
	if kind == KindDownload {
		return ExpandedShortDuration
	}
	return ExpandedDuration
}

func clampUnit(v float64) float64 {
	if v != v { // NaN
		return 0
	}
	return min(max(v, 0), 1)
}

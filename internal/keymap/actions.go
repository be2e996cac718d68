// Package keymap defines key bindings and action dispatch for the monitor.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit        Action = "quit"
	ActionTogglePanel Action = "toggle_panel"

	// Timer actions
	ActionTimerInput  Action = "timer_input"
	ActionTimerToggle Action = "timer_toggle"
	ActionTimerReset  Action = "timer_reset"
	ActionTimerEnd    Action = "timer_end"

	// HUD actions
	ActionVolumeUp       Action = "volume_up"
	ActionVolumeDown     Action = "volume_down"
	ActionBrightnessUp   Action = "brightness_up"
	ActionBrightnessDown Action = "brightness_down"
	ActionSkipBack       Action = "skip_back"    // key pulse only
	ActionSkipForward    Action = "skip_forward" // key pulse only
	ActionCopy           Action = "copy"
)

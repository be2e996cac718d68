// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Settings
	OpConfigLoad    Op = "load config"
	OpStateOpen     Op = "open settings store"
	OpSettingGet    Op = "read setting"
	OpSettingSet    Op = "change setting"
	OpSettingReset  Op = "reset setting"
	OpSettingsList  Op = "list settings"
	OpLevelsRestore Op = "restore volume and brightness"
	OpLevelsSave    Op = "save volume and brightness"

	// Now playing
	OpMprisConnect Op = "connect to media player"
	OpMprisRead    Op = "read now playing"

	// Media control
	OpVolumeSet     Op = "set volume"
	OpBrightnessSet Op = "set brightness"

	// Notifications
	OpNotifyShow  Op = "show notification"
	OpNotifyClose Op = "close notification"

	// Timer
	OpTimerStart   Op = "start timer"
	OpTimerControl Op = "control timer"

	// Initialization
	OpInitialize Op = "initialize peek"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}

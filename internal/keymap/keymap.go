package keymap

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "timer", "hud"
}

// All contains all key bindings.
var All = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "quit", "global"},
	{ActionTogglePanel, []string{"p"}, "panel", "global"},

	// Timer
	{ActionTimerInput, []string{"t"}, "timer", "timer"},
	{ActionTimerToggle, []string{" ", "space"}, "pause", "timer"},
	{ActionTimerReset, []string{"r"}, "reset", "timer"},
	{ActionTimerEnd, []string{"e"}, "end", "timer"},

	// HUD
	{ActionVolumeUp, []string{"+", "="}, "volume up", "hud"},
	{ActionVolumeDown, []string{"-"}, "volume down", "hud"},
	{ActionBrightnessUp, []string{"]"}, "brightness up", "hud"},
	{ActionBrightnessDown, []string{"["}, "brightness down", "hud"},
	{ActionSkipBack, []string{"left"}, "skip back", "hud"},
	{ActionSkipForward, []string{"right"}, "skip forward", "hud"},
	{ActionCopy, []string{"c"}, "copy", "hud"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

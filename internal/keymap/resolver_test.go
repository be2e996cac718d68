package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolver_Resolve(t *testing.T) {
	r := NewResolver([]Binding{
		{ActionQuit, []string{"q", "ctrl+c"}, "quit", "global"},
		{ActionTimerToggle, []string{" "}, "pause", "timer"},
		{ActionVolumeUp, []string{"+", "="}, "volume up", "hud"},
	})

	tests := []struct {
		key      string
		expected Action
	}{
		{"q", ActionQuit},
		{"ctrl+c", ActionQuit},
		{" ", ActionTimerToggle},
		{"+", ActionVolumeUp},
		{"=", ActionVolumeUp},
		{"unknown", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.expected, r.Resolve(tt.key))
		})
	}
}

func TestResolver_LaterBindingWins(t *testing.T) {
	r := NewResolver([]Binding{
		{ActionCopy, []string{"c"}, "copy", "hud"},
		{ActionTimerEnd, []string{"c"}, "end", "timer"},
	})
	assert.Equal(t, ActionTimerEnd, r.Resolve("c"))
}

func TestResolver_KeysForDedupes(t *testing.T) {
	r := NewResolver([]Binding{
		{ActionQuit, []string{"q", "ctrl+c"}, "quit", "global"},
		{ActionQuit, []string{"q"}, "quit", "timer"},
	})
	assert.Equal(t, []string{"q", "ctrl+c"}, r.KeysFor(ActionQuit))
	assert.Nil(t, r.KeysFor(ActionCopy))
}

func TestResolver_Help(t *testing.T) {
	r := NewResolver([]Binding{
		{ActionTimerToggle, []string{" "}, "pause", "timer"},
		{ActionSkipBack, []string{"left"}, "skip back", "hud"},
		{ActionQuit, []string{"q", "ctrl+c"}, "quit", "global"},
		{ActionCopy, nil, "copy", "hud"},
	})
	assert.Equal(t, "space pause · ← skip back · q quit", r.Help(" · "))
}

func TestDefault_EveryKeyUnique(t *testing.T) {
	seen := map[string]Action{}
	for _, b := range All {
		for _, k := range b.Keys {
			prev, dup := seen[k]
			assert.False(t, dup, "key %q bound to %s and %s", k, prev, b.Action)
			seen[k] = b.Action
		}
	}
	assert.Equal(t, ActionQuit, Default().Resolve("ctrl+c"))
}

func TestByContext(t *testing.T) {
	timer := ByContext("timer")
	assert.Len(t, timer, 4)
	for _, b := range timer {
		assert.Equal(t, "timer", b.Context)
	}
	assert.Empty(t, ByContext("nope"))
}

package icons

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInit(t *testing.T) {
	t.Cleanup(func() { Init(string(StyleUnicode)) })

	tests := []struct {
		style string
		want  string
	}{
		{"nerd", nerdIcons[SpeakerWave2]},
		{"unicode", "🔉"},
		{"none", ""},
		{"", ""},
		{"NERD", ""},
	}
	for _, tt := range tests {
		t.Run(tt.style, func(t *testing.T) {
			Init(tt.style)
			assert.Equal(t, tt.want, Glyph(SpeakerWave2))
		})
	}
}

func TestGlyph_NoneStyleKeepsTextMarkers(t *testing.T) {
	t.Cleanup(func() { Init(string(StyleUnicode)) })
	Init("none")

	assert.Equal(t, "[mute]", Glyph(SpeakerSlash))
	assert.Equal(t, ">>", Glyph(SkipForward))
	assert.Empty(t, Glyph("unknown"))
}

func TestEveryStyleCoversTheSameSymbols(t *testing.T) {
	for symbol := range desktopIcons {
		assert.NotEmpty(t, nerdIcons[symbol], "nerd %s", symbol)
		assert.NotEmpty(t, unicodeIcons[symbol], "unicode %s", symbol)
	}
	assert.Len(t, nerdIcons, len(desktopIcons))
	assert.Len(t, unicodeIcons, len(desktopIcons))
}

func TestDesktop(t *testing.T) {
	assert.Equal(t, "audio-volume-medium", Desktop(SpeakerWave2))
	assert.Equal(t, "display-brightness-high", Desktop(SunMax))
	assert.Equal(t, "dialog-information", Desktop("dialog-information"))
	assert.Empty(t, Desktop(""))
}

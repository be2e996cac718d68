// Package icons maps the symbol ids carried by sneak peeks to glyphs for
// the terminal and to icon names for desktop notifications.
package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Symbol ids.
const (
	SpeakerSlash = "speaker.slash"
	SpeakerWave1 = "speaker.wave.1"
	SpeakerWave2 = "speaker.wave.2"
	SpeakerWave3 = "speaker.wave.3"
	SunMin       = "sun.min"
	SunMax       = "sun.max"
	MusicNote    = "music.note"
	Timer        = "timer"
	SkipForward  = "skip.forward"
	SkipBackward = "skip.backward"
	Copied       = "copied"
)

var (
	nerdIcons = map[string]string{
		SpeakerSlash: "󰖁",      // nf-md-volume_off
		SpeakerWave1: "󰕿",      // nf-md-volume_low
		SpeakerWave2: "󰖀",      // nf-md-volume_medium
		SpeakerWave3: "󰕾",      // nf-md-volume_high
		SunMin:       "󰃞",      // nf-md-brightness_5
		SunMax:       "󰃠",      // nf-md-brightness_7
		MusicNote:    "\uf001", // nf-fa-music
		Timer:        "󰔛",      // nf-md-timer_outline
		SkipForward:  "󰒭",      // nf-md-skip_next
		SkipBackward: "󰒮",      // nf-md-skip_previous
		Copied:       "󰆏",      // nf-md-content_copy
	}

	unicodeIcons = map[string]string{
		SpeakerSlash: "🔇",
		SpeakerWave1: "🔈",
		SpeakerWave2: "🔉",
		SpeakerWave3: "🔊",
		SunMin:       "🔅",
		SunMax:       "🔆",
		MusicNote:    "🎵",
		Timer:        "⏲",
		SkipForward:  "⏭",
		SkipBackward: "⏮",
		Copied:       "📋",
	}

	noneIcons = map[string]string{
		SpeakerSlash: "[mute]",
		SkipForward:  ">>",
		SkipBackward: "<<",
		Copied:       "[copied]",
	}

	// freedesktop icon theme names
	desktopIcons = map[string]string{
		SpeakerSlash: "audio-volume-muted",
		SpeakerWave1: "audio-volume-low",
		SpeakerWave2: "audio-volume-medium",
		SpeakerWave3: "audio-volume-high",
		SunMin:       "display-brightness-low",
		SunMax:       "display-brightness-high",
		MusicNote:    "audio-x-generic",
		Timer:        "alarm-symbolic",
		SkipForward:  "media-skip-forward",
		SkipBackward: "media-skip-backward",
		Copied:       "edit-copy",
	}

	// current holds the active icon set
	current = unicodeIcons
)

// Init selects the glyph style. Unknown styles fall back to none.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	default:
		current = noneIcons
	}
}

// Glyph returns the terminal glyph for symbol, or "" when the style has
// none.
func Glyph(symbol string) string {
	return current[symbol]
}

// Desktop returns the icon theme name for symbol. Unknown symbols are
// returned unchanged so callers may pass theme names through.
func Desktop(symbol string) string {
	if name, ok := desktopIcons[symbol]; ok {
		return name
	}
	return symbol
}

// Package mpris reads now-playing state from MPRIS media players over
// D-Bus and turns it into position samples.
package mpris

import (
	"strings"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/types"

	"github.com/llehouerou/peek/internal/position"
)

const (
	busPrefix       = "org.mpris.MediaPlayer2."
	objectPath      = "/org/mpris/MediaPlayer2"
	playerInterface = "org.mpris.MediaPlayer2.Player"
)

// Player holds the last known properties of one MPRIS player.
type Player struct {
	Metadata   map[string]dbus.Variant
	Status     types.PlaybackStatus
	Position   types.Microseconds
	Rate       float64
	ObservedAt time.Time
}

// Apply merges a PropertiesChanged payload into p. Position is not
// signalled by MPRIS; a change of status or track re-bases it at the
// caller's next poll, so only the fields present are replaced.
func (p *Player) Apply(changed map[string]dbus.Variant, now time.Time) {
	for name, v := range changed {
		switch name {
		case "Metadata":
			if m, ok := v.Value().(map[string]dbus.Variant); ok {
				p.Metadata = m
			}
		case "PlaybackStatus":
			if s, ok := v.Value().(string); ok {
				p.Status = types.PlaybackStatus(s)
			}
		case "Rate":
			if r, ok := v.Value().(float64); ok {
				p.Rate = r
			}
		case "Position":
			if us, ok := toInt64(v.Value()); ok {
				p.Position = types.Microseconds(us)
				p.ObservedAt = now
			}
		}
	}
	if p.ObservedAt.IsZero() {
		// No position reading yet: treat Position as measured now so the
		// sample does not extrapolate from the zero time.
		p.ObservedAt = now
	}
}

// Seeked records a Seeked signal.
func (p *Player) Seeked(pos types.Microseconds, now time.Time) {
	p.Position = pos
	p.ObservedAt = now
}

// NowPlaying converts p to a sample. A track without a length is treated
// as a live stream.
func (p *Player) NowPlaying() position.NowPlaying {
	np := position.NowPlaying{
		Title:  metaString(p.Metadata, "xesam:title"),
		Artist: strings.Join(metaStrings(p.Metadata, "xesam:artist"), ", "),
		Album:  metaString(p.Metadata, "xesam:album"),
		ArtURL: metaString(p.Metadata, "mpris:artUrl"),
	}

	length, _ := toInt64(metaValue(p.Metadata, "mpris:length"))
	rate := 0.0
	if p.Status == types.PlaybackStatusPlaying {
		rate = p.Rate
		if rate == 0 {
			rate = 1
		}
	}

	np.Sample = position.Sample{
		Elapsed:      max(time.Duration(p.Position)*time.Microsecond, 0),
		Duration:     time.Duration(length) * time.Microsecond,
		Timestamp:    p.ObservedAt,
		Rate:         rate,
		IsLiveStream: length <= 0,
	}
	return np
}

func metaValue(m map[string]dbus.Variant, key string) any {
	v, ok := m[key]
	if !ok {
		return nil
	}
	return v.Value()
}

func metaString(m map[string]dbus.Variant, key string) string {
	switch v := metaValue(m, key).(type) {
	case string:
		return v
	case dbus.ObjectPath:
		return string(v)
	}
	return ""
}

func metaStrings(m map[string]dbus.Variant, key string) []string {
	switch v := metaValue(m, key).(type) {
	case []string:
		return v
	case string:
		return []string{v}
	}
	return nil
}

// toInt64 accepts the integer widths players use for lengths and positions.
func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case uint64:
		return int64(n), true
	case int32:
		return int64(n), true
	case uint32:
		return int64(n), true
	case int:
		return int64(n), true
	case float64:
		return int64(n), true
	}
	return 0, false
}

func isPlayerName(name string) bool {
	return strings.HasPrefix(name, busPrefix)
}

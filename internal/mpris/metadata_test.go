package mpris

import (
	"testing"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/types"
	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/peek/internal/position"
)

func trackMetadata(length any) map[string]dbus.Variant {
	m := map[string]dbus.Variant{
		"xesam:title":  dbus.MakeVariant("Teardrop"),
		"xesam:artist": dbus.MakeVariant([]string{"Massive Attack", "Liz Fraser"}),
		"xesam:album":  dbus.MakeVariant("Mezzanine"),
	}
	if length != nil {
		m["mpris:length"] = dbus.MakeVariant(length)
	}
	return m
}

func TestPlayer_NowPlaying(t *testing.T) {
	at := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	p := Player{
		Metadata:   trackMetadata(int64(200_000_000)),
		Status:     types.PlaybackStatusPlaying,
		Position:   10_000_000,
		Rate:       1,
		ObservedAt: at,
	}

	np := p.NowPlaying()

	assert.Equal(t, "Teardrop", np.Title)
	assert.Equal(t, "Massive Attack, Liz Fraser", np.Artist)
	assert.Equal(t, "Mezzanine", np.Album)
	assert.Equal(t, position.Sample{
		Elapsed:   10 * time.Second,
		Duration:  200 * time.Second,
		Timestamp: at,
		Rate:      1,
	}, np.Sample)
}

func TestPlayer_PausedHasZeroRate(t *testing.T) {
	p := Player{
		Metadata: trackMetadata(uint64(60_000_000)),
		Status:   types.PlaybackStatusPaused,
		Position: 5_000_000,
		Rate:     1,
	}

	s := p.NowPlaying().Sample
	assert.Zero(t, s.Rate)
	assert.Equal(t, time.Minute, s.Duration)
}

func TestPlayer_MissingRateDefaultsToOne(t *testing.T) {
	p := Player{Metadata: trackMetadata(int64(1_000_000)), Status: types.PlaybackStatusPlaying}

	assert.InDelta(t, 1.0, p.NowPlaying().Sample.Rate, 1e-9)
}

func TestPlayer_NoLengthIsLiveStream(t *testing.T) {
	for _, length := range []any{nil, int64(0), int64(-1)} {
		p := Player{Metadata: trackMetadata(length), Status: types.PlaybackStatusPlaying}
		s := p.NowPlaying().Sample
		assert.True(t, s.IsLiveStream, "length %v", length)
		assert.True(t, position.Project(s, time.Now()).Indeterminate)
	}
}

func TestPlayer_Apply(t *testing.T) {
	at := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	p := Player{Status: types.PlaybackStatusStopped, Rate: 1}

	p.Apply(map[string]dbus.Variant{
		"Metadata":       dbus.MakeVariant(trackMetadata(int64(90_000_000))),
		"PlaybackStatus": dbus.MakeVariant("Playing"),
		"Rate":           dbus.MakeVariant(1.5),
		"Volume":         dbus.MakeVariant(0.3),
	}, at)

	assert.Equal(t, types.PlaybackStatusPlaying, p.Status)
	assert.InDelta(t, 1.5, p.Rate, 1e-9)
	assert.Equal(t, "Teardrop", p.NowPlaying().Title)
	assert.Equal(t, at, p.ObservedAt, "first apply anchors the sample")
	proj := position.Project(p.NowPlaying().Sample, at.Add(10*time.Second))
	assert.Equal(t, 15*time.Second, proj.Position)

	p.Seeked(30_000_000, at)
	s := p.NowPlaying().Sample
	assert.Equal(t, 30*time.Second, s.Elapsed)
	assert.Equal(t, at, s.Timestamp)
}

func TestPlayer_ApplyIgnoresWrongTypes(t *testing.T) {
	p := Player{Status: types.PlaybackStatusPaused, Rate: 1}

	p.Apply(map[string]dbus.Variant{
		"PlaybackStatus": dbus.MakeVariant(3),
		"Rate":           dbus.MakeVariant("fast"),
	}, time.Now())

	assert.Equal(t, types.PlaybackStatusPaused, p.Status)
	assert.InDelta(t, 1.0, p.Rate, 1e-9)
}

func TestIsPlayerName(t *testing.T) {
	assert.True(t, isPlayerName("org.mpris.MediaPlayer2.spotify"))
	assert.False(t, isPlayerName("org.freedesktop.Notifications"))
}

package app

import (
	"context"
	"time"

	"github.com/llehouerou/peek/internal/activity"
	"github.com/llehouerou/peek/internal/icons"
	"github.com/llehouerou/peek/internal/position"
)

// MusicIcon is the sneak peek icon for track and play state changes.
const MusicIcon = icons.MusicNote

// OnSample records a now-playing report. A new track or a play/pause
// flip flashes the music sneak peek.
func (e *Engine) OnSample(np position.NowPlaying) {
	e.post(func() {
		prev, had := e.tracker.Sample()
		prevTrack := e.nowPlaying
		e.nowPlaying = np
		e.tracker.OnSample(np.Sample)

		changed := !had ||
			prevTrack.Title != np.Title ||
			prevTrack.Artist != np.Artist ||
			prev.Playing() != np.Sample.Playing()
		if changed && np.Title != "" {
			e.logger.Debug("now playing", "title", np.Title, "artist", np.Artist, "playing", np.Sample.Playing())
			e.coord.ShowSneakPeek(activity.KindMusic, e.tracker.Fraction(time.Now()), MusicIcon)
		}
	})
}

// DragBegan starts a scrub of the progress control.
func (e *Engine) DragBegan() {
	e.post(func() { e.tracker.DragBegan(time.Now()) })
}

// DragChanged moves the scrub position.
func (e *Engine) DragChanged(pos time.Duration) {
	e.post(func() { e.tracker.DragChanged(pos, time.Now()) })
}

// DragEnded finishes a scrub and returns the position to seek the player
// to.
func (e *Engine) DragEnded(ctx context.Context) (time.Duration, error) {
	var pos time.Duration
	err := e.query(ctx, func() { pos = e.tracker.DragEnded(time.Now()) })
	return pos, err
}

// Displayed returns the position the progress control shows now.
func (e *Engine) Displayed(ctx context.Context) (position.Estimate, error) {
	var est position.Estimate
	err := e.query(ctx, func() { est = e.tracker.Displayed(time.Now()) })
	return est, err
}

// Package position reconstructs a smoothly advancing playback position
// from coarse samples reported by an external now-playing source.
package position

import "time"

// Sample is the last ground truth reported by the playback source.
// It is replaced wholesale on every play, pause, seek or track change.
type Sample struct {
	Elapsed      time.Duration
	Duration     time.Duration
	Timestamp    time.Time // when Elapsed was measured
	Rate         float64   // 0 = paused, 1 = normal speed
	IsLiveStream bool
}

// Playing reports whether the sample extrapolates forward.
func (s Sample) Playing() bool {
	return s.Rate != 0
}

// NowPlaying couples a sample with the track metadata it belongs to.
type NowPlaying struct {
	Title  string
	Artist string
	Album  string
	ArtURL string
	Sample Sample
}

// Estimate is the result of projecting a sample to a point in time.
type Estimate struct {
	Position time.Duration
	// Indeterminate is set for live streams: there is no meaningful
	// position and the caller shows an activity indicator instead.
	Indeterminate bool
}

// Project estimates the position of s at now.
//
//   - live stream: Indeterminate
//   - non-positive duration: 0
//   - paused (Rate == 0): Elapsed, unchanged
//   - otherwise Elapsed + (now - Timestamp) * Rate, clamped to [0, Duration]
//
// A now earlier than the sample timestamp projects no time at all.
func Project(s Sample, now time.Time) Estimate {
	if s.IsLiveStream {
		return Estimate{Indeterminate: true}
	}
	if s.Duration <= 0 {
		return Estimate{}
	}
	if s.Rate == 0 {
		return Estimate{Position: s.Elapsed}
	}

	since := float64(max(now.Sub(s.Timestamp), 0))
	// Compare in float space so huge gaps saturate at the bounds instead
	// of overflowing the Duration conversion.
	var room float64
	if s.Rate > 0 {
		room = float64(s.Duration-s.Elapsed) / s.Rate
	} else {
		room = float64(s.Elapsed) / -s.Rate
	}
	switch {
	case room <= 0:
		return Estimate{Position: clamp(s.Elapsed, 0, s.Duration)}
	case since >= room && s.Rate > 0:
		return Estimate{Position: s.Duration}
	case since >= room:
		return Estimate{}
	}
	projected := s.Elapsed + time.Duration(since*s.Rate)
	return Estimate{Position: clamp(projected, 0, s.Duration)}
}

// Fraction returns the projected position as a fraction of the duration,
// in [0, 1]. Live streams and empty durations report 0.
func Fraction(s Sample, now time.Time) float64 {
	e := Project(s, now)
	if e.Indeterminate || s.Duration <= 0 {
		return 0
	}
	f := float64(e.Position) / float64(s.Duration)
	return min(max(f, 0), 1)
}

func clamp(d, lo, hi time.Duration) time.Duration {
	return min(max(d, lo), hi)
}

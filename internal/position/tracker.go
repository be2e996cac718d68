package position

import "time"

// DefaultDragGuard is how long estimator output is ignored after a manual
// drag ends, giving the source time to report the seek.
const DefaultDragGuard = time.Second

// Tracker decides what position to display: the estimator's, or the user's
// while they scrub the progress control.
type Tracker struct {
	guard time.Duration

	sample    Sample
	hasSample bool

	dragging    bool
	dragPos     time.Duration
	lastDragged time.Time
}

// NewTracker creates a tracker with the given guard window.
// A non-positive guard uses DefaultDragGuard.
func NewTracker(guard time.Duration) *Tracker {
	if guard <= 0 {
		guard = DefaultDragGuard
	}
	return &Tracker{guard: guard}
}

// OnSample replaces the current sample.
func (t *Tracker) OnSample(s Sample) {
	t.sample = s
	t.hasSample = true
}

// Sample returns the current sample and whether one was ever received.
func (t *Tracker) Sample() (Sample, bool) {
	return t.sample, t.hasSample
}

// DragBegan starts manual control, pinning the display at the current
// estimate.
func (t *Tracker) DragBegan(now time.Time) {
	start := t.estimate(now).Position
	t.dragging = true
	t.dragPos = start
	t.lastDragged = now
}

// DragChanged moves the manual position. Ignored when no drag is active.
func (t *Tracker) DragChanged(pos time.Duration, now time.Time) {
	if !t.dragging {
		return
	}
	if t.hasSample && t.sample.Duration > 0 {
		pos = clamp(pos, 0, t.sample.Duration)
	} else {
		pos = max(pos, 0)
	}
	t.dragPos = pos
	t.lastDragged = now
}

// DragEnded releases manual control and returns the position the caller
// should seek the source to.
// Without an active drag it changes nothing and returns the displayed
// position.
func (t *Tracker) DragEnded(now time.Time) time.Duration {
	if !t.dragging {
		return t.Displayed(now).Position
	}
	t.dragging = false
	t.lastDragged = now
	return t.dragPos
}

// Dragging reports whether a drag is in progress.
func (t *Tracker) Dragging() bool {
	return t.dragging
}

// Displayed returns the position to show at now.
func (t *Tracker) Displayed(now time.Time) Estimate {
	if t.dragging || t.inGuard(now) {
		return Estimate{Position: t.dragPos}
	}
	return t.estimate(now)
}

// Fraction returns Displayed as a fraction of the current duration.
func (t *Tracker) Fraction(now time.Time) float64 {
	d := t.sample.Duration
	e := t.Displayed(now)
	if e.Indeterminate || d <= 0 {
		return 0
	}
	return min(max(float64(e.Position)/float64(d), 0), 1)
}

func (t *Tracker) inGuard(now time.Time) bool {
	if t.lastDragged.IsZero() {
		return false
	}
	return now.Sub(t.lastDragged) < t.guard
}

func (t *Tracker) estimate(now time.Time) Estimate {
	if !t.hasSample {
		return Estimate{}
	}
	return Project(t.sample, now)
}

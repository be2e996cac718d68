package timer

import (
	"fmt"
	"time"
)

// FormatRemaining renders a countdown value. Negative values are overtime
// and are shown with a leading "+" so they cannot be mistaken for time left.
//
//	 4:59   time left
//	+0:02   two seconds past the deadline
func FormatRemaining(d time.Duration) string {
	sign := ""
	if d < 0 {
		sign = "+"
		d = -d
	} else {
		// Round partial seconds up so the display reaches 0:00 exactly at
		// the deadline.
		d = d.Truncate(time.Second) + roundUp(d%time.Second)
	}

	total := int(d / time.Second)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%s%d:%02d:%02d", sign, h, m, s)
	}
	return fmt.Sprintf("%s%d:%02d", sign, m, s)
}

func roundUp(frac time.Duration) time.Duration {
	if frac > 0 {
		return time.Second
	}
	return 0
}

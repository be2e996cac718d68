package monitor

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// DefaultTimerName names timers started without one.
const DefaultTimerName = "Timer"

// MaxTimer is the longest countdown the monitor starts.
const MaxTimer = 24 * time.Hour

var errEmptyTimer = errors.New("enter a duration, e.g. 25m or 90s")

// ParseTimer reads "<duration> [name]". A bare number is minutes.
func ParseTimer(s string) (string, time.Duration, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return "", 0, errEmptyTimer
	}

	var d time.Duration
	if n, err := strconv.ParseFloat(fields[0], 64); err == nil {
		minutes := n * float64(time.Minute)
		if math.IsNaN(n) || math.IsInf(n, 0) || minutes > float64(MaxTimer) {
			return "", 0, fmt.Errorf("duration out of range: %q", fields[0])
		}
		d = time.Duration(minutes)
	} else {
		d, err = time.ParseDuration(fields[0])
		if err != nil {
			return "", 0, fmt.Errorf("invalid duration %q", fields[0])
		}
	}
	if d <= 0 {
		return "", 0, fmt.Errorf("duration must be positive: %q", fields[0])
	}
	if d > MaxTimer {
		return "", 0, fmt.Errorf("duration out of range: %q", fields[0])
	}

	name := strings.Join(fields[1:], " ")
	if name == "" {
		name = DefaultTimerName
	}
	return name, d, nil
}

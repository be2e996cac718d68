package monitor

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	filledBlock = "▓"
	emptyBlock  = "░"
)

const minBarWidth = 3

// renderBar renders a block bar of width columns filled to fraction.
func renderBar(fraction float64, width int) string {
	if width <= 0 {
		return ""
	}
	fraction = min(max(fraction, 0), 1)
	filled := min(int(float64(width)*fraction), width)
	return strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
}

// renderPlayback renders "▶  1:23  ▓▓▓░░░  4:56", falling back to bare
// times when too narrow.
func renderPlayback(pos, dur time.Duration, fraction float64, width int, playing bool) string {
	status := "▶"
	if !playing {
		status = "⏸"
	}
	posStr := formatClock(pos)
	durStr := formatClock(dur)

	fixed := lipgloss.Width(status) + 2 + lipgloss.Width(posStr) + 2 + 2 + lipgloss.Width(durStr)
	barWidth := width - fixed
	if barWidth < minBarWidth {
		return status + "  " + posStr + " / " + durStr
	}
	return status + "  " + posStr + "  " + renderBar(fraction, barWidth) + "  " + durStr
}

// formatClock formats a playback position as M:SS or H:MM:SS, truncating
// partial seconds.
func formatClock(d time.Duration) string {
	d = max(d, 0)
	h := int(d / time.Hour)
	m := int(d % time.Hour / time.Minute)
	sec := int(d % time.Minute / time.Second)
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, sec)
	}
	return fmt.Sprintf("%d:%02d", m, sec)
}

// Package overlay draws one rendered block over another.
package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Place draws box over base with its top-left corner at column x, row y.
// Both may contain ANSI styling; columns are display columns. Parts of the
// box falling outside base are dropped.
func Place(base, box string, x, y int) string {
	baseLines := strings.Split(base, "\n")
	for i, line := range strings.Split(box, "\n") {
		row := y + i
		if row < 0 || row >= len(baseLines) {
			continue
		}
		w := ansi.StringWidth(line)
		if w == 0 {
			continue
		}

		under := baseLines[row]
		if uw := ansi.StringWidth(under); uw < x+w {
			under += strings.Repeat(" ", x+w-uw)
		}
		baseLines[row] = ansi.Cut(under, 0, x) + line + ansi.Cut(under, x+w, ansi.StringWidth(under))
	}
	return strings.Join(baseLines, "\n")
}

// TopCenter draws box horizontally centered at the top of a width-wide
// base, where a notch sits.
func TopCenter(base, box string, width int) string {
	boxWidth := 0
	for _, line := range strings.Split(box, "\n") {
		boxWidth = max(boxWidth, ansi.StringWidth(line))
	}
	return Place(base, box, max((width-boxWidth)/2, 0), 0)
}

// Package render provides text helpers for terminal views.
package render

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Sanitize drops control characters and invalid UTF-8 from text reported
// by other programs, such as player metadata, and turns non-breaking
// spaces into plain ones.
func Sanitize(s string) string {
	s = strings.ToValidUTF8(s, "")
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\u00a0':
			return ' '
		case r != '\t' && unicode.IsControl(r):
			return -1
		}
		return r
	}, s)
}

// Truncate sanitizes s and shortens it to maxWidth columns, ending with
// "..." when cut.
func Truncate(s string, maxWidth int) string {
	return runewidth.Truncate(Sanitize(s), maxWidth, "...")
}

// Pad fills s with spaces up to width columns.
func Pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// Row places left and right at the edges of width, at least one space
// apart. Styled strings are measured by their visible width.
func Row(left, right string, width int) string {
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

// Separator creates a horizontal rule of width columns.
func Separator(width int) string {
	return strings.Repeat("─", max(width, 0))
}

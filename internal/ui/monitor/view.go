package monitor

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/peek/internal/activity"
	"github.com/llehouerou/peek/internal/app"
	"github.com/llehouerou/peek/internal/hud"
	"github.com/llehouerou/peek/internal/icons"
	"github.com/llehouerou/peek/internal/suppress"
	"github.com/llehouerou/peek/internal/timer"
	"github.com/llehouerou/peek/internal/ui/overlay"
	"github.com/llehouerou/peek/internal/ui/render"
	"github.com/llehouerou/peek/internal/ui/styles"
)

// View implements tea.Model.
func (m Model) View() string {
	s := styles.T().S()
	width := max(m.width, 40)
	inner := width - 4

	header := render.Row(
		styles.Gradient("peek", styles.T().Primary, styles.T().Secondary),
		s.Subtle.Render(m.view.At.Format("15:04:05")),
		inner,
	)

	var b strings.Builder
	b.WriteString(header + "\n\n")
	if !m.hasView {
		b.WriteString(s.Muted.Render("waiting for engine…") + "\n")
	} else {
		b.WriteString(m.renderActivity(s) + "\n")
		b.WriteString(m.renderNowPlaying(s, inner) + "\n")
		b.WriteString(m.renderTimer(s, inner) + "\n")
		b.WriteString(m.renderHUD(s) + "\n")
	}

	b.WriteString("\n")
	if m.logLine != "" {
		b.WriteString(s.Muted.Render(render.Truncate(m.logLine, inner)) + "\n")
	}
	switch {
	case m.inputActive:
		b.WriteString(m.input.View())
	case m.err != "":
		b.WriteString(s.Error.Render(m.err))
	default:
		b.WriteString(s.Subtle.Render(render.Truncate(m.keys.Help(" · "), inner)))
	}

	body := s.Section.Width(width - 2).Render(b.String())
	if m.hasView && m.view.SneakPeek.Visible {
		body = overlay.TopCenter(body, renderBubble(m.view.SneakPeek), width)
	}
	return body
}

func field(s *styles.Styles, label, value string) string {
	return s.Label.Render(label) + value
}

func (m Model) renderActivity(s *styles.Styles) string {
	v := m.view
	lines := []string{
		field(s, "sneak peek", describeSneakPeek(s, v.SneakPeek)),
		field(s, "expanded", describeExpanded(s, v.Expanded)),
		field(s, "panel", describePanel(s, v)),
	}
	return strings.Join(lines, "\n")
}

func describeSneakPeek(s *styles.Styles, sp activity.SneakPeek) string {
	if !sp.Visible {
		return s.Subtle.Render("hidden")
	}
	out := s.Active.Render(sp.Kind.String()) + " " + percent(sp.Value)
	if g := icons.Glyph(sp.Icon); g != "" {
		out = g + " " + out
	}
	return out
}

func describeExpanded(s *styles.Styles, e activity.ExpandedItem) string {
	if !e.Visible {
		return s.Subtle.Render("hidden")
	}
	return s.Active.Render(e.Kind.String()) + " " + percent(e.Value)
}

func describePanel(s *styles.Styles, v app.View) string {
	out := s.Subtle.Render(v.Panel.String())
	if v.Panel == activity.PanelOpen {
		out = s.Active.Render(v.Panel.String())
	}
	if v.Hovered {
		out += " " + s.Muted.Render("hovered")
	}
	var held []string
	for _, ch := range suppress.Channels {
		if !v.Suppressed[ch] {
			continue
		}
		name := ch.String()
		if owners := v.Holders[ch]; len(owners) > 0 {
			name += " (" + strings.Join(owners, ", ") + ")"
		}
		held = append(held, name)
	}
	if len(held) > 0 {
		out += " " + s.Warning.Render("suppressed: "+strings.Join(held, ", "))
	}
	return out
}

func (m Model) renderNowPlaying(s *styles.Styles, width int) string {
	np := m.view.NowPlaying
	if np.Title == "" {
		return field(s, "playing", s.Subtle.Render("nothing"))
	}

	title := render.Sanitize(np.Title)
	if np.Artist != "" {
		title += " · " + render.Sanitize(np.Artist)
	}
	lines := []string{field(s, "playing", render.Truncate(title, width-12))}

	sample := np.Sample
	switch {
	case m.view.Position.Indeterminate:
		lines = append(lines, field(s, "", s.Muted.Render("live stream")))
	default:
		bar := renderPlayback(m.view.Position.Position, sample.Duration, m.view.Fraction, width-12, sample.Playing())
		if m.view.Dragging {
			bar = s.Warning.Render(bar)
		}
		lines = append(lines, field(s, "", bar))
	}
	if !sample.Timestamp.IsZero() {
		lines = append(lines, field(s, "", s.Subtle.Render("sampled "+humanize.RelTime(sample.Timestamp, m.view.At, "ago", "from now"))))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderTimer(s *styles.Styles, width int) string {
	t := m.view.Timer
	if !t.State.IsActive() {
		return field(s, "timer", s.Subtle.Render("inactive"))
	}

	display := t.Display
	switch t.State {
	case timer.StateOvertime:
		display = s.Warning.Render(display)
	case timer.StateRunning:
		display = s.Active.Render(display)
	default:
		display = s.Muted.Render(display)
	}

	head := fmt.Sprintf("%s %s %s", display, render.Sanitize(t.Name), s.Subtle.Render(strings.ToLower(t.State.String())))
	if t.Owner == timer.OwnerExternal {
		head += " " + s.Subtle.Render("(external)")
	}
	return field(s, "timer", head) + "\n" + field(s, "", renderBar(t.Progress, max(width-12, minBarWidth)))
}

func (m Model) renderHUD(s *styles.Styles) string {
	v := m.view
	levels := fmt.Sprintf("volume %s  brightness %s", percent(v.Volume), percent(v.Brightness))

	pulse := func(name, fallback string) string {
		glyph := icons.Glyph(name)
		if glyph == "" {
			glyph = fallback
		}
		if v.Pulses[name] {
			return s.Active.Render(glyph)
		}
		return s.Subtle.Render(glyph)
	}
	keys := strings.Join([]string{
		pulse(hud.PulseSkipBackward, "⏮"),
		pulse(hud.PulseSkipForward, "⏭"),
		pulse(hud.PulseCopied, "✓"),
	}, " ")

	return field(s, "levels", levels) + "\n" + field(s, "keys", keys)
}

func renderBubble(sp activity.SneakPeek) string {
	s := styles.T().S()
	text := sp.Kind.String() + " " + percent(sp.Value)
	if g := icons.Glyph(sp.Icon); g != "" {
		text = g + " " + text
	}
	return s.Bubble.Render(lipgloss.JoinHorizontal(lipgloss.Center, text, " ", renderBar(sp.Value, 10)))
}

func percent(v float64) string {
	return fmt.Sprintf("%d%%", int(math.Round(v*100)))
}

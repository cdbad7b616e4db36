package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/olivier-w/driftfield/internal/hero"
	"github.com/olivier-w/driftfield/internal/util"
)

func renderHeading(title, tagline string) string {
	return titleStyle.Render(title) + "  " + taglineStyle.Render(tagline)
}

func renderTyping(text string, now time.Time) string {
	cursor := "▍"
	if now.UnixMilli()/500%2 == 1 {
		cursor = " "
	}
	return typingStyle.Render("Building "+text) + cursorStyle.Render(cursor)
}

func renderCounters(counters []hero.Counter, now time.Time) string {
	parts := make([]string, len(counters))
	for i, c := range counters {
		parts[i] = statValueStyle.Render(fmt.Sprintf("%d", c.Value(now))) + " " + statLabelStyle.Render(c.Label)
	}
	return strings.Join(parts, statLabelStyle.Render("  ·  "))
}

func renderStatus(paused bool, fps float64, count, links int) string {
	state := "▶ drifting"
	if paused {
		state = "❚❚ paused"
	}
	return statusStyle.Render(fmt.Sprintf("%s  %s  %d particles  %d links", state, util.FormatRate(fps), count, links))
}

// blankLike returns empty lines occupying the same height as s.
func blankLike(s string) string {
	return strings.Repeat("\n", lipgloss.Height(s)-1)
}

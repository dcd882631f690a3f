package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/letterz/internal/mastery"
	"github.com/abhisek/letterz/internal/ui/theme"
)

// Block-letter title. Every line has the same width so centering keeps the
// letters aligned.
const titleFull = `█     ████  █████  █████  ████  ████   █████
█     █       █      █    █     █   █     █ 
█     ███     █      █    ███   ████     █  
█     █       █      █    █     █  █    █   
████  ████    █      █    ████  █   █  █████`

const titleCompact = "L · E · T · T · E · R · Z"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Gold).
		Bold(true)

	title := titleFull
	if compact {
		title = titleCompact
	}
	return lipgloss.PlaceHorizontal(cw, lipgloss.Center, style.Render(title))
}

// renderStatsBar renders mastery and due counts in a bordered box.
func renderStatsBar(p mastery.Progress, due, cw int, compact bool) string {
	masteredStyle := lipgloss.NewStyle().Foreground(theme.Gold).Bold(true)
	dueStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s",
			masteredStyle.Render(fmt.Sprintf("★%d/%d", p.Mastered, p.Total)),
			dueText(due, true, dueStyle, dimStyle),
		)
	} else {
		stats = fmt.Sprintf("%s  %s",
			masteredStyle.Render(fmt.Sprintf("★ %d/%d LETTERS", p.Mastered, p.Total)),
			dueText(due, false, dueStyle, dimStyle),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

func dueText(due int, compact bool, active, dim lipgloss.Style) string {
	if due == 0 {
		if compact {
			return dim.Render("⏳0")
		}
		return dim.Render("⏳ RESTING")
	}
	if compact {
		return active.Render(fmt.Sprintf("⏳%d", due))
	}
	return active.Render(fmt.Sprintf("⏳ %d READY", due))
}

// renderConfirm renders the start-over prompt.
func renderConfirm(cw int) string {
	lines := []string{
		lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("Start over?"),
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("All letters go back to the beginning."),
		"",
		lipgloss.NewStyle().Foreground(theme.Text).Render("Y = yes    N = no"),
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Accent).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(1, 2).
		Render(strings.Join(lines, "\n"))
}

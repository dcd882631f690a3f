package practice

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/letterz/internal/ui/components"
	"github.com/abhisek/letterz/internal/ui/layout"
	"github.com/abhisek/letterz/internal/ui/theme"
)

func (p *PracticeScreen) View(width, height int) string {
	if p.turn == nil {
		return ""
	}
	cw := components.ContentWidth(width)
	compact := layout.IsCompact(width, height+6)

	var sections []string

	picture := p.turn.Letter.Emoji + "  " + p.turn.Letter.Word
	sections = append(sections,
		lipgloss.NewStyle().Foreground(theme.Text).Render(picture),
		theme.BigLetter.Render(p.turn.Prompt),
	)

	msgStyle := lipgloss.NewStyle().Foreground(theme.Text)
	if p.feedback {
		msgStyle = theme.Incorrect
		if p.correct {
			msgStyle = theme.Correct
		}
	}
	sections = append(sections,
		msgStyle.Render(p.message),
		p.grid.View(),
	)

	prog := p.sess.Progress()
	bar := components.NewProgressBar("Mastery", prog.Fraction, true, cw)
	sections = append(sections, bar.View())

	spaced := make([]string, 0, 2*len(sections))
	for i, s := range sections {
		if i > 0 && !compact {
			spaced = append(spaced, "")
		}
		spaced = append(spaced, s)
	}
	block := lipgloss.JoinVertical(lipgloss.Center, spaced...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, block)
}

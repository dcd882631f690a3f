// Package celebrate is the win screen shown once every letter is mastered.
package celebrate

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/letterz/internal/router"
	"github.com/abhisek/letterz/internal/screen"
	"github.com/abhisek/letterz/internal/session"
	"github.com/abhisek/letterz/internal/ui/components"
	"github.com/abhisek/letterz/internal/ui/layout"
	"github.com/abhisek/letterz/internal/ui/theme"
)

const sparkles = "✨  ⭐  🌟  💫  ✨"

// CelebrateScreen congratulates the learner and offers another round.
type CelebrateScreen struct {
	summary   session.Summary
	playAgain func() tea.Cmd
	menu      components.Menu
}

var _ screen.Screen = (*CelebrateScreen)(nil)
var _ screen.KeyHintProvider = (*CelebrateScreen)(nil)

// New creates the win screen. playAgain resets the deck and returns the
// command that starts the next round.
func New(summary session.Summary, playAgain func() tea.Cmd) *CelebrateScreen {
	c := &CelebrateScreen{summary: summary, playAgain: playAgain}
	c.menu = components.NewMenu([]components.MenuItem{
		{Label: "PLAY AGAIN", Action: playAgain},
		{Label: "HOME", Action: func() tea.Cmd {
			return func() tea.Msg { return router.PopToRootMsg{} }
		}},
	})
	return c
}

func (c *CelebrateScreen) Init() tea.Cmd {
	return nil
}

func (c *CelebrateScreen) Title() string {
	return "You Did It!"
}

func (c *CelebrateScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Go"},
		{Key: "Esc", Description: "Home"},
	}
}

func (c *CelebrateScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	c.menu, cmd = c.menu.Update(msg)
	return c, cmd
}

func (c *CelebrateScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	center := lipgloss.NewStyle().Width(cw).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString(center.Render(sparkles))
	b.WriteString("\n\n")
	b.WriteString(center.Foreground(theme.Gold).Bold(true).Render("You Did It! All Letters!"))
	b.WriteString("\n\n")

	if sum := c.summary; sum.TotalAnswers > 0 {
		mins := int(sum.Duration.Minutes())
		secs := int(sum.Duration.Seconds()) % 60
		line := fmt.Sprintf("%d answers   %.0f%% right   %d:%02d",
			sum.TotalAnswers, sum.Accuracy*100, mins, secs)
		b.WriteString(center.Foreground(theme.TextDim).Render(line))
		b.WriteString("\n\n")
	}

	b.WriteString(c.menu.View(cw))
	return components.Frame(b.String(), width, height)
}

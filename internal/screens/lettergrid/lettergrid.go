// Package lettergrid shows every letter with its box and accuracy.
package lettergrid

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/letterz/internal/letters"
	"github.com/abhisek/letterz/internal/router"
	"github.com/abhisek/letterz/internal/screen"
	"github.com/abhisek/letterz/internal/session"
	"github.com/abhisek/letterz/internal/spacedrep"
	"github.com/abhisek/letterz/internal/ui/layout"
	"github.com/abhisek/letterz/internal/ui/theme"
)

const columns = 7

// Cell is one letter on the grid.
type Cell struct {
	Label  string
	Card   spacedrep.Card
	Status spacedrep.ReviewStatus
}

// LetterGridScreen is the "Your Letters" screen.
type LetterGridScreen struct {
	cells   []Cell
	maxBox  int
	mastery int
}

var _ screen.Screen = (*LetterGridScreen)(nil)
var _ screen.KeyHintProvider = (*LetterGridScreen)(nil)

// New snapshots the session deck into a grid.
func New(sess *session.Session) *LetterGridScreen {
	cfg := sess.Config()
	return &LetterGridScreen{
		cells:   BuildCells(sess.Universe(), sess.Deck(), cfg.Lowercase, cfg.MasteryBox, time.Now()),
		maxBox:  cfg.Intervals.MaxBox(),
		mastery: cfg.MasteryBox,
	}
}

// BuildCells pairs each letter with its card, in alphabet order.
func BuildCells(universe []letters.Letter, d spacedrep.Deck, lowercase bool, masteryBox int, now time.Time) []Cell {
	cells := make([]Cell, 0, len(universe))
	for _, l := range universe {
		c, ok := d.Card(l.Symbol)
		if !ok {
			c = spacedrep.NewCard(l.Symbol)
		}
		cells = append(cells, Cell{
			Label:  l.Prompt(lowercase),
			Card:   c,
			Status: c.Status(now, masteryBox),
		})
	}
	return cells
}

func (s *LetterGridScreen) Init() tea.Cmd {
	return nil
}

func (s *LetterGridScreen) Title() string {
	return "Your Letters"
}

func (s *LetterGridScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *LetterGridScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "enter", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *LetterGridScreen) View(width, height int) string {
	var rows []string
	for start := 0; start < len(s.cells); start += columns {
		end := min(start+columns, len(s.cells))
		var row []string
		for _, c := range s.cells[start:end] {
			row = append(row, s.renderCell(c))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	legend := lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		"● box reached   ★ mastered   % right answers")
	block := lipgloss.JoinVertical(lipgloss.Center, append(rows, "", legend)...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, block)
}

func (s *LetterGridScreen) renderCell(c Cell) string {
	tile := theme.Tile
	if c.Card.Box >= s.mastery {
		tile = theme.TileMastered
	}

	dots := strings.Repeat("●", c.Card.Box) + strings.Repeat("○", max(0, s.maxBox-c.Card.Box))
	if c.Status == spacedrep.ReviewMastered {
		dots = "★ " + dots
	}
	acc := "--"
	if c.Card.SeenCount > 0 {
		acc = fmt.Sprintf("%d%%", int(c.Card.Accuracy()*100+0.5))
	}

	cell := lipgloss.JoinVertical(lipgloss.Center,
		tile.Render(c.Label),
		lipgloss.NewStyle().Foreground(theme.Secondary).Render(dots),
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(acc),
	)
	return lipgloss.NewStyle().Width(10).Align(lipgloss.Center).Render(cell)
}

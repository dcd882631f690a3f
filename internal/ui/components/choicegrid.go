package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/letterz/internal/ui/theme"
)

// ChoiceGrid lays the answer tiles out in rows of Columns and tracks the
// highlighted tile.
type ChoiceGrid struct {
	Labels   []string
	Columns  int
	Selected int

	// Correct and Wrong mark tiles after an answer; -1 when unset.
	Correct int
	Wrong   int
}

// NewChoiceGrid creates a grid with two columns, the usual 2x2 board.
func NewChoiceGrid(labels []string) ChoiceGrid {
	return ChoiceGrid{
		Labels:  labels,
		Columns: 2,
		Correct: -1,
		Wrong:   -1,
	}
}

// Move shifts the highlight by (dRow, dCol), staying inside the grid.
func (g ChoiceGrid) Move(dRow, dCol int) ChoiceGrid {
	if len(g.Labels) == 0 || g.Columns < 1 {
		return g
	}
	row, col := g.Selected/g.Columns, g.Selected%g.Columns
	row += dRow
	col += dCol
	if col < 0 || col >= g.Columns || row < 0 {
		return g
	}
	next := row*g.Columns + col
	if next >= len(g.Labels) {
		return g
	}
	g.Selected = next
	return g
}

// Reveal marks the correct tile and, when chosen differs, the wrong one.
func (g ChoiceGrid) Reveal(correct, chosen int) ChoiceGrid {
	g.Correct = correct
	if chosen != correct {
		g.Wrong = chosen
	}
	return g
}

// View renders the grid.
func (g ChoiceGrid) View() string {
	cols := g.Columns
	if cols < 1 {
		cols = 1
	}
	var rows []string
	for start := 0; start < len(g.Labels); start += cols {
		end := start + cols
		if end > len(g.Labels) {
			end = len(g.Labels)
		}
		tiles := make([]string, 0, cols)
		for i := start; i < end; i++ {
			tiles = append(tiles, g.tileStyle(i).Render(g.Labels[i]), " ")
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, tiles...))
	}
	return strings.Join(rows, "\n")
}

func (g ChoiceGrid) tileStyle(i int) lipgloss.Style {
	switch {
	case i == g.Correct:
		return theme.TileCorrect
	case i == g.Wrong:
		return theme.TileWrong
	case i == g.Selected && g.Correct < 0:
		return theme.TileSelected
	default:
		return theme.Tile
	}
}

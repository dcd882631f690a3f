package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/letterz/internal/ui/theme"
)

// ButtonWidth is the fixed width of menu buttons.
const ButtonWidth = 22

// Button is a fixed-width rounded button.
type Button struct {
	Label    string
	Active   bool
	Disabled bool
}

// View renders the button.
func (b Button) View() string {
	switch {
	case b.Disabled:
		return theme.ButtonInactive.
			Width(ButtonWidth).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(b.Label)
	case b.Active:
		return theme.ButtonActive.
			Width(ButtonWidth).
			Align(lipgloss.Center).
			Render("▸ " + b.Label)
	default:
		return theme.ButtonInactive.
			Width(ButtonWidth).
			Align(lipgloss.Center).
			Render(b.Label)
	}
}

// ContentWidth returns the uniform inner width used for boxed sections.
func ContentWidth(frameWidth int) int {
	w := frameWidth - 6
	if w > 60 {
		w = 60
	}
	if w < 20 {
		w = 20
	}
	return w
}

// Frame wraps content in a double border centered in the given area.
func Frame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

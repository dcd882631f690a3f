package theme

import (
	"charm.land/lipgloss/v2"
)

// Palette: sky, pink and purple with a gold accent for wins.
var (
	Primary   = lipgloss.Color("#A855F7") // Purple
	Secondary = lipgloss.Color("#38BDF8") // Sky
	Accent    = lipgloss.Color("#F472B6") // Pink
	Gold      = lipgloss.Color("#FACC15") // Yellow
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#1E1B4B") // Indigo night
	BgCard    = lipgloss.Color("#312E81") // Indigo
	Border    = lipgloss.Color("#4C1D95") // Deep violet
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	// BigLetter is the prompt letter on the practice board.
	BigLetter = lipgloss.NewStyle().
			Bold(true).
			Foreground(Gold).
			Border(lipgloss.ThickBorder()).
			BorderForeground(Accent).
			Padding(1, 4)
)

// Letter tiles
var (
	Tile = lipgloss.NewStyle().
		Width(7).
		Align(lipgloss.Center).
		Foreground(Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border)

	TileSelected = Tile.
			Bold(true).
			Foreground(BgDark).
			Background(Secondary).
			BorderForeground(Secondary)

	TileCorrect = Tile.
			Bold(true).
			Foreground(BgDark).
			Background(Success).
			BorderForeground(Success)

	TileWrong = Tile.
			Bold(true).
			Foreground(Text).
			Background(Error).
			BorderForeground(Error)

	TileMastered = Tile.
			Bold(true).
			Foreground(BgDark).
			Background(Gold).
			BorderForeground(Gold)
)

// Feedback
var (
	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Accent)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	ButtonActive = lipgloss.NewStyle().
			Bold(true).
			Foreground(BgDark).
			Background(Gold).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Gold).
			Padding(0, 1)

	ButtonInactive = lipgloss.NewStyle().
			Foreground(Text).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 1)
)

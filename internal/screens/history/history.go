// Package history lists the most recent answers from the answer log.
package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/letterz/internal/router"
	"github.com/abhisek/letterz/internal/screen"
	"github.com/abhisek/letterz/internal/store"
	"github.com/abhisek/letterz/internal/ui/layout"
	"github.com/abhisek/letterz/internal/ui/theme"
)

// pageSize is how many answers are loaded.
const pageSize = 50

type historyLoadedMsg struct {
	Answers []store.AnswerEventRecord
	Stats   map[string]store.ItemStat
	Err     error
}

// HistoryScreen displays recent answers with per-letter accuracy.
type HistoryScreen struct {
	eventRepo store.EventRepo
	answers   []store.AnswerEventRecord
	stats     map[string]store.ItemStat
	offset    int
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{eventRepo: eventRepo}
}

func (s *HistoryScreen) Init() tea.Cmd {
	repo := s.eventRepo
	return func() tea.Msg {
		ctx := context.Background()

		answers, err := repo.QueryAnswerEvents(ctx, store.QueryOpts{Limit: pageSize})
		if err != nil {
			return historyLoadedMsg{Err: err}
		}

		stats := make(map[string]store.ItemStat)
		all, err := repo.ItemStats(ctx)
		if err == nil {
			for _, st := range all {
				stats[st.ItemID] = st
			}
		}
		return historyLoadedMsg{Answers: answers, Stats: stats}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.answers = msg.Answers
			s.stats = msg.Stats
		}
		s.loaded = true
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.offset > 0 {
				s.offset--
			}
		case "down", "j":
			if s.offset < len(s.answers)-1 {
				s.offset++
			}
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	if s.errMsg != "" {
		return center.Foreground(theme.Error).Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return center.Foreground(theme.TextDim).Render("\n\n  Loading history...")
	}
	if len(s.answers) == 0 {
		return center.Foreground(theme.TextDim).Italic(true).Render("\n\n  No answers yet. Let's play!")
	}

	var b strings.Builder
	b.WriteString("\n")

	visible := height - 2
	if visible < 1 {
		visible = 1
	}
	end := min(s.offset+visible, len(s.answers))
	for _, a := range s.answers[s.offset:end] {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.renderLine(a)))
		b.WriteString("\n")
	}
	return b.String()
}

func (s *HistoryScreen) renderLine(a store.AnswerEventRecord) string {
	mark := theme.Correct.Render("✓")
	picked := ""
	if !a.Correct {
		mark = theme.Incorrect.Render("✗")
		picked = fmt.Sprintf(" picked %s", a.Choice)
	}

	acc := ""
	if st, ok := s.stats[a.ItemID]; ok && st.Attempts > 0 {
		acc = fmt.Sprintf("  %3.0f%% of %d", st.Accuracy()*100, st.Attempts)
	}

	line := fmt.Sprintf("%s  %s %s%-10s box %d→%d%s",
		a.Timestamp.Local().Format("Jan 02 15:04:05"),
		mark, a.ItemID, picked, a.BoxBefore, a.BoxAfter, acc)
	return lipgloss.NewStyle().Foreground(theme.Text).Render(line)
}

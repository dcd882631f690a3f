// Package practice is the letter board: one prompt, a grid of choices and
// feedback after every pick.
package practice

import (
	"context"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/letterz/internal/router"
	"github.com/abhisek/letterz/internal/screen"
	"github.com/abhisek/letterz/internal/screens/celebrate"
	"github.com/abhisek/letterz/internal/session"
	"github.com/abhisek/letterz/internal/ui/components"
	"github.com/abhisek/letterz/internal/ui/layout"
)

// PracticeScreen implements screen.Screen for the letter board.
type PracticeScreen struct {
	sess     *session.Session
	turn     *session.Turn
	grid     components.ChoiceGrid
	message  string
	correct  bool
	feedback bool
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)

// New creates a PracticeScreen over sess. The session must be started.
func New(sess *session.Session) *PracticeScreen {
	return &PracticeScreen{sess: sess}
}

func (p *PracticeScreen) Init() tea.Cmd {
	turn := p.sess.Turn()
	if turn == nil {
		return p.celebrate(p.sess.Summary())
	}
	p.show(turn)
	return nil
}

func (p *PracticeScreen) Title() string {
	return "Practice"
}

func (p *PracticeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "A-Z", Description: "Pick"},
		{Key: "←↑↓→", Description: "Move"},
		{Key: keys.Pick.Help().Key, Description: keys.Pick.Help().Desc},
		{Key: keys.Repeat.Help().Key, Description: keys.Repeat.Help().Desc},
		{Key: "Esc", Description: "Home"},
	}
}

func (p *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case feedbackDoneMsg:
		return p.handleFeedbackDone(msg)
	case tea.KeyPressMsg:
		return p.handleKey(msg)
	}
	return p, nil
}

func (p *PracticeScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	if p.feedback || p.turn == nil {
		return p, nil
	}

	switch {
	case key.Matches(msg, keys.Up):
		p.grid = p.grid.Move(-1, 0)
	case key.Matches(msg, keys.Down):
		p.grid = p.grid.Move(1, 0)
	case key.Matches(msg, keys.Left):
		p.grid = p.grid.Move(0, -1)
	case key.Matches(msg, keys.Right):
		p.grid = p.grid.Move(0, 1)
	case key.Matches(msg, keys.Pick):
		return p.pick(p.grid.Selected)
	case key.Matches(msg, keys.Repeat):
		p.sess.Repeat()
	default:
		if choice, ok := p.turn.Match(msg.Text); ok {
			return p.pick(p.indexOf(choice))
		}
	}
	return p, nil
}

func (p *PracticeScreen) pick(idx int) (screen.Screen, tea.Cmd) {
	if idx < 0 || idx >= len(p.turn.Choices) {
		return p, nil
	}

	out := p.sess.Answer(context.Background(), p.turn.Choices[idx])
	p.grid = p.grid.Reveal(p.indexOf(p.turn.Card.ItemID), idx)
	p.message = out.Message
	p.correct = out.Correct
	p.feedback = true

	delay := incorrectDelay
	if out.Correct {
		delay = correctDelay
	}
	next := out.Next
	return p, tea.Tick(delay, func(time.Time) tea.Msg {
		return feedbackDoneMsg{Next: next}
	})
}

func (p *PracticeScreen) handleFeedbackDone(msg feedbackDoneMsg) (screen.Screen, tea.Cmd) {
	if msg.Next == nil {
		return p, p.celebrate(p.sess.Summary())
	}
	p.show(msg.Next)
	return p, nil
}

func (p *PracticeScreen) show(turn *session.Turn) {
	p.turn = turn
	p.grid = components.NewChoiceGrid(turn.Labels)
	p.message = session.PromptMessage
	p.correct = false
	p.feedback = false
	p.sess.Repeat()
}

func (p *PracticeScreen) indexOf(itemID string) int {
	for i, c := range p.turn.Choices {
		if c == itemID {
			return i
		}
	}
	return -1
}

// celebrate swaps this screen for the win screen.
func (p *PracticeScreen) celebrate(sum session.Summary) tea.Cmd {
	sess := p.sess
	playAgain := func() tea.Cmd {
		sess.Reset(context.Background())
		return func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: New(sess)}
		}
	}
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: celebrate.New(sum, playAgain)}
	}
}

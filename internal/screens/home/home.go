package home

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/letterz/internal/mastery"
	"github.com/abhisek/letterz/internal/router"
	"github.com/abhisek/letterz/internal/screen"
	"github.com/abhisek/letterz/internal/screens/history"
	"github.com/abhisek/letterz/internal/screens/lettergrid"
	"github.com/abhisek/letterz/internal/screens/practice"
	"github.com/abhisek/letterz/internal/session"
	"github.com/abhisek/letterz/internal/store"
	"github.com/abhisek/letterz/internal/ui/components"
	"github.com/abhisek/letterz/internal/ui/layout"
)

// HomeScreen is the main menu.
type HomeScreen struct {
	sess       *session.Session
	menu       components.Menu
	progress   mastery.Progress
	due        int
	confirming bool
	now        func() time.Time
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.Resumer = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a HomeScreen. events may be nil when the backend keeps no
// answer log; the history entry is then disabled.
func New(sess *session.Session, events store.EventRepo) *HomeScreen {
	h := &HomeScreen{sess: sess, now: time.Now}

	items := []components.MenuItem{
		{Label: "PLAY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: practice.New(sess)}
			}
		}},
		{Label: "MY LETTERS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: lettergrid.New(sess)}
			}
		}},
		{Label: "HISTORY", Disabled: events == nil, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(events)}
			}
		}},
		{Label: "START OVER", Action: func() tea.Cmd {
			h.confirming = true
			return nil
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	h.menu = components.NewMenu(items)
	h.refresh()
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

// Resume reloads the stats after returning from another screen.
func (h *HomeScreen) Resume() tea.Cmd {
	h.refresh()
	return nil
}

func (h *HomeScreen) refresh() {
	h.progress = h.sess.Progress()
	h.due = len(h.sess.Deck().Due(h.now()))
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	if h.confirming {
		return []layout.KeyHint{
			{Key: "Y", Description: "Start over"},
			{Key: "N", Description: "Keep my letters"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if h.confirming {
		if kmsg, ok := msg.(tea.KeyPressMsg); ok {
			switch kmsg.String() {
			case "y", "Y":
				h.sess.Reset(context.Background())
				h.confirming = false
				h.refresh()
			case "n", "N", "esc":
				h.confirming = false
			}
		}
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	compact := layout.IsCompact(width, height+6)
	cw := components.ContentWidth(width)

	sections := []string{
		renderTitle(cw, compact),
		renderStatsBar(h.progress, h.due, cw, compact),
	}
	if h.confirming {
		sections = append(sections, renderConfirm(cw))
	} else {
		sections = append(sections, h.menu.View(cw))
	}

	sep := "\n\n"
	if compact {
		sep = "\n"
	}
	return components.Frame(strings.Join(sections, sep), width, height)
}

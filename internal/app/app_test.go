package app

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/letterz/internal/cardstore"
	"github.com/abhisek/letterz/internal/letters"
	"github.com/abhisek/letterz/internal/router"
	"github.com/abhisek/letterz/internal/session"
	"github.com/abhisek/letterz/internal/store/memkv"
)

func testModel(t *testing.T) AppModel {
	t.Helper()
	alphabet := letters.Alphabet()
	s, err := session.New(session.DefaultConfig(), alphabet, cardstore.New(memkv.New(), letters.Symbols(alphabet)))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(s.Close)
	s.Start(context.Background())
	return newAppModel(Options{Session: s})
}

func TestEscPopsOnlyAboveRoot(t *testing.T) {
	m := testModel(t)

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd != nil {
		if _, ok := cmd().(router.PopScreenMsg); ok {
			t.Error("esc at root should not pop")
		}
	}

	m.router.Push(m.router.Active())
	_, cmd = m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg, got %T", cmd())
	}
}

func TestFooterHintsFromScreen(t *testing.T) {
	m := testModel(t)

	hints := m.footerHints(m.router.Active())
	if len(hints) == 0 || hints[0].Key != "↑↓" {
		t.Errorf("home hints = %+v", hints)
	}
}

func TestWindowSizeRecorded(t *testing.T) {
	m := testModel(t)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	am := updated.(AppModel)
	if am.width != 100 || am.height != 40 {
		t.Errorf("size = %dx%d", am.width, am.height)
	}
}

package home

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/letterz/internal/cardstore"
	"github.com/abhisek/letterz/internal/letters"
	"github.com/abhisek/letterz/internal/router"
	"github.com/abhisek/letterz/internal/session"
	"github.com/abhisek/letterz/internal/spacedrep"
	"github.com/abhisek/letterz/internal/store/memkv"
)

func newTestSession(t *testing.T) *session.Session {
	t.Helper()
	alphabet := letters.Alphabet()
	cs := cardstore.New(memkv.New(), letters.Symbols(alphabet))
	s, err := session.New(session.DefaultConfig(), alphabet, cs)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(s.Close)
	s.Start(context.Background())
	return s
}

func press(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code, Text: string(code)}
}

func TestPlayPushesPractice(t *testing.T) {
	h := New(newTestSession(t), nil)

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if push.Screen.Title() != "Practice" {
		t.Errorf("pushed %q, want Practice", push.Screen.Title())
	}
}

func TestHistoryDisabledWithoutEventLog(t *testing.T) {
	h := New(newTestSession(t), nil)
	if !h.menu.Items[2].Disabled {
		t.Error("HISTORY should be disabled without an event repo")
	}
}

func TestStartOverNeedsConfirmation(t *testing.T) {
	s := newTestSession(t)
	s.Answer(context.Background(), s.Turn().Card.ItemID)
	h := New(s, nil)
	h.menu.Selected = 3

	h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !h.confirming {
		t.Fatal("expected confirmation prompt")
	}
	h.Update(press('n'))
	if h.confirming {
		t.Fatal("n should cancel")
	}
	if c, _ := s.Deck().Card("A"); c.SeenCount != 1 {
		t.Fatal("deck should be untouched after cancel")
	}

	h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	h.Update(press('y'))
	if c, _ := s.Deck().Card("A"); c != spacedrep.NewCard("A") {
		t.Errorf("deck not reset: %+v", c)
	}
}

func TestResumeRefreshesStats(t *testing.T) {
	s := newTestSession(t)
	h := New(s, nil)
	if h.due != 26 {
		t.Fatalf("due = %d, want 26", h.due)
	}

	s.Answer(context.Background(), s.Turn().Card.ItemID)
	h.Resume()
	if h.due != 25 {
		t.Errorf("due after one answer = %d, want 25", h.due)
	}
	if h.progress.Total != 26 {
		t.Errorf("total = %d", h.progress.Total)
	}
}

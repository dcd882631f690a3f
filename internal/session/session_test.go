package session

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/abhisek/letterz/internal/letters"
	"github.com/abhisek/letterz/internal/mastery"
	"github.com/abhisek/letterz/internal/spacedrep"
	"github.com/abhisek/letterz/internal/store"
)

type fakeDeckStore struct {
	mu     sync.Mutex
	loaded spacedrep.Deck
	saves  []spacedrep.Deck
}

func (f *fakeDeckStore) Load(context.Context) spacedrep.Deck {
	return f.loaded
}

func (f *fakeDeckStore) Save(_ context.Context, d spacedrep.Deck) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saves = append(f.saves, d)
}

func (f *fakeDeckStore) last() (spacedrep.Deck, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.saves) == 0 {
		return spacedrep.Deck{}, false
	}
	return f.saves[len(f.saves)-1], true
}

type fakeSpeaker struct {
	said []string
}

func (f *fakeSpeaker) Say(text string) {
	f.said = append(f.said, text)
}

type fakeEventRepo struct {
	events []store.AnswerEventData
	err    error
}

func (f *fakeEventRepo) AppendAnswerEvent(_ context.Context, data store.AnswerEventData) error {
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, data)
	return nil
}

func (f *fakeEventRepo) QueryAnswerEvents(context.Context, store.QueryOpts) ([]store.AnswerEventRecord, error) {
	return nil, nil
}

func (f *fakeEventRepo) ItemStats(context.Context) ([]store.ItemStat, error) {
	return nil, nil
}

type clock struct {
	t time.Time
}

func (c *clock) Now() time.Time { return c.t }

func abc() []letters.Letter {
	return letters.Alphabet()[:3]
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.ChoiceCount = 3
	return cfg
}

func newTestSession(t *testing.T, ds *fakeDeckStore, opts ...Option) (*Session, *clock) {
	t.Helper()
	if ds.loaded.Len() == 0 {
		ds.loaded = spacedrep.NewDeck([]string{"A", "B", "C"})
	}
	clk := &clock{t: time.UnixMilli(100_000)}
	opts = append([]Option{WithClock(clk.Now), WithRand(rand.New(rand.NewSource(1)))}, opts...)
	s, err := New(testConfig(), abc(), ds, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(s.Close)
	return s, clk
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  func() Config
	}{
		{"universe too small", DefaultConfig},
		{"mastery box too high", func() Config {
			c := testConfig()
			c.MasteryBox = 4
			return c
		}},
		{"bad intervals", func() Config {
			c := testConfig()
			c.Intervals = spacedrep.Intervals{time.Second}
			return c
		}},
		{"zero choices", func() Config {
			c := testConfig()
			c.ChoiceCount = 0
			return c
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.cfg(), abc(), &fakeDeckStore{})
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("err = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestStartAndAnswerScenario(t *testing.T) {
	sp := &fakeSpeaker{}
	s, _ := newTestSession(t, &fakeDeckStore{}, WithSpeaker(sp))

	turn := s.Start(context.Background())
	if turn == nil {
		t.Fatal("Start returned nil turn")
	}
	if turn.Card.ItemID != "A" {
		t.Fatalf("first card = %s, want A", turn.Card.ItemID)
	}
	if len(turn.Choices) != 3 {
		t.Errorf("choices = %v, want 3", turn.Choices)
	}
	if len(sp.said) != 0 {
		t.Errorf("Start should not speak, said %v", sp.said)
	}
	s.Repeat()
	if len(sp.said) != 1 || sp.said[0] != "A" {
		t.Errorf("said = %v, want [A]", sp.said)
	}

	out := s.Answer(context.Background(), "A")
	if !out.Correct {
		t.Fatal("expected correct")
	}
	if out.Card.Box != 1 {
		t.Errorf("box = %d, want 1", out.Card.Box)
	}
	if got := out.Card.NextDueAt.UnixMilli(); got != 115_000 {
		t.Errorf("nextDueAt = %d, want 115000", got)
	}
	if out.Message != "Yes! A is for apple." {
		t.Errorf("message = %q", out.Message)
	}
	if out.Next == nil || out.Next.Card.ItemID != "B" {
		t.Fatalf("next = %+v, want B", out.Next)
	}
	if out.Total != 3 || out.Mastered != 0 || out.Percent != 0 {
		t.Errorf("progress = %d/%d (%d%%)", out.Mastered, out.Total, out.Percent)
	}
}

func TestWrongAnswerDemotes(t *testing.T) {
	ds := &fakeDeckStore{loaded: spacedrep.Deck{Cards: []spacedrep.Card{
		{ItemID: "A", Box: 2, NextDueAt: spacedrep.Epoch, SeenCount: 2, CorrectCount: 2},
		{ItemID: "B", Box: 3, NextDueAt: time.UnixMilli(500_000), SeenCount: 3, CorrectCount: 3},
		{ItemID: "C", Box: 3, NextDueAt: time.UnixMilli(500_000), SeenCount: 3, CorrectCount: 3},
	}}}
	s, _ := newTestSession(t, ds)

	turn := s.Start(context.Background())
	if turn.Card.ItemID != "A" {
		t.Fatalf("card = %s, want A", turn.Card.ItemID)
	}

	out := s.Answer(context.Background(), "B")
	if out.Correct {
		t.Fatal("expected incorrect")
	}
	if out.Message != TryAgainMessage {
		t.Errorf("message = %q", out.Message)
	}
	if out.Card.Box != 0 || out.Card.SeenCount != 3 || out.Card.CorrectCount != 2 {
		t.Errorf("card = %+v", out.Card)
	}
	if !out.Card.NextDueAt.Equal(time.UnixMilli(100_000)) {
		t.Errorf("nextDueAt = %v, want now", out.Card.NextDueAt)
	}
	if out.Next == nil || out.Next.Card.ItemID != "A" {
		t.Errorf("demoted card should come straight back, got %+v", out.Next)
	}
}

func TestCloseFlushesLatestDeck(t *testing.T) {
	ds := &fakeDeckStore{}
	s, clk := newTestSession(t, ds)
	s.Start(context.Background())

	for i := 0; i < 5; i++ {
		clk.t = clk.t.Add(time.Hour)
		s.Answer(context.Background(), s.Turn().Card.ItemID)
	}
	s.Close()

	got, ok := ds.last()
	if !ok {
		t.Fatal("nothing saved")
	}
	want := s.Deck()
	for i := range want.Cards {
		if got.Cards[i] != want.Cards[i] {
			t.Errorf("saved card %d = %+v, want %+v", i, got.Cards[i], want.Cards[i])
		}
	}
}

func TestPlayToCompletion(t *testing.T) {
	sp := &fakeSpeaker{}
	s, clk := newTestSession(t, &fakeDeckStore{}, WithSpeaker(sp))
	turn := s.Start(context.Background())

	answers, completions := 0, 0
	for turn != nil {
		if answers > 100 {
			t.Fatal("deck never converged")
		}
		clk.t = clk.t.Add(time.Hour)
		out := s.Answer(context.Background(), turn.Card.ItemID)
		answers++
		if out.JustCompleted {
			completions++
			if out.Percent != 100 {
				t.Errorf("percent = %d at completion", out.Percent)
			}
		}
		turn = out.Next
	}

	if answers != 9 {
		t.Errorf("answers = %d, want 9 (3 cards x 3 promotions)", answers)
	}
	if completions != 1 {
		t.Errorf("completions = %d, want 1", completions)
	}
	if s.State() != mastery.StateAllMastered {
		t.Errorf("state = %s", s.State())
	}
	if sp.said[len(sp.said)-1] != CompletedMessage {
		t.Errorf("last spoken = %q", sp.said[len(sp.said)-1])
	}

	out := s.Answer(context.Background(), "A")
	if out.Next != nil || out.JustCompleted || out.Mastered != 3 {
		t.Errorf("answer after completion = %+v", out)
	}
}

func TestStartWithMasteredDeck(t *testing.T) {
	ds := &fakeDeckStore{loaded: spacedrep.Deck{Cards: []spacedrep.Card{
		{ItemID: "A", Box: 3, NextDueAt: spacedrep.Epoch, SeenCount: 3, CorrectCount: 3},
		{ItemID: "B", Box: 3, NextDueAt: spacedrep.Epoch, SeenCount: 3, CorrectCount: 3},
		{ItemID: "C", Box: 3, NextDueAt: spacedrep.Epoch, SeenCount: 3, CorrectCount: 3},
	}}}
	s, _ := newTestSession(t, ds)

	if turn := s.Start(context.Background()); turn != nil {
		t.Errorf("turn = %+v, want nil", turn)
	}
	if s.State() != mastery.StateAllMastered {
		t.Errorf("state = %s", s.State())
	}

	turn := s.Reset(context.Background())
	if turn == nil || turn.Card.ItemID != "A" {
		t.Fatalf("turn after reset = %+v", turn)
	}
	if s.State() != mastery.StatePracticing {
		t.Errorf("state after reset = %s", s.State())
	}
	for _, c := range s.Deck().Cards {
		if c != spacedrep.NewCard(c.ItemID) {
			t.Errorf("card not fresh after reset: %+v", c)
		}
	}

	s.Close()
	saved, ok := ds.last()
	if !ok || saved.Cards[0] != spacedrep.NewCard("A") {
		t.Errorf("fresh deck not saved: %+v", saved)
	}
}

func TestAnswerEventsRecorded(t *testing.T) {
	repo := &fakeEventRepo{}
	s, _ := newTestSession(t, &fakeDeckStore{}, WithEventRepo(repo))
	s.Start(context.Background())

	s.Answer(context.Background(), "A")
	s.Answer(context.Background(), "C")

	if len(repo.events) != 2 {
		t.Fatalf("events = %d, want 2", len(repo.events))
	}
	first, second := repo.events[0], repo.events[1]
	if first.ItemID != "A" || !first.Correct || first.BoxBefore != 0 || first.BoxAfter != 1 {
		t.Errorf("first = %+v", first)
	}
	if second.ItemID != "B" || second.Correct || second.Choice != "C" {
		t.Errorf("second = %+v", second)
	}
	if first.SessionID != s.ID() {
		t.Errorf("session id = %q, want %q", first.SessionID, s.ID())
	}
}

func TestAnswerEventFailureDoesNotBlock(t *testing.T) {
	repo := &fakeEventRepo{err: errors.New("db locked")}
	s, _ := newTestSession(t, &fakeDeckStore{}, WithEventRepo(repo))
	s.Start(context.Background())

	out := s.Answer(context.Background(), "A")
	if !out.Correct || out.Next == nil {
		t.Errorf("outcome = %+v", out)
	}
}

func TestLowercaseLabels(t *testing.T) {
	ds := &fakeDeckStore{loaded: spacedrep.NewDeck([]string{"A", "B", "C"})}
	cfg := testConfig()
	cfg.Lowercase = true
	s, err := New(cfg, abc(), ds, WithClock(func() time.Time { return time.UnixMilli(0) }))
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	turn := s.Start(context.Background())
	if turn.Prompt != "a" {
		t.Errorf("prompt = %q, want a", turn.Prompt)
	}
	for i, id := range turn.Choices {
		if turn.Labels[i] != letters.NewIndex(abc()).Lookup(id).Prompt(true) {
			t.Errorf("label %d = %q for %s", i, turn.Labels[i], id)
		}
	}

	out := s.Answer(context.Background(), "A")
	if out.Message != "Yes! a is for apple." {
		t.Errorf("message = %q", out.Message)
	}
}

func TestTurnMatch(t *testing.T) {
	turn := &Turn{Choices: []string{"A", "Q", "Z"}}
	if got, ok := turn.Match("q"); !ok || got != "Q" {
		t.Errorf("Match(q) = %q, %v", got, ok)
	}
	if _, ok := turn.Match("b"); ok {
		t.Error("Match(b) should fail")
	}
}

func TestSummary(t *testing.T) {
	s, clk := newTestSession(t, &fakeDeckStore{})
	s.Start(context.Background())
	s.Answer(context.Background(), "A")
	s.Answer(context.Background(), "A")
	clk.t = clk.t.Add(time.Minute)

	sum := s.Summary()
	if sum.TotalAnswers != 2 || sum.TotalCorrect != 1 {
		t.Errorf("summary = %+v", sum)
	}
	if sum.Accuracy != 0.5 {
		t.Errorf("accuracy = %v", sum.Accuracy)
	}
	if sum.Duration != time.Minute {
		t.Errorf("duration = %v", sum.Duration)
	}
	if len(sum.Items) != 2 || sum.Items[0].ItemID != "A" || sum.Items[1].ItemID != "B" {
		t.Errorf("items = %+v", sum.Items)
	}
}

func TestResetStartsNewSummary(t *testing.T) {
	s, clk := newTestSession(t, &fakeDeckStore{})
	s.Start(context.Background())
	s.Answer(context.Background(), "A")
	s.Answer(context.Background(), "A")

	clk.t = clk.t.Add(time.Minute)
	s.Reset(context.Background())
	clk.t = clk.t.Add(10 * time.Second)
	s.Answer(context.Background(), s.Turn().Card.ItemID)

	sum := s.Summary()
	if sum.TotalAnswers != 1 || sum.TotalCorrect != 1 {
		t.Errorf("summary after reset = %+v, want 1 answer, 1 correct", sum)
	}
	if sum.Duration != 10*time.Second {
		t.Errorf("duration = %v, want 10s", sum.Duration)
	}
}

func TestDefaultClockHasMillisecondPrecision(t *testing.T) {
	now := millisClock()
	if now.UnixMilli()*int64(time.Millisecond) != now.UnixNano() {
		t.Errorf("millisClock() = %v has sub-millisecond digits", now)
	}
}

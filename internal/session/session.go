// Package session runs the letter practice loop: it picks the next card,
// builds the board, applies answers and keeps the deck persisted.
package session

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/letterz/internal/choices"
	"github.com/abhisek/letterz/internal/letters"
	"github.com/abhisek/letterz/internal/logger"
	"github.com/abhisek/letterz/internal/mastery"
	"github.com/abhisek/letterz/internal/spacedrep"
	"github.com/abhisek/letterz/internal/speech"
	"github.com/abhisek/letterz/internal/store"
)

// Messages shown on the board.
const (
	PromptMessage    = "Tap the right letter!"
	TryAgainMessage  = "Let's try again. Tap the right letter."
	CompletedMessage = "Amazing! You learned all the letters!"
)

// DeckStore loads and saves the deck. Implementations never fail; see
// cardstore.Store.
type DeckStore interface {
	Load(ctx context.Context) spacedrep.Deck
	Save(ctx context.Context, d spacedrep.Deck)
}

// Turn is one board: the card being asked and the options offered.
type Turn struct {
	SessionID string
	Card      spacedrep.Card
	Letter    letters.Letter

	// Prompt is the letter as displayed.
	Prompt string

	// Choices are item IDs in board order. Labels holds the matching
	// display strings.
	Choices []string
	Labels  []string
}

// Match resolves typed input to one of the turn's choices, ignoring case.
func (t *Turn) Match(input string) (string, bool) {
	input = strings.TrimSpace(input)
	for _, c := range t.Choices {
		if strings.EqualFold(c, input) {
			return c, true
		}
	}
	return "", false
}

// Outcome is the result of answering a turn.
type Outcome struct {
	Correct bool

	// Card is the answered card after the update.
	Card spacedrep.Card

	Message string

	Mastered int
	Total    int
	Percent  int

	// JustCompleted is true on the answer that mastered the last card.
	JustCompleted bool

	// Next is the following turn, nil once every card is mastered.
	Next *Turn
}

// Session owns the deck for one learner.
type Session struct {
	cfg      Config
	universe []letters.Letter
	index    letters.Index
	itemIDs  []string
	gen      *choices.Generator

	store   DeckStore
	saver   *saver
	events  store.EventRepo
	speaker speech.Speaker
	now     func() time.Time
	rng     *rand.Rand
	log     *logger.Logger

	id      string
	deck    spacedrep.Deck
	tracker *mastery.Tracker
	turn    *Turn
	tally   *tally
}

// Option configures a Session.
type Option func(*Session)

// WithSpeaker sets the speaker used for prompts.
func WithSpeaker(s speech.Speaker) Option {
	return func(sess *Session) {
		if s != nil {
			sess.speaker = s
		}
	}
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(sess *Session) {
		if now != nil {
			sess.now = now
		}
	}
}

// WithRand sets the random source used to build boards.
func WithRand(rng *rand.Rand) Option {
	return func(sess *Session) {
		sess.rng = rng
	}
}

// WithEventRepo records every answer to repo.
func WithEventRepo(repo store.EventRepo) Option {
	return func(sess *Session) {
		sess.events = repo
	}
}

// WithLogger sets the session logger.
func WithLogger(l *logger.Logger) Option {
	return func(sess *Session) {
		sess.log = logger.OrNop(l)
	}
}

// New validates cfg against universe and returns a Session. The deck is not
// loaded until Start.
func New(cfg Config, universe []letters.Letter, ds DeckStore, opts ...Option) (*Session, error) {
	if err := cfg.Validate(len(universe)); err != nil {
		return nil, err
	}

	s := &Session{
		cfg:      cfg,
		universe: append([]letters.Letter(nil), universe...),
		index:    letters.NewIndex(universe),
		itemIDs:  letters.Symbols(universe),
		store:    ds,
		speaker:  speech.Nop{},
		now:      millisClock,
		log:      logger.Nop(),
		id:       uuid.New().String(),
	}
	for _, opt := range opts {
		opt(s)
	}

	gen, err := choices.New(s.itemIDs, cfg.ChoiceCount, s.rng)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	s.gen = gen
	s.log = s.log.With("component", "session", "session_id", s.id)
	s.deck = spacedrep.NewDeck(s.itemIDs)
	s.tracker = mastery.NewTracker(s.deck, cfg.MasteryBox)
	s.tally = newTally(s.now())
	s.saver = newSaver(ds)
	return s, nil
}

// millisClock is the default time source. Persisted due times carry milliseconds.
func millisClock() time.Time {
	return time.Now().Truncate(time.Millisecond)
}

// ID returns the session identifier recorded with answer events.
func (s *Session) ID() string {
	return s.id
}

// Config returns the session config.
func (s *Session) Config() Config {
	return s.cfg
}

// Universe returns the letters in play.
func (s *Session) Universe() []letters.Letter {
	return append([]letters.Letter(nil), s.universe...)
}

// Start loads the persisted deck and returns the first turn. It returns nil
// when the loaded deck is already fully mastered.
func (s *Session) Start(ctx context.Context) *Turn {
	s.deck = s.store.Load(ctx)
	s.tracker = mastery.NewTracker(s.deck, s.cfg.MasteryBox)
	s.log.Info("session started",
		"cards", s.deck.Len(),
		"mastered", mastery.MasteredCount(s.deck, s.cfg.MasteryBox),
		"state", s.tracker.State(),
	)

	if s.tracker.State() == mastery.StateAllMastered {
		s.turn = nil
		return nil
	}
	s.turn = s.nextTurn()
	return s.turn
}

// Turn returns the current turn, or nil when there is none.
func (s *Session) Turn() *Turn {
	return s.turn
}

// Answer applies choice to the current turn. Without a current turn it
// returns the progress with no change.
func (s *Session) Answer(ctx context.Context, choice string) Outcome {
	if s.turn == nil {
		return s.outcome(Outcome{})
	}

	now := s.now()
	before := s.turn.Card
	target := before.ItemID
	updated, correct := spacedrep.Apply(before, choice, target, now, s.cfg.Intervals)
	s.deck = s.deck.Replace(updated)
	s.saver.enqueue(s.deck.Clone())
	s.tally.record(target, correct)
	s.recordEvent(ctx, choice, before, updated, correct, now)

	out := Outcome{Correct: correct, Card: updated}
	if correct {
		out.Message = fmt.Sprintf("Yes! %s is for %s.", s.turn.Prompt, s.turn.Letter.Word)
	} else {
		out.Message = TryAgainMessage
	}

	if tr := s.tracker.Observe(s.deck); tr != nil {
		s.log.Info("all letters mastered", "answers", s.tally.total)
		out.JustCompleted = true
		out.Message = CompletedMessage
		s.speaker.Say(CompletedMessage)
	}

	if s.tracker.State() == mastery.StateAllMastered {
		s.turn = nil
	} else {
		s.turn = s.nextTurn()
		out.Next = s.turn
	}
	return s.outcome(out)
}

// Repeat speaks the current prompt. Callers invoke it when the turn is
// shown and again on request.
func (s *Session) Repeat() {
	if s.turn == nil {
		return
	}
	s.speaker.Say(s.turn.Letter.Spoken())
}

// Reset replaces the deck with a fresh one, saves it and returns the first
// turn.
func (s *Session) Reset(ctx context.Context) *Turn {
	s.deck = spacedrep.NewDeck(s.itemIDs)
	s.saver.enqueue(s.deck.Clone())
	s.tally = newTally(s.now())
	tr := s.tracker.Reset()
	s.log.Info("deck reset", "from", tr.From)

	s.turn = s.nextTurn()
	return s.turn
}

// Deck returns a copy of the current deck.
func (s *Session) Deck() spacedrep.Deck {
	return s.deck.Clone()
}

// State returns the mastery state.
func (s *Session) State() mastery.State {
	return s.tracker.State()
}

// Progress returns the current mastery numbers.
func (s *Session) Progress() mastery.Progress {
	return mastery.Summarize(s.deck, s.cfg.MasteryBox)
}

// Summary returns the answers given so far in this session.
func (s *Session) Summary() Summary {
	return s.tally.summary(s.id, s.now())
}

// Close waits for the pending save. The session must not be used afterwards.
func (s *Session) Close() {
	s.saver.close()
	s.log.Debug("session closed", "answers", s.tally.total)
}

func (s *Session) nextTurn() *Turn {
	card := spacedrep.Select(s.deck, s.now())
	l := s.index.Lookup(card.ItemID)
	ids := s.gen.Choices(card.ItemID)
	labels := make([]string, len(ids))
	for i, id := range ids {
		labels[i] = s.index.Lookup(id).Prompt(s.cfg.Lowercase)
	}
	return &Turn{
		SessionID: s.id,
		Card:      card,
		Letter:    l,
		Prompt:    l.Prompt(s.cfg.Lowercase),
		Choices:   ids,
		Labels:    labels,
	}
}

func (s *Session) outcome(out Outcome) Outcome {
	p := s.Progress()
	out.Mastered = p.Mastered
	out.Total = p.Total
	out.Percent = p.Percent
	return out
}

func (s *Session) recordEvent(ctx context.Context, choice string, before, after spacedrep.Card, correct bool, now time.Time) {
	if s.events == nil {
		return
	}
	err := s.events.AppendAnswerEvent(ctx, store.AnswerEventData{
		SessionID: s.id,
		ItemID:    before.ItemID,
		Choice:    choice,
		Correct:   correct,
		BoxBefore: before.Box,
		BoxAfter:  after.Box,
		Timestamp: now,
	})
	if err != nil {
		s.log.Warn("record answer failed", "item", before.ItemID, "error", err)
	}
}

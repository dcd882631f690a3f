// Package cardstore loads and saves the practice deck through a key-value
// backend. Loading is fail-soft and saving is best-effort.
package cardstore

import (
	"context"

	"github.com/abhisek/letterz/internal/logger"
	"github.com/abhisek/letterz/internal/spacedrep"
)

// DefaultKey is the key the deck is saved under.
const DefaultKey = "letterz_srs_v1"

// KV is the durable key-value boundary the deck is persisted through.
type KV interface {
	// Get returns the value for key. The boolean is false when the key is
	// absent.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores value under key.
	Set(ctx context.Context, key string, value []byte) error
}

// Store owns loading and saving the deck. It never fails: unreadable data
// yields a fresh deck and write failures are logged and dropped.
type Store struct {
	kv      KV
	key     string
	itemIDs []string
	maxBox  int
	log     *logger.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithKey overrides DefaultKey.
func WithKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

// WithMaxBox sets the top box restored cards are clamped to. The default is
// the top box of spacedrep.DefaultIntervals.
func WithMaxBox(n int) Option {
	return func(s *Store) {
		s.maxBox = n
	}
}

// WithLogger sets the logger used for swallowed failures.
func WithLogger(l *logger.Logger) Option {
	return func(s *Store) {
		s.log = logger.OrNop(l)
	}
}

// New creates a Store for the given item universe.
func New(kv KV, itemIDs []string, opts ...Option) *Store {
	ids := make([]string, len(itemIDs))
	copy(ids, itemIDs)
	s := &Store{
		kv:      kv,
		key:     DefaultKey,
		itemIDs: ids,
		maxBox:  spacedrep.DefaultIntervals.MaxBox(),
		log:     logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With("component", "cardstore", "key", s.key)
	return s
}

// Fresh returns a brand-new deck covering the item universe.
func (s *Store) Fresh() spacedrep.Deck {
	return spacedrep.NewDeck(s.itemIDs)
}

// Load returns the persisted deck, or a fresh one when nothing usable is
// stored.
func (s *Store) Load(ctx context.Context) spacedrep.Deck {
	raw, ok, err := s.kv.Get(ctx, s.key)
	if err != nil {
		s.log.Warn("load deck failed, starting fresh", "error", err)
		return s.Fresh()
	}
	if !ok {
		s.log.Debug("no saved deck, starting fresh")
		return s.Fresh()
	}

	d, err := Decode(raw)
	if err != nil {
		s.log.Warn("saved deck is malformed, starting fresh", "error", err, "bytes", len(raw))
		return s.Fresh()
	}
	return spacedrep.Reconcile(d, s.itemIDs, s.maxBox)
}

// Save writes d. Failures are logged and otherwise ignored; the next save
// supersedes a failed one.
func (s *Store) Save(ctx context.Context, d spacedrep.Deck) {
	raw, err := Encode(d)
	if err != nil {
		s.log.Warn("encode deck failed", "error", err)
		return
	}
	if err := s.kv.Set(ctx, s.key, raw); err != nil {
		s.log.Warn("save deck failed", "error", err)
	}
}

// Reset replaces the persisted deck with a fresh one and returns it.
func (s *Store) Reset(ctx context.Context) spacedrep.Deck {
	d := s.Fresh()
	s.Save(ctx, d)
	return d
}

package session

import (
	"context"
	"sync"

	"github.com/abhisek/letterz/internal/spacedrep"
)

// saver writes decks from a single background goroutine. It holds at most
// one pending deck; a newer deck replaces an unwritten older one.
type saver struct {
	store   DeckStore
	mailbox chan spacedrep.Deck
	done    chan struct{}

	mu     sync.Mutex
	closed bool
}

func newSaver(store DeckStore) *saver {
	s := &saver{
		store:   store,
		mailbox: make(chan spacedrep.Deck, 1),
		done:    make(chan struct{}),
	}
	go s.run()
	return s
}

func (s *saver) run() {
	defer close(s.done)
	for d := range s.mailbox {
		s.store.Save(context.Background(), d)
	}
}

// enqueue hands d to the writer without blocking. It is a no-op after close.
func (s *saver) enqueue(d spacedrep.Deck) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	for {
		select {
		case s.mailbox <- d:
			return
		default:
		}
		// Drop the stale deck; the writer may have taken it already.
		select {
		case <-s.mailbox:
		default:
		}
	}
}

// close writes the pending deck, if any, and stops the writer.
func (s *saver) close() {
	s.mu.Lock()
	if !s.closed {
		s.closed = true
		close(s.mailbox)
	}
	s.mu.Unlock()
	<-s.done
}

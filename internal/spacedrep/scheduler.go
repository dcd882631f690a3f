package spacedrep

import (
	"sort"
	"time"
)

// Select returns the card to present next.
//
// Cards that are due compete on (box, due time, item id), so the least
// mastered card wins and, among equals, the one that became due first. When
// nothing is due yet, the card that will become due soonest is returned so
// the learner is never left without a question.
//
// Select panics on an empty deck; decks are built non-empty.
func Select(d Deck, now time.Time) Card {
	var (
		best  Card
		found bool
	)
	for _, c := range d.Cards {
		if !c.IsDue(now) {
			continue
		}
		if !found || dueLess(c, best) {
			best, found = c, true
		}
	}
	if found {
		return best
	}

	best = d.Cards[0]
	for _, c := range d.Cards[1:] {
		if soonestLess(c, best) {
			best = c
		}
	}
	return best
}

// Due returns the cards due at now, in the order Select would pick them.
func (d Deck) Due(now time.Time) []Card {
	var due []Card
	for _, c := range d.Cards {
		if c.IsDue(now) {
			due = append(due, c)
		}
	}
	sort.Slice(due, func(i, j int) bool {
		return dueLess(due[i], due[j])
	})
	return due
}

func dueLess(a, b Card) bool {
	if a.Box != b.Box {
		return a.Box < b.Box
	}
	if !a.NextDueAt.Equal(b.NextDueAt) {
		return a.NextDueAt.Before(b.NextDueAt)
	}
	return a.ItemID < b.ItemID
}

func soonestLess(a, b Card) bool {
	if !a.NextDueAt.Equal(b.NextDueAt) {
		return a.NextDueAt.Before(b.NextDueAt)
	}
	return a.ItemID < b.ItemID
}

package spacedrep

import "time"

// Epoch is the due time of a card that has never been answered.
var Epoch = time.UnixMilli(0).UTC()

// Card holds the learning state for a single item.
type Card struct {
	ItemID       string
	Box          int
	NextDueAt    time.Time
	SeenCount    int
	CorrectCount int
}

// NewCard returns an unpracticed card for itemID, due immediately.
func NewCard(itemID string) Card {
	return Card{ItemID: itemID, NextDueAt: Epoch}
}

// IsDue returns true if the card is at or past its due time.
func (c Card) IsDue(now time.Time) bool {
	return !c.NextDueAt.After(now)
}

// Accuracy returns CorrectCount/SeenCount, or 0 for an unseen card.
func (c Card) Accuracy() float64 {
	if c.SeenCount == 0 {
		return 0
	}
	return float64(c.CorrectCount) / float64(c.SeenCount)
}

// Until returns how long until the card becomes due. Returns 0 if already due.
func (c Card) Until(now time.Time) time.Duration {
	if c.IsDue(now) {
		return 0
	}
	return c.NextDueAt.Sub(now)
}

// ReviewStatus describes a card's review status for display.
type ReviewStatus string

const (
	ReviewNew      ReviewStatus = "new"
	ReviewDue      ReviewStatus = "due"
	ReviewWaiting  ReviewStatus = "waiting"
	ReviewMastered ReviewStatus = "mastered"
)

// Status returns the review status for UI display. masteryBox is the box at
// or above which a card counts as learned.
func (c Card) Status(now time.Time, masteryBox int) ReviewStatus {
	switch {
	case c.SeenCount == 0:
		return ReviewNew
	case c.Box >= masteryBox:
		return ReviewMastered
	case c.IsDue(now):
		return ReviewDue
	default:
		return ReviewWaiting
	}
}

package session

import (
	"sort"
	"time"
)

// ItemResult is the per-item tally for one session.
type ItemResult struct {
	ItemID   string
	Answered int
	Correct  int
}

// Summary holds the numbers shown when a session ends.
type Summary struct {
	SessionID    string
	Duration     time.Duration
	TotalAnswers int
	TotalCorrect int
	Accuracy     float64
	Items        []ItemResult
}

// tally accumulates answers for the summary.
type tally struct {
	started time.Time
	total   int
	correct int
	items   map[string]*ItemResult
}

func newTally(now time.Time) *tally {
	return &tally{started: now, items: make(map[string]*ItemResult)}
}

func (t *tally) record(itemID string, correct bool) {
	t.total++
	r := t.items[itemID]
	if r == nil {
		r = &ItemResult{ItemID: itemID}
		t.items[itemID] = r
	}
	r.Answered++
	if correct {
		t.correct++
		r.Correct++
	}
}

func (t *tally) summary(id string, now time.Time) Summary {
	items := make([]ItemResult, 0, len(t.items))
	for _, r := range t.items {
		items = append(items, *r)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].ItemID < items[j].ItemID
	})

	var accuracy float64
	if t.total > 0 {
		accuracy = float64(t.correct) / float64(t.total)
	}
	return Summary{
		SessionID:    id,
		Duration:     now.Sub(t.started),
		TotalAnswers: t.total,
		TotalCorrect: t.correct,
		Accuracy:     accuracy,
		Items:        items,
	}
}

package mastery

import "github.com/abhisek/letterz/internal/spacedrep"

// Tracker drives the Practicing -> AllMastered state machine. AllMastered is
// terminal until Reset.
type Tracker struct {
	masteryBox int
	state      State
}

// NewTracker creates a tracker whose initial state reflects d, so a deck
// restored after completion starts out AllMastered.
func NewTracker(d spacedrep.Deck, masteryBox int) *Tracker {
	t := &Tracker{masteryBox: masteryBox, state: StatePracticing}
	if AllMastered(d, masteryBox) {
		t.state = StateAllMastered
	}
	return t
}

// State returns the current state.
func (t *Tracker) State() State {
	return t.state
}

// MasteryBox returns the configured mastery threshold.
func (t *Tracker) MasteryBox() int {
	return t.masteryBox
}

// Observe re-evaluates d after an answer. It returns the transition when the
// deck has just become fully mastered, nil otherwise.
func (t *Tracker) Observe(d spacedrep.Deck) *Transition {
	if t.state == StateAllMastered {
		return nil
	}
	if !AllMastered(d, t.masteryBox) {
		return nil
	}
	t.state = StateAllMastered
	return &Transition{From: StatePracticing, To: StateAllMastered, Trigger: "answer"}
}

// Reset returns to Practicing. It is valid from any state.
func (t *Tracker) Reset() *Transition {
	from := t.state
	t.state = StatePracticing
	return &Transition{From: from, To: StatePracticing, Trigger: "reset"}
}

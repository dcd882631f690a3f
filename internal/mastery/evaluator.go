package mastery

import (
	"math"

	"github.com/abhisek/letterz/internal/spacedrep"
)

// DefaultMasteryBox is the top box of the default interval table.
var DefaultMasteryBox = spacedrep.DefaultIntervals.MaxBox()

// AllMastered reports whether every card in d has reached masteryBox.
func AllMastered(d spacedrep.Deck, masteryBox int) bool {
	if d.Len() == 0 {
		return false
	}
	for _, c := range d.Cards {
		if c.Box < masteryBox {
			return false
		}
	}
	return true
}

// MasteredCount returns the number of cards at or above masteryBox.
func MasteredCount(d spacedrep.Deck, masteryBox int) int {
	n := 0
	for _, c := range d.Cards {
		if c.Box >= masteryBox {
			n++
		}
	}
	return n
}

// MasteryFraction returns MasteredCount / |d|, or 0 for an empty deck.
func MasteryFraction(d spacedrep.Deck, masteryBox int) float64 {
	if d.Len() == 0 {
		return 0
	}
	return float64(MasteredCount(d, masteryBox)) / float64(d.Len())
}

// Percent returns MasteryFraction as a whole percentage, rounded to nearest.
func Percent(d spacedrep.Deck, masteryBox int) int {
	return int(math.Round(MasteryFraction(d, masteryBox) * 100))
}

// Progress is a read-only summary for display.
type Progress struct {
	Mastered int
	Total    int
	Fraction float64
	Percent  int
}

// Summarize computes all progress metrics for d in one pass of the API.
func Summarize(d spacedrep.Deck, masteryBox int) Progress {
	return Progress{
		Mastered: MasteredCount(d, masteryBox),
		Total:    d.Len(),
		Fraction: MasteryFraction(d, masteryBox),
		Percent:  Percent(d, masteryBox),
	}
}

package spacedrep

import "time"

// Apply records one answered turn on card and returns the updated card along
// with whether the answer was correct.
//
// A correct answer moves the card up one box, capped at the top box. A wrong
// answer sends it back to box 0 no matter how high it was. Either way the
// card next becomes due at now plus the delay of its new box. Due times are
// kept to the millisecond, the precision they are persisted with.
func Apply(card Card, choice, target string, now time.Time, intervals Intervals) (Card, bool) {
	correct := choice == target

	next := card
	next.SeenCount++
	if correct {
		next.CorrectCount++
		next.Box = min(intervals.MaxBox(), card.Box+1)
	} else {
		next.Box = 0
	}
	next.NextDueAt = now.Truncate(time.Millisecond).Add(intervals.Delay(next.Box))
	return next, correct
}

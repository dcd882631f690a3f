package spacedrep

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidIntervals is returned when an interval table cannot drive the
// box ladder.
var ErrInvalidIntervals = errors.New("spacedrep: invalid interval table")

// Intervals is the review delay for each box. Box 0 must have a zero delay
// so an unmastered card is always immediately due.
type Intervals []time.Duration

// DefaultIntervals is the four-box ladder used by the letters game:
// immediately, 15s, 45s, 2m.
var DefaultIntervals = Intervals{0, 15 * time.Second, 45 * time.Second, 120 * time.Second}

// Validate reports whether the table is usable.
func (iv Intervals) Validate() error {
	if len(iv) == 0 {
		return fmt.Errorf("%w: at least one box is required", ErrInvalidIntervals)
	}
	if iv[0] != 0 {
		return fmt.Errorf("%w: box 0 delay must be zero, got %s", ErrInvalidIntervals, iv[0])
	}
	for i, d := range iv {
		if d < 0 {
			return fmt.Errorf("%w: box %d delay is negative (%s)", ErrInvalidIntervals, i, d)
		}
	}
	return nil
}

// Boxes returns K, the number of boxes.
func (iv Intervals) Boxes() int {
	return len(iv)
}

// MaxBox returns K-1, the top box.
func (iv Intervals) MaxBox() int {
	if len(iv) == 0 {
		return 0
	}
	return len(iv) - 1
}

// Delay returns the delay for box, clamping out-of-range boxes to the table.
func (iv Intervals) Delay(box int) time.Duration {
	if len(iv) == 0 || box <= 0 {
		return 0
	}
	if box >= len(iv) {
		return iv[len(iv)-1]
	}
	return iv[box]
}

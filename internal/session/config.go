package session

import (
	"errors"
	"fmt"

	"github.com/abhisek/letterz/internal/choices"
	"github.com/abhisek/letterz/internal/mastery"
	"github.com/abhisek/letterz/internal/spacedrep"
)

// ErrInvalidConfig is returned when a Config cannot drive a session.
var ErrInvalidConfig = errors.New("session: invalid config")

// Config holds the tunables of a practice session.
type Config struct {
	// Intervals is the review delay per box. Its length is the box count.
	Intervals spacedrep.Intervals

	// MasteryBox is the box at or above which a card counts as mastered.
	MasteryBox int

	// ChoiceCount is the number of options on the board.
	ChoiceCount int

	// Lowercase shows prompts and choices in lower case.
	Lowercase bool
}

// DefaultConfig returns the standard game: four boxes, only the top box
// counts as mastered, four choices.
func DefaultConfig() Config {
	return Config{
		Intervals:   spacedrep.DefaultIntervals,
		MasteryBox:  mastery.DefaultMasteryBox,
		ChoiceCount: choices.DefaultCount,
	}
}

// Validate checks the config against a universe of universeSize items.
func (c Config) Validate(universeSize int) error {
	if err := c.Intervals.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.MasteryBox < 0 || c.MasteryBox > c.Intervals.MaxBox() {
		return fmt.Errorf("%w: mastery box %d outside [0, %d]", ErrInvalidConfig, c.MasteryBox, c.Intervals.MaxBox())
	}
	if c.ChoiceCount < 1 {
		return fmt.Errorf("%w: choice count %d", ErrInvalidConfig, c.ChoiceCount)
	}
	if universeSize < c.ChoiceCount {
		return fmt.Errorf("%w: %d items for %d choices", ErrInvalidConfig, universeSize, c.ChoiceCount)
	}
	return nil
}

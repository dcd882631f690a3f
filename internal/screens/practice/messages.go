package practice

import (
	"time"

	"github.com/abhisek/letterz/internal/session"
)

// Pause after feedback before the next board.
const (
	correctDelay   = 450 * time.Millisecond
	incorrectDelay = 350 * time.Millisecond
)

// feedbackDoneMsg ends the feedback pause. A nil Next means every letter is
// mastered.
type feedbackDoneMsg struct {
	Next *session.Turn
}

package mastery

// State is the session-level progress state.
type State string

const (
	StatePracticing  State = "practicing"
	StateAllMastered State = "all_mastered"
)

// Transition records a state change for display and event logging.
type Transition struct {
	From    State
	To      State
	Trigger string // "answer", "reset"
}

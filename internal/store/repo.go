package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
	ItemID string    // only events for this item ("" = all)
}

// AnswerEventData captures one answered turn.
type AnswerEventData struct {
	SessionID string
	ItemID    string
	Choice    string
	Correct   bool
	BoxBefore int
	BoxAfter  int
	Timestamp time.Time // zero = now
}

// AnswerEventRecord is a stored answer event.
type AnswerEventRecord struct {
	AnswerEventData
	Sequence int64
}

// ItemStat aggregates the answer log for one item.
type ItemStat struct {
	ItemID     string
	Attempts   int
	Correct    int
	LastAnswer time.Time
}

// Accuracy returns Correct/Attempts, or 0 without attempts.
func (s ItemStat) Accuracy() float64 {
	if s.Attempts == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Attempts)
}

// EventRepo provides append and query access to the answer log.
type EventRepo interface {
	// AppendAnswerEvent records a single answered turn.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// QueryAnswerEvents returns answer events, newest first.
	QueryAnswerEvents(ctx context.Context, opts QueryOpts) ([]AnswerEventRecord, error)

	// ItemStats aggregates attempts per item, ordered by item id.
	ItemStats(ctx context.Context) ([]ItemStat, error)
}

package store

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

const answerTable = "answer_events"

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	ts := data.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	query, args := entsql.Dialect(dialect.SQLite).
		Insert(answerTable).
		Columns("sequence", "timestamp", "session_id", "item_id", "choice", "correct", "box_before", "box_after").
		Values(seqNum, ts.UnixMilli(), data.SessionID, data.ItemID, data.Choice, data.Correct, data.BoxBefore, data.BoxAfter).
		Query()

	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryAnswerEvents(ctx context.Context, opts QueryOpts) ([]AnswerEventRecord, error) {
	sel := entsql.Dialect(dialect.SQLite).
		Select("sequence", "timestamp", "session_id", "item_id", "choice", "correct", "box_before", "box_after").
		From(entsql.Table(answerTable)).
		OrderBy(entsql.Desc("sequence"))

	if opts.Limit > 0 {
		sel = sel.Limit(opts.Limit)
	}
	if opts.After > 0 {
		sel = sel.Where(entsql.GT("sequence", opts.After))
	}
	if opts.Before > 0 {
		sel = sel.Where(entsql.LT("sequence", opts.Before))
	}
	if !opts.From.IsZero() {
		sel = sel.Where(entsql.GTE("timestamp", opts.From.UnixMilli()))
	}
	if !opts.To.IsZero() {
		sel = sel.Where(entsql.LTE("timestamp", opts.To.UnixMilli()))
	}
	if opts.ItemID != "" {
		sel = sel.Where(entsql.EQ("item_id", opts.ItemID))
	}

	query, args := sel.Query()
	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query answer events: %w", err)
	}
	defer rows.Close()

	var records []AnswerEventRecord
	for rows.Next() {
		var (
			rec AnswerEventRecord
			ts  int64
		)
		if err := rows.Scan(&rec.Sequence, &ts, &rec.SessionID, &rec.ItemID, &rec.Choice,
			&rec.Correct, &rec.BoxBefore, &rec.BoxAfter); err != nil {
			return nil, fmt.Errorf("scan answer event: %w", err)
		}
		rec.Timestamp = time.UnixMilli(ts)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query answer events: %w", err)
	}
	return records, nil
}

func (r *eventRepo) ItemStats(ctx context.Context) ([]ItemStat, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Select(
			"item_id",
			entsql.As(entsql.Count("*"), "attempts"),
			entsql.As(entsql.Sum("correct"), "hits"),
			entsql.As(entsql.Max("timestamp"), "last_answer"),
		).
		From(entsql.Table(answerTable)).
		GroupBy("item_id").
		OrderBy("item_id").
		Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query item stats: %w", err)
	}
	defer rows.Close()

	var stats []ItemStat
	for rows.Next() {
		var (
			st   ItemStat
			last int64
		)
		if err := rows.Scan(&st.ItemID, &st.Attempts, &st.Correct, &last); err != nil {
			return nil, fmt.Errorf("scan item stat: %w", err)
		}
		st.LastAnswer = time.UnixMilli(last)
		stats = append(stats, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query item stats: %w", err)
	}
	return stats, nil
}

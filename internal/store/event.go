package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"
)

// sequenceCounter manages the global monotonic sequence number shared by
// snapshots and activity events, so a snapshot can be placed relative to the
// operations that produced it.
//
// The mutex serializes within the process; the RETURNING clause makes the
// increment atomic at the database level. Next runs on whatever querier the
// caller is using so it joins an open transaction.
type sequenceCounter struct {
	mu sync.Mutex
}

// newSequenceCounter creates a counter and ensures the tracking table exists.
func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`)
	if err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}

	_, err = db.Exec(`INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`)
	if err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}

	return &sequenceCounter{}, nil
}

// Next atomically returns the next sequence number and increments the counter.
func (sc *sequenceCounter) Next(ctx context.Context, q querier) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	err := q.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}

// eventRepo implements EventRepo with raw SQL and the global sequence counter.
type eventRepo struct {
	q   querier
	seq *sequenceCounter
}

func (r *eventRepo) Append(ctx context.Context, ev *ActivityEvent) error {
	seqNum, err := r.seq.Next(ctx, r.q)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now()
	}

	_, err = r.q.ExecContext(ctx,
		`INSERT INTO activity_events (sequence, timestamp, action, message) VALUES (?, ?, ?, ?)`,
		seqNum, ev.Timestamp.UnixMilli(), ev.Action, ev.Message,
	)
	if err != nil {
		return fmt.Errorf("save activity event: %w", err)
	}
	ev.Sequence = seqNum
	return nil
}

func (r *eventRepo) Query(ctx context.Context, opts QueryOpts) ([]ActivityEvent, error) {
	var (
		where []string
		args  []any
	)
	if opts.After > 0 {
		where = append(where, "sequence > ?")
		args = append(args, opts.After)
	}
	if opts.Before > 0 {
		where = append(where, "sequence < ?")
		args = append(args, opts.Before)
	}
	if !opts.From.IsZero() {
		where = append(where, "timestamp >= ?")
		args = append(args, opts.From.UnixMilli())
	}
	if !opts.To.IsZero() {
		where = append(where, "timestamp <= ?")
		args = append(args, opts.To.UnixMilli())
	}
	if opts.Action != "" {
		where = append(where, "action = ?")
		args = append(args, opts.Action)
	}

	query := `SELECT sequence, timestamp, action, message FROM activity_events`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY sequence DESC"
	if opts.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, opts.Limit)
	}

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query activity events: %w", err)
	}
	defer rows.Close()

	var events []ActivityEvent
	for rows.Next() {
		var (
			ev ActivityEvent
			ms int64
		)
		if err := rows.Scan(&ev.Sequence, &ms, &ev.Action, &ev.Message); err != nil {
			return nil, fmt.Errorf("scan activity event: %w", err)
		}
		ev.Timestamp = time.UnixMilli(ms).UTC()
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query activity events: %w", err)
	}
	return events, nil
}

func (r *eventRepo) Counts(ctx context.Context) (map[string]int, int, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT action, COUNT(*) FROM activity_events GROUP BY action`)
	if err != nil {
		return nil, 0, fmt.Errorf("query activity counts: %w", err)
	}
	defer rows.Close()

	byAction := make(map[string]int)
	total := 0
	for rows.Next() {
		var (
			action string
			n      int
		)
		if err := rows.Scan(&action, &n); err != nil {
			return nil, 0, fmt.Errorf("scan activity count: %w", err)
		}
		byAction[action] = n
		total += n
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("query activity counts: %w", err)
	}
	return byAction, total, nil
}

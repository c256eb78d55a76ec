package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// snapshotRepo implements SnapshotRepo with raw SQL.
type snapshotRepo struct {
	q   querier
	seq *sequenceCounter
}

func (r *snapshotRepo) Save(ctx context.Context, snap *Snapshot) error {
	seqNum, err := r.seq.Next(ctx, r.q)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}
	if snap.Timestamp.IsZero() {
		snap.Timestamp = time.Now()
	}

	res, err := r.q.ExecContext(ctx,
		`INSERT INTO state_snapshots (sequence, version, timestamp, data) VALUES (?, ?, ?, ?)`,
		seqNum, snap.Version, snap.Timestamp.UnixMilli(), string(snap.Data),
	)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	if id, err := res.LastInsertId(); err == nil {
		snap.ID = int(id)
	}
	snap.Sequence = seqNum
	return nil
}

func (r *snapshotRepo) Latest(ctx context.Context) (*Snapshot, error) {
	var (
		s    Snapshot
		ms   int64
		data string
	)
	err := r.q.QueryRowContext(ctx,
		`SELECT id, sequence, version, timestamp, data FROM state_snapshots
		 ORDER BY sequence DESC LIMIT 1`,
	).Scan(&s.ID, &s.Sequence, &s.Version, &ms, &data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest snapshot: %w", err)
	}
	s.Timestamp = time.UnixMilli(ms).UTC()
	s.Data = []byte(data)
	return &s, nil
}

func (r *snapshotRepo) Prune(ctx context.Context, keep int) error {
	if keep < 1 {
		return fmt.Errorf("prune snapshots: keep must be at least 1, got %d", keep)
	}
	// The threshold is the sequence of the (keep+1)th most recent snapshot;
	// with fewer rows the subquery is NULL and nothing matches.
	_, err := r.q.ExecContext(ctx,
		`DELETE FROM state_snapshots WHERE sequence <= (
			SELECT sequence FROM state_snapshots ORDER BY sequence DESC LIMIT 1 OFFSET ?
		)`, keep)
	if err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}

func (r *snapshotRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRowContext(ctx, `SELECT COUNT(*) FROM state_snapshots`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count snapshots: %w", err)
	}
	return n, nil
}

package store

import (
	"context"
	"encoding/json"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
	Action string    // exact action match ("" = any)
}

// Snapshot is one saved copy of the progress document.
type Snapshot struct {
	ID        int
	Sequence  int64
	Version   int
	Timestamp time.Time
	Data      json.RawMessage // encoded state.State
}

// SnapshotRepo manages progress document snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot and assigns its sequence number.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error

	// Count returns the number of stored snapshots.
	Count(ctx context.Context) (int, error)
}

// ActivityEvent records one successful operation on the progress document.
type ActivityEvent struct {
	Sequence  int64
	Timestamp time.Time
	Action    string // e.g. "log_ruck", "track_start"
	Message   string // user-facing confirmation returned by the operation
}

// EventRepo provides append and query access to the activity journal.
type EventRepo interface {
	// Append records an event and assigns its sequence number.
	Append(ctx context.Context, ev *ActivityEvent) error

	// Query returns events newest first.
	Query(ctx context.Context, opts QueryOpts) ([]ActivityEvent, error)

	// Counts returns the number of events per action and the total.
	Counts(ctx context.Context) (map[string]int, int, error)
}

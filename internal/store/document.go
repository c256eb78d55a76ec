package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/abhisek/olympus/internal/state"
)

// Activity actions recorded by the store itself.
const (
	ActionInit   = "init"
	ActionImport = "import"
	ActionReset  = "reset"
)

// Load returns the latest progress document. On first use it saves and
// returns a fresh default document.
func (s *Store) Load(ctx context.Context) (*state.State, error) {
	var st *state.State
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		var err error
		st, err = s.loadOrInit(ctx, tx)
		return err
	})
	return st, err
}

// Save appends st as the newest snapshot.
func (s *Store) Save(ctx context.Context, st *state.State) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		return s.saveTx(ctx, tx, st)
	})
}

// Update loads the document, applies fn and saves the result together with
// an activity event carrying fn's message, all in one transaction. When fn
// fails nothing is written and its error is returned unchanged.
func (s *Store) Update(ctx context.Context, action string, fn func(*state.State) (string, error)) (string, error) {
	var msg string
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		st, err := s.loadOrInit(ctx, tx)
		if err != nil {
			return err
		}
		msg, err = fn(st)
		if err != nil {
			return err
		}
		if err := s.saveTx(ctx, tx, st); err != nil {
			return err
		}
		return s.appendEvent(ctx, tx, action, msg)
	})
	if err != nil {
		return "", err
	}
	return msg, nil
}

// Import validates and migrates a raw document, then saves it as the newest
// snapshot. Older snapshots are kept.
func (s *Store) Import(ctx context.Context, raw []byte) (*state.State, error) {
	st, err := state.Decode(raw, state.DateOf(s.clock.Now()))
	if err != nil {
		return nil, fmt.Errorf("import document: %w", err)
	}
	err = s.inTx(ctx, func(tx *sql.Tx) error {
		if err := s.saveTx(ctx, tx, st); err != nil {
			return err
		}
		return s.appendEvent(ctx, tx, ActionImport,
			fmt.Sprintf("imported %d workouts, %d rucks, %d badges",
				len(st.Workouts), len(st.Rucks), len(st.Badges)))
	})
	if err != nil {
		return nil, err
	}
	return st, nil
}

// Reset saves a fresh default document as the newest snapshot.
func (s *Store) Reset(ctx context.Context) (*state.State, error) {
	st := state.Default(state.DateOf(s.clock.Now()))
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		if err := s.saveTx(ctx, tx, st); err != nil {
			return err
		}
		return s.appendEvent(ctx, tx, ActionReset, "progress reset")
	})
	if err != nil {
		return nil, err
	}
	return st, nil
}

// Prune deletes all but the keep most recent snapshots.
func (s *Store) Prune(ctx context.Context, keep int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.SnapshotRepo().Prune(ctx, keep)
}

func (s *Store) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func (s *Store) loadOrInit(ctx context.Context, tx *sql.Tx) (*state.State, error) {
	repo := &snapshotRepo{q: tx, seq: s.seq}
	snap, err := repo.Latest(ctx)
	if err != nil {
		return nil, err
	}
	today := state.DateOf(s.clock.Now())

	if snap == nil {
		st := state.Default(today)
		if err := s.saveTx(ctx, tx, st); err != nil {
			return nil, err
		}
		if err := s.appendEvent(ctx, tx, ActionInit, "new progress document"); err != nil {
			return nil, err
		}
		s.log.Info("created new progress document")
		return st, nil
	}

	st, err := state.Decode(snap.Data, today)
	if err != nil {
		return nil, fmt.Errorf("decode snapshot %d: %w", snap.Sequence, err)
	}
	return st, nil
}

func (s *Store) saveTx(ctx context.Context, tx *sql.Tx, st *state.State) error {
	data, err := state.Encode(st)
	if err != nil {
		return err
	}
	snap := &Snapshot{
		Version:   st.Version,
		Timestamp: s.clock.Now(),
		Data:      data,
	}
	repo := &snapshotRepo{q: tx, seq: s.seq}
	if err := repo.Save(ctx, snap); err != nil {
		return err
	}
	s.log.WithFields(logrus.Fields{
		"sequence": snap.Sequence,
		"bytes":    len(data),
	}).Debug("snapshot saved")
	return nil
}

func (s *Store) appendEvent(ctx context.Context, tx *sql.Tx, action, msg string) error {
	repo := &eventRepo{q: tx, seq: s.seq}
	return repo.Append(ctx, &ActivityEvent{
		Timestamp: s.clock.Now(),
		Action:    action,
		Message:   msg,
	})
}

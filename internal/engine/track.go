package engine

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/abhisek/olympus/internal/state"
)

// StartTrack selects a catalog track and begins a fresh cycle on it.
func (e *Engine) StartTrack(st *state.State, trackID string) (string, error) {
	track, ok := e.catalog.Lookup(trackID)
	if !ok {
		return "", &NotFoundError{Kind: "track", ID: trackID}
	}
	st.Track = track.ID
	e.resetCycle(st)
	return fmt.Sprintf("🔥 Began %s", track.Name), nil
}

// StopTrack abandons the current cycle without changing the selected track.
func (e *Engine) StopTrack(st *state.State) (string, error) {
	e.resetCycle(st)
	return "⏹ Cycle stopped; progress reset.", nil
}

// resetCycle discards in-progress counters; there is no partial credit.
func (e *Engine) resetCycle(st *state.State) {
	prev := st.Cycle
	st.Cycle = state.Cycle{
		ID:        prev.ID + 1,
		StartDate: e.today(),
	}
	e.log.WithFields(logrus.Fields{
		"track":              st.Track,
		"cycle_id":           st.Cycle.ID,
		"discarded_sessions": prev.SessionsCompleted,
	}).Info("cycle started")
}

package engine

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/abhisek/olympus/internal/catalog"
	"github.com/abhisek/olympus/internal/state"
)

// TodayWorkout returns the next recommended session of the active cycle.
func (e *Engine) TodayWorkout(st *state.State) (catalog.Session, error) {
	track, err := e.activeTrack(st)
	if err != nil {
		return catalog.Session{}, err
	}
	idx := st.Cycle.SessionsCompleted
	if idx >= track.SessionCount() {
		return catalog.Session{}, &NotFoundError{
			Kind: "session",
			ID:   fmt.Sprintf("%s #%d", track.ID, idx+1),
		}
	}
	return track.Sessions[idx], nil
}

// LogRecommendedSession records the next prescribed session of the active
// cycle. It fails with NotFoundError when no track is selected or the cycle
// already has all its sessions; starting a new cycle is up to the caller.
func (e *Engine) LogRecommendedSession(st *state.State) (string, error) {
	session, err := e.TodayWorkout(st)
	if err != nil {
		return "", err
	}

	today := e.today()
	st.Workouts = append(st.Workouts, state.Workout{
		Date:    today,
		Kind:    state.WorkoutRecommended,
		Details: session.Main,
	})
	st.Cycle.SessionsCompleted++

	e.updateStreak(st, today)
	e.maybeCompleteCycle(st, today)

	return fmt.Sprintf("✔ Logged: %s", session.Main), nil
}

// LogCustomSession records a free-form workout. The cycle counter only
// advances while a track is selected and the cycle is not yet full.
func (e *Engine) LogCustomSession(st *state.State, description string) (string, error) {
	desc := strings.TrimSpace(description)
	if desc == "" {
		return "", &ValidationError{Field: "description", Reason: "must not be empty"}
	}

	today := e.today()
	st.Workouts = append(st.Workouts, state.Workout{
		Date:    today,
		Kind:    state.WorkoutCustom,
		Details: desc,
	})
	if track, err := e.activeTrack(st); err == nil && st.Cycle.SessionsCompleted < track.SessionCount() {
		st.Cycle.SessionsCompleted++
	}

	e.updateStreak(st, today)
	e.maybeCompleteCycle(st, today)

	return "✔ Custom workout logged.", nil
}

func (e *Engine) activeTrack(st *state.State) (catalog.Track, error) {
	if !st.HasTrack() {
		return catalog.Track{}, &NotFoundError{Kind: "active track"}
	}
	track, ok := e.catalog.Lookup(st.Track)
	if !ok {
		return catalog.Track{}, &NotFoundError{Kind: "track", ID: st.Track}
	}
	return track, nil
}

// maybeCompleteCycle awards the cycle trophy once all sessions are logged
// and the minimum cycle duration has elapsed.
func (e *Engine) maybeCompleteCycle(st *state.State, today state.Date) {
	c := &st.Cycle
	if c.BadgeGiven {
		return
	}
	track, err := e.activeTrack(st)
	if err != nil {
		return
	}
	if c.SessionsCompleted < track.SessionCount() {
		return
	}
	if today.DaysSince(c.StartDate) < catalog.CycleLengthDays-1 {
		return
	}

	e.award(st, e.factory.Award(st, state.BadgeMonster, today))
	c.BadgeGiven = true

	e.log.WithFields(logrus.Fields{
		"cycle_id": c.ID,
		"track":    track.ID,
	}).Info("cycle completed")
}

// updateStreak counts today as an active day once, awarding a laurel on
// every multiple of LaurelEvery.
func (e *Engine) updateStreak(st *state.State, today state.Date) {
	s := &st.Streak
	if s.LastActiveDate != nil && *s.LastActiveDate == today {
		return
	}
	s.ActiveDays++
	d := today
	s.LastActiveDate = &d

	if s.ActiveDays > 0 && s.ActiveDays%LaurelEvery == 0 {
		e.award(st, e.factory.Award(st, state.BadgeLaurel, today))
	}
}

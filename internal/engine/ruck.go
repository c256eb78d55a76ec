package engine

import (
	"fmt"
	"math"

	"github.com/abhisek/olympus/internal/state"
)

// Limits on a single ruck and on the running totals. MaxTotalRuckMiles keeps
// the loop index well inside int range.
const (
	MaxRuckMiles      = 200.0
	MaxPackPounds     = 300.0
	MaxTotalRuckMiles = state.MaxTotalRuckMiles
)

// LogRuck records a weighted walk, pays out drachma and awards every route
// waypoint reached by the new cumulative mileage.
func (e *Engine) LogRuck(st *state.State, miles, lbs float64) (string, error) {
	if err := validateAmount("miles", miles, MaxRuckMiles); err != nil {
		return "", err
	}
	if err := validateAmount("pounds", lbs, MaxPackPounds); err != nil {
		return "", err
	}

	coins := state.Coins(miles, lbs)
	treasury := state.Round2(st.Treasury + coins)
	prev := st.TotalRuckMiles
	next := prev + miles
	if !isFinite(treasury) {
		return "", &ValidationError{Field: "treasury", Reason: "would no longer be a finite number"}
	}
	if !isFinite(next) || next > MaxTotalRuckMiles {
		return "", &ValidationError{Field: "total miles",
			Reason: fmt.Sprintf("would exceed %.0f", MaxTotalRuckMiles)}
	}

	today := e.today()
	st.Rucks = append(st.Rucks, state.Ruck{
		Date:  today,
		Miles: miles,
		Lbs:   lbs,
		Coins: coins,
	})
	st.Treasury = treasury
	st.TotalRuckMiles = next

	e.awardWaypoints(st, prev, next, today)

	return fmt.Sprintf("🪖 Ruck logged: +%.2f drachma.", coins), nil
}

// awardWaypoints awards each (loop, waypoint) whose absolute mark lies in
// [prev, next] and has not been awarded before, in route order. The lower
// bound is inclusive so the start marker counts on the very first ruck.
func (e *Engine) awardWaypoints(st *state.State, prev, next float64, today state.Date) {
	earned := state.EarnedWaypoints(st.Badges)
	length := e.route.Length()
	waypoints := e.route.Waypoints()

	for loop := e.route.Loop(prev); loop <= e.route.Loop(next); loop++ {
		base := float64(loop) * length
		for _, wp := range waypoints {
			mark := base + wp.Offset
			if mark < prev || mark > next {
				continue
			}
			key := state.WaypointKey{Loop: loop, Name: wp.Name}
			if earned[key] {
				continue
			}
			earned[key] = true
			e.award(st, e.factory.Waypoint(wp, loop, today))
		}
	}
}

func validateAmount(field string, v, limit float64) error {
	switch {
	case !isFinite(v):
		return &ValidationError{Field: field, Reason: "must be a finite number"}
	case v < 0:
		return &ValidationError{Field: field, Reason: "must not be negative"}
	case v > limit:
		return &ValidationError{Field: field, Reason: fmt.Sprintf("must not exceed %g", limit)}
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

package engine

import (
	"github.com/abhisek/olympus/internal/catalog"
	"github.com/abhisek/olympus/internal/route"
	"github.com/abhisek/olympus/internal/state"
)

// Status is a read-only summary of the document for display.
type Status struct {
	Track    *catalog.Track // nil when no track is selected
	CycleID  int
	Sessions int // completed in the current cycle
	Needed   int // 0 when no track is selected
	Started  state.Date

	DaysElapsed   int
	DaysUntilGate int // days before the cycle trophy can unlock
	BadgeGiven    bool

	ActiveDays   int
	NextLaurelAt int

	TotalRuckMiles float64
	RouteName      string
	RouteLength    float64
	Loop           int
	NextWaypoint   route.Waypoint
	MilesToNext    float64
	Treasury       float64

	BadgeCounts map[state.BadgeKind]int
}

// CycleStatus summarizes st without modifying it.
func (e *Engine) CycleStatus(st *state.State) Status {
	today := e.today()
	s := Status{
		CycleID:        st.Cycle.ID,
		Sessions:       st.Cycle.SessionsCompleted,
		Started:        st.Cycle.StartDate,
		BadgeGiven:     st.Cycle.BadgeGiven,
		ActiveDays:     st.Streak.ActiveDays,
		NextLaurelAt:   (st.Streak.ActiveDays/LaurelEvery + 1) * LaurelEvery,
		TotalRuckMiles: st.TotalRuckMiles,
		RouteName:      e.route.Name(),
		RouteLength:    e.route.Length(),
		Loop:           e.route.Loop(st.TotalRuckMiles),
		Treasury:       st.Treasury,
		BadgeCounts:    make(map[state.BadgeKind]int),
	}

	if track, err := e.activeTrack(st); err == nil {
		s.Track = &track
		s.Needed = track.SessionCount()
	}

	s.DaysElapsed = today.DaysSince(st.Cycle.StartDate)
	if gate := catalog.CycleLengthDays - 1 - s.DaysElapsed; gate > 0 {
		s.DaysUntilGate = gate
	}

	s.NextWaypoint, _, s.MilesToNext = e.route.Next(st.TotalRuckMiles)

	for _, b := range st.Badges {
		s.BadgeCounts[b.Kind]++
	}
	return s
}

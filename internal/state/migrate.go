package state

import (
	"encoding/json"
	"fmt"
)

// rawDocument is the union of every document layout ever written.
type rawDocument struct {
	Version        int        `json:"version"`
	Track          *string    `json:"track"`
	Cycle          *rawCycle  `json:"cycle"`
	Microcycle     *rawCycle  `json:"microcycle"`
	Workouts       []Workout  `json:"workouts"`
	Rucks          []rawRuck  `json:"ruck_log"`
	Badges         []rawBadge `json:"badges"`
	Streak         *Streak    `json:"streak"`
	TotalRuckMiles *float64   `json:"total_ruck_miles"`
	Treasury       *float64   `json:"treasury"`
}

type rawCycle struct {
	ID                int   `json:"id"`
	SessionsCompleted int   `json:"sessions_completed"`
	StartDate         *Date `json:"start_date"`
	BadgeGiven        *bool `json:"badge_given"`
}

type rawRuck struct {
	Date  Date     `json:"date"`
	Miles float64  `json:"distance_miles"`
	Lbs   float64  `json:"weight_lbs"`
	Coins *float64 `json:"coins"`
}

type rawBadge struct {
	Badge
	LegacyDate Date `json:"date"`
}

// legacyWaypointKind is the badge type older releases used for waypoints.
const legacyWaypointKind = "ruck_quest"

// Migrate upgrades a stored document of any known layout to the current
// schema. It is pure: today is only used to backfill a missing cycle start.
func Migrate(raw []byte, today Date) (*State, error) {
	var doc rawDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode state document: %w", err)
	}
	if doc.Version > SchemaVersion {
		return nil, fmt.Errorf("state document version %d is newer than supported version %d",
			doc.Version, SchemaVersion)
	}

	st := Default(today)
	if doc.Track != nil {
		st.Track = CanonicalTrackID(*doc.Track)
	}

	rc := doc.Cycle
	if rc == nil {
		rc = doc.Microcycle
	}
	if rc != nil {
		st.Cycle.ID = rc.ID
		st.Cycle.SessionsCompleted = rc.SessionsCompleted
		if rc.StartDate != nil && !rc.StartDate.IsZero() {
			st.Cycle.StartDate = *rc.StartDate
		}
		if rc.BadgeGiven != nil {
			st.Cycle.BadgeGiven = *rc.BadgeGiven
		}
	}

	if doc.Workouts != nil {
		st.Workouts = doc.Workouts
	}

	var miles, coins float64
	for _, r := range doc.Rucks {
		entry := Ruck{Date: r.Date, Miles: r.Miles, Lbs: r.Lbs}
		if r.Coins != nil {
			entry.Coins = *r.Coins
		} else {
			entry.Coins = Coins(r.Miles, r.Lbs)
		}
		miles += entry.Miles
		coins += entry.Coins
		st.Rucks = append(st.Rucks, entry)
	}

	for _, rb := range doc.Badges {
		b := rb.Badge
		if b.Kind == legacyWaypointKind {
			b.Kind = BadgeWaypoint
		}
		if b.EarnedOn.IsZero() {
			b.EarnedOn = rb.LegacyDate
		}
		st.Badges = append(st.Badges, b)
	}

	if doc.Streak != nil {
		st.Streak = *doc.Streak
		if st.Streak.LastActiveDate != nil && st.Streak.LastActiveDate.IsZero() {
			st.Streak.LastActiveDate = nil
		}
	}

	if doc.TotalRuckMiles != nil {
		st.TotalRuckMiles = *doc.TotalRuckMiles
	} else {
		st.TotalRuckMiles = miles
	}
	if doc.Treasury != nil {
		st.Treasury = *doc.Treasury
	} else {
		st.Treasury = Round2(coins)
	}

	st.Version = SchemaVersion
	return st, nil
}

// Decode validates a raw document against the schema and migrates it.
func Decode(raw []byte, today Date) (*State, error) {
	if err := Validate(raw); err != nil {
		return nil, err
	}
	return Migrate(raw, today)
}

// Encode serializes the document in the current layout.
func Encode(st *State) ([]byte, error) {
	st.Version = SchemaVersion
	b, err := json.Marshal(st)
	if err != nil {
		return nil, fmt.Errorf("encode state document: %w", err)
	}
	return b, nil
}

// Package state defines the progress document persisted between operations:
// training cycle, histories, streak, ruck totals and the badge collection.
package state

import "math"

// SchemaVersion is the version written into every saved document.
const SchemaVersion = 2

// WorkoutKind tags a workout history entry.
type WorkoutKind string

const (
	WorkoutRecommended WorkoutKind = "recommended"
	WorkoutCustom      WorkoutKind = "custom"
)

// BadgeKind identifies the category of a badge record.
type BadgeKind string

const (
	BadgeMonster  BadgeKind = "monster"
	BadgeLaurel   BadgeKind = "laurel"
	BadgeWaypoint BadgeKind = "waypoint"
)

// State is the single progress document. It is mutated in place by exactly
// one engine operation between a load and a save.
type State struct {
	Version        int       `json:"version"`
	Track          string    `json:"track"`
	Cycle          Cycle     `json:"cycle"`
	Workouts       []Workout `json:"workouts"`
	Rucks          []Ruck    `json:"ruck_log"`
	Badges         []Badge   `json:"badges"`
	Streak         Streak    `json:"streak"`
	TotalRuckMiles float64   `json:"total_ruck_miles"`
	Treasury       float64   `json:"treasury"`
}

// Cycle is the active block of prescribed sessions.
type Cycle struct {
	ID                int  `json:"id"`
	SessionsCompleted int  `json:"sessions_completed"`
	StartDate         Date `json:"start_date"`
	BadgeGiven        bool `json:"badge_given"`
}

// Workout is one entry of the workout history.
type Workout struct {
	Date    Date        `json:"date"`
	Kind    WorkoutKind `json:"type"`
	Details string      `json:"details"`
}

// Ruck is one entry of the ruck history.
type Ruck struct {
	Date  Date    `json:"date"`
	Miles float64 `json:"distance_miles"`
	Lbs   float64 `json:"weight_lbs"`
	Coins float64 `json:"coins"`
}

// Streak counts distinct calendar days with at least one logged workout.
type Streak struct {
	ActiveDays     int   `json:"active_days"`
	LastActiveDate *Date `json:"last_date"`
}

// Badge is an immutable award record.
type Badge struct {
	ID        string    `json:"id,omitempty"`
	Name      string    `json:"name"`
	EarnedOn  Date      `json:"earned_on"`
	Kind      BadgeKind `json:"type"`
	ImagePath string    `json:"image_path,omitempty"`
	Caption   string    `json:"caption,omitempty"`
	Tier      int       `json:"tier,omitempty"`
	Gilded    bool      `json:"gilded,omitempty"`

	// Waypoint badges only. Loop is nil on legacy records.
	Loop *int   `json:"loop,omitempty"`
	Stop string `json:"stop,omitempty"`
}

// Default returns a fresh document with a cycle starting today.
func Default(today Date) *State {
	return &State{
		Version: SchemaVersion,
		Cycle: Cycle{
			StartDate: today,
		},
		Workouts: []Workout{},
		Rucks:    []Ruck{},
		Badges:   []Badge{},
	}
}

// HasTrack reports whether a training track is selected.
func (s *State) HasTrack() bool {
	return s.Track != ""
}

// AddBadge appends a badge record; the badge list is append-only.
func (s *State) AddBadge(b Badge) {
	s.Badges = append(s.Badges, b)
}

// BadgesOfKind returns the badges of one kind in award order.
func (s *State) BadgesOfKind(kind BadgeKind) []Badge {
	var out []Badge
	for _, b := range s.Badges {
		if b.Kind == kind {
			out = append(out, b)
		}
	}
	return out
}

// Coins returns the drachma earned for a ruck: one per mile, scaled by
// 1% per pound carried, rounded to cents.
func Coins(miles, lbs float64) float64 {
	return Round2(miles * (1 + 0.01*lbs))
}

// Round2 rounds to 2 decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

package state

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// legacyDocument is the unversioned layout written by earlier releases.
const legacyDocument = `{
  "track": "Hermes' Power Forge",
  "microcycle": {"id": 2, "sessions_completed": 3},
  "workouts": [
    {"date": "2025-06-01", "type": "recommended", "details": "Double-KB Front Squat 5×5 @ RPE 7"},
    {"date": "2025-06-02", "type": "custom", "details": "Hill sprints"}
  ],
  "ruck_log": [
    {"date": "2025-06-01", "distance_miles": 10, "weight_lbs": 20},
    {"date": "2025-06-03", "distance_miles": 4, "weight_lbs": 0, "coins": 4.0}
  ],
  "badges": [
    {"date": "2025-06-01", "name": "📜 Acropolis Way-Point", "type": "ruck_quest", "image_path": "Pheidippides/Acropolis.png"},
    {"earned_on": "2025-06-03", "name": "📜 Eleusis Way-Point", "type": "ruck_quest", "loop": 0, "stop": "Eleusis"},
    {"earned_on": "2025-06-04", "name": "Medusa Trophy 1", "type": "monster", "image_path": null}
  ],
  "templates": {"hermes_power_forge": "Hermes' Power Forge"}
}`

func TestMigrate_LegacyDocument(t *testing.T) {
	today := Date{Year: 2026, Month: time.October, Day: 19}
	st, err := Decode([]byte(legacyDocument), today)
	require.NoError(t, err)

	assert.Equal(t, SchemaVersion, st.Version)
	assert.Equal(t, "hermes-power-forge", st.Track)
	assert.Equal(t, Cycle{ID: 2, SessionsCompleted: 3, StartDate: today, BadgeGiven: false}, st.Cycle)
	assert.Len(t, st.Workouts, 2)

	require.Len(t, st.Rucks, 2)
	assert.Equal(t, 12.0, st.Rucks[0].Coins, "coins backfilled from the formula")
	assert.Equal(t, 4.0, st.Rucks[1].Coins)
	assert.Equal(t, 14.0, st.TotalRuckMiles)
	assert.Equal(t, 16.0, st.Treasury)

	require.Len(t, st.Badges, 3)
	assert.Equal(t, BadgeWaypoint, st.Badges[0].Kind)
	assert.Equal(t, Date{Year: 2025, Month: time.June, Day: 1}, st.Badges[0].EarnedOn)
	assert.Nil(t, st.Badges[0].Loop)
	assert.Equal(t, BadgeWaypoint, st.Badges[1].Kind)
	require.NotNil(t, st.Badges[1].Loop)
	assert.Equal(t, 0, *st.Badges[1].Loop)
	assert.Equal(t, BadgeMonster, st.Badges[2].Kind)
	assert.Empty(t, st.Badges[2].ImagePath)

	assert.Equal(t, Streak{}, st.Streak)

	earned := EarnedWaypoints(st.Badges)
	assert.True(t, earned[WaypointKey{0, "Acropolis"}])
	assert.True(t, earned[WaypointKey{0, "Eleusis"}])
}

func TestCanonicalTrackID(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Hermes' Power Forge", "hermes-power-forge"},
		{"Hermes\u2019 Power Forge", "hermes-power-forge"},
		{"Hermes' Power Forge (2-week / 6 sessions)", "hermes-power-forge"},
		{"hermes_power_forge", "hermes-power-forge"},
		{"hermes-power-forge", "hermes-power-forge"},
		{"Artemis Rites", "artemis-rites"},
		{"artemis_rites", "artemis-rites"},
		{"artemis-rites", "artemis-rites"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, CanonicalTrackID(tt.in))
		})
	}
}

func TestMigrate_LegacyTrackKeys(t *testing.T) {
	for _, track := range []string{"Artemis Rites", "artemis_rites"} {
		st, err := Migrate([]byte(`{"track": "`+track+`"}`), day0)
		require.NoError(t, err)
		assert.Equal(t, "artemis-rites", st.Track, track)
	}
}

func TestMigrate_KeepsExplicitTotals(t *testing.T) {
	raw := `{"cycle": {"id": 0, "sessions_completed": 0, "start_date": "2026-01-05", "badge_given": true},
	         "ruck_log": [{"date": "2026-01-05", "distance_miles": 3, "weight_lbs": 0, "coins": 3}],
	         "total_ruck_miles": 3, "treasury": 3,
	         "streak": {"active_days": 4, "last_date": "2026-01-05"}}`
	st, err := Decode([]byte(raw), day0)
	require.NoError(t, err)

	assert.Equal(t, Date{Year: 2026, Month: time.January, Day: 5}, st.Cycle.StartDate)
	assert.True(t, st.Cycle.BadgeGiven)
	assert.Equal(t, 3.0, st.TotalRuckMiles)
	assert.Equal(t, 3.0, st.Treasury)
	assert.Equal(t, 4, st.Streak.ActiveDays)
	require.NotNil(t, st.Streak.LastActiveDate)
	assert.Equal(t, "2026-01-05", st.Streak.LastActiveDate.String())
}

func TestMigrate_RejectsNewerVersion(t *testing.T) {
	_, err := Migrate([]byte(`{"version": 99, "cycle": {"id": 0, "sessions_completed": 0}}`), day0)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"legacy", legacyDocument, false},
		{"minimal", `{"cycle": {"id": 0, "sessions_completed": 0}}`, false},
		{"not json", `{`, true},
		{"not an object", `[]`, true},
		{"no cycle", `{"track": "x"}`, true},
		{"negative miles", `{"cycle": {"id": 0, "sessions_completed": 0},
			"ruck_log": [{"distance_miles": -1, "weight_lbs": 0}]}`, true},
		{"total beyond range", `{"cycle": {"id": 0, "sessions_completed": 0}, "total_ruck_miles": 1e300}`, true},
		{"bad date", `{"cycle": {"id": 0, "sessions_completed": 0, "start_date": "March 2"}}`, true},
		{"badge without name", `{"cycle": {"id": 0, "sessions_completed": 0},
			"badges": [{"type": "laurel"}]}`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate([]byte(tt.raw))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	last := day0.AddDays(3)
	st := Default(day0)
	st.Track = "artemis-rites"
	st.Cycle = Cycle{ID: 4, SessionsCompleted: 2, StartDate: day0, BadgeGiven: false}
	st.Workouts = append(st.Workouts, Workout{Date: day0, Kind: WorkoutCustom, Details: "Swings"})
	st.Rucks = append(st.Rucks, Ruck{Date: day0, Miles: 12, Lbs: 20, Coins: 14.4})
	st.TotalRuckMiles = 12
	st.Treasury = 14.4
	st.Streak = Streak{ActiveDays: 3, LastActiveDate: &last}
	st.AddBadge(Badge{ID: "b1", Name: "📜 Eleusis Way-Point", EarnedOn: day0, Kind: BadgeWaypoint,
		ImagePath: "Pheidippides/Eleusis.png", Caption: "Demeter", Loop: intPtr(0), Stop: "Eleusis"})
	st.AddBadge(Badge{ID: "b2", Name: "Talos Trophy 4 ✨", EarnedOn: day0, Kind: BadgeMonster,
		ImagePath: "monsters/Talos/Gold/Talos.png", Tier: 4, Gilded: true})

	raw, err := Encode(st)
	require.NoError(t, err)

	got, err := Decode(raw, day0.AddDays(100))
	require.NoError(t, err)
	assert.Equal(t, st, got)
}

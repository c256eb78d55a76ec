package store

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/olympus/internal/clock"
	"github.com/abhisek/olympus/internal/state"
)

var testNow = time.Date(2026, time.October, 19, 7, 30, 0, 0, time.UTC)

func openTestStore(t *testing.T) (*Store, *clock.Fake) {
	t.Helper()
	clk := clock.NewFake(testNow)
	log := logrus.New()
	log.SetOutput(io.Discard)

	// A named shared-cache database keeps tests isolated from each other.
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	s, err := Open("file:"+name+"?mode=memory&cache=shared", WithClock(clk), WithLogger(log))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s, clk
}

func TestOpenClose(t *testing.T) {
	s, _ := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil database handle")
	}
}

func TestPragmasApplied(t *testing.T) {
	s, _ := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s, _ := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"state_snapshots", "activity_events", "global_sequence"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Fatalf("query sqlite_master for %s: %v", table, err)
		}
		if name != table {
			t.Errorf("table name = %q, want %q", name, table)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s, _ := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx, s.DB())
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s, _ := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	err = repo.Save(ctx, &Snapshot{
		Version:   state.SchemaVersion,
		Timestamp: testNow,
		Data:      []byte(`{"version":2}`),
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 1 {
		t.Errorf("sequence = %d, want 1", snap.Sequence)
	}
	if snap.Version != state.SchemaVersion {
		t.Errorf("version = %d, want %d", snap.Version, state.SchemaVersion)
	}
	if !snap.Timestamp.Equal(testNow) {
		t.Errorf("timestamp = %v, want %v", snap.Timestamp, testNow)
	}
	if string(snap.Data) != `{"version":2}` {
		t.Errorf("data = %s", snap.Data)
	}
}

func saveSnapshots(t *testing.T, repo SnapshotRepo, n int) {
	t.Helper()
	ctx := context.Background()
	for i := 0; i < n; i++ {
		err := repo.Save(ctx, &Snapshot{
			Version:   state.SchemaVersion,
			Timestamp: testNow.Add(time.Duration(i) * time.Minute),
			Data:      []byte(`{}`),
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}
}

func TestSnapshotPrune(t *testing.T) {
	s, _ := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()
	saveSnapshots(t, repo, 7)

	if err := s.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	// Latest should still be sequence 7.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestSnapshotPruneWithFewerThanKeep(t *testing.T) {
	s, _ := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()
	saveSnapshots(t, repo, 2)

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("remaining snapshots = %d, want 2", count)
	}
}

func TestSnapshotPruneRejectsZeroKeep(t *testing.T) {
	s, _ := openTestStore(t)
	if err := s.Prune(context.Background(), 0); err == nil {
		t.Fatal("expected error for keep = 0")
	}
}

func TestLoadCreatesDefault(t *testing.T) {
	s, _ := openTestStore(t)
	ctx := context.Background()

	st, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, state.Default(state.DateOf(testNow)), st)

	_, err = s.Load(ctx)
	require.NoError(t, err)

	count, err := s.SnapshotRepo().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count, "the default document is saved once")

	byAction, total, err := s.EventRepo().Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, 1, byAction[ActionInit])
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s, _ := openTestStore(t)
	ctx := context.Background()

	day := state.DateOf(testNow)
	loop := 1
	st := state.Default(day.AddDays(-20))
	st.Track = "artemis-rites"
	st.Cycle = state.Cycle{ID: 3, SessionsCompleted: 6, StartDate: day.AddDays(-14), BadgeGiven: true}
	st.Workouts = append(st.Workouts,
		state.Workout{Date: day.AddDays(-1), Kind: state.WorkoutRecommended, Details: "Turkish Get-Up 5/side"},
		state.Workout{Date: day, Kind: state.WorkoutCustom, Details: "Hill sprints"},
	)
	st.Rucks = append(st.Rucks, state.Ruck{Date: day, Miles: 12, Lbs: 20, Coins: 14.4})
	st.Badges = append(st.Badges,
		state.Badge{ID: "b1", Name: "Medusa Trophy 3 ✨", EarnedOn: day, Kind: state.BadgeMonster,
			ImagePath: "monsters/Medusa/Gold/Medusa.png", Tier: 3, Gilded: true},
		state.Badge{ID: "b2", Name: "📜 Eleusis Way-Point", EarnedOn: day, Kind: state.BadgeWaypoint,
			ImagePath: "Pheidippides/Eleusis.png", Caption: "sourdough", Loop: &loop, Stop: "Eleusis"},
	)
	st.Streak = state.Streak{ActiveDays: 9, LastActiveDate: &day}
	st.TotalRuckMiles = 318
	st.Treasury = 14.4

	require.NoError(t, s.Save(ctx, st))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, st, got)
}

func TestUpdate(t *testing.T) {
	s, _ := openTestStore(t)
	ctx := context.Background()

	msg, err := s.Update(ctx, "track_start", func(st *state.State) (string, error) {
		st.Track = "hermes-power-forge"
		return "🔥 Began Hermes' Power Forge", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "🔥 Began Hermes' Power Forge", msg)

	st, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "hermes-power-forge", st.Track)

	events, err := s.EventRepo().Query(ctx, QueryOpts{Action: "track_start"})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, msg, events[0].Message)
	assert.True(t, events[0].Timestamp.Equal(testNow))
}

func TestUpdateLeavesDocumentOnError(t *testing.T) {
	s, _ := openTestStore(t)
	ctx := context.Background()

	before, err := s.Load(ctx)
	require.NoError(t, err)
	count, err := s.SnapshotRepo().Count(ctx)
	require.NoError(t, err)

	boom := errors.New("boom")
	_, err = s.Update(ctx, "log_ruck", func(st *state.State) (string, error) {
		st.TotalRuckMiles = 99
		return "", boom
	})
	require.ErrorIs(t, err, boom)

	after, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	countAfter, err := s.SnapshotRepo().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, count, countAfter)

	events, err := s.EventRepo().Query(ctx, QueryOpts{Action: "log_ruck"})
	require.NoError(t, err)
	assert.Empty(t, events)
}

const legacyDocument = `{
  "track": "hermes_power_forge",
  "microcycle": {"id": 1, "sessions_completed": 2},
  "workouts": [{"date": "2025-06-01", "type": "recommended", "details": "Swings"}],
  "ruck_log": [{"date": "2025-06-01", "distance_miles": 13, "weight_lbs": 0}],
  "badges": [{"date": "2025-06-01", "name": "📜 Eleusis Way-Point", "type": "ruck_quest"}]
}`

func TestImportLegacyDocument(t *testing.T) {
	s, _ := openTestStore(t)
	ctx := context.Background()

	imported, err := s.Import(ctx, []byte(legacyDocument))
	require.NoError(t, err)
	assert.Equal(t, 1, imported.Cycle.ID)
	assert.Equal(t, "hermes-power-forge", imported.Track)
	assert.Equal(t, 13.0, imported.TotalRuckMiles)

	st, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, imported, st)
	require.Len(t, st.Badges, 1)
	assert.Equal(t, state.BadgeWaypoint, st.Badges[0].Kind)
	assert.Equal(t, state.DateOf(testNow), st.Cycle.StartDate)

	events, err := s.EventRepo().Query(ctx, QueryOpts{Action: ActionImport})
	require.NoError(t, err)
	require.Len(t, events, 1)
}

func TestImportRejectsInvalidDocument(t *testing.T) {
	s, _ := openTestStore(t)
	ctx := context.Background()

	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{"cycle":`},
		{"no cycle", `{"track": "x"}`},
		{"negative miles", `{"cycle": {"id": 0, "sessions_completed": 0},
			"ruck_log": [{"distance_miles": -1, "weight_lbs": 0}]}`},
		{"future version", `{"version": 9, "cycle": {"id": 0, "sessions_completed": 0}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := s.Import(ctx, []byte(tt.raw)); err == nil {
				t.Fatal("expected error")
			}
		})
	}

	count, err := s.SnapshotRepo().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestReset(t *testing.T) {
	s, clk := openTestStore(t)
	ctx := context.Background()

	_, err := s.Import(ctx, []byte(legacyDocument))
	require.NoError(t, err)

	clk.AdvanceDays(3)
	fresh, err := s.Reset(ctx)
	require.NoError(t, err)

	st, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, fresh, st)
	assert.Empty(t, st.Track)
	assert.Equal(t, state.DateOf(clk.Now()), st.Cycle.StartDate)

	// Earlier snapshots survive until pruned.
	count, err := s.SnapshotRepo().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestEventQuery(t *testing.T) {
	s, _ := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	actions := []string{"log_session", "log_ruck", "log_session", "log_custom", "log_ruck"}
	for i, a := range actions {
		err := repo.Append(ctx, &ActivityEvent{
			Timestamp: testNow.Add(time.Duration(i) * time.Hour),
			Action:    a,
			Message:   a,
		})
		require.NoError(t, err)
	}

	all, err := repo.Query(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, all, 5)
	assert.Equal(t, int64(5), all[0].Sequence, "newest first")

	limited, err := repo.Query(ctx, QueryOpts{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	after, err := repo.Query(ctx, QueryOpts{After: 3})
	require.NoError(t, err)
	assert.Len(t, after, 2)

	window, err := repo.Query(ctx, QueryOpts{From: testNow.Add(time.Hour), To: testNow.Add(3 * time.Hour)})
	require.NoError(t, err)
	assert.Len(t, window, 3)

	rucks, err := repo.Query(ctx, QueryOpts{Action: "log_ruck"})
	require.NoError(t, err)
	assert.Len(t, rucks, 2)

	byAction, total, err := repo.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	assert.Equal(t, map[string]int{"log_session": 2, "log_ruck": 2, "log_custom": 1}, byAction)
}

func TestDefaultDBPath(t *testing.T) {
	t.Run("env override", func(t *testing.T) {
		p := filepath.Join(t.TempDir(), "nested", "progress.db")
		t.Setenv("OLYMPUS_DB", p)

		got, err := DefaultDBPath()
		require.NoError(t, err)
		assert.Equal(t, p, got)
		_, err = os.Stat(filepath.Dir(p))
		assert.NoError(t, err, "parent directory created")
	})

	t.Run("xdg data home", func(t *testing.T) {
		dataHome := t.TempDir()
		t.Setenv("OLYMPUS_DB", "")
		t.Setenv("XDG_DATA_HOME", dataHome)

		got, err := DefaultDBPath()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dataHome, "olympus", "olympus.db"), got)
	})
}

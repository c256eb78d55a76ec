package catalog

import (
	"testing"
)

func TestDefault_Tracks(t *testing.T) {
	c := Default()
	tracks := c.All()
	if len(tracks) != 2 {
		t.Fatalf("expected 2 tracks, got %d", len(tracks))
	}
	for _, tr := range tracks {
		if tr.SessionCount() != 6 {
			t.Errorf("track %q has %d sessions, want 6", tr.ID, tr.SessionCount())
		}
		for i, s := range tr.Sessions {
			if s.Finisher == "" {
				t.Errorf("track %q session %d has no finisher", tr.ID, i+1)
			}
			if len(s.Accessory) == 0 {
				t.Errorf("track %q session %d has no accessories", tr.ID, i+1)
			}
		}
	}
}

func TestLookup(t *testing.T) {
	c := Default()

	tr, ok := c.Lookup("hermes-power-forge")
	if !ok {
		t.Fatal("expected hermes-power-forge to exist")
	}
	if tr.Name != "Hermes' Power Forge" {
		t.Errorf("Name = %q", tr.Name)
	}
	if tr.Sessions[0].Main != "Double-KB Front Squat 5×5 @ RPE 7" {
		t.Errorf("first main = %q", tr.Sessions[0].Main)
	}

	if _, ok := c.Lookup("zeus-cardio"); ok {
		t.Error("unexpected track zeus-cardio")
	}
}

func TestIDs_Sorted(t *testing.T) {
	ids := Default().IDs()
	want := []string{"artemis-rites", "hermes-power-forge"}
	if len(ids) != len(want) {
		t.Fatalf("IDs = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("IDs[%d] = %q, want %q", i, ids[i], want[i])
		}
	}
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name   string
		tracks []Track
	}{
		{"empty", nil},
		{"duplicate id", []Track{
			{ID: "a", Sessions: []Session{{Main: "x"}}},
			{ID: "a", Sessions: []Session{{Main: "y"}}},
		}},
		{"no sessions", []Track{{ID: "a"}}},
		{"blank main", []Track{{ID: "a", Sessions: []Session{{Main: " "}}}}},
		{"blank id", []Track{{ID: "", Sessions: []Session{{Main: "x"}}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.tracks); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	c := Default()
	all := c.All()
	all[0].Name = "changed"
	if c.All()[0].Name == "changed" {
		t.Error("All() exposed internal slice")
	}
}

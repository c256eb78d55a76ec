package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// CycleLengthDays is the minimum duration of a training cycle. The cycle
// badge unlocks once CycleLengthDays-1 days have elapsed since its start.
const CycleLengthDays = 14

// Session is one prescribed workout within a track.
type Session struct {
	Main      string
	Accessory []string
	Finisher  string
}

// Track is a named, ordered list of sessions making up one cycle.
type Track struct {
	ID       string
	Name     string
	Sessions []Session
}

// SessionCount returns how many sessions complete a cycle of this track.
func (t Track) SessionCount() int {
	return len(t.Sessions)
}

// Catalog is an immutable set of tracks indexed by ID.
type Catalog struct {
	tracks []Track
	byID   map[string]*Track
}

// New builds a catalog after validating the tracks.
func New(tracks []Track) (*Catalog, error) {
	if err := validateTracks(tracks); err != nil {
		return nil, err
	}
	c := &Catalog{
		tracks: make([]Track, len(tracks)),
		byID:   make(map[string]*Track, len(tracks)),
	}
	copy(c.tracks, tracks)
	for i := range c.tracks {
		c.byID[c.tracks[i].ID] = &c.tracks[i]
	}
	return c, nil
}

// Lookup returns the track with the given ID.
func (c *Catalog) Lookup(id string) (Track, bool) {
	t, ok := c.byID[id]
	if !ok {
		return Track{}, false
	}
	return *t, true
}

// All returns every track in declaration order.
func (c *Catalog) All() []Track {
	out := make([]Track, len(c.tracks))
	copy(out, c.tracks)
	return out
}

// IDs returns all track IDs sorted alphabetically.
func (c *Catalog) IDs() []string {
	ids := make([]string, 0, len(c.byID))
	for id := range c.byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// validateTracks returns a combined error describing all problems found.
func validateTracks(tracks []Track) error {
	if len(tracks) == 0 {
		return fmt.Errorf("catalog has no tracks")
	}

	var errs []string
	seen := make(map[string]bool, len(tracks))
	for _, t := range tracks {
		if strings.TrimSpace(t.ID) == "" {
			errs = append(errs, fmt.Sprintf("track %q has empty ID", t.Name))
		}
		if seen[t.ID] {
			errs = append(errs, fmt.Sprintf("duplicate track ID: %q", t.ID))
		}
		seen[t.ID] = true
		if len(t.Sessions) == 0 {
			errs = append(errs, fmt.Sprintf("track %q has no sessions", t.ID))
		}
		for i, s := range t.Sessions {
			if strings.TrimSpace(s.Main) == "" {
				errs = append(errs, fmt.Sprintf("track %q session %d has no main lift", t.ID, i+1))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

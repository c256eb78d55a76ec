package state

import (
	"regexp"
	"strings"
)

// WaypointKey identifies one waypoint on one loop of the route. At most one
// waypoint badge may exist per key.
type WaypointKey struct {
	Loop int
	Name string
}

// Display names used by older waypoint records: "📜 Eleusis Way-Point" and,
// before that, "Eleusis Postcard".
var legacyWaypointNames = []*regexp.Regexp{
	regexp.MustCompile(`📜\s+(.*?)\s+Way-Point`),
	regexp.MustCompile(`^(.*?)\s+Postcard$`),
}

// LegacyKeyOf returns the waypoint identity of a badge. Records carrying
// loop and stop use them directly. Older records only have a display name;
// the city is extracted from it (or the whole name is used) and the record
// is attributed to loop 0. Non-waypoint badges report false.
func LegacyKeyOf(b Badge) (WaypointKey, bool) {
	if b.Kind != BadgeWaypoint {
		return WaypointKey{}, false
	}
	if b.Loop != nil && b.Stop != "" {
		return WaypointKey{Loop: *b.Loop, Name: b.Stop}, true
	}
	name := b.Name
	for _, re := range legacyWaypointNames {
		if m := re.FindStringSubmatch(b.Name); m != nil {
			name = m[1]
			break
		}
	}
	return WaypointKey{Loop: 0, Name: name}, true
}

// EarnedWaypoints collects the keys of every waypoint badge in the list.
func EarnedWaypoints(badges []Badge) map[WaypointKey]bool {
	earned := make(map[WaypointKey]bool)
	for _, b := range badges {
		if key, ok := LegacyKeyOf(b); ok {
			earned[key] = true
		}
	}
	return earned
}

var (
	trackNameSuffix = regexp.MustCompile(`\s*\(.*\)\s*$`)
	trackSeparators = regexp.MustCompile(`[^a-z0-9]+`)
)

// CanonicalTrackID maps a track reference from any release to its current
// id. Older documents stored the display name ("Hermes' Power Forge"),
// sometimes with a length suffix, or an underscored key
// ("hermes_power_forge"). Current ids come back unchanged.
func CanonicalTrackID(track string) string {
	id := strings.ToLower(trackNameSuffix.ReplaceAllString(track, ""))
	id = strings.NewReplacer("'", "", "\u2019", "").Replace(id)
	return strings.Trim(trackSeparators.ReplaceAllString(id, "-"), "-")
}

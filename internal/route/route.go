package route

import (
	"fmt"
	"math"
	"strings"
)

// Waypoint is a fixed distance offset along a circular route.
type Waypoint struct {
	Offset  float64 // miles from the start of the loop
	Name    string
	Caption string
}

// Route is an ordered, immutable list of waypoints. The final waypoint's
// offset is the loop length.
type Route struct {
	name      string
	waypoints []Waypoint
}

// New builds a route after validating its waypoints.
func New(name string, waypoints []Waypoint) (*Route, error) {
	if err := validateWaypoints(waypoints); err != nil {
		return nil, fmt.Errorf("route %q: %w", name, err)
	}
	wps := make([]Waypoint, len(waypoints))
	copy(wps, waypoints)
	return &Route{name: name, waypoints: wps}, nil
}

// Name returns the route's display name.
func (r *Route) Name() string { return r.name }

// Waypoints returns a copy of the waypoints in route order.
func (r *Route) Waypoints() []Waypoint {
	out := make([]Waypoint, len(r.waypoints))
	copy(out, r.waypoints)
	return out
}

// Length returns the loop length in miles.
func (r *Route) Length() float64 {
	return r.waypoints[len(r.waypoints)-1].Offset
}

// Lookup finds a waypoint by name.
func (r *Route) Lookup(name string) (Waypoint, bool) {
	for _, wp := range r.waypoints {
		if wp.Name == name {
			return wp, true
		}
	}
	return Waypoint{}, false
}

// Loop returns the zero-based loop index containing the cumulative distance.
func (r *Route) Loop(miles float64) int {
	return int(math.Floor(miles / r.Length()))
}

// Next returns the first waypoint strictly after the cumulative distance,
// its loop index, and the miles remaining to reach it.
func (r *Route) Next(miles float64) (Waypoint, int, float64) {
	loop := r.Loop(miles)
	for l := loop; l <= loop+1; l++ {
		base := float64(l) * r.Length()
		for _, wp := range r.waypoints {
			if abs := base + wp.Offset; abs > miles {
				return wp, l, abs - miles
			}
		}
	}
	// Unreachable for a validated route: the next loop always has a later mark.
	last := r.waypoints[len(r.waypoints)-1]
	return last, loop, 0
}

func validateWaypoints(waypoints []Waypoint) error {
	if len(waypoints) < 2 {
		return fmt.Errorf("need at least 2 waypoints, got %d", len(waypoints))
	}

	var errs []string
	if waypoints[0].Offset != 0 {
		errs = append(errs, fmt.Sprintf("first waypoint %q must be at offset 0", waypoints[0].Name))
	}

	names := make(map[string]bool, len(waypoints))
	for i, wp := range waypoints {
		if strings.TrimSpace(wp.Name) == "" {
			errs = append(errs, fmt.Sprintf("waypoint %d has empty name", i))
		}
		if names[wp.Name] {
			errs = append(errs, fmt.Sprintf("duplicate waypoint name: %q", wp.Name))
		}
		names[wp.Name] = true
		if math.IsNaN(wp.Offset) || math.IsInf(wp.Offset, 0) {
			errs = append(errs, fmt.Sprintf("waypoint %q has invalid offset", wp.Name))
		}
		if i > 0 && wp.Offset <= waypoints[i-1].Offset {
			errs = append(errs, fmt.Sprintf("waypoint %q offset %v not after %v",
				wp.Name, wp.Offset, waypoints[i-1].Offset))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid waypoints:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

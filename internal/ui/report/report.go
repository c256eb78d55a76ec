// Package report renders progress summaries for the terminal.
package report

import (
	"fmt"
	"sort"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/olympus/internal/catalog"
	"github.com/abhisek/olympus/internal/engine"
	"github.com/abhisek/olympus/internal/route"
	"github.com/abhisek/olympus/internal/state"
	"github.com/abhisek/olympus/internal/store"
	"github.com/abhisek/olympus/internal/ui/components"
	"github.com/abhisek/olympus/internal/ui/layout"
	"github.com/abhisek/olympus/internal/ui/theme"
)

// Status renders the full dashboard.
func Status(s engine.Status, width int) string {
	var b strings.Builder
	b.WriteString(layout.RenderHeader("Progress", s.Treasury, s.ActiveDays, width))
	b.WriteString("\n")
	b.WriteString(layout.RenderSection("Cycle", cycleBody(s, width-6), width))
	b.WriteString("\n")
	b.WriteString(layout.RenderSection("Streak", streakBody(s, width-6), width))
	b.WriteString("\n")
	b.WriteString(layout.RenderSection("Ruck · "+s.RouteName, ruckBody(s, width-6), width))
	b.WriteString("\n")
	b.WriteString(layout.RenderSection("Badges", badgeCountsBody(s.BadgeCounts), width))
	return b.String()
}

func row(label, value string) string {
	return theme.Label.Render(label) + theme.Value.Render(value) + "\n"
}

func cycleBody(s engine.Status, width int) string {
	if s.Track == nil {
		return theme.Hint.Render("No track selected. Start one with: olympus track start <id>")
	}
	var b strings.Builder
	b.WriteString(row("Track", s.Track.Name))
	b.WriteString(row("Cycle", fmt.Sprintf("#%d since %s (day %d)", s.CycleID, s.Started, s.DaysElapsed+1)))
	b.WriteString(components.Fraction("Sessions", float64(s.Sessions), float64(s.Needed), width).View())
	b.WriteString("\n")
	switch {
	case s.BadgeGiven:
		b.WriteString(theme.Confirm.Render("Trophy earned for this cycle."))
	case s.Sessions >= s.Needed && s.DaysUntilGate > 0:
		b.WriteString(theme.Hint.Render(fmt.Sprintf("All sessions done. Trophy unlocks in %d days.", s.DaysUntilGate)))
	default:
		b.WriteString(theme.Hint.Render(fmt.Sprintf("%d sessions to go.", s.Needed-s.Sessions)))
	}
	return b.String()
}

func streakBody(s engine.Status, width int) string {
	var b strings.Builder
	b.WriteString(row("Active days", fmt.Sprintf("%d", s.ActiveDays)))
	into := s.ActiveDays % engine.LaurelEvery
	b.WriteString(components.Fraction("Next laurel", float64(into), engine.LaurelEvery, width).View())
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render(fmt.Sprintf("Laurel at day %d.", s.NextLaurelAt)))
	return b.String()
}

func ruckBody(s engine.Status, width int) string {
	var b strings.Builder
	b.WriteString(row("Total", fmt.Sprintf("%.2f mi", s.TotalRuckMiles)))
	b.WriteString(row("Loop", fmt.Sprintf("%d", s.Loop+1)))
	b.WriteString(row("Treasury", fmt.Sprintf("%.2f drachma", s.Treasury)))
	inLoop := s.TotalRuckMiles - float64(s.Loop)*s.RouteLength
	b.WriteString(components.Fraction("This loop", inLoop, s.RouteLength, width).View())
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render(fmt.Sprintf("%.2f mi to %s.", s.MilesToNext, s.NextWaypoint.Name)))
	return b.String()
}

var kindOrder = []state.BadgeKind{state.BadgeMonster, state.BadgeLaurel, state.BadgeWaypoint}

func badgeCountsBody(counts map[state.BadgeKind]int) string {
	var b strings.Builder
	for _, k := range kindOrder {
		b.WriteString(row(kindTitle(k), fmt.Sprintf("%d", counts[k])))
	}
	// Kinds from newer documents still get a line.
	var other []string
	for k := range counts {
		if !isKnownKind(k) {
			other = append(other, string(k))
		}
	}
	sort.Strings(other)
	for _, k := range other {
		b.WriteString(row(k, fmt.Sprintf("%d", counts[state.BadgeKind(k)])))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func isKnownKind(k state.BadgeKind) bool {
	for _, known := range kindOrder {
		if k == known {
			return true
		}
	}
	return false
}

func kindTitle(k state.BadgeKind) string {
	switch k {
	case state.BadgeMonster:
		return "Trophies"
	case state.BadgeLaurel:
		return "Laurels"
	case state.BadgeWaypoint:
		return "Way-points"
	default:
		return string(k)
	}
}

// Route lists the stops of r, checking off those earned on the given loop.
func Route(r *route.Route, loop int, earned map[state.WaypointKey]bool) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render(fmt.Sprintf("%s · loop %d", r.Name(), loop+1)))
	b.WriteString("\n")
	for _, wp := range r.Waypoints() {
		marker := "  "
		if earned[state.WaypointKey{Loop: loop, Name: wp.Name}] {
			marker = theme.Confirm.Render("✔ ")
		}
		fmt.Fprintf(&b, "%s%s  %s\n", marker,
			theme.Subtitle.Render(fmt.Sprintf("%6.1f mi", wp.Offset)),
			theme.Waypoint.Render(wp.Name))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// Waypoint describes one stop and the loops on which it was earned.
func Waypoint(wp route.Waypoint, earned map[state.WaypointKey]bool) string {
	var loops []int
	for k := range earned {
		if k.Name == wp.Name {
			loops = append(loops, k.Loop+1)
		}
	}
	sort.Ints(loops)

	var b strings.Builder
	b.WriteString(theme.Waypoint.Render(wp.Name))
	b.WriteString("\n")
	b.WriteString(row("Mile", fmt.Sprintf("%.1f", wp.Offset)))
	if len(loops) == 0 {
		b.WriteString(row("Earned", "not yet"))
	} else {
		seen := make([]string, len(loops))
		for i, l := range loops {
			seen[i] = fmt.Sprintf("%d", l)
		}
		b.WriteString(row("Earned on loop", strings.Join(seen, ", ")))
	}
	b.WriteString(theme.Hint.Render(wp.Caption))
	return b.String()
}

// Tracks lists the catalog, marking the selected track.
func Tracks(tracks []catalog.Track, active string) string {
	var b strings.Builder
	for _, t := range tracks {
		marker := "  "
		if t.ID == active {
			marker = theme.Confirm.Render("▶ ")
		}
		fmt.Fprintf(&b, "%s%s  %s  %s\n", marker,
			theme.Title.Render(t.Name),
			theme.Subtitle.Render(t.ID),
			theme.Hint.Render(fmt.Sprintf("%d sessions", t.SessionCount())))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// Today renders the next recommended session.
func Today(track catalog.Track, number int, s catalog.Session) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render(fmt.Sprintf("%s · session %d of %d", track.Name, number, track.SessionCount())))
	b.WriteString("\n")
	b.WriteString(row("Main", s.Main))
	b.WriteString(row("Accessory", s.Accessory))
	b.WriteString(row("Finisher", s.Finisher))
	return strings.TrimSuffix(b.String(), "\n")
}

// Badges lists badges in award order.
func Badges(badges []state.Badge) string {
	if len(badges) == 0 {
		return theme.Hint.Render("No badges yet.")
	}
	var b strings.Builder
	for _, bd := range badges {
		fmt.Fprintf(&b, "%s  %s\n", theme.Subtitle.Render(bd.EarnedOn.String()), badgeStyle(bd).Render(bd.Name))
		if bd.Caption != "" {
			b.WriteString("            " + theme.Hint.Render(bd.Caption) + "\n")
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func badgeStyle(b state.Badge) lipgloss.Style {
	switch {
	case b.Gilded:
		return theme.Gilded
	case b.Kind == state.BadgeMonster:
		return theme.Monster
	case b.Kind == state.BadgeLaurel:
		return theme.Laurel
	case b.Kind == state.BadgeWaypoint:
		return theme.Waypoint
	default:
		return theme.Body
	}
}

// History renders the most recent workouts and rucks, newest first. A
// non-positive limit shows everything.
func History(workouts []state.Workout, rucks []state.Ruck, limit int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Workouts") + "\n")
	if len(workouts) == 0 {
		b.WriteString(theme.Hint.Render("none") + "\n")
	}
	for i, n := len(workouts)-1, 0; i >= 0 && (limit <= 0 || n < limit); i, n = i-1, n+1 {
		w := workouts[i]
		fmt.Fprintf(&b, "%s  %-11s  %s\n", theme.Subtitle.Render(w.Date.String()), w.Kind, theme.Body.Render(w.Details))
	}

	b.WriteString("\n" + theme.Title.Render("Rucks") + "\n")
	if len(rucks) == 0 {
		b.WriteString(theme.Hint.Render("none") + "\n")
	}
	for i, n := len(rucks)-1, 0; i >= 0 && (limit <= 0 || n < limit); i, n = i-1, n+1 {
		r := rucks[i]
		fmt.Fprintf(&b, "%s  %s  %s\n",
			theme.Subtitle.Render(r.Date.String()),
			theme.Body.Render(fmt.Sprintf("%6.2f mi @ %3.0f lb", r.Miles, r.Lbs)),
			theme.Gilded.Render(fmt.Sprintf("+%.2f", r.Coins)))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// Activity renders journal events, in the order given.
func Activity(events []store.ActivityEvent) string {
	if len(events) == 0 {
		return theme.Hint.Render("No activity recorded.")
	}
	var b strings.Builder
	for _, ev := range events {
		fmt.Fprintf(&b, "%s  %-12s  %s\n",
			theme.Subtitle.Render(ev.Timestamp.Local().Format("2006-01-02 15:04")),
			ev.Action,
			theme.Body.Render(ev.Message))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// Confirm styles an operation's confirmation message.
func Confirm(msg string) string {
	return theme.Confirm.Render(msg)
}

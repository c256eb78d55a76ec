// Package badges mints badge records: weighted monster trophies for
// completed cycles, laurels for weekly streaks and route waypoint postcards.
package badges

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/abhisek/olympus/internal/draw"
	"github.com/abhisek/olympus/internal/route"
	"github.com/abhisek/olympus/internal/state"
)

// GildChance is the probability that a monster trophy is the Gold variant.
const GildChance = 0.10

const (
	variantGold    = "Gold"
	variantVibrant = "Vibrant"
	gildedMarker   = " ✨"
	unknownName    = "Unknown Badge"
)

// Factory produces badge records from the current state and random draws.
// It never fails: every call returns exactly one record.
type Factory struct {
	src   draw.Source
	newID func() string
}

// Option configures a Factory.
type Option func(*Factory)

// WithIDGenerator overrides the badge ID generator (default: random UUID).
func WithIDGenerator(fn func() string) Option {
	return func(f *Factory) { f.newID = fn }
}

// NewFactory creates a Factory drawing from src.
func NewFactory(src draw.Source, opts ...Option) *Factory {
	f := &Factory{src: src, newID: uuid.NewString}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Award mints a monster or laurel badge. Any other kind yields a
// placeholder record of that kind; waypoint badges come from Waypoint.
func (f *Factory) Award(st *state.State, kind state.BadgeKind, on state.Date) state.Badge {
	switch kind {
	case state.BadgeMonster:
		return f.monster(st, on)
	case state.BadgeLaurel:
		return f.laurel(st, on)
	default:
		return state.Badge{
			ID:       f.newID(),
			Name:     unknownName,
			EarnedOn: on,
			Kind:     kind,
		}
	}
}

// Waypoint mints the postcard for reaching wp on the given loop. It is
// deterministic apart from the record ID.
func (f *Factory) Waypoint(wp route.Waypoint, loop int, on state.Date) state.Badge {
	l := loop
	return state.Badge{
		ID:        f.newID(),
		Name:      fmt.Sprintf("📜 %s Way-Point", wp.Name),
		EarnedOn:  on,
		Kind:      state.BadgeWaypoint,
		ImagePath: fmt.Sprintf("Pheidippides/%s.png", strings.ReplaceAll(wp.Name, " ", "_")),
		Caption:   wp.Caption,
		Loop:      &l,
		Stop:      wp.Name,
	}
}

func (f *Factory) monster(st *state.State, on state.Date) state.Badge {
	m := monsterTable[monsterSampler.Pick(f.src)]
	gilded := f.src.Float64() < GildChance

	variant := variantVibrant
	if gilded {
		variant = variantGold
	}
	tier := st.Cycle.ID
	name := fmt.Sprintf("%s Trophy %d", m.Name, tier)
	if gilded {
		name += gildedMarker
	}

	return state.Badge{
		ID:        f.newID(),
		Name:      name,
		EarnedOn:  on,
		Kind:      state.BadgeMonster,
		ImagePath: MonsterImagePath(m.Name, variant),
		Tier:      tier,
		Gilded:    gilded,
	}
}

func (f *Factory) laurel(st *state.State, on state.Date) state.Badge {
	l := laurelRoster[f.src.IntN(len(laurelRoster))]
	tier := st.Streak.ActiveDays / 7
	return state.Badge{
		ID:       f.newID(),
		Name:     fmt.Sprintf("%s %s Laurel %d", l.Icon, l.God, tier),
		EarnedOn: on,
		Kind:     state.BadgeLaurel,
		Tier:     tier,
	}
}

// MonsterImagePath returns the art path for a monster in the given variant.
func MonsterImagePath(monster, variant string) string {
	slug := Slug(monster)
	return fmt.Sprintf("monsters/%s/%s/%s.png", slug, variant, slug)
}

var nonAlnum = regexp.MustCompile(`[^A-Za-z0-9]+`)

// Slug collapses runs of non-alphanumeric characters to underscores,
// e.g. "Scylla & Charybdis" → "Scylla_Charybdis".
func Slug(name string) string {
	return strings.Trim(nonAlnum.ReplaceAllString(name, "_"), "_")
}

package badges

import (
	"fmt"
	"math"

	"github.com/abhisek/olympus/internal/draw"
)

// Monster is one entry of the cycle trophy lottery.
type Monster struct {
	Name   string
	Weight float64 // percent; all weights sum to 100
}

// Laurel is one entry of the weekly streak roster.
type Laurel struct {
	God  string
	Icon string
}

// monsterTable is ordered from most to least common. Tiers: 10%, 5%, 3%, 1.4%, 0.75%.
var monsterTable = []Monster{
	{"Satyrs", 10.00},
	{"Karkinos", 10.00},
	{"Harpies", 10.00},
	{"Sirens", 10.00},
	{"Calydonian Boar", 10.00},
	{"Stymphalian Birds", 5.00},
	{"Sphinx", 5.00},
	{"Minotaur", 5.00},
	{"Polyphemus", 5.00},
	{"Orthrus", 5.00},
	{"Medusa", 3.00},
	{"Mares of Diomedes", 3.00},
	{"Nemean Lion", 3.00},
	{"Colchian Dragon", 3.00},
	{"Lernaean Hydra", 3.00},
	{"Geryon", 1.40},
	{"Chimera", 1.40},
	{"Talos", 1.40},
	{"Cerberus", 1.40},
	{"Gigantes", 1.40},
	{"Scylla & Charybdis", 0.75},
	{"Echidna", 0.75},
	{"Hecatoncheires", 0.75},
	{"Typhon", 0.75},
}

var laurelRoster = []Laurel{
	{"Zeus", "⚡"},
	{"Hera", "👑"},
	{"Athena", "🦉"},
	{"Ares", "🛡️"},
	{"Apollo", "☀️"},
	{"Artemis", "🏹"},
	{"Hermes", "🪽"},
	{"Demeter", "🌾"},
	{"Poseidon", "🌊"},
	{"Hades", "🖤"},
}

// monsterSampler is built once from monsterTable.
var monsterSampler *draw.Categorical

func init() {
	if err := validateMonsters(monsterTable); err != nil {
		panic(err)
	}
	weights := make([]float64, len(monsterTable))
	for i, m := range monsterTable {
		weights[i] = m.Weight
	}
	s, err := draw.NewCategorical(weights)
	if err != nil {
		panic(err)
	}
	monsterSampler = s
}

// Monsters returns a copy of the monster table in lottery order.
func Monsters() []Monster {
	out := make([]Monster, len(monsterTable))
	copy(out, monsterTable)
	return out
}

// Laurels returns a copy of the laurel roster.
func Laurels() []Laurel {
	out := make([]Laurel, len(laurelRoster))
	copy(out, laurelRoster)
	return out
}

func validateMonsters(ms []Monster) error {
	seen := make(map[string]bool, len(ms))
	total := 0.0
	for _, m := range ms {
		if seen[m.Name] {
			return fmt.Errorf("duplicate monster: %q", m.Name)
		}
		seen[m.Name] = true
		if m.Weight <= 0 {
			return fmt.Errorf("monster %q has non-positive weight %v", m.Name, m.Weight)
		}
		total += m.Weight
	}
	if math.Abs(total-100) > 1e-9 {
		return fmt.Errorf("monster weights sum to %v, want 100", total)
	}
	return nil
}

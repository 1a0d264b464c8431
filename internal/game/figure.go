package game

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/motleycrew/motley-engine-go/internal/game/board"
	"github.com/motleycrew/motley-engine-go/internal/game/counters"
	"github.com/motleycrew/motley-engine-go/internal/game/rules"
)

// Archetype is the closed set of figure types.
type Archetype int

const (
	ArchetypeKnight Archetype = iota
	ArchetypeBarbarian
	ArchetypeArbalist
	ArchetypeBlackMage
	ArchetypeWhiteMage
)

var archetypeNames = map[Archetype]string{
	ArchetypeKnight:    "Knight",
	ArchetypeBarbarian: "Barbarian",
	ArchetypeArbalist:  "Arbalist",
	ArchetypeBlackMage: "Black Mage",
	ArchetypeWhiteMage: "White Mage",
}

func (a Archetype) String() string {
	if name, ok := archetypeNames[a]; ok {
		return name
	}
	return fmt.Sprintf("archetype(%d)", int(a))
}

// Abbrev returns the two-letter board abbreviation for the archetype.
func (a Archetype) Abbrev() string {
	switch a {
	case ArchetypeKnight:
		return "Kn"
	case ArchetypeBarbarian:
		return "Ba"
	case ArchetypeArbalist:
		return "Ar"
	case ArchetypeBlackMage:
		return "BM"
	case ArchetypeWhiteMage:
		return "WM"
	default:
		return "??"
	}
}

// ParseArchetype parses an archetype from its display name.
func ParseArchetype(s string) (Archetype, bool) {
	for a, name := range archetypeNames {
		if name == s {
			return a, true
		}
	}
	return 0, false
}

// Archetypes lists every archetype; each player fields one of each.
func Archetypes() []Archetype {
	return []Archetype{ArchetypeKnight, ArchetypeBarbarian, ArchetypeArbalist, ArchetypeBlackMage, ArchetypeWhiteMage}
}

// Ability identifies a special ability.
type Ability int

const (
	AbilityCharge Ability = iota
	AbilityLongEye
	AbilityMagicBomb
	AbilityPlague
	AbilityVampiricPush
	AbilityConjure
	AbilityHeal
	AbilityCounterContainment
)

var abilityNames = map[Ability]string{
	AbilityCharge:             "Charge",
	AbilityLongEye:            "Long Eye",
	AbilityMagicBomb:          "Magic Bomb",
	AbilityPlague:             "Plague",
	AbilityVampiricPush:       "Vampiric Push",
	AbilityConjure:            "Conjure",
	AbilityHeal:               "Heal",
	AbilityCounterContainment: "Counter Containment",
}

func (ab Ability) String() string {
	if name, ok := abilityNames[ab]; ok {
		return name
	}
	return fmt.Sprintf("ability(%d)", int(ab))
}

// archetypeStats holds the immutable per-type stat line and capability
// flags. Diagonal marks the one archetype whose movement and attacks
// use the king-move metric.
type archetypeStats struct {
	MaxLife   int
	Move      int
	Attack    int
	Reach     int
	Diagonal  bool
	Caster    bool // barbarians fear these
	Abilities []Ability
}

var archetypeTable = map[Archetype]archetypeStats{
	ArchetypeKnight: {
		MaxLife: 7, Move: 4, Attack: 3, Reach: 1,
		Abilities: []Ability{AbilityCharge},
	},
	ArchetypeBarbarian: {
		MaxLife: 8, Move: 3, Attack: 4, Reach: 1,
	},
	ArchetypeArbalist: {
		MaxLife: 5, Move: 2, Attack: 2, Reach: 3,
		Diagonal:  true,
		Abilities: []Ability{AbilityLongEye},
	},
	ArchetypeBlackMage: {
		MaxLife: 7, Move: 2, Attack: 1, Reach: 2,
		Caster:    true,
		Abilities: []Ability{AbilityMagicBomb, AbilityPlague, AbilityVampiricPush},
	},
	ArchetypeWhiteMage: {
		MaxLife: 4, Move: 2, Attack: 1, Reach: 2,
		Caster:    true,
		Abilities: []Ability{AbilityConjure, AbilityHeal, AbilityCounterContainment},
	},
}

// noPosition is the position of a dead figure.
var noPosition = board.Position{Row: -1, Col: -1}

// Figure represents one figure on the board or in a dead pool.
type Figure struct {
	ID       string
	Type     Archetype
	Owner    rules.Player
	Position board.Position
	Life     int
	HasMoved bool
	HasActed bool
	Counters *counters.Counters
	Dead     bool
}

// NewFigure creates a figure at full life with no position.
func NewFigure(t Archetype, owner rules.Player) *Figure {
	return &Figure{
		ID:       uuid.NewString(),
		Type:     t,
		Owner:    owner,
		Position: noPosition,
		Life:     archetypeTable[t].MaxLife,
		Counters: counters.NewCounters(),
	}
}

func (f *Figure) stats() archetypeStats {
	return archetypeTable[f.Type]
}

// MaxLife returns the archetype's maximum life.
func (f *Figure) MaxLife() int { return f.stats().MaxLife }

// MoveRange returns the archetype's movement range.
func (f *Figure) MoveRange() int { return f.stats().Move }

// AttackPower returns the archetype's base attack power.
func (f *Figure) AttackPower() int { return f.stats().Attack }

// Reach returns the archetype's attack/ability reach.
func (f *Figure) Reach() int { return f.stats().Reach }

// Diagonal reports whether the archetype moves and attacks with the
// king-move metric.
func (f *Figure) Diagonal() bool { return f.stats().Diagonal }

// Caster reports whether the archetype is a mage.
func (f *Figure) Caster() bool { return f.stats().Caster }

// HasAbility reports whether the archetype can use the given ability.
func (f *Figure) HasAbility(ab Ability) bool {
	for _, a := range f.stats().Abilities {
		if a == ab {
			return true
		}
	}
	return false
}

// Contained reports whether the figure is under an active containment
// lock.
func (f *Figure) Contained() bool {
	return f.Counters.HasCounter(counters.Containment)
}

// DistanceTo returns the distance to a cell using the figure's metric.
func (f *Figure) DistanceTo(p board.Position) int {
	if f.Diagonal() {
		return board.Chebyshev(f.Position, p)
	}
	return board.Orthogonal(f.Position, p)
}

func (f *Figure) String() string {
	return fmt.Sprintf("%s (%s) [%d/%d]", f.Type, f.Owner, f.Life, f.MaxLife())
}

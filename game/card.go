package game

import "sort"

// Card type labels with engine-visible meaning. Any other label is an
// ordinary category.
const (
	TypeGlobal  = "Global"
	TypeCritter = "Critter"
	TypeFarm    = "Farm"
	TypeWild    = "Wild"
)

// Card is an immutable card definition. EffectText is the raw tag
// string from the card table, parsed once at load time; the engine only
// ever dispatches on the typed Effects slice.
type Card struct {
	ID           string
	Name         string
	BuyCost      int
	PlayCost     Cost
	Type         string
	Domain       string
	MatPoints    int
	CanPlayOnMat bool
	EffectText   string
	Effects      []Effect
}

func (c *Card) IsGlobal() bool { return c.Type == TypeGlobal }

// CompostGains sums the card's on-compost grants.
func (c *Card) CompostGains() Cost {
	var gains Cost
	for _, e := range c.Effects {
		if e.Kind == EffectOnCompostGain && e.N > 0 {
			if gains == nil {
				gains = Cost{}
			}
			gains[e.Resource] += e.N
		}
	}
	return gains
}

func (c *Card) hasEffect(kind EffectKind) bool {
	for _, e := range c.Effects {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

// Library is the game-wide card lookup, shared read-only across all
// games in a batch run.
type Library map[string]*Card

// SortedIDs returns card ids in a fixed order for deterministic supply
// construction.
func (l Library) SortedIDs() []string {
	ids := make([]string, 0, len(l))
	for id := range l {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

package game

import (
	"scarecrovv/config"
	"scarecrovv/eventlog"
)

// Setup builds a fresh game: shuffled supply, face-up pool, starting
// decks (6 plasma tokens + 4 one-point tokens), opening hands and the
// opening plasma drip. The library is shared read-only across games.
func Setup(cfg *config.Config, lib Library) *GameState {
	rng := NewRNG(cfg.Seed)

	supply := make([]string, 0, len(lib)*cfg.CopiesPerUnique)
	for _, cid := range lib.SortedIDs() {
		for i := 0; i < cfg.CopiesPerUnique; i++ {
			supply = append(supply, cid)
		}
	}
	rng.Shuffle(len(supply), func(i, j int) {
		supply[i], supply[j] = supply[j], supply[i]
	})

	g := &GameState{
		Cfg:           cfg,
		Cards:         lib,
		Supply:        supply,
		Players:       make([]*Player, cfg.Players),
		Initiative:    NoInitiative,
		AshPile:       1,
		ShardsPile:    1,
		Occupancy:     map[Field]int{},
		HandDelta:     map[int]int{},
		DomainsPlayed: make([]map[string]bool, cfg.Players),
		Log:           eventlog.New(),
		rng:           rng,
	}
	for _, f := range FieldOrder {
		g.Occupancy[f] = 0
	}
	g.refillPool()

	for pid := 0; pid < cfg.Players; pid++ {
		p := NewPlayer(pid)
		deck := make([]string, 0, 10)
		for i := 0; i < 6; i++ {
			deck = append(deck, ResToken(Plasma))
		}
		for i := 0; i < 4; i++ {
			deck = append(deck, VPToken(1))
		}
		rng.Shuffle(len(deck), func(i, j int) {
			deck[i], deck[j] = deck[j], deck[i]
		})
		p.Deck = deck
		g.Players[pid] = p
		g.HandDelta[pid] = 0
		g.DomainsPlayed[pid] = map[string]bool{}
	}

	for _, p := range g.Players {
		g.DrawToHandSize(p, cfg.HandSize)
	}
	for _, p := range g.Players {
		p.Resources[Plasma]++
	}

	if cfg.Players > 0 {
		g.StartPlayer = cfg.StartOffset % cfg.Players
	}
	g.Current = g.StartPlayer
	return g
}

// Draw moves n cards from deck to hand, reshuffling the discard into
// the deck through the game RNG when the deck runs dry. When both are
// empty the draw stops short, never an error.
func (g *GameState) Draw(p *Player, n int) {
	for i := 0; i < n; i++ {
		if len(p.Deck) == 0 {
			if len(p.Discard) == 0 {
				return
			}
			g.emit(eventlog.Event{A: eventlog.KindReshuffle, P: p.ID, N: len(p.Discard)})
			g.rng.Shuffle(len(p.Discard), func(i, j int) {
				p.Discard[i], p.Discard[j] = p.Discard[j], p.Discard[i]
			})
			p.Deck = p.Discard
			p.Discard = nil
		}
		p.Hand = append(p.Hand, p.Deck[len(p.Deck)-1])
		p.Deck = p.Deck[:len(p.Deck)-1]
	}
}

// DrawToHandSize draws up to a target hand size, never discarding down.
func (g *GameState) DrawToHandSize(p *Player, target int) {
	if need := target - len(p.Hand); need > 0 {
		g.Draw(p, need)
	}
}

// vpBuyCost returns the plasma cost of a VP pile, or false if that
// denomination is not configured.
func (g *GameState) vpBuyCost(denom int) (int, bool) {
	for _, d := range g.Cfg.VPDenoms {
		if d == denom {
			cost, ok := g.Cfg.VPBuyCost[denom]
			return cost, ok
		}
	}
	return 0, false
}

// vpPlayCost converts the configured play-cost spec for a denomination
// into a typed choice cost. Unconfigured denominations play free.
func (g *GameState) vpPlayCost(denom int) ChoiceCost {
	spec, ok := g.Cfg.VPPlayCost[denom]
	if !ok {
		return ChoiceCost{Fixed: Cost{}}
	}
	out := ChoiceCost{Fixed: Cost{}}
	for name, n := range spec.Fixed {
		if IsResource(name) && n > 0 {
			out.Fixed[Resource(name)] = n
		}
	}
	for _, name := range spec.OneOf {
		if IsResource(name) {
			out.OneOf = append(out.OneOf, Resource(name))
		}
	}
	return out
}

// poolBuyCost is the plasma cost to buy a market card, honoring the
// flat override used during balance passes.
func (g *GameState) poolBuyCost(c *Card) int {
	if g.Cfg.PoolBuyCostOverride > 0 {
		return g.Cfg.PoolBuyCostOverride
	}
	return c.BuyCost
}

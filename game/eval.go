package game

// Heuristic helpers shared by the bot policies. These are hints, not
// rules: nothing in here mutates state.

// ExpectedPlayValue estimates the value of playing a library card now.
// The first return is immediate points, the second a small proxy for
// persistent or deck-quality value.
func (g *GameState) ExpectedPlayValue(pid int, c *Card, toMat bool) (now, future float64) {
	for _, e := range c.Effects {
		if e.Kind == EffectSelfVP {
			now += float64(e.N)
		}
	}
	if toMat {
		now += float64(c.MatPoints)
		if c.MatPoints > 0 {
			future += 0.6
		}
	}
	switch c.Type {
	case TypeCritter, TypeFarm, TypeWild:
		future += 0.2
	}
	if c.Domain != "" && c.Domain != "None" {
		future += 0.2
	}
	if !toMat && c.hasEffect(EffectPeek2Keep1) {
		// Deck-quality and tempo gain when resolved actively.
		future += 0.5
	}
	return now, future
}

// ResourceDelta is the net resource swing of playing the card: rider
// gains minus the discounted cost. Negative means an uncompensated
// spend this turn.
func (g *GameState) ResourceDelta(pid int, c *Card) float64 {
	p := g.Players[pid]
	gain := 0
	for _, e := range c.Effects {
		switch e.Kind {
		case EffectSelfPlasma, EffectSelfGain:
			gain += e.N
		}
	}
	cost := DiscountedCost(c, DiscountFor(p, c))
	return float64(gain - cost.Total())
}

// SynergyBonus rates how well the card lines up with the mat already
// built: an applicable slot discount plus shared type or domain.
func (g *GameState) SynergyBonus(pid int, c *Card) float64 {
	p := g.Players[pid]
	bonus := 0.0
	if DiscountFor(p, c) > 0 {
		bonus += 0.6
	}
	if p.MatTypes(g.Cards)[c.Type] {
		bonus += 0.3
	}
	if c.Domain != "" && c.Domain != "None" && p.MatDomains(g.Cards)[c.Domain] {
		bonus += 0.3
	}
	return bonus
}

// CheapestNeed scans the hand for the library card closest to
// playable and returns its resource shortfall. An empty result means
// something in hand is already affordable (or the hand holds no
// library cards).
func (g *GameState) CheapestNeed(pid int) Cost {
	p := g.Players[pid]
	var best Cost
	bestTotal := -1

	shortfall := func(cost Cost) Cost {
		need := Cost{}
		for _, r := range ResourceOrder {
			if v := cost[r]; v > Available(p, r) {
				need[r] = v - Available(p, r)
			}
		}
		return need
	}

	for _, tok := range p.Hand {
		c, ok := g.Cards[tok]
		if !ok || c.IsGlobal() {
			continue
		}
		need := shortfall(DiscountedCost(c, DiscountFor(p, c)))
		if bestTotal < 0 || need.Total() < bestTotal {
			best, bestTotal = need, need.Total()
		}
	}
	if bestTotal < 0 {
		return Cost{}
	}
	return best
}

// DistanceToFirst is the player's normalized position in this round's
// turn order: 0 when already first, approaching 1 when last.
func (g *GameState) DistanceToFirst(pid int) float64 {
	n := len(g.Players)
	if n <= 1 {
		return 0
	}
	pos := -1
	for i, id := range g.TurnOrder {
		if id == pid {
			pos = i
			break
		}
	}
	if pos < 0 {
		return 1
	}
	return float64(pos%n) / float64(n-1)
}

// InitiativeDesirability rates claiming the initiative field for pid:
// worth more the further back in turn order, more late in the game,
// and less when the claim would spend a scarce worker.
func (g *GameState) InitiativeDesirability(pid int) float64 {
	dist := g.DistanceToFirst(pid)
	damp := 1.0
	if dist <= 1e-9 {
		damp = 0.15
	}

	posBonus := 1.5 * dist
	lateBonus := 0.2
	if g.Turn > g.Cfg.LateRoundThreshold {
		lateBonus = 0.6
	}
	workerPenalty := 0.0
	if g.Players[pid].Workers <= 1 {
		workerPenalty = 0.6
	}

	bias := g.Cfg.InitiativeBias
	if bias == 0 {
		bias = 1.0
	}
	return (posBonus + lateBonus - workerPenalty) * damp * bias
}

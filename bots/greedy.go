package bots

import "scarecrovv/game"

// Greedy scores every legal action with a hand-tuned heuristic and
// takes the best, breaking ties by enumeration order. With probability
// cfg.Explore it instead picks uniformly among useful actions and
// flags the decision as explored.
type Greedy struct{}

func NewGreedy() *Greedy { return &Greedy{} }

func (b *Greedy) ChooseAction(g *game.GameState, pid int) (game.Action, bool) {
	acts := g.LegalActions(pid)
	if len(acts) == 0 {
		return game.Pass, false
	}

	if eps := g.Cfg.Explore; eps > 0 && g.RNG().Float64() < eps {
		guided := make([]game.Action, 0, len(acts))
		for _, a := range acts {
			if a.Kind != game.ActionPass {
				guided = append(guided, a)
			}
		}
		if len(guided) == 0 {
			guided = acts
		}
		return guided[g.RNG().Intn(len(guided))], true
	}

	best := acts[0]
	bestScore := b.score(g, pid, acts, acts[0])
	for _, a := range acts[1:] {
		if s := b.score(g, pid, acts, a); s > bestScore {
			best, bestScore = a, s
		}
	}
	return best, false
}

func (b *Greedy) score(g *game.GameState, pid int, acts []game.Action, a game.Action) float64 {
	late := g.Turn > g.Cfg.LateRoundThreshold

	switch a.Kind {
	case game.ActionPlay:
		return b.scorePlay(g, pid, a, late)
	case game.ActionWorker:
		return b.scoreWorker(g, pid, a, late)
	case game.ActionBuyPool:
		return b.scoreBuyPool(g, pid, a)
	case game.ActionBuyVP:
		base := map[int]float64{1: 0.6, 2: 0.9, 3: 1.2}[a.Denom]
		if base == 0 {
			base = 0.5
		}
		if !late {
			base *= 0.8
		}
		return base
	case game.ActionPass:
		return -1.0
	}
	return 0
}

// vpUrgency grows from 1 toward 1+VPWeight as the game ages, so raw
// points win out over engine building once rounds run short.
func (b *Greedy) vpUrgency(g *game.GameState) float64 {
	turn := g.Cfg.VPUrgencyTurn
	if turn <= 0 {
		return 1.0
	}
	frac := float64(g.Turn) / float64(turn)
	if frac > 1 {
		frac = 1
	}
	u := 1.0 + g.Cfg.VPWeight*frac
	if g.Turn > g.Cfg.LateGameTurn {
		u += g.Cfg.VPWeight
	}
	return u
}

func (b *Greedy) scorePlay(g *game.GameState, pid int, a game.Action, late bool) float64 {
	p := g.Players[pid]
	if a.Hand < 0 || a.Hand >= len(p.Hand) {
		return 0
	}
	tok := p.Hand[a.Hand]

	handRelief := 0.0
	if len(p.Hand) >= g.Cfg.BigHandThreshold {
		handRelief = 0.25
	}

	if v, ok := game.ParseVPToken(tok); ok {
		bonus := 0
		if p.HasSlot(1) {
			bonus = 2
		}
		return 3.0*float64(v+bonus)*b.vpUrgency(g) + 0.6*handRelief
	}
	if _, ok := game.ParseResToken(tok); ok {
		// Token income: modest tempo value, banked either way.
		return 0.8 + 0.6*handRelief
	}

	c, ok := g.Cards[tok]
	if !ok {
		if a.ToMat {
			return 0.6*handRelief + 0.2
		}
		return 0.6 * handRelief
	}

	vpNow, vpFuture := g.ExpectedPlayValue(pid, c, a.ToMat)
	res := g.ResourceDelta(pid, c)
	syn := g.SynergyBonus(pid, c)
	matPref := 0.0
	if a.ToMat && p.FreeSlotCount() > 0 {
		matPref = 1.0
	}
	return 3.0*vpNow + 1.5*vpFuture + 1.0*syn + 0.6*handRelief + 0.4*matPref + 0.2*res
}

func (b *Greedy) scoreWorker(g *game.GameState, pid int, a game.Action, late bool) float64 {
	if a.Field == game.FieldInitiative {
		return g.InitiativeDesirability(pid)
	}

	need := g.CheapestNeed(pid)
	base := map[game.Field]float64{
		game.FieldRookery: 1.6, // card draw is tempo
		game.FieldPlasma:  1.3,
		game.FieldAsh:     1.1,
		game.FieldShards:  1.1,
		game.FieldForage:  1.0,
		game.FieldCompost: 0.9,
	}[a.Field]
	if base == 0 {
		base = 0.8
	}

	boost := 0.0
	switch a.Field {
	case game.FieldPlasma:
		boost = 0.9 * float64(need[game.Plasma])
	case game.FieldAsh:
		boost = 0.8 * float64(need[game.Ash])
	case game.FieldShards:
		boost = 0.8 * float64(need[game.Shards])
	case game.FieldForage:
		boost = 0.5 * float64(need[game.Nut]+need[game.Berry]+need[game.Mushroom])
	}

	if late {
		switch a.Field {
		case game.FieldPlasma, game.FieldAsh, game.FieldShards, game.FieldForage:
			base *= 0.9
		}
	}
	return base + boost
}

func (b *Greedy) scoreBuyPool(g *game.GameState, pid int, a game.Action) float64 {
	if a.Pool < 0 || a.Pool >= len(g.Pool) {
		return 0
	}
	c, ok := g.Cards[g.Pool[a.Pool]]
	if !ok {
		return 0.1
	}

	actNow, actFuture := g.ExpectedPlayValue(pid, c, false)
	matNow, matFuture := g.ExpectedPlayValue(pid, c, true)
	actV := actNow + actFuture
	matV := matNow + matFuture

	matPressure := 0.0
	if g.Players[pid].FreeSlotCount() == 0 && matV > actV+0.5 {
		matPressure = -0.6
	}
	bestV := actV
	if matV > bestV {
		bestV = matV
	}
	playHint := 0.0
	if bestV > 0 {
		playHint = 0.2
	}
	bump := 0.0
	if c.IsGlobal() {
		bump += 0.3
	}
	for _, e := range c.Effects {
		if e.Kind == game.EffectDraw || e.Kind == game.EffectDraw2Discard1 {
			// Draw effects compound; worth a nudge beyond raw value.
			bump += 0.2
			break
		}
	}
	return 0.7*bestV + matPressure + playHint + bump
}

package game

import "scarecrovv/eventlog"

// resolveEffects applies every parsed effect of a just-played card, in
// the order the effect text listed them. Library cards and globals go
// through the same resolver; the tag set is disjoint enough that
// nothing needs a type switch.
func (g *GameState) resolveEffects(pid int, c *Card) {
	p := g.Players[pid]
	for _, e := range c.Effects {
		switch e.Kind {
		case EffectDraw:
			g.Draw(p, e.N)
			g.emit(eventlog.Event{A: eventlog.KindEffect, P: pid, Cid: c.ID, Effect: "draw", N: e.N})

		case EffectDraw2Discard1:
			g.Draw(p, 2)
			if len(p.Hand) > 0 {
				dumped := p.Hand[0]
				p.Hand = p.Hand[1:]
				p.Discard = append(p.Discard, dumped)
				g.emit(eventlog.Event{A: eventlog.KindEffect, P: pid, Cid: c.ID, Effect: "draw2_discard1", Dumped: dumped})
			}

		case EffectPeek2Keep1:
			g.peekTwoKeepOne(pid, c.ID)

		case EffectSelfPlasma:
			p.Resources[Plasma] += e.N
			g.emit(eventlog.Event{A: eventlog.KindGlobalRider, P: pid, Cid: c.ID, Effect: "self_plasma", N: e.N})

		case EffectSelfGain:
			if IsResource(string(e.Resource)) {
				p.Resources[e.Resource] += e.N
				g.emit(eventlog.Event{A: eventlog.KindGlobalRider, P: pid, Cid: c.ID, Effect: "self_gain", Res: string(e.Resource), N: e.N})
			}

		case EffectSelfVP:
			p.VP += e.N
			g.emit(eventlog.Event{A: eventlog.KindGlobalRider, P: pid, Cid: c.ID, Effect: "self_vp", N: e.N, Total: p.VP})

		case EffectHandSizeDelta:
			for i := range g.Players {
				g.HandDelta[i] += e.N
			}
			g.emit(eventlog.Event{A: eventlog.KindGlobal, P: pid, Cid: c.ID, Effect: "hand_size_delta", Delta: e.N})

		case EffectForageBonus:
			g.ForageBonus += e.N
			g.emit(eventlog.Event{A: eventlog.KindGlobal, P: pid, Cid: c.ID, Effect: "forage_bonus", N: e.N})

		case EffectBlight:
			g.Blight = true
			g.emit(eventlog.Event{A: eventlog.KindGlobal, P: pid, Cid: c.ID, Effect: "blight"})

		case EffectDecreeRule:
			// The rule stays on for the rest of the game; the per-round
			// claim flag resets each round.
			g.DecreeEnabled = true
			g.emit(eventlog.Event{A: eventlog.KindGlobal, P: pid, Cid: c.ID, Effect: "decree_rule"})

		case EffectOnCompostGain:
			// Passive; pays out in CompostFromHand.
		}
	}
}

// peekTwoKeepOne draws two cards, keeps the more promising one in hand
// and discards the other. Library cards beat bare tokens; between two
// library cards the higher mat score wins.
func (g *GameState) peekTwoKeepOne(pid int, cid string) {
	p := g.Players[pid]
	before := len(p.Hand)
	g.Draw(p, 2)
	drawn := p.Hand[before:]
	if len(drawn) == 0 {
		return
	}
	keep := 0
	if len(drawn) == 2 && g.peekScore(drawn[1]) > g.peekScore(drawn[0]) {
		keep = 1
	}
	kept := drawn[keep]
	dumped := ""
	if len(drawn) == 2 {
		dumped = drawn[1-keep]
		p.Hand = append(p.Hand[:before], kept)
		p.Discard = append(p.Discard, dumped)
	}
	g.emit(eventlog.Event{A: eventlog.KindEffect, P: pid, Cid: cid, Effect: "peek2_keep1", Kept: kept, Dumped: dumped})
}

func (g *GameState) peekScore(tok string) int {
	if c, ok := g.Cards[tok]; ok {
		return 10 + c.MatPoints
	}
	if v, ok := ParseVPToken(tok); ok {
		return v
	}
	return 0
}

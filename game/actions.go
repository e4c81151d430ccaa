package game

import "scarecrovv/eventlog"

// ActionKind discriminates the five things a seat can do with one
// micro-action.
type ActionKind int

const (
	ActionPass ActionKind = iota
	ActionPlay
	ActionBuyPool
	ActionBuyVP
	ActionWorker
)

func (k ActionKind) String() string {
	switch k {
	case ActionPlay:
		return "play"
	case ActionBuyPool:
		return "buy_pool"
	case ActionBuyVP:
		return "buy_vp"
	case ActionWorker:
		return "worker"
	default:
		return "pass"
	}
}

// Action is one candidate move. The struct is comparable so bots can
// key rollout statistics on it.
type Action struct {
	Kind  ActionKind
	Hand  int   // play: hand index
	ToMat bool  // play: place on mat instead of active play
	Slot  int   // play: target mat slot when ToMat
	Pool  int   // buy_pool: market index
	Denom int   // buy_vp: pile denomination
	Field Field // worker: target field
}

var Pass = Action{Kind: ActionPass}

// LegalActions enumerates every action the player could take right
// now. Pass is always legal and always appended last as the fallback.
func (g *GameState) LegalActions(pid int) []Action {
	p := g.Players[pid]
	var acts []Action

	for i, tok := range p.Hand {
		if _, ok := ParseResToken(tok); ok {
			acts = append(acts, Action{Kind: ActionPlay, Hand: i})
			continue
		}
		if v, ok := ParseVPToken(tok); ok {
			if CanPayChoice(p, g.vpPlayCost(v)) {
				acts = append(acts, Action{Kind: ActionPlay, Hand: i})
			}
			continue
		}
		c, ok := g.Cards[tok]
		if !ok {
			continue
		}
		if c.IsGlobal() {
			// Globals resolve immediately and never earn mat discounts.
			if CanPayMixed(p, c.PlayCost) {
				acts = append(acts, Action{Kind: ActionPlay, Hand: i})
			}
			continue
		}
		cost := DiscountedCost(c, DiscountFor(p, c))
		if !CanPayMixed(p, cost) {
			continue
		}
		acts = append(acts, Action{Kind: ActionPlay, Hand: i})
		if c.CanPlayOnMat {
			// Each open slot is a distinct candidate: slot triggers and
			// future discounts differ by slot.
			for _, s := range p.FreeSlots() {
				acts = append(acts, Action{Kind: ActionPlay, Hand: i, ToMat: true, Slot: s})
			}
		}
	}

	for j, cid := range g.Pool {
		c, ok := g.Cards[cid]
		if !ok {
			continue
		}
		if Available(p, Plasma) >= g.poolBuyCost(c) {
			acts = append(acts, Action{Kind: ActionBuyPool, Pool: j})
		}
	}

	for _, denom := range g.Cfg.VPDenoms {
		if cost, ok := g.vpBuyCost(denom); ok && Available(p, Plasma) >= cost {
			acts = append(acts, Action{Kind: ActionBuyVP, Denom: denom})
		}
	}

	if p.Workers > 0 {
		for _, f := range FieldOrder {
			if g.Occupancy[f] < g.FieldCapacity(f) {
				acts = append(acts, Action{Kind: ActionWorker, Field: f})
			}
		}
	}

	acts = append(acts, Pass)
	return acts
}

// Apply mutates the state with one action. Every branch re-validates
// its preconditions so a stale or malformed action is a safe no-op
// rather than state corruption.
func (g *GameState) Apply(pid int, a Action) {
	switch a.Kind {
	case ActionPlay:
		g.applyPlay(pid, a)
	case ActionBuyPool:
		g.applyBuyPool(pid, a.Pool)
	case ActionBuyVP:
		g.applyBuyVP(pid, a.Denom)
	case ActionWorker:
		g.applyWorker(pid, a.Field)
	case ActionPass:
		g.emit(eventlog.Event{A: eventlog.KindPass, P: pid})
	}
}

func (g *GameState) applyPlay(pid int, a Action) {
	p := g.Players[pid]
	if a.Hand < 0 || a.Hand >= len(p.Hand) {
		return
	}
	tok := p.Hand[a.Hand]

	if r, ok := ParseResToken(tok); ok {
		p.Resources[r]++
		p.Hand = append(p.Hand[:a.Hand], p.Hand[a.Hand+1:]...)
		p.Discard = append(p.Discard, tok)
		g.emit(eventlog.Event{A: eventlog.KindPlayRes, P: pid, Res: string(r)})
		return
	}

	if v, ok := ParseVPToken(tok); ok {
		g.applyPlayVP(pid, a.Hand, tok, v)
		return
	}

	c, ok := g.Cards[tok]
	if !ok {
		return
	}
	if c.IsGlobal() {
		g.applyPlayGlobal(pid, a.Hand, c)
		return
	}
	g.applyPlayCard(pid, a.Hand, c, a)
}

func (g *GameState) applyPlayVP(pid, handIdx int, tok string, value int) {
	p := g.Players[pid]
	cost := g.vpPlayCost(value)
	if !CanPayChoice(p, cost) {
		return
	}
	// Remove the token first so token-based payment never shifts the
	// played index out from under us.
	p.Hand = append(p.Hand[:handIdx], p.Hand[handIdx+1:]...)
	if !PayChoice(p, cost, true) {
		p.Hand = append([]string{tok}, p.Hand...)
		return
	}
	bonus := 0
	if p.HasSlot(1) {
		bonus = 2
	}
	p.VP += value + bonus
	p.Discard = append(p.Discard, tok)
	g.emit(eventlog.Event{
		A: eventlog.KindPlayVP, P: pid,
		VP: value, Bonus: bonus, Total: p.VP,
		Paid: cost.Fixed.StringMap(),
	})
}

func (g *GameState) applyPlayGlobal(pid, handIdx int, c *Card) {
	p := g.Players[pid]
	if !CanPayMixed(p, c.PlayCost) {
		return
	}
	p.Hand = append(p.Hand[:handIdx], p.Hand[handIdx+1:]...)
	PayMixed(p, c.PlayCost, true)
	p.Discard = append(p.Discard, c.ID)
	g.emit(eventlog.Event{
		A: eventlog.KindPlayGlobal, P: pid,
		Cid: c.ID, Name: c.Name, Paid: c.PlayCost.StringMap(),
	})
	g.resolveEffects(pid, c)
}

func (g *GameState) applyPlayCard(pid, handIdx int, c *Card, a Action) {
	p := g.Players[pid]
	cost := DiscountedCost(c, DiscountFor(p, c))
	if !CanPayMixed(p, cost) {
		return
	}

	toMat := a.ToMat && c.CanPlayOnMat && a.Slot >= 1 && a.Slot <= MatSlots && !p.HasSlot(a.Slot)
	p.Hand = append(p.Hand[:handIdx], p.Hand[handIdx+1:]...)
	PayMixed(p, cost, true)

	if toMat {
		p.Mat[a.Slot] = c.ID
		p.VP += c.MatPoints
		switch a.Slot {
		case 2:
			p.Slot2Type = c.Type
			g.emit(eventlog.Event{A: eventlog.KindSlot2Chosen, P: pid, Name: c.Type})
		case 3:
			if len(p.Hand) > 0 {
				g.CompostFromHand(pid, compostIndex(p.Hand), "slot3")
			}
		}
	} else {
		p.Discard = append(p.Discard, c.ID)
	}

	if _, seen := p.FirstPlayTurn[c.ID]; !seen {
		p.FirstPlayTurn[c.ID] = g.Turn
	}
	g.emit(eventlog.Event{
		A: eventlog.KindPlayCard, P: pid,
		Cid: c.ID, Name: c.Name, ToMat: toMat, Slot: a.Slot,
		Paid: cost.StringMap(),
	})

	g.resolveEffects(pid, c)
	g.checkDecree(pid, c)
}

// checkDecree awards the once-per-round +2 VP decree to the first
// player reaching three distinct domains played this round, while the
// decree rule is switched on.
func (g *GameState) checkDecree(pid int, c *Card) {
	if !g.DecreeEnabled || c.Domain == "" || c.Domain == "None" {
		return
	}
	g.DomainsPlayed[pid][c.Domain] = true
	if g.DecreeClaimed || len(g.DomainsPlayed[pid]) < 3 {
		return
	}
	p := g.Players[pid]
	p.VP += 2
	g.DecreeClaimed = true
	g.emit(eventlog.Event{A: eventlog.KindDecreeVP, P: pid, VP: 2, Total: p.VP})
}

func (g *GameState) applyBuyPool(pid, poolIdx int) {
	p := g.Players[pid]
	if poolIdx < 0 || poolIdx >= len(g.Pool) {
		return
	}
	cid := g.Pool[poolIdx]
	c, ok := g.Cards[cid]
	if !ok {
		return
	}
	cost := g.poolBuyCost(c)
	if Available(p, Plasma) < cost {
		return
	}
	PayMixed(p, Cost{Plasma: cost}, true)
	g.Pool = append(g.Pool[:poolIdx], g.Pool[poolIdx+1:]...)
	p.Discard = append(p.Discard, cid)
	g.emit(eventlog.Event{A: eventlog.KindBuy, P: pid, Cid: cid, Name: c.Name, Cost: cost})
	g.refillPool()
}

func (g *GameState) applyBuyVP(pid, denom int) {
	p := g.Players[pid]
	cost, ok := g.vpBuyCost(denom)
	if !ok || Available(p, Plasma) < cost {
		return
	}
	PayMixed(p, Cost{Plasma: cost}, true)
	p.Discard = append(p.Discard, VPToken(denom))
	g.emit(eventlog.Event{A: eventlog.KindBuyVP, P: pid, VP: denom, Cost: cost})
}

func (g *GameState) applyWorker(pid int, f Field) {
	p := g.Players[pid]
	if p.Workers <= 0 {
		return
	}
	cap := g.FieldCapacity(f)
	if cap == 0 || g.Occupancy[f] >= cap {
		return
	}
	g.resolveField(pid, f)
	g.Occupancy[f]++
	p.Workers--
	p.Visits[f]++
	g.emit(eventlog.Event{
		A: eventlog.KindWorker, P: pid,
		Field: string(f), Occ: g.Occupancy[f], Cap: cap,
	})
}

package game

import "scarecrovv/eventlog"

// Field names one worker-placement field.
type Field string

const (
	FieldPlasma     Field = "plasma"
	FieldAsh        Field = "ash"
	FieldShards     Field = "shards"
	FieldForage     Field = "forage"
	FieldRookery    Field = "rookery"
	FieldCompost    Field = "compost"
	FieldInitiative Field = "initiative"
)

// FieldOrder fixes the enumeration order for legal actions and
// occupancy resets.
var FieldOrder = []Field{
	FieldPlasma, FieldAsh, FieldShards, FieldForage,
	FieldRookery, FieldCompost, FieldInitiative,
}

// FieldCapacity returns the per-round worker capacity of a field. The
// forage cap is lifted entirely while a plentiful-forage modifier is
// active.
func (g *GameState) FieldCapacity(f Field) int {
	switch f {
	case FieldAsh, FieldShards, FieldInitiative:
		return 1
	case FieldForage:
		if g.ForageBonus > 0 {
			return unboundedCapacity
		}
		return 2
	case FieldPlasma, FieldRookery, FieldCompost:
		return 2
	}
	return 0
}

const unboundedCapacity = 1 << 16

// resolveField applies a field's effect for the placing player. Caller
// has already verified workers and capacity.
func (g *GameState) resolveField(pid int, f Field) {
	p := g.Players[pid]
	switch f {
	case FieldPlasma:
		p.Resources[Plasma]++
	case FieldAsh:
		p.Resources[Ash] += g.AshPile
		g.AshPile = 1
	case FieldShards:
		p.Resources[Shards] += g.ShardsPile
		g.ShardsPile = 1
	case FieldForage:
		units := 1 + g.ForageBonus
		for i := 0; i < units; i++ {
			pick := ForageResources[g.rng.Intn(len(ForageResources))]
			p.Resources[pick]++
		}
	case FieldRookery:
		g.takeRandomPoolCard(pid)
	case FieldCompost:
		if len(p.Hand) > 0 {
			g.CompostFromHand(pid, compostIndex(p.Hand), "compost_field")
		}
	case FieldInitiative:
		g.claimInitiative(pid)
		g.discardRandomPoolCard(pid)
	}
}

// takeRandomPoolCard moves a random market card to the player's discard
// and backfills the window from the supply.
func (g *GameState) takeRandomPoolCard(pid int) {
	if len(g.Pool) == 0 {
		return
	}
	idx := g.rng.Intn(len(g.Pool))
	cid := g.Pool[idx]
	g.Pool = append(g.Pool[:idx], g.Pool[idx+1:]...)
	g.Players[pid].Discard = append(g.Players[pid].Discard, cid)
	g.refillPool()
}

// discardRandomPoolCard removes a random market card from the game's
// pool into the pool discard, part of the initiative claim.
func (g *GameState) discardRandomPoolCard(pid int) {
	if len(g.Pool) == 0 {
		return
	}
	idx := g.rng.Intn(len(g.Pool))
	cid := g.Pool[idx]
	g.Pool = append(g.Pool[:idx], g.Pool[idx+1:]...)
	g.PoolDiscard = append(g.PoolDiscard, cid)
	g.emit(eventlog.Event{A: eventlog.KindInitDiscard, P: pid, Card: cid})
	g.refillPool()
}

// compostIndex picks which hand card the compost pathway removes: the
// first non-VP card, else the first card.
func compostIndex(hand []string) int {
	for i, tok := range hand {
		if !IsVPToken(tok) {
			return i
		}
	}
	return 0
}

package game

import "scarecrovv/eventlog"

// StartOfRound resets the per-round board state: a fresh turn order
// rotated from the start player, field occupancy cleared, worker and
// plasma stipends handed out, and hands refilled honoring any pending
// hand-size delta from last round's globals.
func (g *GameState) StartOfRound() {
	g.setTurnOrderForRound()

	// The ash and shard piles grow every round they go unclaimed.
	g.AshPile++
	g.ShardsPile++

	for _, f := range FieldOrder {
		g.Occupancy[f] = 0
	}

	for pid, p := range g.Players {
		p.Workers = g.Cfg.WorkersPerRound
		p.Resources[Plasma]++
		target := g.Cfg.HandSize + g.HandDelta[pid]
		if target < 0 {
			target = 0
		}
		g.DrawToHandSize(p, target)
		g.HandDelta[pid] = 0
	}

	g.emit(eventlog.Event{A: eventlog.KindStartOfRound, Start: g.StartPlayer})
}

// EndOfRound fires end-of-round globals, resets round-scoped flags and
// hands initiative its effect for next round. Hands are kept between
// rounds.
func (g *GameState) EndOfRound() {
	if g.Blight {
		for pid, p := range g.Players {
			if len(p.Hand) > 0 {
				g.CompostFromHand(pid, compostIndex(p.Hand), "blight")
			}
		}
	}

	g.ForageBonus = 0
	g.Blight = false
	g.DecreeClaimed = false
	for pid := range g.Players {
		g.DomainsPlayed[pid] = map[string]bool{}
	}

	g.applyInitiative()
	g.emit(eventlog.Event{A: eventlog.KindEndOfRound, VPs: g.VPs()})
	g.Turn++
}

package engine

import (
	"scarecrovv/bots"
	"scarecrovv/config"
	"scarecrovv/eventlog"
	"scarecrovv/game"
)

// PlayOne runs a single game to completion. Each seat takes up to
// ActionsPerTurn micro-actions before play moves on; a pass retires
// the seat for the round and the round ends when every seat has
// passed. Victory checks fire after every single action so a winning
// play ends the game immediately.
func PlayOne(cfg *config.Config, lib game.Library) Result {
	g := game.Setup(cfg, lib)
	policy := bots.ForConfig(cfg)
	label := BotLabel(cfg)

	g.Emit(eventlog.Event{
		A: eventlog.KindGameStart, P: eventlog.NoPlayer,
		Seed: cfg.Seed, Start: g.StartPlayer, Name: label,
	})

	g.StartOfRound()
	n := len(g.Players)
	passed := make([]bool, n)
	actionsLeft := cfg.ActionsPerTurn
	g.Current = g.StartPlayer

	winner := -1
	rounds := 1

	for step := 0; step < cfg.ActionCap; step++ {
		if allPassed(passed) {
			g.EndOfRound()
			if winner = g.Leader(); winner >= 0 {
				g.Emit(eventlog.Event{A: eventlog.KindWin, P: winner, Reason: "vp_threshold"})
				break
			}
			if rounds >= cfg.RoundCap {
				break
			}
			g.StartOfRound()
			rounds++
			for i := range passed {
				passed[i] = false
			}
			actionsLeft = cfg.ActionsPerTurn
			g.Current = g.StartPlayer
			continue
		}

		pid := g.Current
		if passed[pid] {
			advance(g, passed)
			actionsLeft = cfg.ActionsPerTurn
			continue
		}

		action, explored := policy.ChooseAction(g, pid)
		if explored {
			g.Emit(eventlog.Event{A: eventlog.KindExplore, P: pid})
		}
		g.Apply(pid, action)

		if action.Kind == game.ActionPass {
			passed[pid] = true
			actionsLeft = 0
		} else {
			actionsLeft--
		}

		if winner = g.Leader(); winner >= 0 {
			g.Emit(eventlog.Event{A: eventlog.KindWin, P: winner, Reason: "vp_threshold"})
			break
		}

		if actionsLeft <= 0 {
			advance(g, passed)
			actionsLeft = cfg.ActionsPerTurn
		}
	}

	if winner < 0 {
		winner = winnerByPoints(g)
		g.Emit(eventlog.Event{A: eventlog.KindWin, P: winner, Reason: "points_at_cap"})
	}
	vps := g.VPs()
	g.Emit(eventlog.Event{A: eventlog.KindGameEndVP, P: eventlog.NoPlayer, VPs: vps})

	return Result{
		Seed:    cfg.Seed,
		Winner:  winner,
		Starter: g.StartPlayer,
		Bot:     label,
		VPs:     vps,
		Rounds:  rounds,
		Events:  g.Log.Records,
	}
}

func allPassed(passed []bool) bool {
	for _, p := range passed {
		if !p {
			return false
		}
	}
	return true
}

// advance moves Current to the next seat in round order that has not
// passed. If everyone has passed, Current stays where it is and the
// main loop ends the round.
func advance(g *game.GameState, passed []bool) {
	n := len(g.TurnOrder)
	if n == 0 {
		return
	}
	idx := 0
	for i, id := range g.TurnOrder {
		if id == g.Current {
			idx = i
			break
		}
	}
	for step := 1; step <= n; step++ {
		next := g.TurnOrder[(idx+step)%n]
		if !passed[next] {
			g.Current = next
			return
		}
	}
}

// winnerByPoints breaks a cap-out: highest VP, then most plasma, then
// a seeded random pick among the still-tied.
func winnerByPoints(g *game.GameState) int {
	bestVP := 0
	for _, p := range g.Players {
		if p.VP > bestVP {
			bestVP = p.VP
		}
	}
	var tied []int
	for pid, p := range g.Players {
		if p.VP == bestVP {
			tied = append(tied, pid)
		}
	}
	if len(tied) == 1 {
		return tied[0]
	}

	bestPlasma := -1
	for _, pid := range tied {
		if v := g.Players[pid].Resources[game.Plasma]; v > bestPlasma {
			bestPlasma = v
		}
	}
	var tied2 []int
	for _, pid := range tied {
		if g.Players[pid].Resources[game.Plasma] == bestPlasma {
			tied2 = append(tied2, pid)
		}
	}
	if len(tied2) == 1 {
		return tied2[0]
	}
	return tied2[g.RNG().Intn(len(tied2))]
}

package game

import (
	"scarecrovv/config"
	"scarecrovv/eventlog"
)

// NoInitiative marks a round in which nobody has claimed initiative.
const NoInitiative = -1

// GameState is the root aggregate for one game. It is created once by
// Setup, mutated in place for the whole game, and discarded after
// result extraction. Every per-round flag is a declared field with
// reset timing owned by rounds.go.
type GameState struct {
	Cfg   *config.Config
	Cards Library

	// Market.
	Supply      []string
	Pool        []string
	PoolDiscard []string
	// Exile holds composted cards; they are out of the game but kept
	// for copy-conservation accounting.
	Exile []string

	Players []*Player

	// Turn is the round counter; Current the seat to act.
	Turn    int
	Current int

	// Turn order and initiative.
	StartPlayer int
	TurnOrder   []int
	Initiative  int // pid who starts next round, NoInitiative if unclaimed

	// Accumulating fields: grow by 1 each round they go unclaimed,
	// reset to 1 once claimed.
	AshPile    int
	ShardsPile int

	Occupancy map[Field]int

	// Round-scoped modifiers, reset by EndOfRound.
	ForageBonus   int
	HandDelta     map[int]int
	Blight        bool
	DecreeClaimed bool
	DomainsPlayed []map[string]bool

	// DecreeEnabled is a standing rule flag switched on by its global
	// card; it is not round-scoped.
	DecreeEnabled bool

	Log *eventlog.Log
	rng *RNG
}

// RNG exposes the game's single random stream; all randomness in a
// game must come from it.
func (g *GameState) RNG() *RNG { return g.rng }

// emit stamps the round counter on an event and appends it.
func (g *GameState) emit(e eventlog.Event) {
	e.T = g.Turn
	g.Log.Emit(e)
}

// Emit lets collaborating packages (engine loop, bots' explore flag)
// record events through the same stamping path.
func (g *GameState) Emit(e eventlog.Event) { g.emit(e) }

// Clone deep-copies everything a rollout can mutate. The clone's event
// log is fresh and suppressed so simulated play never reaches the real
// record, and the RNG continues from the parent's stream state so
// same-seed runs stay reproducible.
func (g *GameState) Clone() *GameState {
	out := &GameState{
		Cfg:           g.Cfg,
		Cards:         g.Cards,
		Supply:        append([]string(nil), g.Supply...),
		Pool:          append([]string(nil), g.Pool...),
		PoolDiscard:   append([]string(nil), g.PoolDiscard...),
		Exile:         append([]string(nil), g.Exile...),
		Players:       make([]*Player, len(g.Players)),
		Turn:          g.Turn,
		Current:       g.Current,
		StartPlayer:   g.StartPlayer,
		TurnOrder:     append([]int(nil), g.TurnOrder...),
		Initiative:    g.Initiative,
		AshPile:       g.AshPile,
		ShardsPile:    g.ShardsPile,
		Occupancy:     make(map[Field]int, len(g.Occupancy)),
		ForageBonus:   g.ForageBonus,
		HandDelta:     make(map[int]int, len(g.HandDelta)),
		Blight:        g.Blight,
		DecreeClaimed: g.DecreeClaimed,
		DomainsPlayed: make([]map[string]bool, len(g.DomainsPlayed)),
		DecreeEnabled: g.DecreeEnabled,
		Log:           &eventlog.Log{Suppress: true},
		rng:           g.rng.Clone(),
	}
	for i, p := range g.Players {
		out.Players[i] = p.Clone()
	}
	for k, v := range g.Occupancy {
		out.Occupancy[k] = v
	}
	for k, v := range g.HandDelta {
		out.HandDelta[k] = v
	}
	for i, set := range g.DomainsPlayed {
		cp := make(map[string]bool, len(set))
		for d := range set {
			cp[d] = true
		}
		out.DomainsPlayed[i] = cp
	}
	return out
}

// setTurnOrderForRound computes the seat rotation for the current round
// starting at StartPlayer and aligns Current to the first seat.
func (g *GameState) setTurnOrderForRound() {
	n := len(g.Players)
	if n == 0 {
		g.TurnOrder = nil
		return
	}
	s := g.StartPlayer % n
	order := make([]int, 0, n)
	for i := 0; i < n; i++ {
		order = append(order, (s+i)%n)
	}
	g.TurnOrder = order
	g.Current = order[0]
	g.emit(eventlog.Event{
		A:     eventlog.KindTurnOrderSet,
		P:     eventlog.NoPlayer,
		Start: g.StartPlayer,
		Order: append([]int(nil), order...),
	})
}

// claimInitiative records who starts next round. Field capacity 1 means
// at most one claim per round can ever reach this.
func (g *GameState) claimInitiative(pid int) bool {
	if g.Initiative != NoInitiative {
		return false
	}
	g.Initiative = pid
	g.emit(eventlog.Event{A: eventlog.KindInitClaimed, P: pid})
	return true
}

// applyInitiative moves the claimed initiative (if any) into next
// round's start player. When unclaimed the start player is unchanged
// and the round-robin continues from where it was.
func (g *GameState) applyInitiative() {
	prev := g.StartPlayer
	if g.Initiative != NoInitiative {
		g.StartPlayer = g.Initiative
		g.Initiative = NoInitiative
	}
	g.emit(eventlog.Event{
		A:    eventlog.KindInitApplied,
		P:    eventlog.NoPlayer,
		Prev: prev,
		Next: g.StartPlayer,
	})
}

// refillPool tops the face-up market back up to the configured window
// size from the supply; an exhausted supply shrinks the window.
func (g *GameState) refillPool() {
	size := g.Cfg.PoolSize
	for len(g.Pool) < size && len(g.Supply) > 0 {
		cid := g.Supply[len(g.Supply)-1]
		g.Supply = g.Supply[:len(g.Supply)-1]
		g.Pool = append(g.Pool, cid)
	}
}

// grantResources adds a grant to a player's counters.
func grantResources(p *Player, grants Cost) {
	for _, r := range ResourceOrder {
		if n := grants[r]; n > 0 {
			p.Resources[r] += n
		}
	}
}

// CompostFromHand removes one hand card outside the normal discard
// flow, firing the card's on-compost grants. The removed token is
// exiled, not discarded. Returns the removed token.
func (g *GameState) CompostFromHand(pid, index int, reason string) string {
	p := g.Players[pid]
	if index < 0 || index >= len(p.Hand) {
		return ""
	}
	tok := p.Hand[index]
	p.Hand = append(p.Hand[:index], p.Hand[index+1:]...)
	g.Exile = append(g.Exile, tok)

	if c, ok := g.Cards[tok]; ok {
		if gains := c.CompostGains(); gains != nil {
			grantResources(p, gains)
			g.emit(eventlog.Event{
				A:      eventlog.KindCompostGain,
				P:      pid,
				Cid:    c.ID,
				Grants: gains.StringMap(),
				Reason: reason,
			})
		}
	}
	g.emit(eventlog.Event{A: eventlog.KindCompost, P: pid, Card: tok, Reason: reason})
	return tok
}

// VPs returns every seat's victory points in seat order.
func (g *GameState) VPs() []int {
	out := make([]int, len(g.Players))
	for i, p := range g.Players {
		out[i] = p.VP
	}
	return out
}

// Leader returns the seat with a VP total at or above the victory
// threshold, or -1 if the game is still live.
func (g *GameState) Leader() int {
	for _, p := range g.Players {
		if p.VP >= g.Cfg.VictoryVP {
			return p.ID
		}
	}
	return -1
}

// Package bots implements the decision policies that drive simulated
// players: a single-ply greedy scorer and a rollout-sampling searcher
// built on top of it.
package bots

import (
	"scarecrovv/config"
	"scarecrovv/game"
)

// Policy picks one action for a seat at a decision point. The second
// return reports whether the pick was an exploration move rather than
// the policy's preferred action.
type Policy interface {
	ChooseAction(g *game.GameState, pid int) (game.Action, bool)
}

// ForConfig builds the policy named by the config. Unknown names get
// the greedy policy.
func ForConfig(cfg *config.Config) Policy {
	switch cfg.Bot {
	case "mcts":
		return NewMCTS(
			WithRollouts(cfg.Rollouts),
			WithHorizon(cfg.Horizon),
			WithActionsCap(cfg.MCTSActionsCap),
			WithTimeBudgetMS(cfg.MCTSTimeMS),
		)
	default:
		return NewGreedy()
	}
}

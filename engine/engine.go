// Package engine drives complete games: the pass-driven turn loop for
// a single game and the seed-varied batch runner.
package engine

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"scarecrovv/config"
	"scarecrovv/eventlog"
	"scarecrovv/game"
)

// Result is the record one finished game leaves behind.
type Result struct {
	Seed    uint64
	Winner  int
	Starter int
	Bot     string
	VPs     []int
	Rounds  int
	Events  []eventlog.Event
}

// BotLabel names the configured policy for logs and summaries.
func BotLabel(cfg *config.Config) string {
	if cfg.Bot == "mcts" {
		return fmt.Sprintf("mcts@%dx%d", cfg.Rollouts, cfg.Horizon)
	}
	return "greedy"
}

// RunMany plays cfg.Games full games, varying the seed and rotating
// the starting seat per game so no seat gets a systematic edge.
func RunMany(cfg *config.Config, lib game.Library) []Result {
	results := make([]Result, 0, cfg.Games)
	for i := 0; i < cfg.Games; i++ {
		ci := *cfg
		ci.Seed = cfg.Seed + uint64(i)
		ci.StartOffset = i % cfg.Players
		results = append(results, PlayOne(&ci, lib))

		if cfg.ProgressEvery > 0 && (i+1)%cfg.ProgressEvery == 0 {
			log.Info().Msgf("finished %d/%d games", i+1, cfg.Games)
		}
	}
	return results
}

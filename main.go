package main

import (
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"scarecrovv/cards"
	"scarecrovv/config"
	"scarecrovv/engine"
	"scarecrovv/telemetry"
)

func main() {
	var (
		configPath = flag.String("config", "", "optional YAML config overlay")
		cardsPath  = flag.String("cards", "", "card definitions CSV (overrides config)")
		globals    = flag.String("globals", "", "global card definitions CSV (overrides config)")
		games      = flag.Int("games", 0, "number of games to run (overrides config)")
		seed       = flag.Uint64("seed", 0, "base RNG seed (overrides config)")
		bot        = flag.String("bot", "", "bot policy: greedy or mcts (overrides config)")
		outDir     = flag.String("out", "", "output directory for run artifacts (overrides config)")
		pretty     = flag.Bool("pretty", false, "human-readable console logging")
	)
	flag.Parse()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if *pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", *configPath).Msg("failed to load config")
		}
		cfg = loaded
	}
	if *cardsPath != "" {
		cfg.CardsCSV = *cardsPath
	}
	if *globals != "" {
		cfg.GlobalsCSV = *globals
	}
	if *games > 0 {
		cfg.Games = *games
	}
	if *seed > 0 {
		cfg.Seed = *seed
	}
	if *bot != "" {
		cfg.Bot = *bot
	}
	if *outDir != "" {
		cfg.OutDir = *outDir
	}

	lib, err := cards.Load(cfg.CardsCSV)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load card library")
	}
	if cfg.GlobalsCSV != "" {
		globalLib, err := cards.LoadGlobals(cfg.GlobalsCSV)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load global cards")
		}
		lib = cards.Merge(lib, globalLib)
	}

	log.Info().
		Uint64("seed", cfg.Seed).
		Int("games", cfg.Games).
		Int("players", cfg.Players).
		Str("bot", engine.BotLabel(cfg)).
		Int("cards", len(lib)).
		Msg("starting batch run")

	start := time.Now()
	results := engine.RunMany(cfg, lib)

	winCounts := map[int]int{}
	for _, r := range results {
		winCounts[r.Winner]++
	}
	log.Info().
		Dur("elapsed", time.Since(start)).
		Interface("winner_counts", winCounts).
		Msg("batch finished")

	w, err := telemetry.NewWriter(cfg.OutDir)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create run directory")
	}
	if err := w.WriteAll(cfg, results); err != nil {
		log.Fatal().Err(err).Msg("failed to write summaries")
	}
	log.Info().Str("run_id", w.RunID).Str("dir", w.BaseDir).Msg("wrote run artifacts")
}

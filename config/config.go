package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CostSpec describes a play cost in config terms: a fixed part plus an
// optional "pay exactly one of" resource set.
type CostSpec struct {
	Fixed map[string]int `yaml:"fixed"`
	OneOf []string       `yaml:"one_of"`
}

// Config is the full knob surface of the simulator. Zero values are
// filled by Default; YAML files and CLI flags overlay it.
type Config struct {
	Seed  uint64 `yaml:"seed"`
	Games int    `yaml:"games"`

	Players         int `yaml:"players"`
	VictoryVP       int `yaml:"victory_vp"`
	HandSize        int `yaml:"hand_size"`
	CopiesPerUnique int `yaml:"copies_per_unique"`
	WorkersPerRound int `yaml:"workers_per_round"`
	ActionsPerTurn  int `yaml:"actions_per_turn"`
	PoolSize        int `yaml:"pool_size"`
	StartOffset     int `yaml:"start_offset"`

	// PoolBuyCostOverride forces every market buy to a flat plasma cost
	// so the card CSV stays flexible during balance passes. 0 means use
	// each card's printed buy cost.
	PoolBuyCostOverride int `yaml:"pool_buy_cost_override"`

	// VP piles: which denominations exist, what they cost to buy
	// (plasma only) and what they cost to play.
	VPDenoms    []int            `yaml:"vp_denoms"`
	VPBuyCost   map[int]int      `yaml:"vp_buy_cost"`
	VPPlayCost  map[int]CostSpec `yaml:"vp_play_cost"`

	// Bot selection and search budgets.
	Bot            string  `yaml:"bot"` // "greedy" or "mcts"
	Rollouts       int     `yaml:"rollouts"`
	Horizon        int     `yaml:"horizon"`
	MCTSActionsCap int     `yaml:"mcts_actions_cap"` // 0 = unlimited expansions
	MCTSTimeMS     int     `yaml:"mcts_time_ms"`     // 0 = no time cap
	Explore        float64 `yaml:"explore"`

	// Value shaping for the greedy heuristic.
	VPUrgencyTurn      int     `yaml:"vp_urgency_turn"`
	VPWeight           float64 `yaml:"vp_weight"`
	LateRoundThreshold int     `yaml:"late_round_threshold"`
	LateGameTurn       int     `yaml:"late_game_turn"`
	BigHandThreshold   int     `yaml:"big_hand_threshold"`
	InitiativeBias     float64 `yaml:"initiative_bias"`

	// Safety limits.
	RoundCap  int `yaml:"round_cap"`
	ActionCap int `yaml:"action_cap"`

	// I/O surface.
	CardsCSV      string `yaml:"cards_csv"`
	GlobalsCSV    string `yaml:"globals_csv"`
	OutDir        string `yaml:"out_dir"`
	ProgressEvery int    `yaml:"progress_every"`
}

// Default returns the reference configuration: a 3-player race to 24 VP
// with the stock VP pile pricing.
func Default() *Config {
	return &Config{
		Seed:                42,
		Games:               25,
		Players:             3,
		VictoryVP:           24,
		HandSize:            5,
		CopiesPerUnique:     2,
		WorkersPerRound:     2,
		ActionsPerTurn:      2,
		PoolSize:            10,
		PoolBuyCostOverride: 1,
		VPDenoms:            []int{1, 3},
		VPBuyCost:           map[int]int{1: 1, 3: 2},
		VPPlayCost: map[int]CostSpec{
			1: {
				Fixed: map[string]int{"plasma": 1, "shards": 1},
				OneOf: []string{"plasma", "shards", "ash", "nut", "berry", "mushroom"},
			},
			3: {
				Fixed: map[string]int{
					"plasma": 1, "ash": 1, "shards": 1,
					"nut": 1, "berry": 1, "mushroom": 1,
				},
			},
		},
		Bot:                "greedy",
		Rollouts:           8,
		Horizon:            3,
		Explore:            0.10,
		VPUrgencyTurn:      10,
		VPWeight:           0.35,
		LateRoundThreshold: 6,
		LateGameTurn:       150,
		BigHandThreshold:   6,
		InitiativeBias:     1.0,
		RoundCap:           200,
		ActionCap:          5000,
		CardsCSV:           "data/cards.csv",
		GlobalsCSV:         "data/globals.csv",
		OutDir:             "summaries",
		ProgressEvery:      5,
	}
}

// Load overlays a YAML file onto the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// WithSeed returns a shallow copy with a different seed, used by the
// batch runner to vary seeds across games.
func (c *Config) WithSeed(seed uint64) *Config {
	out := *c
	out.Seed = seed
	return &out
}

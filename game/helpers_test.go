package game

import (
	"scarecrovv/config"
)

// testLibrary builds a small fixed card set covering every effect the
// engine dispatches on.
func testLibrary() Library {
	lib := Library{}
	add := func(c *Card) {
		c.Effects = ParseEffects(c.EffectText)
		lib[c.ID] = c
	}

	add(&Card{
		ID: "crow", Name: "Crow", BuyCost: 2,
		PlayCost: Cost{Plasma: 1},
		Type:     TypeCritter, Domain: "magic",
		MatPoints: 1, CanPlayOnMat: true,
		EffectText: "draw:1",
	})
	add(&Card{
		ID: "toad", Name: "Toad", BuyCost: 2,
		PlayCost: Cost{Ash: 2},
		Type:     TypeCritter, Domain: "slime",
		MatPoints: 1, CanPlayOnMat: true,
		EffectText: "if_composted_gain:ash:2",
	})
	add(&Card{
		ID: "barn", Name: "Barn", BuyCost: 3,
		PlayCost: Cost{Plasma: 2},
		Type:     TypeFarm, Domain: "None",
		MatPoints: 2, CanPlayOnMat: true,
	})
	add(&Card{
		ID: "weed", Name: "Weed", BuyCost: 1,
		PlayCost: Cost{},
		Type:     TypeWild, Domain: "slime",
		CanPlayOnMat: true,
		EffectText:   "self_vp:1",
	})
	add(&Card{
		ID: "owl", Name: "Owl", BuyCost: 2,
		PlayCost: Cost{Plasma: 1},
		Type:     TypeCritter, Domain: "radioactive",
		CanPlayOnMat: true,
		EffectText:   "self_peek2_keep1",
	})
	add(&Card{
		ID: "gl_feast", Name: "Feast", BuyCost: 2,
		PlayCost: Cost{Plasma: 1},
		Type:     TypeGlobal, Domain: "None",
		EffectText: "forage_yield_bonus_this_round:+1",
	})
	add(&Card{
		ID: "gl_blight", Name: "Blight", BuyCost: 2,
		PlayCost: Cost{Plasma: 1},
		Type:     TypeGlobal, Domain: "None",
		EffectText: "end_round_all_compost:1",
	})
	add(&Card{
		ID: "gl_decree", Name: "Decree", BuyCost: 2,
		PlayCost: Cost{Plasma: 1},
		Type:     TypeGlobal, Domain: "None",
		EffectText: "first_to_play_three_domains:+2vp",
	})
	return lib
}

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Games = 1
	cfg.Explore = 0 // deterministic policies in tests
	return cfg
}

// testState sets up a fresh 3-player game on the test library.
func testState() *GameState {
	return Setup(testConfig(), testLibrary())
}

package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseEffects(t *testing.T) {
	t.Run("multi-tag string", func(t *testing.T) {
		got := ParseEffects("draw:1;if_composted_gain:ash:2")
		require.Len(t, got, 2)
		require.Equal(t, Effect{Kind: EffectDraw, N: 1}, got[0])
		require.Equal(t, Effect{Kind: EffectOnCompostGain, N: 2, Resource: Ash}, got[1])
	})

	t.Run("on_compost alias", func(t *testing.T) {
		got := ParseEffects("on_compost:shards:1")
		require.Len(t, got, 1)
		require.Equal(t, EffectOnCompostGain, got[0].Kind)
		require.Equal(t, Shards, got[0].Resource)
	})

	t.Run("signed amounts", func(t *testing.T) {
		up := ParseEffects("hand_size_delta_next_round:+1")
		require.Equal(t, 1, up[0].N)
		down := ParseEffects("hand_size_delta_next_round:-1")
		require.Equal(t, -1, down[0].N)
	})

	t.Run("unknown and malformed tags are dropped", func(t *testing.T) {
		require.Empty(t, ParseEffects("frobnicate:3"))
		require.Empty(t, ParseEffects("draw:x"))
		require.Empty(t, ParseEffects("if_composted_gain:gold:2"))
		require.Empty(t, ParseEffects(""))
	})

	t.Run("global tags", func(t *testing.T) {
		require.Equal(t, EffectForageBonus, ParseEffects("forage_yield_bonus_this_round:+1")[0].Kind)
		require.Equal(t, EffectBlight, ParseEffects("end_round_all_compost:1")[0].Kind)
		require.Equal(t, EffectDecreeRule, ParseEffects("first_to_play_three_domains:+2vp")[0].Kind)
	})
}

func TestResolveEffects(t *testing.T) {
	t.Run("draw pulls from the deck", func(t *testing.T) {
		g := testState()
		p := g.Players[0]
		p.Hand = nil
		p.Deck = []string{ResToken(Plasma), ResToken(Ash)}

		g.resolveEffects(0, g.Cards["crow"])

		require.Len(t, p.Hand, 1)
		require.Len(t, p.Deck, 1)
	})

	t.Run("draw reshuffles discard when the deck runs dry", func(t *testing.T) {
		g := testState()
		p := g.Players[0]
		p.Hand = nil
		p.Deck = nil
		p.Discard = []string{ResToken(Plasma), ResToken(Ash)}

		g.Draw(p, 2)

		require.Len(t, p.Hand, 2)
		require.Empty(t, p.Discard)
	})

	t.Run("peek2keep1 keeps a library card over a token", func(t *testing.T) {
		g := testState()
		p := g.Players[0]
		p.Hand = nil
		// Deck draws from the end.
		p.Deck = []string{"barn", ResToken(Plasma)}

		g.resolveEffects(0, g.Cards["owl"])

		require.Equal(t, []string{"barn"}, p.Hand)
		require.Contains(t, p.Discard, ResToken(Plasma))
	})

	t.Run("forage bonus raises yield and capacity", func(t *testing.T) {
		g := testState()
		g.resolveEffects(0, g.Cards["gl_feast"])
		require.Equal(t, 1, g.ForageBonus)
		require.Greater(t, g.FieldCapacity(FieldForage), 2,
			"Bonus lifts the forage capacity")

		p := g.Players[0]
		p.Workers = 1
		total := func() int {
			n := 0
			for _, r := range ForageResources {
				n += p.Resources[r]
			}
			return n
		}
		before := total()
		g.Apply(0, Action{Kind: ActionWorker, Field: FieldForage})
		require.Equal(t, before+2, total(), "One base unit plus one bonus unit")
	})

	t.Run("blight flag set by its global", func(t *testing.T) {
		g := testState()
		g.resolveEffects(0, g.Cards["gl_blight"])
		require.True(t, g.Blight)
	})

	t.Run("decree rule switches on without claiming", func(t *testing.T) {
		g := testState()
		g.resolveEffects(0, g.Cards["gl_decree"])
		require.True(t, g.DecreeEnabled)
		require.False(t, g.DecreeClaimed)
	})
}

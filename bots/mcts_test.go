package bots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"scarecrovv/game"
)

func TestMCTSOptions(t *testing.T) {
	m := NewMCTS(WithRollouts(4), WithHorizon(2), WithActionsCap(100), WithTimeBudgetMS(50))
	require.Equal(t, 4, m.rollouts)
	require.Equal(t, 2, m.horizon)
	require.Equal(t, 100, m.actionsCap)
	require.Equal(t, 50*time.Millisecond, m.timeBudget)

	t.Run("defaults survive zero options", func(t *testing.T) {
		m := NewMCTS(WithRollouts(0), WithHorizon(0))
		require.Equal(t, 8, m.rollouts)
		require.Equal(t, 3, m.horizon)
	})
}

func TestMCTSShortCircuit(t *testing.T) {
	g := game.Setup(testConfig(), testLibrary())
	p := g.Players[0]
	// Exactly one non-pass action: a single resource token play. An
	// ash token funds nothing else, so no buy becomes affordable.
	p.Hand = []string{game.ResToken(game.Ash)}
	p.Deck = nil
	p.Workers = 0
	p.Resources = game.Cost{}
	g.Pool = nil
	g.Supply = nil

	m := NewMCTS(WithRollouts(1), WithHorizon(1))
	stateBefore := len(g.Log.Records)

	a, explored := m.ChooseAction(g, 0)

	require.False(t, explored)
	require.Equal(t, game.ActionPlay, a.Kind, "The single real action returns directly")
	require.Equal(t, stateBefore, len(g.Log.Records), "No rollout touched the root state")
	require.Equal(t, []string{game.ResToken(game.Ash)}, p.Hand, "Root state untouched")
}

func TestMCTSSearch(t *testing.T) {
	t.Run("chooses a legal action", func(t *testing.T) {
		g := game.Setup(testConfig(), testLibrary())
		g.StartOfRound()
		m := NewMCTS(WithRollouts(2), WithHorizon(2))

		a, _ := m.ChooseAction(g, g.Current)
		require.Contains(t, g.LegalActions(g.Current), a)
	})

	t.Run("prefers the winning play", func(t *testing.T) {
		cfg := testConfig()
		cfg.VictoryVP = 3
		g := game.Setup(cfg, testLibrary())
		g.StartOfRound()

		p := g.Players[0]
		p.VP = 2
		p.Hand = []string{game.VPToken(1), game.ResToken(game.Ash)}
		p.Resources = game.Cost{game.Plasma: 3, game.Shards: 3}

		m := NewMCTS(WithRollouts(4), WithHorizon(3))
		a, _ := m.ChooseAction(g, 0)

		require.Equal(t, game.ActionPlay, a.Kind)
		require.Equal(t, 0, a.Hand, "The immediate win dominates all rollouts")
	})

	t.Run("search leaves the root state alone", func(t *testing.T) {
		g := game.Setup(testConfig(), testLibrary())
		g.StartOfRound()
		vps := append([]int(nil), g.VPs()...)
		hand := append([]string(nil), g.Players[g.Current].Hand...)

		m := NewMCTS(WithRollouts(3), WithHorizon(3))
		m.ChooseAction(g, g.Current)

		require.Equal(t, vps, g.VPs())
		require.Equal(t, hand, g.Players[g.Current].Hand)
	})
}

package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMixedPayment(t *testing.T) {
	t.Run("counts pool counters and hand tokens together", func(t *testing.T) {
		p := NewPlayer(0)
		p.Resources[Plasma] = 1
		p.Hand = []string{ResToken(Plasma), ResToken(Plasma), "crow"}

		require.Equal(t, 3, Available(p, Plasma))
		require.True(t, CanPayMixed(p, Cost{Plasma: 3}))
		require.False(t, CanPayMixed(p, Cost{Plasma: 4}))
	})

	t.Run("prefers hand tokens and removes them from the game", func(t *testing.T) {
		p := NewPlayer(0)
		p.Resources[Plasma] = 2
		p.Hand = []string{ResToken(Plasma), "crow"}

		PayMixed(p, Cost{Plasma: 2}, true)

		require.Equal(t, []string{"crow"}, p.Hand, "Token should leave the hand")
		require.Empty(t, p.Discard, "Spent tokens are removed, not discarded")
		require.Equal(t, 1, p.Resources[Plasma], "Counters cover the remainder")
	})

	t.Run("multi-resource costs check every kind", func(t *testing.T) {
		p := NewPlayer(0)
		p.Resources[Plasma] = 1
		p.Resources[Ash] = 1

		require.True(t, CanPayMixed(p, Cost{Plasma: 1, Ash: 1}))
		require.False(t, CanPayMixed(p, Cost{Plasma: 1, Ash: 2}))
	})
}

func TestChoiceCost(t *testing.T) {
	t.Run("needs the fixed part plus one of the choices", func(t *testing.T) {
		p := NewPlayer(0)
		p.Resources[Plasma] = 1
		p.Resources[Shards] = 1

		cost := ChoiceCost{
			Fixed: Cost{Plasma: 1, Shards: 1},
			OneOf: []Resource{Nut, Berry},
		}
		require.False(t, CanPayChoice(p, cost), "No choice resource on hand")

		p.Resources[Berry] = 1
		require.True(t, CanPayChoice(p, cost))

		require.True(t, PayChoice(p, cost, true))
		require.Equal(t, 0, p.Resources[Plasma])
		require.Equal(t, 0, p.Resources[Shards])
		require.Equal(t, 0, p.Resources[Berry])
	})

	t.Run("fixed overlap with choice needs both covered", func(t *testing.T) {
		p := NewPlayer(0)
		p.Resources[Plasma] = 1

		cost := ChoiceCost{
			Fixed: Cost{Plasma: 1},
			OneOf: []Resource{Plasma, Ash},
		}
		require.False(t, CanPayChoice(p, cost), "One plasma cannot cover fixed and choice")

		p.Resources[Plasma] = 2
		require.True(t, CanPayChoice(p, cost))
	})
}

func TestDiscounts(t *testing.T) {
	lib := testLibrary()

	t.Run("matching mat slots grant at most one unit", func(t *testing.T) {
		p := NewPlayer(0)
		crow := lib["crow"]
		require.Equal(t, 0, DiscountFor(p, crow))

		p.Mat[4] = "toad" // critter slot
		require.Equal(t, 1, DiscountFor(p, crow))

		// Slot 2 tuned to the same type must not stack past 1.
		p.Mat[2] = "barn"
		p.Slot2Type = TypeCritter
		require.Equal(t, 1, DiscountFor(p, crow))
	})

	t.Run("globals never get discounts", func(t *testing.T) {
		p := NewPlayer(0)
		p.Mat[4] = "toad"
		p.Slot2Type = TypeGlobal
		require.Equal(t, 0, DiscountFor(p, lib["gl_feast"]))
	})

	t.Run("discount never drives a cost negative", func(t *testing.T) {
		c := lib["weed"] // free to play
		got := DiscountedCost(c, 1)
		for _, v := range got {
			require.GreaterOrEqual(t, v, 0)
		}
		require.Equal(t, 0, got.Total())
	})

	t.Run("discount removes exactly one unit", func(t *testing.T) {
		c := lib["barn"] // plasma:2
		got := DiscountedCost(c, 1)
		require.Equal(t, 1, got.Total(), "One unit off regardless of conditions met")
	})
}

package cards

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"scarecrovv/game"
)

func TestLoad(t *testing.T) {
	lib, err := Load(filepath.Join("testdata", "cards.csv"))
	require.NoError(t, err)
	require.Len(t, lib, 4)

	t.Run("columns map onto the card", func(t *testing.T) {
		c := lib["crow"]
		require.Equal(t, "Crow", c.Name)
		require.Equal(t, 2, c.BuyCost)
		require.Equal(t, game.Cost{game.Plasma: 1}, c.PlayCost)
		require.Equal(t, game.TypeCritter, c.Type)
		require.Equal(t, "magic", c.Domain)
		require.Equal(t, 1, c.MatPoints)
		require.True(t, c.CanPlayOnMat)
	})

	t.Run("effects parse at load time", func(t *testing.T) {
		require.Equal(t, []game.Effect{{Kind: game.EffectDraw, N: 1}}, lib["crow"].Effects)
		require.Equal(t, game.EffectOnCompostGain, lib["toad"].Effects[0].Kind)
	})

	t.Run("zero-cost entries are dropped, not stored", func(t *testing.T) {
		require.Empty(t, lib["weed"].PlayCost)
	})

	t.Run("missing optionals fall back", func(t *testing.T) {
		c := lib["barn"]
		require.Equal(t, "None", c.Domain)
		require.True(t, c.CanPlayOnMat, "can_play_on_mat defaults to true")

		require.Equal(t, 2, lib["weed"].BuyCost, "buy cost defaults to 2")
		require.False(t, lib["weed"].CanPlayOnMat)
	})

	t.Run("truthy spellings for booleans", func(t *testing.T) {
		require.True(t, lib["toad"].CanPlayOnMat, "yes counts as true")
	})
}

func TestLoadGlobals(t *testing.T) {
	lib, err := LoadGlobals(filepath.Join("testdata", "globals.csv"))
	require.NoError(t, err)
	require.Len(t, lib, 2)

	for id, c := range lib {
		require.Equal(t, game.TypeGlobal, c.Type, "%s forced to Global", id)
		require.Equal(t, "None", c.Domain)
		require.False(t, c.CanPlayOnMat)
		require.Equal(t, 0, c.MatPoints)
	}
	require.Equal(t, game.Cost{game.Plasma: 1}, lib["gl_feast"].PlayCost,
		"Globals keep their costs")
	require.Equal(t, game.EffectForageBonus, lib["gl_feast"].Effects[0].Kind)
}

func TestMerge(t *testing.T) {
	a, err := Load(filepath.Join("testdata", "cards.csv"))
	require.NoError(t, err)
	b, err := LoadGlobals(filepath.Join("testdata", "globals.csv"))
	require.NoError(t, err)

	merged := Merge(a, b)
	require.Len(t, merged, 6)
	require.Contains(t, merged, "crow")
	require.Contains(t, merged, "gl_blight")
}

func TestParseCSVEdgeCases(t *testing.T) {
	t.Run("empty input yields no rows", func(t *testing.T) {
		rows, err := parseCSV(strings.NewReader(""))
		require.NoError(t, err)
		require.Empty(t, rows)
	})

	t.Run("missing id is an error", func(t *testing.T) {
		_, err := cardFromRow(map[string]string{"name": "anonymous"})
		require.Error(t, err)
	})

	t.Run("headers and values are trimmed", func(t *testing.T) {
		rows, err := parseCSV(strings.NewReader("id , name\nx1, Spaced \n"))
		require.NoError(t, err)
		require.Equal(t, "Spaced", rows[0]["name"])
		require.Equal(t, "x1", rows[0]["id"])
	})
}

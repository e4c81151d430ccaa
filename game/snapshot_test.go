package game

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestZoneSnapshotRoundTrip(t *testing.T) {
	g := testState()
	p := g.Players[0]
	p.Hand = []string{"crow", VPToken(1)}
	p.Discard = []string{ResToken(Plasma)}
	p.Mat[2] = "barn"

	snap := g.SnapshotZones(0)

	data, err := json.Marshal(snap)
	require.NoError(t, err)
	var back ZoneSnapshot
	require.NoError(t, json.Unmarshal(data, &back))

	// Wipe and restore through the serialized form.
	p.Deck, p.Hand, p.Discard = nil, nil, nil
	p.Mat = map[int]string{}
	g.RestoreZones(0, back)

	require.Equal(t, snap.Deck, p.Deck)
	require.Equal(t, []string{"crow", VPToken(1)}, p.Hand)
	require.Equal(t, []string{ResToken(Plasma)}, p.Discard)
	require.Equal(t, "barn", p.Mat[2])
}

func TestSnapshotIsDetached(t *testing.T) {
	g := testState()
	snap := g.SnapshotZones(1)
	snap.Hand = append(snap.Hand, "barn")
	require.NotContains(t, g.Players[1].Hand, "barn")
}

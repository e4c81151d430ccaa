package eventlog

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLog(t *testing.T) {
	t.Run("emit appends in order", func(t *testing.T) {
		l := New()
		l.Emit(Event{A: KindGameStart, P: NoPlayer})
		l.Emit(Event{A: KindPass, P: 1})

		require.Len(t, l.Records, 2)
		require.Equal(t, KindGameStart, l.Records[0].A)
		require.Equal(t, KindPass, l.Records[1].A)
	})

	t.Run("suppressed log drops everything", func(t *testing.T) {
		l := New()
		l.Suppress = true
		l.Emit(Event{A: KindPass, P: 0})
		require.Empty(t, l.Records)
	})

	t.Run("OfKind filters", func(t *testing.T) {
		l := New()
		l.Emit(Event{A: KindPass, P: 0})
		l.Emit(Event{A: KindBuy, P: 1, Cid: "crow"})
		l.Emit(Event{A: KindPass, P: 2})

		passes := l.OfKind(KindPass)
		require.Len(t, passes, 2)
		require.Equal(t, 2, passes[1].P)
	})
}

func TestWriteJSONL(t *testing.T) {
	events := []Event{
		{A: KindGameStart, P: NoPlayer, Seed: 42, Start: 1},
		{A: KindBuy, T: 3, P: 0, Cid: "crow", Name: "Crow", Cost: 2},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteJSONL(&buf, events))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	require.Contains(t, lines[0], `"a":"game_start"`)
	require.Contains(t, lines[0], `"seed":42`)
	require.Contains(t, lines[1], `"cid":"crow"`)

	t.Run("unset optional fields stay off the wire", func(t *testing.T) {
		require.NotContains(t, lines[1], "winner")
		require.NotContains(t, lines[1], "grants")
	})

	t.Run("identical events serialize identically", func(t *testing.T) {
		var again bytes.Buffer
		require.NoError(t, WriteJSONL(&again, events))
		require.Equal(t, buf.String(), again.String())
	})
}

package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsePos(t *testing.T) {
	t.Run("valid coordinates", func(t *testing.T) {
		p, err := ParsePos("d3")
		require.NoError(t, err)
		require.Equal(t, Pos{Row: 2, Col: 3}, p)
		require.Equal(t, "d3", p.String())

		p, err = ParsePos(" H8 ")
		require.NoError(t, err)
		require.Equal(t, Pos{Row: 7, Col: 7}, p)
	})

	t.Run("invalid coordinates", func(t *testing.T) {
		for _, s := range []string{"", "d", "d33", "i1", "a9", "a0"} {
			_, err := ParsePos(s)
			require.Error(t, err, "Should reject %q", s)
		}
	})
}

func TestParseBoard(t *testing.T) {
	t.Run("round trip of the opening", func(t *testing.T) {
		b := NewBoard()
		parsed, err := ParseBoard(b.String())
		require.NoError(t, err)
		require.Equal(t, b, parsed)
	})

	t.Run("rejects short boards", func(t *testing.T) {
		_, err := ParseBoard("........\n........")
		require.ErrorContains(t, err, "got 2 rows")
	})

	t.Run("rejects unknown cells", func(t *testing.T) {
		b := NewBoard()
		text := "Z" + b.String()[1:]
		_, err := ParseBoard(text)
		require.ErrorContains(t, err, "line 1")
	})

	t.Run("rejects long rows", func(t *testing.T) {
		b := NewBoard()
		text := "........." + b.String()[8:]
		_, err := ParseBoard(text)
		require.Error(t, err)
	})
}

func TestParseStone(t *testing.T) {
	for _, s := range []Stone{First, Second} {
		got, err := ParseStone(s.String())
		require.NoError(t, err)
		require.Equal(t, s, got)
	}

	_, err := ParseStone("empty")
	require.Error(t, err, "Empty is not a player color")
}

package console

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"othello/engine"
	"othello/game"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		line string
		want engine.Command
	}{
		{"pass", engine.Command{Kind: engine.Pass}},
		{" P ", engine.Command{Kind: engine.Pass}},
		{"reset", engine.Command{Kind: engine.Reset}},
		{"quit", engine.Command{Kind: engine.Quit}},
		{"e3", engine.Command{Kind: engine.Place, Pos: game.Pos{Row: 2, Col: 4}}},
		{"A1", engine.Command{Kind: engine.Place, Pos: game.Pos{Row: 0, Col: 0}}},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := ParseCommand(tt.line)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}

	t.Run("unknown input", func(t *testing.T) {
		got, err := ParseCommand("z9")
		require.Error(t, err)
		require.Equal(t, engine.Unknown, got.Kind)
		require.Equal(t, "z9", got.Text)
	})
}

func TestReadCommands(t *testing.T) {
	input := strings.NewReader("e3\n\nbogus\npass\n")
	var got []engine.Command
	for cmd := range ReadCommands(context.Background(), input) {
		got = append(got, cmd)
	}

	require.Len(t, got, 3, "Blank lines should be skipped")
	require.Equal(t, engine.Place, got[0].Kind)
	require.Equal(t, engine.Unknown, got[1].Kind)
	require.Equal(t, engine.Pass, got[2].Kind)
}

func TestFrame(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, WithProfile(termenv.Ascii))
	board := game.NewBoard()

	t.Run("human turn shows hints", func(t *testing.T) {
		frame := r.Frame(engine.View{
			Board: board,
			Turn:  game.First,
			Human: game.First,
			Hints: board.LegalMoves(game.First),
		})
		lines := strings.Split(frame, "\n")
		require.Equal(t, "   a b c d e f g h", lines[0])
		require.Equal(t, "3  . . . . * . . . ", lines[3], "e3 should be marked as a hint")
		require.Equal(t, "4  . . . O X * . . ", lines[4])
		require.Contains(t, frame, "O you 2  X agent 2")
		require.Contains(t, frame, "your move (e.g. e3)")
	})

	t.Run("agent thinking", func(t *testing.T) {
		frame := r.Frame(engine.View{Board: board, Turn: game.Second, Human: game.First, Thinking: true})
		require.Contains(t, frame, "thinking…")
		require.NotContains(t, frame, "*", "Hints belong to the human's turn only")
	})

	t.Run("pass required", func(t *testing.T) {
		frame := r.Frame(engine.View{Board: board, Turn: game.First, Human: game.First, CanPass: true})
		require.Contains(t, frame, "type pass")
	})

	t.Run("game over", func(t *testing.T) {
		frame := r.Frame(engine.View{Board: board, Human: game.First, Over: true, Winner: game.Second, Message: "second plays h8"})
		require.Contains(t, frame, "agent wins")
		require.Contains(t, frame, "second plays h8")
	})

	t.Run("render writes the frame", func(t *testing.T) {
		buf.Reset()
		v := engine.View{Board: board, Turn: game.Second, Human: game.First}
		require.NoError(t, r.Render(v))
		require.Equal(t, r.Frame(v), buf.String())
	})
}

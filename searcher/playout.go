package searcher

import (
	"othello/game"

	"golang.org/x/exp/rand"
)

// Playout plays uniformly random moves from board, starting with start,
// until both colors pass in a row, one color is wiped out, or the board is
// full. board is taken by value and never modified.
func Playout(board game.Board, start game.Stone, rng *rand.Rand) game.Board {
	color := start
	passes := 0
	for passes < 2 && !board.Full() && board.Count(game.First) > 0 && board.Count(game.Second) > 0 {
		moves := board.LegalMoves(color)
		if len(moves) == 0 {
			passes++
		} else {
			passes = 0
			move := moves[rng.Intn(len(moves))] // Random rollout policy
			board.Apply(color, board.FlipSet(color, move, false))
		}
		color = color.Reverse()
	}
	return board
}

// Score rates a final board for perspective.
func Score(board game.Board, perspective game.Stone) float64 {
	switch board.Winner() {
	case perspective:
		return WIN
	case game.Empty:
		return DRAW
	default:
		return LOSS
	}
}

package agent

import (
	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"
)

type Agent interface {
	// FindMove returns the chosen move for color and performance metrics (if collected) from the search
	FindMove(board game.Board, color game.Stone) (searcher.Decision, metrics.SearchMetric)
}

package engine

import (
	"othello/experiments/metrics"
	"othello/game"
)

// MaxMoves bounds a game: every placement fills a cell and passes never
// repeat twice in a row.
const MaxMoves = 2*game.Size*game.Size + 1

type Engine interface {
	// Run plays a game till neither side can move or MaxMoves is reached
	Run() (winner game.Stone, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}

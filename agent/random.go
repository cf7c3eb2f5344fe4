package agent

import (
	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"
	"sync"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomAgent returns a baseline agent that plays a uniformly random legal move.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(board game.Board, color game.Stone) (searcher.Decision, metrics.SearchMetric) {
	moves := board.LegalMoves(color)
	if len(moves) == 0 {
		return searcher.Decision{Pass: true}, metrics.SearchMetric{}
	}

	a.mu.Lock()
	i := a.rng.Intn(len(moves))
	a.mu.Unlock()
	return searcher.Decision{Move: moves[i]}, metrics.SearchMetric{}
}

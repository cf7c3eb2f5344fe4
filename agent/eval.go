package agent

import (
	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"
)

type evaluationAgent struct {
	mcts *searcher.MCTS
}

// NewEvaluationAgent returns an agent that plays the robust child of an MCTS search.
func NewEvaluationAgent(mcts *searcher.MCTS) Agent {
	return evaluationAgent{mcts: mcts}
}

func (a evaluationAgent) FindMove(board game.Board, color game.Stone) (searcher.Decision, metrics.SearchMetric) {
	return a.mcts.FindMove(board, color)
}

package searcher

import (
	"math"
	"othello/game"
)

// Hyperparameters for MCTS

const Exploration = math.Pi // UCB1 exploration constant

// Rewards from the searching color's perspective
const WIN = 1.0
const LOSS = 0.0
const DRAW = (WIN + LOSS) / 2

// Decision is the outcome of one search. Pass is set when the color had no
// legal move, in which case Move is meaningless.
type Decision struct {
	Move game.Pos
	Pass bool
}

func (d Decision) String() string {
	if d.Pass {
		return "pass"
	}
	return d.Move.String()
}

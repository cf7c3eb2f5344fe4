package searcher

import (
	"math"
	"othello/experiments/metrics"
	"othello/game"
	"othello/utils"

	"golang.org/x/exp/rand"
)

// Tree is the arena of one search run. Nodes are appended by expansion and
// never removed; parent and child links are indices into the arena.
type Tree struct {
	nodes       []node
	perspective game.Stone
	exploration float64
}

func newTree(board game.Board, color game.Stone, exploration float64) *Tree {
	root := node{
		board:      board,
		parent:     nilNode,
		color:      color.Reverse(),
		unexpanded: board.LegalMoves(color),
	}
	return &Tree{
		nodes:       []node{root},
		perspective: color,
		exploration: exploration,
	}
}

func (t *Tree) Root() NodeID {
	return rootID
}

func (t *Tree) Len() int {
	return len(t.nodes)
}

// Perspective returns the color the search is choosing a move for.
func (t *Tree) Perspective() game.Stone {
	return t.perspective
}

func (t *Tree) Stats(id NodeID) NodeStats {
	return t.nodes[id].stats(id)
}

func (t *Tree) Children(id NodeID) []NodeID {
	return append([]NodeID(nil), t.nodes[id].children...)
}

// Board returns a copy of the position at id.
func (t *Tree) Board(id NodeID) game.Board {
	return t.nodes[id].board
}

func (t *Tree) iterate(rng *rand.Rand, collector metrics.Collector) {
	leaf := t.selectLeaf()
	leaf = t.expand(leaf, rng)
	final := Playout(t.nodes[leaf].board, t.nodes[leaf].color.Reverse(), rng)
	if final.Full() {
		collector.AddFullPlayout()
	}
	t.backup(leaf, Score(final, t.perspective))
}

// selectLeaf descends through fully expanded nodes by UCB1.
func (t *Tree) selectLeaf() NodeID {
	id := rootID
	for len(t.nodes[id].unexpanded) == 0 && len(t.nodes[id].children) > 0 {
		id = t.pickChild(id)
	}
	return id
}

func (t *Tree) pickChild(id NodeID) NodeID {
	parent := &t.nodes[id]
	if parent.visits == 0 {
		panic("node has children but no visits")
	}
	policy := newUCT(t.exploration, float64(parent.visits))

	best := nilNode
	maxScore := math.Inf(-1)
	for _, c := range parent.children {
		child := &t.nodes[c]
		if score := policy.evaluate(child.wins, float64(child.visits)); score > maxScore {
			maxScore = score
			best = c
		}
	}
	return best
}

// expand adds one random unexpanded move of id as a new child. Nodes with
// nothing left to expand are returned unchanged.
func (t *Tree) expand(id NodeID, rng *rand.Rand) NodeID {
	parent := &t.nodes[id]
	if len(parent.unexpanded) == 0 {
		return id
	}

	i := rng.Intn(len(parent.unexpanded))
	move := parent.unexpanded[i]
	parent.unexpanded = utils.RemoveAt(parent.unexpanded, i)

	mover := parent.color.Reverse()
	board := parent.board
	board.Apply(mover, board.FlipSet(mover, move, false))

	childID := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, node{
		board:      board,
		parent:     id,
		color:      mover,
		move:       move,
		unexpanded: board.LegalMoves(mover.Reverse()),
	})
	t.nodes[id].children = append(t.nodes[id].children, childID)
	return childID
}

func (t *Tree) backup(id NodeID, score float64) {
	for id != nilNode {
		id = t.nodes[id].update(score)
	}
}

// bestMove returns the move of the most visited root child, the first one
// on ties.
func (t *Tree) bestMove() (game.Pos, bool) {
	root := &t.nodes[rootID]
	if len(root.children) == 0 {
		return game.Pos{}, false
	}

	best := root.children[0]
	for _, c := range root.children[1:] {
		if t.nodes[c].visits > t.nodes[best].visits {
			best = c
		}
	}
	return t.nodes[best].move, true
}

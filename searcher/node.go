package searcher

import "othello/game"

// NodeID addresses a node inside a Tree.
type NodeID int

const (
	nilNode NodeID = -1
	rootID  NodeID = 0
)

type node struct {
	board      game.Board
	parent     NodeID
	color      game.Stone // mover that produced this position
	move       game.Pos   // move that led here, unset on the root
	children   []NodeID
	wins       float64
	visits     int
	unexpanded []game.Pos
}

// NodeStats is a read-only copy of a node's bookkeeping.
type NodeStats struct {
	ID         NodeID
	Parent     NodeID
	Color      game.Stone
	Move       game.Pos
	IsRoot     bool
	Wins       float64
	Visits     int
	Children   int
	Unexpanded int
}

func (n *node) stats(id NodeID) NodeStats {
	return NodeStats{
		ID:         id,
		Parent:     n.parent,
		Color:      n.color,
		Move:       n.move,
		IsRoot:     n.parent == nilNode,
		Wins:       n.wins,
		Visits:     n.visits,
		Children:   len(n.children),
		Unexpanded: len(n.unexpanded),
	}
}

func (n *node) update(score float64) NodeID {
	n.wins += score
	n.visits++
	return n.parent
}

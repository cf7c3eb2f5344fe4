package engine

import (
	"errors"
	"fmt"
	"othello/game"
	"othello/searcher"
)

var (
	ErrIllegalMove = errors.New("illegal move")
	ErrCannotPass  = errors.New("cannot pass while a move is available")
	ErrGameOver    = errors.New("game is over")
)

// Session is the live game: the only board that user input touches.
type Session struct {
	board  game.Board
	turn   game.Stone
	human  game.Stone
	moves  int
	passes int
}

// NewSession starts a game from the opening with First to move. human is
// the color driven by user input; the other color belongs to the agent.
func NewSession(human game.Stone) *Session {
	s := &Session{human: human}
	s.Reset()
	return s
}

func (s *Session) Reset() {
	s.board = game.NewBoard()
	s.turn = game.First
	s.moves = 0
	s.passes = 0
}

// Board returns a copy of the live board.
func (s *Session) Board() game.Board {
	return s.board
}

func (s *Session) Turn() game.Stone {
	return s.turn
}

func (s *Session) Human() game.Stone {
	return s.human
}

func (s *Session) Agent() game.Stone {
	return s.human.Reverse()
}

func (s *Session) HumanTurn() bool {
	return s.turn == s.human
}

func (s *Session) Moves() int {
	return s.moves
}

func (s *Session) Passes() int {
	return s.passes
}

func (s *Session) LegalMoves() []game.Pos {
	return s.board.LegalMoves(s.turn)
}

// Preview returns the cells pos would flip for the side to move.
func (s *Session) Preview(pos game.Pos) []game.Pos {
	return s.board.FlipSet(s.turn, pos, false)
}

// Play places a stone for the side to move and returns the flipped cells,
// the placed cell first.
func (s *Session) Play(pos game.Pos) ([]game.Pos, error) {
	if s.board.IsGameOver() {
		return nil, ErrGameOver
	}
	flips := s.board.FlipSet(s.turn, pos, false)
	if flips == nil {
		return nil, fmt.Errorf("%w: %v for %v", ErrIllegalMove, pos, s.turn)
	}
	s.board.Apply(s.turn, flips)
	s.turn = s.turn.Reverse()
	s.moves++
	return flips, nil
}

// Pass hands the turn over. It is only allowed when the side to move has
// no legal move and the game is not over.
func (s *Session) Pass() error {
	if s.board.IsGameOver() {
		return ErrGameOver
	}
	if !s.board.CanPass(s.turn) {
		return ErrCannotPass
	}
	s.turn = s.turn.Reverse()
	s.passes++
	return nil
}

// Apply plays a search decision.
func (s *Session) Apply(d searcher.Decision) error {
	if d.Pass {
		return s.Pass()
	}
	_, err := s.Play(d.Move)
	return err
}

// Over reports whether neither color can move. pending is set by callers
// that still have effects running for the last move; the result is not
// final until they finish.
func (s *Session) Over(pending bool) bool {
	return !pending && s.board.IsGameOver()
}

func (s *Session) Winner() game.Stone {
	return s.board.Winner()
}

package searcher

import (
	"othello/experiments/metrics"
	"othello/game"
	"othello/meta"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(mcts *MCTS)

// MCTS holds search settings only. Every search builds its own tree and
// random source, so one MCTS can be shared between goroutines.
type MCTS struct {
	iterations  int
	exploration float64
	seed        func() uint64
	collect     bool
}

func WithIterations(iterations int) Option {
	return func(m *MCTS) {
		if iterations > 0 {
			m.iterations = iterations
		}
	}
}

func WithExploration(c float64) Option {
	return func(m *MCTS) {
		if c > 0 {
			m.exploration = c
		}
	}
}

// WithSeed makes every search start from the same random state.
func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.seed = func() uint64 { return seed }
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.collect = true
	}
}

func NewMCTS(options ...Option) *MCTS {
	m := &MCTS{ // Default values
		iterations:  meta.MAX_TRY,
		exploration: Exploration,
		seed:        func() uint64 { return uint64(time.Now().UnixNano()) },
	}
	for _, option := range options {
		option(m)
	}
	return m
}

func (m *MCTS) Iterations() int {
	return m.iterations
}

// FindMove searches board for color and returns the most visited root move.
func (m *MCTS) FindMove(board game.Board, color game.Stone) (Decision, metrics.SearchMetric) {
	_, decision, metric := m.Search(board, color)
	return decision, metric
}

// Search is FindMove that also hands back the finished tree.
func (m *MCTS) Search(board game.Board, color game.Stone) (*Tree, Decision, metrics.SearchMetric) {
	collector := metrics.NewDummyCollector()
	if m.collect {
		collector = metrics.NewCollector()
	}
	start := time.Now()
	collector.Start(m.iterations, m.exploration)

	tree := newTree(board, color, m.exploration)
	if len(tree.nodes[rootID].unexpanded) == 0 {
		log.Debug().Stringer("color", color).Msg("no legal move, passing")
		return tree, Decision{Pass: true}, collector.Complete()
	}

	rng := rand.New(rand.NewSource(m.seed()))
	for range m.iterations {
		tree.iterate(rng, collector)
		collector.AddIteration()
	}
	collector.SetTreeSize(tree.Len())

	move, ok := tree.bestMove()
	if !ok {
		panic("root has legal moves but no children")
	}
	decision := Decision{Move: move}
	log.Debug().
		Stringer("color", color).
		Stringer("move", decision).
		Int("iterations", m.iterations).
		Int("nodes", tree.Len()).
		Dur("elapsed", time.Since(start)).
		Msg("search complete")
	return tree, decision, collector.Complete()
}

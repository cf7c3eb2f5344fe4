package metrics

import (
	"othello/game"
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Budget       int
	Iterations   int
	Exploration  float64
	Duration     time.Duration
	FullPlayouts int
	TreeSize     int
}

type MoveMetric struct {
	Step   int
	Player game.Stone
	Pass   bool
	SearchMetric
}

type GameMetric struct {
	StartingPlayer game.Stone
	Winner         game.Stone // Empty on a draw
	FirstStones    int
	SecondStones   int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	Passes         int
}

type Collector interface {
	Start(iterations int, exploration float64)
	SetTreeSize(size int)
	AddFullPlayout()
	AddIteration()
	Complete() SearchMetric
}

type collector struct {
	budget       int
	exploration  float64
	startTime    time.Time
	iterations   atomic.Int32
	fullPlayouts atomic.Int32
	treeSize     atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(iterations int, exploration float64) {
	m.startTime = time.Now()
	m.budget = iterations
	m.exploration = exploration
}

func (m *collector) SetTreeSize(size int) {
	m.treeSize.Store(int32(size))
}

func (m *collector) AddFullPlayout() {
	m.fullPlayouts.Add(1)
}

func (m *collector) AddIteration() {
	m.iterations.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Budget:       m.budget,
		Iterations:   int(m.iterations.Load()),
		Exploration:  m.exploration,
		Duration:     time.Since(m.startTime),
		FullPlayouts: int(m.fullPlayouts.Load()),
		TreeSize:     int(m.treeSize.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(iterations int, exploration float64) {}
func (m *dummyCollector) SetTreeSize(size int)                      {}
func (m *dummyCollector) AddFullPlayout()                           {}
func (m *dummyCollector) AddIteration()                             {}
func (m *dummyCollector) Complete() SearchMetric                    { return SearchMetric{} }

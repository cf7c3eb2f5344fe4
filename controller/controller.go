// Package controller runs searches off the interactive loop and hands the
// result back through a non-blocking poll.
package controller

import (
	"othello/agent"
	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"
	"sync"

	"github.com/rs/zerolog/log"
)

type Status int

const (
	Idle        Status = iota // nothing outstanding, nothing to read
	Running                   // a search is in flight
	ResultReady               // a result waits to be taken
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case ResultReady:
		return "ready"
	default:
		return "unknown"
	}
}

// Controller owns at most one outstanding search. The worker and the poller
// share only the guarded result slot.
type Controller struct {
	agent agent.Agent

	mu     sync.Mutex
	status Status
	epoch  uint64
	result searcher.Decision
	metric metrics.SearchMetric
	last   metrics.SearchMetric
}

func New(a agent.Agent) *Controller {
	return &Controller{agent: a}
}

// Request starts a search for color on a copy of board. It does nothing
// unless the controller is Idle and returns the resulting status.
func (c *Controller) Request(board game.Board, color game.Stone) Status {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.status != Idle {
		return c.status
	}
	c.status = Running
	log.Debug().Stringer("color", color).Uint64("epoch", c.epoch).Msg("search requested")
	go c.run(c.epoch, board, color)
	return Running
}

func (c *Controller) run(epoch uint64, board game.Board, color game.Stone) {
	decision, metric := c.agent.FindMove(board, color)
	c.publish(epoch, decision, metric)
}

func (c *Controller) publish(epoch uint64, decision searcher.Decision, metric metrics.SearchMetric) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if epoch != c.epoch || c.status != Running {
		log.Debug().Uint64("epoch", epoch).Uint64("current", c.epoch).Msg("dropping stale search result")
		return
	}
	c.result = decision
	c.metric = metric
	c.status = ResultReady
	log.Debug().Stringer("decision", decision).Uint64("epoch", epoch).Msg("search result published")
}

// Poll never blocks. It returns the result with ResultReady exactly once
// per search; otherwise it reports Idle or Running with a zero Decision.
func (c *Controller) Poll() (searcher.Decision, Status) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.status != ResultReady {
		return searcher.Decision{}, c.status
	}
	decision := c.result
	c.last = c.metric
	c.result = searcher.Decision{}
	c.status = Idle
	return decision, ResultReady
}

// Thinking reports whether a search is outstanding.
func (c *Controller) Thinking() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status == Running
}

// Reset forgets any outstanding or unread search. A search still in flight
// finishes on its own and its result is dropped.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.epoch++
	c.status = Idle
	c.result = searcher.Decision{}
	c.metric = metrics.SearchMetric{}
}

// Metric returns the metrics of the last result taken by Poll.
func (c *Controller) Metric() metrics.SearchMetric {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last
}

package engine

import (
	"context"
	"sync"
	"testing"
	"time"

	"othello/agent"
	"othello/controller"
	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"

	"github.com/stretchr/testify/require"
)

type recordingRenderer struct {
	mu    sync.Mutex
	views []View
}

func (r *recordingRenderer) Render(v View) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.views = append(r.views, v)
	return nil
}

func (r *recordingRenderer) last() View {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.views[len(r.views)-1]
}

// gateAgent plays randomly once its gate is closed.
type gateAgent struct {
	gate chan struct{}
	next agent.Agent
}

func (a gateAgent) FindMove(board game.Board, color game.Stone) (searcher.Decision, metrics.SearchMetric) {
	<-a.gate
	return a.next.FindMove(board, color)
}

func newInteractive(a agent.Agent) (*Interactive, *recordingRenderer) {
	r := &recordingRenderer{}
	return NewInteractive(NewSession(game.First), controller.New(a), r, time.Millisecond), r
}

func stepUntil(t *testing.T, g *Interactive, cond func() bool) {
	t.Helper()
	require.Eventually(t, func() bool {
		return g.Step() == nil && cond()
	}, 2*time.Second, time.Millisecond)
}

func TestInteractiveTurns(t *testing.T) {
	gate := make(chan struct{})
	g, r := newInteractive(gateAgent{gate: gate, next: agent.NewRandomAgent(1)})

	require.NoError(t, g.Step())
	first := r.last()
	require.Len(t, first.Hints, 4, "Human should see the opening moves")
	require.False(t, first.Thinking)

	require.False(t, g.Handle(Command{Kind: Place, Pos: game.Pos{Row: 2, Col: 4}}))
	require.Equal(t, game.Second, g.session.Turn())

	require.NoError(t, g.Step())
	require.True(t, r.last().Thinking, "Agent turn should show the thinking indicator")
	require.Empty(t, r.last().Hints, "No hints on the agent's turn")

	require.False(t, g.Handle(Command{Kind: Place, Pos: game.Pos{Row: 2, Col: 3}}))
	require.Equal(t, "wait for your turn", g.message)

	close(gate)
	stepUntil(t, g, func() bool { return g.session.HumanTurn() })
	require.False(t, g.controller.Thinking())
	require.Equal(t, 2, g.session.Moves())
}

func TestInteractiveRejectsBadInput(t *testing.T) {
	g, _ := newInteractive(agent.NewRandomAgent(1))

	g.Handle(Command{Kind: Place, Pos: game.Pos{Row: 0, Col: 0}})
	require.Equal(t, "a1 is not a legal move", g.message)
	require.Equal(t, game.First, g.session.Turn())

	g.Handle(Command{Kind: Pass})
	require.Equal(t, ErrCannotPass.Error(), g.message)

	g.Handle(Command{Kind: Unknown, Text: "xyzzy"})
	require.Contains(t, g.message, "xyzzy")
}

func TestInteractiveReset(t *testing.T) {
	gate := make(chan struct{})
	g, _ := newInteractive(gateAgent{gate: gate, next: agent.NewRandomAgent(1)})

	g.Handle(Command{Kind: Place, Pos: game.Pos{Row: 2, Col: 4}})
	require.NoError(t, g.Step())
	require.True(t, g.controller.Thinking())

	g.Handle(Command{Kind: Reset})
	require.Equal(t, game.NewBoard(), g.session.Board())
	require.False(t, g.controller.Thinking(), "Reset should forget the running search")

	close(gate)
	time.Sleep(10 * time.Millisecond)
	require.NoError(t, g.Step())
	require.Equal(t, game.NewBoard(), g.session.Board(), "Stale agent move should not reach the new game")
	require.True(t, g.session.HumanTurn())
}

func TestInteractiveRun(t *testing.T) {
	g, r := newInteractive(agent.NewRandomAgent(1))
	commands := make(chan Command)
	done := make(chan error, 1)
	go func() { done <- g.Run(context.Background(), commands) }()

	commands <- Command{Kind: Place, Pos: game.Pos{Row: 2, Col: 4}}
	require.Eventually(t, func() bool {
		v := r.last()
		return v.Turn == game.First && v.Board.Empties() == 58
	}, 2*time.Second, time.Millisecond, "Agent should answer the human's move")

	commands <- Command{Kind: Quit}
	require.NoError(t, <-done)
}

func TestInteractiveRunStops(t *testing.T) {
	t.Run("closed input", func(t *testing.T) {
		g, _ := newInteractive(agent.NewRandomAgent(1))
		commands := make(chan Command)
		close(commands)
		require.NoError(t, g.Run(context.Background(), commands))
	})

	t.Run("cancelled context", func(t *testing.T) {
		g, _ := newInteractive(agent.NewRandomAgent(1))
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		require.ErrorIs(t, g.Run(ctx, make(chan Command)), context.Canceled)
	})
}

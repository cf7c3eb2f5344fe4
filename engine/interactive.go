package engine

import (
	"context"
	"fmt"
	"othello/controller"
	"othello/game"
	"othello/utils"
	"time"

	"github.com/rs/zerolog/log"
)

type CommandKind int

const (
	Place CommandKind = iota
	Pass
	Reset
	Quit
	Unknown
)

// Command is one user action. Pos is set for Place and Text for Unknown.
type Command struct {
	Kind CommandKind
	Pos  game.Pos
	Text string
}

// View is the read-only snapshot handed to a Renderer.
type View struct {
	Board    game.Board
	Turn     game.Stone
	Human    game.Stone
	Hints    []game.Pos // legal moves, only on the human's turn
	CanPass  bool
	Thinking bool
	Over     bool
	Winner   game.Stone
	Message  string
}

type Renderer interface {
	Render(view View) error
}

// Interactive runs a human against the agent behind a controller. The agent
// side is driven by polling on every frame, never by waiting.
type Interactive struct {
	session    *Session
	controller *controller.Controller
	renderer   Renderer
	interval   time.Duration

	dirty    bool
	thinking bool
	message  string
}

func NewInteractive(s *Session, c *controller.Controller, r Renderer, interval time.Duration) *Interactive {
	return &Interactive{
		session:    s,
		controller: c,
		renderer:   r,
		interval:   interval,
		dirty:      true,
	}
}

// Run loops at frame cadence until Quit, the command channel closes or ctx
// is done.
func (g *Interactive) Run(ctx context.Context, commands <-chan Command) error {
	ticker := time.NewTicker(g.interval)
	defer ticker.Stop()

	if err := g.Step(); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case cmd, ok := <-commands:
			if !ok {
				return nil
			}
			if g.Handle(cmd) {
				return nil
			}
		case <-ticker.C:
			if err := g.Step(); err != nil {
				return err
			}
		}
	}
}

// Step advances one frame: it keeps the agent's search going, applies a
// ready result and redraws when something changed.
func (g *Interactive) Step() error {
	s := g.session
	if !s.Over(false) && !s.HumanTurn() {
		color := s.Turn()
		g.controller.Request(s.Board(), color)
		if decision, status := g.controller.Poll(); status == controller.ResultReady {
			if err := s.Apply(decision); err != nil {
				log.Warn().Err(err).Msgf("agent decision %v rejected", decision)
				g.message = fmt.Sprintf("agent error: %v", err)
			} else if decision.Pass {
				g.message = fmt.Sprintf("%v passes", color)
			} else {
				g.message = fmt.Sprintf("%v plays %v", color, decision.Move)
			}
			log.Debug().Stringer("decision", decision).Interface("metric", g.controller.Metric()).Msg("agent moved")
			g.dirty = true
		}
	}

	if thinking := g.controller.Thinking(); thinking != g.thinking {
		g.thinking = thinking
		g.dirty = true
	}
	if !g.dirty {
		return nil
	}
	g.dirty = false
	if err := g.renderer.Render(g.view()); err != nil {
		return fmt.Errorf("failed to render: %w", err)
	}
	return nil
}

// Handle dispatches a user command and reports whether the loop should stop.
func (g *Interactive) Handle(cmd Command) bool {
	s := g.session
	g.dirty = true

	switch cmd.Kind {
	case Quit:
		return true
	case Reset:
		s.Reset()
		g.controller.Reset()
		g.message = "new game"
	case Pass, Place:
		if s.Over(false) {
			g.message = "game is over, type reset to play again"
			return false
		}
		if !s.HumanTurn() {
			g.message = "wait for your turn"
			return false
		}
		if cmd.Kind == Pass {
			if err := s.Pass(); err != nil {
				g.message = err.Error()
				return false
			}
			g.message = "you pass"
			return false
		}
		if utils.FindIndex(s.LegalMoves(), cmd.Pos) < 0 {
			g.message = fmt.Sprintf("%v is not a legal move", cmd.Pos)
			return false
		}
		if _, err := s.Play(cmd.Pos); err != nil {
			g.message = err.Error()
			return false
		}
		g.message = fmt.Sprintf("you play %v", cmd.Pos)
	default:
		g.message = fmt.Sprintf("unknown command %q", cmd.Text)
	}
	return false
}

func (g *Interactive) view() View {
	s := g.session
	v := View{
		Board:    s.Board(),
		Turn:     s.Turn(),
		Human:    s.Human(),
		Thinking: g.thinking,
		Over:     s.Over(false),
		Winner:   s.Winner(),
		Message:  g.message,
	}
	if s.HumanTurn() && !v.Over {
		v.Hints = s.LegalMoves()
		v.CanPass = len(v.Hints) == 0
	}
	return v
}

// Package console draws the game in a terminal and reads typed commands.
package console

import (
	"fmt"
	"io"
	"othello/engine"
	"othello/game"
	"othello/utils"
	"strings"

	"github.com/muesli/termenv"
)

const (
	boardColor  = "#2e7d32"
	firstColor  = "#ffffff"
	secondColor = "#000000"
	hintColor   = "#ffeb3b"
)

type Renderer struct {
	w     io.Writer
	out   *termenv.Output
	clear bool
}

type Option func(r *Renderer)

// WithClear redraws from the top of a cleared screen each frame.
func WithClear() Option {
	return func(r *Renderer) {
		r.clear = true
	}
}

// WithProfile overrides the detected color profile.
func WithProfile(p termenv.Profile) Option {
	return func(r *Renderer) {
		r.out = termenv.NewOutput(r.w, termenv.WithProfile(p))
	}
}

func NewRenderer(w io.Writer, options ...Option) *Renderer {
	r := &Renderer{w: w, out: termenv.NewOutput(w)}
	for _, option := range options {
		option(r)
	}
	return r
}

func (r *Renderer) Render(v engine.View) error {
	if r.clear {
		r.out.ClearScreen()
	}
	if _, err := io.WriteString(r.w, r.Frame(v)); err != nil {
		return fmt.Errorf("failed to write frame: %w", err)
	}
	return nil
}

// Frame returns the text of one frame.
func (r *Renderer) Frame(v engine.View) string {
	var sb strings.Builder
	sb.WriteString("   a b c d e f g h\n")
	for row := range game.Size {
		fmt.Fprintf(&sb, "%d ", row+1)
		for col := range game.Size {
			p := game.Pos{Row: row, Col: col}
			sb.WriteString(r.cell(v, p))
		}
		sb.WriteString(r.style(" ", boardColor, ""))
		sb.WriteByte('\n')
	}

	first, second := v.Board.Score()
	fmt.Fprintf(&sb, "%s %d  %s %d\n", stoneLabel(game.First, v.Human), first, stoneLabel(game.Second, v.Human), second)
	sb.WriteString(r.status(v))
	sb.WriteByte('\n')
	if v.Message != "" {
		sb.WriteString(v.Message)
		sb.WriteByte('\n')
	}
	sb.WriteString("> ")
	return sb.String()
}

func (r *Renderer) cell(v engine.View, p game.Pos) string {
	switch v.Board.At(p) {
	case game.First:
		return r.style(" O", boardColor, firstColor)
	case game.Second:
		return r.style(" X", boardColor, secondColor)
	}
	if utils.FindIndex(v.Hints, p) >= 0 {
		return r.style(" *", boardColor, hintColor)
	}
	return r.style(" .", boardColor, "")
}

func (r *Renderer) style(s, bg, fg string) string {
	st := r.out.String(s).Background(r.out.Color(bg))
	if fg != "" {
		st = st.Foreground(r.out.Color(fg)).Bold()
	}
	return st.String()
}

func (r *Renderer) status(v engine.View) string {
	switch {
	case v.Over:
		if v.Winner == game.Empty {
			return "game over: draw (type reset for a new game)"
		}
		who := "agent wins"
		if v.Winner == v.Human {
			who = "you win"
		}
		return fmt.Sprintf("game over: %s (type reset for a new game)", who)
	case v.Thinking:
		return "thinking…"
	case v.Turn != v.Human:
		return "agent to move"
	case v.CanPass:
		return "no legal move, type pass"
	case len(v.Hints) == 0:
		return "your move"
	default:
		return "your move (e.g. " + v.Hints[0].String() + "), reset or quit"
	}
}

func stoneLabel(s, human game.Stone) string {
	mark := "O"
	if s == game.Second {
		mark = "X"
	}
	if s == human {
		return mark + " you"
	}
	return mark + " agent"
}

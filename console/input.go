package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"othello/engine"
	"othello/game"
	"strings"

	"github.com/rs/zerolog/log"
)

// ParseCommand reads one line of user input.
func ParseCommand(line string) (engine.Command, error) {
	text := strings.ToLower(strings.TrimSpace(line))
	switch text {
	case "pass", "p":
		return engine.Command{Kind: engine.Pass}, nil
	case "reset", "r", "new":
		return engine.Command{Kind: engine.Reset}, nil
	case "quit", "q", "exit":
		return engine.Command{Kind: engine.Quit}, nil
	}
	pos, err := game.ParsePos(text)
	if err != nil {
		return engine.Command{Kind: engine.Unknown, Text: text}, fmt.Errorf("unknown command %q: %w", text, err)
	}
	return engine.Command{Kind: engine.Place, Pos: pos}, nil
}

// ReadCommands scans r on its own goroutine. Blank lines are skipped and
// unparsable lines arrive as Unknown commands. The channel is closed at
// the end of input or when ctx is done.
func ReadCommands(ctx context.Context, r io.Reader) <-chan engine.Command {
	commands := make(chan engine.Command)
	go func() {
		defer close(commands)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			if strings.TrimSpace(scanner.Text()) == "" {
				continue
			}
			cmd, err := ParseCommand(scanner.Text())
			if err != nil {
				log.Debug().Err(err).Msg("bad input")
			}
			select {
			case commands <- cmd:
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil {
			log.Warn().Err(err).Msg("failed to read input")
		}
	}()
	return commands
}

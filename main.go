package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"othello/agent"
	"othello/console"
	"othello/controller"
	"othello/engine"
	"othello/experiments"
	"othello/game"
	"othello/meta"
	"othello/searcher"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cmd, args := "play", os.Args[1:]
	if len(args) > 0 && args[0] != "" && args[0][0] != '-' {
		cmd, args = args[0], args[1:]
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var err error
	switch cmd {
	case "play":
		err = runPlay(ctx, args)
	case "experiment":
		err = runExperiment(ctx, args)
	case "dot":
		err = runDot(args)
	default:
		err = fmt.Errorf("unknown command %q, want play, experiment or dot", cmd)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal().Err(err).Msgf("%s failed", cmd)
	}
}

func setupLogging(level string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	return nil
}

func searchOptions(iterations int, seed uint64) []searcher.Option {
	options := []searcher.Option{searcher.WithIterations(iterations), searcher.WithMetrics()}
	if seed != 0 {
		options = append(options, searcher.WithSeed(seed))
	}
	return options
}

func runPlay(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("play", flag.ExitOnError)
	iterations := fs.Int("iterations", meta.MAX_TRY, "Number of MCTS iterations per agent move")
	seed := fs.Uint64("seed", 0, "Search seed, 0 for a time-based seed")
	human := fs.String("human", "first", "Color played from the keyboard (first or second)")
	plain := fs.Bool("plain", false, "Disable colors and screen clearing")
	level := fs.String("log-level", "warn", "Log level")
	fs.Parse(args)

	if err := setupLogging(*level); err != nil {
		return err
	}
	color, err := game.ParseStone(*human)
	if err != nil {
		return err
	}

	mcts := searcher.NewMCTS(searchOptions(*iterations, *seed)...)
	ctrl := controller.New(agent.NewEvaluationAgent(mcts))

	options := []console.Option{console.WithClear()}
	if *plain {
		options = []console.Option{console.WithProfile(termenv.Ascii)}
	}
	renderer := console.NewRenderer(os.Stdout, options...)

	loop := engine.NewInteractive(engine.NewSession(color), ctrl, renderer, meta.FRAME_INTERVAL)
	return loop.Run(ctx, console.ReadCommands(ctx, os.Stdin))
}

func runExperiment(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("experiment", flag.ExitOnError)
	out := fs.String("out", "results", "Directory for experiment records")
	games := fs.Int("games", meta.NUM_GAMES, "Games per matchup")
	level := fs.String("log-level", "info", "Log level")
	fs.Parse(args)

	if err := setupLogging(*level); err != nil {
		return err
	}
	dir, err := experiments.Run(ctx, *out, experiments.IterationExperiment(*games))
	if err != nil {
		return err
	}
	log.Info().Msgf("records written to %s", dir)
	return nil
}

func runDot(args []string) error {
	fs := flag.NewFlagSet("dot", flag.ExitOnError)
	boardFile := fs.String("board", "", "Board file, the opening when empty")
	colorName := fs.String("color", "first", "Color to search for")
	iterations := fs.Int("iterations", meta.MAX_TRY, "Number of MCTS iterations")
	seed := fs.Uint64("seed", 1, "Search seed, 0 for a time-based seed")
	depth := fs.Int("depth", 2, "Tree levels to export, negative for all")
	level := fs.String("log-level", "info", "Log level")
	fs.Parse(args)

	if err := setupLogging(*level); err != nil {
		return err
	}
	color, err := game.ParseStone(*colorName)
	if err != nil {
		return err
	}
	board := game.NewBoard()
	if *boardFile != "" {
		text, err := os.ReadFile(*boardFile)
		if err != nil {
			return fmt.Errorf("failed to read board: %w", err)
		}
		if board, err = game.ParseBoard(string(text)); err != nil {
			return fmt.Errorf("failed to parse %s: %w", *boardFile, err)
		}
	}

	tree, decision, metric := searcher.NewMCTS(searchOptions(*iterations, *seed)...).Search(board, color)
	log.Info().Msgf("%v plays %v after %d iterations (%d nodes, %v)", color, decision, metric.Iterations, metric.TreeSize, metric.Duration)

	dot, err := tree.ToDot(*depth)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(os.Stdout, dot)
	return err
}

package experiments

import (
	"context"
	"fmt"
	"othello/agent"
	"othello/engine"
	"othello/experiments/metrics"
	"othello/game"
	"othello/meta"
	"othello/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type Experiment struct {
	Name     string
	Configs  []metrics.AgentConfig
	MatchUps [][]metrics.AgentConfig // pairs of agents
	NumGames int                     // per matchup
}

var baseline = metrics.AgentConfig{ID: 0, Iterations: meta.MAX_TRY, Seed: 1}

var iterationConfigs = []metrics.AgentConfig{
	{ID: 1, Random: true, Seed: 2},
	{ID: 2, Iterations: 250, Seed: 3},
	{ID: 3, Iterations: 1000, Seed: 4},
	{ID: 4, Iterations: meta.MAX_TRY, Seed: 5}, // Baseline equivalent
}

// IterationExperiment pairs the baseline search against a random player and
// against searches with other iteration budgets.
func IterationExperiment(numGames int) Experiment {
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range iterationConfigs {
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config})
	}
	return Experiment{
		Name:     "iterations",
		Configs:  append([]metrics.AgentConfig{baseline}, iterationConfigs...),
		MatchUps: matchUps,
		NumGames: numGames,
	}
}

// Run plays every matchup and stores the records under outDir. It returns
// the directory the records were written to.
func Run(ctx context.Context, outDir string, e Experiment) (string, error) {
	log.Info().Msgf("starting %s experiment...", e.Name)

	gameRecords, moveRecords, err := play(ctx, e)
	if err != nil {
		return "", fmt.Errorf("failed to run %s experiment: %w", e.Name, err)
	}

	log.Info().Msgf("completed %s experiment", e.Name)

	writer, err := metrics.NewWriter(outDir, e.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(e.Configs); err != nil {
		return "", err
	}
	log.Info().Msg("stored agent configs")
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", err
	}
	log.Info().Msg("stored game records")
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", err
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}

type gameResult struct {
	record metrics.GameRecord
	moves  []metrics.MoveMetric
}

func play(ctx context.Context, e Experiment) ([]metrics.GameRecord, []metrics.MoveRecord, error) {
	for mi, matchup := range e.MatchUps {
		if len(matchup) != 2 {
			return nil, nil, fmt.Errorf("matchup %d has %d agents, want 2", mi+1, len(matchup))
		}
	}
	results := make([]gameResult, len(e.MatchUps)*e.NumGames)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(meta.WORKERS)
	for mi, matchup := range e.MatchUps {
		log.Info().Msgf("queueing matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(e.MatchUps), matchup[0], matchup[1])

		for i := range e.NumGames {
			id := mi*e.NumGames + i + 1
			first, second := matchup[0], matchup[1]
			if i%2 == 1 { // Alternate the starting agent
				first, second = second, first
			}

			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				winner, gameMetric, moveMetrics := runGame(first, second, uint64(id))
				results[id-1] = gameResult{
					record: metrics.GameRecord{
						ID:         id,
						Agent1:     first.ID,
						Agent2:     second.ID,
						GameMetric: gameMetric,
					},
					moves: moveMetrics,
				}
				log.Info().Msgf("completed matchup %d of %d game %d of %d with winner: %v", mi+1, len(e.MatchUps), i+1, e.NumGames, winnerID(winner, first, second))
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	gameRecords := make([]metrics.GameRecord, 0, len(results))
	moveRecords := []metrics.MoveRecord{}
	for _, r := range results {
		gameRecords = append(gameRecords, r.record)
		for _, mm := range r.moves {
			moveRecords = append(moveRecords, metrics.MoveRecord{
				Game:       r.record.ID,
				MoveMetric: mm,
			})
		}
	}
	return gameRecords, moveRecords, nil
}

// runGame executes a single game, first playing First, and returns the winner
func runGame(first, second metrics.AgentConfig, gameID uint64) (game.Stone, metrics.GameMetric, []metrics.MoveMetric) {
	e := engine.LocalEngine(createAgent(first, gameID), createAgent(second, gameID))
	return e.Run()
}

func winnerID(winner game.Stone, first, second metrics.AgentConfig) string {
	switch winner {
	case game.First:
		return fmt.Sprintf("agent %d", first.ID)
	case game.Second:
		return fmt.Sprintf("agent %d", second.ID)
	default:
		return "draw"
	}
}

// createAgent derives a per-game seed so reruns reproduce the same games.
func createAgent(config metrics.AgentConfig, gameID uint64) agent.Agent {
	seed := config.Seed*1_000_003 + gameID
	if config.Random {
		return agent.NewRandomAgent(seed)
	}

	options := []searcher.Option{searcher.WithSeed(seed), searcher.WithMetrics()}
	if config.Iterations > 0 {
		options = append(options, searcher.WithIterations(config.Iterations))
	}
	return agent.NewEvaluationAgent(searcher.NewMCTS(options...))
}

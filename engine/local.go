package engine

import (
	"othello/agent"
	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"
	"time"

	"github.com/rs/zerolog/log"
)

// Match plays two agents against each other without a frame loop.
type Match struct {
	Session *Session
	agents  map[game.Stone]agent.Agent
}

func LocalEngine(first, second agent.Agent) *Match {
	if first == nil || second == nil {
		panic("need an agent for both colors")
	}
	return &Match{
		Session: NewSession(game.First),
		agents: map[game.Stone]agent.Agent{
			game.First:  first,
			game.Second: second,
		},
	}
}

// Run executes the entire game loop until neither side can move.
func (m *Match) Run() (game.Stone, metrics.GameMetric, []metrics.MoveMetric) {
	s := m.Session
	start := time.Now()
	gameMetric := metrics.GameMetric{
		StartingPlayer: s.Turn(),
		StartTime:      start,
	}
	var moveMetrics []metrics.MoveMetric

	log.Debug().Msgf("player %v is starting", s.Turn())

	step := 1
	for !s.Over(false) && step <= MaxMoves {
		color := s.Turn()
		decision, searchMetric := m.agents[color].FindMove(s.Board(), color)

		if err := s.Apply(decision); err != nil {
			log.Warn().Err(err).Msgf("player %v returned %v, falling back", color, decision)
			decision = fallback(s)
			if err := s.Apply(decision); err != nil {
				panic("fallback decision rejected: " + err.Error())
			}
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       color,
			Pass:         decision.Pass,
			SearchMetric: searchMetric,
		})
		step++
	}

	if !s.Over(false) {
		log.Warn().Msgf("stopped after %d moves without a finished game", MaxMoves)
	}

	board := s.Board()
	gameMetric.Winner = s.Winner()
	gameMetric.FirstStones, gameMetric.SecondStones = board.Score()
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(start)
	gameMetric.TotalMoves = s.Moves()
	gameMetric.Passes = s.Passes()

	log.Debug().Msgf("game over, winner %v (%d-%d)", gameMetric.Winner, gameMetric.FirstStones, gameMetric.SecondStones)
	return gameMetric.Winner, gameMetric, moveMetrics
}

func fallback(s *Session) searcher.Decision {
	moves := s.LegalMoves()
	if len(moves) == 0 {
		return searcher.Decision{Pass: true}
	}
	return searcher.Decision{Move: moves[0]}
}

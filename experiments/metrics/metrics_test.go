package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"othello/game"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("counts search events", func(t *testing.T) {
		c := NewCollector()
		c.Start(10, 3.0)
		for range 4 {
			c.AddIteration()
		}
		c.AddFullPlayout()
		c.SetTreeSize(5)

		m := c.Complete()
		require.Equal(t, 10, m.Budget)
		require.Equal(t, 4, m.Iterations)
		require.Equal(t, 1, m.FullPlayouts)
		require.Equal(t, 5, m.TreeSize)
		require.Equal(t, 3.0, m.Exploration)
		require.GreaterOrEqual(t, m.Duration, time.Duration(0))
	})

	t.Run("dummy collector reports nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start(10, 3.0)
		c.AddIteration()
		require.Equal(t, SearchMetric{}, c.Complete())
	})
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "unit")
	require.NoError(t, err)

	require.NoError(t, w.WriteAgentConfigs([]AgentConfig{{ID: 1, Iterations: 100}, {ID: 2, Random: true, Seed: 9}}))
	rows := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
	require.Len(t, rows, 3, "Should write a header and one row per config")
	require.Equal(t, []string{"2", "0", "true", "9"}, rows[2])

	start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, w.WriteGameRecords([]GameRecord{{
		ID: 1, Agent1: 1, Agent2: 2,
		GameMetric: GameMetric{
			StartingPlayer: game.First, Winner: game.Second,
			FirstStones: 20, SecondStones: 44,
			StartTime: start, EndTime: start.Add(time.Second), Duration: time.Second,
			TotalMoves: 60, Passes: 1,
		},
	}}))
	rows = readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
	require.Len(t, rows, 2)
	require.Equal(t, "second", rows[1][4])
	require.Equal(t, "2024-01-02T03:04:05Z", rows[1][7])

	require.NoError(t, w.WriteMoveRecords([]MoveRecord{{
		Game:       1,
		MoveMetric: MoveMetric{Step: 1, Player: game.First, SearchMetric: SearchMetric{Budget: 100, Iterations: 100}},
	}}))
	rows = readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
	require.Equal(t, []string{"1", "1", "first", "false", "0s", "100", "100", "0", "0"}, rows[1])
}

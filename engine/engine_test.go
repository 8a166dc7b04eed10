package engine

import (
	"testing"

	"gamepack/board"
	"gamepack/experiments/metrics"
	"gamepack/game"
	"gamepack/games/chess"
	"gamepack/games/connectfour"
	"gamepack/games/reversi"
	"github.com/stretchr/testify/require"
)

func newConnectFour() (*connectfour.State, error) {
	return connectfour.New(connectfour.DefaultParams())
}

func connectFourMatch(t *testing.T, seed uint64, options ...Option) *Match[*connectfour.State, int] {
	t.Helper()
	s, err := newConnectFour()
	require.NoError(t, err)
	agent := NewRandomAgent[*connectfour.State, int](seed)
	return NewMatch[*connectfour.State, int](connectfour.Identifier, s, Seat[*connectfour.State, int](agent, connectfour.Players), options...)
}

func TestMatch(t *testing.T) {
	t.Run("playing a match to the end", func(t *testing.T) {
		match := connectFourMatch(t, 1)
		result, metric, err := match.Run()
		require.NoError(t, err)
		require.NotNil(t, result)
		require.Zero(t, result.Sum())
		require.True(t, metric.Complete)
		require.LessOrEqual(t, metric.Plies, 42)
		require.Equal(t, connectfour.Yellow, metric.StartingPlayer)
		require.Equal(t, match.ID, metric.ID)
		require.Equal(t, result, metric.Result)
	})

	t.Run("pure and in place matches agree", func(t *testing.T) {
		for seed := uint64(1); seed <= 5; seed++ {
			pure, pureMetric, err := connectFourMatch(t, seed).Run()
			require.NoError(t, err)
			inPlace, inPlaceMetric, err := connectFourMatch(t, seed, WithInPlace(true)).Run()
			require.NoError(t, err)
			require.Equal(t, pure, inPlace)
			require.Equal(t, pureMetric.Plies, inPlaceMetric.Plies)
		}
	})

	t.Run("stopping at the ply limit", func(t *testing.T) {
		result, metric, err := connectFourMatch(t, 1, WithMaxPlies(3)).Run()
		require.NoError(t, err)
		require.Nil(t, result, "Matches cut short have no result without an evaluation")
		require.False(t, metric.Complete)
		require.Equal(t, 3, metric.Plies)
	})

	t.Run("evaluating matches cut short", func(t *testing.T) {
		s, err := reversi.NewOthello(reversi.DefaultParams())
		require.NoError(t, err)
		agent := NewRandomAgent[*reversi.State, board.Coord](7)
		match := NewMatch[*reversi.State, board.Coord](reversi.Othello, s, Seat[*reversi.State, board.Coord](agent, reversi.Players),
			WithMaxPlies(1), WithEvaluation[*reversi.State](reversi.PieceRatio))
		result, metric, err := match.Run()
		require.NoError(t, err)
		require.False(t, metric.Complete)
		require.InDelta(t, 3.0/5.0, result[reversi.Black], 1e-9, "Black's opening move flips one piece")
		require.InDelta(t, -3.0/5.0, result[reversi.White], 1e-9)
	})

	t.Run("failing without an agent for the active player", func(t *testing.T) {
		s, _ := newConnectFour()
		agent := NewRandomAgent[*connectfour.State, int](1)
		match := NewMatch[*connectfour.State, int](connectfour.Identifier, s,
			map[game.Player]Agent[*connectfour.State, int]{connectfour.Yellow: agent})
		_, metric, err := match.Run()
		require.Error(t, err)
		require.Equal(t, 1, metric.Plies)
		require.False(t, metric.Unsupported)
	})

	t.Run("reporting unsupported positions", func(t *testing.T) {
		s, err := chess.ParseFEN("4k3/8/8/8/8/8/8/4RK2 b - - 0 1")
		require.NoError(t, err)
		agent := NewRandomAgent[*chess.State, chess.Move](1)
		match := NewMatch[*chess.State, chess.Move](chess.Identifier, s, Seat[*chess.State, chess.Move](agent, chess.Players))
		_, metric, err := match.Run()
		require.ErrorIs(t, err, game.ErrUnsupportedFeature)
		require.True(t, metric.Unsupported)
	})
}

func TestPlayouts(t *testing.T) {
	run := func(seed uint64) ([]metrics.MatchMetric, metrics.Summary) {
		playouts := NewPlayouts[*connectfour.State, int](connectfour.Identifier, newConnectFour, connectfour.Players,
			4, 16, seed, WithCollector(metrics.NewCollector()), WithInPlace(true))
		return playouts.Run()
	}

	t.Run("playing every match", func(t *testing.T) {
		records, summary := run(42)
		require.Len(t, records, 16)
		require.Equal(t, 16, summary.Matches)
		require.Equal(t, 16, summary.Complete)
		require.Zero(t, summary.Failed)
		require.Equal(t, 4, summary.Goroutines)

		plies := 0
		for _, record := range records {
			require.True(t, record.Complete)
			require.NotNil(t, record.Result)
			plies += record.Plies
		}
		require.Equal(t, plies, summary.Plies)
	})

	t.Run("seeding makes playouts repeatable", func(t *testing.T) {
		first, _ := run(9)
		second, _ := run(9)
		for i := range first {
			require.Equal(t, first[i].Plies, second[i].Plies, "Match %d", i)
			require.Equal(t, first[i].Result, second[i].Result, "Match %d", i)
		}
	})

	t.Run("counting matches that cannot be set up", func(t *testing.T) {
		failing := func() (*connectfour.State, error) {
			return connectfour.New(connectfour.Params{Height: 6, Width: 7, LineLength: 1})
		}
		playouts := NewPlayouts[*connectfour.State, int](connectfour.Identifier, failing, connectfour.Players,
			2, 3, 1, WithCollector(metrics.NewCollector()))
		_, summary := playouts.Run()
		require.Equal(t, 3, summary.Failed)
		require.Zero(t, summary.Matches)
	})
}

package mancala

import (
	"strings"
	"testing"

	"gamepack/game"
	"gamepack/game/gametest"
	"github.com/stretchr/testify/require"
)

func fromBoard(t *testing.T, active game.Player, squares []int, params Params) *State {
	t.Helper()
	s, err := Deserialize(Snapshot{
		Active:              active,
		Board:               squares,
		EmptyCapture:        params.EmptyCapture,
		CountRemainingSeeds: params.CountRemainingSeeds,
	})
	require.NoError(t, err)
	return s
}

func TestBoard(t *testing.T) {
	s, err := New(DefaultParams())
	require.NoError(t, err)

	t.Run("initial board", func(t *testing.T) {
		require.Equal(t, []int{4, 4, 4, 4, 4, 4, 0, 4, 4, 4, 4, 4, 4, 0}, s.Squares())
		require.Equal(t, []game.Player{North}, s.ActivePlayers())
		moves, err := s.Moves()
		require.NoError(t, err)
		require.Equal(t, map[game.Player][]int{North: {0, 1, 2, 3, 4, 5}}, moves)
	})

	t.Run("stores and houses", func(t *testing.T) {
		require.Equal(t, 6, s.Store(North))
		require.Equal(t, 13, s.Store(South))
		require.Equal(t, []int{7, 8, 9, 10, 11, 12}, s.Houses(South))
	})

	t.Run("opposite houses face each other", func(t *testing.T) {
		require.Equal(t, 12, s.OppositeHouse(North, 0))
		require.Equal(t, 0, s.OppositeHouse(South, 12))
		require.Equal(t, 9, s.OppositeHouse(North, 3))
		require.Equal(t, -1, s.OppositeHouse(North, 6), "Stores have no opposite")
		require.Equal(t, -1, s.OppositeHouse(South, 3), "Only the player's own houses have opposites")
	})

	t.Run("sowing skips the opponent's store", func(t *testing.T) {
		require.Equal(t, 0, s.NextSquare(North, 12))
		require.Equal(t, 13, s.NextSquare(South, 12))
		require.Equal(t, 7, s.NextSquare(South, 5))
		require.Equal(t, 6, s.NextSquare(North, 5))
	})

	t.Run("rejecting degenerate boards", func(t *testing.T) {
		_, err := New(Params{Seeds: 4, Houses: 0})
		require.ErrorIs(t, err, game.ErrInvalidBoardDimensions)
		_, err = Deserialize(Snapshot{Active: North, Board: []int{1, 0, 1}})
		require.ErrorIs(t, err, game.ErrInvalidBoardDimensions)
		_, err = Deserialize(Snapshot{Active: North, Board: []int{1, 0, -1, 0}})
		require.ErrorIs(t, err, game.ErrMalformedNotation)
	})
}

func TestSowing(t *testing.T) {
	t.Run("sowing short of the store passes the turn", func(t *testing.T) {
		s, _ := New(DefaultParams())
		next, err := s.Next(game.Single(North, 0))
		require.NoError(t, err)
		require.Equal(t, []int{0, 5, 5, 5, 5, 4, 0, 4, 4, 4, 4, 4, 4, 0}, next.Squares())
		require.Equal(t, []game.Player{South}, next.ActivePlayers())
		require.Equal(t, []int{4, 4, 4, 4, 4, 4, 0, 4, 4, 4, 4, 4, 4, 0}, s.Squares(), "Next should not modify its receiver")
	})

	t.Run("ending in the own store grants another turn", func(t *testing.T) {
		s, _ := New(DefaultParams())
		require.NoError(t, s.Update(game.Single(North, 2)))
		require.Equal(t, []int{4, 4, 0, 5, 5, 5, 1, 4, 4, 4, 4, 4, 4, 0}, s.Squares())
		require.Equal(t, []game.Player{North}, s.ActivePlayers())
		moves, err := s.Moves()
		require.NoError(t, err)
		require.Equal(t, []int{0, 1, 3, 4, 5}, moves[North], "Cached moves are discarded after an update")
	})

	t.Run("ending in an empty house captures the opposite seeds", func(t *testing.T) {
		s := fromBoard(t, North, []int{1, 0, 4, 4, 4, 4, 0, 4, 4, 4, 4, 3, 4, 0}, DefaultParams())
		next, err := s.Next(game.Single(North, 0))
		require.NoError(t, err)
		require.Equal(t, []int{0, 0, 4, 4, 4, 4, 4, 4, 4, 4, 4, 0, 4, 0}, next.Squares())
		require.Equal(t, []game.Player{South}, next.ActivePlayers())
	})

	t.Run("empty capture leaves the opposite seeds", func(t *testing.T) {
		params := DefaultParams()
		params.EmptyCapture = true
		s := fromBoard(t, North, []int{1, 0, 4, 4, 4, 4, 0, 4, 4, 4, 4, 3, 4, 0}, params)
		next, err := s.Next(game.Single(North, 0))
		require.NoError(t, err)
		require.Equal(t, []int{0, 0, 4, 4, 4, 4, 1, 4, 4, 4, 4, 3, 4, 0}, next.Squares())
	})

	t.Run("sowing around the board", func(t *testing.T) {
		s := fromBoard(t, North, []int{0, 0, 0, 0, 0, 10, 0, 1, 1, 1, 1, 1, 1, 0}, DefaultParams())
		next, err := s.Next(game.Single(North, 5))
		require.NoError(t, err)
		require.Equal(t, []int{1, 1, 0, 0, 0, 0, 4, 2, 2, 2, 0, 2, 2, 0}, next.Squares())
	})

	t.Run("rejecting empty and foreign houses", func(t *testing.T) {
		s := fromBoard(t, North, []int{0, 1, 4, 4, 4, 4, 0, 4, 4, 4, 4, 3, 4, 0}, DefaultParams())
		_, err := s.Next(game.Single(North, 0))
		require.ErrorIs(t, err, game.ErrIllegalMove)
		_, err = s.Next(game.Single(North, 8))
		require.ErrorIs(t, err, game.ErrIllegalMove)
		require.ErrorIs(t, s.Update(game.Single(North, 6)), game.ErrIllegalMove)
		require.Equal(t, 0, s.Squares()[0])
	})
}

func TestResult(t *testing.T) {
	t.Run("counting the remaining seeds", func(t *testing.T) {
		s := fromBoard(t, South, []int{0, 0, 0, 0, 0, 0, 20, 1, 1, 1, 1, 1, 1, 2}, DefaultParams())
		moves, err := s.Moves()
		require.NoError(t, err)
		require.Nil(t, moves)
		require.Equal(t, map[game.Player]int{North: 20, South: 8}, s.Scores())
		result, err := s.Result()
		require.NoError(t, err)
		require.Equal(t, game.Result{North: 12, South: -12}, result)
	})

	t.Run("ignoring the remaining seeds", func(t *testing.T) {
		s := fromBoard(t, South, []int{0, 0, 0, 0, 0, 0, 20, 1, 1, 1, 1, 1, 1, 2}, Params{})
		result, err := s.Result()
		require.NoError(t, err)
		require.Equal(t, game.Result{North: 18, South: -18}, result)
	})

	t.Run("bounding the result by the seeds", func(t *testing.T) {
		s, _ := New(DefaultParams())
		low, high := s.ResultBounds()
		require.Equal(t, -48.0, low)
		require.Equal(t, 48.0, high)
	})
}

func TestRendering(t *testing.T) {
	s, _ := New(DefaultParams())

	t.Run("compact key", func(t *testing.T) {
		require.Equal(t, "N"+strings.Repeat("04", 6)+"00"+strings.Repeat("04", 6)+"00", s.Key())
		big := fromBoard(t, South, []int{40, 0, 0, 0}, DefaultParams())
		require.Equal(t, "S14000000", big.Key())
	})

	t.Run("ascii board", func(t *testing.T) {
		houses := "   04 | 04 | 04 | 04 | 04 | 04   "
		require.Equal(t, houses+"\n00"+strings.Repeat(" ", 29)+"00\n"+houses, s.PrintBoard())
	})
}

func TestPlaythrough(t *testing.T) {
	roundTrip := func(s *State) (*State, error) {
		data, err := game.Encode(s.Serialize())
		if err != nil {
			return nil, err
		}
		snapshot, err := game.Decode[Snapshot](data)
		if err != nil {
			return nil, err
		}
		return Deserialize(snapshot)
	}
	for seed := uint64(1); seed <= 20; seed++ {
		params := DefaultParams()
		params.EmptyCapture = seed%2 == 0
		s, err := New(params)
		require.NoError(t, err)
		final := gametest.Playthrough[*State, int](t, s, seed, 1000, roundTrip)
		result, err := final.Result()
		require.NoError(t, err)
		require.NotNil(t, result)
		low, high := final.ResultBounds()
		require.GreaterOrEqual(t, result[North], low)
		require.LessOrEqual(t, result[North], high)
	}
}

func TestHeuristics(t *testing.T) {
	t.Run("default weights", func(t *testing.T) {
		require.Equal(t, []float64{1, 1, 5, -1, -1, -5}, DefaultWeights(2))
	})

	t.Run("a fresh board is even", func(t *testing.T) {
		s, _ := New(DefaultParams())
		evaluate := DefaultHeuristic(6)
		require.Zero(t, evaluate(s, North))
		require.Zero(t, evaluate(s, South))
	})

	t.Run("stores outweigh houses", func(t *testing.T) {
		s := fromBoard(t, South, []int{0, 0, 0, 0, 0, 0, 20, 1, 1, 1, 1, 1, 1, 2}, DefaultParams())
		evaluate := DefaultHeuristic(6)
		require.InDelta(t, 3.0/22, evaluate(s, North), 1e-9)
		require.InDelta(t, -3.0/22, evaluate(s, South), 1e-9)
	})

	t.Run("rejecting boards of another size", func(t *testing.T) {
		s, _ := New(DefaultParams())
		require.Panics(t, func() { DefaultHeuristic(4)(s, North) })
	})
}

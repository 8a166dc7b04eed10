package connectfour

import (
	"testing"

	"gamepack/game"
	"gamepack/game/gametest"
	"github.com/stretchr/testify/require"
)

func play(t *testing.T, s *State, columns ...int) *State {
	t.Helper()
	for _, col := range columns {
		next, err := s.Next(game.Single(s.ActivePlayers()[0], col))
		require.NoError(t, err)
		s = next
	}
	return s
}

func TestConnectFour(t *testing.T) {
	t.Run("the first moves are every column", func(t *testing.T) {
		s, err := New(DefaultParams())
		require.NoError(t, err)
		moves, err := s.Moves()
		require.NoError(t, err)
		require.Equal(t, map[game.Player][]int{Yellow: {0, 1, 2, 3, 4, 5, 6}}, moves)
	})

	t.Run("pieces drop to the lowest empty square", func(t *testing.T) {
		s, _ := New(DefaultParams())
		s = play(t, s, 3, 3)
		require.Equal(t, "...0..."+"...1...", s.Board()[:14])
		require.Equal(t, []game.Player{Yellow}, s.ActivePlayers())
	})

	t.Run("seven pieces in distinct columns do not end the match", func(t *testing.T) {
		s, _ := New(DefaultParams())
		s = play(t, s, 0, 1, 2, 3, 4, 5, 6)
		result, err := s.Result()
		require.NoError(t, err)
		require.Nil(t, result)
		moves, err := s.Moves()
		require.NoError(t, err)
		require.Len(t, moves[Red], 7)
	})

	t.Run("four in a column wins", func(t *testing.T) {
		s, _ := New(DefaultParams())
		s = play(t, s, 0, 1, 0, 1, 0, 1, 0)
		result, err := s.Result()
		require.NoError(t, err)
		require.Equal(t, game.Result{Yellow: 1, Red: -1}, result)
		moves, err := s.Moves()
		require.NoError(t, err)
		require.Nil(t, moves, "A finished match has no moves")
	})

	t.Run("four on a diagonal wins", func(t *testing.T) {
		s, _ := New(DefaultParams())
		s = play(t, s, 0, 1, 1, 2, 2, 3, 2, 3, 3, 6, 3)
		result, err := s.Result()
		require.NoError(t, err)
		require.Equal(t, game.Result{Yellow: 1, Red: -1}, result)
	})

	t.Run("filling the board without a line is a tie", func(t *testing.T) {
		s, _ := New(DefaultParams())
		s = play(t, s,
			0, 2, 0, 0, 0, 0, 1, 0, 1, 1, 1, 1, 4, 1, 4, 2, 2, 2, 2, 3, 2,
			3, 3, 3, 3, 4, 3, 6, 4, 4, 5, 4, 5, 5, 5, 6, 6, 6, 6, 5, 6, 5)
		result, err := s.Result()
		require.NoError(t, err)
		require.Equal(t, game.Result{Yellow: 0, Red: 0}, result)
		moves, err := s.Moves()
		require.NoError(t, err)
		require.Nil(t, moves)
	})

	t.Run("rejecting full columns and inactive players", func(t *testing.T) {
		s, _ := New(Params{Height: 3, Width: 3, LineLength: 3})
		s = play(t, s, 0, 0, 0)
		_, err := s.Next(game.Single(Red, 0))
		require.ErrorIs(t, err, game.ErrIllegalMove)
		_, err = s.Next(game.Single(Yellow, 1))
		require.ErrorIs(t, err, game.ErrIllegalMove)

		before := s.Board()
		require.ErrorIs(t, s.Update(game.Single(Red, 0)), game.ErrIllegalMove)
		require.Equal(t, before, s.Board(), "A failed update should leave the board untouched")
	})

	t.Run("updating in place invalidates cached moves", func(t *testing.T) {
		s, _ := New(Params{Height: 2, Width: 3, LineLength: 3})
		_, err := s.Moves()
		require.NoError(t, err)
		require.NoError(t, s.Update(game.Single(Yellow, 1)))
		require.NoError(t, s.Update(game.Single(Red, 1)))
		moves, err := s.Moves()
		require.NoError(t, err)
		require.Equal(t, map[game.Player][]int{Yellow: {0, 2}}, moves)
	})

	t.Run("rejecting impossible line lengths", func(t *testing.T) {
		_, err := New(Params{Height: 6, Width: 7, LineLength: 2})
		require.ErrorIs(t, err, game.ErrInvalidBoardDimensions)
		_, err = New(Params{Height: 3, Width: 3, LineLength: 4})
		require.ErrorIs(t, err, game.ErrInvalidBoardDimensions)
		_, err = New(Params{Height: 0, Width: 7, LineLength: 4})
		require.ErrorIs(t, err, game.ErrInvalidBoardDimensions)
	})

	t.Run("deserializing malformed snapshots", func(t *testing.T) {
		_, err := Deserialize(Snapshot{Active: "Green", Board: "....", Height: 2, Width: 2, LineLength: 3})
		require.ErrorIs(t, err, game.ErrMalformedNotation)
		_, err = Deserialize(Snapshot{Active: Red, Board: "..x.", Height: 2, Width: 2, LineLength: 3})
		require.ErrorIs(t, err, game.ErrMalformedNotation)
	})
}

func TestConnectFourPlaythrough(t *testing.T) {
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
		s, err := New(DefaultParams())
		require.NoError(t, err)
		final := gametest.Playthrough[*State, int](t, s, seed, 50, roundTrip)
		result, err := final.Result()
		require.NoError(t, err)
		require.NotNil(t, result, "A 6x7 match ends within 42 plies")
		require.Zero(t, result.Sum())
	}
}

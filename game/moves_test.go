package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckMoves(t *testing.T) {
	legal := map[Player][]int{"Yellow": {0, 1, 2}}

	t.Run("accepting a legal move of the active player", func(t *testing.T) {
		require.NoError(t, CheckMoves(legal, Single[int]("Yellow", 1)))
	})

	t.Run("rejecting a move outside the legal set", func(t *testing.T) {
		err := CheckMoves(legal, Single[int]("Yellow", 5))
		require.ErrorIs(t, err, ErrIllegalMove)
	})

	t.Run("rejecting a missing move", func(t *testing.T) {
		err := CheckMoves(legal, map[Player]int{})
		require.ErrorIs(t, err, ErrIllegalMove)
	})

	t.Run("rejecting moves of inactive players", func(t *testing.T) {
		err := CheckMoves(legal, map[Player]int{"Yellow": 0, "Red": 0})
		require.ErrorIs(t, err, ErrIllegalMove)
	})

	t.Run("rejecting any move once the match is over", func(t *testing.T) {
		err := CheckMoves[int](nil, Single[int]("Yellow", 0))
		require.ErrorIs(t, err, ErrIllegalMove)
	})
}

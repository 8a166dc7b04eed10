// Package gametest holds assertions shared by the rule engine test suites.
package gametest

import (
	"errors"
	"testing"

	"gamepack/game"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"
)

// Playthrough plays random moves from state until the match ends or maxPlies
// is reached. At every ply it checks that exactly one of moves and result is
// set, that Next leaves its receiver untouched, that Update reaches the same
// state as Next and, when roundTrip is given, that the state survives
// serialization. Positions the engine reports as unsupported end the
// playthrough early. The final state is returned.
func Playthrough[S game.State[S, M], M comparable](
	t *testing.T, state S, seed uint64, maxPlies int, roundTrip func(S) (S, error),
) S {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	for ply := 0; ply < maxPlies; ply++ {
		moves, err := state.Moves()
		if errors.Is(err, game.ErrUnsupportedFeature) {
			return state
		}
		require.NoError(t, err)
		result, err := state.Result()
		require.NoError(t, err)
		require.True(t, (moves == nil) != (result == nil),
			"Exactly one of moves and result should be set at ply %d", ply)

		if roundTrip != nil {
			copied, err := roundTrip(state)
			require.NoError(t, err)
			copiedMoves, err := copied.Moves()
			require.NoError(t, err)
			copiedResult, err := copied.Result()
			require.NoError(t, err)
			require.Equal(t, moves, copiedMoves, "Deserialized state should have the same moves")
			require.Equal(t, result, copiedResult, "Deserialized state should have the same result")
			require.Equal(t, state.Hash(), copied.Hash())
		}

		if moves == nil {
			return state
		}

		decisions := Pick(rng, moves)
		before := state.Hash()
		next, err := state.Next(decisions)
		require.NoError(t, err)
		require.Equal(t, before, state.Hash(), "Next should not modify its receiver")

		require.NoError(t, state.Update(decisions))
		require.Equal(t, next.Hash(), state.Hash(), "Update should reach the same state as Next")
	}
	return state
}

// Pick chooses one random move for every active player.
func Pick[M comparable](rng *rand.Rand, moves map[game.Player][]M) map[game.Player]M {
	players := make([]game.Player, 0, len(moves))
	for p := range moves {
		players = append(players, p)
	}
	slices.Sort(players)

	decisions := make(map[game.Player]M, len(players))
	for _, p := range players {
		options := moves[p]
		decisions[p] = options[rng.Intn(len(options))]
	}
	return decisions
}

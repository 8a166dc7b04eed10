package game

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// CheckMoves verifies that every active player submitted one of its legal
// moves and that nobody else submitted anything.
func CheckMoves[M comparable](legal map[Player][]M, moves map[Player]M) error {
	if legal == nil {
		return fmt.Errorf("%w: the match is over", ErrIllegalMove)
	}
	for player, options := range legal {
		move, ok := moves[player]
		if !ok {
			return fmt.Errorf("%w: no move for active player %s", ErrIllegalMove, player)
		}
		if !slices.Contains(options, move) {
			return fmt.Errorf("%w: %v is not a legal move for %s", ErrIllegalMove, move, player)
		}
	}
	for player := range moves {
		if _, ok := legal[player]; !ok {
			return fmt.Errorf("%w: %s is not an active player", ErrIllegalMove, player)
		}
	}
	return nil
}

// Single wraps the move of the only active player.
func Single[M comparable](player Player, move M) map[Player]M {
	return map[Player]M{player: move}
}

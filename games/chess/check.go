package chess

import (
	"gamepack/board"
	"gamepack/game"
)

// King returns the position of the player's king. Boards may lack one.
func (s *State) King(player game.Player) (board.Coord, bool) {
	var at board.Coord
	found := false
	s.board.Each(func(c board.Coord, p Piece) {
		if !found && p.Kind == King && p.Owner == player {
			at, found = c, true
		}
	})
	return at, found
}

// InCheck tells if any move of the opponent, legal or not, lands on the
// player's king.
func (s *State) InCheck(player game.Player) bool {
	king, ok := s.King(player)
	if !ok {
		return false
	}
	for _, m := range s.movesOf(game.Opponent(Players, player)) {
		if m.To == king {
			return true
		}
	}
	return false
}

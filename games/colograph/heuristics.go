package colograph

import "gamepack/game"

// ScoreDifference compares the current scores of player and its opponent,
// scaled down by twice the node count.
func ScoreDifference(s *State, player game.Player) float64 {
	diff := 0
	for p, points := range s.Scores() {
		if p == player {
			diff += points
		} else {
			diff -= points
		}
	}
	return float64(diff) / float64(s.graph.Size()) / 2
}

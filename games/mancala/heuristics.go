package mancala

import (
	"fmt"
	"math"

	"gamepack/game"
)

// FromWeights returns an evaluation weighting the seeds of every square,
// normalized by the absolute weights and the seeds on the board. Weights are
// given from North's side and negated for South. It panics when evaluating a
// board with a different number of squares.
func FromWeights(weights []float64) game.Evaluate[*State] {
	norm := 0.0
	for _, w := range weights {
		norm += math.Abs(w)
	}
	return func(s *State, player game.Player) float64 {
		if len(s.squares) != len(weights) {
			panic(fmt.Sprintf("%d weights for a board of %d squares", len(weights), len(s.squares)))
		}
		total, seeds := 0.0, 0
		for i, n := range s.squares {
			total += float64(n) * weights[i]
			seeds += n
		}
		if norm == 0 || seeds == 0 {
			return 0
		}
		total = total / norm / float64(seeds)
		if player == South {
			return -total
		}
		return total
	}
}

// DefaultWeights values North's houses at 1 and its store at 5, South's
// squares at the negation.
func DefaultWeights(houses int) []float64 {
	weights := make([]float64, 0, 2*(houses+1))
	for _, sign := range []float64{1, -1} {
		for i := 0; i < houses; i++ {
			weights = append(weights, sign)
		}
		weights = append(weights, 5*sign)
	}
	return weights
}

// DefaultHeuristic weighs the squares of a board with the given number of
// houses per side.
func DefaultHeuristic(houses int) game.Evaluate[*State] {
	return FromWeights(DefaultWeights(houses))
}

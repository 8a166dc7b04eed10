package reversi

import (
	"fmt"
	"math"

	"gamepack/board"
	"gamepack/game"
)

func pieceOf(player game.Player) byte {
	return patterns[player].piece
}

func ratio(own, other int) float64 {
	if own+other == 0 {
		return 0
	}
	return float64(own-other) / float64(own+other)
}

// PieceRatio compares the piece counts of player and its opponent.
func PieceRatio(s *State, player game.Player) float64 {
	opponent := game.Opponent(Players, player)
	return ratio(s.grid.Count(pieceOf(player)), s.grid.Count(pieceOf(opponent)))
}

// MobilityRatio compares the number of moves available to player and its
// opponent.
func MobilityRatio(s *State, player game.Player) float64 {
	opponent := game.Opponent(Players, player)
	return ratio(len(s.MovesOf(player)), len(s.MovesOf(opponent)))
}

// WeightedSquares returns an evaluation adding one weight per square, positive
// for the player's pieces and negative for the opponent's, normalized by the
// sum of the absolute weights. It panics when evaluating a board with a
// different number of squares.
func WeightedSquares(weights []float64) game.Evaluate[*State] {
	norm := 0.0
	for _, w := range weights {
		norm += math.Abs(w)
	}
	return func(s *State, player game.Player) float64 {
		text := s.grid.String()
		if len(text) != len(weights) {
			panic(fmt.Sprintf("%d weights for a board of %d squares", len(weights), len(text)))
		}
		if norm == 0 {
			return 0
		}
		own := pieceOf(player)
		total := 0.0
		for i := 0; i < len(text); i++ {
			switch text[i] {
			case board.Empty:
			case own:
				total += weights[i]
			default:
				total -= weights[i]
			}
		}
		return total / norm
	}
}

// SymmetricWeights expands the weights of the upper left quadrant to a full
// board by mirroring it on both axes. The quadrant is given column by column.
func SymmetricWeights(quadrant []float64, rows, columns int) ([]float64, error) {
	height, width := (rows+1)/2, (columns+1)/2
	if height*width > len(quadrant) {
		return nil, fmt.Errorf("%w: %d weights for a %dx%d quadrant",
			game.ErrInvalidBoardDimensions, len(quadrant), height, width)
	}
	mirror := func(i, n int) int {
		if i < (n+1)/2 {
			return i
		}
		return n - i - 1
	}
	weights := make([]float64, rows*columns)
	for r := 0; r < rows; r++ {
		for c := 0; c < columns; c++ {
			weights[r*columns+c] = quadrant[mirror(c, columns)*height+mirror(r, rows)]
		}
	}
	return weights, nil
}

// CornerWeights favours corners and borders and penalizes the squares next to
// the corners of an 8x8 board.
var CornerWeights = []float64{
	+9, -3, +3, +3,
	-3, -3, -1, -1,
	+3, -1, +1, +1,
	+3, -1, +1, +1,
}

// DefaultHeuristic mixes square weights, piece ratio and mobility ratio for
// 8x8 boards.
func DefaultHeuristic() game.Evaluate[*State] {
	weights, err := SymmetricWeights(CornerWeights, 8, 8)
	if err != nil {
		panic(err)
	}
	return game.Composite(
		game.Weighted[*State]{Evaluate: WeightedSquares(weights), Weight: 0.6},
		game.Weighted[*State]{Evaluate: PieceRatio, Weight: 0.2},
		game.Weighted[*State]{Evaluate: MobilityRatio, Weight: 0.2},
	)
}

package board

import (
	"fmt"
	"strings"

	"gamepack/game"
)

// Empty is the symbol of an unoccupied square.
const Empty = '.'

// Grid is a rectangular board stored row-major as one symbol per square.
type Grid struct {
	Dimensions
	cells []byte
}

func NewGrid(height, width int) (*Grid, error) {
	if height < 1 || width < 1 {
		return nil, fmt.Errorf("%w: %dx%d", game.ErrInvalidBoardDimensions, height, width)
	}
	cells := []byte(strings.Repeat(string(Empty), height*width))
	return &Grid{Dimensions: Dimensions{Height: height, Width: width}, cells: cells}, nil
}

// GridFromString builds a grid from its row-major string rendering.
func GridFromString(height, width int, s string) (*Grid, error) {
	g, err := NewGrid(height, width)
	if err != nil {
		return nil, err
	}
	if len(s) != height*width {
		return nil, fmt.Errorf("%w: %d squares given for a %dx%d board",
			game.ErrInvalidBoardDimensions, len(s), height, width)
	}
	copy(g.cells, s)
	return g, nil
}

func (g *Grid) index(c Coord) int {
	if !g.IsValid(c) {
		panic(fmt.Sprintf("coordinate %v outside of %dx%d board", c, g.Height, g.Width))
	}
	return c.Row*g.Width + c.Col
}

func (g *Grid) Square(c Coord) byte {
	return g.cells[g.index(c)]
}

// Place returns a copy of the grid with symbol at c.
func (g *Grid) Place(c Coord, symbol byte) *Grid {
	clone := g.Clone()
	clone.Set(c, symbol)
	return clone
}

// Set writes symbol at c in place.
func (g *Grid) Set(c Coord, symbol byte) {
	g.cells[g.index(c)] = symbol
}

func (g *Grid) Clone() *Grid {
	cells := make([]byte, len(g.cells))
	copy(cells, g.cells)
	return &Grid{Dimensions: g.Dimensions, cells: cells}
}

// AsString renders the symbols found along coords.
func (g *Grid) AsString(coords []Coord) string {
	var sb strings.Builder
	sb.Grow(len(coords))
	for _, c := range coords {
		sb.WriteByte(g.Square(c))
	}
	return sb.String()
}

// Lines returns the shared lines of this grid's dimensions.
func (g *Grid) Lines() [][]Coord {
	return Lines(g.Height, g.Width)
}

func (g *Grid) Count(symbol byte) int {
	return strings.Count(string(g.cells), string(symbol))
}

func (g *Grid) String() string {
	return string(g.cells)
}

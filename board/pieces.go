package board

import (
	"fmt"

	"gamepack/game"
)

// Pieces is a sparse board holding at most one piece per square.
type Pieces[P any] struct {
	Dimensions
	squares map[Coord]P
}

func NewPieces[P any](height, width int) (*Pieces[P], error) {
	if height < 1 || width < 1 {
		return nil, fmt.Errorf("%w: %dx%d", game.ErrInvalidBoardDimensions, height, width)
	}
	return &Pieces[P]{
		Dimensions: Dimensions{Height: height, Width: width},
		squares:    make(map[Coord]P),
	}, nil
}

func (b *Pieces[P]) Square(c Coord) (P, bool) {
	p, ok := b.squares[c]
	return p, ok
}

func (b *Pieces[P]) IsEmpty(c Coord) bool {
	_, ok := b.squares[c]
	return !ok
}

// Set puts p at c in place, replacing whatever was there.
func (b *Pieces[P]) Set(c Coord, p P) {
	if !b.IsValid(c) {
		panic(fmt.Sprintf("coordinate %v outside of %dx%d board", c, b.Height, b.Width))
	}
	b.squares[c] = p
}

// Remove empties c in place.
func (b *Pieces[P]) Remove(c Coord) {
	delete(b.squares, c)
}

// Place returns a copy of the board with p at c.
func (b *Pieces[P]) Place(c Coord, p P) *Pieces[P] {
	clone := b.Clone()
	clone.Set(c, p)
	return clone
}

func (b *Pieces[P]) Clone() *Pieces[P] {
	squares := make(map[Coord]P, len(b.squares))
	for k, v := range b.squares {
		squares[k] = v
	}
	return &Pieces[P]{Dimensions: b.Dimensions, squares: squares}
}

func (b *Pieces[P]) Len() int {
	return len(b.squares)
}

// Each visits the pieces in row-major order.
func (b *Pieces[P]) Each(visit func(c Coord, p P)) {
	for r := 0; r < b.Height; r++ {
		for col := 0; col < b.Width; col++ {
			c := Coord{Row: r, Col: col}
			if p, ok := b.squares[c]; ok {
				visit(c, p)
			}
		}
	}
}

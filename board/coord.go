package board

import "fmt"

type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (c Coord) Add(d Direction) Coord {
	return Coord{Row: c.Row + d.Row, Col: c.Col + d.Col}
}

func (c Coord) String() string {
	return fmt.Sprintf("%d,%d", c.Row, c.Col)
}

// Direction is a single step on a rectangular board.
type Direction struct {
	Row int
	Col int
}

var (
	Orthogonal = []Direction{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
	Diagonal   = []Direction{{-1, -1}, {-1, 1}, {1, 1}, {1, -1}}
	Every      = append(append([]Direction{}, Orthogonal...), Diagonal...)
)

// Dimensions identify a board geometry.
type Dimensions struct {
	Height int
	Width  int
}

func (d Dimensions) IsValid(c Coord) bool {
	return c.Row >= 0 && c.Row < d.Height && c.Col >= 0 && c.Col < d.Width
}

// Walks returns, for every direction, the ray of coordinates starting at
// origin and moving outwards until the edge of the board. Each walk includes
// the origin as its first element.
func (d Dimensions) Walks(origin Coord, directions []Direction) [][]Coord {
	walks := make([][]Coord, 0, len(directions))
	for _, dir := range directions {
		walk := []Coord{origin}
		for c := origin.Add(dir); d.IsValid(c); c = c.Add(dir) {
			walk = append(walk, c)
		}
		walks = append(walks, walk)
	}
	return walks
}

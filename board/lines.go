package board

import "sync"

// minLineLength excludes lines too short to hold any pattern of interest.
const minLineLength = 3

type lineCache struct {
	sync.RWMutex
	entries map[Dimensions][][]Coord
}

var lines = &lineCache{entries: make(map[Dimensions][][]Coord)}

// Lines returns every row, column and diagonal of a height x width board that
// is longer than two squares. Results are computed once per dimensions and
// shared, so callers must not modify them.
func Lines(height, width int) [][]Coord {
	key := Dimensions{Height: height, Width: width}

	lines.RLock()
	result, ok := lines.entries[key]
	lines.RUnlock()
	if ok {
		return result
	}

	lines.Lock()
	defer lines.Unlock()
	if result, ok := lines.entries[key]; ok {
		return result
	}
	result = computeLines(key)
	lines.entries[key] = result
	return result
}

func computeLines(d Dimensions) [][]Coord {
	var result [][]Coord
	keep := func(line []Coord) {
		if len(line) >= minLineLength {
			result = append(result, line)
		}
	}
	// Horizontals
	for r := 0; r < d.Height; r++ {
		keep(ray(d, Coord{r, 0}, Direction{0, 1}))
	}
	// Verticals
	for c := 0; c < d.Width; c++ {
		keep(ray(d, Coord{0, c}, Direction{1, 0}))
	}
	// Diagonals going down and right, starting from the left column then the top row
	for r := d.Height - 1; r > 0; r-- {
		keep(ray(d, Coord{r, 0}, Direction{1, 1}))
	}
	for c := 0; c < d.Width; c++ {
		keep(ray(d, Coord{0, c}, Direction{1, 1}))
	}
	// Diagonals going down and left, starting from the top row then the right column
	for c := 0; c < d.Width; c++ {
		keep(ray(d, Coord{0, c}, Direction{1, -1}))
	}
	for r := 1; r < d.Height; r++ {
		keep(ray(d, Coord{r, d.Width - 1}, Direction{1, -1}))
	}
	return result
}

func ray(d Dimensions, origin Coord, dir Direction) []Coord {
	var line []Coord
	for c := origin; d.IsValid(c); c = c.Add(dir) {
		line = append(line, c)
	}
	return line
}

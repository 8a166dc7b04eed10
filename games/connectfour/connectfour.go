// Package connectfour implements the four-in-a-row connection game on a
// gravity grid whose row 0 is the bottom row.
package connectfour

import (
	"fmt"
	"strings"

	"gamepack/board"
	"gamepack/game"
)

const Identifier = "ConnectFour"

const (
	Yellow game.Player = "Yellow"
	Red    game.Player = "Red"
)

var Players = []game.Player{Yellow, Red}

type Params struct {
	Height     int `yaml:"height"`
	Width      int `yaml:"width"`
	LineLength int `yaml:"lineLength"`
}

func DefaultParams() Params {
	return Params{Height: 6, Width: 7, LineLength: 4}
}

type State struct {
	grid       *board.Grid
	active     game.Player
	lineLength int

	moves  map[game.Player][]int
	result game.Result
	scored bool
}

var (
	_ game.State[*State, int]     = (*State)(nil)
	_ game.Serializable[Snapshot] = (*State)(nil)
)

// New returns the empty board of the given size with Yellow to move.
func New(params Params) (*State, error) {
	grid, err := board.NewGrid(params.Height, params.Width)
	if err != nil {
		return nil, err
	}
	return newState(Yellow, grid, params.LineLength)
}

func newState(active game.Player, grid *board.Grid, lineLength int) (*State, error) {
	if lineLength < 3 || (lineLength > grid.Height && lineLength > grid.Width) {
		return nil, fmt.Errorf("%w: line length %d on a %dx%d board",
			game.ErrInvalidBoardDimensions, lineLength, grid.Height, grid.Width)
	}
	return &State{grid: grid, active: active, lineLength: lineLength}, nil
}

func symbol(player game.Player) byte {
	if player == Yellow {
		return '0'
	}
	return '1'
}

func (s *State) ActivePlayers() []game.Player {
	return []game.Player{s.active}
}

func (s *State) Params() Params {
	return Params{Height: s.grid.Height, Width: s.grid.Width, LineLength: s.lineLength}
}

// Board returns the row-major rendering of the grid, bottom row first.
func (s *State) Board() string {
	return s.grid.String()
}

func (s *State) Moves() (map[game.Player][]int, error) {
	if s.moves != nil {
		return s.moves, nil
	}
	result, err := s.Result()
	if err != nil || result != nil {
		return nil, err
	}
	top := s.grid.Height - 1
	var columns []int
	for col := 0; col < s.grid.Width; col++ {
		if s.grid.Square(board.Coord{Row: top, Col: col}) == board.Empty {
			columns = append(columns, col)
		}
	}
	if len(columns) == 0 {
		return nil, nil
	}
	s.moves = map[game.Player][]int{s.active: columns}
	return s.moves, nil
}

// landing returns the lowest empty square of the column.
func (s *State) landing(col int) board.Coord {
	for row := 0; row < s.grid.Height; row++ {
		c := board.Coord{Row: row, Col: col}
		if s.grid.Square(c) == board.Empty {
			return c
		}
	}
	panic(fmt.Sprintf("column %d is full", col))
}

func (s *State) check(moves map[game.Player]int) (board.Coord, error) {
	legal, err := s.Moves()
	if err != nil {
		return board.Coord{}, err
	}
	if err := game.CheckMoves(legal, moves); err != nil {
		return board.Coord{}, err
	}
	return s.landing(moves[s.active]), nil
}

func (s *State) Next(moves map[game.Player]int) (*State, error) {
	target, err := s.check(moves)
	if err != nil {
		return nil, err
	}
	return &State{
		grid:       s.grid.Place(target, symbol(s.active)),
		active:     game.Opponent(Players, s.active),
		lineLength: s.lineLength,
	}, nil
}

func (s *State) Update(moves map[game.Player]int) error {
	target, err := s.check(moves)
	if err != nil {
		return err
	}
	s.grid.Set(target, symbol(s.active))
	s.active = game.Opponent(Players, s.active)
	s.moves, s.result, s.scored = nil, nil, false
	return nil
}

func (s *State) Result() (game.Result, error) {
	if s.scored {
		return s.result, nil
	}
	s.result, s.scored = s.score(), true
	return s.result, nil
}

func (s *State) score() game.Result {
	runs := map[game.Player]string{
		Yellow: strings.Repeat("0", s.lineLength),
		Red:    strings.Repeat("1", s.lineLength),
	}
	for _, line := range s.grid.Lines() {
		if len(line) < s.lineLength {
			continue
		}
		text := s.grid.AsString(line)
		for _, player := range Players {
			if strings.Contains(text, runs[player]) {
				return game.Victory(Players, player)
			}
		}
	}
	if s.grid.Count(board.Empty) == 0 {
		return game.Tied(Players)
	}
	return nil
}

func (s *State) Hash() game.StateHash {
	return game.NewHasher().
		String(string(s.active)).
		Int(s.lineLength).
		Int(s.grid.Width).
		String(s.grid.String()).
		Sum()
}

type Snapshot struct {
	Active     game.Player `json:"active"`
	Board      string      `json:"board"`
	Height     int         `json:"height"`
	Width      int         `json:"width"`
	LineLength int         `json:"lineLength"`
}

func (s *State) Serialize() Snapshot {
	return Snapshot{
		Active:     s.active,
		Board:      s.grid.String(),
		Height:     s.grid.Height,
		Width:      s.grid.Width,
		LineLength: s.lineLength,
	}
}

func Deserialize(snapshot Snapshot) (*State, error) {
	if snapshot.Active != Yellow && snapshot.Active != Red {
		return nil, fmt.Errorf("%w: unknown player %q", game.ErrMalformedNotation, snapshot.Active)
	}
	for i := 0; i < len(snapshot.Board); i++ {
		if b := snapshot.Board[i]; b != board.Empty && b != '0' && b != '1' {
			return nil, fmt.Errorf("%w: unexpected square %q", game.ErrMalformedNotation, b)
		}
	}
	grid, err := board.GridFromString(snapshot.Height, snapshot.Width, snapshot.Board)
	if err != nil {
		return nil, err
	}
	return newState(snapshot.Active, grid, snapshot.LineLength)
}

// String renders the board top row first, one line per row.
func (s *State) String() string {
	var sb strings.Builder
	text := s.grid.String()
	for row := s.grid.Height - 1; row >= 0; row-- {
		sb.WriteString(text[row*s.grid.Width : (row+1)*s.grid.Width])
		sb.WriteByte('\n')
	}
	return sb.String()
}

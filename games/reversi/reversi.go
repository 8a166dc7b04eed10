// Package reversi implements the line-flipping games Reversi, which opens on
// an empty board whose centre squares must be filled first, and Othello, which
// starts from the four seeded centre pieces and lets a stuck player pass.
package reversi

import (
	"fmt"
	"regexp"

	"gamepack/board"
	"gamepack/game"
)

// Identifiers double as the rule set names.
const (
	Reversi = "Reversi"
	Othello = "Othello"
)

const (
	Black game.Player = "Black"
	White game.Player = "White"
)

var Players = []game.Player{Black, White}

type Params struct {
	Rows    int `yaml:"rows"`
	Columns int `yaml:"columns"`
}

func DefaultParams() Params {
	return Params{Rows: 8, Columns: 8}
}

type pattern struct {
	piece   byte
	capture []*regexp.Regexp
	flip    *regexp.Regexp
}

var patterns = map[game.Player]pattern{
	Black: {
		piece:   'B',
		capture: []*regexp.Regexp{regexp.MustCompile(`\.W+B`), regexp.MustCompile(`BW+\.`)},
		flip:    regexp.MustCompile(`^W+B`),
	},
	White: {
		piece:   'W',
		capture: []*regexp.Regexp{regexp.MustCompile(`\.B+W`), regexp.MustCompile(`WB+\.`)},
		flip:    regexp.MustCompile(`^B+W`),
	},
}

type State struct {
	rules  string
	grid   *board.Grid
	active game.Player

	moves  []board.Coord
	cached bool
}

var (
	_ game.State[*State, board.Coord] = (*State)(nil)
	_ game.Serializable[Snapshot]     = (*State)(nil)
)

// NewReversi returns an empty board with Black to move.
func NewReversi(params Params) (*State, error) {
	grid, err := newGrid(params.Rows, params.Columns)
	if err != nil {
		return nil, err
	}
	return newState(Reversi, Black, grid), nil
}

// NewOthello returns a board seeded with two pieces of each colour on the
// centre squares, with Black to move.
func NewOthello(params Params) (*State, error) {
	grid, err := newGrid(params.Rows, params.Columns)
	if err != nil {
		return nil, err
	}
	h, w := params.Rows/2, params.Columns/2
	grid.Set(board.Coord{Row: h, Col: w - 1}, 'W')
	grid.Set(board.Coord{Row: h - 1, Col: w}, 'W')
	grid.Set(board.Coord{Row: h, Col: w}, 'B')
	grid.Set(board.Coord{Row: h - 1, Col: w - 1}, 'B')
	return newState(Othello, Black, grid), nil
}

func newGrid(rows, columns int) (*board.Grid, error) {
	if rows < 4 || columns < 4 || rows%2 != 0 || columns%2 != 0 {
		return nil, fmt.Errorf("%w: %dx%d, dimensions must be even and at least 4",
			game.ErrInvalidBoardDimensions, rows, columns)
	}
	return board.NewGrid(rows, columns)
}

func newState(rules string, active game.Player, grid *board.Grid) *State {
	s := &State{rules: rules, grid: grid, active: active}
	s.pass()
	return s
}

// pass hands the turn to the opponent when the active player is stuck and the
// opponent is not, which only Othello allows.
func (s *State) pass() {
	if s.rules != Othello || len(s.MovesOf(s.active)) > 0 {
		return
	}
	opponent := game.Opponent(Players, s.active)
	if len(s.MovesOf(opponent)) > 0 {
		s.active = opponent
		s.moves, s.cached = nil, false
	}
}

func (s *State) Rules() string {
	return s.rules
}

func (s *State) Board() string {
	return s.grid.String()
}

func (s *State) ActivePlayers() []game.Player {
	return []game.Player{s.active}
}

func (s *State) centres() []board.Coord {
	h, w := s.grid.Height/2, s.grid.Width/2
	return []board.Coord{
		{Row: h, Col: w - 1},
		{Row: h - 1, Col: w},
		{Row: h, Col: w},
		{Row: h - 1, Col: w - 1},
	}
}

// MovesOf returns the squares where player could move if it were active, in
// the order they are found scanning the board lines.
func (s *State) MovesOf(player game.Player) []board.Coord {
	if player == s.active && s.cached {
		return s.moves
	}
	moves := s.scan(player)
	if player == s.active {
		s.moves, s.cached = moves, true
	}
	return moves
}

func (s *State) scan(player game.Player) []board.Coord {
	if s.rules == Reversi {
		var empty []board.Coord
		for _, c := range s.centres() {
			if s.grid.Square(c) == board.Empty {
				empty = append(empty, c)
			}
		}
		if len(empty) > 0 {
			return empty
		}
	}

	var moves []board.Coord
	seen := make(map[board.Coord]bool)
	for _, line := range s.grid.Lines() {
		text := s.grid.AsString(line)
		for _, re := range patterns[player].capture {
			for _, m := range re.FindAllStringIndex(text, -1) {
				c := line[m[1]-1]
				if text[m[0]] == board.Empty {
					c = line[m[0]]
				}
				if !seen[c] {
					seen[c] = true
					moves = append(moves, c)
				}
			}
		}
	}
	return moves
}

func (s *State) Moves() (map[game.Player][]board.Coord, error) {
	moves := s.MovesOf(s.active)
	if len(moves) == 0 {
		return nil, nil
	}
	return map[game.Player][]board.Coord{s.active: moves}, nil
}

// flips returns every square that changes colour when the active player moves
// to target, target included.
func (s *State) flips(target board.Coord) []board.Coord {
	flip := patterns[s.active].flip
	changed := []board.Coord{target}
	for _, walk := range s.grid.Walks(target, board.Every) {
		if m := flip.FindStringIndex(s.grid.AsString(walk[1:])); m != nil {
			changed = append(changed, walk[1:m[1]]...)
		}
	}
	return changed
}

func (s *State) check(moves map[game.Player]board.Coord) ([]board.Coord, error) {
	legal, err := s.Moves()
	if err != nil {
		return nil, err
	}
	if err := game.CheckMoves(legal, moves); err != nil {
		return nil, err
	}
	return s.flips(moves[s.active]), nil
}

func (s *State) Next(moves map[game.Player]board.Coord) (*State, error) {
	changed, err := s.check(moves)
	if err != nil {
		return nil, err
	}
	grid := s.grid.Clone()
	for _, c := range changed {
		grid.Set(c, patterns[s.active].piece)
	}
	return newState(s.rules, game.Opponent(Players, s.active), grid), nil
}

func (s *State) Update(moves map[game.Player]board.Coord) error {
	changed, err := s.check(moves)
	if err != nil {
		return err
	}
	for _, c := range changed {
		s.grid.Set(c, patterns[s.active].piece)
	}
	s.active = game.Opponent(Players, s.active)
	s.moves, s.cached = nil, false
	s.pass()
	return nil
}

// Result is the piece count difference once the active player cannot move.
func (s *State) Result() (game.Result, error) {
	if len(s.MovesOf(s.active)) > 0 {
		return nil, nil
	}
	diff := s.grid.Count('B') - s.grid.Count('W')
	return game.ZeroSum(Players, float64(diff), Black), nil
}

// ResultBounds are reached when one colour covers the whole board.
func (s *State) ResultBounds() (float64, float64) {
	squares := float64(s.grid.Height * s.grid.Width)
	return -squares, squares
}

func (s *State) Hash() game.StateHash {
	return game.NewHasher().
		String(s.rules).
		String(string(s.active)).
		Int(s.grid.Width).
		String(s.grid.String()).
		Sum()
}

type Snapshot struct {
	Rules   string      `json:"rules"`
	Active  game.Player `json:"active"`
	Rows    int         `json:"rows"`
	Columns int         `json:"columns"`
	Board   string      `json:"board"`
}

func (s *State) Serialize() Snapshot {
	return Snapshot{
		Rules:   s.rules,
		Active:  s.active,
		Rows:    s.grid.Height,
		Columns: s.grid.Width,
		Board:   s.grid.String(),
	}
}

func Deserialize(snapshot Snapshot) (*State, error) {
	if snapshot.Rules != Reversi && snapshot.Rules != Othello {
		return nil, fmt.Errorf("%w: unknown rules %q", game.ErrMalformedNotation, snapshot.Rules)
	}
	if snapshot.Active != Black && snapshot.Active != White {
		return nil, fmt.Errorf("%w: unknown player %q", game.ErrMalformedNotation, snapshot.Active)
	}
	for i := 0; i < len(snapshot.Board); i++ {
		if b := snapshot.Board[i]; b != board.Empty && b != 'B' && b != 'W' {
			return nil, fmt.Errorf("%w: unexpected square %q", game.ErrMalformedNotation, b)
		}
	}
	if _, err := newGrid(snapshot.Rows, snapshot.Columns); err != nil {
		return nil, err
	}
	grid, err := board.GridFromString(snapshot.Rows, snapshot.Columns, snapshot.Board)
	if err != nil {
		return nil, err
	}
	return newState(snapshot.Rules, snapshot.Active, grid), nil
}

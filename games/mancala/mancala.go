// Package mancala implements the Kalah sowing game. The board is a ring of
// squares: North's houses, North's store, South's houses and South's store.
package mancala

import (
	"fmt"
	"strconv"
	"strings"

	"gamepack/game"
)

const Identifier = "Mancala"

const (
	North game.Player = "North"
	South game.Player = "South"
)

var Players = []game.Player{North, South}

type Params struct {
	Seeds  int `yaml:"seeds"`
	Houses int `yaml:"houses"`
	// EmptyCapture only moves the capturing seed to the store, leaving the
	// opponent's seeds in place.
	EmptyCapture bool `yaml:"emptyCapture"`
	// CountRemainingSeeds adds the seeds left on each side to its final score.
	CountRemainingSeeds bool `yaml:"countRemainingSeeds"`
}

func DefaultParams() Params {
	return Params{Seeds: 4, Houses: 6, CountRemainingSeeds: true}
}

type State struct {
	squares             []int
	active              game.Player
	emptyCapture        bool
	countRemainingSeeds bool

	moves  map[game.Player][]int
	result game.Result
	scored bool
}

var (
	_ game.State[*State, int]     = (*State)(nil)
	_ game.Serializable[Snapshot] = (*State)(nil)
)

// New returns the initial board with North to move.
func New(params Params) (*State, error) {
	if params.Houses < 1 || params.Seeds < 1 {
		return nil, fmt.Errorf("%w: %d houses with %d seeds",
			game.ErrInvalidBoardDimensions, params.Houses, params.Seeds)
	}
	squares := make([]int, 0, 2*(params.Houses+1))
	for side := 0; side < 2; side++ {
		for i := 0; i < params.Houses; i++ {
			squares = append(squares, params.Seeds)
		}
		squares = append(squares, 0)
	}
	return &State{
		squares:             squares,
		active:              North,
		emptyCapture:        params.EmptyCapture,
		countRemainingSeeds: params.CountRemainingSeeds,
	}, nil
}

func (s *State) ActivePlayers() []game.Player {
	return []game.Player{s.active}
}

// Squares returns a copy of the board.
func (s *State) Squares() []int {
	return append([]int(nil), s.squares...)
}

func (s *State) houseCount() int {
	return len(s.squares)/2 - 1
}

// Store returns the index of the player's store.
func (s *State) Store(player game.Player) int {
	switch player {
	case North:
		return len(s.squares)/2 - 1
	case South:
		return len(s.squares) - 1
	default:
		panic("unknown player " + string(player))
	}
}

// Houses returns the indexes of the player's houses.
func (s *State) Houses(player game.Player) []int {
	first := 0
	if player == South {
		first = len(s.squares) / 2
	}
	houses := make([]int, s.houseCount())
	for i := range houses {
		houses[i] = first + i
	}
	return houses
}

func (s *State) owns(player game.Player, square int) bool {
	half := len(s.squares) / 2
	if player == North {
		return square < half-1
	}
	return square >= half && square < len(s.squares)-1
}

// OppositeHouse returns the house facing the player's house i, or -1 when i is
// not one of the player's houses.
func (s *State) OppositeHouse(player game.Player, i int) int {
	if !s.owns(player, i) {
		return -1
	}
	return 2*s.houseCount() - i
}

// NextSquare returns the square following i when the player sows, skipping the
// opponent's store.
func (s *State) NextSquare(player game.Player, i int) int {
	skip := s.Store(game.Opponent(Players, player))
	for {
		i = (i + 1) % len(s.squares)
		if i != skip {
			return i
		}
	}
}

// Scores returns each player's store, plus its remaining seeds if configured,
// or nil while both sides still have seeds.
func (s *State) Scores() map[game.Player]int {
	sides := make(map[game.Player]int, len(Players))
	for _, player := range Players {
		for _, h := range s.Houses(player) {
			sides[player] += s.squares[h]
		}
	}
	if sides[North] > 0 && sides[South] > 0 {
		return nil
	}
	scores := make(map[game.Player]int, len(Players))
	for _, player := range Players {
		scores[player] = s.squares[s.Store(player)]
		if s.countRemainingSeeds {
			scores[player] += sides[player]
		}
	}
	return scores
}

func (s *State) Result() (game.Result, error) {
	if s.scored {
		return s.result, nil
	}
	if scores := s.Scores(); scores != nil {
		s.result = game.ZeroSum(Players, float64(scores[North]-scores[South]), North)
	}
	s.scored = true
	return s.result, nil
}

func (s *State) Moves() (map[game.Player][]int, error) {
	if s.moves != nil {
		return s.moves, nil
	}
	result, err := s.Result()
	if err != nil || result != nil {
		return nil, err
	}
	var houses []int
	for _, h := range s.Houses(s.active) {
		if s.squares[h] > 0 {
			houses = append(houses, h)
		}
	}
	if len(houses) == 0 {
		return nil, nil
	}
	s.moves = map[game.Player][]int{s.active: houses}
	return s.moves, nil
}

// sow plays house on squares and returns the player moving next.
func (s *State) sow(squares []int, house int) game.Player {
	player := s.active
	seeds := squares[house]
	squares[house] = 0
	last := house
	for ; seeds > 0; seeds-- {
		last = s.NextSquare(player, last)
		squares[last]++
	}
	store := s.Store(player)
	if last == store {
		return player
	}
	opposite := s.OppositeHouse(player, last)
	if opposite >= 0 && squares[last] == 1 && squares[opposite] > 0 {
		squares[store]++
		squares[last] = 0
		if !s.emptyCapture {
			squares[store] += squares[opposite]
			squares[opposite] = 0
		}
	}
	return game.Opponent(Players, player)
}

func (s *State) check(moves map[game.Player]int) error {
	legal, err := s.Moves()
	if err != nil {
		return err
	}
	return game.CheckMoves(legal, moves)
}

func (s *State) Next(moves map[game.Player]int) (*State, error) {
	if err := s.check(moves); err != nil {
		return nil, err
	}
	squares := s.Squares()
	next := s.sow(squares, moves[s.active])
	return &State{
		squares:             squares,
		active:              next,
		emptyCapture:        s.emptyCapture,
		countRemainingSeeds: s.countRemainingSeeds,
	}, nil
}

func (s *State) Update(moves map[game.Player]int) error {
	if err := s.check(moves); err != nil {
		return err
	}
	s.active = s.sow(s.squares, moves[s.active])
	s.moves, s.result, s.scored = nil, nil, false
	return nil
}

// ResultBounds uses every seed on the board, which is hardly ever reached.
func (s *State) ResultBounds() (float64, float64) {
	total := 0
	for _, n := range s.squares {
		total += n
	}
	return -float64(total), float64(total)
}

func (s *State) Hash() game.StateHash {
	h := game.NewHasher().String(string(s.active))
	for _, n := range s.squares {
		h.Int(n)
	}
	if s.emptyCapture {
		h.Int(1)
	}
	if s.countRemainingSeeds {
		h.Int(2)
	}
	return h.Sum()
}

// Key identifies the position compactly: the active player's initial followed
// by every square in two base 36 digits.
func (s *State) Key() string {
	var sb strings.Builder
	sb.WriteByte(string(s.active)[0])
	for _, n := range s.squares {
		digits := "00" + strconv.FormatInt(int64(n), 36)
		sb.WriteString(digits[len(digits)-2:])
	}
	return sb.String()
}

// PrintBoard draws North's houses right to left over South's, with the stores
// on either side.
func (s *State) PrintBoard() string {
	pad := func(n int) string {
		return fmt.Sprintf("%02d", n)
	}
	north := s.Houses(North)
	northHouses := make([]string, len(north))
	for i, h := range north {
		northHouses[len(north)-1-i] = pad(s.squares[h])
	}
	var southHouses []string
	for _, h := range s.Houses(South) {
		southHouses = append(southHouses, pad(s.squares[h]))
	}
	n := len(northHouses)
	return "   " + strings.Join(northHouses, " | ") + "   \n" +
		pad(s.squares[s.Store(North)]) + strings.Repeat(" ", n*2+(n-1)*3+2) + pad(s.squares[s.Store(South)]) + "\n" +
		"   " + strings.Join(southHouses, " | ") + "   "
}

type Snapshot struct {
	Active              game.Player `json:"active"`
	Board               []int       `json:"board"`
	EmptyCapture        bool        `json:"emptyCapture"`
	CountRemainingSeeds bool        `json:"countRemainingSeeds"`
}

func (s *State) Serialize() Snapshot {
	return Snapshot{
		Active:              s.active,
		Board:               s.Squares(),
		EmptyCapture:        s.emptyCapture,
		CountRemainingSeeds: s.countRemainingSeeds,
	}
}

func Deserialize(snapshot Snapshot) (*State, error) {
	if snapshot.Active != North && snapshot.Active != South {
		return nil, fmt.Errorf("%w: unknown player %q", game.ErrMalformedNotation, snapshot.Active)
	}
	if n := len(snapshot.Board); n < 4 || n%2 != 0 {
		return nil, fmt.Errorf("%w: board of %d squares", game.ErrInvalidBoardDimensions, n)
	}
	for i, n := range snapshot.Board {
		if n < 0 {
			return nil, fmt.Errorf("%w: %d seeds in square %d", game.ErrMalformedNotation, n, i)
		}
	}
	return &State{
		squares:             append([]int(nil), snapshot.Board...),
		active:              snapshot.Active,
		emptyCapture:        snapshot.EmptyCapture,
		countRemainingSeeds: snapshot.CountRemainingSeeds,
	}, nil
}

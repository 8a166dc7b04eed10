// Package chess implements a partial game of chess: piece movement,
// promotions and position notation, without castling or en passant. Positions
// where the side to move is in check are not resolved and report
// game.ErrUnsupportedFeature.
package chess

import (
	"fmt"

	"gamepack/board"
	"gamepack/game"
)

const Identifier = "Chess"

const (
	White game.Player = "White"
	Black game.Player = "Black"
)

var Players = []game.Player{White, Black}

// InitialFEN is the standard starting position. White starts on the bottom
// rows and moves towards row 0.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

type MoveKind int

const (
	Step MoveKind = iota
	Promote
)

type Move struct {
	Kind      MoveKind
	From      board.Coord
	To        board.Coord
	Promotion Kind
}

func step(from, to board.Coord) Move {
	return Move{Kind: Step, From: from, To: to}
}

// String renders the move in coordinate notation, e.g. "e2e4" or "a7a8q".
func (m Move) String() string {
	s := SquareName(m.From) + SquareName(m.To)
	if m.Kind == Promote {
		s += string(kindSymbols[m.Promotion])
	}
	return s
}

type State struct {
	board     *Board
	active    game.Player
	castling  string
	enPassant *board.Coord
	halfMoves int
	fullMoves int

	moves map[game.Player][]Move
}

var (
	_ game.State[*State, Move]    = (*State)(nil)
	_ game.Serializable[Snapshot] = (*State)(nil)
)

func New() *State {
	s, err := ParseFEN(InitialFEN)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *State) ActivePlayers() []game.Player {
	return []game.Player{s.active}
}

func (s *State) Board() *Board {
	return s.board
}

func (s *State) HalfMoves() int {
	return s.halfMoves
}

func (s *State) FullMoves() int {
	return s.fullMoves
}

func (s *State) Moves() (map[game.Player][]Move, error) {
	if s.moves != nil {
		return s.moves, nil
	}
	if s.InCheck(s.active) {
		return nil, fmt.Errorf("%w: %s is in check", game.ErrUnsupportedFeature, s.active)
	}
	// Moves are pseudo-legal, so the previous move may have exposed its own king.
	if opponent := game.Opponent(Players, s.active); s.InCheck(opponent) {
		return nil, fmt.Errorf("%w: %s left its king attacked", game.ErrUnsupportedFeature, opponent)
	}
	moves := s.movesOf(s.active)
	if len(moves) == 0 {
		return nil, nil
	}
	s.moves = map[game.Player][]Move{s.active: moves}
	return s.moves, nil
}

func (s *State) movesOf(player game.Player) []Move {
	var moves []Move
	s.board.Each(func(c board.Coord, p Piece) {
		if p.Owner == player {
			moves = append(moves, PieceMoves(s.board, c, p)...)
		}
	})
	return moves
}

// Result is a draw once the side to move is stuck without being in check.
func (s *State) Result() (game.Result, error) {
	moves, err := s.Moves()
	if err != nil {
		return nil, err
	}
	if moves != nil {
		return nil, nil
	}
	return game.Tied(Players), nil
}

// apply plays the move on b and updates the counters of s.
func (s *State) apply(b *Board, m Move) {
	piece, _ := b.Square(m.From)
	_, capture := b.Square(m.To)
	b.Remove(m.From)
	if m.Kind == Promote {
		piece = Piece{Kind: m.Promotion, Owner: piece.Owner}
	}
	b.Set(m.To, piece)

	if piece.Kind == Pawn || m.Kind == Promote || capture {
		s.halfMoves = 0
	} else {
		s.halfMoves++
	}
	if s.active == Black {
		s.fullMoves++
	}
	s.enPassant = nil
	s.active = game.Opponent(Players, s.active)
	s.moves = nil
}

func (s *State) check(moves map[game.Player]Move) error {
	legal, err := s.Moves()
	if err != nil {
		return err
	}
	return game.CheckMoves(legal, moves)
}

func (s *State) Next(moves map[game.Player]Move) (*State, error) {
	if err := s.check(moves); err != nil {
		return nil, err
	}
	next := &State{
		board:     s.board.Clone(),
		active:    s.active,
		castling:  s.castling,
		halfMoves: s.halfMoves,
		fullMoves: s.fullMoves,
	}
	next.apply(next.board, moves[s.active])
	return next, nil
}

func (s *State) Update(moves map[game.Player]Move) error {
	if err := s.check(moves); err != nil {
		return err
	}
	s.apply(s.board, moves[s.active])
	return nil
}

func (s *State) Hash() game.StateHash {
	return game.NewHasher().String(s.FEN()).Sum()
}

// Snapshot is the position in Forsyth-Edwards notation.
type Snapshot string

func (s *State) Serialize() Snapshot {
	return Snapshot(s.FEN())
}

func Deserialize(snapshot Snapshot) (*State, error) {
	return ParseFEN(string(snapshot))
}

func (s *State) String() string {
	return s.FEN()
}

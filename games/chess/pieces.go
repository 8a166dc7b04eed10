package chess

import (
	"gamepack/board"
	"gamepack/game"
)

type Kind int

const (
	Pawn Kind = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

// Promotions lists the kinds a pawn may become, in the order moves are
// generated.
var Promotions = []Kind{Knight, Bishop, Rook, Queen}

var kindSymbols = map[Kind]byte{Pawn: 'p', Knight: 'n', Bishop: 'b', Rook: 'r', Queen: 'q', King: 'k'}

func (k Kind) String() string {
	switch k {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "Unknown"
	}
}

type Piece struct {
	Kind  Kind
	Owner game.Player
}

// Symbol is the piece letter, uppercase for White.
func (p Piece) Symbol() byte {
	s := kindSymbols[p.Kind]
	if p.Owner == White {
		return s - 'a' + 'A'
	}
	return s
}

type Board = board.Pieces[Piece]

var knightDeltas = []board.Direction{
	{Row: 2, Col: 1}, {Row: 1, Col: 2}, {Row: 2, Col: -1}, {Row: -1, Col: 2},
	{Row: -2, Col: -1}, {Row: -1, Col: -2}, {Row: -2, Col: 1}, {Row: 1, Col: -2},
}

// PieceMoves returns the moves of the piece at from, ignoring whether they
// leave its own king in check.
func PieceMoves(b *Board, from board.Coord, piece Piece) []Move {
	switch piece.Kind {
	case Pawn:
		return pawnMoves(b, from, piece)
	case Knight:
		return leaperMoves(b, from, piece, knightDeltas)
	case Bishop:
		return sliderMoves(b, from, piece, board.Diagonal)
	case Rook:
		return sliderMoves(b, from, piece, board.Orthogonal)
	case Queen:
		return sliderMoves(b, from, piece, board.Every)
	case King:
		return leaperMoves(b, from, piece, board.Every)
	default:
		panic("unknown piece kind " + piece.Kind.String())
	}
}

// reachable tells if piece may end on c: inside the board and not on one of
// its own pieces.
func reachable(b *Board, c board.Coord, piece Piece) bool {
	if !b.IsValid(c) {
		return false
	}
	other, ok := b.Square(c)
	return !ok || other.Owner != piece.Owner
}

func leaperMoves(b *Board, from board.Coord, piece Piece, deltas []board.Direction) []Move {
	var moves []Move
	for _, d := range deltas {
		if to := from.Add(d); reachable(b, to, piece) {
			moves = append(moves, step(from, to))
		}
	}
	return moves
}

// sliderMoves walks every ray up to the first occupied square, which is only
// included when it holds an opponent's piece.
func sliderMoves(b *Board, from board.Coord, piece Piece, directions []board.Direction) []Move {
	var moves []Move
	for _, walk := range b.Walks(from, directions) {
		for _, to := range walk[1:] {
			other, ok := b.Square(to)
			if ok {
				if other.Owner != piece.Owner {
					moves = append(moves, step(from, to))
				}
				break
			}
			moves = append(moves, step(from, to))
		}
	}
	return moves
}

// forward is the row direction pawns of player advance in.
func forward(player game.Player) int {
	if player == White {
		return -1
	}
	return 1
}

func pawnMoves(b *Board, from board.Coord, piece Piece) []Move {
	dir := forward(piece.Owner)
	var targets []board.Coord

	ahead := board.Coord{Row: from.Row + dir, Col: from.Col}
	if b.IsValid(ahead) && b.IsEmpty(ahead) {
		targets = append(targets, ahead)
	}
	for _, side := range []int{-1, 1} {
		c := board.Coord{Row: from.Row + dir, Col: from.Col + side}
		if !b.IsValid(c) {
			continue
		}
		if other, ok := b.Square(c); ok && other.Owner != piece.Owner {
			targets = append(targets, c)
		}
	}
	start := b.Height - 2
	if piece.Owner == Black {
		start = 1
	}
	double := board.Coord{Row: from.Row + 2*dir, Col: from.Col}
	if from.Row == start && b.IsValid(double) && b.IsEmpty(ahead) && b.IsEmpty(double) {
		targets = append(targets, double)
	}

	last := 0
	if piece.Owner == Black {
		last = b.Height - 1
	}
	var moves []Move
	for _, to := range targets {
		if to.Row != last {
			moves = append(moves, step(from, to))
			continue
		}
		for _, kind := range Promotions {
			moves = append(moves, Move{Kind: Promote, From: from, To: to, Promotion: kind})
		}
	}
	return moves
}

package chess

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"gamepack/board"
	"gamepack/game"
)

const size = 8

var fenPattern = regexp.MustCompile(
	`^((?:[pnbrqkPNBRQK1-8]+/){7}[pnbrqkPNBRQK1-8]+) ([wb]) (-|K?Q?k?q?) (-|[a-h][36]) (0|[1-9]\d*) ([1-9]\d*)$`)

var symbolKinds = map[byte]Kind{'p': Pawn, 'n': Knight, 'b': Bishop, 'r': Rook, 'q': Queen, 'k': King}

// SquareName names c in algebraic notation. Row 0 is the eighth rank.
func SquareName(c board.Coord) string {
	return string(rune('a'+c.Col)) + strconv.Itoa(size-c.Row)
}

func ParseSquare(name string) (board.Coord, error) {
	if len(name) != 2 || name[0] < 'a' || name[0] > 'h' || name[1] < '1' || name[1] > '8' {
		return board.Coord{}, fmt.Errorf("%w: square %q", game.ErrMalformedNotation, name)
	}
	return board.Coord{Row: size - int(name[1]-'0'), Col: int(name[0] - 'a')}, nil
}

// ParseFEN reads a position in Forsyth-Edwards notation.
func ParseFEN(fen string) (*State, error) {
	match := fenPattern.FindStringSubmatch(strings.TrimSpace(fen))
	if match == nil || match[3] == "" {
		return nil, fmt.Errorf("%w: %q", game.ErrMalformedNotation, fen)
	}
	b, err := parseRanks(match[1])
	if err != nil {
		return nil, err
	}
	s := &State{board: b, active: White, castling: match[3]}
	if match[2] == "b" {
		s.active = Black
	}
	if s.castling == "-" {
		s.castling = ""
	}
	if match[4] != "-" {
		c, err := ParseSquare(match[4])
		if err != nil {
			return nil, err
		}
		s.enPassant = &c
	}
	if s.halfMoves, err = strconv.Atoi(match[5]); err != nil {
		return nil, fmt.Errorf("%w: half move clock %q", game.ErrMalformedNotation, match[5])
	}
	if s.fullMoves, err = strconv.Atoi(match[6]); err != nil {
		return nil, fmt.Errorf("%w: full move number %q", game.ErrMalformedNotation, match[6])
	}
	return s, nil
}

func parseRanks(text string) (*Board, error) {
	b, err := board.NewPieces[Piece](size, size)
	if err != nil {
		return nil, err
	}
	for row, rank := range strings.Split(text, "/") {
		col := 0
		for i := 0; i < len(rank); i++ {
			sq := rank[i]
			if sq >= '1' && sq <= '8' {
				if i > 0 && rank[i-1] >= '1' && rank[i-1] <= '8' {
					return nil, fmt.Errorf("%w: rank %q splits empty squares", game.ErrMalformedNotation, rank)
				}
				col += int(sq - '0')
				continue
			}
			if col >= size {
				return nil, fmt.Errorf("%w: rank %q overflows the board", game.ErrMalformedNotation, rank)
			}
			piece := Piece{Kind: symbolKinds[sq|0x20], Owner: Black}
			if sq < 'a' {
				piece.Owner = White
			}
			b.Set(board.Coord{Row: row, Col: col}, piece)
			col++
		}
		if col != size {
			return nil, fmt.Errorf("%w: rank %q does not cover %d squares", game.ErrMalformedNotation, rank, size)
		}
	}
	return b, nil
}

// FEN writes the position in Forsyth-Edwards notation.
func (s *State) FEN() string {
	var sb strings.Builder
	for row := 0; row < s.board.Height; row++ {
		if row > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for col := 0; col < s.board.Width; col++ {
			p, ok := s.board.Square(board.Coord{Row: row, Col: col})
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(p.Symbol())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
	}
	sb.WriteByte(' ')
	if s.active == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	castling, enPassant := s.castling, "-"
	if castling == "" {
		castling = "-"
	}
	if s.enPassant != nil {
		enPassant = SquareName(*s.enPassant)
	}
	fmt.Fprintf(&sb, " %s %s %d %d", castling, enPassant, s.halfMoves, s.fullMoves)
	return sb.String()
}

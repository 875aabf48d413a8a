package board

import (
	"fmt"
	"strings"

	"github.com/coopchess/garbochess/internal/tables"
)

// castleRightsMask[sq] is ANDed against the current castling rights on
// every move touching sq, whether as a from-square (the mover) or a
// to-square (a capture landing on a rook's home corner). Only the four
// corner squares and the two king home squares clear any bits; every
// other square is all-ones.
var castleRightsMask [256]byte

func init() {
	for sq := 0; sq < 256; sq++ {
		castleRightsMask[sq] = CastleWK | CastleWQ | CastleBK | CastleBQ
	}
	castleRightsMask[NewSquare(0, 4)] &^= CastleWK | CastleWQ // e1
	castleRightsMask[NewSquare(0, 0)] &^= CastleWQ            // a1
	castleRightsMask[NewSquare(0, 7)] &^= CastleWK            // h1
	castleRightsMask[NewSquare(7, 4)] &^= CastleBK | CastleBQ // e8
	castleRightsMask[NewSquare(7, 0)] &^= CastleBQ            // a8
	castleRightsMask[NewSquare(7, 7)] &^= CastleBK            // h8
}

// LoadFEN populates s from a FEN string split on spaces into at least
// four fields: piece placement, active color, castling rights, and the
// en-passant target. Half-move and full-move fields are accepted but
// unused. Malformed input is rejected rather than producing a
// best-effort state: the returned error names the first field that
// failed to parse, and s is left untouched.
func LoadFEN(s *State, fen string) error {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return fmt.Errorf("board: FEN %q has %d fields, need at least 4", fen, len(fields))
	}

	fresh := NewState()
	fresh.tt = s.tt // keep the caller's transposition table; all other fields take NewState's defaults

	if err := parsePlacement(fresh, fields[0]); err != nil {
		return err
	}
	side, err := parseActiveColor(fields[1])
	if err != nil {
		return err
	}
	fresh.side = side
	rights, err := parseCastleRights(fields[2])
	if err != nil {
		return err
	}
	fresh.castleRights = rights
	ep, err := parseEPSquare(fields[3])
	if err != nil {
		return err
	}
	fresh.epSquare = ep

	fresh.hashLow, fresh.hashHigh = computeHash(fresh)
	fresh.baseEval = computeBaseEval(fresh)
	fresh.inCheck = IsSquareAttackable(fresh, fresh.KingSquare(fresh.side), Other(fresh.side))
	fresh.repStack[0] = fresh.hashLow

	*s = *fresh
	return nil
}

func parsePlacement(s *State, field string) error {
	ranks := strings.Split(field, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("board: FEN placement %q has %d ranks, need 8", field, len(ranks))
	}
	for i, rankStr := range ranks {
		row := 7 - i
		col := 0
		for _, c := range []byte(rankStr) {
			if c >= '1' && c <= '8' {
				col += int(c - '0')
				continue
			}
			p, ok := PieceFromChar(c)
			if !ok {
				return fmt.Errorf("board: FEN placement %q has invalid piece char %q", field, c)
			}
			if col > 7 {
				return fmt.Errorf("board: FEN placement %q rank %d overflows 8 files", field, 8-i)
			}
			s.addPiece(NewSquare(row, col), p)
			col++
		}
		if col != 8 {
			return fmt.Errorf("board: FEN placement %q rank %d has %d files, need 8", field, 8-i, col)
		}
	}
	return nil
}

func parseActiveColor(field string) (byte, error) {
	switch field {
	case "w":
		return White, nil
	case "b":
		return Black, nil
	default:
		return 0, fmt.Errorf("board: FEN active color %q must be \"w\" or \"b\"", field)
	}
}

func parseCastleRights(field string) (byte, error) {
	if field == "-" {
		return 0, nil
	}
	var rights byte
	for _, c := range []byte(field) {
		switch c {
		case 'K':
			rights |= CastleWK
		case 'Q':
			rights |= CastleWQ
		case 'k':
			rights |= CastleBK
		case 'q':
			rights |= CastleBQ
		default:
			return 0, fmt.Errorf("board: FEN castling rights %q has invalid char %q", field, c)
		}
	}
	return rights, nil
}

func parseEPSquare(field string) (Square, error) {
	if field == "-" {
		return NoSquare, nil
	}
	sq, ok := ParseSquare(field)
	if !ok {
		return 0, fmt.Errorf("board: FEN en-passant target %q is not a valid square", field)
	}
	return sq, nil
}

// computeHash recomputes the full Zobrist key from scratch by scanning
// the board, used when loading a FEN and as the "from scratch" side of
// the incremental-hash invariant test.
func computeHash(s *State) (low, high uint32) {
	for sq := 0; sq < 256; sq++ {
		if !Square(sq).OnBoard() {
			continue
		}
		p := s.board[sq]
		if p == Empty {
			continue
		}
		low ^= tables.PieceLow[sq][byte(p)&0x0f]
		high ^= tables.PieceHigh[sq][byte(p)&0x0f]
	}
	if s.side == Black {
		low ^= tables.BlackToMoveLow
		high ^= tables.BlackToMoveHigh
	}
	return low, high
}

// computeBaseEval recomputes the white-relative material + piece-square
// sum from scratch.
func computeBaseEval(s *State) int {
	total := 0
	for sq := 0; sq < 256; sq++ {
		if !Square(sq).OnBoard() {
			continue
		}
		p := s.board[sq]
		if p == Empty {
			continue
		}
		total += pieceValue(p, Square(sq))
	}
	return total
}

// pieceValue returns the signed (white positive, black negative)
// material+PST contribution of piece p sitting on sq.
func pieceValue(p Piece, sq Square) int {
	pt := p.Type()
	v := tables.Material[pt]
	if p.IsColor(White) {
		v += tables.PieceSquare[pt][sq]
		return v
	}
	v += tables.PieceSquare[pt][tables.Flip[sq]]
	return -v
}

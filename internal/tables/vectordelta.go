package tables

import "github.com/coopchess/garbochess/internal/bits"

// VectorEntry describes, for a given offset between two squares, whether a
// piece standing on one of them could possibly attack the other along a
// ray or a knight hop, the unit step to walk that ray, and which piece
// types are capable of the attack.
type VectorEntry struct {
	// Delta is the signed single-step increment that walks from the
	// target square toward the attacker square, one square at a time, for
	// rays (bishop/rook/queen/king/pawn). For a knight offset it is the
	// whole jump itself, since a knight attack is never blocked along the
	// way.
	Delta int
	// PieceMask[0] is the black-centric attacker mask, PieceMask[1] the
	// white-centric one -- they agree on every bit except the pawn bit,
	// since only pawns attack asymmetrically by color. Bit (1<<pt) is set
	// when a piece of type pt standing on the attacker square could reach
	// the target square along this offset.
	PieceMask [2]uint32
}

// VectorDelta is indexed by (from - to + 128) for two 0x88 squares on the
// board; it never needs bounds checking past that range since the maximum
// rank/file difference a pair of legal squares can produce is 7 in either
// direction, keeping the whole table inside [1, 255] for any non-equal
// pair.
var VectorDelta [256]VectorEntry

func mask(types ...int) uint32 {
	var m uint32
	for _, t := range types {
		m = bits.Set(m, uint(t))
	}
	return m
}

func init() {
	knightSteps := map[[2]int]bool{
		{1, 2}: true, {2, 1}: true, {-1, 2}: true, {-2, 1}: true,
		{1, -2}: true, {2, -1}: true, {-1, -2}: true, {-2, -1}: true,
	}
	sign := func(v int) int {
		switch {
		case v > 0:
			return 1
		case v < 0:
			return -1
		default:
			return 0
		}
	}

	for dr := -7; dr <= 7; dr++ {
		for dc := -7; dc <= 7; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			diff := dr*16 + dc
			idx := diff + 128
			var e VectorEntry
			adjacent := dr >= -1 && dr <= 1 && dc >= -1 && dc <= 1

			switch {
			case dr == 0:
				e.Delta = sign(dc)
				types := []int{Rook, Queen}
				if adjacent {
					types = append(types, King)
				}
				e.PieceMask[0] = mask(types...)
				e.PieceMask[1] = e.PieceMask[0]
			case dc == 0:
				e.Delta = sign(dr) * 16
				types := []int{Rook, Queen}
				if adjacent {
					types = append(types, King)
				}
				e.PieceMask[0] = mask(types...)
				e.PieceMask[1] = e.PieceMask[0]
			case dr == dc || dr == -dc:
				e.Delta = sign(dr)*16 + sign(dc)
				types := []int{Bishop, Queen}
				if adjacent {
					types = append(types, King)
				}
				e.PieceMask[0] = mask(types...)
				e.PieceMask[1] = e.PieceMask[0]
				if adjacent {
					// Pawn attacks are a single diagonal step only.
					// Black pawns attack "downward" (dr == 1 relative
					// to the attacker sitting one rank above the
					// target); white pawns attack "upward" (dr == -1).
					if dr == 1 {
						e.PieceMask[0] |= mask(Pawn)
					} else {
						e.PieceMask[1] |= mask(Pawn)
					}
				}
			case knightSteps[[2]int{dr, dc}]:
				e.Delta = diff
				e.PieceMask[0] = mask(Knight)
				e.PieceMask[1] = e.PieceMask[0]
			default:
				continue
			}
			VectorDelta[idx] = e
		}
	}
}

// MobUnit[color][pieceCode] is 1 when a piece of the given color could
// move onto a square occupied by pieceCode -- empty, or an enemy piece of
// any type -- and 0 for friendly pieces or the off-board sentinel. color
// is the engine's explicit 0=white, 1=black index, not the board's
// 0x08/0x10 bit.
var MobUnit [2][256]byte

// OffBoard is the board-byte sentinel stored at every off-board slot
// (mirrors board.OffBoard; duplicated here to keep this package
// independent of board).
const OffBoard = 0x80

func init() {
	const (
		whiteBit = 0x08
		blackBit = 0x10
	)
	for color := 0; color < 2; color++ {
		own := byte(whiteBit)
		if color == 1 {
			own = blackBit
		}
		for code := 0; code < 256; code++ {
			b := byte(code)
			switch {
			case b == OffBoard:
				MobUnit[color][code] = 0
			case b == Empty:
				MobUnit[color][code] = 1
			case bits.And(uint32(b), uint32(own)) != 0:
				MobUnit[color][code] = 0
			default:
				MobUnit[color][code] = 1
			}
		}
	}
}

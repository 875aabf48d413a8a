package board

// Move is a packed 32-bit integer: bits 0-7 are the from-square, bits
// 8-15 the to-square, bits 16-23 a flag byte. Kept as a plain integer
// rather than a struct because moves are shuffled through the move
// picker, compared for equality against hash/killer moves, and stored in
// the transposition table as a single word.
type Move uint32

// NoMove is the sentinel for "no move": an all-zero encoding can never
// collide with a real move, since every real move has distinct non-zero
// from/to squares (a1 encodes to 0x24, never 0).
const NoMove Move = 0

// Flag bits, bits 16-23 of the packed move.
const (
	FlagEnPassant   = 1 << 16
	FlagCastleKing  = 1 << 17
	FlagCastleQueen = 1 << 18
	FlagPromotion   = 1 << 19
	FlagPromoKnight = 1 << 20
	FlagPromoQueen  = 1 << 21
	FlagPromoBishop = 1 << 22
	// Absence of the three promotion sub-bits under FlagPromotion means
	// promote-to-rook.
)

// NewMove packs a from/to/flags triple into a Move.
func NewMove(from, to Square, flags uint32) Move {
	return Move(uint32(from) | uint32(to)<<8 | flags)
}

// From returns the origin square.
func (m Move) From() Square { return Square(uint32(m) & 0xff) }

// To returns the destination square.
func (m Move) To() Square { return Square((uint32(m) >> 8) & 0xff) }

// Flags returns the raw flag bits (still positioned at bit 16+).
func (m Move) Flags() uint32 { return uint32(m) & 0xff0000 }

func (m Move) IsEnPassant() bool   { return uint32(m)&FlagEnPassant != 0 }
func (m Move) IsCastleKing() bool  { return uint32(m)&FlagCastleKing != 0 }
func (m Move) IsCastleQueen() bool { return uint32(m)&FlagCastleQueen != 0 }
func (m Move) IsPromotion() bool   { return uint32(m)&FlagPromotion != 0 }

// PromotionType returns the piece type a promotion move resolves to.
// Callers must only call this when IsPromotion is true.
func (m Move) PromotionType() PieceType {
	switch {
	case uint32(m)&FlagPromoKnight != 0:
		return Knight
	case uint32(m)&FlagPromoQueen != 0:
		return Queen
	case uint32(m)&FlagPromoBishop != 0:
		return Bishop
	default:
		return Rook
	}
}

// MoveList is a caller-owned, fixed-capacity buffer the generator appends
// pseudo-legal moves into. 256 comfortably bounds any reachable chess
// position's legal-move count many times over.
type MoveList struct {
	moves [256]Move
	n     int
}

func (l *MoveList) add(m Move) { l.moves[l.n] = m; l.n++ }

// Len returns the number of moves currently in the list.
func (l *MoveList) Len() int { return l.n }

// At returns the i'th move.
func (l *MoveList) At(i int) Move { return l.moves[i] }

// Reset empties the list for reuse.
func (l *MoveList) Reset() { l.n = 0 }

// Slice returns the populated moves as a plain slice, for callers (tests,
// generateValidMoves) that want to range over them directly.
func (l *MoveList) Slice() []Move { return l.moves[:l.n] }

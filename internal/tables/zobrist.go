package tables

// mtSeed is GarboChess's Zobrist seed, carried forward unchanged so that
// positions hash identically to the original and downstream perft/TT test
// fixtures keep working.
const mtSeed uint32 = 0x1BADF00D

// PieceLow and PieceHigh hold, for each of the 256 0x88 slots and each of
// the 16 possible piece codes, an independent 32-bit word. Index as
// PieceLow[sq][pieceCode&0xF]: the low four bits of a board byte (type plus
// the White flag) tell every colored piece apart, since Black pieces carry
// their flag in bit 4. Off-board squares and the empty piece code (0)
// have words too, but are never XORed in by the board code — a Zobrist
// table has to cover the full square/piece domain because it is generated
// once, up front, by iterating both dimensions in full.
var (
	PieceLow  [256][16]uint32
	PieceHigh [256][16]uint32

	// BlackToMoveLow/High are XORed in iff it is Black's turn to move.
	BlackToMoveLow  uint32
	BlackToMoveHigh uint32
)

func init() {
	gen := newMT19937(mtSeed)
	for sq := 0; sq < 256; sq++ {
		for pc := 0; pc < 16; pc++ {
			PieceLow[sq][pc] = gen.next32()
			PieceHigh[sq][pc] = gen.next32()
		}
	}
	BlackToMoveLow = gen.next32()
	BlackToMoveHigh = gen.next32()
}

package tables

// Piece type codes (low 3 bits of a board byte), duplicated here rather than
// imported from internal/board to keep this package leaf-level and free of
// any dependency on the board representation it feeds.
const (
	Empty  = 0
	Pawn   = 1
	Knight = 2
	Bishop = 3
	Rook   = 4
	Queen  = 5
	King   = 6
)

// sq mirrors board.Square's 0x88 encoding: row/col are 0-based (row 0 =
// rank 1, col 0 = file a), ranks occupy 2..9 and files 4..11.
func sq(row, col int) int { return ((row + 2) << 4) | (col + 4) }

// Material returns the material value of a piece type in centipawns.
var Material = [7]int{0, 800, 3350, 3450, 5000, 9750, 600000}

// SEEValue returns the static-exchange unit value of a piece type,
// independent of Material.
var SEEValue = [7]int{0, 1, 3, 3, 5, 9, 900}

// rawPST lists each piece type's bonus table as literal 8x8 grids, rows
// from rank 8 down to rank 1, files a..h. The pawn table is the canonical
// values for this engine's pawn-structure bonuses. Knight/bishop/rook/king
// tables use the well-known "simplified evaluation" piece-square values
// (Tomasz Michniewski's public-domain table set) rather than invented
// numbers. The queen table is all zero.
var rawPST = [7][64]int{
	Pawn: {
		0, 0, 0, 0, 0, 0, 0, 0,
		-25, 105, 135, 270, 270, 135, 105, -25,
		-80, 0, 30, 176, 176, 30, 0, -80,
		-85, -5, 25, 175, 175, 25, -5, -85,
		-90, -10, 20, 125, 125, 20, -10, -90,
		-95, -15, 15, 75, 75, 15, -15, -95,
		-100, -20, 10, 70, 70, 10, -20, -100,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	Knight: {
		-50, -40, -30, -30, -30, -30, -40, -50,
		-40, -20, 0, 0, 0, 0, -20, -40,
		-30, 0, 10, 15, 15, 10, 0, -30,
		-30, 5, 15, 20, 20, 15, 5, -30,
		-30, 0, 15, 20, 20, 15, 0, -30,
		-30, 5, 10, 15, 15, 10, 5, -30,
		-40, -20, 0, 5, 5, 0, -20, -40,
		-50, -40, -30, -30, -30, -30, -40, -50,
	},
	Bishop: {
		-20, -10, -10, -10, -10, -10, -10, -20,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 5, 10, 10, 5, 0, -10,
		-10, 5, 5, 10, 10, 5, 5, -10,
		-10, 0, 10, 10, 10, 10, 0, -10,
		-10, 10, 10, 10, 10, 10, 10, -10,
		-10, 5, 0, 0, 0, 0, 5, -10,
		-20, -10, -10, -10, -10, -10, -10, -20,
	},
	Rook: {
		0, 0, 0, 0, 0, 0, 0, 0,
		5, 10, 10, 10, 10, 10, 10, 5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		0, 0, 0, 5, 5, 0, 0, 0,
	},
	Queen: {}, // all zero
	King: {
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-20, -30, -30, -40, -40, -30, -30, -20,
		-10, -20, -20, -20, -20, -20, -20, -10,
		20, 20, 0, 0, 0, 0, 20, 20,
		20, 30, 10, 0, 0, 10, 30, 20,
	},
}

// PieceSquare[pt][sq] gives White's positional bonus for piece type pt
// standing on sq. Black's bonus for the mirrored piece is looked up via
// PieceSquare[pt][Flip[sq]].
var PieceSquare [7][256]int

// Flip[sq] is the vertical mirror of an on-board square: rank r <-> rank
// (7-r), same file. Off-board slots map to themselves (never read).
var Flip [256]int

func init() {
	for s := 0; s < 256; s++ {
		Flip[s] = s
	}
	for pt := Pawn; pt <= King; pt++ {
		for r := 0; r < 8; r++ {
			for c := 0; c < 8; c++ {
				// rawPST is listed rank-8-first; row 0 of our board is rank 1.
				row := 7 - r
				val := rawPST[pt][r*8+c]
				PieceSquare[pt][sq(row, c)] = val
			}
		}
	}
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			Flip[sq(row, col)] = sq(7-row, col)
		}
	}
}

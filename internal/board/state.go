package board

import "time"

// MaxPly bounds the search depth the per-ply scratch tables (killers,
// undo stack, repetition stack) are sized for.
const MaxPly = 128

// MinEval and MaxEval bound the evaluator and the mate-scoring range.
// King material (600000) sits well inside this range so a king hunted
// down to a forced mate never collides with a material score.
const (
	MinEval = -2000000
	MaxEval = 2000000
)

// NoSquare is the "no en-passant target" sentinel. It is distinct from
// every square NewSquare can produce (those are all >= 0x22).
const NoSquare Square = -1

// castling right bits, ANDed against castleRightsMask[from] and
// castleRightsMask[to] on every move.
const (
	CastleWK byte = 1 << iota
	CastleWQ
	CastleBK
	CastleBQ
)

// undoInfo is the record pushed before a move is made, so UnmakeMove can
// restore every scalar field bit-exactly.
type undoInfo struct {
	move         Move
	epSquare     Square
	castleRights byte
	inCheck      bool
	baseEval     int
	hashLow      uint32
	hashHigh     uint32
	move50       int
	captured     Piece
	capturedAt   Square // differs from move.To() only for en-passant
}

// pieceListCap is the per-(color,type) piece list capacity. Ten is enough
// for any reachable chess position (at most eight pawns, and at most ten
// knights, bishops or rooks: two plus eight promotions); the list is never
// resized.
const pieceListCap = 10

// pieceCodeCount sizes pieceList/pieceCount: the highest piece code is
// Black|King == 0x16 == 22, so 32 leaves headroom without needing to mask.
const pieceCodeCount = 32

// State is a self-contained, per-game bundle: board, side to move,
// castling/en-passant state, incremental evaluation and hash, piece
// lists, and everything the search mutates while it runs (transposition
// table, killers, history, node counters, search-validity flag). Nothing
// here is shared across States, so independent games may search in
// parallel fibers without any locking.
type State struct {
	board [256]Piece

	side         byte // White or Black: side to move
	castleRights byte
	epSquare     Square

	// baseEval is kept white-relative internally (a pure incremental sum
	// of signed piece values, never needing a sign flip to update); the
	// BaseEval accessor below flips it to the side-to-move-relative value
	// callers expect. This is equivalent to flipping the stored field on
	// every make/unmake, since side flips on every make/unmake too, but
	// it is simpler to keep incrementally consistent.
	baseEval int
	hashLow  uint32
	hashHigh uint32
	inCheck  bool

	pieceList  [pieceCodeCount * pieceListCap]Square
	pieceIndex [256]int8
	pieceCount [pieceCodeCount]int8

	move50    int
	moveCount int
	undo      [MaxPly * 4]undoInfo
	repStack  [MaxPly * 4]uint32

	killers [MaxPly][2]Move
	history [pieceCodeCount][256]int32

	tt *TranspositionTable

	// Search bookkeeping, read/written by the engine package.
	FinCnt      int
	MaxFinCnt   int
	TimeoutSecs float64
	StartTime   time.Time
	SearchValid bool
	FoundMove   Move
}

// NewState returns a zeroed, empty state: every on-board square empty,
// every off-board slot carrying the off-board sentinel, a fresh
// transposition table, and the default timeout/node-cap pair.
func NewState() *State {
	s := &State{
		tt:          NewTranspositionTable(),
		TimeoutSecs: 5,
		MaxFinCnt:   20000,
	}
	for sq := 0; sq < 256; sq++ {
		if Square(sq).OnBoard() {
			s.board[sq] = Empty
		} else {
			s.board[sq] = Piece(OffBoard)
		}
	}
	s.epSquare = NoSquare
	return s
}

// Side returns the color to move.
func (s *State) Side() byte { return s.side }

// At returns the piece occupying sq (Empty, a colored piece, or the
// off-board sentinel cast to Piece).
func (s *State) At(sq Square) Piece { return s.board[sq] }

// InCheck reports whether the side to move's king is presently attacked.
func (s *State) InCheck() bool { return s.inCheck }

// EPSquare returns the current en-passant target, or NoSquare.
func (s *State) EPSquare() Square { return s.epSquare }

// CastleRights returns the raw castling-rights bitmask.
func (s *State) CastleRights() byte { return s.castleRights }

// BaseEval returns the incrementally maintained, side-to-move-relative
// material+PST sum.
func (s *State) BaseEval() int {
	if s.side == Black {
		return -s.baseEval
	}
	return s.baseEval
}

// HashLow and HashHigh return the two halves of the incremental Zobrist
// key.
func (s *State) HashLow() uint32  { return s.hashLow }
func (s *State) HashHigh() uint32 { return s.hashHigh }

// MoveCount returns the number of moves made (and not yet unmade).
func (s *State) MoveCount() int { return s.moveCount }

// TT returns the state's transposition table.
func (s *State) TT() *TranspositionTable { return s.tt }

// Killers returns the killer-move pair for a ply.
func (s *State) Killers(ply int) [2]Move { return s.killers[ply] }

// History returns the history-heuristic counter for a (piece, to) pair.
func (s *State) History(piece Piece, to Square) int32 {
	return s.history[byte(piece)][to]
}

// AddHistory bumps the history counter for (piece, to) by bonus, halving
// the whole slot first if it would overflow the 16-bit range the picker
// sorts it in.
func (s *State) AddHistory(piece Piece, to Square, bonus int32) {
	h := &s.history[byte(piece)][to]
	if *h+bonus > 32767 {
		*h /= 2
	}
	*h += bonus
}

// UpdateKillers shifts m into killer slot 0 for ply, demoting the
// previous slot-0 killer to slot 1 -- unless m already is the slot-0
// killer, in which case nothing changes.
func (s *State) UpdateKillers(ply int, m Move) {
	if s.killers[ply][0] == m {
		return
	}
	s.killers[ply][1] = s.killers[ply][0]
	s.killers[ply][0] = m
}

func pieceListKey(p Piece) int { return int(byte(p)) }

func (s *State) addPiece(sq Square, p Piece) {
	code := pieceListKey(p)
	i := s.pieceCount[code]
	s.pieceList[code*pieceListCap+int(i)] = sq
	s.pieceIndex[sq] = i
	s.pieceCount[code]++
	s.board[sq] = p
}

func (s *State) removePiece(sq Square) {
	p := s.board[sq]
	code := pieceListKey(p)
	i := s.pieceIndex[sq]
	last := s.pieceCount[code] - 1
	lastSq := s.pieceList[code*pieceListCap+int(last)]
	s.pieceList[code*pieceListCap+int(i)] = lastSq
	s.pieceIndex[lastSq] = i
	s.pieceCount[code] = last
	s.board[sq] = Empty
}

// PieceSquares returns the occupied squares for a colored piece type, as
// a slice over the live portion of its piece list.
func (s *State) PieceSquares(pt PieceType, color byte) []Square {
	code := pieceListKey(NewPiece(pt, color))
	n := int(s.pieceCount[code])
	return s.pieceList[code*pieceListCap : code*pieceListCap+n]
}

// KingSquare returns the king square for color.
func (s *State) KingSquare(color byte) Square {
	return s.PieceSquares(King, color)[0]
}

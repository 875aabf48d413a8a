package board

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// snapshot captures every field the make/unmake round-trip invariant
// must restore bit-exactly.
type snapshot struct {
	Board        [256]Piece
	Side         byte
	CastleRights byte
	EPSquare     Square
	BaseEval     int
	HashLow      uint32
	HashHigh     uint32
	InCheck      bool
	Move50       int
	MoveCount    int
	PieceList    [pieceCodeCount * pieceListCap]Square
	PieceIndex   [256]int8
	PieceCount   [pieceCodeCount]int8
}

func takeSnapshot(s *State) snapshot {
	return snapshot{
		Board:        s.board,
		Side:         s.side,
		CastleRights: s.castleRights,
		EPSquare:     s.epSquare,
		BaseEval:     s.baseEval,
		HashLow:      s.hashLow,
		HashHigh:     s.hashHigh,
		InCheck:      s.inCheck,
		Move50:       s.move50,
		MoveCount:    s.moveCount,
		PieceList:    s.pieceList,
		PieceIndex:   s.pieceIndex,
		PieceCount:   s.pieceCount,
	}
}

func TestMakeUnmakeRoundTrip(t *testing.T) {
	fens := []string{
		startFEN,
		"r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
		"8/P7/8/8/8/8/8/4K2k w - - 0 1",
		"4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1",
	}
	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			s := NewState()
			if err := LoadFEN(s, fen); err != nil {
				t.Fatalf("LoadFEN: %v", err)
			}
			before := takeSnapshot(s)

			var list MoveList
			GenerateCaptures(s, &list)
			GenerateAll(s, &list)
			for _, m := range list.Slice() {
				if !MakeMove(s, m) {
					continue
				}
				UnmakeMove(s)
				after := takeSnapshot(s)
				if diff := cmp.Diff(before, after, cmp.AllowUnexported(snapshot{})); diff != "" {
					t.Fatalf("make/unmake %v mismatch (-before +after):\n%s", m, diff)
				}
			}
		})
	}
}

func TestIncrementalHashMatchesRecompute(t *testing.T) {
	s := NewState()
	if err := LoadFEN(s, startFEN); err != nil {
		t.Fatalf("LoadFEN: %v", err)
	}
	var walk func(depth int)
	walk = func(depth int) {
		if depth == 0 {
			return
		}
		var list MoveList
		GenerateCaptures(s, &list)
		GenerateAll(s, &list)
		for _, m := range list.Slice() {
			if !MakeMove(s, m) {
				continue
			}
			low, high := computeHash(s)
			if low != s.hashLow || high != s.hashHigh {
				t.Errorf("incremental hash %08x/%08x != recomputed %08x/%08x after %v", s.hashLow, s.hashHigh, low, high, m)
			}
			walk(depth - 1)
			UnmakeMove(s)
		}
	}
	walk(2)
}

func TestRepetitionDraw(t *testing.T) {
	s := NewState()
	if err := LoadFEN(s, startFEN); err != nil {
		t.Fatalf("LoadFEN: %v", err)
	}
	g1, _ := ParseSquare("g1")
	f3, _ := ParseSquare("f3")
	g8, _ := ParseSquare("g8")
	f6, _ := ParseSquare("f6")

	shuffle := []Move{
		NewMove(g1, f3, 0),
		NewMove(g8, f6, 0),
		NewMove(f3, g1, 0),
		NewMove(f6, g8, 0),
	}
	for i := 0; i < 5; i++ {
		for _, m := range shuffle {
			if !MakeMove(s, m) {
				t.Fatalf("shuffle move %v rejected", m)
			}
		}
	}
	if !IsRepDraw(s) {
		t.Errorf("IsRepDraw = false after 5 repeated knight-shuffle cycles, want true")
	}
}

package board

import "testing"

const startFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func perft(s *State, depth int) int {
	if depth == 0 {
		return 1
	}
	var list MoveList
	GenerateCaptures(s, &list)
	GenerateAll(s, &list)
	nodes := 0
	for _, m := range list.Slice() {
		if !MakeMove(s, m) {
			continue
		}
		nodes += perft(s, depth-1)
		UnmakeMove(s)
	}
	return nodes
}

func TestPerftStartPosition(t *testing.T) {
	tests := []struct {
		depth int
		want  int
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
	}
	for _, tc := range tests {
		t.Run("", func(t *testing.T) {
			s := NewState()
			if err := LoadFEN(s, startFEN); err != nil {
				t.Fatalf("LoadFEN: %v", err)
			}
			got := perft(s, tc.depth)
			if got != tc.want {
				t.Errorf("perft(%d) = %d, want %d", tc.depth, got, tc.want)
			}
		})
	}
}

func TestGenerateValidMovesStartPosition(t *testing.T) {
	s := NewState()
	if err := LoadFEN(s, startFEN); err != nil {
		t.Fatalf("LoadFEN: %v", err)
	}
	var list MoveList
	GenerateValidMoves(s, &list)
	if list.Len() != 20 {
		t.Errorf("GenerateValidMoves returned %d moves, want 20", list.Len())
	}
}

func TestPromotionEnumeration(t *testing.T) {
	s := NewState()
	if err := LoadFEN(s, "8/P7/8/8/8/8/8/4K2k w - - 0 1"); err != nil {
		t.Fatalf("LoadFEN: %v", err)
	}
	var list MoveList
	GenerateValidMoves(s, &list)

	from, _ := ParseSquare("a7")
	to, _ := ParseSquare("a8")
	want := map[PieceType]bool{Queen: false, Rook: false, Bishop: false, Knight: false}
	for _, m := range list.Slice() {
		if m.From() == from && m.To() == to && m.IsPromotion() {
			want[m.PromotionType()] = true
		}
	}
	for pt, seen := range want {
		if !seen {
			t.Errorf("missing promotion to piece type %v", pt)
		}
	}

	var formatted []string
	for _, m := range list.Slice() {
		if m.From() == from && m.To() == to && m.IsPromotion() {
			formatted = append(formatted, FormatMove(m))
		}
	}
	wantSuffixes := map[byte]bool{'q': false, 'r': false, 'b': false, 'n': false}
	for _, f := range formatted {
		suffix := f[len(f)-1]
		if _, ok := wantSuffixes[suffix]; ok {
			wantSuffixes[suffix] = true
		}
	}
	for suffix, seen := range wantSuffixes {
		if !seen {
			t.Errorf("FormatMove missing promotion suffix %q", suffix)
		}
	}
}

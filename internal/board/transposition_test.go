package board

import "testing"

func TestTranspositionStoreProbeRoundTrip(t *testing.T) {
	s := NewState()
	if err := LoadFEN(s, startFEN); err != nil {
		t.Fatalf("LoadFEN: %v", err)
	}
	var list MoveList
	GenerateValidMoves(s, &list)
	if list.Len() == 0 {
		t.Fatal("no legal moves from start position")
	}
	best := list.At(0)

	tt := s.TT()
	tt.Store(s.HashLow(), s.HashHigh(), 123, TTExact, 4, best)

	entry, found := tt.ProbeEntry(s.HashLow(), s.HashHigh())
	if !found {
		t.Fatal("ProbeEntry did not find the just-stored entry")
	}
	if entry.Value != 123 {
		t.Errorf("Value = %d, want 123", entry.Value)
	}
	if entry.Flag != TTExact {
		t.Errorf("Flag = %d, want TTExact", entry.Flag)
	}
	if entry.Depth != 4 {
		t.Errorf("Depth = %d, want 4", entry.Depth)
	}
	if entry.Best != best {
		t.Errorf("Best = %v, want %v", entry.Best, best)
	}

	found2 := false
	for _, m := range list.Slice() {
		if m == entry.Best {
			found2 = true
			break
		}
	}
	if !found2 {
		t.Errorf("stored best move %v is not among the position's legal moves", entry.Best)
	}
}

func TestTranspositionHashFullAndGeneration(t *testing.T) {
	tt := NewTranspositionTable()
	if got := tt.HashFull(); got != 0 {
		t.Errorf("HashFull() on an empty table = %d, want 0", got)
	}

	// hashLow 5 falls within HashFull's first-1000-slots sample.
	tt.Store(5, 1, 7, TTExact, 2, NoMove)
	if got := tt.HashFull(); got != 1 {
		t.Errorf("HashFull() after one store in the sampled window = %d, want 1", got)
	}

	gen0 := tt.Generation()
	tt.NewGeneration()
	if tt.Generation() != gen0+1 {
		t.Errorf("Generation() after NewGeneration() = %d, want %d", tt.Generation(), gen0+1)
	}
}

func TestMateDistanceAdjustmentRoundTrip(t *testing.T) {
	mateScore := MaxEval - 3
	forStorage := ToTT(mateScore, 5)
	back := FromTT(forStorage, 5)
	if back != mateScore {
		t.Errorf("FromTT(ToTT(%d, 5), 5) = %d, want %d", mateScore, back, mateScore)
	}

	mateScore = MinEval + 3
	forStorage = ToTT(mateScore, 5)
	back = FromTT(forStorage, 5)
	if back != mateScore {
		t.Errorf("FromTT(ToTT(%d, 5), 5) = %d, want %d", mateScore, back, mateScore)
	}

	ordinary := 234
	if ToTT(ordinary, 7) != ordinary || FromTT(ordinary, 7) != ordinary {
		t.Errorf("ToTT/FromTT modified a non-mate score %d", ordinary)
	}
}

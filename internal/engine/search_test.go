package engine

import (
	"strings"
	"testing"

	"github.com/coopchess/garbochess/internal/board"
)

func syncYield(cont func()) { cont() }

func TestSearchAsyncStartPosition(t *testing.T) {
	s := board.NewState()
	if err := board.LoadFEN(s, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"); err != nil {
		t.Fatalf("LoadFEN: %v", err)
	}
	s.TimeoutSecs = 30

	done := false
	var move board.Move
	SearchAsync(s, 4, syncYield, func(m board.Move) {
		done = true
		move = m
	})

	if !done {
		t.Fatal("onComplete was never called")
	}
	if move == board.NoMove {
		t.Fatal("search returned no move from the start position")
	}
	if s.MoveCount() != 1 {
		t.Errorf("MoveCount() = %d, want 1", s.MoveCount())
	}
	if s.FoundMove != move {
		t.Errorf("FoundMove = %v, want %v", s.FoundMove, move)
	}
}

func TestSearchAsyncMateInOne(t *testing.T) {
	s := board.NewState()
	if err := board.LoadFEN(s, "4k3/R7/6R1/8/8/8/8/4K3 w - - 0 1"); err != nil {
		t.Fatalf("LoadFEN: %v", err)
	}
	s.TimeoutSecs = 30

	var move board.Move
	SearchAsync(s, 2, syncYield, func(m board.Move) { move = m })

	if move == board.NoMove {
		t.Fatal("no mating move found")
	}
	formatted := board.FormatMove(move)
	if !strings.HasSuffix(formatted, "8") || formatted[len(formatted)-2] < 'a' || formatted[len(formatted)-2] > 'h' {
		t.Errorf("FormatMove(%v) = %q, want a rook move ending on rank 8", move, formatted)
	}
}

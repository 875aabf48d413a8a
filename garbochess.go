// Package garbochess is the public facade over the engine core: create a
// state, load it from FEN, run an asynchronous iterative-deepening
// search, and format the resulting move. Everything else -- move
// generation, evaluation, the transposition table, the search drivers --
// is an internal implementation detail.
package garbochess

import (
	"github.com/coopchess/garbochess/internal/board"
	"github.com/coopchess/garbochess/internal/engine"
)

// State is an opaque per-game handle. Independent States never share
// mutable data, so independent games may search concurrently in
// separate goroutines/fibers.
type State struct {
	inner *board.State
}

// Move is the packed 32-bit move encoding used for the TT, killers, and
// State.FoundMove.
type Move = board.Move

// NoMove is the "no move" sentinel.
const NoMove = board.NoMove

// NewState returns a zeroed state with the default timeout (5 seconds)
// and node cap (20000).
func NewState() *State {
	return &State{inner: board.NewState()}
}

// LoadFEN parses fen (piece placement, active color, castling rights,
// en-passant target, with half-move/full-move fields accepted but
// unused) into s, replacing its position but preserving its
// transposition table. A malformed FEN is rejected: s is left untouched
// and a descriptive error returned.
func (s *State) LoadFEN(fen string) error {
	return board.LoadFEN(s.inner, fen)
}

// SetTimeout sets the wall-clock search budget in seconds.
func (s *State) SetTimeout(seconds float64) { s.inner.TimeoutSecs = seconds }

// SetMaxNodes sets the node-count (moves-made) search cap.
func (s *State) SetMaxNodes(n int) { s.inner.MaxFinCnt = n }

// FoundMove returns the move the most recently completed search applied
// to the state, or NoMove.
func (s *State) FoundMove() Move { return s.inner.FoundMove }

// SearchAsync runs cooperative iterative deepening to maxPly. yieldFn is
// a host-provided non-blocking "call this back soon" primitive invoked
// between iterations; onComplete runs exactly once, after the driver has
// applied the best move it found (or NoMove) to the state.
func (s *State) SearchAsync(maxPly int, yieldFn engine.YieldFunc, onComplete engine.OnComplete) {
	engine.SearchAsync(s.inner, maxPly, yieldFn, onComplete)
}

// FormatMove renders m as "<fromfile><fromrank><tofile><torank>" plus a
// trailing promotion letter when m promotes.
func FormatMove(m Move) string {
	return board.FormatMove(m)
}

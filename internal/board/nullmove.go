package board

import "github.com/coopchess/garbochess/internal/tables"

// MakeNullMove passes the turn without moving a piece: flips side to
// move, XORs the black-to-move hash word, and clears any en-passant
// target. It returns the previous
// en-passant square so UnmakeNullMove can restore it; baseEval needs no
// adjustment since it is kept white-relative internally (see the
// State.baseEval comment).
func MakeNullMove(s *State) Square {
	saved := s.epSquare
	s.epSquare = NoSquare
	s.hashLow ^= tables.BlackToMoveLow
	s.hashHigh ^= tables.BlackToMoveHigh
	s.side = Other(s.side)
	return saved
}

// UnmakeNullMove is MakeNullMove's inverse.
func UnmakeNullMove(s *State, savedEP Square) {
	s.side = Other(s.side)
	s.hashLow ^= tables.BlackToMoveLow
	s.hashHigh ^= tables.BlackToMoveHigh
	s.epSquare = savedEP
}

// HasNonPawnMaterial reports whether color has any piece other than
// pawns and king, the null-move pruning eligibility test.
func HasNonPawnMaterial(s *State, color byte) bool {
	for pt := Knight; pt <= Queen; pt++ {
		if len(s.PieceSquares(pt, color)) > 0 {
			return true
		}
	}
	return false
}

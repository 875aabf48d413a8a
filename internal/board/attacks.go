package board

import "github.com/coopchess/garbochess/internal/tables"

// colorMaskIndex picks the vector-delta table's black-centric (0) or
// white-centric (1) piece mask for an attacker of the given color.
func colorMaskIndex(attackerColor byte) int {
	if attackerColor == White {
		return 1
	}
	return 0
}

// IsSquareAttackableFrom reports whether the piece standing on from
// pseudo-attacks target.
func IsSquareAttackableFrom(s *State, target, from Square) bool {
	p := s.board[from]
	if p == Empty || Piece(OffBoard) == p {
		return false
	}
	entry := tables.VectorDelta[int(from)-int(target)+128]
	if entry.Delta == 0 {
		return false
	}
	if entry.PieceMask[colorMaskIndex(p.Color())]&(1<<uint(p.Type())) == 0 {
		return false
	}
	if p.Type() == Knight {
		return true
	}
	// Walk from "from" toward "target": entry.Delta is defined as the
	// step from target toward from, so the reverse direction is -Delta.
	step := -entry.Delta
	pos := int(from) + step
	for Square(pos) != target {
		if s.board[pos] != Empty {
			return false
		}
		pos += step
	}
	return true
}

// IsSquareAttackable reports whether any piece of byColor attacks
// target. Pawns are checked directly (their two attacking diagonals);
// every other piece type is checked via its piece list and
// IsSquareAttackableFrom.
func IsSquareAttackable(s *State, target Square, byColor byte) bool {
	pawnDir := 16
	if byColor == Black {
		pawnDir = -16
	}
	for _, d := range [2]int{-1, 1} {
		from := Square(int(target) - pawnDir + d)
		if from.OnBoard() && s.board[from].IsColor(byColor) && s.board[from].Type() == Pawn {
			return true
		}
	}
	for pt := Knight; pt <= King; pt++ {
		for _, from := range s.PieceSquares(pt, byColor) {
			if IsSquareAttackableFrom(s, target, from) {
				return true
			}
		}
	}
	return false
}

// ExposesCheck reports whether vacating "from" would uncover an attack
// on kingSq along the king<->from ray. MakeMove does not call it: its
// legality and check detection use full IsSquareAttackable scans.
func ExposesCheck(s *State, from, kingSq Square) bool {
	if from == kingSq {
		return false
	}
	entry := tables.VectorDelta[int(kingSq)-int(from)+128]
	if entry.Delta == 0 {
		return false
	}
	// Only a queen-class ray (straight or diagonal) can be pinned/opened;
	// a knight offset never lines up with a further attacker behind it.
	const queenMask = 1 << uint(Rook) | 1<<uint(Bishop) | 1<<uint(Queen)
	if entry.PieceMask[0]&queenMask == 0 && entry.PieceMask[1]&queenMask == 0 {
		return false
	}
	// entry.Delta steps from "from" toward kingSq; walk the other way.
	step := -entry.Delta
	pos := int(kingSq) + step
	for Square(pos) != from {
		if s.board[pos] != Empty {
			return false // something already blocks the ray before "from"
		}
		pos += step
	}
	pos += step
	for Square(pos).OnBoard() {
		p := s.board[pos]
		if p == Empty {
			pos += step
			continue
		}
		if p.Color() == s.board[kingSq].Color() {
			return false
		}
		rayIdx := colorMaskIndex(p.Color())
		return tables.VectorDelta[int(kingSq)-int(pos)+128].PieceMask[rayIdx]&(1<<uint(p.Type())) != 0
	}
	return false
}

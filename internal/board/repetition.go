package board

// IsRepDraw reports whether the current position has already occurred
// earlier in the game within the current 50-move window. The search
// treats a single repeated occurrence as a draw (rather than waiting for
// a strict three-fold repeat) so that repeating lines get pruned to 0
// as soon as they cycle back, which is the standard alpha-beta
// repetition check.
func IsRepDraw(s *State) bool {
	if s.moveCount < 2 {
		return false
	}
	// repStack[n-1] holds the position after move n, so entries with the
	// same side to move as now sit at moveCount-3, moveCount-5, ...; the
	// oldest one still inside the window is the position right after the
	// last pawn move or capture.
	limit := s.moveCount - 1 - s.move50
	if limit < 0 {
		limit = 0
	}
	for i := s.moveCount - 3; i >= limit; i -= 2 {
		if s.repStack[i] == s.hashLow {
			return true
		}
	}
	return false
}

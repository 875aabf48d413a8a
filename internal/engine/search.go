package engine

import (
	"sort"
	"time"

	"github.com/coopchess/garbochess/internal/board"
)

// aborted reports, and latches, whether the search has exceeded its
// wall-clock timeout or node-count cap. Read once per
// node, matching "its value is read once per node".
func aborted(s *board.State) bool {
	if !s.SearchValid {
		return true
	}
	if s.FinCnt > s.MaxFinCnt || time.Since(s.StartTime).Seconds() > s.TimeoutSecs {
		s.SearchValid = false
		return true
	}
	return false
}

func orderedCaptures(s *board.State) []board.Move {
	var list board.MoveList
	board.GenerateCaptures(s, &list)
	moves := append([]board.Move(nil), list.Slice()...)
	sort.Slice(moves, func(i, j int) bool { return mvvLva(s, moves[i]) > mvvLva(s, moves[j]) })
	return moves
}

// quiescence is the qsearch entry. qply is the quiescence-
// local recursion depth (0 at the top, used only to gate the "also
// consider checking quiet moves" extension); rootPly is the true
// distance from the search root, needed so a checkmate found here scores
// correctly relative to the root.
func quiescence(s *board.State, alpha, beta, qply, rootPly int) int {
	s.FinCnt++

	if s.InCheck() {
		var list board.MoveList
		board.GenerateCaptures(s, &list)
		board.GenerateAll(s, &list)
		best := board.MinEval + 1 // stand-pat is "must move" while in check
		moved := false
		for _, m := range list.Slice() {
			if !board.MakeMove(s, m) {
				continue
			}
			moved = true
			score := -quiescence(s, -beta, -alpha, qply+1, rootPly+1)
			board.UnmakeMove(s)
			if score > best {
				best = score
			}
			if best > alpha {
				alpha = best
			}
			if alpha >= beta {
				break
			}
		}
		if !moved {
			return board.MinEval + rootPly
		}
		return best
	}

	standPat := Evaluate(s)
	if standPat >= beta {
		return standPat
	}
	best := standPat
	if standPat > alpha {
		alpha = standPat
	}

	for _, m := range orderedCaptures(s) {
		if !See(s, m) {
			continue
		}
		if !board.MakeMove(s, m) {
			continue
		}
		score := -quiescence(s, -beta, -alpha, qply+1, rootPly+1)
		board.UnmakeMove(s)
		if score > best {
			best = score
		}
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			return best
		}
	}

	if qply == 0 {
		var quiets board.MoveList
		board.GenerateAll(s, &quiets)
		for _, m := range quiets.Slice() {
			if !See(s, m) {
				continue
			}
			if !board.MakeMove(s, m) {
				continue
			}
			if !s.InCheck() {
				board.UnmakeMove(s)
				continue
			}
			score := -quiescence(s, -beta, -alpha, qply+1, rootPly+1)
			board.UnmakeMove(s)
			if score > best {
				best = score
			}
			if best > alpha {
				alpha = best
			}
			if alpha >= beta {
				break
			}
		}
	}

	return best
}

// probeTT looks up the current position, adjusting a compatible stored
// value for rootPly-relative mate scoring. usable is false
// when no cutoff or exact value can be returned from the probe alone.
func probeTT(s *board.State, depth, rootPly, alpha, beta int) (value int, usable bool, hashMove board.Move) {
	entry, found := s.TT().ProbeEntry(s.HashLow(), s.HashHigh())
	if !found {
		return 0, false, board.NoMove
	}
	hashMove = entry.Best
	if entry.Depth < depth {
		return 0, false, hashMove
	}
	v := board.FromTT(entry.Value, rootPly)
	switch entry.Flag {
	case board.TTExact:
		return v, true, hashMove
	case board.TTAlpha:
		if v <= alpha {
			return v, true, hashMove
		}
	case board.TTBeta:
		if v >= beta {
			return v, true, hashMove
		}
	}
	return 0, false, hashMove
}

// mateDistanceWindow tightens [alpha,beta] against the best/worst score
// reachable from rootPly and reports whether the window has collapsed.
func mateDistanceWindow(rootPly, alpha, beta int) (a, b int, collapsed bool) {
	lo := board.MinEval + rootPly
	hi := board.MaxEval - rootPly - 1
	if lo > alpha {
		alpha = lo
	}
	if hi < beta {
		beta = hi
	}
	return alpha, beta, alpha >= beta
}

// searchExtension returns the check-extension to apply after a move:
// one extra ply when the move leaves the opponent in check.
func searchExtension(s *board.State) int {
	if s.InCheck() {
		return 1
	}
	return 0
}

func nullMoveR(depth int) int {
	if depth > 6 {
		return 4
	}
	return 3
}

// razorMargin is the static-eval-below-beta threshold allCutNode uses to
// drop straight into quiescence at shallow depth. Scaled per remaining
// ply, matching the common margin shape used for razoring elsewhere in
// this retrieval pack.
func razorMargin(depth int) int { return 300 + 60*depth }

// allCutNode is the null-window "cut/all" entry used for LMR scouts,
// null-move verification, and PVS re-searches: it searches the window
// [beta-1, beta].
func allCutNode(s *board.State, depth, rootPly int, beta int, allowNull bool) int {
	if depth <= 0 {
		return quiescence(s, beta-1, beta, 0, rootPly)
	}
	if aborted(s) {
		return beta - 1
	}
	if rootPly > 0 && board.IsRepDraw(s) {
		return 0
	}

	alpha := beta - 1
	var collapsed bool
	alpha, beta, collapsed = mateDistanceWindow(rootPly, alpha, beta)
	if collapsed {
		return alpha
	}

	if v, ok, _ := probeTT(s, depth, rootPly, alpha, beta); ok {
		return v
	}
	_, _, hashMove := probeTT(s, 0, rootPly, alpha, beta)

	inCheck := s.InCheck()

	if depth <= 2 && hashMove == board.NoMove && !inCheck {
		margin := razorMargin(depth)
		if staticEval := Evaluate(s); staticEval+margin < beta {
			v := quiescence(s, beta-margin-1, beta-margin, 0, rootPly)
			if v < beta-margin {
				return v
			}
		}
	}

	if allowNull && !inCheck && depth >= 3 && board.HasNonPawnMaterial(s, s.Side()) && Evaluate(s) >= beta {
		savedEP := board.MakeNullMove(s)
		s.FinCnt++
		R := nullMoveR(depth)
		score := -allCutNode(s, depth-1-R, rootPly+1, -(beta - 1), false)
		board.UnmakeNullMove(s, savedEP)
		if s.SearchValid && score >= beta {
			return beta
		}
	}

	picker := NewPicker(s, rootPly, hashMove)
	moveNum := 0
	quietNum := 0
	any := false

	for {
		m := picker.Next()
		if m == board.NoMove {
			break
		}
		mover := s.At(m.From())
		quiet := s.At(m.To()) == board.Empty && !m.IsEnPassant() && !m.IsPromotion()
		if !board.MakeMove(s, m) {
			continue
		}
		any = true
		moveNum++
		if quiet {
			quietNum++
		}

		ext := searchExtension(s)
		childDepth := depth - 1 + ext

		var score int
		if quiet && quietNum > 5 && depth >= 3 && ext == 0 {
			reduction := 1
			if quietNum > 14 {
				reduction = 2
			}
			score = -allCutNode(s, childDepth-reduction, rootPly+1, -(beta - 1), true)
			if score >= beta {
				score = -allCutNode(s, childDepth, rootPly+1, -(beta - 1), true)
			}
		} else {
			score = -allCutNode(s, childDepth, rootPly+1, -(beta - 1), true)
		}
		board.UnmakeMove(s)

		if !s.SearchValid {
			return beta - 1
		}

		if score >= beta {
			if quiet {
				s.AddHistory(mover, m.To(), int32(rootPly*rootPly))
				s.UpdateKillers(rootPly, m)
			}
			s.TT().Store(s.HashLow(), s.HashHigh(), board.ToTT(beta, rootPly), board.TTBeta, depth, m)
			return beta
		}
	}

	if !any {
		if inCheck {
			return board.MinEval + rootPly
		}
		return 0
	}

	s.TT().Store(s.HashLow(), s.HashHigh(), board.ToTT(alpha, rootPly), board.TTAlpha, depth, board.NoMove)
	return alpha
}

// alphaBeta is the PV-node entry: full-window search on the first move,
// null-window scouts on the rest with a full re-search on any alpha
// raise.
func alphaBeta(s *board.State, depth, rootPly, alpha, beta int) int {
	if depth <= 0 {
		return quiescence(s, alpha, beta, 0, rootPly)
	}
	if aborted(s) {
		return alpha
	}
	if rootPly > 0 && board.IsRepDraw(s) {
		return 0
	}

	var collapsed bool
	alpha, beta, collapsed = mateDistanceWindow(rootPly, alpha, beta)
	if collapsed {
		return alpha
	}

	if v, ok, _ := probeTT(s, depth, rootPly, alpha, beta); ok {
		return v
	}
	_, _, hashMove := probeTT(s, 0, rootPly, alpha, beta)

	inCheck := s.InCheck()
	picker := NewPicker(s, rootPly, hashMove)

	raisedAlpha := false
	first := true
	any := false
	quietNum := 0
	var bestMove board.Move

	for {
		m := picker.Next()
		if m == board.NoMove {
			break
		}
		mover := s.At(m.From())
		quiet := s.At(m.To()) == board.Empty && !m.IsEnPassant() && !m.IsPromotion()
		if !board.MakeMove(s, m) {
			continue
		}
		any = true
		if quiet {
			quietNum++
		}
		ext := searchExtension(s)
		childDepth := depth - 1 + ext

		var score int
		if first {
			score = -alphaBeta(s, childDepth, rootPly+1, -beta, -alpha)
		} else {
			score = -allCutNode(s, childDepth, rootPly+1, -alpha, true)
			if score > alpha && score < beta {
				score = -alphaBeta(s, childDepth, rootPly+1, -beta, -alpha)
			}
		}
		board.UnmakeMove(s)
		first = false

		if !s.SearchValid {
			return alpha
		}

		if score >= beta {
			if quiet {
				s.AddHistory(mover, m.To(), int32(rootPly*rootPly))
				s.UpdateKillers(rootPly, m)
			}
			s.TT().Store(s.HashLow(), s.HashHigh(), board.ToTT(beta, rootPly), board.TTBeta, depth, m)
			return beta
		}
		if score > alpha {
			alpha = score
			raisedAlpha = true
			bestMove = m
		}
	}

	if !any {
		if inCheck {
			return board.MinEval + rootPly
		}
		return 0
	}

	if raisedAlpha {
		s.TT().Store(s.HashLow(), s.HashHigh(), board.ToTT(alpha, rootPly), board.TTExact, depth, bestMove)
	} else {
		s.TT().Store(s.HashLow(), s.HashHigh(), board.ToTT(alpha, rootPly), board.TTAlpha, depth, board.NoMove)
	}
	return alpha
}

package engine

import (
	"github.com/coopchess/garbochess/internal/board"
	"github.com/coopchess/garbochess/internal/tables"
)

// seeMaskIndex mirrors board's vector-delta color-mask convention
// locally: white attackers use the table's "white-centric" mask (index
// 1), black the "black-centric" one (index 0).
func seeMaskIndex(color byte) int {
	if color == board.White {
		return 1
	}
	return 0
}

// removedSet tracks squares the swap-off algorithm has already used as
// an attacker, so they stop counting as occupying their square (freeing
// any piece behind them on the same ray) without ever touching the real
// board.
type removedSet map[board.Square]bool

func attackableFromIgnoring(s *board.State, target, from board.Square, removed removedSet) bool {
	p := s.At(from)
	entry := tables.VectorDelta[int(from)-int(target)+128]
	if entry.Delta == 0 {
		return false
	}
	if entry.PieceMask[seeMaskIndex(p.Color())]&(1<<uint(p.Type())) == 0 {
		return false
	}
	if p.Type() == board.Knight {
		return true
	}
	step := -entry.Delta
	pos := int(from) + step
	for board.Square(pos) != target {
		if !removed[board.Square(pos)] && s.At(board.Square(pos)) != board.Empty {
			return false
		}
		pos += step
	}
	return true
}

// leastValuableAttacker finds the cheapest remaining attacker of target
// belonging to byColor, ignoring squares already used up by the swap-off
//. Scanning every
// piece type and picking the minimum achieves the same result as a
// pawn-first short-circuit, since a pawn's SEE value is the lowest
// possible and always wins the comparison when present.
func leastValuableAttacker(s *board.State, target board.Square, byColor byte, removed removedSet) (sq board.Square, found bool) {
	best := -1
	bestValue := 1 << 30

	pawnDir := 16
	if byColor == board.Black {
		pawnDir = -16
	}
	for _, d := range [2]int{-1, 1} {
		from := board.Square(int(target) - pawnDir + d)
		if !from.OnBoard() || removed[from] {
			continue
		}
		p := s.At(from)
		if p.IsColor(byColor) && p.Type() == board.Pawn {
			if tables.SEEValue[board.Pawn] < bestValue {
				bestValue, best = tables.SEEValue[board.Pawn], int(from)
			}
		}
	}
	for pt := board.Knight; pt <= board.King; pt++ {
		for _, from := range s.PieceSquares(pt, byColor) {
			if removed[from] {
				continue
			}
			if !attackableFromIgnoring(s, target, from, removed) {
				continue
			}
			v := tables.SEEValue[pt]
			if v < bestValue {
				bestValue, best = v, int(from)
			}
		}
	}
	if best < 0 {
		return 0, false
	}
	return board.Square(best), true
}

// See reports whether move m has non-negative material gain once all
// recaptures on m.To() play out with both sides always recapturing with
// their cheapest remaining attacker. m.To() may be empty
// (quiescence's checking-quiet-move filter); See degrades correctly to
// "is the moved piece itself safe to leave there".
func See(s *board.State, m board.Move) bool {
	from, to := m.From(), m.To()
	attacker := s.At(from)
	target := s.At(to)

	targetValue := tables.SEEValue[target.Type()]
	attackerValue := tables.SEEValue[attacker.Type()]
	if attackerValue <= targetValue {
		return true
	}

	gain := make([]int, 1, 32)
	gain[0] = targetValue
	removed := removedSet{from: true}
	side := board.Other(attacker.Color())
	pendingValue := attackerValue // value of the piece currently sitting on `to`, about to be recaptured

	for {
		gain = append(gain, pendingValue-gain[len(gain)-1])
		sq, ok := leastValuableAttacker(s, to, side, removed)
		if !ok {
			break
		}
		removed[sq] = true
		pendingValue = tables.SEEValue[s.At(sq).Type()]
		side = board.Other(side)
	}

	// The last gain entry assumed a recapture that leastValuableAttacker
	// then found no piece for, so it is left out of the minimax.
	for i := len(gain) - 2; i >= 1; i-- {
		max := gain[i]
		if neg := -gain[i-1]; neg > max {
			max = neg
		}
		gain[i-1] = -max
	}
	return gain[0] >= 0
}

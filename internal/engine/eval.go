// Package engine implements the search: the evaluator, static exchange
// evaluation, move ordering, quiescence and alpha-beta search, and the
// cooperative iterative-deepening driver, all operating on a
// *board.State.
package engine

import (
	"github.com/coopchess/garbochess/internal/board"
	"github.com/coopchess/garbochess/internal/tables"
)

var sliderSteps = map[board.PieceType][]int{
	board.Bishop: {15, 17, -15, -17},
	board.Rook:   {16, -16, 1, -1},
	board.Queen:  {15, 16, 17, 1, -1, -15, -16, -17},
}
var jumperSteps = map[board.PieceType][]int{
	board.Knight: {33, 31, 18, 14, -33, -31, -18, -14},
	board.King:   {15, 16, 17, 1, -1, -15, -16, -17},
}

// colorIdx maps the board's explicit White/Black color flag to the 0/1
// index the mobility table is sized by. The board byte always carries the
// explicit 0x08/0x10 flag; this is the only place the mobility table's
// 0/1 index is derived from it. The vector-delta masks use the opposite
// mapping (white = 1), via board's colorMaskIndex and seeMaskIndex here.
func colorIdx(color byte) int {
	if color == board.White {
		return 0
	}
	return 1
}

// sliderMobility counts, over every direction in pt's pattern, the empty
// squares walked plus one more if the ray ends on an enemy piece.
func sliderMobility(s *board.State, sq board.Square, color byte, steps []int) int {
	count := 0
	for _, d := range steps {
		to := board.Square(int(sq) + d)
		for to.OnBoard() {
			p := s.At(to)
			if p == board.Empty {
				count++
				to = board.Square(int(to) + d)
				continue
			}
			if !p.IsColor(color) {
				count++
			}
			break
		}
	}
	return count
}

// jumperMobility counts, over every offset in pt's pattern, the mobUnit
// table value for the landing square (1 for empty/enemy, 0 for
// friendly/off-board) -- used for knights; the king's mobility is not
// counted.
func jumperMobility(s *board.State, sq board.Square, color byte, steps []int) int {
	ci := colorIdx(color)
	count := 0
	for _, d := range steps {
		to := board.Square(int(sq) + d)
		count += int(tables.MobUnit[ci][s.At(to)])
	}
	return count
}

// mobilityScore returns color's weighted mobility term: knight counts
// offset by -3 then scaled x65, bishop by -4 x50, rook by -4 x25, queen
// by -2 x22, summed over every piece of that type. The king
// is not part of the weighted total -- only knight/bishop/rook/queen
// carry an offset+scale in the source constants.
func mobilityScore(s *board.State, color byte) int {
	total := 0
	for _, sq := range s.PieceSquares(board.Knight, color) {
		total += (jumperMobility(s, sq, color, jumperSteps[board.Knight]) - 3) * 65
	}
	for _, sq := range s.PieceSquares(board.Bishop, color) {
		total += (sliderMobility(s, sq, color, sliderSteps[board.Bishop]) - 4) * 50
	}
	for _, sq := range s.PieceSquares(board.Rook, color) {
		total += (sliderMobility(s, sq, color, sliderSteps[board.Rook]) - 4) * 25
	}
	for _, sq := range s.PieceSquares(board.Queen, color) {
		total += (sliderMobility(s, sq, color, sliderSteps[board.Queen]) - 2) * 22
	}
	return total
}

// kingPST returns color's king piece-square bonus, mirrored for black.
func kingPST(s *board.State, color byte) int {
	sq := s.KingSquare(color)
	if color == board.White {
		return tables.PieceSquare[board.King][sq]
	}
	return tables.PieceSquare[board.King][tables.Flip[sq]]
}

// Evaluate returns a side-to-move-relative score: incremental
// material+PST, plus mobility(side)-mobility(other), plus the king
// safety relaxation and bishop-pair adjustments.
func Evaluate(s *board.State) int {
	us := s.Side()
	them := board.Other(us)

	score := s.BaseEval() + mobilityScore(s, us) - mobilityScore(s, them)

	if len(s.PieceSquares(board.Queen, them)) == 0 {
		score += kingPST(s, us)
	}
	if len(s.PieceSquares(board.Queen, us)) == 0 {
		score -= kingPST(s, them)
	}

	if len(s.PieceSquares(board.Bishop, us)) >= 2 {
		score += 500
	}
	if len(s.PieceSquares(board.Bishop, them)) >= 2 {
		score -= 500
	}

	return score
}

package board

// Step vectors per piece type, as 0x88 deltas. Sliders (bishop, rook,
// queen) walk repeatedly along these; knight and king take one step.
var (
	knightSteps = [8]int{33, 31, 18, 14, -33, -31, -18, -14}
	bishopSteps = [4]int{15, 17, -15, -17}
	rookSteps   = [4]int{16, -16, 1, -1}
	queenSteps  = [8]int{15, 16, 17, 1, -1, -15, -16, -17}
	kingSteps   = [8]int{15, 16, 17, 1, -1, -15, -16, -17}
)

// generateCaptures appends every pseudo-legal capture (including
// en-passant and promotion-with-capture) for the side to move into list.
func generateCaptures(s *State, list *MoveList) {
	us := s.side
	them := Other(us)

	pawnDir := 16
	promoRow := 7
	if us == Black {
		pawnDir = -16
		promoRow = 0
	}
	for _, from := range s.PieceSquares(Pawn, us) {
		for _, d := range [2]int{pawnDir - 1, pawnDir + 1} {
			to := Square(int(from) + d)
			if !to.OnBoard() {
				continue
			}
			if s.board[to].IsColor(them) {
				addPawnMoves(list, from, to, to.Row() == promoRow, 0)
			} else if to == s.epSquare {
				list.add(NewMove(from, to, FlagEnPassant))
			}
		}
	}

	for _, from := range s.PieceSquares(Knight, us) {
		for _, d := range knightSteps {
			to := Square(int(from) + d)
			if to.OnBoard() && s.board[to].IsColor(them) {
				list.add(NewMove(from, to, 0))
			}
		}
	}
	genSliderCaptures(s, list, Bishop, us, them, bishopSteps[:])
	genSliderCaptures(s, list, Rook, us, them, rookSteps[:])
	genSliderCaptures(s, list, Queen, us, them, queenSteps[:])

	king := s.KingSquare(us)
	for _, d := range kingSteps {
		to := Square(int(king) + d)
		if to.OnBoard() && s.board[to].IsColor(them) {
			list.add(NewMove(king, to, 0))
		}
	}
}

func genSliderCaptures(s *State, list *MoveList, pt PieceType, us, them byte, steps []int) {
	for _, from := range s.PieceSquares(pt, us) {
		for _, d := range steps {
			to := Square(int(from) + d)
			for to.OnBoard() {
				if s.board[to] != Empty {
					if s.board[to].IsColor(them) {
						list.add(NewMove(from, to, 0))
					}
					break
				}
				to = Square(int(to) + d)
			}
		}
	}
}

// addPawnMoves appends a pawn move, expanding a promotion into its four
// distinct flagged variants (queen, knight, bishop, rook).
func addPawnMoves(list *MoveList, from, to Square, promoting bool, extraFlags uint32) {
	if !promoting {
		list.add(NewMove(from, to, extraFlags))
		return
	}
	list.add(NewMove(from, to, extraFlags|FlagPromotion|FlagPromoQueen))
	list.add(NewMove(from, to, extraFlags|FlagPromotion|FlagPromoKnight))
	list.add(NewMove(from, to, extraFlags|FlagPromotion|FlagPromoBishop))
	list.add(NewMove(from, to, extraFlags|FlagPromotion)) // no sub-bit: rook
}

// generateAll appends every pseudo-legal quiet (non-capturing) move for
// the side to move into list, including castling. Legality
// of the king's passage squares is deferred to MakeMove.
func generateAll(s *State, list *MoveList) {
	us := s.side

	pawnDir := 16
	startRow := 1
	promoRow := 7
	if us == Black {
		pawnDir = -16
		startRow = 6
		promoRow = 0
	}
	for _, from := range s.PieceSquares(Pawn, us) {
		one := Square(int(from) + pawnDir)
		if !one.OnBoard() || s.board[one] != Empty {
			continue
		}
		addPawnMoves(list, from, one, one.Row() == promoRow, 0)
		if from.Row() == startRow {
			two := Square(int(from) + 2*pawnDir)
			if s.board[two] == Empty {
				list.add(NewMove(from, two, 0))
			}
		}
	}

	for _, from := range s.PieceSquares(Knight, us) {
		for _, d := range knightSteps {
			to := Square(int(from) + d)
			if to.OnBoard() && s.board[to] == Empty {
				list.add(NewMove(from, to, 0))
			}
		}
	}
	genSliderQuiets(s, list, Bishop, us, bishopSteps[:])
	genSliderQuiets(s, list, Rook, us, rookSteps[:])
	genSliderQuiets(s, list, Queen, us, queenSteps[:])

	king := s.KingSquare(us)
	for _, d := range kingSteps {
		to := Square(int(king) + d)
		if to.OnBoard() && s.board[to] == Empty {
			list.add(NewMove(king, to, 0))
		}
	}
	generateCastles(s, list)
}

func genSliderQuiets(s *State, list *MoveList, pt PieceType, us byte, steps []int) {
	for _, from := range s.PieceSquares(pt, us) {
		for _, d := range steps {
			to := Square(int(from) + d)
			for to.OnBoard() && s.board[to] == Empty {
				list.add(NewMove(from, to, 0))
				to = Square(int(to) + d)
			}
		}
	}
}

func generateCastles(s *State, list *MoveList) {
	if s.inCheck {
		return
	}
	us := s.side
	row := 0
	kingSide, queenSide := CastleWK, CastleWQ
	if us == Black {
		row = 7
		kingSide, queenSide = CastleBK, CastleBQ
	}
	king := NewSquare(row, 4)
	if s.castleRights&kingSide != 0 &&
		s.board[NewSquare(row, 5)] == Empty && s.board[NewSquare(row, 6)] == Empty {
		list.add(NewMove(king, NewSquare(row, 6), FlagCastleKing))
	}
	if s.castleRights&queenSide != 0 &&
		s.board[NewSquare(row, 1)] == Empty && s.board[NewSquare(row, 2)] == Empty && s.board[NewSquare(row, 3)] == Empty {
		list.add(NewMove(king, NewSquare(row, 2), FlagCastleQueen))
	}
}

// GenerateCaptures and GenerateAll are the exported entry points used by
// the engine package's move picker and quiescence search.
func GenerateCaptures(s *State, list *MoveList) { generateCaptures(s, list) }
func GenerateAll(s *State, list *MoveList)      { generateAll(s, list) }

// GenerateValidMoves materializes the strict legal move list by trying
// every pseudo-legal move through MakeMove/UnmakeMove. Used
// only by external callers needing a legal move list; the search itself
// relies on the picker's and MakeMove's self-rewinding semantics.
func GenerateValidMoves(s *State, list *MoveList) {
	var pseudo MoveList
	generateCaptures(s, &pseudo)
	generateAll(s, &pseudo)
	for _, m := range pseudo.Slice() {
		if MakeMove(s, m) {
			UnmakeMove(s)
			list.add(m)
		}
	}
}

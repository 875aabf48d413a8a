package engine

import "github.com/coopchess/garbochess/internal/board"

// pickerStage names the seven stages a Picker works through.
type pickerStage int

const (
	stageHash pickerStage = iota
	stageCaptures
	stageKiller1
	stageKiller2
	stageQuiets
	stageLosingCaptures
	stageDone
)

type scoredMove struct {
	move  board.Move
	score int32
	done  bool
}

// Picker is a stateful, lazy, best-first move iterator: hash move,
// winning/equal captures (MVV-LVA order), killer 1, killer 2, quiet
// moves (history order), losing captures, end. Each call to
// Next does one selection-sort pick over whatever stage is current.
type Picker struct {
	s    *board.State
	ply  int
	hash board.Move

	stage pickerStage

	captures scoredMove32
	quiets   scoredMove32

	losing    []board.Move
	losingIdx int

	killer1, killer2 board.Move
}

// scoredMove32 is a small scored-move buffer the picker selection-sorts
// in place, one winning pick per Next call.
type scoredMove32 struct {
	list  []scoredMove
	taken []bool
}

func newScoredMoves(moves []board.Move, score func(board.Move) int32) scoredMove32 {
	sm := scoredMove32{
		list:  make([]scoredMove, len(moves)),
		taken: make([]bool, len(moves)),
	}
	for i, m := range moves {
		sm.list[i] = scoredMove{move: m, score: score(m)}
	}
	return sm
}

// best returns the highest-scoring untaken move, marking it taken, or
// (0,false) when every entry has been picked.
func (sm *scoredMove32) best() (board.Move, bool) {
	bestI := -1
	for i := range sm.list {
		if sm.taken[i] {
			continue
		}
		if bestI < 0 || sm.list[i].score > sm.list[bestI].score {
			bestI = i
		}
	}
	if bestI < 0 {
		return board.NoMove, false
	}
	sm.taken[bestI] = true
	return sm.list[bestI].move, true
}

// mvvLva scores a capture (captured<<5 - attackerType): most valuable
// victim first, least valuable attacker breaking ties.
func mvvLva(s *board.State, m board.Move) int32 {
	captured := s.At(m.To()).Type()
	attacker := s.At(m.From()).Type()
	return int32(captured)<<5 - int32(attacker)
}

// NewPicker builds a picker for the position s at search ply, with hash
// being the TT's stored best move for this position (or board.NoMove).
func NewPicker(s *board.State, ply int, hash board.Move) *Picker {
	p := &Picker{s: s, ply: ply, hash: hash}

	killers := s.Killers(ply)
	p.killer1, p.killer2 = killers[0], killers[1]

	var captureList board.MoveList
	board.GenerateCaptures(s, &captureList)
	var winning []board.Move
	for _, m := range captureList.Slice() {
		if m == hash {
			continue
		}
		if See(s, m) {
			winning = append(winning, m)
		} else {
			p.losing = append(p.losing, m)
		}
	}
	p.captures = newScoredMoves(winning, func(m board.Move) int32 { return mvvLva(s, m) })

	var quietList board.MoveList
	board.GenerateAll(s, &quietList)

	// The hash move and killers were recorded in other positions; keep each
	// only if the generator produced it here (killers only as quiet moves).
	contains := func(l *board.MoveList, want board.Move) bool {
		for _, m := range l.Slice() {
			if m == want {
				return true
			}
		}
		return false
	}
	if !contains(&captureList, p.hash) && !contains(&quietList, p.hash) {
		p.hash = board.NoMove
	}
	if !contains(&quietList, p.killer1) {
		p.killer1 = board.NoMove
	}
	if !contains(&quietList, p.killer2) {
		p.killer2 = board.NoMove
	}

	var quiets []board.Move
	for _, m := range quietList.Slice() {
		if m == hash || m == p.killer1 || m == p.killer2 {
			continue
		}
		quiets = append(quiets, m)
	}
	p.quiets = newScoredMoves(quiets, func(m board.Move) int32 {
		return s.History(s.At(m.From()), m.To())
	})

	losingScores := newScoredMoves(p.losing, func(m board.Move) int32 { return mvvLva(s, m) })
	p.losing = p.losing[:0]
	for {
		m, ok := losingScores.best()
		if !ok {
			break
		}
		p.losing = append(p.losing, m)
	}

	return p
}

// Next returns the next move in stage order, or board.NoMove when
// exhausted.
func (p *Picker) Next() board.Move {
	for {
		switch p.stage {
		case stageHash:
			p.stage = stageCaptures
			if p.hash != board.NoMove {
				return p.hash
			}
		case stageCaptures:
			if m, ok := p.captures.best(); ok {
				return m
			}
			p.stage = stageKiller1
		case stageKiller1:
			p.stage = stageKiller2
			if p.killer1 != board.NoMove && p.killer1 != p.hash {
				return p.killer1
			}
		case stageKiller2:
			p.stage = stageQuiets
			if p.killer2 != board.NoMove && p.killer2 != p.hash {
				return p.killer2
			}
		case stageQuiets:
			if m, ok := p.quiets.best(); ok {
				return m
			}
			p.stage = stageLosingCaptures
		case stageLosingCaptures:
			if p.losingIdx < len(p.losing) {
				m := p.losing[p.losingIdx]
				p.losingIdx++
				return m
			}
			p.stage = stageDone
		case stageDone:
			return board.NoMove
		}
	}
}

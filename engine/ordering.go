package engine

import (
	"sort"

	bd "github.com/kestog/giveaway-engine/board"
)

const (
	scoreTTMove  = 100000
	scoreCapture = 90000
	scoreKiller  = 80000
)

// OrderingHeuristics bundles the killer-move slots and history table used
// to sort sibling moves before a negamax loop visits them, per §4.6.
// Unlike the transposition table it does not survive across
// find_best_move calls: the driver resets it at the start of each search.
type OrderingHeuristics struct {
	killers [MaxPly][2]bd.Move
	history [32][32]int
}

// NewOrderingHeuristics returns a zeroed heuristics set.
func NewOrderingHeuristics() *OrderingHeuristics { return &OrderingHeuristics{} }

// Reset zeroes killers and history, matching the "zeroed at the start of
// each find_best_move call" lifecycle rule in §3.
func (o *OrderingHeuristics) Reset() {
	*o = OrderingHeuristics{}
}

// RecordCutoff registers that quiet move m caused a beta cutoff at ply,
// at the given remaining depth. It shifts the existing killer down a
// slot (avoiding duplicates) and accumulates depth*depth into the
// from/to history counter.
func (o *OrderingHeuristics) RecordCutoff(m bd.Move, ply, depth int) {
	if ply >= 0 && ply < MaxPly {
		if !o.killers[ply][0].Equal(m) && !o.killers[ply][1].Equal(m) {
			o.killers[ply][1] = o.killers[ply][0]
			o.killers[ply][0] = m
		}
	}
	o.history[m.FromSquare()][m.ToSquare()] += depth * depth
}

func (o *OrderingHeuristics) isKiller(m bd.Move, ply int) bool {
	if ply < 0 || ply >= MaxPly {
		return false
	}
	return o.killers[ply][0].Equal(m) || o.killers[ply][1].Equal(m)
}

// ScoreMoves assigns Move.Score to every move per the §4.6 table (TT move
// first, then captures ranked by size, then killers, then history) and
// sorts moves descending by score in place.
func (o *OrderingHeuristics) ScoreMoves(moves []bd.Move, ttBest bd.Move, ply int) {
	hasTT := ttBest != (bd.Move{})
	for i := range moves {
		m := &moves[i]
		switch {
		case hasTT && m.From == ttBest.From && m.To == ttBest.To:
			m.Score = scoreTTMove
		case m.IsCapture():
			m.Score = scoreCapture + m.CaptureCount()
		case o.isKiller(*m, ply):
			m.Score = scoreKiller
		default:
			m.Score = o.history[m.FromSquare()][m.ToSquare()]
		}
	}
	sort.SliceStable(moves, func(i, j int) bool { return moves[i].Score > moves[j].Score })
}

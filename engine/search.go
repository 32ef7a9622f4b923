package engine

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	bd "github.com/kestog/giveaway-engine/board"
	"github.com/kestog/giveaway-engine/movegen"
)

const (
	// MATE is a sentinel large enough that mate-in-N (MATE - ply) never
	// collides with the largest plausible positional score. A full board
	// is at most 12 kings a side (3600) plus PST, so MATE is set with
	// generous headroom above that, in the spirit of the teacher's own
	// Checkmate=20000 sentinel scaled for this engine's deeper plies.
	MATE = 100000

	// MaxPly bounds recursion depth and the killer-move table.
	MaxPly = 128

	// quiescenceMaxPly caps pathological capture chains in quiescence,
	// per §4.7; an implementation may raise it.
	quiescenceMaxPly = 8

	// nodeCheckInterval is how often the cooperative stop check samples
	// the wall clock, per §5.
	nodeCheckInterval = 2048
)

// SearchContext bundles everything the driver and negamax need across one
// find_best_move call: the transposition table (which survives across
// calls), ordering heuristics (reset per call), node accounting, the
// cooperative stop flag, and reusable per-ply move buffers. This
// replaces the teacher's package-level globals, per the re-architecture
// spec §9 calls for directly rather than leaving as a suggestion.
type SearchContext struct {
	TT       *TranspositionTable
	Ordering *OrderingHeuristics
	Nodes    uint64

	stop     bool
	deadline time.Time

	moveBufs    [MaxPly][]bd.Move
	captureBufs [MaxPly][]bd.Move
	quietBufs   [MaxPly][]bd.Move
}

// NewSearchContext creates a context with a freshly sized TT. Callers
// that want a warm TT across multiple find_best_move calls should keep
// the SearchContext around and call PrepareForSearch between calls
// instead of constructing a new one.
func NewSearchContext(ttSizeMB int) *SearchContext {
	return &SearchContext{
		TT:       NewTranspositionTable(ttSizeMB),
		Ordering: NewOrderingHeuristics(),
	}
}

// PrepareForSearch resets everything that must not survive across calls
// (killers, history, node counter, stop flag) while leaving the
// transposition table warm, per §3's lifecycle rules and §5's resource
// model.
func (sc *SearchContext) PrepareForSearch() {
	sc.Ordering.Reset()
	sc.Nodes = 0
	sc.stop = false
}

func (sc *SearchContext) checkStop() {
	sc.Nodes++
	if sc.Nodes%nodeCheckInterval == 0 && time.Now().After(sc.deadline) {
		sc.stop = true
	}
}

// FindBestMove runs iterative deepening from board up to maxDepth or
// until timeLimit elapses, returning the External Interfaces' result
// shape (§6).
func (sc *SearchContext) FindBestMove(board bd.Board, side bd.Side, maxDepth int, timeLimit time.Duration) SearchResult {
	sc.PrepareForSearch()
	start := time.Now()
	sc.deadline = start.Add(timeLimit)

	var result SearchResult
	var bestMove bd.Move
	var bestScore int

	for depth := 1; depth <= maxDepth; depth++ {
		score := sc.negamax(board, side, -MATE-1, MATE+1, depth, 0)
		if sc.stop && depth > 1 {
			break
		}

		_, _, ttMove := sc.TT.Probe(board.Hash, -MATE-1, MATE+1, depth)
		bestMove = ttMove
		bestScore = score
		result.FinalDepth = depth

		elapsed := time.Since(start)
		log.Debug().Int("depth", depth).Int("score", score).
			Uint64("nodes", sc.Nodes).Dur("elapsed", elapsed).
			Msg("iterative-deepening iteration complete")
		printDiagnostic(depth, score, sc.Nodes, elapsed)

		if abs(bestScore) >= MATE-MaxPly {
			break
		}
		if sc.stop {
			break
		}
	}

	result.Best = bestMove
	result.Score = bestScore
	result.NodesSearched = sc.Nodes
	result.ElapsedMS = time.Since(start).Milliseconds()
	return result
}

// negamax implements §4.7's negamax pseudocode exactly: white-positive
// evaluator, side-to-move negation at every recursive call, and the
// giveaway sign convention on the no-legal-move terminal (the side to
// move that cannot move has just won, and returns +MATE-ply for itself).
func (sc *SearchContext) negamax(board bd.Board, side bd.Side, alpha, beta, depth, ply int) int {
	sc.checkStop()
	if sc.stop || ply >= MaxPly {
		return 0
	}

	alphaOrig := alpha
	score, has, ttBest := sc.TT.Probe(board.Hash, alpha, beta, depth)
	if has {
		return score
	}

	if depth <= 0 {
		return sc.quiescence(board, side, alpha, beta, 0)
	}

	legal := sc.legalMovesAt(board, side, ply)
	if len(legal) == 0 {
		return MATE - ply
	}

	sc.Ordering.ScoreMoves(legal, ttBest, ply)

	best := -MATE - 1
	var bestMove bd.Move
	for _, m := range legal {
		child := bd.ApplyMove(board, m, side)
		var childScore int
		if child.HasNoPieces(side) {
			childScore = -(MATE - ply)
		} else {
			childScore = -sc.negamax(child, side.Opponent(), -beta, -alpha, depth-1, ply+1)
		}

		if childScore > best {
			best = childScore
			bestMove = m
		}
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			if !m.IsCapture() {
				sc.Ordering.RecordCutoff(m, ply, depth)
			}
			sc.TT.Store(board.Hash, best, depth, BoundLower, m)
			return beta
		}
	}

	bound := BoundExact
	if best <= alphaOrig {
		bound = BoundUpper
	}
	sc.TT.Store(board.Hash, best, depth, bound, bestMove)
	return best
}

// quiescence implements §4.7's quiescence pseudocode: stand-pat cutoff,
// then extend only through maximum-capture sequences until quiet or the
// depth cap is reached.
func (sc *SearchContext) quiescence(board bd.Board, side bd.Side, alpha, beta, qply int) int {
	sc.checkStop()
	if sc.stop {
		return 0
	}

	standPat := evaluateForSide(board, side)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	if qply > quiescenceMaxPly {
		return standPat
	}

	captures := movegen.Captures(board, side)
	if len(captures) == 0 {
		return standPat
	}
	max := 0
	for _, m := range captures {
		if c := m.CaptureCount(); c > max {
			max = c
		}
	}

	for _, m := range captures {
		if m.CaptureCount() != max {
			continue
		}
		child := bd.ApplyMove(board, m, side)
		var childScore int
		if child.HasNoPieces(side) {
			childScore = -(MATE - qply)
		} else {
			childScore = -sc.quiescence(child, side.Opponent(), -beta, -alpha, qply+1)
		}
		if childScore >= beta {
			return beta
		}
		if childScore > alpha {
			alpha = childScore
		}
	}
	return alpha
}

// legalMovesAt reuses the per-ply scratch buffers so a full search does
// not allocate a fresh move slice at every node, per §5's memory note.
func (sc *SearchContext) legalMovesAt(board bd.Board, side bd.Side, ply int) []bd.Move {
	movegen.LegalMovesInto(board, side, &sc.captureBufs[ply], &sc.quietBufs[ply], &sc.moveBufs[ply])
	return sc.moveBufs[ply]
}

// evaluateForSide returns Evaluate(board) from side's own perspective,
// negating the white-positive result for Black.
func evaluateForSide(board bd.Board, side bd.Side) int {
	if side == bd.White {
		return Evaluate(board)
	}
	return -Evaluate(board)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func printDiagnostic(depth, score int, nodes uint64, elapsed time.Duration) {
	// Wire-format diagnostic line per §6; kept as a literal Printf, not a
	// zerolog record, since this is protocol output an embedder parses.
	fmt.Printf("info depth %d score cp %d nodes %d time %d pv\n", depth, score, nodes, elapsed.Milliseconds())
}

package engine

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	bd "github.com/kestog/giveaway-engine/board"
	"github.com/kestog/giveaway-engine/movegen"
)

// SearchResult is the External Interfaces' find_best_move return shape
// (§6), supplemented with the fields original_source/bindings.cpp's
// SearchResult exposes to its embedder.
type SearchResult struct {
	Best          bd.Move
	Score         int
	NodesSearched uint64
	ElapsedMS     int64
	FinalDepth    int
}

// EngineOptions configures a new Engine. There is no config file or
// environment variable surface (§6: "no file formats, environment
// variables, or persisted state") — every tunable is an explicit field.
type EngineOptions struct {
	// TTSizeMB sizes the transposition table. Zero degenerates to a
	// 1-entry table per the error handling design's resource-limit rule.
	TTSizeMB int
}

// Engine is the embedder-facing handle described in §6: init_engine,
// find_best_move, generate_legal_moves, apply_move, and calculate_hash
// are its methods.
type Engine struct {
	ctx *SearchContext
}

// NewEngine is init_engine(tt_size_mb): a one-shot constructor. Zobrist
// keys are already seeded at package init time with the fixed
// 0xDEADBEEF seed (board.zobristSeed), so hashes are reproducible across
// runs without any action here beyond sizing the table.
func NewEngine(opts EngineOptions) (*Engine, error) {
	if opts.TTSizeMB < 0 {
		return nil, fmt.Errorf("engine: negative TTSizeMB: %w", errInvalidOptions)
	}
	e := &Engine{ctx: NewSearchContext(opts.TTSizeMB)}
	log.Info().Int("tt_slots", e.ctx.TT.Len()).Msg("engine initialised")
	return e, nil
}

var errInvalidOptions = fmt.Errorf("invalid engine options")

// FindBestMove is find_best_move(board, side, max_depth, time_limit_ms).
func (e *Engine) FindBestMove(board bd.Board, side bd.Side, maxDepth int, timeLimitMS int64) SearchResult {
	if maxDepth <= 0 {
		maxDepth = 1
	}
	return e.ctx.FindBestMove(board, side, maxDepth, time.Duration(timeLimitMS)*time.Millisecond)
}

// GenerateLegalMoves is generate_legal_moves(board, side).
func (e *Engine) GenerateLegalMoves(board bd.Board, side bd.Side) []bd.Move {
	return movegen.LegalMoves(board, side)
}

// ApplyMove is apply_move(board, move, side).
func (e *Engine) ApplyMove(board bd.Board, move bd.Move, side bd.Side) bd.Board {
	return bd.ApplyMove(board, move, side)
}

// CalculateHash is calculate_hash(board, side): a from-scratch recompute,
// independent of whatever incremental hash the board already carries, for
// external correctness checks (Testable Property 1).
func CalculateHash(board bd.Board) uint64 {
	return bd.ComputeZobrist(board)
}

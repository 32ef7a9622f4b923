package engine

import (
	bd "github.com/kestog/giveaway-engine/board"
)

// Bound records which side of the search window a stored score is exact
// or bounded by.
type Bound int8

const (
	BoundExact Bound = iota
	BoundLower       // fail-high / beta cutoff: score is a lower bound
	BoundUpper       // fail-low / alpha: score is an upper bound
)

// ttEntry is one slot of the transposition table. Key is the full 64-bit
// Zobrist hash, stored alongside the index bits for hash-lock
// verification per the component design.
type ttEntry struct {
	key   uint64
	score int
	depth int
	bound Bound
	best  bd.Move
	used  bool
}

// TranspositionTable is a flat, power-of-two-sized vector of entries
// indexed by hash & (size-1), with a single-slot depth-preferring
// replacement policy: a store for the same position keeps a deeper
// stored entry over a shallower new one, while a store for a different
// position always overwrites the slot.
// This adapts the teacher's clustered depth-preferring scheme
// (engine/transposition.go) down to the single vector §4.5 describes.
type TranspositionTable struct {
	entries []ttEntry
	mask    uint64
}

// NewTranspositionTable allocates a table sized to the largest power of
// two of entries that fits in sizeMB megabytes. sizeMB == 0 degenerates
// to a 1-entry table (useless but harmless), per the error handling
// design's resource-limit contract.
func NewTranspositionTable(sizeMB int) *TranspositionTable {
	const entrySize = 64 // size of ttEntry in bytes on 64-bit platforms
	budget := sizeMB * 1024 * 1024
	count := 1
	if budget > 0 {
		n := budget / entrySize
		count = 1
		for count*2 <= n {
			count *= 2
		}
	}
	return &TranspositionTable{
		entries: make([]ttEntry, count),
		mask:    uint64(count - 1),
	}
}

func (t *TranspositionTable) index(key uint64) uint64 { return key & t.mask }

// Probe implements the probe contract of §4.5: given the current search
// window and depth, it reports whether the stored entry lets the caller
// return immediately, and always returns the stored best move (zero Move
// if none) to seed move ordering.
func (t *TranspositionTable) Probe(key uint64, alpha, beta, depth int) (score int, hasScore bool, best bd.Move) {
	e := &t.entries[t.index(key)]
	if !e.used || e.key != key {
		return 0, false, bd.Move{}
	}
	best = e.best
	if e.depth >= depth {
		switch e.bound {
		case BoundExact:
			return e.score, true, best
		case BoundLower:
			if e.score >= beta {
				return e.score, true, best
			}
		case BoundUpper:
			if e.score <= alpha {
				return e.score, true, best
			}
		}
	}
	return 0, false, best
}

// Store implements §4.5's store contract, replacing an existing entry
// only when the new depth is at least as deep or the slot holds a
// different position entirely.
func (t *TranspositionTable) Store(key uint64, score, depth int, bound Bound, best bd.Move) {
	e := &t.entries[t.index(key)]
	if e.used && e.key == key && e.depth > depth {
		return
	}
	e.key = key
	e.score = score
	e.depth = depth
	e.bound = bound
	e.best = best
	e.used = true
}

// Len reports the number of slots in the table (a power of two).
func (t *TranspositionTable) Len() int { return len(t.entries) }

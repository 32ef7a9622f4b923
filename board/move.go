package board

import "math/bits"

// Move is a self-contained delta, not an index into a move list: it can be
// applied to any Board of the right shape without a side-channel lookup.
type Move struct {
	From        uint32 // single-bit origin mask
	To          uint32 // single-bit final landing mask
	Captured    uint32 // mask of every enemy piece removed by this move
	BecomesKing bool

	// Score is a transient ordering key filled in by the engine package's
	// move-ordering pass. It is not part of game state and ApplyMove
	// ignores it.
	Score int
}

// Equal reports whether m and other are the same move, ignoring the
// transient Score field ordering writes into candidates but which is
// never part of game state.
func (m Move) Equal(other Move) bool {
	return m.From == other.From && m.To == other.To &&
		m.Captured == other.Captured && m.BecomesKing == other.BecomesKing
}

// IsCapture reports whether the move removes any enemy pieces.
func (m Move) IsCapture() bool { return m.Captured != 0 }

// CaptureCount returns the number of pieces this move removes.
func (m Move) CaptureCount() int { return bits.OnesCount32(m.Captured) }

// FromSquare and ToSquare return the 0..31 square indices for a move whose
// From/To are the usual single-bit masks.
func (m Move) FromSquare() int { return bits.TrailingZeros32(m.From) }
func (m Move) ToSquare() int   { return bits.TrailingZeros32(m.To) }

// ApplyMove produces the successor board. Calling it with a move not
// produced by movegen for this exact board is undefined behaviour for the
// search (per the contract in the component design) but never corrupts
// the receiver, since Board is passed by value.
func ApplyMove(b Board, m Move, side Side) Board {
	wasKing := b.Kings&m.From != 0

	next := b
	if side == White {
		next.White ^= m.From | m.To
	} else {
		next.Black ^= m.From | m.To
	}
	if wasKing {
		next.Kings ^= m.From | m.To
	}

	if m.Captured != 0 {
		if side == White {
			next.Black &^= m.Captured
		} else {
			next.White &^= m.Captured
		}
		next.Kings &^= m.Captured
	}

	becameKing := false
	if m.BecomesKing && !wasKing {
		next.Kings |= m.To
		becameKing = true
	}

	next.Side = side.Opponent()
	next.Hash = incrementalHash(b, m, side, wasKing, becameKing)
	return next
}

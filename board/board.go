// Package board implements the 32-square single-colour bitboard used by
// the giveaway checkers engine: piece sets for both colours, the king
// subset, and the Zobrist digest kept in sync with them.
package board

import (
	"fmt"
	"math/bits"
)

// Side identifies which colour is to move. The zero value is invalid.
type Side uint8

const (
	White Side = 1
	Black Side = 2
)

// Opponent returns the other side, per the 3-side encoding used throughout
// the engine and its external interface.
func (s Side) Opponent() Side { return Side(3 - s) }

func (s Side) String() string {
	switch s {
	case White:
		return "white"
	case Black:
		return "black"
	default:
		return fmt.Sprintf("side(%d)", uint8(s))
	}
}

const (
	// BoardMask covers the 32 playable squares.
	BoardMask uint32 = 0xFFFFFFFF

	// ColA and ColH are the two edge files on the single-colour board;
	// a man or king on one of these files cannot shift further in the
	// direction that would wrap around the board.
	ColA uint32 = 0x11111111
	ColH uint32 = 0x88888888

	NotColA uint32 = ^ColA & BoardMask
	NotColH uint32 = ^ColH & BoardMask

	// PromoRankWhite is the rank White men are crowned on (Black's back
	// rank); PromoRankBlack is the rank Black men are crowned on (White's
	// back rank).
	PromoRankWhite uint32 = 0xF0000000
	PromoRankBlack uint32 = 0x0000000F
)

// Board is the full game state: the two colour sets, the king subset, and
// a Zobrist digest kept current by ApplyMove. A Board value is immutable
// once constructed; ApplyMove always returns a new value.
type Board struct {
	White uint32
	Black uint32
	Kings uint32
	Hash  uint64
	Side  Side
}

// Initial returns the opening position: 12 white men on squares 0..11,
// 12 black men on squares 20..31, no kings.
func Initial() Board {
	b := Board{
		White: 0x00000FFF,
		Black: 0xFFF00000,
		Kings: 0,
		Side:  White,
	}
	b.Hash = ComputeZobrist(b)
	return b
}

// FromBitboards constructs a Board from literal piece sets. This is not a
// notation parser (there is none in this engine); it is a validated struct
// literal helper so tests and embedders can construct arbitrary reachable
// positions without touching Board's internals directly.
func FromBitboards(white, black, kings uint32, side Side) (Board, error) {
	if white&black != 0 {
		return Board{}, fmt.Errorf("board: white and black sets overlap: %w", errInvalidPosition)
	}
	if kings&^(white|black) != 0 {
		return Board{}, fmt.Errorf("board: kings not a subset of white|black: %w", errInvalidPosition)
	}
	if white&^BoardMask != 0 || black&^BoardMask != 0 || kings&^BoardMask != 0 {
		return Board{}, fmt.Errorf("board: bits set outside the 32-square mask: %w", errInvalidPosition)
	}
	if side != White && side != Black {
		return Board{}, fmt.Errorf("board: side must be White or Black: %w", errInvalidPosition)
	}
	b := Board{White: white, Black: black, Kings: kings, Side: side}
	b.Hash = ComputeZobrist(b)
	return b, nil
}

var errInvalidPosition = fmt.Errorf("invalid position")

// Occupied returns the set of all squares holding a piece of either colour.
func (b Board) Occupied() uint32 { return b.White | b.Black }

// Empty returns the set of empty playable squares.
func (b Board) Empty() uint32 { return ^b.Occupied() & BoardMask }

// Colour returns the piece set belonging to side.
func (b Board) Colour(side Side) uint32 {
	if side == White {
		return b.White
	}
	return b.Black
}

// PieceCount returns the number of men and kings side has on the board.
func (b Board) PieceCount(side Side) int {
	return bits.OnesCount32(b.Colour(side))
}

// HasNoPieces reports whether side has been wiped off the board, one of
// the two giveaway terminal conditions.
func (b Board) HasNoPieces(side Side) bool { return b.Colour(side) == 0 }

// Validate checks the structural invariants ApplyMove must preserve. It is
// intended for debug builds and tests, not hot search paths.
func (b Board) Validate() error {
	if b.White&b.Black != 0 {
		return fmt.Errorf("board: white/black overlap")
	}
	if b.Kings&^(b.White|b.Black) != 0 {
		return fmt.Errorf("board: kings not subset of occupied squares")
	}
	if b.White&^BoardMask != 0 || b.Black&^BoardMask != 0 {
		return fmt.Errorf("board: piece bits outside board mask")
	}
	if b.Hash != ComputeZobrist(b) {
		return fmt.Errorf("board: hash out of sync with piece sets")
	}
	return nil
}

// Mirror swaps colours and reflects every square index i <-> 31-i. It is
// used only by tests to check the evaluator's antisymmetry property; it
// has no role in search.
func (b Board) Mirror() Board {
	flip := func(set uint32) uint32 {
		var out uint32
		for set != 0 {
			sq := bits.TrailingZeros32(set)
			set &= set - 1
			out |= 1 << uint(31-sq)
		}
		return out
	}
	m := Board{
		White: flip(b.Black),
		Black: flip(b.White),
		Kings: flip(b.Kings),
		Side:  b.Side.Opponent(),
	}
	m.Hash = ComputeZobrist(m)
	return m
}

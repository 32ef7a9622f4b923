package board

import (
	"math/bits"
	"math/rand"
)

// zobristSeed fixes the PRNG seed so hashes are reproducible across runs
// and across processes, as init_engine's external contract requires.
const zobristSeed = 0xDEADBEEF

// Piece kind indices into zobristPiece. Kind, not Side, is the fast axis
// so a promotion only needs to touch the "to" square's two king/man rows.
const (
	kindWhiteMan = iota
	kindWhiteKing
	kindBlackMan
	kindBlackKing
	numKinds
)

var (
	zobristPiece [numKinds][32]uint64
	zobristSide  uint64
)

func init() {
	rnd := rand.New(rand.NewSource(zobristSeed))
	for k := 0; k < numKinds; k++ {
		for sq := 0; sq < 32; sq++ {
			zobristPiece[k][sq] = rnd.Uint64()
		}
	}
	zobristSide = rnd.Uint64()
}

func kindOf(side Side, isKing bool) int {
	switch {
	case side == White && !isKing:
		return kindWhiteMan
	case side == White && isKing:
		return kindWhiteKing
	case side == Black && !isKing:
		return kindBlackMan
	default:
		return kindBlackKing
	}
}

// ComputeZobrist recomputes the digest from scratch; used at construction
// time and by tests that check the incremental update against it.
func ComputeZobrist(b Board) uint64 {
	var key uint64
	white, black, kings := b.White, b.Black, b.Kings
	for white != 0 {
		sq := bits.TrailingZeros32(white)
		white &= white - 1
		key ^= zobristPiece[kindOf(White, kings&(1<<uint(sq)) != 0)][sq]
	}
	for black != 0 {
		sq := bits.TrailingZeros32(black)
		black &= black - 1
		key ^= zobristPiece[kindOf(Black, kings&(1<<uint(sq)) != 0)][sq]
	}
	if b.Side == Black {
		key ^= zobristSide
	}
	return key
}

// incrementalHash folds a single ApplyMove step into the previous hash
// instead of recomputing from scratch, per the component design's
// apply_move step 4.
func incrementalHash(before Board, m Move, side Side, wasKing, becameKing bool) uint64 {
	key := before.Hash

	fromSq := m.FromSquare()
	toSq := m.ToSquare()

	key ^= zobristPiece[kindOf(side, wasKing)][fromSq]
	key ^= zobristPiece[kindOf(side, wasKing || becameKing)][toSq]

	captured := m.Captured
	opp := side.Opponent()
	for captured != 0 {
		sq := bits.TrailingZeros32(captured)
		captured &= captured - 1
		wasOppKing := before.Kings&(1<<uint(sq)) != 0
		key ^= zobristPiece[kindOf(opp, wasOppKing)][sq]
	}

	key ^= zobristSide
	return key
}

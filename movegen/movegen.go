// Package movegen enumerates pseudo-legal quiet moves and captures for a
// side to move, and applies the mandatory-capture / maximum-capture
// disambiguation that turns them into legal moves.
package movegen

import (
	"math/bits"

	bd "github.com/kestog/giveaway-engine/board"
)

// Quiets returns every quiet (non-capturing) move available to side. Men
// step diagonally forward one square onto an empty square; kings slide
// any distance along a clear diagonal.
func Quiets(b bd.Board, side bd.Side) []bd.Move {
	moves := make([]bd.Move, 0, 8)
	QuietsInto(b, side, &moves)
	return moves
}

// QuietsInto appends quiet moves to *sink, avoiding an allocation per call
// when the caller reuses a per-ply buffer (see SearchContext).
func QuietsInto(b bd.Board, side bd.Side, sink *[]bd.Move) {
	empty := b.Empty()
	own := b.Colour(side)
	kings := own & b.Kings
	men := own &^ b.Kings

	for _, d := range forwardDirs(side) {
		m := men
		for m != 0 {
			sq := bits.TrailingZeros32(m)
			m &= m - 1
			to := neighborTable[d][sq]
			if to < 0 {
				continue
			}
			toBit := uint32(1) << uint(to)
			if empty&toBit == 0 {
				continue
			}
			*sink = append(*sink, bd.Move{
				From:        uint32(1) << uint(sq),
				To:          toBit,
				BecomesKing: onPromotionRank(side, toBit),
			})
		}
	}

	k := kings
	for k != 0 {
		sq := bits.TrailingZeros32(k)
		k &= k - 1
		for d := 0; d < numDirs; d++ {
			to := neighborTable[d][sq]
			for to >= 0 && empty&(uint32(1)<<uint(to)) != 0 {
				*sink = append(*sink, bd.Move{
					From: uint32(1) << uint(sq),
					To:   uint32(1) << uint(to),
				})
				to = neighborTable[d][to]
			}
		}
	}
}

// Captures returns every capture sequence available to side, men and
// kings alike, without applying the maximum-capture filter (that is
// LegalMoves' job).
func Captures(b bd.Board, side bd.Side) []bd.Move {
	moves := make([]bd.Move, 0, 8)
	CapturesInto(b, side, &moves)
	return moves
}

// CapturesInto appends every capture sequence to *sink.
func CapturesInto(b bd.Board, side bd.Side, sink *[]bd.Move) {
	own := b.Colour(side)
	men := own &^ b.Kings
	kings := own & b.Kings

	for men != 0 {
		sq := bits.TrailingZeros32(men)
		men &= men - 1
		manCaptureContinue(b, side, sq, sq, 0, sink)
	}
	for kings != 0 {
		sq := bits.TrailingZeros32(kings)
		kings &= kings - 1
		kingCaptureContinue(b, side, sq, sq, 0, false, sink)
	}
}

func onPromotionRank(side bd.Side, sqBit uint32) bool {
	if side == bd.White {
		return sqBit&bd.PromoRankWhite != 0
	}
	return sqBit&bd.PromoRankBlack != 0
}

// manCaptureContinue extends a man's capture sequence from current,
// having already captured the pieces in captured. It returns true if at
// least one further jump was found from current; when it returns false to
// its caller, the caller is responsible for emitting the move that ends
// at current (this is the "leaf of the recursion emits one Move" rule).
func manCaptureContinue(b bd.Board, side bd.Side, start, current int, captured uint32, sink *[]bd.Move) bool {
	found := false
	occupied := b.Occupied() &^ (uint32(1) << uint(start))
	opp := b.Colour(side.Opponent())

	for d := 0; d < numDirs; d++ {
		mid := neighborTable[d][current]
		if mid < 0 {
			continue
		}
		midBit := uint32(1) << uint(mid)
		if captured&midBit != 0 || opp&midBit == 0 {
			continue
		}
		land := neighborTable[d][mid]
		if land < 0 {
			continue
		}
		landBit := uint32(1) << uint(land)
		if (occupied|captured)&landBit != 0 {
			continue
		}

		found = true
		newCaptured := captured | midBit

		if onPromotionRank(side, landBit) {
			sub := kingCaptureContinue(b, side, start, int(land), newCaptured, true, sink)
			if !sub {
				*sink = append(*sink, bd.Move{
					From: uint32(1) << uint(start), To: landBit,
					Captured: newCaptured, BecomesKing: true,
				})
			}
		} else {
			sub := manCaptureContinue(b, side, start, int(land), newCaptured, sink)
			if !sub {
				*sink = append(*sink, bd.Move{
					From: uint32(1) << uint(start), To: landBit,
					Captured: newCaptured,
				})
			}
		}
	}
	return found
}

// kingCaptureContinue extends a flying king's capture sequence. In every
// direction the king slides over empty squares, jumps the first enemy
// found (if the squares beyond it are empty), and may land on any empty
// square past that enemy before continuing. promoted is true when this
// call chain was entered via a man's promotion mid-jump (as opposed to a
// piece that started the capture as a king); every leaf Move emitted
// anywhere in such a chain must carry BecomesKing, not just the move that
// lands on the promotion square itself.
func kingCaptureContinue(b bd.Board, side bd.Side, start, current int, captured uint32, promoted bool, sink *[]bd.Move) bool {
	found := false
	occupied := b.Occupied() &^ (uint32(1) << uint(start))
	opp := b.Colour(side.Opponent())

	for d := 0; d < numDirs; d++ {
		sq := current
		for {
			nxt := neighborTable[d][sq]
			if nxt < 0 {
				break
			}
			nxtBit := uint32(1) << uint(nxt)
			if occupied&nxtBit == 0 && captured&nxtBit == 0 {
				sq = int(nxt)
				continue
			}
			break
		}

		victim := neighborTable[d][sq]
		if victim < 0 {
			continue
		}
		victimBit := uint32(1) << uint(victim)
		if captured&victimBit != 0 || opp&victimBit == 0 {
			continue
		}

		newCaptured := captured | victimBit
		land := neighborTable[d][victim]
		for land >= 0 {
			landBit := uint32(1) << uint(land)
			if (occupied|captured)&landBit != 0 {
				break
			}
			found = true
			sub := kingCaptureContinue(b, side, start, int(land), newCaptured, promoted, sink)
			if !sub {
				*sink = append(*sink, bd.Move{
					From: uint32(1) << uint(start), To: landBit,
					Captured: newCaptured, BecomesKing: promoted,
				})
			}
			land = neighborTable[d][land]
		}
	}
	return found
}

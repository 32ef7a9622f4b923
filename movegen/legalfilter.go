package movegen

import bd "github.com/kestog/giveaway-engine/board"

// LegalMoves applies the mandatory-capture rule and the "take the most"
// maximum-capture disambiguation: if any capture exists, only captures of
// the largest size are legal; otherwise every quiet move is legal. An
// empty result means side has no legal move (a terminal position, which
// Search interprets per the giveaway win condition).
func LegalMoves(b bd.Board, side bd.Side) []bd.Move {
	captures := Captures(b, side)
	if len(captures) == 0 {
		return Quiets(b, side)
	}

	max := 0
	for _, m := range captures {
		if c := m.CaptureCount(); c > max {
			max = c
		}
	}

	best := captures[:0:0]
	for _, m := range captures {
		if m.CaptureCount() == max {
			best = append(best, m)
		}
	}
	return best
}

// LegalMovesInto is the sink-based counterpart of LegalMoves, reusing
// caller-provided scratch buffers for the two intermediate move lists.
func LegalMovesInto(b bd.Board, side bd.Side, captureBuf, quietBuf *[]bd.Move, out *[]bd.Move) {
	*captureBuf = (*captureBuf)[:0]
	CapturesInto(b, side, captureBuf)

	if len(*captureBuf) == 0 {
		*quietBuf = (*quietBuf)[:0]
		QuietsInto(b, side, quietBuf)
		*out = append((*out)[:0], *quietBuf...)
		return
	}

	max := 0
	for _, m := range *captureBuf {
		if c := m.CaptureCount(); c > max {
			max = c
		}
	}
	*out = (*out)[:0]
	for _, m := range *captureBuf {
		if m.CaptureCount() == max {
			*out = append(*out, m)
		}
	}
}

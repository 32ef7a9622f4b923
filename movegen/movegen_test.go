package movegen_test

import (
	"testing"

	bd "github.com/kestog/giveaway-engine/board"
	"github.com/kestog/giveaway-engine/movegen"
)

func TestOpeningPositionHasSevenQuietMoves(t *testing.T) {
	b := bd.Initial()
	moves := movegen.LegalMoves(b, bd.White)
	if len(moves) != 7 {
		t.Fatalf("opening position: got %d legal moves, want 7", len(moves))
	}
	for _, m := range moves {
		if m.IsCapture() {
			t.Errorf("opening position has no captures available, got one: %+v", m)
		}
	}
}

func TestForcedSingleCapture(t *testing.T) {
	b, err := bd.FromBitboards(1<<8, 1<<13, 0, bd.White)
	if err != nil {
		t.Fatalf("FromBitboards: %v", err)
	}
	moves := movegen.LegalMoves(b, bd.White)
	if len(moves) != 1 {
		t.Fatalf("got %d legal moves, want exactly 1", len(moves))
	}
	m := moves[0]
	if m.From != 1<<8 || m.To != 1<<17 || m.Captured != 1<<13 {
		t.Errorf("move = %+v, want From=1<<8 To=1<<17 Captured=1<<13", m)
	}
}

// A position where a white man can capture one piece on one diagonal or
// two pieces on another; only the two-capture option is legal.
func TestMaximumCaptureRule(t *testing.T) {
	// White man on 9 (row2 col3). One black man on 13 (row3 col2, UL of 9)
	// with empty square beyond at 16 (row4 col1), and a second black man
	// reachable via a two-jump chain on the UR side.
	//
	// UL chain from 9: mid=13 (row3,col2), land=16 (row4,col1) -> single
	// capture ending at 16.
	// UR chain from 9: mid=14 (row3,col4), land=18 (row4,col5); from 18 a
	// further capture takes a second black man at 22 (row5,col4), landing
	// on 25 (row6,col3).
	white := uint32(1 << 9)
	black := uint32(1<<13 | 1<<14 | 1<<22)
	b, err := bd.FromBitboards(white, black, 0, bd.White)
	if err != nil {
		t.Fatalf("FromBitboards: %v", err)
	}
	moves := movegen.LegalMoves(b, bd.White)
	for _, m := range moves {
		if m.CaptureCount() != 2 {
			t.Errorf("expected only the 2-capture move to be legal, got %+v", m)
		}
	}
	if len(moves) == 0 {
		t.Fatal("expected at least one legal (double-capture) move")
	}
}

// A white man one jump short of promotion, with a second jump available
// from the promotion square, must promote mid-sequence and continue
// capturing as a flying king. The man jumps 25 to land on 30, then as a
// king jumps 26 and may stop on either empty square beyond it (23 or 19),
// so there are exactly two legal moves.
func TestPromotionMidJumpContinuesAsKing(t *testing.T) {
	white := uint32(1 << 21)
	black := uint32(1<<25 | 1<<26)
	b, err := bd.FromBitboards(white, black, 0, bd.White)
	if err != nil {
		t.Fatalf("FromBitboards: %v", err)
	}
	moves := movegen.LegalMoves(b, bd.White)
	if len(moves) != 2 {
		t.Fatalf("got %d legal moves, want exactly 2", len(moves))
	}
	for _, m := range moves {
		if !m.BecomesKing {
			t.Errorf("expected BecomesKing = true (%+v)", m)
		}
		if m.CaptureCount() != 2 {
			t.Errorf("expected 2 captures, got %d (%+v)", m.CaptureCount(), m)
		}
		if m.Captured != 1<<25|1<<26 {
			t.Errorf("captured = %#x, want both black men", m.Captured)
		}
		if m.To != 1<<23 && m.To != 1<<19 {
			t.Errorf("to = %#x, want a landing square beyond 26 (23 or 19)", m.To)
		}
	}
}

func TestQuiescentPositionHasNoCaptures(t *testing.T) {
	b, err := bd.FromBitboards(1<<0, 1<<31, 0, bd.White)
	if err != nil {
		t.Fatalf("FromBitboards: %v", err)
	}
	moves := movegen.Captures(b, bd.White)
	if len(moves) != 0 {
		t.Errorf("expected no captures for two far-apart men, got %d", len(moves))
	}
}

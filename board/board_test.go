package board_test

import (
	"testing"

	bd "github.com/kestog/giveaway-engine/board"
)

func TestInitialPosition(t *testing.T) {
	b := bd.Initial()
	if b.White != 0x00000FFF {
		t.Errorf("white = %#x, want 0x00000FFF", b.White)
	}
	if b.Black != 0xFFF00000 {
		t.Errorf("black = %#x, want 0xFFF00000", b.Black)
	}
	if b.Kings != 0 {
		t.Errorf("kings = %#x, want 0", b.Kings)
	}
	if b.Side != bd.White {
		t.Errorf("side = %v, want White", b.Side)
	}
	if err := b.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestFromBitboardsRejectsOverlap(t *testing.T) {
	if _, err := bd.FromBitboards(1, 1, 0, bd.White); err == nil {
		t.Error("expected error for overlapping white/black sets")
	}
}

func TestFromBitboardsRejectsKingsOutsideOccupied(t *testing.T) {
	if _, err := bd.FromBitboards(1, 0, 2, bd.White); err == nil {
		t.Error("expected error for kings not subset of occupied squares")
	}
}

func TestFromBitboardsRejectsBadSide(t *testing.T) {
	if _, err := bd.FromBitboards(1, 0, 0, bd.Side(0)); err == nil {
		t.Error("expected error for invalid side")
	}
}

// Invariant: hash recomputed from scratch after ApplyMove matches the
// incrementally updated hash carried on the returned board.
func TestApplyMoveHashMatchesRecompute(t *testing.T) {
	b, err := bd.FromBitboards(1<<8, 1<<13, 0, bd.White)
	if err != nil {
		t.Fatalf("FromBitboards: %v", err)
	}
	m := bd.Move{From: 1 << 8, To: 1 << 17, Captured: 1 << 13}
	next := bd.ApplyMove(b, m, bd.White)

	want := bd.ComputeZobrist(next)
	if next.Hash != want {
		t.Errorf("incremental hash = %#x, want %#x (scratch recompute)", next.Hash, want)
	}
}

// Invariant: ApplyMove preserves white/black disjointness and kings subset.
func TestApplyMovePreservesInvariants(t *testing.T) {
	b, err := bd.FromBitboards(1<<8, 1<<13, 0, bd.White)
	if err != nil {
		t.Fatalf("FromBitboards: %v", err)
	}
	m := bd.Move{From: 1 << 8, To: 1 << 17, Captured: 1 << 13}
	next := bd.ApplyMove(b, m, bd.White)
	if err := next.Validate(); err != nil {
		t.Errorf("Validate after ApplyMove: %v", err)
	}
	if next.White&next.Black != 0 {
		t.Errorf("white/black overlap after capture")
	}
}

func TestApplyMovePromotion(t *testing.T) {
	// White man on square 27 jumps to square 31 (promotion rank), capturing
	// a black man on square 29 along the way (illustrative squares only;
	// movegen, not this test, is responsible for legality).
	b, err := bd.FromBitboards(1<<27, 1<<29, 0, bd.White)
	if err != nil {
		t.Fatalf("FromBitboards: %v", err)
	}
	m := bd.Move{From: 1 << 27, To: 1 << 31, Captured: 1 << 29, BecomesKing: true}
	next := bd.ApplyMove(b, m, bd.White)
	if next.Kings&(1<<31) == 0 {
		t.Error("expected promoted man to be a king on the landing square")
	}
	if next.Black != 0 {
		t.Error("expected captured black man to be removed")
	}
}

func TestMirrorFlipsColoursAndSquares(t *testing.T) {
	b := bd.Initial()
	m := b.Mirror()
	// Swapping colours and reflecting i <-> 31-i maps the opening setup
	// onto itself: Black's men on 20..31 reflect onto White's 0..11.
	if m.White != 0x00000FFF || m.Black != 0xFFF00000 {
		t.Errorf("mirror piece sets = white %#x black %#x, want swapped+reflected initial position", m.White, m.Black)
	}
	if m.Side != bd.Black {
		t.Errorf("mirror side = %v, want Black", m.Side)
	}
}

package engine_test

import (
	"testing"

	bd "github.com/kestog/giveaway-engine/board"
	"github.com/kestog/giveaway-engine/engine"
)

// Invariant 5: eval(B) = -eval(mirror(B)).
func TestEvaluateAntisymmetric(t *testing.T) {
	b := bd.Initial()
	if got, want := engine.Evaluate(b), -engine.Evaluate(b.Mirror()); got != want {
		t.Errorf("Evaluate(initial) = %d, -Evaluate(mirror) = %d, want equal", got, want)
	}

	white := uint32(1<<0 | 1<<5 | 1<<20)
	black := uint32(1<<31 | 1<<26)
	kings := uint32(1 << 20)
	b2, err := bd.FromBitboards(white, black, kings, bd.White)
	if err != nil {
		t.Fatalf("FromBitboards: %v", err)
	}
	if got, want := engine.Evaluate(b2), -engine.Evaluate(b2.Mirror()); got != want {
		t.Errorf("Evaluate(b2) = %d, -Evaluate(mirror(b2)) = %d, want equal", got, want)
	}
}

func TestEvaluateMaterialDominates(t *testing.T) {
	white := uint32(1<<0 | 1<<1 | 1<<2)
	black := uint32(1 << 31)
	b, err := bd.FromBitboards(white, black, 0, bd.White)
	if err != nil {
		t.Fatalf("FromBitboards: %v", err)
	}
	if engine.Evaluate(b) <= 0 {
		t.Errorf("expected White with material advantage to score positive, got %d", engine.Evaluate(b))
	}
}

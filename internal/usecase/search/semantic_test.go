package search

import "testing"

func TestSemanticScore_WordPresence(t *testing.T) {
	s := NewSemanticScorer(ZeroNoise{})
	d := doc(t, "1", "Diamond Solitaire Ring", nil)

	// Both words present: 2 * 0.3.
	if got := s.Score("diamond ring", d); got != 0.6 {
		t.Errorf("Score(diamond ring) = %v, want 0.6", got)
	}
}

func TestSemanticScore_ConceptAssociations(t *testing.T) {
	s := NewSemanticScorer(ZeroNoise{})
	d := doc(t, "1", "Diamond Solitaire Ring", nil)

	// "engagement" triggers ring, diamond, solitaire: 3 * 0.15.
	if got := s.Score("engagement", d); got != 0.45 {
		t.Errorf("Score(engagement) = %v, want 0.45", got)
	}
}

func TestSemanticScore_WordPlusConcept(t *testing.T) {
	s := NewSemanticScorer(ZeroNoise{})
	d := doc(t, "1", "Classic gold signet ring", nil)

	// "wedding ring": word "ring" (+0.3); concept "wedding" → ring, gold
	// found (+0.3). "band" absent.
	if got := s.Score("wedding ring", d); got != 0.6 {
		t.Errorf("Score(wedding ring) = %v, want 0.6", got)
	}
}

func TestSemanticScore_ZeroBaseExcluded(t *testing.T) {
	s := NewSemanticScorer(ZeroNoise{})
	d := doc(t, "1", "Pearl Drop Earrings", nil)

	// No word and no concept match: stays 0, never floored to 0.1.
	if got := s.Score("sapphire", d); got != 0 {
		t.Errorf("Score(sapphire) = %v, want 0", got)
	}
}

func TestSemanticScore_FloorAfterNegativeJitter(t *testing.T) {
	s := NewSemanticScorer(fixedNoise(-0.1))
	d := doc(t, "1", "Freshwater pearls with silver hooks", nil)

	// Base 0.3 - 0.1 = 0.2, above the floor.
	if got := s.Score("pearls", d); got != 0.2 {
		t.Errorf("Score(pearls) = %v, want 0.2", got)
	}
}

func TestSemanticScore_ClampedToOne(t *testing.T) {
	s := NewSemanticScorer(fixedNoise(0.1))
	d := doc(t, "1", "Classic diamond gold ring with platinum band", nil)

	// luxury → diamond, gold, platinum (+0.45), plus words diamond gold ring
	// (+0.9), plus jitter: clamps to 1.0.
	if got := s.Score("luxury diamond gold ring", d); got != 1.0 {
		t.Errorf("Score() = %v, want clamp to 1.0", got)
	}
}

func TestSemanticScore_JitterWithinBounds(t *testing.T) {
	s := NewSemanticScorer(NewSeededNoise(42))
	d := doc(t, "1", "Diamond Solitaire Ring", nil)

	// Base 0.6; jitter keeps the result within ±0.1 of it.
	for i := 0; i < 50; i++ {
		got := s.Score("diamond ring", d)
		if got < 0.5 || got > 0.7 {
			t.Fatalf("Score() = %v, want within [0.5, 0.7]", got)
		}
	}
}

func TestRandomNoise_Range(t *testing.T) {
	n := NewSeededNoise(1)
	for i := 0; i < 1000; i++ {
		j := n.Jitter()
		if j < -jitterAmplitude || j >= jitterAmplitude {
			t.Fatalf("Jitter() = %v, want within [-0.1, 0.1)", j)
		}
	}
}

// fixedNoise returns the same jitter on every call.
type fixedNoise float64

func (n fixedNoise) Jitter() float64 { return float64(n) }

package search

import "testing"

func TestFuzzyScore_TrigramsAndWord(t *testing.T) {
	s := NewFuzzyScorer()
	d := doc(t, "1", "Diamond Solitaire Ring", nil)

	// "ring" slices: "rin", "ing" both present (+0.4); word "ring" (+0.3).
	if got := s.Score("ring", d); got != 0.7 {
		t.Errorf("Score(ring) = %v, want 0.7", got)
	}
}

func TestFuzzyScore_ClampedToOne(t *testing.T) {
	s := NewFuzzyScorer()
	d := doc(t, "1", "Diamond Solitaire Ring", nil)

	// Many matching trigrams plus both words push the raw sum past 1.
	if got := s.Score("diamond ring", d); got != 1.0 {
		t.Errorf("Score(diamond ring) = %v, want clamp to 1.0", got)
	}
}

func TestFuzzyScore_TypoTolerance(t *testing.T) {
	s := NewFuzzyScorer()
	d := doc(t, "1", "Diamond Solitaire Ring", nil)

	// "diamondz" matches no whole word but shares trigrams with "diamond".
	if got := s.Score("diamondz", d); got <= 0 {
		t.Errorf("Score(diamondz) = %v, want > 0", got)
	}
}

func TestFuzzyScore_NoOverlap(t *testing.T) {
	s := NewFuzzyScorer()
	d := doc(t, "1", "Diamond Solitaire Ring", nil)

	if got := s.Score("xyzw", d); got != 0 {
		t.Errorf("Score(xyzw) = %v, want 0", got)
	}
}

func TestFuzzyScore_ShortQuery(t *testing.T) {
	s := NewFuzzyScorer()
	d := doc(t, "1", "Diamond Solitaire Ring", nil)

	// Two chars: no trigrams, but substring word match still scores.
	if got := s.Score("ri", d); got != 0.3 {
		t.Errorf("Score(ri) = %v, want 0.3", got)
	}
}

func TestFuzzyScore_ExactContentQuery(t *testing.T) {
	s := NewFuzzyScorer()
	d := doc(t, "1", "Pearl Drop Earrings", nil)

	if got := s.Score("Pearl Drop Earrings", d); got <= 0 {
		t.Errorf("Score(exact content) = %v, want > 0", got)
	}
}

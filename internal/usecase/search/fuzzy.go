package search

import (
	"strings"

	domdoc "github.com/curio-labs/searchlab/internal/domain/document"
)

// Trigram and word-match weights for fuzzy scoring.
const (
	fuzzyTrigramWeight = 0.2
	fuzzyWordWeight    = 0.3
)

// FuzzyScorer rewards partial and typo-tolerant overlap: every contiguous
// 3-character slice of the query found in the document adds a small bonus,
// and whole query words add a larger one.
type FuzzyScorer struct{}

// NewFuzzyScorer creates a fuzzy scorer.
func NewFuzzyScorer() *FuzzyScorer {
	return &FuzzyScorer{}
}

// Score clamps the accumulated trigram and word bonuses to [0, 1],
// rounded to 3 decimals.
func (s *FuzzyScorer) Score(query string, doc domdoc.Document) float64 {
	q := strings.ToLower(query)
	text := searchableText(doc)

	score := 0.0
	for i := 0; i+3 <= len(q); i++ {
		if strings.Contains(text, q[i:i+3]) {
			score += fuzzyTrigramWeight
		}
	}
	for _, w := range tokens(q) {
		if strings.Contains(text, w) {
			score += fuzzyWordWeight
		}
	}

	if score <= 0 {
		return 0
	}
	if score > 1 {
		score = 1
	}
	return round3(score)
}

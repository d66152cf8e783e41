package search

import (
	"strings"

	domdoc "github.com/curio-labs/searchlab/internal/domain/document"
)

// Semantic scoring weights and bounds.
const (
	semanticWordWeight    = 0.3
	semanticConceptWeight = 0.15
	semanticFloor         = 0.1
)

// associations maps broad concepts to related terms. Distinct from the
// rewrite table: it boosts scoring, while the rewrite table only annotates
// the query surfaced to callers.
var associations = map[string][]string{
	"engagement": {"ring", "diamond", "solitaire"},
	"wedding":    {"ring", "gold", "band"},
	"gift":       {"pendant", "earrings", "bracelet"},
	"luxury":     {"diamond", "gold", "platinum", "emerald", "sapphire"},
	"everyday":   {"chain", "stud", "simple"},
	"vintage":    {"art deco", "antique", "classic"},
	"romantic":   {"heart", "rose", "pendant"},
}

// SemanticScorer simulates embedding similarity: keyword presence plus
// concept-association bonuses, perturbed by a symmetric noise source.
// With a live noise source repeated calls on identical inputs differ;
// inject a zero source for reproducibility.
type SemanticScorer struct {
	noise Noise
}

// NewSemanticScorer creates a semantic scorer with the given noise source.
func NewSemanticScorer(noise Noise) *SemanticScorer {
	return &SemanticScorer{noise: noise}
}

// Score sums word and concept bonuses, applies jitter, then clamps to
// [0.1, 1.0] for any document with a nonzero pre-jitter score.
func (s *SemanticScorer) Score(query string, doc domdoc.Document) float64 {
	q := strings.ToLower(query)
	text := searchableText(doc)

	score := 0.0
	for _, w := range tokens(q) {
		if strings.Contains(text, w) {
			score += semanticWordWeight
		}
	}

	for concept, related := range associations {
		if !strings.Contains(q, concept) {
			continue
		}
		for _, term := range related {
			if strings.Contains(text, term) {
				score += semanticConceptWeight
			}
		}
	}

	if score <= 0 {
		return 0
	}

	score += s.noise.Jitter()
	if score < semanticFloor {
		score = semanticFloor
	}
	if score > 1 {
		score = 1
	}
	return round3(score)
}

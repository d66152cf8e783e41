package search

import (
	"strings"

	domdoc "github.com/curio-labs/searchlab/internal/domain/document"
)

// KeywordScorer scores by the fraction of query tokens contained in the
// document's searchable text.
type KeywordScorer struct{}

// NewKeywordScorer creates a keyword scorer.
func NewKeywordScorer() *KeywordScorer {
	return &KeywordScorer{}
}

// Score returns matched/total query tokens, rounded to 3 decimals.
// Zero when no token matches or the query is empty.
func (s *KeywordScorer) Score(query string, doc domdoc.Document) float64 {
	words := tokens(query)
	if len(words) == 0 {
		return 0
	}

	text := searchableText(doc)
	matches := 0
	for _, w := range words {
		if strings.Contains(text, w) {
			matches++
		}
	}
	if matches == 0 {
		return 0
	}
	return round3(float64(matches) / float64(len(words)))
}

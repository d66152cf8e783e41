package search

import (
	"context"

	domdoc "github.com/curio-labs/searchlab/internal/domain/document"
)

// Store defines the document storage contract for the search service.
type Store interface {
	Index(ctx context.Context, docs []domdoc.Document) error
	All(ctx context.Context) []domdoc.Document
	Delete(ctx context.Context, ids []string) (int, error)
	Clear(ctx context.Context) error
	Count(ctx context.Context) int
}

// Scorer maps a (query, document) pair to a relevance score in [0, 1].
// Scoring is total: any input pair yields a score, never an error.
// Documents scoring zero are excluded from results.
type Scorer interface {
	Score(query string, doc domdoc.Document) float64
}

// Noise perturbs semantic scores to emulate embedding-similarity variance.
// Implementations return a value in [-amplitude, +amplitude].
type Noise interface {
	Jitter() float64
}

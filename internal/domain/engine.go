package domain

import (
	"context"

	"github.com/curio-labs/searchlab/internal/domain/document"
	"github.com/curio-labs/searchlab/internal/domain/search/result"
)

// Engine is the search capability contract. Implement it to plug in a new
// search strategy behind the same index/search/delete/clear surface.
type Engine interface {
	// Index inserts documents, overwriting silently on duplicate IDs.
	Index(ctx context.Context, docs []document.Document) error

	// Search returns up to topK results ranked by descending score.
	// TotalHits on the response reflects the match count before truncation.
	Search(ctx context.Context, query string, topK int) (result.Response, error)

	// Delete removes documents by ID and returns the count actually removed.
	// Unknown IDs are ignored, not errors.
	Delete(ctx context.Context, docIDs []string) (int, error)

	// Clear removes every document. Idempotent.
	Clear(ctx context.Context) error
}

// VectorEngine extends Engine for backends with true vector embeddings.
// No implementation ships here; the mock strategies simulate similarity
// without computing vectors. The contract is frozen for future backends.
type VectorEngine interface {
	Engine

	// Embed generates the embedding vector for text. Must be deterministic
	// for a given model version.
	Embed(ctx context.Context, text string) ([]float32, error)

	// SearchByVector ranks stored documents by similarity to the supplied
	// vector without re-embedding the query.
	SearchByVector(ctx context.Context, vector []float32, topK int) (result.Response, error)
}

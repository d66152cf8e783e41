package searchlab

import "context"

// SearchEngine is the contract every search backend satisfies. Client is the
// in-memory implementation; the shape is shared so callers can swap in a real
// engine without touching call sites.
type SearchEngine interface {
	Index(ctx context.Context, docs []Document) error
	Search(ctx context.Context, query string, opts *SearchOptions) (Response, error)
	Delete(ctx context.Context, ids []string) (int, error)
	Clear(ctx context.Context) error
}

// VectorSearchEngine extends SearchEngine with embedding-based retrieval.
// No implementation ships yet; backends that cannot embed must return
// an error from both methods rather than approximating.
type VectorSearchEngine interface {
	SearchEngine
	Embed(ctx context.Context, text string) ([]float32, error)
	SearchByVector(ctx context.Context, vector []float32, topK int) (Response, error)
}

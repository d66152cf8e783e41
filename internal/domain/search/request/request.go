package request

import (
	"fmt"

	"github.com/curio-labs/searchlab/internal/domain"
	"github.com/curio-labs/searchlab/internal/domain/search/method"
)

// Search parameter limits.
const (
	// MaxQueryLength is the maximum allowed search query length.
	MaxQueryLength = 4096
	DefaultTopK    = 10
	MaxTopK        = 500
)

// Request is a validated search query.
type Request struct {
	query        string
	searchMethod method.Method
	topK         int
}

// New validates and normalizes search parameters.
// An empty query is allowed and yields an empty result set downstream.
// A non-positive topK is rejected; callers substitute DefaultTopK when the
// parameter was omitted entirely.
func New(query string, m method.Method, topK int) (Request, error) {
	if len(query) > MaxQueryLength {
		return Request{}, fmt.Errorf("query too long (max %d chars): %w", MaxQueryLength, domain.ErrInvalidArgument)
	}
	if m == "" {
		m = method.Keyword
	}
	if !m.IsValid() {
		return Request{}, fmt.Errorf("%w: %q", domain.ErrUnknownMethod, m)
	}
	if topK <= 0 {
		return Request{}, fmt.Errorf("top_k must be at least 1: %w", domain.ErrInvalidArgument)
	}
	if topK > MaxTopK {
		topK = MaxTopK
	}

	return Request{query: query, searchMethod: m, topK: topK}, nil
}

// Query returns the search query text.
func (r *Request) Query() string { return r.query }

// Method returns the search strategy.
func (r *Request) Method() method.Method { return r.searchMethod }

// TopK returns the maximum number of ranked results to return.
func (r *Request) TopK() int { return r.topK }

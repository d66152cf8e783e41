package result

// Response is a complete answer to a search query: ranked results in strict
// descending score order plus query-level annotations.
type Response struct {
	results   []Result
	query     string
	totalHits int
	metadata  map[string]any
}

// NewResponse creates a search response. totalHits is the match count before
// top-k truncation.
func NewResponse(results []Result, query string, totalHits int, metadata map[string]any) Response {
	return Response{results: results, query: query, totalHits: totalHits, metadata: metadata}
}

// Results returns the ranked results (descending score).
func (r *Response) Results() []Result { return r.results }

// Query returns the original query text.
func (r *Response) Query() string { return r.query }

// TotalHits returns the match count before truncation.
func (r *Response) TotalHits() int { return r.totalHits }

// Metadata returns query-level annotations (method, rewritten query, ...).
func (r *Response) Metadata() map[string]any { return r.metadata }

package result

// Result is a single search hit. Results are ephemeral: constructed per
// query, never persisted.
type Result struct {
	docID    string
	score    float64
	content  string
	metadata map[string]any
}

// New creates a search result.
func New(docID string, score float64, content string, metadata map[string]any) Result {
	return Result{docID: docID, score: score, content: content, metadata: metadata}
}

// DocID returns the matched document identifier.
func (r *Result) DocID() string { return r.docID }

// Score returns the relevance score in [0, 1].
func (r *Result) Score() float64 { return r.score }

// Content returns the document content.
func (r *Result) Content() string { return r.content }

// Metadata returns the document metadata.
func (r *Result) Metadata() map[string]any { return r.metadata }

package searchlab

// Method selects a scoring strategy.
type Method string

// Supported search methods.
const (
	Keyword  Method = "keyword"
	Fuzzy    Method = "fuzzy"
	Semantic Method = "semantic"
)

// Document is an indexable unit of content. Metadata fields name,
// description, and category participate in matching alongside Content.
type Document struct {
	ID       string
	Content  string
	Metadata map[string]any
}

// Result is a single ranked hit.
type Result struct {
	ID       string
	Score    float64
	Content  string
	Metadata map[string]any
}

// Response is a ranked result set.
type Response struct {
	Results []Result
	Query   string
	// TotalHits counts every matching document, including those cut by TopK.
	TotalHits int
	// RewrittenQuery is set for semantic searches whose query the expansion
	// table changed.
	RewrittenQuery string
}

// SearchOptions tunes a query.
type SearchOptions struct {
	Method Method // default Keyword
	TopK   int    // default 10
}

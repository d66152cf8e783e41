package searchlab

import (
	"context"
	"fmt"

	"github.com/curio-labs/searchlab/internal/domain/search/method"
	"github.com/curio-labs/searchlab/internal/domain/search/request"
	"github.com/curio-labs/searchlab/internal/domain/search/result"
)

// Search ranks stored documents against the query. A nil opts runs a keyword
// search with the default result cap.
func (c *Client) Search(ctx context.Context, query string, opts *SearchOptions) (Response, error) {
	if opts == nil {
		opts = &SearchOptions{}
	}

	topK := opts.TopK
	if topK == 0 {
		topK = request.DefaultTopK
	}

	req, err := request.New(query, method.Method(opts.Method), topK)
	if err != nil {
		return Response{}, fmt.Errorf("search: %w", err)
	}

	resp, err := c.svc.Search(ctx, req)
	if err != nil {
		return Response{}, fmt.Errorf("search: %w", err)
	}
	return fromResponse(resp), nil
}

// SearchAll runs every strategy over the same query.
func (c *Client) SearchAll(ctx context.Context, query string, topK int) (map[Method]Response, error) {
	if topK == 0 {
		topK = request.DefaultTopK
	}

	responses, err := c.svc.SearchAll(ctx, query, topK)
	if err != nil {
		return nil, fmt.Errorf("search all: %w", err)
	}

	out := make(map[Method]Response, len(responses))
	for m, resp := range responses {
		out[Method(m)] = fromResponse(resp)
	}
	return out, nil
}

// Rewrite returns the expanded form of a query as used by semantic search.
func (c *Client) Rewrite(query string) string {
	return c.svc.Rewrite(query)
}

func fromResponse(resp result.Response) Response {
	results := resp.Results()
	out := Response{
		Results:   make([]Result, len(results)),
		Query:     resp.Query(),
		TotalHits: resp.TotalHits(),
	}
	for i := range results {
		out.Results[i] = Result{
			ID:       results[i].DocID(),
			Score:    results[i].Score(),
			Content:  results[i].Content(),
			Metadata: results[i].Metadata(),
		}
	}
	if rewritten, ok := resp.Metadata()["rewritten_query"].(string); ok {
		out.RewrittenQuery = rewritten
	}
	return out
}

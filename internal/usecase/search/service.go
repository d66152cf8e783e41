package search

import (
	"context"
	"fmt"
	"sort"
	"strings"

	domdoc "github.com/curio-labs/searchlab/internal/domain/document"
	"github.com/curio-labs/searchlab/internal/domain/search/method"
	"github.com/curio-labs/searchlab/internal/domain/search/request"
	"github.com/curio-labs/searchlab/internal/domain/search/result"
)

// Service ranks stored documents under the keyword, fuzzy, and semantic
// strategies and owns the document store lifecycle.
type Service struct {
	store    Store
	scorers  map[method.Method]Scorer
	rewriter *Rewriter
}

// New creates a search service. A nil noise source defaults to live random
// jitter for semantic scoring.
func New(store Store, noise Noise) *Service {
	if noise == nil {
		noise = NewRandomNoise()
	}
	return &Service{
		store: store,
		scorers: map[method.Method]Scorer{
			method.Keyword:  NewKeywordScorer(),
			method.Fuzzy:    NewFuzzyScorer(),
			method.Semantic: NewSemanticScorer(noise),
		},
		rewriter: NewRewriter(),
	}
}

// Index inserts or overwrites documents by ID.
func (s *Service) Index(ctx context.Context, docs []domdoc.Document) error {
	if err := s.store.Index(ctx, docs); err != nil {
		return fmt.Errorf("index documents: %w", err)
	}
	return nil
}

// Search scores every stored document under the requested strategy, drops
// non-matches, and returns the ranked head of the list. Ties keep the
// store's insertion order.
func (s *Service) Search(ctx context.Context, req request.Request) (result.Response, error) {
	scorer, ok := s.scorers[req.Method()]
	if !ok {
		return result.Response{}, fmt.Errorf("no scorer for method %q", req.Method())
	}

	hits := make([]result.Result, 0)
	for _, doc := range s.store.All(ctx) {
		score := scorer.Score(req.Query(), doc)
		if score <= 0 {
			continue
		}
		hits = append(hits, result.New(doc.ID(), score, doc.Content(), doc.Metadata()))
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Score() > hits[j].Score()
	})

	totalHits := len(hits)
	if len(hits) > req.TopK() {
		hits = hits[:req.TopK()]
	}

	meta := map[string]any{"method": string(req.Method())}
	if req.Method() == method.Semantic {
		if rewritten := s.rewriter.Rewrite(req.Query()); rewritten != strings.ToLower(req.Query()) {
			meta["rewritten_query"] = rewritten
		}
	}

	return result.NewResponse(hits, req.Query(), totalHits, meta), nil
}

// SearchAll runs every strategy over the same query and returns the
// responses keyed by method.
func (s *Service) SearchAll(
	ctx context.Context, query string, topK int,
) (map[method.Method]result.Response, error) {
	out := make(map[method.Method]result.Response, len(method.All()))
	for _, m := range method.All() {
		req, err := request.New(query, m, topK)
		if err != nil {
			return nil, fmt.Errorf("build %s request: %w", m, err)
		}
		resp, err := s.Search(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("%s search: %w", m, err)
		}
		out[m] = resp
	}
	return out, nil
}

// Delete removes documents by ID and returns the count actually removed.
func (s *Service) Delete(ctx context.Context, ids []string) (int, error) {
	n, err := s.store.Delete(ctx, ids)
	if err != nil {
		return 0, fmt.Errorf("delete documents: %w", err)
	}
	return n, nil
}

// Clear removes every document.
func (s *Service) Clear(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear store: %w", err)
	}
	return nil
}

// Count returns the number of stored documents.
func (s *Service) Count(ctx context.Context) int {
	return s.store.Count(ctx)
}

// Rewrite exposes the deterministic query expansion used to annotate
// semantic search.
func (s *Service) Rewrite(query string) string {
	return s.rewriter.Rewrite(query)
}

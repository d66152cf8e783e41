package search

import (
	"sort"
	"strings"
)

// expansions maps a trigger word to space-separated related terms. In a
// production system this step would call an LLM; here the table is fixed.
var expansions = map[string]string{
	"ring":     "ring jewelry band",
	"necklace": "necklace chain pendant jewelry",
	"earring":  "earrings studs jewelry",
	"bracelet": "bracelet bangle jewelry",
	"gold":     "gold yellow metal luxury",
	"silver":   "silver sterling white metal",
	"diamond":  "diamond brilliant sparkle luxury engagement",
	"gift":     "gift present elegant romantic luxury",
	"wedding":  "wedding engagement matrimony bridal",
	"vintage":  "vintage antique classic retro art deco",
}

// Rewriter deterministically expands a query's terms via a fixed synonym
// table. The rewritten query annotates semantic search; base scoring always
// uses the original query tokens.
type Rewriter struct{}

// NewRewriter creates a query rewriter.
func NewRewriter() *Rewriter {
	return &Rewriter{}
}

// Rewrite returns the sorted, deduplicated union of the query's words and
// every triggered expansion. Deterministic for a given input.
func (rw *Rewriter) Rewrite(query string) string {
	words := tokens(query)

	expanded := make(map[string]struct{}, len(words))
	for _, w := range words {
		expanded[w] = struct{}{}
	}
	for _, w := range words {
		if exp, ok := expansions[w]; ok {
			for _, e := range strings.Fields(exp) {
				expanded[e] = struct{}{}
			}
		}
	}

	terms := make([]string, 0, len(expanded))
	for w := range expanded {
		terms = append(terms, w)
	}
	sort.Strings(terms)
	return strings.Join(terms, " ")
}

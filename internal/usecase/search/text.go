package search

import (
	"math"
	"strings"

	domdoc "github.com/curio-labs/searchlab/internal/domain/document"
)

// searchableText folds a document's content and its designated metadata
// fields into one lowercase haystack.
func searchableText(doc domdoc.Document) string {
	var b strings.Builder
	for _, key := range domdoc.SearchableFields {
		if v := doc.MetadataString(key); v != "" {
			b.WriteString(v)
			b.WriteByte(' ')
		}
	}
	b.WriteString(doc.Content())
	return strings.ToLower(b.String())
}

// tokens splits a query into lowercase whitespace-separated words.
func tokens(query string) []string {
	return strings.Fields(strings.ToLower(query))
}

// round3 rounds a score to 3 decimals, the precision surfaced to callers.
func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

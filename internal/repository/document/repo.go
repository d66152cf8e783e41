// Package document provides the in-memory document store. The process owns
// the full corpus; there is no persistence layer behind it.
package document

import (
	"context"
	"fmt"
	"sync"

	domdoc "github.com/curio-labs/searchlab/internal/domain/document"
)

// Repo holds indexed documents. Mutations serialize behind the write lock;
// searches take the read lock and may run concurrently with each other.
//
// Iteration order is insertion order, and an overwrite keeps the original
// position. Rankers rely on this for stable tie-breaking.
type Repo struct {
	mu    sync.RWMutex
	docs  map[string]domdoc.Document
	order []string
}

// New creates an empty document store.
func New() *Repo {
	return &Repo{docs: make(map[string]domdoc.Document)}
}

// Index inserts or overwrites documents by ID.
func (r *Repo) Index(_ context.Context, docs []domdoc.Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, doc := range docs {
		if _, exists := r.docs[doc.ID()]; !exists {
			r.order = append(r.order, doc.ID())
		}
		r.docs[doc.ID()] = doc
	}
	return nil
}

// Get returns the document with the given ID.
func (r *Repo) Get(_ context.Context, id string) (domdoc.Document, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	doc, ok := r.docs[id]
	return doc, ok
}

// All returns a snapshot of every document in insertion order.
func (r *Repo) All(_ context.Context) []domdoc.Document {
	r.mu.RLock()
	defer r.mu.RUnlock()

	docs := make([]domdoc.Document, 0, len(r.order))
	for _, id := range r.order {
		docs = append(docs, r.docs[id])
	}
	return docs
}

// Delete removes each present ID and returns the count actually removed.
// Missing IDs are skipped silently.
func (r *Repo) Delete(_ context.Context, ids []string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	deleted := 0
	for _, id := range ids {
		if _, ok := r.docs[id]; !ok {
			continue
		}
		delete(r.docs, id)
		deleted++
	}
	if deleted > 0 {
		r.compactOrder()
	}
	return deleted, nil
}

// Clear removes all documents. Idempotent.
func (r *Repo) Clear(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.docs = make(map[string]domdoc.Document)
	r.order = nil
	return nil
}

// Count returns the number of stored documents.
func (r *Repo) Count(_ context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.docs)
}

// HealthCheck reports whether the store is usable.
func (r *Repo) HealthCheck(_ context.Context) error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.docs == nil {
		return fmt.Errorf("document store not initialized")
	}
	return nil
}

// compactOrder drops order entries whose documents are gone. Caller holds
// the write lock.
func (r *Repo) compactOrder() {
	kept := r.order[:0]
	for _, id := range r.order {
		if _, ok := r.docs[id]; ok {
			kept = append(kept, id)
		}
	}
	r.order = kept
}

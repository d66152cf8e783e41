package searchlab

import (
	"context"
	"fmt"

	domdoc "github.com/curio-labs/searchlab/internal/domain/document"
)

// Index inserts or overwrites documents by ID.
func (c *Client) Index(ctx context.Context, docs []Document) error {
	internal := make([]domdoc.Document, 0, len(docs))
	for _, d := range docs {
		doc, err := domdoc.New(d.ID, d.Content, d.Metadata)
		if err != nil {
			return fmt.Errorf("index %q: %w", d.ID, err)
		}
		internal = append(internal, doc)
	}

	if err := c.svc.Index(ctx, internal); err != nil {
		return fmt.Errorf("index: %w", err)
	}
	return nil
}

// Delete removes documents by ID, returning how many were present.
func (c *Client) Delete(ctx context.Context, ids []string) (int, error) {
	n, err := c.svc.Delete(ctx, ids)
	if err != nil {
		return 0, fmt.Errorf("delete: %w", err)
	}
	return n, nil
}

// Clear removes every document.
func (c *Client) Clear(ctx context.Context) error {
	if err := c.svc.Clear(ctx); err != nil {
		return fmt.Errorf("clear: %w", err)
	}
	return nil
}

// Count returns the number of indexed documents.
func (c *Client) Count(ctx context.Context) int {
	return c.svc.Count(ctx)
}

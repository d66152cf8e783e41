package document

import "fmt"

// MaxContentSize is the maximum document content size in bytes.
const MaxContentSize = 163840 // 160KB

// SearchableFields are the metadata keys folded into a document's
// searchable text alongside its content.
var SearchableFields = []string{"name", "description", "category"}

// Document is a unit of searchable content (immutable value object).
type Document struct {
	id       string
	content  string
	metadata map[string]any
}

// New validates and creates a Document.
// ID: non-empty, caller-assigned. Content: non-empty, max 160KB.
// Metadata is free-form and copied defensively.
func New(id, content string, metadata map[string]any) (Document, error) {
	if id == "" {
		return Document{}, fmt.Errorf("document ID is required")
	}
	if content == "" {
		return Document{}, fmt.Errorf("content is required")
	}
	if len(content) > MaxContentSize {
		return Document{}, fmt.Errorf("content too large (max %d bytes)", MaxContentSize)
	}

	return Document{id: id, content: content, metadata: cloneMetadata(metadata)}, nil
}

// Reconstruct creates a Document without validation (store hydration).
func Reconstruct(id, content string, metadata map[string]any) Document {
	return Document{id: id, content: content, metadata: metadata}
}

// ID returns the document identifier.
func (d *Document) ID() string { return d.id }

// Content returns the document text content.
func (d *Document) Content() string { return d.content }

// Metadata returns the free-form metadata fields.
func (d *Document) Metadata() map[string]any { return d.metadata }

// MetadataString returns the string value stored under key, or "" when the
// key is missing or holds a non-string value.
func (d *Document) MetadataString(key string) string {
	if s, ok := d.metadata[key].(string); ok {
		return s
	}
	return ""
}

func cloneMetadata(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	c := make(map[string]any, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}

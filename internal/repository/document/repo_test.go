package document

import (
	"context"
	"testing"

	domdoc "github.com/curio-labs/searchlab/internal/domain/document"
)

func mustDoc(t *testing.T, id, content string) domdoc.Document {
	t.Helper()
	d, err := domdoc.New(id, content, nil)
	if err != nil {
		t.Fatalf("New(%q) error = %v", id, err)
	}
	return d
}

func TestIndexAndAll_InsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := New()

	docs := []domdoc.Document{
		mustDoc(t, "b", "second"),
		mustDoc(t, "a", "first"),
		mustDoc(t, "c", "third"),
	}
	if err := repo.Index(ctx, docs); err != nil {
		t.Fatalf("Index() error = %v", err)
	}

	all := repo.All(ctx)
	if len(all) != 3 {
		t.Fatalf("All() len = %d", len(all))
	}
	for i, want := range []string{"b", "a", "c"} {
		if all[i].ID() != want {
			t.Errorf("All()[%d].ID() = %q, want %q", i, all[i].ID(), want)
		}
	}
}

func TestIndex_OverwriteKeepsPosition(t *testing.T) {
	ctx := context.Background()
	repo := New()

	_ = repo.Index(ctx, []domdoc.Document{
		mustDoc(t, "a", "one"),
		mustDoc(t, "b", "two"),
	})
	_ = repo.Index(ctx, []domdoc.Document{mustDoc(t, "a", "updated")})

	all := repo.All(ctx)
	if len(all) != 2 {
		t.Fatalf("All() len = %d, want 2 after overwrite", len(all))
	}
	if all[0].ID() != "a" || all[0].Content() != "updated" {
		t.Errorf("All()[0] = %q/%q, want a/updated", all[0].ID(), all[0].Content())
	}
	if repo.Count(ctx) != 2 {
		t.Errorf("Count() = %d", repo.Count(ctx))
	}
}

func TestDelete_CountsOnlyPresent(t *testing.T) {
	ctx := context.Background()
	repo := New()
	_ = repo.Index(ctx, []domdoc.Document{
		mustDoc(t, "a", "one"),
		mustDoc(t, "b", "two"),
	})

	n, err := repo.Delete(ctx, []string{"a", "missing", "b"})
	if err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if n != 2 {
		t.Errorf("Delete() = %d, want 2", n)
	}

	// Second delete with the same IDs removes nothing.
	n, _ = repo.Delete(ctx, []string{"a", "b"})
	if n != 0 {
		t.Errorf("second Delete() = %d, want 0", n)
	}
}

func TestDelete_PreservesOrderOfSurvivors(t *testing.T) {
	ctx := context.Background()
	repo := New()
	_ = repo.Index(ctx, []domdoc.Document{
		mustDoc(t, "a", "one"),
		mustDoc(t, "b", "two"),
		mustDoc(t, "c", "three"),
	})

	_, _ = repo.Delete(ctx, []string{"b"})

	all := repo.All(ctx)
	if len(all) != 2 || all[0].ID() != "a" || all[1].ID() != "c" {
		t.Errorf("All() after delete = %v", ids(all))
	}
}

func TestClear_Idempotent(t *testing.T) {
	ctx := context.Background()
	repo := New()
	_ = repo.Index(ctx, []domdoc.Document{mustDoc(t, "a", "one")})

	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("second Clear() error = %v", err)
	}
	if repo.Count(ctx) != 0 {
		t.Errorf("Count() = %d after Clear", repo.Count(ctx))
	}
	if len(repo.All(ctx)) != 0 {
		t.Errorf("All() not empty after Clear")
	}
}

func TestGet(t *testing.T) {
	ctx := context.Background()
	repo := New()
	_ = repo.Index(ctx, []domdoc.Document{mustDoc(t, "a", "one")})

	doc, ok := repo.Get(ctx, "a")
	if !ok || doc.Content() != "one" {
		t.Errorf("Get(a) = %q, %v", doc.Content(), ok)
	}
	if _, ok := repo.Get(ctx, "zzz"); ok {
		t.Error("Get(zzz) = true, want false")
	}
}

func ids(docs []domdoc.Document) []string {
	out := make([]string, len(docs))
	for i := range docs {
		out[i] = docs[i].ID()
	}
	return out
}

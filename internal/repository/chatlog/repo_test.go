package chatlog

import (
	"context"
	"strconv"
	"testing"

	domchat "github.com/curio-labs/searchlab/internal/domain/chat"
)

func TestAppendAndRecent(t *testing.T) {
	ctx := context.Background()
	repo := New()

	for i := 0; i < 5; i++ {
		err := repo.Append(ctx, domchat.Message{ID: strconv.Itoa(i), Type: domchat.TypeText})
		if err != nil {
			t.Fatalf("Append() error = %v", err)
		}
	}

	recent := repo.Recent(ctx, 3)
	if len(recent) != 3 {
		t.Fatalf("Recent(3) len = %d", len(recent))
	}
	for i, want := range []string{"2", "3", "4"} {
		if recent[i].ID != want {
			t.Errorf("Recent(3)[%d].ID = %q, want %q", i, recent[i].ID, want)
		}
	}

	if got := repo.Recent(ctx, 0); len(got) != 5 {
		t.Errorf("Recent(0) len = %d, want full log", len(got))
	}
	if got := repo.Recent(ctx, 100); len(got) != 5 {
		t.Errorf("Recent(100) len = %d, want 5", len(got))
	}
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	repo := New()
	_ = repo.Append(ctx, domchat.Message{ID: "1"})

	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if repo.Len(ctx) != 0 {
		t.Errorf("Len() = %d after Clear", repo.Len(ctx))
	}
	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("second Clear() error = %v", err)
	}
}

func TestRecent_ReturnsCopy(t *testing.T) {
	ctx := context.Background()
	repo := New()
	_ = repo.Append(ctx, domchat.Message{ID: "1", Content: "original"})

	got := repo.Recent(ctx, 1)
	got[0].Content = "mutated"

	if repo.Recent(ctx, 1)[0].Content != "original" {
		t.Error("Recent() exposed internal slice")
	}
}

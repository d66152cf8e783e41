package memorypad

import (
	"errors"
	"strings"
	"testing"

	"github.com/curio-labs/searchlab/internal/domain"
)

func newTestPad(t *testing.T) *Pad {
	t.Helper()
	p, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return p
}

func TestCreateAndView(t *testing.T) {
	p := newTestPad(t)

	if err := p.Create("/memories/notes.md", "line one\nline two\n"); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := p.View("/memories/notes.md", 0, 0)
	if err != nil {
		t.Fatalf("View() error = %v", err)
	}
	want := "   1: line one\n   2: line two"
	if got != want {
		t.Errorf("View() = %q, want %q", got, want)
	}
}

func TestView_Range(t *testing.T) {
	p := newTestPad(t)
	_ = p.Create("/memories/n.md", "a\nb\nc\nd\n")

	got, err := p.View("/memories/n.md", 2, 3)
	if err != nil {
		t.Fatalf("View() error = %v", err)
	}
	if got != "   2: b\n   3: c" {
		t.Errorf("View(2,3) = %q", got)
	}

	// endLine -1 reads to EOF.
	got, err = p.View("/memories/n.md", 3, -1)
	if err != nil {
		t.Fatalf("View() error = %v", err)
	}
	if got != "   3: c\n   4: d" {
		t.Errorf("View(3,-1) = %q", got)
	}
}

func TestView_Directory(t *testing.T) {
	p := newTestPad(t)
	_ = p.Create("/memories/sub/file.md", "x\n")
	_ = p.Create("/memories/a.md", "y\n")

	got, err := p.View("/memories", 0, 0)
	if err != nil {
		t.Fatalf("View() error = %v", err)
	}
	if !strings.Contains(got, "Directory: /memories") {
		t.Errorf("View() = %q", got)
	}
	if !strings.Contains(got, "- a.md") || !strings.Contains(got, "- sub/") {
		t.Errorf("View() = %q, want a.md and sub/", got)
	}
}

func TestResolve_RejectsEscapes(t *testing.T) {
	p := newTestPad(t)

	cases := []string{
		"/etc/passwd",
		"memories/x",
		"/memories/../outside",
		"/memoriesevil/x",
	}
	for _, path := range cases {
		if _, err := p.View(path, 0, 0); err == nil {
			t.Errorf("View(%q) = nil error, want rejection", path)
		}
	}
}

func TestStrReplace(t *testing.T) {
	p := newTestPad(t)
	_ = p.Create("/memories/n.md", "the old value\n")

	if err := p.StrReplace("/memories/n.md", "old", "new"); err != nil {
		t.Fatalf("StrReplace() error = %v", err)
	}
	got, _ := p.View("/memories/n.md", 0, 0)
	if !strings.Contains(got, "the new value") {
		t.Errorf("after StrReplace: %q", got)
	}
}

func TestStrReplace_RequiresUnique(t *testing.T) {
	p := newTestPad(t)
	_ = p.Create("/memories/n.md", "dup dup\n")

	err := p.StrReplace("/memories/n.md", "dup", "x")
	if !errors.Is(err, domain.ErrInvalidArgument) {
		t.Errorf("StrReplace(ambiguous) error = %v", err)
	}

	err = p.StrReplace("/memories/n.md", "absent", "x")
	if !errors.Is(err, domain.ErrInvalidArgument) {
		t.Errorf("StrReplace(missing) error = %v", err)
	}
}

func TestInsert(t *testing.T) {
	p := newTestPad(t)
	_ = p.Create("/memories/n.md", "a\nc\n")

	if err := p.Insert("/memories/n.md", 1, "b"); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	got, _ := p.View("/memories/n.md", 0, 0)
	if got != "   1: a\n   2: b\n   3: c" {
		t.Errorf("after Insert: %q", got)
	}

	// Appending at len(lines) is allowed.
	if err := p.Insert("/memories/n.md", 3, "d"); err != nil {
		t.Fatalf("Insert(append) error = %v", err)
	}

	if err := p.Insert("/memories/n.md", 99, "x"); !errors.Is(err, domain.ErrInvalidArgument) {
		t.Errorf("Insert(out of range) error = %v", err)
	}
}

func TestDelete(t *testing.T) {
	p := newTestPad(t)
	_ = p.Create("/memories/n.md", "x\n")

	if err := p.Delete("/memories/n.md"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := p.View("/memories/n.md", 0, 0); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("View(deleted) error = %v", err)
	}

	if err := p.Delete("/memories"); !errors.Is(err, domain.ErrInvalidArgument) {
		t.Errorf("Delete(root) error = %v", err)
	}
	if err := p.Delete("/memories/absent.md"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Delete(absent) error = %v", err)
	}
}

func TestRename(t *testing.T) {
	p := newTestPad(t)
	_ = p.Create("/memories/old.md", "x\n")

	if err := p.Rename("/memories/old.md", "/memories/sub/new.md"); err != nil {
		t.Fatalf("Rename() error = %v", err)
	}
	if _, err := p.View("/memories/sub/new.md", 0, 0); err != nil {
		t.Errorf("View(new) error = %v", err)
	}

	_ = p.Create("/memories/a.md", "x\n")
	_ = p.Create("/memories/b.md", "y\n")
	if err := p.Rename("/memories/a.md", "/memories/b.md"); !errors.Is(err, domain.ErrInvalidArgument) {
		t.Errorf("Rename(existing dest) error = %v", err)
	}
}

func TestClearAll(t *testing.T) {
	p := newTestPad(t)
	_ = p.Create("/memories/n.md", "x\n")

	if err := p.ClearAll(); err != nil {
		t.Fatalf("ClearAll() error = %v", err)
	}
	got, err := p.View("/memories", 0, 0)
	if err != nil {
		t.Fatalf("View(root) error = %v", err)
	}
	if got != "Directory: /memories" {
		t.Errorf("root after ClearAll = %q", got)
	}

	if err := p.ClearAll(); err != nil {
		t.Fatalf("second ClearAll() error = %v", err)
	}
}

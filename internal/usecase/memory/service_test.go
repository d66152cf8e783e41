package memory

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/curio-labs/searchlab/internal/domain"
	"github.com/curio-labs/searchlab/internal/repository/memorypad"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	pad, err := memorypad.New(t.TempDir())
	if err != nil {
		t.Fatalf("memorypad.New() error = %v", err)
	}
	return New(pad)
}

func TestExecute_CreateViewRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	out, err := svc.Execute(ctx, Command{
		Cmd:      CmdCreate,
		Path:     "/memories/user.md",
		FileText: "likes rings\n",
	})
	if err != nil {
		t.Fatalf("Execute(create) error = %v", err)
	}
	if !strings.Contains(out, "/memories/user.md") {
		t.Errorf("create output = %q", out)
	}

	out, err = svc.Execute(ctx, Command{Cmd: CmdView, Path: "/memories/user.md"})
	if err != nil {
		t.Fatalf("Execute(view) error = %v", err)
	}
	if !strings.Contains(out, "likes rings") {
		t.Errorf("view output = %q", out)
	}
}

func TestExecute_ViewRange(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	_, _ = svc.Execute(ctx, Command{Cmd: CmdCreate, Path: "/memories/n.md", FileText: "a\nb\nc\n"})

	out, err := svc.Execute(ctx, Command{
		Cmd: CmdView, Path: "/memories/n.md", ViewRange: []int{2, 2},
	})
	if err != nil {
		t.Fatalf("Execute(view range) error = %v", err)
	}
	if !strings.Contains(out, "2: b") || strings.Contains(out, "1: a") {
		t.Errorf("view range output = %q", out)
	}
}

func TestExecute_EditCommands(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	_, _ = svc.Execute(ctx, Command{Cmd: CmdCreate, Path: "/memories/n.md", FileText: "old line\n"})

	if _, err := svc.Execute(ctx, Command{
		Cmd: CmdStrReplace, Path: "/memories/n.md", OldStr: "old", NewStr: "new",
	}); err != nil {
		t.Fatalf("Execute(str_replace) error = %v", err)
	}

	if _, err := svc.Execute(ctx, Command{
		Cmd: CmdInsert, Path: "/memories/n.md", InsertLine: 0, InsertText: "header",
	}); err != nil {
		t.Fatalf("Execute(insert) error = %v", err)
	}

	if _, err := svc.Execute(ctx, Command{
		Cmd: CmdRename, OldPath: "/memories/n.md", NewPath: "/memories/renamed.md",
	}); err != nil {
		t.Fatalf("Execute(rename) error = %v", err)
	}

	out, err := svc.Execute(ctx, Command{Cmd: CmdView, Path: "/memories/renamed.md"})
	if err != nil {
		t.Fatalf("Execute(view) error = %v", err)
	}
	if !strings.Contains(out, "header") || !strings.Contains(out, "new line") {
		t.Errorf("final content = %q", out)
	}

	if _, err := svc.Execute(ctx, Command{Cmd: CmdDelete, Path: "/memories/renamed.md"}); err != nil {
		t.Fatalf("Execute(delete) error = %v", err)
	}
}

func TestExecute_UnknownCommand(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.Execute(context.Background(), Command{Cmd: "bogus"})
	if !errors.Is(err, domain.ErrInvalidArgument) {
		t.Errorf("Execute(bogus) error = %v", err)
	}
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	_, _ = svc.Execute(ctx, Command{Cmd: CmdCreate, Path: "/memories/n.md", FileText: "x\n"})

	if err := svc.Reset(ctx); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}

	out, err := svc.Execute(ctx, Command{Cmd: CmdView, Path: "/memories"})
	if err != nil {
		t.Fatalf("Execute(view root) error = %v", err)
	}
	if strings.Contains(out, "n.md") {
		t.Errorf("memory not cleared: %q", out)
	}
}

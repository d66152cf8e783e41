// Package memorypad provides a file-backed memory scaffold for the
// conversational agent. Memories live under a single root directory and are
// addressed by virtual paths rooted at /memories; every operation re-resolves
// its path so nothing can escape the root.
package memorypad

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/curio-labs/searchlab/internal/domain"
)

// VirtualRoot is the path prefix every memory path must carry.
const VirtualRoot = "/memories"

// Pad stores memories as plain files under root.
type Pad struct {
	root string
}

// New creates a Pad rooted at dir, creating it if needed.
func New(dir string) (*Pad, error) {
	if dir == "" {
		return nil, fmt.Errorf("memory root dir is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create memory root: %w", err)
	}
	return &Pad{root: dir}, nil
}

// resolve maps a /memories path onto the filesystem, rejecting escapes.
func (p *Pad) resolve(path string) (string, error) {
	if path != VirtualRoot && !strings.HasPrefix(path, VirtualRoot+"/") {
		return "", fmt.Errorf("path must start with %s, got %q: %w", VirtualRoot, path, domain.ErrInvalidArgument)
	}

	rel := strings.TrimPrefix(path, VirtualRoot)
	rel = strings.TrimPrefix(rel, "/")
	full := filepath.Join(p.root, filepath.FromSlash(rel))

	// Join cleans the path; anything resolving outside the root is an escape.
	absRoot, err := filepath.Abs(p.root)
	if err != nil {
		return "", fmt.Errorf("resolve root: %w", err)
	}
	absFull, err := filepath.Abs(full)
	if err != nil {
		return "", fmt.Errorf("resolve path: %w", err)
	}
	if absFull != absRoot && !strings.HasPrefix(absFull, absRoot+string(os.PathSeparator)) {
		return "", fmt.Errorf("%q: %w", path, domain.ErrMemoryPathEscape)
	}
	return full, nil
}

// View renders a directory listing or a numbered file view. For files,
// startLine/endLine select a 1-based inclusive range; endLine -1 means EOF;
// both 0 means the whole file.
func (p *Pad) View(path string, startLine, endLine int) (string, error) {
	full, err := p.resolve(path)
	if err != nil {
		return "", err
	}

	info, err := os.Stat(full)
	if err != nil {
		return "", fmt.Errorf("path not found %q: %w", path, domain.ErrNotFound)
	}

	if info.IsDir() {
		return p.viewDir(path, full)
	}
	return viewFile(full, startLine, endLine)
}

func (p *Pad) viewDir(path, full string) (string, error) {
	entries, err := os.ReadDir(full)
	if err != nil {
		return "", fmt.Errorf("read directory %q: %w", path, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".") {
			continue
		}
		name := e.Name()
		if e.IsDir() {
			name += "/"
		}
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	fmt.Fprintf(&b, "Directory: %s", path)
	for _, name := range names {
		fmt.Fprintf(&b, "\n- %s", name)
	}
	return b.String(), nil
}

func viewFile(full string, startLine, endLine int) (string, error) {
	data, err := os.ReadFile(full)
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}

	lines := splitLines(string(data))
	start := 1
	end := len(lines)
	if startLine > 0 {
		start = startLine
	}
	if endLine > 0 {
		end = endLine
	}
	if start > len(lines) {
		return "", nil
	}
	if end > len(lines) {
		end = len(lines)
	}

	var b strings.Builder
	for i := start; i <= end; i++ {
		if i > start {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%4d: %s", i, lines[i-1])
	}
	return b.String(), nil
}

// Create writes fileText to path, creating parent directories as needed and
// overwriting any existing file.
func (p *Pad) Create(path, fileText string) error {
	full, err := p.resolve(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("create parent dirs: %w", err)
	}
	if err := os.WriteFile(full, []byte(fileText), 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

// StrReplace substitutes the unique occurrence of oldStr with newStr.
// Zero or multiple occurrences are errors.
func (p *Pad) StrReplace(path, oldStr, newStr string) error {
	full, err := p.resolve(path)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(full)
	if err != nil {
		return fmt.Errorf("file not found %q: %w", path, domain.ErrNotFound)
	}

	content := string(data)
	switch n := strings.Count(content, oldStr); {
	case n == 0:
		return fmt.Errorf("text not found in %q: %w", path, domain.ErrInvalidArgument)
	case n > 1:
		return fmt.Errorf("text appears %d times in %q, must be unique: %w", n, path, domain.ErrInvalidArgument)
	}

	content = strings.Replace(content, oldStr, newStr, 1)
	if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

// Insert adds insertText before the given 0-based line index (len(lines)
// appends).
func (p *Pad) Insert(path string, insertLine int, insertText string) error {
	full, err := p.resolve(path)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(full)
	if err != nil {
		return fmt.Errorf("file not found %q: %w", path, domain.ErrNotFound)
	}

	lines := splitLines(string(data))
	if insertLine < 0 || insertLine > len(lines) {
		return fmt.Errorf("invalid insert_line %d, must be 0-%d: %w", insertLine, len(lines), domain.ErrInvalidArgument)
	}

	insertText = strings.TrimRight(insertText, "\n")
	lines = append(lines[:insertLine], append([]string{insertText}, lines[insertLine:]...)...)
	out := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(full, []byte(out), 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

// Delete removes a file or directory tree. The /memories root itself
// cannot be deleted.
func (p *Pad) Delete(path string) error {
	if path == VirtualRoot {
		return fmt.Errorf("cannot delete the %s directory itself: %w", VirtualRoot, domain.ErrInvalidArgument)
	}
	full, err := p.resolve(path)
	if err != nil {
		return err
	}
	if _, err := os.Stat(full); err != nil {
		return fmt.Errorf("path not found %q: %w", path, domain.ErrNotFound)
	}
	if err := os.RemoveAll(full); err != nil {
		return fmt.Errorf("delete %q: %w", path, err)
	}
	return nil
}

// Rename moves a memory to a new path. The destination must not exist.
func (p *Pad) Rename(oldPath, newPath string) error {
	oldFull, err := p.resolve(oldPath)
	if err != nil {
		return err
	}
	newFull, err := p.resolve(newPath)
	if err != nil {
		return err
	}

	if _, err := os.Stat(oldFull); err != nil {
		return fmt.Errorf("source not found %q: %w", oldPath, domain.ErrNotFound)
	}
	if _, err := os.Stat(newFull); err == nil {
		return fmt.Errorf("destination already exists %q: %w", newPath, domain.ErrInvalidArgument)
	}

	if err := os.MkdirAll(filepath.Dir(newFull), 0o755); err != nil {
		return fmt.Errorf("create destination dirs: %w", err)
	}
	if err := os.Rename(oldFull, newFull); err != nil {
		return fmt.Errorf("rename %q: %w", oldPath, err)
	}
	return nil
}

// ClearAll wipes every memory and recreates the empty root. Idempotent.
func (p *Pad) ClearAll() error {
	if err := os.RemoveAll(p.root); err != nil {
		return fmt.Errorf("clear memory root: %w", err)
	}
	if err := os.MkdirAll(p.root, 0o755); err != nil {
		return fmt.Errorf("recreate memory root: %w", err)
	}
	return nil
}

// HealthCheck reports whether the backing directory is reachable.
func (p *Pad) HealthCheck(_ context.Context) error {
	info, err := os.Stat(p.root)
	if err != nil {
		return fmt.Errorf("stat memory root: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("memory root %q is not a directory", p.root)
	}
	return nil
}

// splitLines splits on newlines without a trailing empty element.
func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// Package memory exposes the agent memory pad behind a single command
// dispatch, the shape memory-tool callers speak.
package memory

import (
	"context"
	"fmt"

	"github.com/curio-labs/searchlab/internal/domain"
)

// Pad defines the file-backed memory contract.
type Pad interface {
	View(path string, startLine, endLine int) (string, error)
	Create(path, fileText string) error
	StrReplace(path, oldStr, newStr string) error
	Insert(path string, insertLine int, insertText string) error
	Delete(path string) error
	Rename(oldPath, newPath string) error
	ClearAll() error
}

// Command names.
const (
	CmdView       = "view"
	CmdCreate     = "create"
	CmdStrReplace = "str_replace"
	CmdInsert     = "insert"
	CmdDelete     = "delete"
	CmdRename     = "rename"
)

// Command is a single memory operation.
type Command struct {
	Cmd        string
	Path       string
	FileText   string
	OldStr     string
	NewStr     string
	InsertLine int
	InsertText string
	OldPath    string
	NewPath    string
	ViewRange  []int
}

// Service dispatches memory commands onto a Pad.
type Service struct {
	pad Pad
}

// New creates a memory service.
func New(pad Pad) *Service {
	return &Service{pad: pad}
}

// Execute runs one command and returns a human-readable outcome.
func (s *Service) Execute(_ context.Context, cmd Command) (string, error) {
	switch cmd.Cmd {
	case CmdView:
		start, end := 0, 0
		if len(cmd.ViewRange) == 2 {
			start, end = cmd.ViewRange[0], cmd.ViewRange[1]
		}
		return s.pad.View(cmd.Path, start, end)

	case CmdCreate:
		if err := s.pad.Create(cmd.Path, cmd.FileText); err != nil {
			return "", err
		}
		return fmt.Sprintf("File created successfully at %s", cmd.Path), nil

	case CmdStrReplace:
		if err := s.pad.StrReplace(cmd.Path, cmd.OldStr, cmd.NewStr); err != nil {
			return "", err
		}
		return fmt.Sprintf("File %s has been edited", cmd.Path), nil

	case CmdInsert:
		if err := s.pad.Insert(cmd.Path, cmd.InsertLine, cmd.InsertText); err != nil {
			return "", err
		}
		return fmt.Sprintf("Text inserted at line %d in %s", cmd.InsertLine, cmd.Path), nil

	case CmdDelete:
		if err := s.pad.Delete(cmd.Path); err != nil {
			return "", err
		}
		return fmt.Sprintf("Deleted: %s", cmd.Path), nil

	case CmdRename:
		if err := s.pad.Rename(cmd.OldPath, cmd.NewPath); err != nil {
			return "", err
		}
		return fmt.Sprintf("Renamed %s to %s", cmd.OldPath, cmd.NewPath), nil

	default:
		return "", fmt.Errorf("unknown memory command %q: %w", cmd.Cmd, domain.ErrInvalidArgument)
	}
}

// Reset wipes every stored memory.
func (s *Service) Reset(_ context.Context) error {
	if err := s.pad.ClearAll(); err != nil {
		return fmt.Errorf("reset memory: %w", err)
	}
	return nil
}

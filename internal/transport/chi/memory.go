package chi

import (
	"encoding/json"
	"net/http"

	memoryuc "github.com/curio-labs/searchlab/internal/usecase/memory"
)

type memoryCommandBody struct {
	Command    string `json:"command"`
	Path       string `json:"path"`
	FileText   string `json:"file_text"`
	OldStr     string `json:"old_str"`
	NewStr     string `json:"new_str"`
	InsertLine int    `json:"insert_line"`
	InsertText string `json:"insert_text"`
	OldPath    string `json:"old_path"`
	NewPath    string `json:"new_path"`
	ViewRange  []int  `json:"view_range"`
}

// handleMemoryCommand handles POST /api/memory.
func (s *Server) handleMemoryCommand(w http.ResponseWriter, r *http.Request) {
	var body memoryCommandBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	output, err := s.memory.Execute(r.Context(), memoryuc.Command{
		Cmd:        body.Command,
		Path:       body.Path,
		FileText:   body.FileText,
		OldStr:     body.OldStr,
		NewStr:     body.NewStr,
		InsertLine: body.InsertLine,
		InsertText: body.InsertText,
		OldPath:    body.OldPath,
		NewPath:    body.NewPath,
		ViewRange:  body.ViewRange,
	})
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"output": output})
}

// handleMemoryReset handles POST /api/memory/reset.
func (s *Server) handleMemoryReset(w http.ResponseWriter, r *http.Request) {
	if err := s.memory.Reset(r.Context()); err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}

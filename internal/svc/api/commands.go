// If you are AI: This file implements the HTTP API handlers that change the graph.

package api

import (
	"encoding/json"
	"errors"
	"io/fs"
	"net/http"

	"gsteditor/internal/core/command"
	"gsteditor/internal/core/graph"
	"gsteditor/internal/core/graphfile"
	"gsteditor/internal/editor"
)

// CommandRequest is the body of POST /api/commands.
type CommandRequest struct {
	Line string `json:"line"`
}

// CommandResponse reports the object a command touched.
type CommandResponse struct {
	Command string `json:"command"`
	Kind    string `json:"kind"`
	Path    string `json:"path,omitempty"`
}

// FileRequest is the body of POST /api/save and /api/load.
type FileRequest struct {
	Path string `json:"path"`
}

// SaveResponse is the result of a save.
type SaveResponse struct {
	Path   string `json:"path"`
	Digest string `json:"digest"`
}

// LoadResponse is the result of a load.
type LoadResponse struct {
	Path  string          `json:"path"`
	Stats graphfile.Stats `json:"stats"`
	Error string          `json:"error,omitempty"`
}

// handleCommands handles POST /api/commands.
// Returns 400 for syntax errors and 422 for commands the graph rejects.
func (s *Service) handleCommands(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if !s.requireJSON(w, r) {
		return
	}
	var req CommandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var resp CommandResponse
	err := s.loop.Do(r.Context(), func(e *editor.Editor) error {
		ref, err := e.Execute(r.Context(), req.Line)
		if err != nil {
			return err
		}
		resp = describeRef(e.Graph(), ref)
		if h := e.History(); len(h) > 0 {
			resp.Command = h[len(h)-1]
		}
		return nil
	})

	var syntax *command.SyntaxError
	var exec *command.ExecutionError
	switch {
	case err == nil:
		s.writeJSON(w, http.StatusOK, resp)
	case errors.As(err, &syntax):
		s.writeError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &exec):
		s.writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		s.writeLoopError(w, err)
	}
}

// handleSuggest handles GET /api/suggest?line=.
func (s *Service) handleSuggest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	line := r.URL.Query().Get("line")
	candidates := []string{}
	if err := s.loop.Do(r.Context(), func(e *editor.Editor) error {
		candidates = append(candidates, e.Suggest(line)...)
		return nil
	}); err != nil {
		s.writeLoopError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"candidates": candidates})
}

// handleSave handles POST /api/save.
func (s *Service) handleSave(w http.ResponseWriter, r *http.Request) {
	req, ok := s.fileRequest(w, r)
	if !ok {
		return
	}
	var digest string
	var saveErr error
	if err := s.loop.Do(r.Context(), func(e *editor.Editor) error {
		digest, saveErr = e.Save(r.Context(), req.Path)
		return nil
	}); err != nil {
		s.writeLoopError(w, err)
		return
	}
	if saveErr != nil {
		s.writeError(w, http.StatusInternalServerError, saveErr.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, SaveResponse{Path: req.Path, Digest: digest})
}

// handleLoad handles POST /api/load. A malformed document still reports
// what was loaded, with status 422.
func (s *Service) handleLoad(w http.ResponseWriter, r *http.Request) {
	req, ok := s.fileRequest(w, r)
	if !ok {
		return
	}
	var stats graphfile.Stats
	var loadErr error
	if err := s.loop.Do(r.Context(), func(e *editor.Editor) error {
		stats, loadErr = e.Load(r.Context(), req.Path)
		return nil
	}); err != nil {
		s.writeLoopError(w, err)
		return
	}

	resp := LoadResponse{Path: req.Path, Stats: stats}
	switch {
	case loadErr == nil:
		s.writeJSON(w, http.StatusOK, resp)
	case errors.Is(loadErr, fs.ErrNotExist):
		s.writeError(w, http.StatusNotFound, loadErr.Error())
	case errors.Is(loadErr, graphfile.ErrMalformed):
		resp.Error = loadErr.Error()
		s.writeJSON(w, http.StatusUnprocessableEntity, resp)
	default:
		s.writeError(w, http.StatusInternalServerError, loadErr.Error())
	}
}

// fileRequest decodes a POST body naming a file and resolves the path
// under the documents directory.
func (s *Service) fileRequest(w http.ResponseWriter, r *http.Request) (FileRequest, bool) {
	var req FileRequest
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return req, false
	}
	if !s.requireJSON(w, r) {
		return req, false
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return req, false
	}
	if req.Path == "" {
		s.writeError(w, http.StatusBadRequest, "path is required")
		return req, false
	}
	path, err := s.resolve(req.Path)
	if err != nil {
		s.writeError(w, http.StatusForbidden, err.Error())
		return req, false
	}
	req.Path = path
	return req, true
}

// describeRef names the object a command returned.
func describeRef(g *graph.Graph, ref graph.Ref) CommandResponse {
	resp := CommandResponse{Kind: ref.Kind.String()}
	switch ref.Kind {
	case graph.RefElement:
		resp.Path = g.Path(ref.Node)
	case graph.RefPad:
		resp.Path = g.PadPath(ref.Pad)
	}
	return resp
}

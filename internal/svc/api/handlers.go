// If you are AI: This file implements the read-only HTTP API handlers.

package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"runtime"

	"gsteditor/internal/core/codegen"
	"gsteditor/internal/core/factory"
	"gsteditor/internal/editor"
)

// ServerResponse represents the /api/server response.
type ServerResponse struct {
	Version         string   `json:"version"`
	Uptime          int64    `json:"uptime"` // seconds
	GoVersion       string   `json:"go_version"`
	Session         string   `json:"session"`
	EnabledServices []string `json:"enabled_services"`
}

// FactoryInfo describes one element factory.
type FactoryInfo struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Container   bool           `json:"container"`
	Templates   []TemplateInfo `json:"templates"`
	Properties  []PropertyInfo `json:"properties"`
}

// TemplateInfo describes one pad template.
type TemplateInfo struct {
	Name      string `json:"name"`
	Direction string `json:"direction"`
	Presence  string `json:"presence"`
	Caps      string `json:"caps"`
}

// PropertyInfo describes one property.
type PropertyInfo struct {
	Name    string   `json:"name"`
	Type    string   `json:"type"`
	Default string   `json:"default"`
	Choices []string `json:"choices,omitempty"`
}

// ErrorResponse represents an API error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// handleServer handles GET /api/server.
// Returns server version, uptime, session and enabled services.
func (s *Service) handleServer(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	response := ServerResponse{
		Version:         Version,
		Uptime:          getCurrentTime() - s.startTime,
		GoVersion:       runtime.Version(),
		EnabledServices: []string{"api", "events", "health"},
	}
	err := s.loop.Do(r.Context(), func(e *editor.Editor) error {
		response.Session = e.Session()
		return nil
	})
	if err != nil {
		s.writeLoopError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, response)
}

// handleGraph handles GET /api/graph with the element tree.
func (s *Service) handleGraph(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var tree editor.Tree
	if err := s.loop.Do(r.Context(), func(e *editor.Editor) error {
		tree = e.Tree()
		return nil
	}); err != nil {
		s.writeLoopError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, tree)
}

// handleFactories handles GET /api/factories with the catalog.
func (s *Service) handleFactories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var infos []FactoryInfo
	if err := s.loop.Do(r.Context(), func(e *editor.Editor) error {
		for _, f := range e.Graph().Catalog().Factories() {
			infos = append(infos, factoryInfo(f))
		}
		return nil
	}); err != nil {
		s.writeLoopError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"factories": infos})
}

// handleHistory handles GET /api/history with the executed lines.
func (s *Service) handleHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var history []string
	if err := s.loop.Do(r.Context(), func(e *editor.Editor) error {
		history = e.History()
		return nil
	}); err != nil {
		s.writeLoopError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"commands": history})
}

// handleCodegen handles GET /api/codegen?format=launch|go[&package=name].
func (s *Service) handleCodegen(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "launch"
	}
	if format != "launch" && format != "go" {
		s.writeError(w, http.StatusBadRequest, "format must be launch or go")
		return
	}

	var out []byte
	var genErr error
	if err := s.loop.Do(r.Context(), func(e *editor.Editor) error {
		if format == "launch" {
			out = []byte(codegen.Launch(e.Graph()) + "\n")
			return nil
		}
		out, genErr = codegen.Go(e.Graph(), codegen.Options{Package: r.URL.Query().Get("package")})
		return nil
	}); err != nil {
		s.writeLoopError(w, err)
		return
	}
	if genErr != nil {
		s.writeError(w, http.StatusBadRequest, genErr.Error())
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(out)
}

// factoryInfo converts a factory for the API.
func factoryInfo(f *factory.Factory) FactoryInfo {
	info := FactoryInfo{Name: f.Name, Description: f.Description, Container: f.Container}
	for _, t := range f.Templates {
		info.Templates = append(info.Templates, TemplateInfo{
			Name: t.Name, Direction: t.Direction.String(), Presence: t.Presence.String(), Caps: t.Caps,
		})
	}
	for _, p := range f.Properties {
		info.Properties = append(info.Properties, PropertyInfo{
			Name: p.Name, Type: p.Type.String(), Default: p.Default, Choices: p.Choices,
		})
	}
	return info
}

// writeJSON writes a JSON response.
func (s *Service) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func (s *Service) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, ErrorResponse{Error: message})
}

// writeLoopError reports a request the editor loop could not serve.
func (s *Service) writeLoopError(w http.ResponseWriter, err error) {
	if errors.Is(err, editor.ErrLoopStopped) {
		s.writeError(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	s.writeError(w, http.StatusInternalServerError, err.Error())
}

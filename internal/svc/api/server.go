// If you are AI: This file provides HTTP API service integration.
// Every handler reaches the graph through the editor loop, never directly.

package api

import (
	"context"
	"net/http"
	"path/filepath"
	"time"

	"gsteditor/internal/editor"
)

// Version is reported by /api/server.
const Version = "1.0.0"

// Loop serializes editor access.
// This allows the API to be tested against a loop without a server.
type Loop interface {
	Do(ctx context.Context, fn func(*editor.Editor) error) error
}

// Service provides HTTP API functionality.
type Service struct {
	loop      Loop
	documents string
	startTime int64
}

// NewService creates a new API service. Save and load requests are confined
// to the documents directory.
func NewService(loop Loop, documents string) *Service {
	if abs, err := filepath.Abs(documents); err == nil {
		documents = abs
	}
	return &Service{
		loop:      loop,
		documents: filepath.Clean(documents),
		startTime: getCurrentTime(),
	}
}

// RegisterRoutes registers API routes on the provided mux.
func (s *Service) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/server", s.handleServer)
	mux.HandleFunc("/api/graph", s.handleGraph)
	mux.HandleFunc("/api/factories", s.handleFactories)
	mux.HandleFunc("/api/history", s.handleHistory)
	mux.HandleFunc("/api/codegen", s.handleCodegen)
	mux.HandleFunc("/api/commands", s.handleCommands)
	mux.HandleFunc("/api/suggest", s.handleSuggest)
	mux.HandleFunc("/api/save", s.handleSave)
	mux.HandleFunc("/api/load", s.handleLoad)
}

// getCurrentTime returns current Unix timestamp.
// Extracted for testability.
func getCurrentTime() int64 {
	return time.Now().Unix()
}

// If you are AI: This file implements the health check endpoint for monitoring and integration tests.

package health

import (
	"net/http"
)

// Checker reports whether the editor loop is serving requests.
type Checker interface {
	Running() bool
}

// Service provides health check functionality.
type Service struct {
	checker Checker
}

// New creates a new health service backed by checker.
func New(checker Checker) *Service {
	return &Service{checker: checker}
}

// RegisterRoutes adds health check routes to the provided mux.
// Currently registers /healthz.
func (s *Service) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/healthz", s.handleHealth)
}

// handleHealth responds to health check requests.
// Returns 200 OK while the editor loop runs, 503 otherwise.
func (s *Service) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if s.checker != nil && !s.checker.Running() {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusOK)
}

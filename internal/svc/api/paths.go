// If you are AI: This file confines HTTP document paths to the documents directory
// and requires JSON bodies on requests that change state.

package api

import (
	"errors"
	"fmt"
	"mime"
	"net/http"
	"path/filepath"
	"strings"
)

// errOutsideDocuments is returned for paths that leave the documents directory.
var errOutsideDocuments = errors.New("path is outside the documents directory")

// resolve maps a requested path to a file under the documents directory.
// Relative paths are taken from the documents directory; absolute ones must lie inside it.
func (s *Service) resolve(path string) (string, error) {
	if !filepath.IsAbs(path) {
		path = filepath.Join(s.documents, path)
	}
	clean := filepath.Clean(path)
	rel, err := filepath.Rel(s.documents, clean)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", errOutsideDocuments, path)
	}
	return clean, nil
}

// requireJSON rejects bodies that are not application/json. Browsers cannot send
// that type cross-origin without a preflight.
func (s *Service) requireJSON(w http.ResponseWriter, r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != "application/json" {
		s.writeError(w, http.StatusUnsupportedMediaType, "content type must be application/json")
		return false
	}
	return true
}

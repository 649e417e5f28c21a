// If you are AI: This file saves and loads graph documents on disk.
// Saves go through a temporary file and a rename; ".zst" paths are zstd compressed.

package graphfile

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"lukechampine.com/blake3"

	"gsteditor/internal/core/graph"
)

// CompressedExt marks documents stored zstd compressed.
const CompressedExt = ".zst"

// Encode returns the document for g.
func Encode(g *graph.Graph) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, g); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Digest returns the BLAKE3 hex digest of the document for g.
func Digest(g *graph.Graph) (string, error) {
	h := blake3.New(32, nil)
	if err := Write(h, g); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// DocumentMode is the permission of newly saved documents.
const DocumentMode os.FileMode = 0o644

// Save writes g to path. On error no partial file is left behind.
// An existing file keeps its permissions.
func Save(path string, g *graph.Graph) error {
	mode := DocumentMode
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("cannot open file %s for writing: %w", path, err)
	}
	tmpName := tmp.Name()
	cleanup := func() {
		tmp.Close()
		os.Remove(tmpName)
	}

	if err := writeTo(tmp, g, isCompressed(path)); err != nil {
		cleanup()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Chmod(mode); err != nil {
		cleanup()
		return fmt.Errorf("setting mode of %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming %s: %w", path, err)
	}
	return nil
}

// Load tears down g and rebuilds it from the document at path.
// A file that cannot be opened is a fatal error and leaves g untouched.
func Load(path string, g *graph.Graph, l graph.Listener) (Stats, error) {
	data, err := ReadDocument(path)
	if err != nil {
		return Stats{}, err
	}
	return Read(bytes.NewReader(data), g, l)
}

// ReadDocument returns the document text stored at path, decompressed for ".zst" paths.
func ReadDocument(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open file %s for reading: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if isCompressed(path) {
		dec, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("creating zstd decoder: %w", err)
		}
		defer dec.Close()
		r = dec
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

// DocumentDigest returns the BLAKE3 hex digest of document text.
// For a document produced by Write it equals Digest of the written graph.
func DocumentDigest(data []byte) string {
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// writeTo writes the document to w, compressing when asked.
func writeTo(w io.Writer, g *graph.Graph, compress bool) error {
	if !compress {
		return Write(w, g)
	}
	enc, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("creating zstd encoder: %w", err)
	}
	if err := Write(enc, g); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}

// isCompressed reports whether path names a compressed document.
func isCompressed(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), CompressedExt)
}

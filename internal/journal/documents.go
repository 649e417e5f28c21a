// If you are AI: This file stores loaded documents by digest so replay does not depend on the file system.

package journal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrNoDocument is returned when no snapshot has the requested digest.
var ErrNoDocument = errors.New("no document snapshot")

// StoreDocument keeps content under digest. Storing the same digest twice is a no-op.
func (j *Journal) StoreDocument(ctx context.Context, digest string, content []byte) error {
	if err := j.ready(ctx); err != nil {
		return err
	}
	if digest == "" {
		return fmt.Errorf("digest is required")
	}
	_, err := j.db.ExecContext(ctx, `
INSERT INTO documents (digest, content, created_at) VALUES (?, ?, ?)
ON CONFLICT (digest) DO NOTHING
`, digest, content, time.Now().UTC().UnixMilli())
	if err != nil {
		return fmt.Errorf("store document: %w", err)
	}
	return nil
}

// Document returns the snapshot stored under digest.
func (j *Journal) Document(ctx context.Context, digest string) ([]byte, error) {
	if err := j.ready(ctx); err != nil {
		return nil, err
	}
	var content []byte
	err := j.db.QueryRowContext(ctx, `SELECT content FROM documents WHERE digest = ?`, digest).Scan(&content)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNoDocument, digest)
	}
	if err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}
	return content, nil
}

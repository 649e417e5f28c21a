// If you are AI: This file opens the SQLite command journal and creates its schema.
// The journal records every command line an editor session executes, every save
// and a snapshot of every loaded document.

package journal

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS commands (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	session TEXT NOT NULL,
	seq INTEGER NOT NULL,
	line TEXT NOT NULL,
	error TEXT NOT NULL DEFAULT '',
	created_at INTEGER NOT NULL,
	UNIQUE (session, seq)
);
CREATE INDEX IF NOT EXISTS commands_session ON commands (session, seq);
CREATE TABLE IF NOT EXISTS saves (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	session TEXT NOT NULL,
	path TEXT NOT NULL,
	digest TEXT NOT NULL,
	created_at INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS documents (
	digest TEXT PRIMARY KEY,
	content BLOB NOT NULL,
	created_at INTEGER NOT NULL
);
`

// Entry is one executed command line.
type Entry struct {
	ID        int64     `json:"id"`
	Session   string    `json:"session"`
	Seq       int       `json:"seq"`
	Line      string    `json:"line"`
	Error     string    `json:"error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// OK reports whether the command succeeded.
func (e Entry) OK() bool {
	return e.Error == ""
}

// Save is one document written by a session.
type Save struct {
	Session   string    `json:"session"`
	Path      string    `json:"path"`
	Digest    string    `json:"digest"`
	CreatedAt time.Time `json:"created_at"`
}

// Session summarizes the journal of one editor session.
type Session struct {
	ID       string    `json:"id"`
	Commands int       `json:"commands"`
	Failed   int       `json:"failed"`
	First    time.Time `json:"first"`
	Last     time.Time `json:"last"`
}

// Journal is a SQLite-backed command journal.
type Journal struct {
	db *sql.DB
}

// Open opens the journal at path, creating the file and schema if needed.
func Open(ctx context.Context, path string) (*Journal, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("journal path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// One connection keeps seq assignment and WAL checkpoints simple.
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Journal{db: db}, nil
}

// Close releases the SQLite connection.
func (j *Journal) Close() error {
	if j == nil || j.db == nil {
		return nil
	}
	return j.db.Close()
}

// ready reports an error for a closed or cancelled call.
func (j *Journal) ready(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if j == nil || j.db == nil {
		return fmt.Errorf("journal is not configured")
	}
	return nil
}

// millis converts a stored timestamp.
func millis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

// If you are AI: This file records and lists journal entries and saves.

package journal

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Record appends line and its outcome to the session's journal and returns the
// stored entry with its sequence number.
func (j *Journal) Record(ctx context.Context, session, line string, cmdErr error) (Entry, error) {
	if err := j.ready(ctx); err != nil {
		return Entry{}, err
	}
	session = strings.TrimSpace(session)
	if session == "" {
		return Entry{}, fmt.Errorf("session is required")
	}
	e := Entry{Session: session, Line: line, CreatedAt: time.Now().UTC()}
	if cmdErr != nil {
		e.Error = cmdErr.Error()
	}

	row := j.db.QueryRowContext(ctx, `
INSERT INTO commands (session, seq, line, error, created_at)
VALUES (?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM commands WHERE session = ?), ?, ?, ?)
RETURNING id, seq
`, e.Session, e.Session, e.Line, e.Error, e.CreatedAt.UnixMilli())
	if err := row.Scan(&e.ID, &e.Seq); err != nil {
		return Entry{}, fmt.Errorf("record command: %w", err)
	}
	e.CreatedAt = millis(e.CreatedAt.UnixMilli())
	return e, nil
}

// Entries lists a session's entries in execution order.
func (j *Journal) Entries(ctx context.Context, session string) ([]Entry, error) {
	if err := j.ready(ctx); err != nil {
		return nil, err
	}
	rows, err := j.db.QueryContext(ctx, `
SELECT id, session, seq, line, error, created_at
FROM commands
WHERE session = ?
ORDER BY seq
`, session)
	if err != nil {
		return nil, fmt.Errorf("list commands: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var createdAt int64
		if err := rows.Scan(&e.ID, &e.Session, &e.Seq, &e.Line, &e.Error, &createdAt); err != nil {
			return nil, fmt.Errorf("scan command: %w", err)
		}
		e.CreatedAt = millis(createdAt)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate commands: %w", err)
	}
	return entries, nil
}

// Sessions lists every journaled session, most recent first.
func (j *Journal) Sessions(ctx context.Context) ([]Session, error) {
	if err := j.ready(ctx); err != nil {
		return nil, err
	}
	rows, err := j.db.QueryContext(ctx, `
SELECT session, COUNT(*), SUM(CASE WHEN error != '' THEN 1 ELSE 0 END), MIN(created_at), MAX(created_at)
FROM commands
GROUP BY session
ORDER BY MAX(created_at) DESC, MAX(id) DESC
`)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var s Session
		var first, last int64
		if err := rows.Scan(&s.ID, &s.Commands, &s.Failed, &first, &last); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		s.First, s.Last = millis(first), millis(last)
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}
	return sessions, nil
}

// RecordSave stores that session wrote a document with digest to path.
func (j *Journal) RecordSave(ctx context.Context, session, path, digest string) error {
	if err := j.ready(ctx); err != nil {
		return err
	}
	if path == "" || digest == "" {
		return fmt.Errorf("path and digest are required")
	}
	_, err := j.db.ExecContext(ctx, `
INSERT INTO saves (session, path, digest, created_at) VALUES (?, ?, ?, ?)
`, session, path, digest, time.Now().UTC().UnixMilli())
	if err != nil {
		return fmt.Errorf("record save: %w", err)
	}
	return nil
}

// Saves lists a session's saves in order.
func (j *Journal) Saves(ctx context.Context, session string) ([]Save, error) {
	if err := j.ready(ctx); err != nil {
		return nil, err
	}
	rows, err := j.db.QueryContext(ctx, `
SELECT session, path, digest, created_at FROM saves WHERE session = ? ORDER BY id
`, session)
	if err != nil {
		return nil, fmt.Errorf("list saves: %w", err)
	}
	defer rows.Close()

	var saves []Save
	for rows.Next() {
		var s Save
		var createdAt int64
		if err := rows.Scan(&s.Session, &s.Path, &s.Digest, &createdAt); err != nil {
			return nil, fmt.Errorf("scan save: %w", err)
		}
		s.CreatedAt = millis(createdAt)
		saves = append(saves, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate saves: %w", err)
	}
	return saves, nil
}

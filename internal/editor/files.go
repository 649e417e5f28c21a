// If you are AI: This file saves, loads and replays the editor graph.
// Loads are journaled with the document digest; the journal keeps a snapshot so
// replay rebuilds what was loaded even after the file changed.

package editor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gsteditor/internal/core/bus"
	"gsteditor/internal/core/command"
	"gsteditor/internal/core/graphfile"
	"gsteditor/internal/journal"
)

// LoadDirective prefixes the journal line written for a document load.
const LoadDirective = ".load "

// ErrDocumentChanged is returned when a replayed load has no snapshot and the
// file no longer has the journaled digest.
var ErrDocumentChanged = errors.New("document changed since it was loaded")

// Save writes the graph to path and returns the document digest.
func (e *Editor) Save(ctx context.Context, path string) (string, error) {
	digest, err := graphfile.Digest(e.graph)
	if err != nil {
		return "", err
	}
	if err := graphfile.Save(path, e.graph); err != nil {
		e.log.Warn().Err(err).Str("path", path).Msg("save failed")
		return "", err
	}

	if e.journal != nil {
		if err := e.journal.RecordSave(journalContext(ctx), e.session, path, digest); err != nil {
			e.log.Warn().Err(err).Str("path", path).Msg("cannot journal save")
		}
	}
	e.log.Info().Str("path", path).Str("digest", digest).Msg("graph saved")
	e.publish(&bus.Event{Type: bus.EventGraphSaved, Detail: path})
	return digest, nil
}

// Load replaces the graph with the document at path. A document that cannot
// be opened leaves the graph untouched; a malformed one leaves it partially loaded.
func (e *Editor) Load(ctx context.Context, path string) (graphfile.Stats, error) {
	data, err := graphfile.ReadDocument(path)
	if err != nil {
		e.log.Warn().Err(err).Str("path", path).Msg("load failed")
		return graphfile.Stats{}, err
	}
	stats, err := graphfile.Read(bytes.NewReader(data), e.graph, e.listener)
	if err != nil {
		e.log.Warn().Err(err).Str("path", path).Msg("load failed")
		return stats, err
	}

	digest := graphfile.DocumentDigest(data)
	line := loadLine(path, digest)
	if e.journal != nil {
		jctx := journalContext(ctx)
		if err := e.journal.StoreDocument(jctx, digest, data); err != nil {
			e.log.Warn().Err(err).Str("path", path).Msg("cannot store document snapshot")
		}
		if _, err := e.journal.Record(jctx, e.session, line, nil); err != nil {
			e.log.Warn().Err(err).Str("path", path).Msg("cannot journal load")
		}
	}
	e.history = append(e.history, line)
	e.log.Info().
		Str("path", path).
		Str("digest", digest).
		Int("elements", stats.Elements).
		Int("links", stats.Links).
		Int("skipped", stats.Skipped).
		Int("ignored", stats.Ignored).
		Msg("graph loaded")
	e.publish(&bus.Event{Type: bus.EventGraphLoaded, Detail: path})
	return stats, nil
}

// Replay tears the graph down and re-runs the successful entries in order.
// It stops at the first entry that no longer applies and returns how many were applied.
func (e *Editor) Replay(ctx context.Context, entries []journal.Entry) (int, error) {
	e.graph.Clear()
	e.history = nil

	applied := 0
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return applied, err
		}
		if !entry.OK() {
			continue
		}
		if err := e.replayLine(ctx, entry.Line); err != nil {
			return applied, fmt.Errorf("replaying entry %d: %w", entry.Seq, err)
		}
		e.history = append(e.history, entry.Line)
		applied++
	}

	e.log.Info().Int("applied", applied).Msg("journal replayed")
	e.publish(&bus.Event{Type: bus.EventGraphLoaded, Detail: "replay"})
	return applied, nil
}

// replayLine applies one journaled line without journaling it again.
func (e *Editor) replayLine(ctx context.Context, line string) error {
	if rest, ok := strings.CutPrefix(line, LoadDirective); ok {
		path, digest, err := parseLoadLine(rest)
		if err != nil {
			return fmt.Errorf("bad load directive %q: %w", line, err)
		}
		data, err := e.document(ctx, path, digest)
		if err != nil {
			return err
		}
		_, err = graphfile.Read(bytes.NewReader(data), e.graph, e.listener)
		return err
	}

	cmd, err := command.Parse(line)
	if err != nil {
		return err
	}
	_, err = cmd.Execute(e.graph, e.listener)
	return err
}

// document returns the text a journaled load read: the snapshot when one is
// stored, else the file if it still has the journaled digest.
func (e *Editor) document(ctx context.Context, path, digest string) ([]byte, error) {
	if digest != "" && e.docs != nil {
		data, err := e.docs.Document(ctx, digest)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, journal.ErrNoDocument) {
			return nil, err
		}
	}

	data, err := graphfile.ReadDocument(path)
	if err != nil {
		return nil, err
	}
	if digest != "" && graphfile.DocumentDigest(data) != digest {
		return nil, fmt.Errorf("%w: %s", ErrDocumentChanged, path)
	}
	return data, nil
}

// loadLine renders a load directive: `.load "<path>" <digest>`.
func loadLine(path, digest string) string {
	return LoadDirective + strconv.Quote(path) + " " + digest
}

// parseLoadLine splits the arguments of a load directive. The digest is optional.
func parseLoadLine(rest string) (path, digest string, err error) {
	quoted, err := strconv.QuotedPrefix(rest)
	if err != nil {
		return "", "", err
	}
	path, err = strconv.Unquote(quoted)
	if err != nil {
		return "", "", err
	}
	return path, strings.TrimSpace(rest[len(quoted):]), nil
}

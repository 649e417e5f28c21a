// If you are AI: This file defines the editor session that owns one graph.
// Every command line goes through Execute, which journals it and publishes its outcome.

package editor

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"gsteditor/internal/core/bus"
	"gsteditor/internal/core/command"
	"gsteditor/internal/core/factory"
	"gsteditor/internal/core/graph"
	"gsteditor/internal/journal"
)

// Options configure a new editor.
type Options struct {
	Catalog *factory.Catalog // nil means the builtin catalog
	Journal *journal.Journal // nil disables journaling
	Hub     *bus.Hub         // nil disables event publishing
	Logger  zerolog.Logger
	Session string // empty generates a fresh session ID
	// Documents supplies load snapshots during Replay; nil uses Journal.
	Documents Documents
}

// Documents returns document snapshots by digest.
type Documents interface {
	Document(ctx context.Context, digest string) ([]byte, error)
}

// Editor is one editing session. It is not safe for concurrent use;
// serialize access through a Loop or a single-threaded Console.
type Editor struct {
	graph    *graph.Graph
	session  string
	journal  *journal.Journal
	docs     Documents
	hub      *bus.Hub
	log      zerolog.Logger
	listener graph.Listener
	history  []string
}

// New creates an editor with an empty graph.
func New(opts Options) *Editor {
	if opts.Catalog == nil {
		opts.Catalog = factory.Builtin()
	}
	if opts.Session == "" {
		opts.Session = uuid.NewString()
	}
	e := &Editor{
		graph:   graph.New(opts.Catalog),
		session: opts.Session,
		journal: opts.Journal,
		docs:    opts.Documents,
		hub:     opts.Hub,
		log:     opts.Logger.With().Str("session", opts.Session).Logger(),
	}
	if e.docs == nil && opts.Journal != nil {
		e.docs = opts.Journal
	}
	e.listener = &sessionListener{editor: e}
	return e
}

// UseDocuments sets the snapshot source Replay reads journaled loads from.
func (e *Editor) UseDocuments(docs Documents) {
	e.docs = docs
}

// Session returns the session ID.
func (e *Editor) Session() string { return e.session }

// Graph returns the edited graph.
func (e *Editor) Graph() *graph.Graph { return e.graph }

// History returns the successful command lines of this session, in canonical form.
func (e *Editor) History() []string { return append([]string(nil), e.history...) }

// Execute parses and runs one command line. Syntax errors are *command.SyntaxError,
// graph failures are *command.ExecutionError; either way the graph is unchanged.
func (e *Editor) Execute(ctx context.Context, line string) (graph.Ref, error) {
	cmd, err := command.Parse(line)
	if err != nil {
		e.finish(ctx, line, err)
		return graph.Ref{}, err
	}

	canonical := cmd.String()
	ref, err := cmd.Execute(e.graph, e.listener)
	e.finish(ctx, canonical, err)
	if err != nil {
		return graph.Ref{}, err
	}
	e.history = append(e.history, canonical)
	return ref, nil
}

// Suggest returns completion candidates for a partial command line.
func (e *Editor) Suggest(line string) []string {
	return command.Suggest(line, e.graph)
}

// Tree returns a snapshot of the graph.
func (e *Editor) Tree() Tree {
	return Snapshot(e.graph)
}

// WriteTree prints the graph as an indented tree.
func (e *Editor) WriteTree(w io.Writer) error {
	return WriteTree(w, e.graph)
}

// finish journals, logs and publishes the outcome of one command line.
func (e *Editor) finish(ctx context.Context, line string, err error) {
	if e.journal != nil {
		if _, jerr := e.journal.Record(journalContext(ctx), e.session, line, err); jerr != nil {
			e.log.Warn().Err(jerr).Str("command", line).Msg("cannot journal command")
		}
	}

	if err != nil {
		e.log.Info().Err(err).Str("command", line).Msg("command failed")
		e.publish(&bus.Event{Type: bus.EventCommandFailed, Command: line, Detail: err.Error()})
		return
	}
	e.log.Debug().Str("command", line).Msg("command executed")
	e.publish(&bus.Event{Type: bus.EventCommand, Command: line})
}

// journalContext detaches journal writes from caller cancellation: once the
// graph has changed, the record must be written.
func journalContext(ctx context.Context) context.Context {
	return context.WithoutCancel(ctx)
}

// publish sends ev to the hub, if any.
func (e *Editor) publish(ev *bus.Event) {
	if e.hub == nil {
		return
	}
	ev.Session = e.session
	e.hub.Publish(ev)
}

// If you are AI: This file implements the single event loop that serializes editor access.
// Concurrent callers submit work with Do; only the loop goroutine touches the editor.

package editor

import (
	"context"
	"errors"
	"sync/atomic"
)

// ErrLoopStopped is returned by Do after the loop has exited.
var ErrLoopStopped = errors.New("editor loop stopped")

// request is one unit of work for the loop.
type request struct {
	fn   func(*Editor) error
	done chan error
}

// Loop owns an editor and runs submitted work on one goroutine.
type Loop struct {
	editor   *Editor
	requests chan request
	stopped  chan struct{}
	running  atomic.Bool
}

// NewLoop creates a loop around e. Call Run to start serving requests.
func NewLoop(e *Editor) *Loop {
	return &Loop{
		editor:   e,
		requests: make(chan request),
		stopped:  make(chan struct{}),
	}
}

// Run serves requests until ctx is cancelled. It must be called once.
func (l *Loop) Run(ctx context.Context) error {
	l.running.Store(true)
	defer func() {
		l.running.Store(false)
		close(l.stopped)
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case req := <-l.requests:
			req.done <- req.fn(l.editor)
		}
	}
}

// Running reports whether Run is serving requests.
func (l *Loop) Running() bool {
	return l.running.Load()
}

// Do runs fn on the loop goroutine and waits for its result.
// If ctx ends first, fn may still run later but its result is discarded.
func (l *Loop) Do(ctx context.Context, fn func(*Editor) error) error {
	req := request{fn: fn, done: make(chan error, 1)}
	select {
	case l.requests <- req:
	case <-l.stopped:
		return ErrLoopStopped
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-req.done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

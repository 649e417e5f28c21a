// If you are AI: This file defines the two command error categories.
// Syntax errors are reported before any mutation; execution errors wrap the graph cause.

package command

import "fmt"

// SyntaxError reports malformed command text.
type SyntaxError struct {
	Line string
	Msg  string
}

// Error implements error.
func (e *SyntaxError) Error() string {
	return "syntax error: " + e.Msg
}

// ExecutionError reports a command that failed against the graph.
// The graph is unchanged by the failed command.
type ExecutionError struct {
	Command string
	Err     error
}

// Error implements error.
func (e *ExecutionError) Error() string {
	return "cannot run command: " + e.Err.Error()
}

// Unwrap returns the graph error.
func (e *ExecutionError) Unwrap() error {
	return e.Err
}

// syntaxf builds a SyntaxError for line.
func syntaxf(line, format string, args ...any) *SyntaxError {
	return &SyntaxError{Line: line, Msg: fmt.Sprintf(format, args...)}
}

// failed wraps err as the execution error of c.
func failed(c Command, err error) error {
	return &ExecutionError{Command: c.String(), Err: err}
}

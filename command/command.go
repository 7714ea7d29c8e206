// Package command implements undo/redo for structural scene edits.
//
// Editing tools express mutations as Command values and submit them to a
// Stack. Commands report a tri-state Result; only Success moves a command
// into history, so a failed or cancelled edit never pollutes undo.
package command

import (
	"fmt"

	"github.com/yezhang/drawkit/scene"
)

// Command is one reversible structural edit against a scene graph.
//
// Execute and Undo must be symmetric: after a successful Execute, a
// successful Undo restores the graph to its prior observable state.
// Commands may mutate any part of the tree; composing non-commuting
// commands correctly is the command author's responsibility.
type Command interface {
	// Label is a short human-readable description for menus and logs.
	Label() string

	// Execute applies the edit. It is called for the initial execution
	// and again for redo.
	Execute(g *scene.Graph) Result

	// Undo reverts a previously successful Execute.
	Undo(g *scene.Graph) Result
}

type resultKind uint8

const (
	resultSuccess resultKind = iota
	resultCancelled
	resultFailed
)

// Result is the outcome of executing or undoing a command. A command
// failure is a value, not an error: the stack stays consistent and the
// caller decides how to surface it.
type Result struct {
	kind   resultKind
	reason string
}

// Success reports a completed edit.
func Success() Result { return Result{kind: resultSuccess} }

// Cancelled reports an edit that chose not to run (for example a
// zero-delta move). Cancelled edits are not recorded in history.
func Cancelled() Result { return Result{kind: resultCancelled} }

// Failed reports an edit that could not run, with a reason.
func Failed(format string, args ...any) Result {
	return Result{kind: resultFailed, reason: fmt.Sprintf(format, args...)}
}

// IsSuccess reports whether the edit completed.
func (r Result) IsSuccess() bool { return r.kind == resultSuccess }

// IsCancelled reports whether the edit declined to run.
func (r Result) IsCancelled() bool { return r.kind == resultCancelled }

// IsFailed reports whether the edit could not run.
func (r Result) IsFailed() bool { return r.kind == resultFailed }

// Reason returns the failure reason, empty unless IsFailed.
func (r Result) Reason() string { return r.reason }

// String returns a readable form for logs.
func (r Result) String() string {
	switch r.kind {
	case resultSuccess:
		return "success"
	case resultCancelled:
		return "cancelled"
	default:
		return "failed: " + r.reason
	}
}

package command

import (
	"github.com/yezhang/drawkit"
	"github.com/yezhang/drawkit/scene"
)

// DefaultMaxSize is the history cap used when NewStack is given a
// non-positive size.
const DefaultMaxSize = 100

// Stack is a bounded undo/redo history over a scene graph.
//
// Executing a new command clears the redo side; history beyond the cap
// evicts the oldest undo entry, never the newest. Only a Success result
// moves a command between stacks, so the two sides stay disjoint and a
// failed edit leaves history exactly as it was.
//
// The stack is not safe for concurrent use; edits happen on the single
// edit/render goroutine that owns the graph.
type Stack struct {
	undo    []Command
	redo    []Command
	maxSize int
}

// NewStack creates a history with the given cap, or DefaultMaxSize when
// the cap is not positive.
func NewStack(maxSize int) *Stack {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	return &Stack{maxSize: maxSize}
}

// Execute runs cmd against the graph. On success the command is pushed
// onto the undo history and the redo history is cleared; the oldest undo
// entry is evicted when the cap is exceeded. Cancelled and failed
// results leave both histories untouched.
func (s *Stack) Execute(g *scene.Graph, cmd Command) Result {
	res := cmd.Execute(g)
	drawkit.Logger().Debug("command executed", "label", cmd.Label(), "result", res.String())
	if !res.IsSuccess() {
		return res
	}

	s.undo = append(s.undo, cmd)
	if len(s.undo) > s.maxSize {
		copy(s.undo, s.undo[1:])
		s.undo = s.undo[:len(s.undo)-1]
	}
	s.redo = s.redo[:0]
	return res
}

// Undo reverts the most recent command. On success the command moves to
// the redo history. With no history it returns Failed, never a panic.
func (s *Stack) Undo(g *scene.Graph) Result {
	if len(s.undo) == 0 {
		return Failed("nothing to undo")
	}
	cmd := s.undo[len(s.undo)-1]
	res := cmd.Undo(g)
	drawkit.Logger().Debug("command undone", "label", cmd.Label(), "result", res.String())
	if !res.IsSuccess() {
		return res
	}
	s.undo = s.undo[:len(s.undo)-1]
	s.redo = append(s.redo, cmd)
	return res
}

// Redo re-applies the most recently undone command. On success the
// command moves back to the undo history. With nothing undone it returns
// Failed.
func (s *Stack) Redo(g *scene.Graph) Result {
	if len(s.redo) == 0 {
		return Failed("nothing to redo")
	}
	cmd := s.redo[len(s.redo)-1]
	res := cmd.Execute(g)
	drawkit.Logger().Debug("command redone", "label", cmd.Label(), "result", res.String())
	if !res.IsSuccess() {
		return res
	}
	s.redo = s.redo[:len(s.redo)-1]
	s.undo = append(s.undo, cmd)
	return res
}

// CanUndo reports whether Undo has a command to revert.
func (s *Stack) CanUndo() bool { return len(s.undo) > 0 }

// CanRedo reports whether Redo has a command to re-apply.
func (s *Stack) CanRedo() bool { return len(s.redo) > 0 }

// UndoLabel returns the label of the command Undo would revert, or the
// empty string.
func (s *Stack) UndoLabel() string {
	if len(s.undo) == 0 {
		return ""
	}
	return s.undo[len(s.undo)-1].Label()
}

// RedoLabel returns the label of the command Redo would re-apply, or the
// empty string.
func (s *Stack) RedoLabel() string {
	if len(s.redo) == 0 {
		return ""
	}
	return s.redo[len(s.redo)-1].Label()
}

// Len returns the number of undoable commands in history.
func (s *Stack) Len() int { return len(s.undo) }

// Clear drops both histories.
func (s *Stack) Clear() {
	s.undo = s.undo[:0]
	s.redo = s.redo[:0]
}

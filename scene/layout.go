package scene

import "github.com/yezhang/drawkit"

// ChildRect pairs a child block handle with its (mutable) bounds during a
// layout pass. Layout managers rewrite Bounds; they never reorder the
// slice, since child order is z-order.
type ChildRect struct {
	ID     BlockID
	Bounds drawkit.Rect
}

// LayoutManager computes child placement inside a container rectangle.
// Implementations are pure: no side effects beyond writing the provided
// child slice. The Graph copies results back into figure bounds and
// tracks dirtiness, so a manager is never called when nothing changed.
//
// A manager asked to lay out zero children must treat it as a no-op,
// never an error.
type LayoutManager interface {
	// ComputeSize returns the container size needed to hold the children.
	ComputeSize(container drawkit.Rect, children []drawkit.Rect) drawkit.Size

	// Layout rewrites the children's bounds in place.
	Layout(container drawkit.Rect, children []ChildRect)
}

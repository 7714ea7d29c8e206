package scene

import "github.com/yezhang/drawkit"

// FillLayout gives the first child the entire container and leaves later
// children untouched. It suits a single content pane under a viewport.
type FillLayout struct{}

// NewFillLayout creates a fill layout.
func NewFillLayout() *FillLayout { return &FillLayout{} }

// ComputeSize returns the container's own size.
func (l *FillLayout) ComputeSize(container drawkit.Rect, children []drawkit.Rect) drawkit.Size {
	return container.Size()
}

// Layout sets the first child's bounds to the container rectangle. Later
// children keep their bounds; zero children is a no-op.
func (l *FillLayout) Layout(container drawkit.Rect, children []ChildRect) {
	if len(children) == 0 {
		return
	}
	children[0].Bounds = container
}

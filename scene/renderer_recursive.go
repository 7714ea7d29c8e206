package scene

import (
	"github.com/yezhang/drawkit/render"
)

// RecursiveRenderer is the immediate, call-stack-recursive reference
// implementation of the paint sequence. It exists to pin down the
// semantics of [Renderer]: for any tree the two produce identical
// command lists, which the tests assert. Production code should prefer
// Renderer, whose traversal depth is bounded by heap rather than the
// call stack.
type RecursiveRenderer struct {
	graph *Graph
}

// NewRecursiveRenderer creates a recursive renderer over the given graph.
func NewRecursiveRenderer(g *Graph) *RecursiveRenderer {
	return &RecursiveRenderer{graph: g}
}

// Render paints the subtree rooted at root into the canvas.
func (r *RecursiveRenderer) Render(root BlockID, c *render.Canvas) {
	r.paint(root, c)
}

// paint runs the full phase sequence for one block: init properties,
// enter state, paint self in the caller's frame, rewind and enter the
// client area, paint children in document order, rewind again, paint
// border (and highlight) in the caller's frame, exit state.
func (r *RecursiveRenderer) paint(id BlockID, c *render.Canvas) {
	b := r.graph.Block(id)
	if b == nil || !b.Visible {
		return
	}

	b.Figure.InitProperties(c)

	c.PushState()

	b.Figure.PaintFigure(c)

	c.RestoreState()
	enterClientArea(b.Figure, c)

	for _, child := range b.Children {
		r.paint(child, c)
	}

	c.RestoreState()
	b.Figure.PaintBorder(c)
	if b.Selected {
		b.Figure.PaintHighlight(c)
	}

	c.PopState()
}

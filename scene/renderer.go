package scene

import (
	"github.com/yezhang/drawkit"
	"github.com/yezhang/drawkit/render"
)

// paintPhase identifies one step of a block's paint sequence.
type paintPhase uint8

// The seven phases of painting one block, in execution order. The
// sequence is scheduled as explicit tasks so the traversal never grows
// the call stack with tree depth.
const (
	// phaseInitProperties lets the figure set local paint properties
	// (colors, line width) before any geometry is touched.
	phaseInitProperties paintPhase = iota

	// phaseEnterState pushes a state frame so everything the block and
	// its subtree do to the canvas state can be unwound in
	// phaseExitState.
	phaseEnterState

	// phasePaintSelf paints the figure's own background and fill in the
	// caller's frame.
	phasePaintSelf

	// phaseResetState rewinds to the state saved in phaseEnterState
	// (without popping it), then prepares the child coordinate system:
	// local-coordinate figures translate to their inset-adjusted
	// top-left and clip to the client size; absolute figures clip to
	// their bounds without translating.
	phaseResetState

	// phasePaintChildren schedules every visible child's full sequence,
	// in document order, inside the frame set up by phaseResetState.
	phasePaintChildren

	// phasePaintBorder rewinds the child frame, then paints the border
	// above child content, then the selection highlight for selected
	// blocks. Border and highlight use the caller's frame, like
	// phasePaintSelf.
	phasePaintBorder

	// phaseExitState pops the frame pushed in phaseEnterState, restoring
	// the caller's transform and clip exactly.
	phaseExitState
)

// paintTask is one scheduled phase for one block.
type paintTask struct {
	phase paintPhase
	block BlockID
}

// Renderer walks the block tree and emits draw commands into a Canvas.
// Traversal state lives on an explicit heap-allocated task stack, so the
// native call stack stays constant regardless of tree depth.
//
// Invisible blocks are never scheduled: a hidden parent hides its whole
// subtree by omission, not by an inherited flag.
type Renderer struct {
	graph *Graph
	tasks []paintTask
}

// NewRenderer creates a renderer over the given graph. The renderer only
// reads the graph; it can be reused across frames.
func NewRenderer(g *Graph) *Renderer {
	return &Renderer{graph: g, tasks: make([]paintTask, 0, 64)}
}

// Render paints the subtree rooted at root into the canvas. The emitted
// command list is flat and balanced: every PushState marker has a
// matching PopState within this call.
func (r *Renderer) Render(root BlockID, c *render.Canvas) {
	r.tasks = r.tasks[:0]
	r.schedule(root)

	for len(r.tasks) > 0 {
		task := r.tasks[len(r.tasks)-1]
		r.tasks = r.tasks[:len(r.tasks)-1]
		r.execute(task, c)
	}

	drawkit.Logger().Debug("render pass complete", "commands", c.Len())
}

// schedule pushes a block's full phase sequence onto the task stack, in
// reverse so InitProperties pops first. Invisible or stale blocks are
// skipped entirely, descendants included.
func (r *Renderer) schedule(id BlockID) {
	b := r.graph.Block(id)
	if b == nil || !b.Visible {
		return
	}
	r.tasks = append(r.tasks,
		paintTask{phaseExitState, id},
		paintTask{phasePaintBorder, id},
		paintTask{phasePaintChildren, id},
		paintTask{phaseResetState, id},
		paintTask{phasePaintSelf, id},
		paintTask{phaseEnterState, id},
		paintTask{phaseInitProperties, id},
	)
}

func (r *Renderer) execute(task paintTask, c *render.Canvas) {
	b := r.graph.Block(task.block)
	if b == nil {
		return
	}

	switch task.phase {
	case phaseInitProperties:
		b.Figure.InitProperties(c)

	case phaseEnterState:
		c.PushState()

	case phasePaintSelf:
		b.Figure.PaintFigure(c)

	case phaseResetState:
		c.RestoreState()
		enterClientArea(b.Figure, c)

	case phasePaintChildren:
		// Children are scheduled in reverse so the LIFO stack runs their
		// sequences in document order; output z-order matches insertion
		// order.
		for i := len(b.Children) - 1; i >= 0; i-- {
			r.schedule(b.Children[i])
		}

	case phasePaintBorder:
		c.RestoreState()
		b.Figure.PaintBorder(c)
		if b.Selected {
			b.Figure.PaintHighlight(c)
		}

	case phaseExitState:
		c.PopState()
	}
}

// Render paints the graph's content (the contents block when set, else
// the root) into a fresh canvas and returns it.
func (g *Graph) Render() *render.Canvas {
	c := render.NewCanvas()
	g.RenderTo(c)
	return c
}

// RenderTo paints the graph's content into an existing canvas.
func (g *Graph) RenderTo(c *render.Canvas) {
	start := g.contents
	if start.IsNil() {
		start = g.root
	}
	NewRenderer(g).Render(start, c)
}

// enterClientArea sets up the coordinate frame descendants paint in.
//
// Local-coordinate figures translate to their inset-adjusted top-left and
// clip to the client size, so children see an origin at (0, 0). Absolute
// figures clip to their bounds without translating. Insets that exceed
// the bounds produce a non-positive clip: descendants draw nothing, which
// is the contract, not an error.
func enterClientArea(f Figure, c *render.Canvas) {
	bounds := f.Bounds()
	if f.UseLocalCoordinates() {
		in := f.Insets()
		c.Translate(bounds.X+in.Left, bounds.Y+in.Top)
		c.ClipRect(drawkit.NewRect(0, 0, bounds.Width-in.Width(), bounds.Height-in.Height()))
	} else {
		c.ClipRect(bounds)
	}
}

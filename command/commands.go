package command

import (
	"github.com/yezhang/drawkit/scene"
)

// Create adds a new block under a parent. Undo removes the created
// block; redo creates a fresh block (with a new handle) under the same
// parent, so callers must re-query the handle via ID after each execute.
type Create struct {
	Parent scene.BlockID
	Figure scene.Figure

	id scene.BlockID
}

// NewCreate builds a create command for fig under parent.
func NewCreate(parent scene.BlockID, fig scene.Figure) *Create {
	return &Create{Parent: parent, Figure: fig}
}

// Label implements Command.
func (c *Create) Label() string { return "create block" }

// ID returns the handle of the block created by the last successful
// Execute. It is stale after Undo.
func (c *Create) ID() scene.BlockID { return c.id }

// Execute implements Command.
func (c *Create) Execute(g *scene.Graph) Result {
	id, err := g.AddChildTo(c.Parent, c.Figure)
	if err != nil {
		return Failed("create block: %v", err)
	}
	c.id = id
	return Success()
}

// Undo implements Command.
func (c *Create) Undo(g *scene.Graph) Result {
	if err := g.Remove(c.id); err != nil {
		return Failed("undo create: %v", err)
	}
	return Success()
}

// Move translates a block and its whole subtree by a delta.
type Move struct {
	Target scene.BlockID
	Dx, Dy float64
}

// NewMove builds a move command.
func NewMove(target scene.BlockID, dx, dy float64) *Move {
	return &Move{Target: target, Dx: dx, Dy: dy}
}

// Label implements Command.
func (c *Move) Label() string { return "move block" }

// Execute implements Command. A zero-delta move is cancelled rather than
// recorded, so dragging a block back to its start leaves no history.
func (c *Move) Execute(g *scene.Graph) Result {
	if c.Dx == 0 && c.Dy == 0 {
		return Cancelled()
	}
	if !g.Translate(c.Target, c.Dx, c.Dy) {
		return Failed("move block: stale handle")
	}
	return Success()
}

// Undo implements Command.
func (c *Move) Undo(g *scene.Graph) Result {
	if !g.Translate(c.Target, -c.Dx, -c.Dy) {
		return Failed("undo move: stale handle")
	}
	return Success()
}

// SetVisible shows or hides a block (and by omission its subtree).
type SetVisible struct {
	Target  scene.BlockID
	Visible bool

	prev bool
}

// NewSetVisible builds a visibility command.
func NewSetVisible(target scene.BlockID, visible bool) *SetVisible {
	return &SetVisible{Target: target, Visible: visible}
}

// Label implements Command.
func (c *SetVisible) Label() string {
	if c.Visible {
		return "show block"
	}
	return "hide block"
}

// Execute implements Command. Setting the flag to its current value is
// cancelled.
func (c *SetVisible) Execute(g *scene.Graph) Result {
	b := g.Block(c.Target)
	if b == nil {
		return Failed("set visible: stale handle")
	}
	if b.Visible == c.Visible {
		return Cancelled()
	}
	c.prev = b.Visible
	g.SetVisible(c.Target, c.Visible)
	return Success()
}

// Undo implements Command.
func (c *SetVisible) Undo(g *scene.Graph) Result {
	if !g.SetVisible(c.Target, c.prev) {
		return Failed("undo set visible: stale handle")
	}
	return Success()
}

// Reorder moves a block to a new index among its siblings, changing its
// paint and hit-test z-order.
type Reorder struct {
	Target scene.BlockID
	To     int

	from int
}

// NewReorder builds a reorder command placing target at index to within
// its parent's children.
func NewReorder(target scene.BlockID, to int) *Reorder {
	return &Reorder{Target: target, To: to}
}

// Label implements Command.
func (c *Reorder) Label() string { return "reorder block" }

// Execute implements Command.
func (c *Reorder) Execute(g *scene.Graph) Result {
	from, res := c.reorder(g, c.Target, c.To)
	if res.IsSuccess() {
		c.from = from
	}
	return res
}

// Undo implements Command.
func (c *Reorder) Undo(g *scene.Graph) Result {
	_, res := c.reorder(g, c.Target, c.from)
	return res
}

// reorder splices target to index to among its siblings and returns the
// index it previously occupied.
func (c *Reorder) reorder(g *scene.Graph, target scene.BlockID, to int) (int, Result) {
	b := g.Block(target)
	if b == nil {
		return 0, Failed("reorder: stale handle")
	}
	p := g.Block(b.Parent)
	if p == nil {
		return 0, Failed("reorder: block has no parent")
	}

	from := -1
	for i, child := range p.Children {
		if child == target {
			from = i
			break
		}
	}
	if from < 0 {
		return 0, Failed("reorder: block missing from parent's children")
	}
	if to < 0 || to >= len(p.Children) {
		return 0, Failed("reorder: index %d out of range [0, %d)", to, len(p.Children))
	}
	if to == from {
		return from, Cancelled()
	}

	p.Children = append(p.Children[:from], p.Children[from+1:]...)
	p.Children = append(p.Children[:to], append([]scene.BlockID{target}, p.Children[to:]...)...)
	g.Invalidate()
	return from, Success()
}

package scene

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/yezhang/drawkit"
)

// Graph is the scene graph: an arena of blocks forming a tree under a
// synthetic root. The root always exists and its handle is stable for the
// graph's lifetime. User content hangs off an optional "contents" block,
// kept distinct from the root so that overlay layers (window chrome,
// handles) can coexist with content later.
//
// Graph methods that take a BlockID tolerate stale handles: lookups
// return nil and mutations report failure instead of panicking.
type Graph struct {
	blocks   arena
	byUUID   map[uuid.UUID]BlockID
	root     BlockID
	contents BlockID

	layout      LayoutManager
	layoutValid bool
}

// NewGraph creates a graph containing only the synthetic root block.
func NewGraph() *Graph {
	g := &Graph{
		byUUID:      make(map[uuid.UUID]BlockID),
		layoutValid: true,
	}
	root := newRuntimeBlock(NewBaseFigure(drawkit.Rect{}))
	g.root = g.blocks.insert(root)
	root.ID = g.root
	g.byUUID[root.UUID] = g.root
	return g
}

// Root returns the synthetic root block's handle.
func (g *Graph) Root() BlockID { return g.root }

// Contents returns the contents block's handle, or the nil handle when
// no contents have been set.
func (g *Graph) Contents() BlockID { return g.contents }

// Block resolves a handle to its block, or nil when the handle is nil or
// stale.
func (g *Graph) Block(id BlockID) *RuntimeBlock { return g.blocks.get(id) }

// BlockByUUID resolves a UUID to a live block handle.
func (g *Graph) BlockByUUID(u uuid.UUID) (BlockID, bool) {
	id, ok := g.byUUID[u]
	return id, ok
}

// Len returns the number of live blocks, including the synthetic root.
func (g *Graph) Len() int { return g.blocks.len() }

// SetContents creates the user-visible root container under the synthetic
// root and returns its handle. Calling it again replaces the previous
// contents block (the old subtree is removed).
func (g *Graph) SetContents(fig Figure) BlockID {
	if !g.contents.IsNil() {
		_ = g.Remove(g.contents)
	}
	id, _ := g.AddChildTo(g.root, fig)
	g.contents = id
	return id
}

// AddChildTo creates a block for fig and appends it to the parent's
// children, last in z-order. It fails when the parent handle is stale.
func (g *Graph) AddChildTo(parent BlockID, fig Figure) (BlockID, error) {
	p := g.blocks.get(parent)
	if p == nil {
		return BlockID{}, fmt.Errorf("scene: add child: stale parent handle")
	}
	b := newRuntimeBlock(fig)
	id := g.blocks.insert(b)
	b.ID = id
	b.Parent = parent
	p.Children = append(p.Children, id)
	g.byUUID[b.UUID] = id
	g.layoutValid = false
	return id, nil
}

// SetFigure replaces a block's figure in place. The block keeps its
// identity, children, and flags. It reports whether the handle was live.
func (g *Graph) SetFigure(id BlockID, fig Figure) bool {
	b := g.blocks.get(id)
	if b == nil {
		return false
	}
	b.Figure = fig
	g.layoutValid = false
	return true
}

// Remove detaches a block from its parent and frees the block and its
// whole subtree. The synthetic root cannot be removed. Stale handles held
// by callers are invalidated by the arena's generation check.
func (g *Graph) Remove(id BlockID) error {
	if id == g.root {
		return fmt.Errorf("scene: remove: cannot remove the root block")
	}
	b := g.blocks.get(id)
	if b == nil {
		return fmt.Errorf("scene: remove: stale block handle")
	}

	if p := g.blocks.get(b.Parent); p != nil {
		for i, c := range p.Children {
			if c == id {
				p.Children = append(p.Children[:i], p.Children[i+1:]...)
				break
			}
		}
	}
	if id == g.contents {
		g.contents = BlockID{}
	}

	// Free the subtree iteratively; depth is bounded by heap, not stack.
	stack := []BlockID{id}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		cb := g.blocks.get(cur)
		if cb == nil {
			continue
		}
		stack = append(stack, cb.Children...)
		delete(g.byUUID, cb.UUID)
		g.blocks.remove(cur)
	}
	g.layoutValid = false
	return nil
}

// SetVisible sets a block's visibility. Hiding a block omits its whole
// subtree from rendering and hit testing. It reports whether the handle
// was live.
func (g *Graph) SetVisible(id BlockID, visible bool) bool {
	b := g.blocks.get(id)
	if b == nil {
		return false
	}
	b.Visible = visible
	return true
}

// SetEnabled sets a block's enablement. Disabled blocks still render but
// are skipped by the hit tester.
func (g *Graph) SetEnabled(id BlockID, enabled bool) bool {
	b := g.blocks.get(id)
	if b == nil {
		return false
	}
	b.Enabled = enabled
	return true
}

// Translate moves a block by (dx, dy) in the absolute frame and
// propagates the same delta to every descendant's stored bounds. Bounds
// are positions: a structural translate rewrites the whole subtree, it
// does not accumulate a transform node.
func (g *Graph) Translate(id BlockID, dx, dy float64) bool {
	b := g.blocks.get(id)
	if b == nil {
		return false
	}
	stack := []BlockID{id}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		cb := g.blocks.get(cur)
		if cb == nil {
			continue
		}
		cb.Figure.Translate(dx, dy)
		stack = append(stack, cb.Children...)
	}
	return true
}

// SelectSingle marks one block as selected and clears every other
// selection. Pass the nil handle to clear all selections.
func (g *Graph) SelectSingle(id BlockID) {
	g.forEachBlock(func(b *RuntimeBlock) {
		b.Selected = b.ID == id && !id.IsNil()
	})
}

// SelectByRect selects every visible block whose bounds intersect r
// (strict intersection: touching edges do not select), clearing previous
// selections. The synthetic root is never selected.
func (g *Graph) SelectByRect(r drawkit.Rect) []BlockID {
	var selected []BlockID
	g.forEachBlock(func(b *RuntimeBlock) {
		hit := b.ID != g.root && b.Visible && b.Bounds().Intersects(r)
		b.Selected = hit
		if hit {
			selected = append(selected, b.ID)
		}
	})
	return selected
}

// SelectedBlocks returns the handles of all selected blocks.
func (g *Graph) SelectedBlocks() []BlockID {
	var out []BlockID
	g.forEachBlock(func(b *RuntimeBlock) {
		if b.Selected {
			out = append(out, b.ID)
		}
	})
	return out
}

// forEachBlock visits every live block reachable from the root in
// document order, using an explicit stack.
func (g *Graph) forEachBlock(visit func(*RuntimeBlock)) {
	stack := []BlockID{g.root}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		b := g.blocks.get(cur)
		if b == nil {
			continue
		}
		visit(b)
		for i := len(b.Children) - 1; i >= 0; i-- {
			stack = append(stack, b.Children[i])
		}
	}
}

// SetLayoutManager installs the shared layout manager and invalidates
// layout.
func (g *Graph) SetLayoutManager(lm LayoutManager) {
	g.layout = lm
	g.layoutValid = false
}

// Invalidate marks the layout as dirty; the next Revalidate recomputes it.
func (g *Graph) Invalidate() { g.layoutValid = false }

// LayoutValid reports whether the last computed layout is still current.
func (g *Graph) LayoutValid() bool { return g.layoutValid }

// Revalidate recomputes the layout if it is dirty. Repeated calls with no
// intervening mutation are cheap no-ops.
func (g *Graph) Revalidate(container drawkit.Rect) {
	if g.layoutValid {
		return
	}
	g.ApplyLayout(container)
	g.layoutValid = true
}

// layoutContainer returns the block whose children the layout manager
// arranges: the contents block when set, otherwise the root.
func (g *Graph) layoutContainer() *RuntimeBlock {
	if b := g.blocks.get(g.contents); b != nil {
		return b
	}
	return g.blocks.get(g.root)
}

// ApplyLayout runs the layout manager over the layout container's
// children and copies the resulting rects back into figure bounds. With
// no manager installed or no children it is a no-op.
func (g *Graph) ApplyLayout(container drawkit.Rect) {
	c := g.layoutContainer()
	if c == nil {
		return
	}
	g.ApplyLayoutTo(c.ID, container)
}

// ApplyLayoutTo runs the layout manager over an arbitrary block's
// children. The container rectangle is the frame the children are
// positioned in; for a local-coordinate parent that frame starts at
// (0, 0) regardless of the parent's absolute position.
func (g *Graph) ApplyLayoutTo(parent BlockID, container drawkit.Rect) {
	if g.layout == nil {
		return
	}
	c := g.blocks.get(parent)
	if c == nil || len(c.Children) == 0 {
		return
	}

	items := make([]ChildRect, 0, len(c.Children))
	for _, childID := range c.Children {
		if child := g.blocks.get(childID); child != nil {
			items = append(items, ChildRect{ID: childID, Bounds: child.Bounds()})
		}
	}

	g.layout.Layout(container, items)

	for _, item := range items {
		if child := g.blocks.get(item.ID); child != nil {
			child.Figure.SetBounds(item.Bounds)
		}
	}
}

// ComputeLayoutSize asks the layout manager for the container size needed
// by the current children. Without a manager it returns the container's
// own size.
func (g *Graph) ComputeLayoutSize(container drawkit.Rect) drawkit.Size {
	if g.layout == nil {
		return container.Size()
	}
	c := g.layoutContainer()
	if c == nil {
		return container.Size()
	}
	rects := make([]drawkit.Rect, 0, len(c.Children))
	for _, childID := range c.Children {
		if child := g.blocks.get(childID); child != nil {
			rects = append(rects, child.Bounds())
		}
	}
	return g.layout.ComputeSize(container, rects)
}

package scene

import (
	"testing"

	"github.com/yezhang/drawkit"
)

func TestNewGraphHasOnlyRoot(t *testing.T) {
	g := NewGraph()
	if g.Root().IsNil() {
		t.Fatal("root handle is nil")
	}
	if g.Len() != 1 {
		t.Errorf("Len() = %d, want 1", g.Len())
	}
	if !g.Contents().IsNil() {
		t.Error("fresh graph should have no contents block")
	}
}

func TestAddChildTo(t *testing.T) {
	g := NewGraph()
	id, err := g.AddChildTo(g.Root(), NewRectangleFigure(0, 0, 10, 10))
	if err != nil {
		t.Fatalf("AddChildTo: %v", err)
	}

	b := g.Block(id)
	if b == nil {
		t.Fatal("new block does not resolve")
	}
	if b.Parent != g.Root() {
		t.Error("child's Parent is not the root")
	}
	root := g.Block(g.Root())
	if len(root.Children) != 1 || root.Children[0] != id {
		t.Errorf("root children = %v, want [%v]", root.Children, id)
	}
	if !b.Visible || !b.Enabled || b.Selected {
		t.Error("new block should be visible, enabled, unselected")
	}
}

func TestAddChildToStaleParent(t *testing.T) {
	g := NewGraph()
	parent, _ := g.AddChildTo(g.Root(), NewRectangleFigure(0, 0, 10, 10))
	if err := g.Remove(parent); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, err := g.AddChildTo(parent, NewRectangleFigure(0, 0, 5, 5)); err == nil {
		t.Error("AddChildTo with a stale parent should fail")
	}
}

func TestChildOrderIsInsertionOrder(t *testing.T) {
	g := NewGraph()
	a, _ := g.AddChildTo(g.Root(), NewRectangleFigure(0, 0, 10, 10))
	b, _ := g.AddChildTo(g.Root(), NewRectangleFigure(5, 5, 10, 10))
	c, _ := g.AddChildTo(g.Root(), NewRectangleFigure(10, 10, 10, 10))

	children := g.Block(g.Root()).Children
	want := []BlockID{a, b, c}
	if len(children) != 3 {
		t.Fatalf("got %d children, want 3", len(children))
	}
	for i := range want {
		if children[i] != want[i] {
			t.Errorf("children[%d] = %v, want %v", i, children[i], want[i])
		}
	}
}

func TestSetContentsReplacesOld(t *testing.T) {
	g := NewGraph()
	first := g.SetContents(NewViewportFigure(0, 0, 100, 100))
	child, _ := g.AddChildTo(first, NewRectangleFigure(0, 0, 10, 10))

	second := g.SetContents(NewViewportFigure(0, 0, 200, 200))
	if g.Contents() != second {
		t.Error("Contents() does not return the new contents block")
	}
	if g.Block(first) != nil {
		t.Error("old contents block still resolves")
	}
	if g.Block(child) != nil {
		t.Error("old contents subtree still resolves")
	}
	if g.Len() != 2 {
		t.Errorf("Len() = %d, want 2 (root + contents)", g.Len())
	}
}

func TestRemoveSubtree(t *testing.T) {
	g := NewGraph()
	parent, _ := g.AddChildTo(g.Root(), NewRectangleFigure(0, 0, 100, 100))
	child, _ := g.AddChildTo(parent, NewRectangleFigure(10, 10, 50, 50))
	grandchild, _ := g.AddChildTo(child, NewRectangleFigure(20, 20, 10, 10))
	childUUID := g.Block(child).UUID

	if err := g.Remove(parent); err != nil {
		t.Fatalf("Remove: %v", err)
	}

	for _, id := range []BlockID{parent, child, grandchild} {
		if g.Block(id) != nil {
			t.Errorf("block %v still resolves after subtree removal", id)
		}
	}
	if _, ok := g.BlockByUUID(childUUID); ok {
		t.Error("UUID index still has an entry for a removed block")
	}
	if got := len(g.Block(g.Root()).Children); got != 0 {
		t.Errorf("root still has %d children", got)
	}
	if g.Len() != 1 {
		t.Errorf("Len() = %d, want 1", g.Len())
	}
}

func TestRemoveRootRejected(t *testing.T) {
	g := NewGraph()
	if err := g.Remove(g.Root()); err == nil {
		t.Error("removing the root should fail")
	}
	if g.Block(g.Root()) == nil {
		t.Error("root no longer resolves")
	}
}

func TestRemoveStaleHandle(t *testing.T) {
	g := NewGraph()
	id, _ := g.AddChildTo(g.Root(), NewRectangleFigure(0, 0, 1, 1))
	if err := g.Remove(id); err != nil {
		t.Fatalf("first Remove: %v", err)
	}
	if err := g.Remove(id); err == nil {
		t.Error("second Remove with a stale handle should fail")
	}
}

func TestBlockByUUID(t *testing.T) {
	g := NewGraph()
	id, _ := g.AddChildTo(g.Root(), NewRectangleFigure(0, 0, 10, 10))
	u := g.Block(id).UUID

	got, ok := g.BlockByUUID(u)
	if !ok || got != id {
		t.Errorf("BlockByUUID = %v, %v; want %v, true", got, ok, id)
	}
}

func TestSetFigureKeepsIdentity(t *testing.T) {
	g := NewGraph()
	id, _ := g.AddChildTo(g.Root(), NewRectangleFigure(0, 0, 10, 10))
	child, _ := g.AddChildTo(id, NewRectangleFigure(2, 2, 5, 5))
	u := g.Block(id).UUID

	replacement := NewEllipseFigure(0, 0, 20, 20)
	if !g.SetFigure(id, replacement) {
		t.Fatal("SetFigure reported failure for a live handle")
	}

	b := g.Block(id)
	if b.Figure != replacement {
		t.Error("figure was not replaced")
	}
	if b.UUID != u {
		t.Error("UUID changed across SetFigure")
	}
	if len(b.Children) != 1 || b.Children[0] != child {
		t.Error("children changed across SetFigure")
	}
	if g.SetFigure(BlockID{}, replacement) {
		t.Error("SetFigure on the nil handle should report false")
	}
}

func TestTranslatePropagatesToDescendants(t *testing.T) {
	g := NewGraph()
	parent, _ := g.AddChildTo(g.Root(), NewRectangleFigure(0, 0, 100, 100))
	child, _ := g.AddChildTo(parent, NewRectangleFigure(10, 10, 50, 50))

	if !g.Translate(parent, 5, 10) {
		t.Fatal("Translate reported failure for a live handle")
	}

	if got, want := g.Block(parent).Bounds(), drawkit.NewRect(5, 10, 100, 100); got != want {
		t.Errorf("parent bounds = %v, want %v", got, want)
	}
	if got, want := g.Block(child).Bounds(), drawkit.NewRect(15, 20, 50, 50); got != want {
		t.Errorf("child bounds = %v, want %v", got, want)
	}
}

func TestSelectSingle(t *testing.T) {
	g := NewGraph()
	a, _ := g.AddChildTo(g.Root(), NewRectangleFigure(0, 0, 10, 10))
	b, _ := g.AddChildTo(g.Root(), NewRectangleFigure(20, 0, 10, 10))

	g.SelectSingle(a)
	g.SelectSingle(b)

	if g.Block(a).Selected {
		t.Error("previous selection was not cleared")
	}
	if !g.Block(b).Selected {
		t.Error("new selection was not applied")
	}

	g.SelectSingle(BlockID{})
	if sel := g.SelectedBlocks(); len(sel) != 0 {
		t.Errorf("SelectedBlocks after clear = %v, want none", sel)
	}
}

func TestSelectByRect(t *testing.T) {
	g := NewGraph()
	inside, _ := g.AddChildTo(g.Root(), NewRectangleFigure(10, 10, 20, 20))
	outside, _ := g.AddChildTo(g.Root(), NewRectangleFigure(200, 200, 20, 20))
	// Shares only an edge with the selection rect at x=50.
	touching, _ := g.AddChildTo(g.Root(), NewRectangleFigure(50, 10, 20, 20))
	hidden, _ := g.AddChildTo(g.Root(), NewRectangleFigure(15, 15, 5, 5))
	g.SetVisible(hidden, false)

	selected := g.SelectByRect(drawkit.NewRect(0, 0, 50, 50))

	if len(selected) != 1 || selected[0] != inside {
		t.Fatalf("SelectByRect = %v, want [%v]", selected, inside)
	}
	if !g.Block(inside).Selected {
		t.Error("intersecting block not marked selected")
	}
	if g.Block(touching).Selected {
		t.Error("edge-touching block selected; intersection must be strict")
	}
	if g.Block(outside).Selected || g.Block(hidden).Selected {
		t.Error("outside or hidden block selected")
	}
	if g.Block(g.Root()).Selected {
		t.Error("synthetic root selected")
	}
}

func TestSetVisibleAndEnabled(t *testing.T) {
	g := NewGraph()
	id, _ := g.AddChildTo(g.Root(), NewRectangleFigure(0, 0, 10, 10))

	if !g.SetVisible(id, false) || g.Block(id).Visible {
		t.Error("SetVisible(false) did not take effect")
	}
	if !g.SetEnabled(id, false) || g.Block(id).Enabled {
		t.Error("SetEnabled(false) did not take effect")
	}
	if g.SetVisible(BlockID{}, true) || g.SetEnabled(BlockID{}, true) {
		t.Error("flag setters should report false on the nil handle")
	}
}

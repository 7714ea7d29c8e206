package scene

import (
	"testing"

	"github.com/yezhang/drawkit"
)

// countingLayout wraps a LayoutManager and counts Layout invocations.
type countingLayout struct {
	LayoutManager
	calls int
}

func (l *countingLayout) Layout(container drawkit.Rect, children []ChildRect) {
	l.calls++
	l.LayoutManager.Layout(container, children)
}

func TestFillLayout(t *testing.T) {
	l := NewFillLayout()
	container := drawkit.NewRect(10, 20, 300, 200)
	children := []ChildRect{
		{Bounds: drawkit.NewRect(0, 0, 50, 50)},
		{Bounds: drawkit.NewRect(5, 5, 10, 10)},
	}

	l.Layout(container, children)

	if children[0].Bounds != container {
		t.Errorf("first child = %v, want the container %v", children[0].Bounds, container)
	}
	if want := drawkit.NewRect(5, 5, 10, 10); children[1].Bounds != want {
		t.Errorf("second child = %v, want untouched %v", children[1].Bounds, want)
	}
	if got := l.ComputeSize(container, nil); got != container.Size() {
		t.Errorf("ComputeSize = %v, want %v", got, container.Size())
	}

	// Zero children is a no-op, never an error.
	l.Layout(container, nil)
}

func TestXYLayoutStacksChildren(t *testing.T) {
	l := NewXYLayout()
	container := drawkit.NewRect(0, 0, 200, 400)
	children := []ChildRect{
		{Bounds: drawkit.NewRect(50, 50, 30, 40)},
		{Bounds: drawkit.NewRect(0, 0, 80, 20)},
	}

	l.Layout(container, children)

	if want := drawkit.NewRect(10, 10, 180, 40); children[0].Bounds != want {
		t.Errorf("first child = %v, want %v", children[0].Bounds, want)
	}
	if want := drawkit.NewRect(10, 60, 180, 20); children[1].Bounds != want {
		t.Errorf("second child = %v, want %v", children[1].Bounds, want)
	}
}

func TestXYLayoutOffsetContainer(t *testing.T) {
	l := NewXYLayout()
	container := drawkit.NewRect(100, 200, 120, 300)
	children := []ChildRect{{Bounds: drawkit.NewRect(0, 0, 40, 30)}}

	l.Layout(container, children)

	if want := drawkit.NewRect(110, 210, 100, 30); children[0].Bounds != want {
		t.Errorf("child = %v, want %v", children[0].Bounds, want)
	}
}

func TestXYLayoutComputeSize(t *testing.T) {
	l := NewXYLayout()
	container := drawkit.NewRect(0, 0, 200, 400)
	children := []drawkit.Rect{
		drawkit.NewRect(0, 0, 30, 40),
		drawkit.NewRect(0, 0, 80, 20),
	}

	got := l.ComputeSize(container, children)
	want := drawkit.Size{Width: 200, Height: 10 + 40 + 10 + 20 + 10}
	if got != want {
		t.Errorf("ComputeSize = %v, want %v", got, want)
	}

	// A child wider than the container stretches the computed width.
	wide := []drawkit.Rect{drawkit.NewRect(0, 0, 500, 10)}
	if got := l.ComputeSize(container, wide); got.Width != 520 {
		t.Errorf("ComputeSize width = %v, want 520", got.Width)
	}

	if got := l.ComputeSize(container, nil); got.Height != 20 {
		t.Errorf("ComputeSize with no children height = %v, want margins only", got.Height)
	}
}

func TestGraphApplyLayout(t *testing.T) {
	g := NewGraph()
	contents := g.SetContents(NewViewportFigure(0, 0, 200, 400))
	a, _ := g.AddChildTo(contents, NewRectangleFigure(50, 50, 30, 40))
	b, _ := g.AddChildTo(contents, NewRectangleFigure(0, 0, 80, 20))
	g.SetLayoutManager(NewXYLayout())

	g.ApplyLayout(drawkit.NewRect(0, 0, 200, 400))

	if want := drawkit.NewRect(10, 10, 180, 40); g.Block(a).Bounds() != want {
		t.Errorf("first child = %v, want %v", g.Block(a).Bounds(), want)
	}
	if want := drawkit.NewRect(10, 60, 180, 20); g.Block(b).Bounds() != want {
		t.Errorf("second child = %v, want %v", g.Block(b).Bounds(), want)
	}
}

func TestGraphApplyLayoutTo(t *testing.T) {
	g := NewGraph()
	contents := g.SetContents(NewViewportFigure(0, 0, 400, 400))
	panel, _ := g.AddChildTo(contents, NewViewportFigure(50, 50, 100, 200))
	item, _ := g.AddChildTo(panel, NewRectangleFigure(0, 0, 20, 30))
	g.SetLayoutManager(NewXYLayout())

	// Local-coordinate panel: children are laid out in a frame starting
	// at the origin, not at the panel's absolute position.
	g.ApplyLayoutTo(panel, drawkit.NewRect(0, 0, 100, 200))

	if want := drawkit.NewRect(10, 10, 80, 30); g.Block(item).Bounds() != want {
		t.Errorf("item = %v, want %v", g.Block(item).Bounds(), want)
	}
	// The contents block's own children are untouched.
	if want := drawkit.NewRect(50, 50, 100, 200); g.Block(panel).Bounds() != want {
		t.Errorf("panel = %v, want %v", g.Block(panel).Bounds(), want)
	}
}

func TestGraphApplyLayoutWithoutManager(t *testing.T) {
	g := NewGraph()
	contents := g.SetContents(NewViewportFigure(0, 0, 100, 100))
	id, _ := g.AddChildTo(contents, NewRectangleFigure(5, 5, 10, 10))

	g.ApplyLayout(drawkit.NewRect(0, 0, 100, 100))

	if want := drawkit.NewRect(5, 5, 10, 10); g.Block(id).Bounds() != want {
		t.Errorf("bounds changed without a layout manager: %v", g.Block(id).Bounds())
	}
	if got := g.ComputeLayoutSize(drawkit.NewRect(0, 0, 100, 100)); got != (drawkit.Size{Width: 100, Height: 100}) {
		t.Errorf("ComputeLayoutSize without a manager = %v, want the container size", got)
	}
}

func TestGraphRevalidateIsLazy(t *testing.T) {
	g := NewGraph()
	contents := g.SetContents(NewViewportFigure(0, 0, 200, 400))
	g.AddChildTo(contents, NewRectangleFigure(0, 0, 30, 40))

	spy := &countingLayout{LayoutManager: NewXYLayout()}
	g.SetLayoutManager(spy)
	if g.LayoutValid() {
		t.Fatal("installing a manager should invalidate layout")
	}

	container := drawkit.NewRect(0, 0, 200, 400)
	g.Revalidate(container)
	g.Revalidate(container)
	if spy.calls != 1 {
		t.Errorf("Layout ran %d times, want 1 (second Revalidate must be a no-op)", spy.calls)
	}
	if !g.LayoutValid() {
		t.Error("layout should be valid after Revalidate")
	}

	g.Invalidate()
	g.Revalidate(container)
	if spy.calls != 2 {
		t.Errorf("Layout ran %d times after Invalidate, want 2", spy.calls)
	}
}

func TestGraphMutationInvalidatesLayout(t *testing.T) {
	g := NewGraph()
	contents := g.SetContents(NewViewportFigure(0, 0, 100, 100))
	g.SetLayoutManager(NewFillLayout())
	g.Revalidate(drawkit.NewRect(0, 0, 100, 100))

	id, _ := g.AddChildTo(contents, NewRectangleFigure(0, 0, 10, 10))
	if g.LayoutValid() {
		t.Error("adding a child should invalidate layout")
	}

	g.Revalidate(drawkit.NewRect(0, 0, 100, 100))
	if err := g.Remove(id); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if g.LayoutValid() {
		t.Error("removing a block should invalidate layout")
	}
}

func TestGraphComputeLayoutSize(t *testing.T) {
	g := NewGraph()
	contents := g.SetContents(NewViewportFigure(0, 0, 200, 400))
	g.AddChildTo(contents, NewRectangleFigure(0, 0, 30, 40))
	g.AddChildTo(contents, NewRectangleFigure(0, 0, 80, 20))
	g.SetLayoutManager(NewXYLayout())

	got := g.ComputeLayoutSize(drawkit.NewRect(0, 0, 200, 400))
	want := drawkit.Size{Width: 200, Height: 90}
	if got != want {
		t.Errorf("ComputeLayoutSize = %v, want %v", got, want)
	}
}

package render

import (
	"testing"

	"github.com/yezhang/drawkit"
)

func TestCanvasStateStack(t *testing.T) {
	c := NewCanvas()

	c.PushState()
	c.Translate(10, 20)
	if got := c.Transform().Translation(); got != drawkit.Pt(10, 20) {
		t.Errorf("transform after translate = %+v", got)
	}

	c.PushState()
	c.Translate(5, 5)
	if got := c.Transform().Translation(); got != drawkit.Pt(15, 25) {
		t.Errorf("nested transform = %+v", got)
	}

	// RestoreState rewinds without popping.
	c.RestoreState()
	if got := c.Transform().Translation(); got != drawkit.Pt(10, 20) {
		t.Errorf("transform after restore = %+v", got)
	}
	if got := c.StackDepth(); got != 2 {
		t.Errorf("StackDepth after restore = %d, want 2", got)
	}

	c.PopState()
	c.PopState()
	if got := c.StackDepth(); got != 0 {
		t.Errorf("StackDepth after pops = %d, want 0", got)
	}
	if got := c.Transform().Translation(); got != drawkit.Pt(0, 0) {
		t.Errorf("transform after pops = %+v", got)
	}
}

func TestCanvasPopOnEmptyStackIsNoop(t *testing.T) {
	c := NewCanvas()
	c.PopState()
	c.RestoreState()
	if c.Len() != 0 {
		t.Errorf("unbalanced pop/restore emitted %d commands, want 0", c.Len())
	}
}

func TestCanvasClipIntersection(t *testing.T) {
	c := NewCanvas()

	c.ClipRect(drawkit.NewRect(0, 0, 100, 100))
	c.ClipRect(drawkit.NewRect(50, 50, 100, 100))

	clip, ok := c.Clip()
	if !ok {
		t.Fatal("no clip set")
	}
	if clip != drawkit.NewRect(50, 50, 50, 50) {
		t.Errorf("clip = %+v, want (50,50,50,50)", clip)
	}

	// A disjoint clip collapses to a degenerate region but is still recorded.
	c.ClipRect(drawkit.NewRect(500, 500, 10, 10))
	clip, _ = c.Clip()
	if !clip.IsEmpty() {
		t.Errorf("disjoint clip should be empty, got %+v", clip)
	}
	if c.Len() != 3 {
		t.Errorf("recorded %d commands, want 3 clip commands", c.Len())
	}
}

func TestCanvasClipAcrossTranslate(t *testing.T) {
	c := NewCanvas()

	c.ClipRect(drawkit.NewRect(0, 0, 100, 100))
	c.Translate(40, 40)
	// Given in the translated frame; spans (40,40)-(120,120) in the
	// base frame, so the tracked intersection is (40,40)-(100,100).
	c.ClipRect(drawkit.NewRect(0, 0, 80, 80))

	clip, ok := c.Clip()
	if !ok {
		t.Fatal("no clip set")
	}
	if want := drawkit.NewRect(40, 40, 60, 60); clip != want {
		t.Errorf("clip = %+v, want %+v in the base frame", clip, want)
	}

	// The emitted command still carries the frame-relative rectangle.
	last := c.Commands()[c.Len()-1].(ClipRectCommand)
	if want := drawkit.NewRect(0, 0, 80, 80); last.Rect != want {
		t.Errorf("emitted clip = %+v, want %+v", last.Rect, want)
	}
}

func TestCanvasClipRestoredByPop(t *testing.T) {
	c := NewCanvas()
	c.ClipRect(drawkit.NewRect(0, 0, 100, 100))
	c.PushState()
	c.ClipRect(drawkit.NewRect(10, 10, 20, 20))
	c.PopState()

	clip, ok := c.Clip()
	if !ok || clip != drawkit.NewRect(0, 0, 100, 100) {
		t.Errorf("clip after pop = %+v (set=%v), want outer clip", clip, ok)
	}
}

func TestCanvasColorResolution(t *testing.T) {
	c := NewCanvas()
	red := drawkit.RGB(1, 0, 0)
	blue := drawkit.RGB(0, 0, 1)

	c.SetFillColor(red)
	c.FillRect(drawkit.NewRect(0, 0, 10, 10))
	c.SetFillColor(blue)
	c.FillRect(drawkit.NewRect(0, 0, 10, 10))

	cmds := c.Commands()
	if len(cmds) != 2 {
		t.Fatalf("len(commands) = %d, want 2 (color setters emit no commands)", len(cmds))
	}
	if got := cmds[0].(FillRectCommand).Color; got != red {
		t.Errorf("first fill color = %+v, want red", got)
	}
	if got := cmds[1].(FillRectCommand).Color; got != blue {
		t.Errorf("second fill color = %+v, want blue", got)
	}
}

func TestCanvasPaintPropertiesRestored(t *testing.T) {
	c := NewCanvas()
	red := drawkit.RGB(1, 0, 0)

	c.SetFillColor(red)
	c.PushState()
	c.SetFillColor(drawkit.RGB(0, 1, 0))
	c.PopState()
	c.FillRect(drawkit.NewRect(0, 0, 1, 1))

	cmds := c.Commands()
	fill := cmds[len(cmds)-1].(FillRectCommand)
	if fill.Color != red {
		t.Errorf("fill color after pop = %+v, want red", fill.Color)
	}
}

func TestCanvasReset(t *testing.T) {
	c := NewCanvas()
	c.PushState()
	c.FillRect(drawkit.NewRect(0, 0, 10, 10))
	c.Reset()

	if c.Len() != 0 || c.StackDepth() != 0 {
		t.Errorf("Reset left %d commands, depth %d", c.Len(), c.StackDepth())
	}
	if !c.Transform().IsIdentity() {
		t.Error("Reset did not restore identity transform")
	}
}

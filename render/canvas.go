package render

import (
	"image"
	"math"

	"github.com/yezhang/drawkit"
)

// canvasState stores the graphics state for PushState/RestoreState/PopState.
type canvasState struct {
	transform drawkit.Matrix
	clip      drawkit.Rect
	hasClip   bool
	fill      drawkit.RGBA
	stroke    drawkit.RGBA
	lineWidth float64
}

// Canvas records drawing operations as commands while tracking its own
// graphics-state stack. Figures draw into a Canvas during rendering; the
// recorded commands are then wrapped in a DisplayList and replayed to a
// backend.
//
// The state tracked here deliberately mirrors what a backend tracks when
// replaying the output: every PushState call pushes exactly one snapshot
// and emits exactly one marker, so the two stacks stay isomorphic by
// construction. There is no conditional pop.
//
// The Canvas is not safe for concurrent use.
type Canvas struct {
	commands []Command
	current  canvasState
	stack    []canvasState
}

// NewCanvas creates an empty canvas with identity transform, no clip,
// black fill and stroke, and 1px line width.
func NewCanvas() *Canvas {
	return &Canvas{
		commands: make([]Command, 0, 256),
		current: canvasState{
			transform: drawkit.Identity(),
			fill:      drawkit.Black,
			stroke:    drawkit.Black,
			lineWidth: 1,
		},
	}
}

// Reset clears the canvas for reuse without deallocating command storage.
func (c *Canvas) Reset() {
	c.commands = c.commands[:0]
	c.stack = c.stack[:0]
	c.current = canvasState{
		transform: drawkit.Identity(),
		fill:      drawkit.Black,
		stroke:    drawkit.Black,
		lineWidth: 1,
	}
}

// Commands returns the recorded commands in paint order.
// The slice is owned by the canvas; callers must copy it to retain it
// across Reset.
func (c *Canvas) Commands() []Command { return c.commands }

// Len returns the number of recorded commands.
func (c *Canvas) Len() int { return len(c.commands) }

// StackDepth returns the current depth of the state stack. It is zero
// after a balanced render pass.
func (c *Canvas) StackDepth() int { return len(c.stack) }

// PushState saves the current state and emits a PushState marker.
func (c *Canvas) PushState() {
	c.stack = append(c.stack, c.current)
	c.commands = append(c.commands, PushStateCommand{})
}

// RestoreState rewinds to the most recent PushState snapshot without
// popping it and emits a RestoreState marker. It is a no-op on an empty
// stack.
func (c *Canvas) RestoreState() {
	if len(c.stack) == 0 {
		return
	}
	c.current = c.stack[len(c.stack)-1]
	c.commands = append(c.commands, RestoreStateCommand{})
}

// PopState pops the most recent snapshot, restores it, and emits a
// PopState marker. It is a no-op on an empty stack.
func (c *Canvas) PopState() {
	if len(c.stack) == 0 {
		return
	}
	c.current = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	c.commands = append(c.commands, PopStateCommand{})
}

// Translate concatenates a translation onto the current transform.
func (c *Canvas) Translate(x, y float64) {
	c.concat(drawkit.Translate(x, y))
}

// Scale concatenates a scale onto the current transform.
func (c *Canvas) Scale(x, y float64) {
	c.concat(drawkit.Scale(x, y))
}

// ConcatTransform concatenates an arbitrary transform onto the current one.
func (c *Canvas) ConcatTransform(m drawkit.Matrix) {
	c.concat(m)
}

func (c *Canvas) concat(m drawkit.Matrix) {
	c.current.transform = c.current.transform.Multiply(m)
	c.commands = append(c.commands, ConcatTransformCommand{Matrix: m})
}

// Transform returns the current cumulative transform.
func (c *Canvas) Transform() drawkit.Matrix { return c.current.transform }

// ClipRect intersects the clip region with r in the current frame and
// emits a ClipRect command. A rectangle with non-positive extent is
// recorded as-is; it clips everything away, which is the "draw nothing"
// contract for figures whose insets exceed their bounds.
//
// The tracked clip is kept in the canvas's base frame so rectangles
// given under different transforms intersect in one coordinate system.
func (c *Canvas) ClipRect(r drawkit.Rect) {
	if r.IsEmpty() {
		drawkit.Logger().Debug("degenerate clip rect", "x", r.X, "y", r.Y, "w", r.Width, "h", r.Height)
	}
	base := c.toBaseFrame(r)
	if c.current.hasClip {
		if clipped, ok := c.current.clip.Intersection(base); ok {
			c.current.clip = clipped
		} else {
			c.current.clip = drawkit.Rect{X: base.X, Y: base.Y}
		}
	} else {
		c.current.clip = base
		c.current.hasClip = true
	}
	c.commands = append(c.commands, ClipRectCommand{Rect: r})
}

// toBaseFrame maps r through the current transform into the base frame.
// Pure translations map exactly, preserving degenerate (non-positive)
// extents; other transforms map to the bounding box of the transformed
// corners.
func (c *Canvas) toBaseFrame(r drawkit.Rect) drawkit.Rect {
	m := c.current.transform
	if m.IsTranslation() {
		return r.Translate(m.C, m.F)
	}
	corners := [4]drawkit.Point{
		{X: r.X, Y: r.Y},
		{X: r.X + r.Width, Y: r.Y},
		{X: r.X, Y: r.Y + r.Height},
		{X: r.X + r.Width, Y: r.Y + r.Height},
	}
	p := m.TransformPoint(corners[0])
	minX, minY, maxX, maxY := p.X, p.Y, p.X, p.Y
	for _, q := range corners[1:] {
		t := m.TransformPoint(q)
		minX = math.Min(minX, t.X)
		minY = math.Min(minY, t.Y)
		maxX = math.Max(maxX, t.X)
		maxY = math.Max(maxY, t.Y)
	}
	return drawkit.NewRect(minX, minY, maxX-minX, maxY-minY)
}

// Clip returns the current clip rectangle in the canvas's base frame,
// and whether a clip is set.
func (c *Canvas) Clip() (drawkit.Rect, bool) {
	return c.current.clip, c.current.hasClip
}

// SetFillColor sets the current fill color. The color is resolved into
// each shape command at emission; no command is recorded here.
func (c *Canvas) SetFillColor(col drawkit.RGBA) { c.current.fill = col }

// SetStrokeColor sets the current stroke color.
func (c *Canvas) SetStrokeColor(col drawkit.RGBA) { c.current.stroke = col }

// SetLineWidth sets the current stroke width.
func (c *Canvas) SetLineWidth(w float64) { c.current.lineWidth = w }

// FillRect fills a rectangle with the current fill color.
func (c *Canvas) FillRect(r drawkit.Rect) {
	c.commands = append(c.commands, FillRectCommand{Rect: r, Color: c.current.fill})
}

// StrokeRect strokes a rectangle outline with the current stroke color
// and line width.
func (c *Canvas) StrokeRect(r drawkit.Rect) {
	c.commands = append(c.commands, StrokeRectCommand{Rect: r, Color: c.current.stroke, Width: c.current.lineWidth})
}

// Line strokes a line segment with the current stroke color and width.
func (c *Canvas) Line(from, to drawkit.Point) {
	c.commands = append(c.commands, LineCommand{From: from, To: to, Color: c.current.stroke, Width: c.current.lineWidth})
}

// FillEllipse fills the ellipse inscribed in bounds with the current fill
// color.
func (c *Canvas) FillEllipse(bounds drawkit.Rect) {
	c.commands = append(c.commands, FillEllipseCommand{Bounds: bounds, Color: c.current.fill})
}

// StrokeEllipse strokes the ellipse inscribed in bounds.
func (c *Canvas) StrokeEllipse(bounds drawkit.Rect) {
	c.commands = append(c.commands, StrokeEllipseCommand{Bounds: bounds, Color: c.current.stroke, Width: c.current.lineWidth})
}

// FillPath fills a closed polyline path with the current fill color.
// The point slice is copied.
func (c *Canvas) FillPath(points []drawkit.Point) {
	pts := make([]drawkit.Point, len(points))
	copy(pts, points)
	c.commands = append(c.commands, FillPathCommand{Points: pts, Color: c.current.fill})
}

// StrokePath strokes a polyline path with the current stroke color and
// width. The point slice is copied.
func (c *Canvas) StrokePath(points []drawkit.Point, closed bool) {
	pts := make([]drawkit.Point, len(points))
	copy(pts, points)
	c.commands = append(c.commands, StrokePathCommand{Points: pts, Closed: closed, Color: c.current.stroke, Width: c.current.lineWidth})
}

// DrawImage draws an image scaled into the destination rectangle.
func (c *Canvas) DrawImage(img image.Image, dst drawkit.Rect) {
	c.commands = append(c.commands, DrawImageCommand{Image: img, Dst: dst})
}

// DrawText draws a text run at a baseline origin with the current fill
// color.
func (c *Canvas) DrawText(s string, origin drawkit.Point, size float64) {
	c.commands = append(c.commands, DrawTextCommand{Text: s, Origin: origin, Size: size, Color: c.current.fill})
}

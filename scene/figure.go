package scene

import (
	"github.com/yezhang/drawkit"
	"github.com/yezhang/drawkit/render"
)

// Figure is the drawable capability a value must implement to participate
// in rendering and hit testing. A figure owns only its own geometric and
// style state; tree relationships live in RuntimeBlock.
//
// Bounds are always absolute coordinates in the scene's global frame.
// A figure that reports UseLocalCoordinates still keeps absolute bounds
// for itself, but its children are painted with an additional translation
// to the figure's inset-adjusted top-left. This is a per-figure paint-time
// capability; it never changes stored bounds.
type Figure interface {
	// Bounds returns the figure's bounds in the absolute scene frame.
	Bounds() drawkit.Rect

	// SetBounds replaces the figure's bounds. Layout managers position
	// children through this.
	SetBounds(drawkit.Rect)

	// Translate moves the figure by (dx, dy) in the absolute frame.
	Translate(dx, dy float64)

	// InitProperties sets local paint properties (colors, line width)
	// on the canvas before any geometry is touched.
	InitProperties(c *render.Canvas)

	// PaintFigure paints the figure's own background and fill.
	PaintFigure(c *render.Canvas)

	// PaintBorder paints the figure's border or outline. It runs after
	// the children so borders sit above child content.
	PaintBorder(c *render.Canvas)

	// PaintHighlight paints the selection highlight. Called only for
	// selected blocks, after PaintBorder.
	PaintHighlight(c *render.Canvas)

	// UseLocalCoordinates reports whether children paint in a frame
	// whose origin is this figure's inset-adjusted top-left.
	UseLocalCoordinates() bool

	// Insets returns the padding between the figure's bounds and its
	// client area.
	Insets() drawkit.Insets
}

// BaseFigure is a minimal Figure with bounds and no visual output of its
// own. Concrete figures embed it to inherit defaults (absolute
// coordinates, zero insets, no border, stock highlight).
type BaseFigure struct {
	bounds drawkit.Rect
}

// NewBaseFigure creates a base figure with the given bounds.
func NewBaseFigure(bounds drawkit.Rect) *BaseFigure {
	return &BaseFigure{bounds: bounds}
}

// Bounds returns the figure's absolute bounds.
func (f *BaseFigure) Bounds() drawkit.Rect { return f.bounds }

// SetBounds replaces the figure's bounds.
func (f *BaseFigure) SetBounds(r drawkit.Rect) { f.bounds = r }

// Translate moves the figure by (dx, dy).
func (f *BaseFigure) Translate(dx, dy float64) {
	f.bounds.X += dx
	f.bounds.Y += dy
}

// InitProperties is a no-op by default.
func (f *BaseFigure) InitProperties(c *render.Canvas) {}

// PaintFigure is a no-op by default.
func (f *BaseFigure) PaintFigure(c *render.Canvas) {}

// PaintBorder is a no-op by default.
func (f *BaseFigure) PaintBorder(c *render.Canvas) {}

// PaintHighlight paints the stock selection highlight: an orange outline
// inflated slightly beyond the bounds.
func (f *BaseFigure) PaintHighlight(c *render.Canvas) {
	c.SetStrokeColor(highlightColor)
	c.SetLineWidth(2)
	c.StrokeRect(f.bounds.Inflate(2, 2))
}

// UseLocalCoordinates reports false: children paint in absolute
// coordinates.
func (f *BaseFigure) UseLocalCoordinates() bool { return false }

// Insets returns zero insets.
func (f *BaseFigure) Insets() drawkit.Insets { return drawkit.Insets{} }

// highlightColor is the stock selection color.
var highlightColor = drawkit.Hex("#f39c12")

package scene

import (
	"github.com/yezhang/drawkit"
	"github.com/yezhang/drawkit/render"
)

// ViewportFigure is a container that paints its children in local
// coordinates: during painting the renderer translates to the viewport's
// inset-adjusted top-left and clips to the remaining client area, so
// descendants see an origin at (0, 0). The viewport's own bounds stay
// absolute, like every figure's.
type ViewportFigure struct {
	BaseFigure
	Background  drawkit.RGBA
	Border      drawkit.RGBA
	BorderWidth float64
	insets      drawkit.Insets
}

// NewViewportFigure creates a viewport with a transparent background and
// no insets.
func NewViewportFigure(x, y, width, height float64) *ViewportFigure {
	return &ViewportFigure{
		BaseFigure: *NewBaseFigure(drawkit.NewRect(x, y, width, height)),
	}
}

// SetInsets sets the padding between the viewport's bounds and its
// client area. Insets larger than the bounds yield a non-positive clip:
// children are then clipped away entirely, which is the documented
// behavior, not an error.
func (f *ViewportFigure) SetInsets(in drawkit.Insets) { f.insets = in }

// UseLocalCoordinates reports true: children paint relative to the
// inset-adjusted top-left.
func (f *ViewportFigure) UseLocalCoordinates() bool { return true }

// Insets returns the configured insets.
func (f *ViewportFigure) Insets() drawkit.Insets { return f.insets }

// PaintFigure fills the viewport background when it is not fully
// transparent.
func (f *ViewportFigure) PaintFigure(c *render.Canvas) {
	if f.Background.A == 0 {
		return
	}
	c.SetFillColor(f.Background)
	c.FillRect(f.Bounds())
}

// PaintBorder strokes the viewport's frame when configured.
func (f *ViewportFigure) PaintBorder(c *render.Canvas) {
	if f.BorderWidth <= 0 {
		return
	}
	c.SetStrokeColor(f.Border)
	c.SetLineWidth(f.BorderWidth)
	c.StrokeRect(f.Bounds())
}

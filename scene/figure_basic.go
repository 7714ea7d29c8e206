package scene

import (
	"image"

	"github.com/yezhang/drawkit"
	"github.com/yezhang/drawkit/render"
)

// defaultFill is the fill used by shape figures unless overridden.
var defaultFill = drawkit.Hex("#3498db")

// RectangleFigure is a filled rectangle with an optional stroked border.
type RectangleFigure struct {
	BaseFigure
	Fill        drawkit.RGBA
	Stroke      drawkit.RGBA
	StrokeWidth float64
}

// NewRectangleFigure creates a rectangle figure with the default fill and
// no border.
func NewRectangleFigure(x, y, width, height float64) *RectangleFigure {
	return &RectangleFigure{
		BaseFigure: *NewBaseFigure(drawkit.NewRect(x, y, width, height)),
		Fill:       defaultFill,
	}
}

// WithStroke sets a stroked border and returns the figure.
func (f *RectangleFigure) WithStroke(color drawkit.RGBA, width float64) *RectangleFigure {
	f.Stroke = color
	f.StrokeWidth = width
	return f
}

// InitProperties sets the figure's colors on the canvas.
func (f *RectangleFigure) InitProperties(c *render.Canvas) {
	c.SetFillColor(f.Fill)
	if f.StrokeWidth > 0 {
		c.SetStrokeColor(f.Stroke)
		c.SetLineWidth(f.StrokeWidth)
	}
}

// PaintFigure fills the rectangle.
func (f *RectangleFigure) PaintFigure(c *render.Canvas) {
	c.SetFillColor(f.Fill)
	c.FillRect(f.Bounds())
}

// PaintBorder strokes the rectangle outline when a border is configured.
func (f *RectangleFigure) PaintBorder(c *render.Canvas) {
	if f.StrokeWidth <= 0 {
		return
	}
	c.SetStrokeColor(f.Stroke)
	c.SetLineWidth(f.StrokeWidth)
	c.StrokeRect(f.Bounds())
}

// EllipseFigure is a filled ellipse inscribed in its bounds, with an
// optional stroked outline.
type EllipseFigure struct {
	BaseFigure
	Fill        drawkit.RGBA
	Stroke      drawkit.RGBA
	StrokeWidth float64
}

// NewEllipseFigure creates an ellipse figure with the default fill.
func NewEllipseFigure(x, y, width, height float64) *EllipseFigure {
	return &EllipseFigure{
		BaseFigure: *NewBaseFigure(drawkit.NewRect(x, y, width, height)),
		Fill:       defaultFill,
	}
}

// PaintFigure fills the ellipse.
func (f *EllipseFigure) PaintFigure(c *render.Canvas) {
	c.SetFillColor(f.Fill)
	c.FillEllipse(f.Bounds())
}

// PaintBorder strokes the ellipse outline when a border is configured.
func (f *EllipseFigure) PaintBorder(c *render.Canvas) {
	if f.StrokeWidth <= 0 {
		return
	}
	c.SetStrokeColor(f.Stroke)
	c.SetLineWidth(f.StrokeWidth)
	c.StrokeEllipse(f.Bounds())
}

// LineFigure is a line segment. Its bounds are the segment's bounding
// box; the endpoints are stored as fractions so translating the bounds
// moves the segment.
type LineFigure struct {
	BaseFigure
	Color drawkit.RGBA
	Width float64
	// reversed flips which corners of the bounds the segment connects:
	// false joins top-left to bottom-right, true joins bottom-left to
	// top-right.
	reversed bool
}

// NewLineFigure creates a line segment between two points.
func NewLineFigure(from, to drawkit.Point) *LineFigure {
	f := &LineFigure{
		BaseFigure: *NewBaseFigure(drawkit.RectFromCorners(from, to)),
		Color:      drawkit.Black,
		Width:      1,
	}
	f.reversed = (from.X < to.X) != (from.Y < to.Y)
	return f
}

// Endpoints returns the segment's current endpoints.
func (f *LineFigure) Endpoints() (drawkit.Point, drawkit.Point) {
	b := f.Bounds()
	if f.reversed {
		return drawkit.Pt(b.X, b.Y+b.Height), drawkit.Pt(b.X+b.Width, b.Y)
	}
	return b.TopLeft(), b.BottomRight()
}

// PaintFigure strokes the segment.
func (f *LineFigure) PaintFigure(c *render.Canvas) {
	c.SetStrokeColor(f.Color)
	c.SetLineWidth(f.Width)
	from, to := f.Endpoints()
	c.Line(from, to)
}

// LabelFigure is a single text run anchored near the top-left of its
// bounds. Glyph metrics are the backend's concern; the figure only
// records the run.
type LabelFigure struct {
	BaseFigure
	Text  string
	Size  float64
	Color drawkit.RGBA
}

// NewLabelFigure creates a label with the given text and font size.
func NewLabelFigure(x, y float64, text string, size float64) *LabelFigure {
	return &LabelFigure{
		BaseFigure: *NewBaseFigure(drawkit.NewRect(x, y, float64(len(text))*size*0.6, size*1.2)),
		Text:       text,
		Size:       size,
		Color:      drawkit.Black,
	}
}

// PaintFigure records the text run with its baseline one font size below
// the top of the bounds.
func (f *LabelFigure) PaintFigure(c *render.Canvas) {
	c.SetFillColor(f.Color)
	b := f.Bounds()
	c.DrawText(f.Text, drawkit.Pt(b.X, b.Y+f.Size), f.Size)
}

// ImageFigure draws an image scaled into its bounds.
type ImageFigure struct {
	BaseFigure
	Image image.Image
}

// NewImageFigure creates an image figure at the given bounds.
func NewImageFigure(bounds drawkit.Rect, img image.Image) *ImageFigure {
	return &ImageFigure{
		BaseFigure: *NewBaseFigure(bounds),
		Image:      img,
	}
}

// PaintFigure records the image draw.
func (f *ImageFigure) PaintFigure(c *render.Canvas) {
	if f.Image == nil {
		return
	}
	c.DrawImage(f.Image, f.Bounds())
}

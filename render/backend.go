package render

import (
	"image"
	"io"

	"github.com/yezhang/drawkit"
)

// Backend is the interface that display-list consumers implement.
// Backends receive the command stream in paint order and translate it to
// their output format (raster pixels, SVG elements, a GPU scene, ...).
//
// A backend maintains its own graphics-state stack mirroring the
// PushState/RestoreState/PopState markers. The renderer guarantees the
// markers are balanced within one display list, so a backend never sees a
// pop without a matching push.
//
// # Implementation Contract
//
// Each backend must:
//  1. Register in init() using render.Register()
//  2. Handle all Backend methods (even if no-op for some)
//  3. Track transform and clip per state frame; ClipRect intersects with
//     the current clip and a non-positive clip draws nothing
//
// # Example Backend Registration
//
//	func init() {
//	    render.Register("raster", func() render.Backend {
//	        return New()
//	    })
//	}
type Backend interface {
	// Begin initializes the backend for a frame of the given dimensions.
	// It is called once per playback, before any other method.
	Begin(width, height int) error

	// End finalizes the frame. Output methods (WriteTo, Image) are only
	// valid after End.
	End() error

	// PushState saves the current graphics state (transform, clip).
	PushState()

	// RestoreState rewinds to the most recent saved state without
	// removing it from the stack.
	RestoreState()

	// PopState pops the most recent saved state and restores it.
	PopState()

	// ConcatTransform concatenates m onto the current transform.
	ConcatTransform(m drawkit.Matrix)

	// ClipRect intersects the clip region with r in the current frame.
	ClipRect(r drawkit.Rect)

	// FillRect fills a rectangle with a solid color.
	FillRect(r drawkit.Rect, c drawkit.RGBA)

	// StrokeRect strokes a rectangle outline.
	StrokeRect(r drawkit.Rect, c drawkit.RGBA, width float64)

	// Line strokes a line segment.
	Line(from, to drawkit.Point, c drawkit.RGBA, width float64)

	// FillEllipse fills the ellipse inscribed in bounds.
	FillEllipse(bounds drawkit.Rect, c drawkit.RGBA)

	// StrokeEllipse strokes the ellipse inscribed in bounds.
	StrokeEllipse(bounds drawkit.Rect, c drawkit.RGBA, width float64)

	// FillPath fills a closed polyline path.
	FillPath(points []drawkit.Point, c drawkit.RGBA)

	// StrokePath strokes a polyline path.
	StrokePath(points []drawkit.Point, closed bool, c drawkit.RGBA, width float64)

	// DrawImage draws an image scaled into the destination rectangle.
	DrawImage(img image.Image, dst drawkit.Rect)

	// DrawText draws a text run at a baseline origin.
	DrawText(s string, origin drawkit.Point, size float64, c drawkit.RGBA)
}

// WriterBackend extends Backend with the ability to write output to an
// io.Writer after End.
type WriterBackend interface {
	Backend

	// WriteTo writes the rendered content to the given writer.
	WriteTo(w io.Writer) (int64, error)
}

// ImageBackend extends Backend with access to a rasterized frame.
type ImageBackend interface {
	Backend

	// Image returns the rendered frame. Only valid after End; returns nil
	// before then.
	Image() *image.RGBA
}

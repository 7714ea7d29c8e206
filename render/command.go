package render

import (
	"fmt"
	"image"

	"github.com/yezhang/drawkit"
)

// CommandType identifies the type of a command.
// Each command type corresponds to a specific drawing operation.
type CommandType uint8

const (
	// State commands
	CmdPushState       CommandType = iota // Save current state onto the stack
	CmdRestoreState                       // Rewind to the last saved state without popping
	CmdPopState                           // Pop and restore the last saved state
	CmdConcatTransform                    // Concatenate a transform onto the current one
	CmdClipRect                           // Intersect the clip with a rectangle

	// Shape commands
	CmdFillRect      // Fill a rectangle
	CmdStrokeRect    // Stroke a rectangle outline
	CmdLine          // Stroke a line segment
	CmdFillEllipse   // Fill an ellipse inscribed in a rectangle
	CmdStrokeEllipse // Stroke an ellipse outline
	CmdFillPath      // Fill a closed polyline path
	CmdStrokePath    // Stroke a polyline path
	CmdDrawImage     // Draw an image into a destination rectangle
	CmdDrawText      // Draw a text run at a baseline origin
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdPushState:       "PushState",
	CmdRestoreState:    "RestoreState",
	CmdPopState:        "PopState",
	CmdConcatTransform: "ConcatTransform",
	CmdClipRect:        "ClipRect",
	CmdFillRect:        "FillRect",
	CmdStrokeRect:      "StrokeRect",
	CmdLine:            "Line",
	CmdFillEllipse:     "FillEllipse",
	CmdStrokeEllipse:   "StrokeEllipse",
	CmdFillPath:        "FillPath",
	CmdStrokePath:      "StrokePath",
	CmdDrawImage:       "DrawImage",
	CmdDrawText:        "DrawText",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
// Commands represent individual drawing operations in the order they must
// be interpreted; later commands paint over earlier ones.
type Command interface {
	// Type returns the command's type tag.
	Type() CommandType
}

// PushStateCommand saves the current graphics state (transform and clip).
type PushStateCommand struct{}

func (PushStateCommand) Type() CommandType { return CmdPushState }

// RestoreStateCommand rewinds the graphics state to the most recent
// PushState snapshot without removing it from the stack. The renderer
// uses it between painting a figure and painting its children.
type RestoreStateCommand struct{}

func (RestoreStateCommand) Type() CommandType { return CmdRestoreState }

// PopStateCommand pops the most recent PushState snapshot and restores it.
type PopStateCommand struct{}

func (PopStateCommand) Type() CommandType { return CmdPopState }

// ConcatTransformCommand concatenates a transform onto the current one.
type ConcatTransformCommand struct {
	Matrix drawkit.Matrix
}

func (ConcatTransformCommand) Type() CommandType { return CmdConcatTransform }

// ClipRectCommand intersects the current clip region with a rectangle in
// the current coordinate frame. A rectangle with non-positive extent clips
// everything away; subsequent shapes draw nothing but are still recorded.
type ClipRectCommand struct {
	Rect drawkit.Rect
}

func (ClipRectCommand) Type() CommandType { return CmdClipRect }

// FillRectCommand fills a rectangle with a solid color.
type FillRectCommand struct {
	Rect  drawkit.Rect
	Color drawkit.RGBA
}

func (FillRectCommand) Type() CommandType { return CmdFillRect }

// StrokeRectCommand strokes a rectangle outline.
type StrokeRectCommand struct {
	Rect  drawkit.Rect
	Color drawkit.RGBA
	Width float64
}

func (StrokeRectCommand) Type() CommandType { return CmdStrokeRect }

// LineCommand strokes a line segment.
type LineCommand struct {
	From, To drawkit.Point
	Color    drawkit.RGBA
	Width    float64
}

func (LineCommand) Type() CommandType { return CmdLine }

// FillEllipseCommand fills the ellipse inscribed in Bounds.
type FillEllipseCommand struct {
	Bounds drawkit.Rect
	Color  drawkit.RGBA
}

func (FillEllipseCommand) Type() CommandType { return CmdFillEllipse }

// StrokeEllipseCommand strokes the outline of the ellipse inscribed in Bounds.
type StrokeEllipseCommand struct {
	Bounds drawkit.Rect
	Color  drawkit.RGBA
	Width  float64
}

func (StrokeEllipseCommand) Type() CommandType { return CmdStrokeEllipse }

// FillPathCommand fills a closed polyline path.
type FillPathCommand struct {
	Points []drawkit.Point
	Color  drawkit.RGBA
}

func (FillPathCommand) Type() CommandType { return CmdFillPath }

// StrokePathCommand strokes a polyline path. Closed controls whether the
// last point connects back to the first.
type StrokePathCommand struct {
	Points []drawkit.Point
	Closed bool
	Color  drawkit.RGBA
	Width  float64
}

func (StrokePathCommand) Type() CommandType { return CmdStrokePath }

// DrawImageCommand draws an image scaled into a destination rectangle.
type DrawImageCommand struct {
	Image image.Image
	Dst   drawkit.Rect
}

func (DrawImageCommand) Type() CommandType { return CmdDrawImage }

// DrawTextCommand draws a text run. Origin is the baseline origin; Size is
// the font size in scene units. Glyph shaping and font selection belong to
// the backend.
type DrawTextCommand struct {
	Text   string
	Origin drawkit.Point
	Size   float64
	Color  drawkit.RGBA
}

func (DrawTextCommand) Type() CommandType { return CmdDrawText }

// DisplayList is an immutable, ordered sequence of draw commands together
// with the dimensions of the frame they were recorded for.
type DisplayList struct {
	width, height int
	commands      []Command
}

// NewDisplayList creates a display list from recorded commands.
// The command slice is retained; callers must not mutate it afterwards.
func NewDisplayList(width, height int, commands []Command) *DisplayList {
	return &DisplayList{width: width, height: height, commands: commands}
}

// Width returns the recorded frame width.
func (d *DisplayList) Width() int { return d.width }

// Height returns the recorded frame height.
func (d *DisplayList) Height() int { return d.height }

// Commands returns the recorded commands in paint order.
func (d *DisplayList) Commands() []Command { return d.commands }

// Len returns the number of recorded commands.
func (d *DisplayList) Len() int { return len(d.commands) }

// Playback replays the display list to a backend, calling Begin, one
// backend method per command, and End. It returns the first error from
// Begin or End; the per-command methods do not report errors.
func (d *DisplayList) Playback(b Backend) error {
	if err := b.Begin(d.width, d.height); err != nil {
		return fmt.Errorf("render: backend begin: %w", err)
	}
	for _, cmd := range d.commands {
		switch c := cmd.(type) {
		case PushStateCommand:
			b.PushState()
		case RestoreStateCommand:
			b.RestoreState()
		case PopStateCommand:
			b.PopState()
		case ConcatTransformCommand:
			b.ConcatTransform(c.Matrix)
		case ClipRectCommand:
			b.ClipRect(c.Rect)
		case FillRectCommand:
			b.FillRect(c.Rect, c.Color)
		case StrokeRectCommand:
			b.StrokeRect(c.Rect, c.Color, c.Width)
		case LineCommand:
			b.Line(c.From, c.To, c.Color, c.Width)
		case FillEllipseCommand:
			b.FillEllipse(c.Bounds, c.Color)
		case StrokeEllipseCommand:
			b.StrokeEllipse(c.Bounds, c.Color, c.Width)
		case FillPathCommand:
			b.FillPath(c.Points, c.Color)
		case StrokePathCommand:
			b.StrokePath(c.Points, c.Closed, c.Color, c.Width)
		case DrawImageCommand:
			b.DrawImage(c.Image, c.Dst)
		case DrawTextCommand:
			b.DrawText(c.Text, c.Origin, c.Size, c.Color)
		}
	}
	if err := b.End(); err != nil {
		return fmt.Errorf("render: backend end: %w", err)
	}
	return nil
}

package scene

import "github.com/yezhang/drawkit"

// XYLayout stacks children top to bottom, one per row. Each child's width
// is forced to the container width minus the margins; its height is
// preserved.
type XYLayout struct {
	// Margin is the padding between the container edge and the children.
	Margin float64
	// Spacing is the vertical gap between consecutive children.
	Spacing float64
}

// NewXYLayout creates an XY layout with the default 10-unit margin and
// spacing.
func NewXYLayout() *XYLayout {
	return &XYLayout{Margin: 10, Spacing: 10}
}

// ComputeSize returns the width of the container (or the widest child
// plus margins, whichever is larger) and the stacked height of all
// children.
func (l *XYLayout) ComputeSize(container drawkit.Rect, children []drawkit.Rect) drawkit.Size {
	height := l.Margin * 2
	maxWidth := 0.0
	for _, c := range children {
		if c.Width > maxWidth {
			maxWidth = c.Width
		}
		height += c.Height + l.Spacing
	}
	if len(children) > 0 {
		height -= l.Spacing
	}
	width := container.Width
	if w := maxWidth + l.Margin*2; w > width {
		width = w
	}
	return drawkit.Size{Width: width, Height: height}
}

// Layout stacks the children below one another starting at the
// container's top-left margin. Zero children is a no-op.
func (l *XYLayout) Layout(container drawkit.Rect, children []ChildRect) {
	y := container.Y + l.Margin
	for i := range children {
		children[i].Bounds.X = container.X + l.Margin
		children[i].Bounds.Y = y
		children[i].Bounds.Width = container.Width - l.Margin*2
		y += children[i].Bounds.Height + l.Spacing
	}
}

package scene

import (
	"github.com/google/uuid"

	"github.com/yezhang/drawkit"
)

// RuntimeBlock is a node of the scene tree. It owns exactly one Figure
// and carries the tree edges plus the per-node state the renderer and
// hit tester consult. All tree relationships live here; figures never
// reference blocks.
//
// Children are kept in insertion order, which is the paint and hit-test
// z-order: later entries render on top. Layout managers rewrite child
// bounds but never child order.
type RuntimeBlock struct {
	// ID is the block's arena handle.
	ID BlockID

	// UUID is a process-unique identifier, stable regardless of arena
	// slot, for external references (serialization, tooling).
	UUID uuid.UUID

	// Parent is the containing block; nil only for the synthetic root.
	Parent BlockID

	// Children are the block's direct children in z-order.
	Children []BlockID

	// Figure is the drawable. Replaceable in place via Graph.SetFigure
	// without changing the block's identity.
	Figure Figure

	// Visible controls rendering and hit testing. A hidden block's whole
	// subtree is omitted from both, without touching the children's own
	// flags.
	Visible bool

	// Enabled controls hit testing only; a disabled block and its subtree
	// are skipped by the hit tester but still render.
	Enabled bool

	// Selected marks the block for highlight painting and editing tools.
	Selected bool

	// Size negotiation hints for layout managers, independent of the
	// figure's own bounds. Nil means "derive from the figure".
	PreferredSize *drawkit.Size
	MinimumSize   *drawkit.Size
	MaximumSize   *drawkit.Size
}

// newRuntimeBlock creates a block with default flags: visible, enabled,
// unselected.
func newRuntimeBlock(figure Figure) *RuntimeBlock {
	return &RuntimeBlock{
		UUID:    uuid.New(),
		Figure:  figure,
		Visible: true,
		Enabled: true,
	}
}

// Bounds returns the block's figure bounds in the absolute scene frame.
func (b *RuntimeBlock) Bounds() drawkit.Rect {
	return b.Figure.Bounds()
}

// PreferredSizeOrBounds returns the preferred size hint, falling back to
// the figure's bounds.
func (b *RuntimeBlock) PreferredSizeOrBounds() drawkit.Size {
	if b.PreferredSize != nil {
		return *b.PreferredSize
	}
	return b.Figure.Bounds().Size()
}

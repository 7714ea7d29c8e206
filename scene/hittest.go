package scene

import (
	"github.com/yezhang/drawkit"
)

// HitTestResult is the outcome of a successful hit test: the chain of
// hit blocks from the first matched ancestor down to the deepest matched
// descendant. Results are ephemeral values produced per query.
type HitTestResult struct {
	path []BlockID
}

// Path returns the hit chain from shallowest to deepest, with no gaps:
// every entry is the parent of the next.
func (r *HitTestResult) Path() []BlockID { return r.path }

// Target returns the deepest (visually topmost) hit block.
func (r *HitTestResult) Target() BlockID { return r.path[len(r.path)-1] }

// TopParent returns the shallowest hit block.
func (r *HitTestResult) TopParent() BlockID { return r.path[0] }

// hitTask is one step of the hit-test walk: check a block's bounds, or
// descend into a hit block's children.
type hitTask struct {
	descend bool
	block   BlockID
}

// HitTester resolves points to blocks with a non-recursive depth-first
// walk over an explicit task stack.
//
// The walk prunes aggressively: a block that does not contain the point
// is skipped along with its whole subtree, and invisible or disabled
// blocks are skipped the same way. Children are tested in reverse
// insertion order so the most recently added sibling wins ties, the
// hit-test mirror of "last painted is on top".
type HitTester struct {
	graph *Graph
	tasks []hitTask
	path  []BlockID
}

// NewHitTester creates a hit tester over the given graph. The tester
// only reads the graph and can be reused across queries.
func NewHitTester(g *Graph) *HitTester {
	return &HitTester{graph: g}
}

// HitTest walks the subtree rooted at root and returns the hit chain for
// the point, or nil when root itself is missed (point outside its
// bounds, or root invisible or disabled). Containment is inclusive on
// all four edges.
func (h *HitTester) HitTest(root BlockID, p drawkit.Point) *HitTestResult {
	h.tasks = h.tasks[:0]
	h.path = h.path[:0]

	h.tasks = append(h.tasks, hitTask{block: root})

	for len(h.tasks) > 0 {
		task := h.tasks[len(h.tasks)-1]
		h.tasks = h.tasks[:len(h.tasks)-1]

		b := h.graph.Block(task.block)
		if b == nil {
			continue
		}

		if task.descend {
			// Later-inserted siblings paint on top; test them first.
			for _, child := range b.Children {
				h.tasks = append(h.tasks, hitTask{block: child})
			}
			continue
		}

		if !b.Visible || !b.Enabled {
			continue
		}
		if !b.Bounds().Contains(p) {
			continue
		}
		// A hit prunes every pending check: siblings below this block in
		// z-order must not be tested (the topmost containing sibling
		// wins outright), so the only remaining work is this block's
		// own children. This keeps the path a gap-free ancestor chain.
		h.path = append(h.path, task.block)
		h.tasks = h.tasks[:0]
		h.tasks = append(h.tasks, hitTask{descend: true, block: task.block})
	}

	if len(h.path) == 0 {
		return nil
	}
	path := make([]BlockID, len(h.path))
	copy(path, h.path)
	return &HitTestResult{path: path}
}

// HitTest returns the deepest visible, enabled block under the point, or
// the nil handle when nothing is hit. The walk starts at the contents
// block when set, else the root.
func (g *Graph) HitTest(p drawkit.Point) BlockID {
	if r := g.HitTestWithPath(p); r != nil {
		return r.Target()
	}
	return BlockID{}
}

// HitTestWithPath returns the full hit chain for the point, or nil when
// nothing is hit.
func (g *Graph) HitTestWithPath(p drawkit.Point) *HitTestResult {
	start := g.contents
	if start.IsNil() {
		start = g.root
	}
	return NewHitTester(g).HitTest(start, p)
}

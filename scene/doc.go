// Package scene implements the retained-mode block tree, its renderer,
// and its hit tester.
//
// A [Graph] owns [RuntimeBlock] nodes behind generation-checked [BlockID]
// handles. Each block wraps a [Figure] (the drawable), an ordered child
// list (paint and hit-test z-order), and visibility/selection/enablement
// flags. Blocks are created through Graph factory methods (SetContents,
// AddChildTo) and referenced externally by UUID when arena-slot stability
// is not enough.
//
// Rendering and hit testing both traverse the tree with explicit heap
// task stacks rather than recursion, so depth is bounded only by memory.
// The renderer schedules a seven-phase task sequence per block and emits
// a flat draw-command list (package render); the hit tester resolves a
// point to the deepest visible, enabled block under it together with the
// full ancestor path.
//
// All types in this package are intended for use from a single
// edit/render goroutine. Rendering and hit testing only read the tree;
// mutation goes through Graph methods or package command.
package scene

// Package drawkit provides the geometry and color primitives shared by the
// drawkit scene graph, renderer, and editing packages.
//
// The package defines pure value types: [Point], [Size], [Rect], [Insets],
// the affine [Matrix], and [RGBA] colors. Higher layers build on these:
//
//   - package scene holds the block tree, layout managers, the trampoline
//     renderer, and the hit tester
//   - package render defines the backend-agnostic draw-command list and the
//     Backend interface that rasterizers implement
//   - package command provides undo/redo for structural scene edits
//
// All coordinates are float64 in an absolute scene frame unless a figure
// opts into local coordinates (see scene.Figure).
package drawkit

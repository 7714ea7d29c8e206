// Package render defines the backend-agnostic draw-command list produced
// by the scene renderer, and the Backend interface that consumers of that
// list implement.
//
// The scene renderer walks the block tree and records its output into a
// [Canvas]: state markers (push/restore/pop, transform concat, clip rect)
// interleaved with shape primitives (rects, lines, ellipses, paths, images,
// text), each carrying absolute-frame geometry and resolved RGBA color.
//
// Commands are typed structs rather than a binary stream so that tests and
// tools can inspect and compare command lists directly. A [DisplayList] is
// replayed to any registered [Backend]:
//
//	dl := render.NewDisplayList(800, 600, canvas.Commands())
//	b, err := render.NewBackend("raster")
//	if err != nil { ... }
//	if err := dl.Playback(b); err != nil { ... }
//
// Backends register themselves in init(), following the database/sql
// driver pattern.
//
// State nesting in a command list emitted by the scene renderer is always
// balanced: every PushState has a matching PopState within the same render
// pass, and a backend replaying the list can mirror the state stack one to
// one. RestoreState rewinds to the most recent PushState snapshot without
// popping it.
package render

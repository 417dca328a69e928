// Package spx provides a Pure Go software rasterizer for 2D primitives.
//
// # Overview
//
// spx draws points, lines, Bezier curves, triangles, circles, rectangles and
// bitmap glyphs directly into a caller-owned pixel buffer, with optional
// anti-aliasing. Every routine is a stateless function over a [Surface]; the
// engine owns no buffers and keeps no scene.
//
// # Quick Start
//
//	import "github.com/gogpu/spx"
//
//	s := spx.NewSurface(320, 240)
//	s.Clear(spx.Black)
//
//	spx.Line(s, spx.Pt(10, 10), spx.Pt(200, 80), spx.Red)
//	spx.LineSmooth(s, spx.Pf(10.5, 20.25), spx.Pf(200, 120.5), spx.White)
//	spx.CircleSmooth(s, spx.Pt(160, 120), 40, spx.Blue)
//	spx.TriangleSmooth(s, spx.Pf(20, 200), spx.Pf(120, 230), spx.Pf(80, 140), spx.Green)
//
//	overflow := spx.DrawText(s, font.Default(), "hello", spx.Pt(8, 20), spx.White)
//
// # Architecture
//
// Components, leaves first:
//   - Math: float32 interpolation helpers, [Point] and [Point2F]
//   - [Surface]: row-major RGBA buffer, origin top-left
//   - Point Writer: [Plot] and [Blend], the only write paths
//   - Lines: [Line] (Bresenham) and [LineSmooth] (Wu)
//   - Curves: [FlattenQuad] and [FlattenCubic] feeding the line routines
//   - Triangles: [Triangle], [TriangleSmooth], [TriangleTextured]
//   - Circles: [Circle], [CircleSmooth]
//   - Text: [DrawGlyph], [DrawText]
//
// Font loading lives in the font sub-package, which produces immutable [Font]
// values from TrueType/OpenType data.
//
// # Clipping
//
// Writes outside [0,width) x [0,height) are dropped silently. Only the text
// routines report out-of-bounds activity, returning a count that callers use
// to detect overflowing text.
//
// # Concurrency
//
// Calls are synchronous and never block. A Surface must have a single writer
// at a time; the engine takes no locks.
package spx

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)

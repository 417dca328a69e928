package spx

import (
	"iter"

	"github.com/chewxy/math32"
)

// Segment is a straight piece of a flattened curve.
type Segment struct {
	P0, P1 Point2F
}

// Flatness selects how finely a curve is split into segments.
type Flatness int

const (
	// FlattenSmooth takes one step per pixel along the dominant axis of
	// the end-to-end displacement. Used by the anti-aliased curves.
	FlattenSmooth Flatness = iota

	// FlattenHard takes one step per pixel of Manhattan displacement.
	FlattenHard
)

// String returns the flatness name.
func (f Flatness) String() string {
	switch f {
	case FlattenSmooth:
		return "smooth"
	case FlattenHard:
		return "hard"
	default:
		return "unknown"
	}
}

// steps returns the number of segments for a curve running from p0 to p1:
// one per pixel of extent, rounded up. A zero displacement yields a single
// segment.
func (f Flatness) steps(p0, p1 Point2F) int {
	dx := math32.Abs(p1.X - p0.X)
	dy := math32.Abs(p1.Y - p0.Y)
	extent := max(dx, dy)
	if f == FlattenHard {
		extent = dx + dy
	}
	return max(int(math32.Ceil(extent)), 1)
}

// flatten emits n segments between samples of eval taken at t = i/n. The
// last segment always ends exactly at p1.
func flatten(p0, p1 Point2F, n int, eval func(t float32) Point2F) iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		prev := p0
		for i := 1; i < n; i++ {
			next := eval(float32(i) / float32(n))
			if !yield(Segment{prev, next}) {
				return
			}
			prev = next
		}
		yield(Segment{prev, p1})
	}
}

// FlattenQuad returns the segments approximating the quadratic Bezier
// curve from p0 to p1 with control point ctrl. Points are evaluated with
// two levels of de Casteljau interpolation.
//
// The sequence is lazy; nothing is materialized and the consumer may stop
// at any segment.
func FlattenQuad(p0, ctrl, p1 Point2F, mode Flatness) iter.Seq[Segment] {
	return flatten(p0, p1, mode.steps(p0, p1), func(t float32) Point2F {
		a := p0.Lerp(ctrl, t)
		b := ctrl.Lerp(p1, t)
		return a.Lerp(b, t)
	})
}

// FlattenCubic returns the segments approximating the cubic Bezier curve
// from p0 to p1 with control points c0 and c1, evaluated as the Bernstein
// weighted sum of the four points.
func FlattenCubic(p0, c0, c1, p1 Point2F, mode Flatness) iter.Seq[Segment] {
	return flatten(p0, p1, mode.steps(p0, p1), func(t float32) Point2F {
		mt := 1 - t
		w0 := mt * mt * mt
		w1 := 3 * mt * mt * t
		w2 := 3 * mt * t * t
		w3 := t * t * t
		return Point2F{
			X: w0*p0.X + w1*c0.X + w2*c1.X + w3*p1.X,
			Y: w0*p0.Y + w1*c0.Y + w2*c1.Y + w3*p1.Y,
		}
	})
}

// QuadBezier draws a quadratic curve with hard-edged lines.
func QuadBezier(s *Surface, p0, ctrl, p1 Point2F, c Pixel) {
	for seg := range FlattenQuad(p0, ctrl, p1, FlattenHard) {
		Line(s, seg.P0.Point(), seg.P1.Point(), c)
	}
}

// QuadBezierSmooth draws a quadratic curve with anti-aliased lines.
func QuadBezierSmooth(s *Surface, p0, ctrl, p1 Point2F, c Pixel) {
	for seg := range FlattenQuad(p0, ctrl, p1, FlattenSmooth) {
		LineSmooth(s, seg.P0, seg.P1, c)
	}
}

// CubicBezier draws a cubic curve with hard-edged lines.
func CubicBezier(s *Surface, p0, c0, c1, p1 Point2F, c Pixel) {
	for seg := range FlattenCubic(p0, c0, c1, p1, FlattenHard) {
		Line(s, seg.P0.Point(), seg.P1.Point(), c)
	}
}

// CubicBezierSmooth draws a cubic curve with anti-aliased lines.
func CubicBezierSmooth(s *Surface, p0, c0, c1, p1 Point2F, c Pixel) {
	for seg := range FlattenCubic(p0, c0, c1, p1, FlattenSmooth) {
		LineSmooth(s, seg.P0, seg.P1, c)
	}
}

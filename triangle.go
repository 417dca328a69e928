package spx

import "github.com/chewxy/math32"

// edge is a triangle edge running down the surface from a to b.
type edge struct {
	a, b Vertex2D
	inv  float32 // 1/(b.y-a.y), 0 for a horizontal edge
}

func newEdge(a, b Vertex2D) edge {
	e := edge{a: a, b: b}
	if h := b.Pos.Y - a.Pos.Y; h != 0 {
		e.inv = 1 / h
	}
	return e
}

// param returns how far scanline y lies along the edge, in [0, 1].
// A horizontal edge collapses to its end vertex.
func (e edge) param(y float32) float32 {
	if e.inv == 0 {
		return 1
	}
	return Clamp((y-e.a.Pos.Y)*e.inv, 0, 1)
}

func (e edge) x(y float32) float32 {
	return Lerp(e.a.Pos.X, e.b.Pos.X, e.param(y))
}

func (e edge) uv(y float32) Point2F {
	return e.a.UV.Lerp(e.b.UV, e.param(y))
}

// scan is the setup shared by every triangle fill: the vertices sorted
// top to bottom and the long edge t0-t2 with the two short edges.
type scan struct {
	t     [3]Vertex2D
	long  edge
	upper edge // t0-t1
	lower edge // t1-t2
}

func newScan(v0, v1, v2 Vertex2D) scan {
	t := [3]Vertex2D{v0, v1, v2}
	if above(t[2].Pos, t[0].Pos) {
		t[0], t[2] = t[2], t[0]
	}
	if above(t[1].Pos, t[0].Pos) {
		t[0], t[1] = t[1], t[0]
	}
	if above(t[2].Pos, t[1].Pos) {
		t[1], t[2] = t[2], t[1]
	}
	return scan{
		t:     t,
		long:  newEdge(t[0], t[2]),
		upper: newEdge(t[0], t[1]),
		lower: newEdge(t[1], t[2]),
	}
}

// above orders points by y, then by x.
func above(p, q Point2F) bool {
	return p.Y < q.Y || (p.Y == q.Y && p.X < q.X)
}

// short returns the short edge crossing scanline y. A horizontal edge is
// never returned while the other one can answer.
func (sc *scan) short(y float32) edge {
	e, other := sc.lower, sc.upper
	if y < sc.t[1].Pos.Y {
		e, other = sc.upper, sc.lower
	}
	if e.inv == 0 {
		return other
	}
	return e
}

// extent returns the horizontal extent of the triangle between scanlines
// y0 and y1. ok is false when the band misses the triangle.
func (sc *scan) extent(y0, y1 float32) (lo, hi float32, ok bool) {
	lo, hi = math32.Inf(1), math32.Inf(-1)
	for _, e := range [3]edge{sc.long, sc.upper, sc.lower} {
		if e.b.Pos.Y < y0 || e.a.Pos.Y > y1 {
			continue
		}
		var xa, xb float32
		if e.inv == 0 {
			xa, xb = e.a.Pos.X, e.b.Pos.X
		} else {
			xa, xb = e.x(max(y0, e.a.Pos.Y)), e.x(min(y1, e.b.Pos.Y))
		}
		lo = min(lo, xa, xb)
		hi = max(hi, xa, xb)
		ok = true
	}
	return lo, hi, ok
}

// Triangle fills the triangle p0 p1 p2 with a flat color and hard edges.
// Every scanline from the top to the bottom vertex is filled between its
// intersections with the long edge and the active short edge; a triangle
// with all three vertices on one row fills its horizontal extent.
func Triangle(s *Surface, p0, p1, p2 Point, c Pixel) {
	sc := newScan(Vertex2D{Pos: p0.Float()}, Vertex2D{Pos: p1.Float()}, Vertex2D{Pos: p2.Float()})

	y0 := max(int(sc.t[0].Pos.Y), 0)
	y1 := min(int(sc.t[2].Pos.Y), s.height-1)
	for y := y0; y <= y1; y++ {
		lo, hi, ok := sc.extent(float32(y), float32(y))
		if !ok {
			continue
		}
		x0 := max(int(lo), 0)
		x1 := min(int(hi), s.width-1)
		for x := x0; x <= x1; x++ {
			Plot(s, x, y, c)
		}
	}
}

// edgeFunc is the signed area test of c against the directed line a-b.
func edgeFunc(a, b, c Point2F) float32 {
	return (c.X-a.X)*(b.Y-a.Y) - (c.Y-a.Y)*(b.X-a.X)
}

func insideTri(v *[3]Point2F, q Point2F) bool {
	return edgeFunc(v[1], v[2], q) >= 0 &&
		edgeFunc(v[2], v[0], q) >= 0 &&
		edgeFunc(v[0], v[1], q) >= 0
}

// cover visits every pixel the triangle may touch and reports the fraction
// of the sample pattern that falls inside it. Samples sit at the pattern
// offsets around the pixel centre; pixels with zero coverage are skipped.
//
// The inside test uses the vertices in the caller's order, so triangles
// wound clockwise on screen are culled.
func (sc *scan) cover(s *Surface, v [3]Point2F, pattern []Point2F, shade func(x, y int, cov float32)) {
	var reach float32
	for _, o := range pattern {
		reach = max(reach, math32.Abs(o.X), math32.Abs(o.Y))
	}
	ni := 1 / float32(len(pattern))

	y0 := max(int(math32.Ceil(sc.t[0].Pos.Y-0.5-reach)), 0)
	y1 := min(int(math32.Floor(sc.t[2].Pos.Y-0.5+reach)), s.height-1)
	for y := y0; y <= y1; y++ {
		cy := float32(y) + 0.5
		lo, hi, ok := sc.extent(cy-reach, cy+reach)
		if !ok {
			continue
		}
		x0 := max(int(math32.Ceil(lo-0.5-reach)), 0)
		x1 := min(int(math32.Floor(hi-0.5+reach)), s.width-1)
		for x := x0; x <= x1; x++ {
			centre := Pf(float32(x)+0.5, cy)
			n := 0
			for _, o := range pattern {
				if insideTri(&v, centre.Add(o)) {
					n++
				}
			}
			if n > 0 {
				shade(x, y, float32(n)*ni)
			}
		}
	}
}

// TriangleSmooth fills the triangle p0 p1 p2 with anti-aliased edges.
// Coverage is estimated from a 9-point sample pattern (see
// [WithSamplePattern]) and blended with [Blend].
//
// The vertices must be counter-clockwise as seen on the surface (y down);
// the opposite winding draws nothing.
func TriangleSmooth(s *Surface, p0, p1, p2 Point2F, c Pixel, opts ...RasterOption) {
	o := applyRasterOptions(opts)
	sc := newScan(Vertex2D{Pos: p0}, Vertex2D{Pos: p1}, Vertex2D{Pos: p2})
	sc.cover(s, [3]Point2F{p0, p1, p2}, o.pattern, func(x, y int, cov float32) {
		Blend(s, x, y, cov, c)
	})
}

// TriangleTextured fills a triangle with colors sampled from tex. UVs are
// interpolated along the edges and then across each scanline; coverage
// and winding follow [TriangleSmooth].
func TriangleTextured(s, tex *Surface, v0, v1, v2 Vertex2D, opts ...RasterOption) {
	o := applyRasterOptions(opts)
	sc := newScan(v0, v1, v2)

	row := -1
	var x0, x1 float32
	var uv0, uv1 Point2F
	sc.cover(s, [3]Point2F{v0.Pos, v1.Pos, v2.Pos}, o.pattern, func(x, y int, cov float32) {
		if y != row {
			row = y
			cy := Clamp(float32(y)+0.5, sc.t[0].Pos.Y, sc.t[2].Pos.Y)
			short := sc.short(cy)
			x0, uv0 = sc.long.x(cy), sc.long.uv(cy)
			x1, uv1 = short.x(cy), short.uv(cy)
		}
		t := Clamp(InvLerp(x0, x1, float32(x)+0.5), 0, 1)
		Blend(s, x, y, cov, TexSample(tex, uv0.Lerp(uv1, t)))
	})
}

// TexSample returns the texel of tex nearest to uv. Coordinates wrap, so
// only the fractional parts of u and v matter.
func TexSample(tex *Surface, uv Point2F) Pixel {
	u, v := fpart(uv.X), fpart(uv.Y)
	x := min(int(u*float32(tex.width)), tex.width-1)
	y := min(int(v*float32(tex.height)), tex.height-1)
	return tex.PixelAt(x, y)
}

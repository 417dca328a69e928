package spx

import "github.com/chewxy/math32"

// Line draws a hard-edged line from p to q with Bresenham's algorithm.
// Both endpoints are plotted and every step plots exactly one pixel.
//
// The endpoints are put into a canonical order before stepping, so
// Line(s, p, q, c) and Line(s, q, p, c) touch the same pixels.
func Line(s *Surface, p, q Point, c Pixel) {
	if q.X < p.X || (q.X == p.X && q.Y < p.Y) {
		p, q = q, p
	}

	dx := q.X - p.X
	dy := -absInt(q.Y - p.Y)
	sy := 1
	if p.Y > q.Y {
		sy = -1
	}

	err := dx + dy
	for p != q {
		Plot(s, p.X, p.Y, c)
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			p.X++
		}
		if e2 <= dx {
			err += dx
			p.Y += sy
		}
	}
	Plot(s, p.X, p.Y, c)
}

// LineSmooth draws a 1-pixel-wide anti-aliased line with Xiaolin Wu's
// algorithm. Every column along the major axis blends the two pixels
// straddling the exact line position; the endpoints are additionally
// weighted by their horizontal coverage.
func LineSmooth(s *Surface, p, q Point2F, c Pixel) {
	steep := math32.Abs(q.Y-p.Y) > math32.Abs(q.X-p.X)
	if steep {
		p.X, p.Y = p.Y, p.X
		q.X, q.Y = q.Y, q.X
	}
	if p.X > q.X {
		p, q = q, p
	}

	// plot blends with the axes restored.
	plot := func(x, y int, t float32) {
		if steep {
			x, y = y, x
		}
		Blend(s, x, y, t, c)
	}

	dx := q.X - p.X
	dy := q.Y - p.Y
	gradient := float32(1)
	if dx != 0 {
		gradient = dy / dx
	}

	// First endpoint.
	xend := math32.Floor(p.X)
	yend := p.Y + gradient*(xend-p.X)
	xgap := 1 - fpart(p.X+0.5)
	xpxl1 := int(xend)
	ypxl1 := int(math32.Floor(yend))
	f := yend - float32(ypxl1)
	plot(xpxl1, ypxl1, (1-f)*xgap)
	plot(xpxl1, ypxl1+1, f*xgap)
	intery := yend + gradient

	// Second endpoint.
	xend = math32.Floor(q.X)
	yend = q.Y + gradient*(xend-q.X)
	xgap = 1 - fpart(q.X+0.5)
	xpxl2 := int(xend)
	ypxl2 := int(math32.Floor(yend))
	f = yend - float32(ypxl2)
	plot(xpxl2, ypxl2, (1-f)*xgap)
	plot(xpxl2, ypxl2+1, f*xgap)

	for x := xpxl1 + 1; x < xpxl2; x++ {
		y := math32.Floor(intery)
		fy := intery - y
		plot(x, int(y), 1-fy)
		plot(x, int(y)+1, fy)
		intery += gradient
	}
}

// LineSmoothBold draws a soft line roughly three pixels wide by stacking
// LineSmooth at the nine unit offsets around the segment.
func LineSmoothBold(s *Surface, p, q Point2F, c Pixel) {
	for oy := float32(-1); oy <= 1; oy++ {
		for ox := float32(-1); ox <= 1; ox++ {
			o := Pf(ox, oy)
			LineSmooth(s, p.Add(o), q.Add(o), c)
		}
	}
}

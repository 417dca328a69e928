package demo

import (
	"github.com/gogpu/spx"
	"github.com/gogpu/spx/font"
)

// Render draws the scene onto a new surface. Text shapes use f, or the
// built-in font when f is nil. The returned count is the number of glyph
// samples and characters that fell off the surface.
func Render(sc *Scene, f *spx.Font) (*spx.Surface, int, error) {
	if err := sc.Validate(); err != nil {
		return nil, 0, err
	}
	if f == nil {
		f = font.Default()
	}

	s := spx.NewSurface(sc.Width, sc.Height)
	if sc.Background != "" {
		s.Clear(spx.Hex(sc.Background))
	}

	overflow := 0
	for i := range sc.Shapes {
		overflow += draw(s, &sc.Shapes[i], f)
	}
	if overflow > 0 {
		spx.Logger().Debug("demo: scene overflow", "count", overflow)
	}
	return s, overflow, nil
}

func draw(s *spx.Surface, sh *Shape, f *spx.Font) int {
	c := sh.color()
	switch sh.Kind {
	case "line":
		spx.Line(s, sh.ipoint(0), sh.ipoint(1), c)
	case "line_smooth":
		spx.LineSmooth(s, sh.point(0), sh.point(1), c)
	case "line_bold":
		spx.LineSmoothBold(s, sh.point(0), sh.point(1), c)
	case "quad":
		spx.QuadBezier(s, sh.point(0), sh.point(1), sh.point(2), c)
	case "quad_smooth":
		spx.QuadBezierSmooth(s, sh.point(0), sh.point(1), sh.point(2), c)
	case "cubic":
		spx.CubicBezier(s, sh.point(0), sh.point(1), sh.point(2), sh.point(3), c)
	case "cubic_smooth":
		spx.CubicBezierSmooth(s, sh.point(0), sh.point(1), sh.point(2), sh.point(3), c)
	case "triangle":
		spx.Triangle(s, sh.ipoint(0), sh.ipoint(1), sh.ipoint(2), c)
	case "triangle_smooth":
		spx.TriangleSmooth(s, sh.point(0), sh.point(1), sh.point(2), c)
	case "triangle_textured":
		spx.TriangleTextured(s, sh.Checker.texture(), sh.vertex(0), sh.vertex(1), sh.vertex(2))
	case "circle":
		spx.Circle(s, sh.ipoint(0), sh.Radius, c)
	case "circle_smooth":
		spx.CircleSmooth(s, sh.ipoint(0), sh.Radius, c)
	case "rect":
		spx.Rect(s, sh.ipoint(0), sh.ipoint(1), c)
	case "text":
		return spx.DrawText(s, f, sh.Text, sh.ipoint(0), c)
	}
	return 0
}

// texture builds the checkerboard: Cells squares of one texel each per
// side, alternating between the first two colors.
func (ch Checker) texture() *spx.Surface {
	n := ch.Cells
	if n <= 0 {
		n = 2
	}
	a, b := spx.White, spx.Black
	if len(ch.Colors) > 0 {
		a = spx.Hex(ch.Colors[0])
	}
	if len(ch.Colors) > 1 {
		b = spx.Hex(ch.Colors[1])
	}

	tex := spx.NewSurface(n, n)
	for y := range n {
		for x := range n {
			c := a
			if (x+y)%2 == 1 {
				c = b
			}
			spx.Plot(tex, x, y, c)
		}
	}
	return tex
}

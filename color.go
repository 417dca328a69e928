package spx

import (
	"image/color"

	"github.com/chewxy/math32"
)

// Pixel is a non-premultiplied RGBA color with 8 bits per channel.
// It is the element type of every [Surface].
type Pixel struct {
	R, G, B, A uint8
}

// RGBA implements the color.Color interface.
// The returned values are alpha-premultiplied, as the interface requires.
func (p Pixel) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: p.R, G: p.G, B: p.B, A: p.A}.RGBA()
}

// Lerp interpolates each channel from p toward q by t.
// t is clamped to [0, 1] and every channel is rounded into [0, 255],
// so Lerp(q, 0) == p and Lerp(q, 1) == q exactly.
func (p Pixel) Lerp(q Pixel, t float32) Pixel {
	t = Clamp(t, 0, 1)
	return Pixel{
		R: lerp8(p.R, q.R, t),
		G: lerp8(p.G, q.G, t),
		B: lerp8(p.B, q.B, t),
		A: lerp8(p.A, q.A, t),
	}
}

func lerp8(a, b uint8, t float32) uint8 {
	return uint8(Clamp(math32.Round(Lerp(float32(a), float32(b), t)), 0, 255))
}

// NRGBA converts the pixel to the standard library representation.
func (p Pixel) NRGBA() color.NRGBA {
	return color.NRGBA{R: p.R, G: p.G, B: p.B, A: p.A}
}

// PixelFromColor converts a standard color.Color to a Pixel.
func PixelFromColor(c color.Color) Pixel {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Pixel{R: n.R, G: n.G, B: n.B, A: n.A}
}

// RGB creates an opaque pixel.
func RGB(r, g, b uint8) Pixel {
	return Pixel{R: r, G: g, B: b, A: 255}
}

// Hex creates a pixel from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with an optional '#'.
// Malformed input yields opaque black.
func Hex(hex string) Pixel {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint32
	a = 255

	switch len(hex) {
	case 3: // RGB
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		parseHex(hex[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
	case 8: // RRGGBBAA
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
		parseHex(hex[6:8], &a)
	default:
		return Black
	}

	return Pixel{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)}
}

// parseHex is a helper for hex parsing
func parseHex(s string, val *uint32) {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return
		}
	}
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(255, 255, 255)
	Red         = RGB(255, 0, 0)
	Green       = RGB(0, 255, 0)
	Blue        = RGB(0, 0, 255)
	Yellow      = RGB(255, 255, 0)
	Cyan        = RGB(0, 255, 255)
	Magenta     = RGB(255, 0, 255)
	Transparent = Pixel{}
)

// Package demo renders declarative scenes with spx. It backs the spxdemo
// command: scenes are read from TOML or YAML, drawn onto a surface,
// scaled up for viewing and previewed in the terminal.
package demo

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/spx"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Errors reported while validating a scene.
var (
	ErrUnknownKind   = errors.New("demo: unknown shape kind")
	ErrPointCount    = errors.New("demo: wrong number of points")
	ErrInvalidPoint  = errors.New("demo: point must have two coordinates")
	ErrInvalidSize   = errors.New("demo: surface size must be positive")
	ErrUnknownFormat = errors.New("demo: unknown scene format")
)

// Scene describes one image.
type Scene struct {
	Width      int     `toml:"width" yaml:"width"`
	Height     int     `toml:"height" yaml:"height"`
	Scale      int     `toml:"scale,omitempty" yaml:"scale,omitempty"`
	Background string  `toml:"background,omitempty" yaml:"background,omitempty"`
	Font       string  `toml:"font,omitempty" yaml:"font,omitempty"`
	FontSize   float64 `toml:"font_size,omitempty" yaml:"font_size,omitempty"`
	Shapes     []Shape `toml:"shapes" yaml:"shapes"`
}

// Shape is a single drawing operation. Which fields matter depends on
// Kind; see the kinds table.
type Shape struct {
	Kind   string      `toml:"kind" yaml:"kind"`
	Color  string      `toml:"color,omitempty" yaml:"color,omitempty"`
	Points [][]float32 `toml:"points" yaml:"points"`
	UVs    [][]float32 `toml:"uvs,omitempty" yaml:"uvs,omitempty"`
	Radius float32     `toml:"radius,omitempty" yaml:"radius,omitempty"`
	Text   string      `toml:"text,omitempty" yaml:"text,omitempty"`

	// Checker configures the procedural texture of triangle_textured.
	Checker Checker `toml:"checker,omitempty" yaml:"checker,omitempty"`
}

// Checker is a two-color checkerboard texture.
type Checker struct {
	Cells  int      `toml:"cells,omitempty" yaml:"cells,omitempty"`
	Colors []string `toml:"colors,omitempty" yaml:"colors,omitempty"`
}

// kinds maps each shape kind to the number of points it takes.
var kinds = map[string]int{
	"line":              2,
	"line_smooth":       2,
	"line_bold":         2,
	"quad":              3,
	"quad_smooth":       3,
	"cubic":             4,
	"cubic_smooth":      4,
	"triangle":          3,
	"triangle_smooth":   3,
	"triangle_textured": 3,
	"circle":            1,
	"circle_smooth":     1,
	"rect":              2,
	"text":              1,
}

// LoadScene reads a scene file. The format follows the extension:
// .toml, .yaml or .yml.
func LoadScene(path string) (*Scene, error) {
	// #nosec G304 -- Scene path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("demo: failed to read scene: %w", err)
	}
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	return ParseScene(data, format)
}

// ParseScene decodes and validates a scene in the given format, "toml"
// or "yaml".
func ParseScene(data []byte, format string) (*Scene, error) {
	var sc Scene
	var err error
	switch format {
	case "toml":
		err = toml.Unmarshal(data, &sc)
	case "yaml", "yml":
		err = yaml.Unmarshal(data, &sc)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("demo: failed to decode %s scene: %w", format, err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Validate checks the surface size and every shape.
func (sc *Scene) Validate() error {
	if sc.Width <= 0 || sc.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, sc.Width, sc.Height)
	}
	for i, sh := range sc.Shapes {
		if err := sh.validate(); err != nil {
			return fmt.Errorf("shape %d (%s): %w", i, sh.Kind, err)
		}
	}
	return nil
}

func (sh *Shape) validate() error {
	n, ok := kinds[sh.Kind]
	if !ok {
		return ErrUnknownKind
	}
	if len(sh.Points) != n {
		return fmt.Errorf("%w: got %d, want %d", ErrPointCount, len(sh.Points), n)
	}
	for _, p := range sh.Points {
		if len(p) != 2 {
			return ErrInvalidPoint
		}
	}
	if sh.Kind == "triangle_textured" {
		if len(sh.UVs) != 3 {
			return fmt.Errorf("%w: got %d uvs, want 3", ErrPointCount, len(sh.UVs))
		}
		for _, p := range sh.UVs {
			if len(p) != 2 {
				return ErrInvalidPoint
			}
		}
	}
	return nil
}

func (sh *Shape) point(i int) spx.Point2F {
	return spx.Pf(sh.Points[i][0], sh.Points[i][1])
}

func (sh *Shape) ipoint(i int) spx.Point {
	return sh.point(i).Point()
}

func (sh *Shape) vertex(i int) spx.Vertex2D {
	return spx.Vertex2D{Pos: sh.point(i), UV: spx.Pf(sh.UVs[i][0], sh.UVs[i][1])}
}

func (sh *Shape) color() spx.Pixel {
	if sh.Color == "" {
		return spx.White
	}
	return spx.Hex(sh.Color)
}

// DefaultScene is the plotter scene: a 200x150 surface shown at 4x, with
// the triangle, soft line, disc, box and curve of the interactive plotter
// frozen at one pointer position, plus a textured triangle and a caption.
func DefaultScene() *Scene {
	const (
		w, h   = 200, 150
		cx, cy = w / 2, h / 2
		mx, my = 150, 40
	)
	return &Scene{
		Width:      w,
		Height:     h,
		Scale:      4,
		Background: "#000000",
		Shapes: []Shape{
			{Kind: "triangle_smooth", Color: "#ff0000", Points: [][]float32{{cx, cy}, {mx, my}, {0, 0}}},
			{Kind: "line_smooth", Color: "#00ff00", Points: [][]float32{{cx, cy}, {mx, my}}},
			{Kind: "circle_smooth", Color: "#0000ff", Points: [][]float32{{mx, my}}, Radius: 20},
			{Kind: "rect", Color: "#ff00ff", Points: [][]float32{{cx, cy}, {12, 8}}},
			{Kind: "quad_smooth", Color: "#00ff00", Points: [][]float32{{cx, cy}, {mx, my}, {0, 0}}},
			{Kind: "line_bold", Color: "#0000ff", Points: [][]float32{{cx, cy}, {mx, my}}},
			{Kind: "cubic", Color: "#ffff00", Points: [][]float32{{10, 140}, {40, 80}, {80, 160}, {110, 100}}},
			{
				Kind:    "triangle_textured",
				Points:  [][]float32{{120, 100}, {120, 145}, {195, 100}},
				UVs:     [][]float32{{0, 0}, {0, 1}, {1, 0}},
				Checker: Checker{Cells: 4, Colors: []string{"#ffffff", "#404040"}},
			},
			{Kind: "circle", Color: "#00ffff", Points: [][]float32{{30, 30}}, Radius: 10},
			{Kind: "text", Color: "#ffffff", Points: [][]float32{{4, 12}}, Text: "spx"},
		},
	}
}

// Marshal encodes the scene in the given format, "toml" or "yaml".
func (sc *Scene) Marshal(format string) ([]byte, error) {
	switch format {
	case "toml":
		return toml.Marshal(sc)
	case "yaml", "yml":
		return yaml.Marshal(sc)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

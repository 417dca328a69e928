package demo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tomlScene = `
width = 32
height = 24
scale = 2
background = "#000"

[[shapes]]
kind = "line"
color = "#ff0000"
points = [[1.0, 1.0], [30.0, 20.0]]

[[shapes]]
kind = "triangle_textured"
points = [[2.0, 2.0], [2.0, 20.0], [20.0, 2.0]]
uvs = [[0.0, 0.0], [0.0, 1.0], [1.0, 0.0]]

[shapes.checker]
cells = 4
colors = ["#fff", "#444"]
`

const yamlScene = `
width: 32
height: 24
shapes:
  - kind: circle_smooth
    color: "#00ff00"
    points: [[16.0, 12.0]]
    radius: 5.0
  - kind: text
    points: [[1.0, 12.0]]
    text: hi
`

func TestParseScene_TOML(t *testing.T) {
	sc, err := ParseScene([]byte(tomlScene), "toml")
	require.NoError(t, err)

	assert.Equal(t, 32, sc.Width)
	assert.Equal(t, 24, sc.Height)
	assert.Equal(t, 2, sc.Scale)
	require.Len(t, sc.Shapes, 2)
	assert.Equal(t, "line", sc.Shapes[0].Kind)
	assert.Equal(t, [][]float32{{1, 1}, {30, 20}}, sc.Shapes[0].Points)
	assert.Equal(t, 4, sc.Shapes[1].Checker.Cells)
	assert.Equal(t, []string{"#fff", "#444"}, sc.Shapes[1].Checker.Colors)
}

func TestParseScene_YAML(t *testing.T) {
	sc, err := ParseScene([]byte(yamlScene), "yaml")
	require.NoError(t, err)

	require.Len(t, sc.Shapes, 2)
	assert.Equal(t, "circle_smooth", sc.Shapes[0].Kind)
	assert.InDelta(t, 5, sc.Shapes[0].Radius, 1e-6)
	assert.Equal(t, "hi", sc.Shapes[1].Text)
}

func TestParseScene_Errors(t *testing.T) {
	_, err := ParseScene([]byte(tomlScene), "json")
	require.ErrorIs(t, err, ErrUnknownFormat)

	_, err = ParseScene([]byte("width = ["), "toml")
	require.Error(t, err)

	_, err = ParseScene([]byte("width: 0\nheight: 4\n"), "yaml")
	require.ErrorIs(t, err, ErrInvalidSize)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
		want  error
	}{
		{"ok", Shape{Kind: "rect", Points: [][]float32{{4, 4}, {2, 2}}}, nil},
		{"unknown kind", Shape{Kind: "star", Points: [][]float32{{0, 0}}}, ErrUnknownKind},
		{"too few points", Shape{Kind: "cubic", Points: [][]float32{{0, 0}, {1, 1}}}, ErrPointCount},
		{"short point", Shape{Kind: "circle", Points: [][]float32{{0}}}, ErrInvalidPoint},
		{"missing uvs", Shape{Kind: "triangle_textured", Points: [][]float32{{0, 0}, {0, 4}, {4, 0}}}, ErrPointCount},
		{"short uv", Shape{
			Kind:   "triangle_textured",
			Points: [][]float32{{0, 0}, {0, 4}, {4, 0}},
			UVs:    [][]float32{{0, 0}, {0, 1}, {1}},
		}, ErrInvalidPoint},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc := &Scene{Width: 8, Height: 8, Shapes: []Shape{tt.shape}}
			err := sc.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), "shape 0")
		})
	}
}

func TestLoadScene(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"scene.toml": tomlScene,
		"scene.yml":  yamlScene,
		"scene.YAML": yamlScene,
	}
	for name, body := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

		sc, err := LoadScene(path)
		require.NoError(t, err, name)
		assert.Equal(t, 32, sc.Width, name)
	}

	_, err := LoadScene(filepath.Join(dir, "missing.toml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestDefaultScene(t *testing.T) {
	sc := DefaultScene()
	require.NoError(t, sc.Validate())
	assert.Equal(t, 200, sc.Width)
	assert.Equal(t, 150, sc.Height)
	assert.Equal(t, 4, sc.Scale)
}

func TestMarshal_DefaultScene(t *testing.T) {
	for _, format := range []string{"toml", "yaml"} {
		t.Run(format, func(t *testing.T) {
			data, err := DefaultScene().Marshal(format)
			require.NoError(t, err)

			sc, err := ParseScene(data, format)
			require.NoError(t, err)
			assert.Equal(t, DefaultScene(), sc)
		})
	}

	_, err := DefaultScene().Marshal("ini")
	require.ErrorIs(t, err, ErrUnknownFormat)
}

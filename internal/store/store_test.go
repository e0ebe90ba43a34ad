package store

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ShapeBoard/internal/editor"
	"ShapeBoard/internal/shape"
	"ShapeBoard/internal/surface"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() []shape.Drawing {
	size := shape.Size{Width: 960, Height: 540}
	return []shape.Drawing{
		{ID: "p", Type: shape.Polygon, Points: []shape.Point{{X: 1, Y: 2}, {X: 30, Y: 4}, {X: 5, Y: 60}}, Color: "red", CanvasSize: size},
		{ID: "r", Type: shape.Rectangle, Points: []shape.Point{{X: 100, Y: 100}, {X: 200, Y: 150}}, Color: "#00ff00", CanvasSize: size},
		{ID: "c", Type: shape.Circle, Points: []shape.Point{{X: 50, Y: 50}}, Radius: 12.5, Color: "blue", CanvasSize: size},
		{ID: "l", Type: shape.Line, Points: []shape.Point{{X: 0, Y: 0}, {X: 10, Y: 10}}, Color: "black", LineWidth: 3, CanvasSize: size},
	}
}

func TestEncodeFormat(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, sample()[2:3]))
	out := buf.String()
	assert.Contains(t, out, `"type": "circle"`)
	assert.Contains(t, out, `"radius": 12.5`)
	assert.Contains(t, out, `"canvasSize": {`)
	assert.NotContains(t, out, "lineWidth")

	buf.Reset()
	require.NoError(t, Encode(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestDecodeRejects(t *testing.T) {
	_, err := Decode(strings.NewReader(`[{"type":"hexagon","points":[]}]`))
	assert.ErrorIs(t, err, shape.ErrInvalidConfiguration)

	_, err = Decode(strings.NewReader(`[{"type":"circle","points":[{"x":1,"y":1}],"color":"red"}]`))
	assert.ErrorIs(t, err, shape.ErrMissingData)

	_, err = Decode(strings.NewReader(`{`))
	assert.Error(t, err)

	list, err := Decode(strings.NewReader(`null`))
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drawings.json")
	require.NoError(t, Save(path, sample()))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, sample(), got)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file removed")
}

func TestLoadMissing(t *testing.T) {
	got, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestUnreadableFileSurvivesSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drawings.json")
	original := []byte(`[
  {"id":"r","type":"rectangle","points":[{"x":1,"y":1},{"x":9,"y":9}],"color":"red"},
  {"id":"c","type":"circle","points":[{"x":5,"y":5}],"color":"blue"}
]`)
	require.NoError(t, os.WriteFile(path, original, 0o644))

	list, aside, err := LoadOrSetAside(path)
	assert.ErrorIs(t, err, shape.ErrMissingData)
	assert.Empty(t, list)
	assert.Equal(t, path+".bad", aside)

	require.NoError(t, Save(path, []shape.Drawing{}))
	kept, err := os.ReadFile(aside)
	require.NoError(t, err)
	assert.Equal(t, original, kept)
}

func TestLoadOrSetAsideReadable(t *testing.T) {
	dir := t.TempDir()
	list, aside, err := LoadOrSetAside(filepath.Join(dir, "missing.json"))
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.Empty(t, aside)

	path := filepath.Join(dir, "drawings.json")
	require.NoError(t, Save(path, sample()))
	list, aside, err = LoadOrSetAside(path)
	require.NoError(t, err)
	assert.Equal(t, sample(), list)
	assert.Empty(t, aside)
	assert.FileExists(t, path)
}

func TestRoundTripThroughEditor(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, sample()))
	list, err := Decode(&buf)
	require.NoError(t, err)

	cfg := editor.DefaultConfig()
	cfg.Drawings = list
	e, err := editor.New(surface.NewRecorder(1, 1), cfg)
	require.NoError(t, err)
	assert.Equal(t, sample(), e.Drawings())
}

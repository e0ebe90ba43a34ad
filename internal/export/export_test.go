package export

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"ShapeBoard/internal/shape"
	"ShapeBoard/internal/surface"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func board() []shape.Drawing {
	size := shape.Size{Width: 200, Height: 100}
	return []shape.Drawing{
		{Type: shape.Rectangle, Points: []shape.Point{{X: 10, Y: 10}, {X: 60, Y: 60}}, Color: "red", CanvasSize: size},
		{Type: shape.Circle, Points: []shape.Point{{X: 150, Y: 50}}, Radius: 20, Color: "#0000ff80", CanvasSize: size},
		{Type: shape.Line, Points: []shape.Point{{X: 0, Y: 90}, {X: 200, Y: 90}}, Color: "black", LineWidth: 2, CanvasSize: size},
	}
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePDF(&buf, board(), Options{}))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	assert.Contains(t, buf.String(), "%%EOF")
}

func TestSavePDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.pdf")
	require.NoError(t, SavePDF(path, board(), Options{Background: "#fafafa"}))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestPDFErrors(t *testing.T) {
	bad := []shape.Drawing{{Type: shape.Circle, Points: []shape.Point{{X: 1, Y: 1}}, Color: "red"}}
	assert.ErrorIs(t, WritePDF(&bytes.Buffer{}, bad, Options{}), shape.ErrMissingData)

	assert.ErrorIs(t, WritePDF(&bytes.Buffer{}, board(), Options{Background: "nope"}), surface.ErrInvalidColor)

	_, err := NewPDF(0, 10)
	assert.Error(t, err)
}

func TestPDFSurfaceKeepsPathAfterFill(t *testing.T) {
	p, err := NewPDF(100, 100)
	require.NoError(t, err)
	w, h := p.Size()
	assert.Equal(t, 100.0, w)
	assert.Equal(t, 100.0, h)
	assert.NoError(t, p.Resize(100, 100))
	assert.Error(t, p.Resize(50, 50))

	p.BeginPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.LineTo(10, 10)
	p.ClosePath()
	p.Circle(50, 50, 5)
	require.NoError(t, p.Fill("green"))
	assert.Len(t, p.path, 5)
	require.NoError(t, p.Stroke(surface.StrokeStyle{Color: "black", Width: 1, Round: true}))
	p.BeginPath()
	assert.Empty(t, p.path)

	assert.Error(t, p.Fill("bogus"))
}

func TestPDFClearRestoresAlpha(t *testing.T) {
	p, err := NewPDF(100, 100)
	require.NoError(t, err)
	p.background = "#ffffff40"
	p.Clear()
	alpha, mode := p.f.GetAlpha()
	assert.Equal(t, 1.0, alpha)
	assert.Equal(t, "Normal", mode)
	require.NoError(t, p.f.Error())
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, board(), Options{}))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 100, img.Bounds().Dy())

	r, g, b, _ := img.At(30, 30).RGBA()
	assert.Greater(t, r>>8, uint32(200))
	assert.Less(t, g>>8, uint32(50))
	assert.Less(t, b>>8, uint32(50))

	r, g, b, _ = img.At(100, 20).RGBA()
	assert.Greater(t, r>>8, uint32(240))
	assert.Greater(t, g>>8, uint32(240))
	assert.Greater(t, b>>8, uint32(240))
}

func TestSavePNGSizeOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.png")
	require.NoError(t, SavePNG(path, board(), Options{Size: shape.Size{Width: 64, Height: 32}}))
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 64, cfg.Width)
	assert.Equal(t, 32, cfg.Height)
}

func TestSaveFileByExtension(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, SaveFile(filepath.Join(dir, "a.PDF"), board(), Options{}))
	require.NoError(t, SaveFile(filepath.Join(dir, "a.png"), board(), Options{}))

	data, err := os.ReadFile(filepath.Join(dir, "a.PDF"))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
	f, err := os.Open(filepath.Join(dir, "a.png"))
	require.NoError(t, err)
	defer f.Close()
	_, err = png.Decode(f)
	require.NoError(t, err)

	assert.ErrorIs(t, SaveFile(filepath.Join(dir, "a.svg"), board(), Options{}), ErrUnknownFormat)
	assert.NoFileExists(t, filepath.Join(dir, "a.svg"))
}

func TestOptionsSize(t *testing.T) {
	assert.Equal(t, fallbackSize, Options{}.size(nil))
	assert.Equal(t, shape.Size{Width: 200, Height: 100}, Options{}.size(board()))
}

package surface

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"black", color.NRGBA{A: 255}},
		{"White", color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
		{"#f00", color.NRGBA{R: 255, A: 255}},
		{"#00ff00", color.NRGBA{G: 255, A: 255}},
		{"#0000ff80", color.NRGBA{B: 255, A: 128}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := ParseColor(tt.in)
			require.NoError(t, err)
			got := color.NRGBAModel.Convert(c).(color.NRGBA)
			assert.InDelta(t, tt.want.R, got.R, 1)
			assert.InDelta(t, tt.want.G, got.G, 1)
			assert.InDelta(t, tt.want.B, got.B, 1)
			assert.InDelta(t, tt.want.A, got.A, 1)
		})
	}
}

func TestParseColorRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "#12", "#gggggg", "notacolor", "#1234567"} {
		_, err := ParseColor(in)
		assert.ErrorIs(t, err, ErrInvalidColor, in)
	}
}

func TestRasterPaintsFill(t *testing.T) {
	r, err := NewRaster(40, 30)
	require.NoError(t, err)
	r.Clear()
	r.BeginPath()
	r.Rect(10, 10, 20, 10)
	require.NoError(t, r.Fill("#ff0000"))

	img := r.Image()
	assert.Equal(t, 40, img.Bounds().Dx())
	assert.Equal(t, 30, img.Bounds().Dy())

	inside := color.NRGBAModel.Convert(img.At(20, 15)).(color.NRGBA)
	outside := color.NRGBAModel.Convert(img.At(2, 2)).(color.NRGBA)
	assert.Greater(t, inside.R, uint8(245))
	assert.Less(t, inside.G, uint8(10))
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, outside)
}

func TestRasterResize(t *testing.T) {
	r, err := NewRaster(10, 10)
	require.NoError(t, err)
	require.NoError(t, r.Resize(64.5, 20))

	w, h := r.Size()
	assert.Equal(t, 64.5, w)
	assert.Equal(t, 20.0, h)
	assert.Equal(t, 65, r.Image().Bounds().Dx())

	assert.Error(t, r.Resize(0, 10))
	_, err = NewRaster(-1, 10)
	assert.Error(t, err)
}

func TestRasterEncodePNG(t *testing.T) {
	r, err := NewRaster(8, 8)
	require.NoError(t, err)
	r.Clear()

	var buf bytes.Buffer
	require.NoError(t, r.EncodePNG(&buf))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 8, img.Bounds().Dx())
}

func TestRasterStrokeRejectsBadColor(t *testing.T) {
	r, err := NewRaster(8, 8)
	require.NoError(t, err)
	r.BeginPath()
	r.MoveTo(0, 0)
	r.LineTo(8, 8)
	assert.ErrorIs(t, r.Stroke(StrokeStyle{Color: "nope", Width: 1}), ErrInvalidColor)
	r.SetCursor(CursorPointer)
	assert.Equal(t, CursorPointer, r.Cursor())
	assert.Equal(t, "pointer", r.Cursor().String())
}

func TestRecorder(t *testing.T) {
	r := NewRecorder(100, 50)
	r.BeginPath()
	r.MoveTo(1, 2)
	r.LineTo(3, 4)
	require.NoError(t, r.Stroke(StrokeStyle{Color: "red", Width: 2, Round: true}))
	assert.Equal(t, 1, r.Count("moveTo"))
	assert.Equal(t, []float64{3, 4}, r.Calls("lineTo")[0].Args)
	assert.True(t, r.Calls("stroke")[0].Style.Round)

	r.Reset()
	assert.Empty(t, r.Ops)
}

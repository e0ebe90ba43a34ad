package shape

import (
	"encoding/json"
	"testing"

	"ShapeBoard/internal/surface"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 20

var stamp = Stamp{ID: "id-1", Color: "#ff0000", LineWidth: 4, CanvasSize: Size{Width: 960, Height: 540}}

func handler(t *testing.T, k Kind) Handler {
	t.Helper()
	h, err := HandlerFor(k, tol)
	require.NoError(t, err)
	require.Equal(t, k, h.Kind())
	return h
}

// clicks feeds points into h and returns the final buffer and any completed drawings.
func clicks(h Handler, pts ...Point) ([]Point, []Drawing) {
	var buf []Point
	var done []Drawing
	for _, p := range pts {
		var d Drawing
		var ok bool
		buf, d, ok = h.Click(buf, p, stamp)
		if ok {
			done = append(done, d)
		}
	}
	return buf, done
}

func TestPolygonClosesOnFirstPoint(t *testing.T) {
	h := handler(t, Polygon)
	for n := 3; n <= 6; n++ {
		pts := make([]Point, 0, n+1)
		for i := 0; i < n; i++ {
			pts = append(pts, Pt(float64(100+i*50), float64(100+(i%2)*60)))
		}
		pts = append(pts, Pt(105, 95))

		buf, done := clicks(h, pts...)
		require.Len(t, done, 1, "n=%d", n)
		assert.Len(t, done[0].Points, n)
		assert.Empty(t, buf)
		assert.Equal(t, Polygon, done[0].Type)
		assert.Equal(t, stamp.Color, done[0].Color)
		assert.Equal(t, stamp.CanvasSize, done[0].CanvasSize)
		assert.Zero(t, done[0].LineWidth)
	}
}

func TestPolygonIgnoresEarlyClose(t *testing.T) {
	h := handler(t, Polygon)
	buf, done := clicks(h, Pt(100, 100), Pt(200, 100), Pt(110, 110))
	assert.Empty(t, done)
	assert.Equal(t, []Point{Pt(100, 100), Pt(200, 100)}, buf)
}

func TestPolygonCloseUsesPerAxisThreshold(t *testing.T) {
	h := handler(t, Polygon)
	// 19 on each axis is ~26.9 away but still within the per-axis threshold.
	_, done := clicks(h, Pt(100, 100), Pt(200, 100), Pt(200, 200), Pt(119, 119))
	assert.Len(t, done, 1)

	buf, done := clicks(h, Pt(100, 100), Pt(200, 100), Pt(200, 200), Pt(120, 100))
	assert.Empty(t, done)
	assert.Len(t, buf, 4)
}

func TestPolygonContains(t *testing.T) {
	h := handler(t, Polygon)
	d := Drawing{Type: Polygon, Points: []Point{Pt(0, 0), Pt(100, 0), Pt(100, 100), Pt(50, 40), Pt(0, 100)}}
	in, err := h.Contains(d, Pt(10, 10))
	require.NoError(t, err)
	assert.True(t, in)

	in, _ = h.Contains(d, Pt(50, 80)) // inside the notch
	assert.False(t, in)
	in, _ = h.Contains(d, Pt(150, 50))
	assert.False(t, in)
}

func TestRectangleClickOrderIndependent(t *testing.T) {
	h := handler(t, Rectangle)
	for _, pair := range [][2]Point{
		{Pt(100, 100), Pt(200, 150)},
		{Pt(200, 150), Pt(100, 100)},
		{Pt(200, 100), Pt(100, 150)},
		{Pt(100, 150), Pt(200, 100)},
	} {
		buf, done := clicks(h, pair[0], pair[1])
		require.Len(t, done, 1)
		assert.Empty(t, buf)
		d := done[0]
		assert.Equal(t, []Point{pair[0], pair[1]}, d.Points)

		in, err := h.Contains(d, Pt(150, 125))
		require.NoError(t, err)
		assert.True(t, in)
		in, _ = h.Contains(d, Pt(300, 300))
		assert.False(t, in)
		in, _ = h.Contains(d, Pt(100, 100))
		assert.True(t, in, "edges are inclusive")
	}
}

func TestRectangleRenderNormalises(t *testing.T) {
	h := handler(t, Rectangle)
	rec := surface.NewRecorder(960, 540)
	d := Drawing{Type: Rectangle, Color: "blue", Points: []Point{Pt(200, 150), Pt(100, 100)}}
	require.NoError(t, h.Render(rec, d))
	rects := rec.Calls("rect")
	require.Len(t, rects, 1)
	assert.Equal(t, []float64{100, 100, 100, 50}, rects[0].Args)
	assert.Equal(t, "blue", rec.Calls("fill")[0].Style.Color)
}

func TestRectangleVertexAtSynthesisesCorners(t *testing.T) {
	h := handler(t, Rectangle)
	d := Drawing{Type: Rectangle, Points: []Point{Pt(100, 100), Pt(200, 150)}}
	tests := map[Point]int{
		Pt(101, 99):  0,
		Pt(199, 151): 1,
		Pt(200, 100): 2,
		Pt(100, 150): 3,
		Pt(150, 125): NoVertex,
	}
	for p, want := range tests {
		got, err := h.VertexAt(d, p)
		require.NoError(t, err)
		assert.Equal(t, want, got, "%v", p)
	}
}

func TestRectangleResizeSyntheticCorners(t *testing.T) {
	h := handler(t, Rectangle)
	d := Drawing{Type: Rectangle, Points: []Point{Pt(100, 100), Pt(200, 150)}}

	out, err := h.Resize(d, 2, Pt(200, 100), Pt(220, 90))
	require.NoError(t, err)
	assert.Equal(t, []Point{Pt(100, 90), Pt(220, 150)}, out.Points)
	assert.Equal(t, []Point{Pt(100, 100), Pt(200, 150)}, d.Points, "input untouched")

	out, err = h.Resize(d, 3, Pt(100, 150), Pt(90, 170))
	require.NoError(t, err)
	assert.Equal(t, []Point{Pt(90, 100), Pt(200, 170)}, out.Points)

	out, err = h.Resize(d, 1, Pt(200, 150), Pt(205, 155))
	require.NoError(t, err)
	assert.Equal(t, []Point{Pt(100, 100), Pt(205, 155)}, out.Points)

	_, err = h.Resize(d, 4, Pt(0, 0), Pt(1, 1))
	assert.ErrorIs(t, err, ErrMissingData)
}

func TestCircleConstruction(t *testing.T) {
	h := handler(t, Circle)
	buf, done := clicks(h, Pt(100, 100), Pt(130, 140))
	require.Len(t, done, 1)
	assert.Empty(t, buf)
	d := done[0]
	assert.Equal(t, []Point{Pt(100, 100)}, d.Points)
	assert.InDelta(t, 50, d.Radius, 1e-9)

	in, err := h.Contains(d, Pt(100+d.Radius-1, 100))
	require.NoError(t, err)
	assert.True(t, in)
	in, _ = h.Contains(d, Pt(100+d.Radius+10, 100))
	assert.False(t, in)
}

func TestCircleVertexBand(t *testing.T) {
	h := handler(t, Circle)
	d := Drawing{Type: Circle, Points: []Point{Pt(100, 100)}, Radius: 50}
	v, err := h.VertexAt(d, Pt(152, 100))
	require.NoError(t, err)
	assert.Equal(t, 0, v)
	v, _ = h.VertexAt(d, Pt(100, 52))
	assert.Equal(t, 0, v)
	v, _ = h.VertexAt(d, Pt(100, 100))
	assert.Equal(t, NoVertex, v)
	v, _ = h.VertexAt(d, Pt(160, 100))
	assert.Equal(t, NoVertex, v)
}

func TestCircleResizeFollowsPointer(t *testing.T) {
	h := handler(t, Circle)
	d := Drawing{Type: Circle, Points: []Point{Pt(100, 100)}, Radius: 50}
	out, err := h.Resize(d, 0, Pt(150, 100), Pt(100, 180))
	require.NoError(t, err)
	assert.InDelta(t, 80, out.Radius, 1e-9)
	out, err = h.Resize(out, 0, Pt(100, 180), Pt(103, 104))
	require.NoError(t, err)
	assert.InDelta(t, 5, out.Radius, 1e-9)
}

func TestCircleMissingRadius(t *testing.T) {
	h := handler(t, Circle)
	d := Drawing{Type: Circle, Points: []Point{Pt(100, 100)}}
	_, err := h.Contains(d, Pt(100, 100))
	assert.ErrorIs(t, err, ErrMissingData)
	_, err = h.VertexAt(d, Pt(100, 100))
	assert.ErrorIs(t, err, ErrMissingData)
	assert.ErrorIs(t, h.Render(surface.NewRecorder(10, 10), d), ErrMissingData)
}

func TestTriangleMirrorsThirdPoint(t *testing.T) {
	h := handler(t, Triangle)
	_, done := clicks(h, Pt(200, 100), Pt(260, 200))
	require.Len(t, done, 1)
	assert.Equal(t, []Point{Pt(200, 100), Pt(260, 200), Pt(140, 200)}, done[0].Points)

	in, err := h.Contains(done[0], Pt(200, 180))
	require.NoError(t, err)
	assert.True(t, in)
	in, _ = h.Contains(done[0], Pt(150, 120))
	assert.False(t, in)
	in, _ = h.Contains(done[0], Pt(200, 250))
	assert.False(t, in)
}

func TestTriangleDragVertex(t *testing.T) {
	h := handler(t, Triangle)
	d := Drawing{Type: Triangle, Points: []Point{Pt(200, 100), Pt(260, 200), Pt(140, 200)}}
	v, err := h.VertexAt(d, Pt(142, 198))
	require.NoError(t, err)
	require.Equal(t, 2, v)
	out, err := h.Resize(d, v, Pt(142, 198), Pt(132, 208))
	require.NoError(t, err)
	assert.Equal(t, Pt(130, 210), out.Points[2])
}

func TestLineConstruction(t *testing.T) {
	h := handler(t, Line)
	_, done := clicks(h, Pt(0, 0), Pt(100, 0))
	require.Len(t, done, 1)
	d := done[0]
	assert.Equal(t, stamp.LineWidth, d.LineWidth)

	in, err := h.Contains(d, Pt(50, 1.5))
	require.NoError(t, err)
	assert.True(t, in)
	in, _ = h.Contains(d, Pt(50, 10))
	assert.False(t, in)

	rec := surface.NewRecorder(100, 100)
	require.NoError(t, h.Render(rec, d))
	st := rec.Calls("stroke")[0].Style
	assert.True(t, st.Round)
	assert.Equal(t, 4.0, st.Width)
}

func TestLineRenderRequiresWidth(t *testing.T) {
	h := handler(t, Line)
	d := Drawing{Type: Line, Color: "black", Points: []Point{Pt(0, 0), Pt(1, 1)}}
	assert.ErrorIs(t, h.Render(surface.NewRecorder(10, 10), d), ErrMissingData)
}

func TestFreehandCapture(t *testing.T) {
	h := handler(t, Freehand)
	c, ok := h.(Capturer)
	require.True(t, ok)

	buf, _, done := h.Click(nil, Pt(1, 1), stamp)
	assert.False(t, done)
	assert.Empty(t, buf)

	buf = c.Begin(Pt(0, 0))
	for i := 1; i <= 4; i++ {
		buf = c.Extend(buf, Pt(float64(i), float64(i)))
	}
	_, ok = c.Finish(buf, stamp)
	assert.False(t, ok, "five points are discarded")

	buf = c.Extend(buf, Pt(5, 5))
	d, ok := c.Finish(buf, stamp)
	require.True(t, ok)
	assert.Len(t, d.Points, 6)
	assert.Equal(t, Freehand, d.Type)
	assert.Equal(t, stamp.LineWidth, d.LineWidth)

	in, err := h.Contains(d, Pt(2.5, 2.5))
	require.NoError(t, err)
	assert.True(t, in)
}

func TestPreviewDoesNotMutateBuffer(t *testing.T) {
	buf := []Point{Pt(10, 10), Pt(50, 10), Pt(50, 50)}
	want := clonePoints(buf)
	for _, k := range Kinds() {
		h := handler(t, k)
		rec := surface.NewRecorder(100, 100)
		require.NoError(t, h.Preview(rec, buf[:1:1], Pt(70, 70), "green", 3), k.String())
		require.NoError(t, h.Preview(rec, buf, Pt(70, 70), "green", 3), k.String())
		assert.Equal(t, want, buf, k.String())
		assert.NotZero(t, rec.Count("stroke"), k.String())

		rec.Reset()
		require.NoError(t, h.Preview(rec, nil, Pt(70, 70), "green", 3))
		assert.Empty(t, rec.Ops)
	}
}

func TestTrianglePreviewIsClosed(t *testing.T) {
	h := handler(t, Triangle)
	rec := surface.NewRecorder(100, 100)
	require.NoError(t, h.Preview(rec, []Point{Pt(50, 10)}, Pt(70, 60), "black", 0))
	assert.Equal(t, 1, rec.Count("close"))
	assert.Equal(t, []float64{30, 60}, rec.Calls("lineTo")[1].Args)
}

func TestHandlerForRejectsBadInput(t *testing.T) {
	_, err := HandlerFor(Polygon, 0)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
	_, err = HandlerFor(Kind(42), 20)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)

	r, err := NewRegistry(20)
	require.NoError(t, err)
	for _, k := range Kinds() {
		h, err := r.Get(k)
		require.NoError(t, err)
		assert.Equal(t, k, h.Kind())
	}
	_, err = r.Get(Kind(-1))
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	got, err := ParseKind(" Circle ")
	require.NoError(t, err)
	assert.Equal(t, Circle, got)

	_, err = ParseKind("hexagon")
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
	assert.Equal(t, "Kind(9)", Kind(9).String())
}

func TestDrawingJSON(t *testing.T) {
	in := `{"type":"circle","points":[{"x":1,"y":2}],"color":"red","radius":5,"canvasSize":{"width":960,"height":540}}`
	var d Drawing
	require.NoError(t, json.Unmarshal([]byte(in), &d))
	assert.Equal(t, Circle, d.Type)
	assert.Equal(t, 5.0, d.Radius)
	assert.Equal(t, Size{Width: 960, Height: 540}, d.CanvasSize)

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, in, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"type":"blob"}`), &d))
}

func TestDrawingTranslateCopies(t *testing.T) {
	d := Drawing{Type: Line, Points: []Point{Pt(0, 0), Pt(10, 10)}}
	moved := d.Translate(5, -5)
	assert.Equal(t, []Point{Pt(5, -5), Pt(15, 5)}, moved.Points)
	assert.Equal(t, []Point{Pt(0, 0), Pt(10, 10)}, d.Points)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Drawing{Type: Rectangle, Points: []Point{Pt(0, 0), Pt(1, 1)}}.Validate())
	assert.ErrorIs(t, Drawing{Type: Polygon, Points: []Point{Pt(0, 0), Pt(1, 1)}}.Validate(), ErrMissingData)
	assert.ErrorIs(t, Drawing{Type: Freehand, Points: []Point{Pt(0, 0), Pt(1, 1)}}.Validate(), ErrMissingData)
	assert.ErrorIs(t, Drawing{Type: Kind(7)}.Validate(), ErrInvalidConfiguration)
}

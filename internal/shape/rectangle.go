package shape

import (
	"fmt"

	"ShapeBoard/internal/surface"
)

// Rectangles store two diagonal corners: Points[0] is where the drag started
// and Points[1] where it ended. The other two corners are synthesised for
// handle hit testing as indices 2 (end.X, start.Y) and 3 (start.X, end.Y).
type rectangleHandler struct{ tol float64 }

func (rectangleHandler) Kind() Kind { return Rectangle }

func (rectangleHandler) Click(buf []Point, at Point, st Stamp) ([]Point, Drawing, bool) {
	buf = append(buf, at)
	if len(buf) < 2 {
		return buf, Drawing{}, false
	}
	return buf[:0], st.drawing(Rectangle, buf[:2]), true
}

func (rectangleHandler) Render(s surface.Surface, d Drawing) error {
	if err := d.Validate(); err != nil {
		return err
	}
	tl, br := normalize(d.Points[0], d.Points[1])
	s.BeginPath()
	s.Rect(tl.X, tl.Y, br.X-tl.X, br.Y-tl.Y)
	return s.Fill(d.Color)
}

func (rectangleHandler) Preview(s surface.Surface, buf []Point, live Point, color string, _ float64) error {
	if len(buf) == 0 {
		return nil
	}
	tl, br := normalize(buf[0], live)
	s.BeginPath()
	s.Rect(tl.X, tl.Y, br.X-tl.X, br.Y-tl.Y)
	return s.Stroke(surface.StrokeStyle{Color: color, Width: previewWidth})
}

func (rectangleHandler) Contains(d Drawing, p Point) (bool, error) {
	if len(d.Points) < 2 {
		return false, fmt.Errorf("%w: rectangle needs 2 points", ErrMissingData)
	}
	tl, br := normalize(d.Points[0], d.Points[1])
	return p.X >= tl.X && p.X <= br.X && p.Y >= tl.Y && p.Y <= br.Y, nil
}

func corners(d Drawing) []Point {
	start, end := d.Points[0], d.Points[1]
	return []Point{start, end, {X: end.X, Y: start.Y}, {X: start.X, Y: end.Y}}
}

func (h rectangleHandler) VertexAt(d Drawing, p Point) (int, error) {
	if len(d.Points) < 2 {
		return NoVertex, fmt.Errorf("%w: rectangle needs 2 points", ErrMissingData)
	}
	return vertexAt(corners(d), p, h.tol), nil
}

// Resize drags a stored corner directly. The synthetic corners move one axis
// of each stored corner so the rectangle stays axis-aligned.
func (rectangleHandler) Resize(d Drawing, vertex int, from, to Point) (Drawing, error) {
	if len(d.Points) < 2 {
		return d, fmt.Errorf("%w: rectangle needs 2 points", ErrMissingData)
	}
	delta := to.Sub(from)
	switch vertex {
	case 0, 1:
		return dragVertex(d, vertex, from, to)
	case 2:
		out := d.Clone()
		out.Points[1].X += delta.X
		out.Points[0].Y += delta.Y
		return out, nil
	case 3:
		out := d.Clone()
		out.Points[0].X += delta.X
		out.Points[1].Y += delta.Y
		return out, nil
	}
	return d, fmt.Errorf("%w: rectangle has no vertex %d", ErrMissingData, vertex)
}

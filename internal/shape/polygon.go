package shape

import "ShapeBoard/internal/surface"

type polygonHandler struct{ tol float64 }

func (polygonHandler) Kind() Kind { return Polygon }

// Click closes the polygon when the click lands near the first point and at
// least three points are buffered. A closing click with fewer points is
// ignored.
func (h polygonHandler) Click(buf []Point, at Point, st Stamp) ([]Point, Drawing, bool) {
	if len(buf) > 0 && at.Near(buf[0], h.tol) {
		if len(buf) > 2 {
			return buf[:0], st.drawing(Polygon, buf), true
		}
		return buf, Drawing{}, false
	}
	return append(buf, at), Drawing{}, false
}

func (polygonHandler) Render(s surface.Surface, d Drawing) error {
	if err := d.Validate(); err != nil {
		return err
	}
	return fillPolygon(s, d.Points, d.Color)
}

func (polygonHandler) Preview(s surface.Surface, buf []Point, live Point, color string, _ float64) error {
	if len(buf) == 0 {
		return nil
	}
	return strokePolyline(s, []Point{buf[len(buf)-1], live}, surface.StrokeStyle{Color: color, Width: previewWidth})
}

// Contains uses even-odd ray casting.
func (polygonHandler) Contains(d Drawing, p Point) (bool, error) {
	pts := d.Points
	if len(pts) < 3 {
		return false, nil
	}
	inside := false
	for i, j := 0, len(pts)-1; i < len(pts); j, i = i, i+1 {
		pi, pj := pts[i], pts[j]
		if (pi.Y > p.Y) != (pj.Y > p.Y) &&
			p.X < (pj.X-pi.X)*(p.Y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			inside = !inside
		}
	}
	return inside, nil
}

func (h polygonHandler) VertexAt(d Drawing, p Point) (int, error) {
	return vertexAt(d.Points, p, h.tol), nil
}

func (polygonHandler) Resize(d Drawing, vertex int, from, to Point) (Drawing, error) {
	return dragVertex(d, vertex, from, to)
}

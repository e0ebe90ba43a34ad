package shape

import "ShapeBoard/internal/surface"

type triangleHandler struct{ tol float64 }

func (triangleHandler) Kind() Kind { return Triangle }

// apex mirrors second across first's x coordinate at second's height, giving
// an isosceles triangle with its apex at first.
func apex(first, second Point) Point {
	return Point{X: first.X - (second.X - first.X), Y: second.Y}
}

func (triangleHandler) Click(buf []Point, at Point, st Stamp) ([]Point, Drawing, bool) {
	buf = append(buf, at)
	if len(buf) < 2 {
		return buf, Drawing{}, false
	}
	d := st.drawing(Triangle, []Point{buf[0], buf[1], apex(buf[0], buf[1])})
	return buf[:0], d, true
}

func (triangleHandler) Render(s surface.Surface, d Drawing) error {
	if err := d.Validate(); err != nil {
		return err
	}
	return fillPolygon(s, d.Points[:3], d.Color)
}

func (triangleHandler) Preview(s surface.Surface, buf []Point, live Point, color string, _ float64) error {
	if len(buf) == 0 {
		return nil
	}
	tracePath(s, []Point{buf[0], live, apex(buf[0], live)}, true)
	return s.Stroke(surface.StrokeStyle{Color: color, Width: previewWidth})
}

// Contains passes when p is on the same side of all three edges.
func (triangleHandler) Contains(d Drawing, p Point) (bool, error) {
	if err := d.Validate(); err != nil {
		return false, err
	}
	p1, p2, p3 := d.Points[0], d.Points[1], d.Points[2]
	a := crossProduct(p, p1, p2)
	b := crossProduct(p, p2, p3)
	c := crossProduct(p, p3, p1)
	return (a >= 0 && b >= 0 && c >= 0) || (a <= 0 && b <= 0 && c <= 0), nil
}

func (h triangleHandler) VertexAt(d Drawing, p Point) (int, error) {
	return vertexAt(d.Points, p, h.tol), nil
}

func (triangleHandler) Resize(d Drawing, vertex int, from, to Point) (Drawing, error) {
	return dragVertex(d, vertex, from, to)
}

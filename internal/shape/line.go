package shape

import "ShapeBoard/internal/surface"

type lineHandler struct{ tol float64 }

func (lineHandler) Kind() Kind { return Line }

func (lineHandler) Click(buf []Point, at Point, st Stamp) ([]Point, Drawing, bool) {
	buf = append(buf, at)
	if len(buf) < 2 {
		return buf, Drawing{}, false
	}
	d := st.drawing(Line, buf[:2])
	d.LineWidth = st.LineWidth
	return buf[:0], d, true
}

func (lineHandler) Render(s surface.Surface, d Drawing) error {
	if err := d.Validate(); err != nil {
		return err
	}
	return strokePolyline(s, d.Points[:2], surface.StrokeStyle{Color: d.Color, Width: d.LineWidth, Round: true})
}

func (lineHandler) Preview(s surface.Surface, buf []Point, live Point, color string, lineWidth float64) error {
	if len(buf) == 0 {
		return nil
	}
	return strokePolyline(s, []Point{buf[0], live}, surface.StrokeStyle{Color: color, Width: lineWidth, Round: true})
}

// Contains is a proximity test against the stroked segment.
func (lineHandler) Contains(d Drawing, p Point) (bool, error) {
	if err := d.Validate(); err != nil {
		return false, err
	}
	return polylineContains(d.Points[:2], p, d.LineWidth), nil
}

func (h lineHandler) VertexAt(d Drawing, p Point) (int, error) {
	return vertexAt(d.Points, p, h.tol), nil
}

func (lineHandler) Resize(d Drawing, vertex int, from, to Point) (Drawing, error) {
	return dragVertex(d, vertex, from, to)
}

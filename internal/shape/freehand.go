package shape

import "ShapeBoard/internal/surface"

// minFreehandPoints is the number of captured points a stroke must exceed to
// be kept.
const minFreehandPoints = 5

// freehandHandler builds strokes from drag capture; clicks do nothing.
type freehandHandler struct{ tol float64 }

var _ Capturer = freehandHandler{}

func (freehandHandler) Kind() Kind { return Freehand }

func (freehandHandler) Click(buf []Point, _ Point, _ Stamp) ([]Point, Drawing, bool) {
	return buf, Drawing{}, false
}

func (freehandHandler) Begin(at Point) []Point {
	return []Point{at}
}

func (freehandHandler) Extend(buf []Point, at Point) []Point {
	return append(buf, at)
}

func (freehandHandler) Finish(buf []Point, st Stamp) (Drawing, bool) {
	if len(buf) <= minFreehandPoints {
		return Drawing{}, false
	}
	d := st.drawing(Freehand, buf)
	d.LineWidth = st.LineWidth
	return d, true
}

func (freehandHandler) Render(s surface.Surface, d Drawing) error {
	if err := d.Validate(); err != nil {
		return err
	}
	return strokePolyline(s, d.Points, surface.StrokeStyle{Color: d.Color, Width: d.LineWidth, Round: true})
}

func (freehandHandler) Preview(s surface.Surface, buf []Point, live Point, color string, lineWidth float64) error {
	if len(buf) == 0 {
		return nil
	}
	pts := append(clonePoints(buf), live)
	return strokePolyline(s, pts, surface.StrokeStyle{Color: color, Width: lineWidth, Round: true})
}

func (freehandHandler) Contains(d Drawing, p Point) (bool, error) {
	if err := d.Validate(); err != nil {
		return false, err
	}
	return polylineContains(d.Points, p, d.LineWidth), nil
}

func (h freehandHandler) VertexAt(d Drawing, p Point) (int, error) {
	return vertexAt(d.Points, p, h.tol), nil
}

func (freehandHandler) Resize(d Drawing, vertex int, from, to Point) (Drawing, error) {
	return dragVertex(d, vertex, from, to)
}

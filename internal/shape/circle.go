package shape

import (
	"fmt"
	"math"

	"ShapeBoard/internal/surface"
)

type circleHandler struct{ tol float64 }

func (circleHandler) Kind() Kind { return Circle }

// Click takes the centre first; the second click sets the radius.
func (circleHandler) Click(buf []Point, at Point, st Stamp) ([]Point, Drawing, bool) {
	buf = append(buf, at)
	if len(buf) < 2 {
		return buf, Drawing{}, false
	}
	d := st.drawing(Circle, buf[:1])
	d.Radius = buf[0].Distance(at)
	return buf[:0], d, true
}

func (circleHandler) Render(s surface.Surface, d Drawing) error {
	if err := d.Validate(); err != nil {
		return err
	}
	c := d.Points[0]
	s.BeginPath()
	s.Circle(c.X, c.Y, d.Radius)
	return s.Fill(d.Color)
}

func (circleHandler) Preview(s surface.Surface, buf []Point, live Point, color string, _ float64) error {
	if len(buf) == 0 {
		return nil
	}
	c := buf[0]
	s.BeginPath()
	s.Circle(c.X, c.Y, c.Distance(live))
	return s.Stroke(surface.StrokeStyle{Color: color, Width: previewWidth})
}

func requireRadius(d Drawing) error {
	if len(d.Points) == 0 {
		return fmt.Errorf("%w: circle centre is required", ErrMissingData)
	}
	if d.Radius <= 0 {
		return fmt.Errorf("%w: circle radius is required", ErrMissingData)
	}
	return nil
}

func (circleHandler) Contains(d Drawing, p Point) (bool, error) {
	if err := requireRadius(d); err != nil {
		return false, err
	}
	return d.Points[0].Distance(p) <= d.Radius, nil
}

// VertexAt treats the circumference as a single handle at index 0: the pointer
// grabs it when it is within tol/8 of the radius.
func (h circleHandler) VertexAt(d Drawing, p Point) (int, error) {
	if err := requireRadius(d); err != nil {
		return NoVertex, err
	}
	if math.Abs(d.Points[0].Distance(p)-d.Radius) <= h.tol/8 {
		return 0, nil
	}
	return NoVertex, nil
}

// Resize sets the radius to the live pointer distance, whatever the handle.
func (circleHandler) Resize(d Drawing, _ int, _, to Point) (Drawing, error) {
	if len(d.Points) == 0 {
		return d, fmt.Errorf("%w: circle centre is required", ErrMissingData)
	}
	out := d.Clone()
	out.Radius = out.Points[0].Distance(to)
	return out, nil
}

package shape

import "fmt"

// Drawing is a completed shape record. It is the unit of persistence: a
// drawing list serialises to JSON as a plain array of these.
type Drawing struct {
	ID        string  `json:"id,omitempty"`
	Type      Kind    `json:"type"`
	Points    []Point `json:"points"`
	Color     string  `json:"color"`
	Radius    float64 `json:"radius,omitempty"`
	LineWidth float64 `json:"lineWidth,omitempty"`
	// CanvasSize is the surface size when the drawing was created or last
	// rescaled.
	CanvasSize Size `json:"canvasSize"`
}

// Clone returns a deep copy.
func (d Drawing) Clone() Drawing {
	d.Points = clonePoints(d.Points)
	return d
}

// Translate returns a copy with every point moved by (dx, dy).
func (d Drawing) Translate(dx, dy float64) Drawing {
	out := d.Clone()
	for i := range out.Points {
		out.Points[i].X += dx
		out.Points[i].Y += dy
	}
	return out
}

// Validate checks that the drawing carries the data its kind needs.
func (d Drawing) Validate() error {
	if !d.Type.Valid() {
		return fmt.Errorf("%w: unknown drawing type %d", ErrInvalidConfiguration, int(d.Type))
	}
	need := map[Kind]int{Polygon: 3, Rectangle: 2, Circle: 1, Triangle: 3, Line: 2, Freehand: 2}[d.Type]
	if len(d.Points) < need {
		return fmt.Errorf("%w: %s needs %d points, has %d", ErrMissingData, d.Type, need, len(d.Points))
	}
	switch d.Type {
	case Circle:
		if d.Radius <= 0 {
			return fmt.Errorf("%w: circle radius is required", ErrMissingData)
		}
	case Line, Freehand:
		if d.LineWidth <= 0 {
			return fmt.Errorf("%w: line width is required for %s drawings", ErrMissingData, d.Type)
		}
	}
	return nil
}

// CloneAll deep-copies a drawing list.
func CloneAll(list []Drawing) []Drawing {
	if list == nil {
		return nil
	}
	out := make([]Drawing, len(list))
	for i, d := range list {
		out[i] = d.Clone()
	}
	return out
}

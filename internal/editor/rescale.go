package editor

import "ShapeBoard/internal/shape"

// rescale maps d from the surface size it was drawn on to size, scaling each
// axis independently. A circle's radius follows the horizontal factor, taken
// as the distance from the scaled centre to the scaled point centre+(r, 0).
// Drawings without a recorded size are left alone.
func rescale(d shape.Drawing, size shape.Size) shape.Drawing {
	from := d.CanvasSize
	if from.IsZero() || size.IsZero() || from == size {
		return d
	}
	sx, sy := size.Width/from.Width, size.Height/from.Height
	out := d.Clone()
	for i, p := range out.Points {
		out.Points[i] = shape.Pt(p.X*sx, p.Y*sy)
	}
	if d.Type == shape.Circle && len(d.Points) > 0 {
		c := d.Points[0]
		edge := shape.Pt((c.X+d.Radius)*sx, c.Y*sy)
		out.Radius = out.Points[0].Distance(edge)
	}
	out.CanvasSize = size
	return out
}

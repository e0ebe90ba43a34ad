// Package marker draws and hit-tests the small "X" delete icon shown at a
// drawing's reference corner while the editor is in draw mode.
package marker

import (
	"fmt"
	"math"

	"ShapeBoard/internal/shape"
	"ShapeBoard/internal/surface"
)

// hitScale widens the clickable box around the icon relative to its size.
const hitScale = 1.2

// AnchorPolicy picks the point of a drawing where its marker sits. Rectangles
// and circles have fixed anchors; the policy covers every other kind.
type AnchorPolicy func(pts []shape.Point, surfaceSize shape.Size) shape.Point

// NearestTopRight picks the stored point closest to the surface's top-right
// corner.
func NearestTopRight(pts []shape.Point, size shape.Size) shape.Point {
	corner := shape.Pt(size.Width, 0)
	best := pts[0]
	bestDist := best.Distance(corner)
	for _, p := range pts[1:] {
		if d := p.Distance(corner); d < bestDist {
			best, bestDist = p, d
		}
	}
	return best
}

// Options configures a Marker.
type Options struct {
	Size float64
	// Color strokes the ring and glyph. Empty means the drawing's own colour.
	Color      string
	Background string
	Visible    bool
	// Anchor overrides NearestTopRight.
	Anchor AnchorPolicy
}

// Marker renders and hit-tests delete icons.
type Marker struct {
	s    surface.Surface
	opts Options
}

// New returns a marker painting on s.
func New(s surface.Surface, opts Options) (*Marker, error) {
	if opts.Size <= 0 {
		return nil, fmt.Errorf("%w: cross icon size must be positive, got %g", shape.ErrInvalidConfiguration, opts.Size)
	}
	if opts.Background == "" {
		opts.Background = "white"
	}
	if opts.Anchor == nil {
		opts.Anchor = NearestTopRight
	}
	return &Marker{s: s, opts: opts}, nil
}

// SetVisible shows or hides every marker.
func (m *Marker) SetVisible(v bool) { m.opts.Visible = v }

// Visible reports whether markers are shown.
func (m *Marker) Visible() bool { return m.opts.Visible }

func (m *Marker) surfaceSize() shape.Size {
	w, h := m.s.Size()
	return shape.Size{Width: w, Height: h}
}

// Anchor returns the reference point of d.
func (m *Marker) Anchor(d shape.Drawing) (shape.Point, error) {
	if len(d.Points) == 0 {
		return shape.Point{}, fmt.Errorf("%w: %s has no points", shape.ErrMissingData, d.Type)
	}
	switch d.Type {
	case shape.Rectangle:
		if len(d.Points) < 2 {
			return shape.Point{}, fmt.Errorf("%w: rectangle needs 2 points", shape.ErrMissingData)
		}
		start, end := d.Points[0], d.Points[1]
		return shape.Pt(math.Max(start.X, end.X), math.Min(start.Y, end.Y)), nil
	case shape.Circle:
		if d.Radius <= 0 {
			return shape.Point{}, fmt.Errorf("%w: circle radius is required", shape.ErrMissingData)
		}
		c := d.Points[0]
		const angle = math.Pi / 4
		return shape.Pt(c.X+d.Radius*math.Cos(angle), c.Y-d.Radius*math.Sin(angle)), nil
	}
	return m.opts.Anchor(d.Points, m.surfaceSize()), nil
}

// Render draws the icon for d. Hidden markers draw nothing.
func (m *Marker) Render(d shape.Drawing) error {
	if !m.opts.Visible {
		return nil
	}
	at, err := m.Anchor(d)
	if err != nil {
		return err
	}
	ink := m.opts.Color
	if ink == "" {
		ink = d.Color
	}
	size := m.opts.Size
	style := surface.StrokeStyle{Color: ink, Width: 2}

	m.s.BeginPath()
	m.s.Circle(at.X, at.Y, size)
	if err := m.s.Fill(m.opts.Background); err != nil {
		return err
	}
	if err := m.s.Stroke(style); err != nil {
		return err
	}

	half := size / 2
	m.s.BeginPath()
	m.s.MoveTo(at.X-half, at.Y-half)
	m.s.LineTo(at.X+half, at.Y+half)
	m.s.MoveTo(at.X+half, at.Y-half)
	m.s.LineTo(at.X-half, at.Y+half)
	return m.s.Stroke(style)
}

// Hit returns the index of the last drawing whose icon contains p, or -1.
func (m *Marker) Hit(list []shape.Drawing, p shape.Point) (int, error) {
	if !m.opts.Visible {
		return -1, nil
	}
	for i := len(list) - 1; i >= 0; i-- {
		at, err := m.Anchor(list[i])
		if err != nil {
			return -1, err
		}
		if at.Near(p, m.opts.Size*hitScale) {
			return i, nil
		}
	}
	return -1, nil
}

// Click removes the most recently added drawing whose icon contains p and
// returns the new list. The input slice is not modified.
func (m *Marker) Click(list []shape.Drawing, p shape.Point) ([]shape.Drawing, bool, error) {
	i, err := m.Hit(list, p)
	if err != nil || i < 0 {
		return list, false, err
	}
	out := make([]shape.Drawing, 0, len(list)-1)
	out = append(out, list[:i]...)
	out = append(out, list[i+1:]...)
	m.s.SetCursor(surface.CursorCrosshair)
	return out, true, nil
}

// Hover sets the pointer cursor over an icon and the crosshair elsewhere.
func (m *Marker) Hover(list []shape.Drawing, p shape.Point) error {
	if !m.opts.Visible {
		return nil
	}
	i, err := m.Hit(list, p)
	if err != nil {
		return err
	}
	if i >= 0 {
		m.s.SetCursor(surface.CursorPointer)
	} else {
		m.s.SetCursor(surface.CursorCrosshair)
	}
	return nil
}

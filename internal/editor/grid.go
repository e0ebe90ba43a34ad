package editor

import (
	"fmt"

	"ShapeBoard/internal/surface"
)

// grid paints the background guide lines.
type grid struct {
	size    float64
	color   string
	visible bool
}

func (g grid) render(s surface.Surface) error {
	if !g.visible {
		return nil
	}
	if g.size <= 0 {
		return fmt.Errorf("%w: grid size must be positive while the grid is shown, got %g", ErrInvalidConfiguration, g.size)
	}
	w, h := s.Size()
	s.BeginPath()
	for x := 0.0; x <= w; x += g.size {
		s.MoveTo(x, 0)
		s.LineTo(x, h)
	}
	for y := 0.0; y <= h; y += g.size {
		s.MoveTo(0, y)
		s.LineTo(w, y)
	}
	return s.Stroke(surface.StrokeStyle{Color: g.color, Width: 1})
}

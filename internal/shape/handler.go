// Package shape holds the drawing data model and the per-kind geometry:
// construction from clicks, rendering, previews, hit testing and vertex
// handles.
package shape

import (
	"fmt"

	"ShapeBoard/internal/surface"
)

// NoVertex is returned by VertexAt when no handle is under the pointer.
const NoVertex = -1

// previewWidth is the stroke width of construction guides.
const previewWidth = 2

// Stamp carries the attributes a newly completed drawing receives.
type Stamp struct {
	ID         string
	Color      string
	LineWidth  float64
	CanvasSize Size
}

func (st Stamp) drawing(k Kind, pts []Point) Drawing {
	return Drawing{
		ID:         st.ID,
		Type:       k,
		Points:     clonePoints(pts),
		Color:      st.Color,
		CanvasSize: st.CanvasSize,
	}
}

// Handler is the geometry of one shape kind.
type Handler interface {
	Kind() Kind

	// Click feeds a click into the in-progress buffer. It returns the new
	// buffer and, when the click completes the shape, the drawing and true.
	// The returned buffer is empty after a completion.
	Click(buf []Point, at Point, st Stamp) ([]Point, Drawing, bool)

	Render(s surface.Surface, d Drawing) error

	// Preview draws a construction guide for buf plus the live pointer.
	Preview(s surface.Surface, buf []Point, live Point, color string, lineWidth float64) error

	// Contains reports whether p is inside the drawing (the move-mode hit test).
	Contains(d Drawing, p Point) (bool, error)

	// VertexAt returns the index of the handle under p, or NoVertex.
	VertexAt(d Drawing, p Point) (int, error)

	// Resize returns d with the handle at vertex dragged from one pointer
	// position to the next.
	Resize(d Drawing, vertex int, from, to Point) (Drawing, error)
}

// Capturer is implemented by handlers built from a continuous drag rather than
// discrete clicks.
type Capturer interface {
	Begin(at Point) []Point
	Extend(buf []Point, at Point) []Point
	// Finish returns the drawing built from buf, or false when the stroke is
	// too short to keep.
	Finish(buf []Point, st Stamp) (Drawing, bool)
}

// HandlerFor returns the handler for k. tol is the click threshold in pixels.
func HandlerFor(k Kind, tol float64) (Handler, error) {
	if tol <= 0 {
		return nil, fmt.Errorf("%w: click threshold must be positive, got %g", ErrInvalidConfiguration, tol)
	}
	switch k {
	case Polygon:
		return polygonHandler{tol: tol}, nil
	case Rectangle:
		return rectangleHandler{tol: tol}, nil
	case Circle:
		return circleHandler{tol: tol}, nil
	case Triangle:
		return triangleHandler{tol: tol}, nil
	case Line:
		return lineHandler{tol: tol}, nil
	case Freehand:
		return freehandHandler{tol: tol}, nil
	}
	return nil, fmt.Errorf("%w: unknown drawing type %d", ErrInvalidConfiguration, int(k))
}

// Registry holds one handler per kind, built once.
type Registry struct {
	handlers [len(kindNames)]Handler
}

// NewRegistry builds handlers for every kind with the given click threshold.
func NewRegistry(tol float64) (*Registry, error) {
	r := &Registry{}
	for _, k := range Kinds() {
		h, err := HandlerFor(k, tol)
		if err != nil {
			return nil, err
		}
		r.handlers[k] = h
	}
	return r, nil
}

// Get returns the handler for k.
func (r *Registry) Get(k Kind) (Handler, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: unknown drawing type %d", ErrInvalidConfiguration, int(k))
	}
	return r.handlers[k], nil
}

// vertexAt returns the first point within tol/4 of p on both axes.
func vertexAt(pts []Point, p Point, tol float64) int {
	for i, v := range pts {
		if v.Near(p, tol/4) {
			return i
		}
	}
	return NoVertex
}

// dragVertex moves one stored point by the pointer delta.
func dragVertex(d Drawing, vertex int, from, to Point) (Drawing, error) {
	if vertex < 0 || vertex >= len(d.Points) {
		return d, fmt.Errorf("%w: %s has no vertex %d", ErrMissingData, d.Type, vertex)
	}
	out := d.Clone()
	out.Points[vertex] = out.Points[vertex].Add(to.Sub(from))
	return out, nil
}

// tracePath adds pts to the surface's current path as one subpath.
func tracePath(s surface.Surface, pts []Point, closed bool) {
	s.BeginPath()
	for i, p := range pts {
		if i == 0 {
			s.MoveTo(p.X, p.Y)
			continue
		}
		s.LineTo(p.X, p.Y)
	}
	if closed {
		s.ClosePath()
	}
}

func fillPolygon(s surface.Surface, pts []Point, color string) error {
	tracePath(s, pts, true)
	return s.Fill(color)
}

func strokePolyline(s surface.Surface, pts []Point, st surface.StrokeStyle) error {
	tracePath(s, pts, false)
	return s.Stroke(st)
}

// polylineContains reports whether p lies within half the stroke width of any
// segment of pts.
func polylineContains(pts []Point, p Point, lineWidth float64) bool {
	reach := lineWidth / 2
	if reach < 1 {
		reach = 1
	}
	for i := 1; i < len(pts); i++ {
		if segmentDistance(p, pts[i-1], pts[i]) <= reach {
			return true
		}
	}
	return false
}

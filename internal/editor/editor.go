// Package editor is the interactive controller behind a drawing surface. It
// owns the drawing list and the in-progress buffer, turns pointer events into
// shape construction, moves, resizes and deletions, and repaints the surface
// after every visible change.
//
// An Editor is not safe for concurrent use; hosts call it from their UI
// goroutine.
package editor

import (
	"fmt"

	"ShapeBoard/internal/marker"
	"ShapeBoard/internal/shape"
	"ShapeBoard/internal/surface"

	"github.com/google/uuid"
)

// bufferWidth is the stroke width of the in-progress polyline.
const bufferWidth = 2

// Editor drives one surface.
type Editor struct {
	s        surface.Surface
	handlers *shape.Registry
	handler  shape.Handler
	marker   *marker.Marker
	grid     grid

	mode      Mode
	kind      shape.Kind
	color     string
	lineWidth float64
	tol       float64
	rescale   bool

	drawings []shape.Drawing
	buf      []shape.Point
	capture  captureState

	// drag state for move and resize
	target   int
	vertex   int
	dragFrom shape.Point
	dirty    bool

	newID func() string

	// OnChange is called with a copy of the list after every user-driven
	// change: completion, deletion, the end of a move or resize, and clear.
	OnChange func([]shape.Drawing)
}

// New binds an editor to s, sizes the surface and paints it once.
func New(s surface.Surface, cfg Config) (*Editor, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: surface is nil", ErrInvalidSurface)
	}
	kind, err := shape.ParseKind(cfg.DrawingType)
	if err != nil {
		return nil, err
	}
	mode, err := ParseMode(cfg.DrawingMode)
	if err != nil {
		return nil, err
	}
	if err := checkColor(cfg.DrawingColor); err != nil {
		return nil, err
	}
	if cfg.LineWidth <= 0 {
		return nil, fmt.Errorf("%w: line width must be positive, got %g", ErrInvalidConfiguration, cfg.LineWidth)
	}
	handlers, err := shape.NewRegistry(cfg.ClickThreshold)
	if err != nil {
		return nil, err
	}
	mk, err := marker.New(s, marker.Options{
		Size:       cfg.CrossIconSize,
		Color:      cfg.CrossIconColor,
		Background: cfg.CrossIconBackgroundColor,
		Visible:    cfg.ShowCrossIcon,
	})
	if err != nil {
		return nil, err
	}

	size := cfg.SurfaceSize
	if size.IsZero() {
		w, h := s.Size()
		size = shape.Size{Width: w, Height: h}
	}
	if size.IsZero() {
		return nil, fmt.Errorf("%w: surface has no area", ErrInvalidSurface)
	}
	if err := s.Resize(size.Width, size.Height); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSurface, err)
	}

	e := &Editor{
		s:         s,
		handlers:  handlers,
		marker:    mk,
		grid:      grid{size: cfg.GridSize, color: cfg.GridColor, visible: cfg.ShowGrid},
		mode:      mode,
		kind:      kind,
		color:     cfg.DrawingColor,
		lineWidth: cfg.LineWidth,
		tol:       cfg.ClickThreshold,
		rescale:   cfg.ResizeOnCanvasSizeChange,
		drawings:  shape.CloneAll(cfg.Drawings),
		target:    -1,
		vertex:    shape.NoVertex,
		newID:     uuid.NewString,
	}
	if e.handler, err = handlers.Get(kind); err != nil {
		return nil, err
	}
	s.SetCursor(e.idleCursor())
	if err := e.Redraw(); err != nil {
		return nil, err
	}
	return e, nil
}

func checkColor(c string) error {
	if _, err := surface.ParseColor(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}
	return nil
}

// Mode returns the current interaction mode.
func (e *Editor) Mode() Mode { return e.mode }

// Kind returns the shape kind new drawings get.
func (e *Editor) Kind() shape.Kind { return e.kind }

func (e *Editor) Color() string       { return e.color }
func (e *Editor) LineWidth() float64  { return e.lineWidth }
func (e *Editor) ShowGrid() bool      { return e.grid.visible }
func (e *Editor) GridSize() float64   { return e.grid.size }
func (e *Editor) ShowCrossIcon() bool { return e.marker.Visible() }

// SurfaceSize returns the surface's current dimensions.
func (e *Editor) SurfaceSize() shape.Size {
	w, h := e.s.Size()
	return shape.Size{Width: w, Height: h}
}

// InProgress returns a copy of the points placed for the shape being built.
func (e *Editor) InProgress() []shape.Point {
	out := make([]shape.Point, len(e.buf))
	copy(out, e.buf)
	return out
}

// Drawings returns a deep copy of the list. It is never nil.
func (e *Editor) Drawings() []shape.Drawing {
	out := shape.CloneAll(e.drawings)
	if out == nil {
		out = []shape.Drawing{}
	}
	return out
}

// SetDrawings replaces the list with a copy of list and repaints. OnChange is
// not called.
func (e *Editor) SetDrawings(list []shape.Drawing) error {
	e.drawings = shape.CloneAll(list)
	e.release(false)
	return e.Redraw()
}

// SetSurfaceSize resizes the surface and repaints.
func (e *Editor) SetSurfaceSize(w, h float64) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%w: size %gx%g", ErrInvalidSurface, w, h)
	}
	if err := e.s.Resize(w, h); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSurface, err)
	}
	return e.Redraw()
}

// SetGridSize sets the grid spacing and repaints. A non-positive size is
// reported once the grid is shown.
func (e *Editor) SetGridSize(n float64) error {
	e.grid.size = n
	return e.Redraw()
}

func (e *Editor) SetGridColor(c string) error {
	if err := checkColor(c); err != nil {
		return err
	}
	e.grid.color = c
	return e.Redraw()
}

func (e *Editor) SetShowGrid(show bool) error {
	e.grid.visible = show
	return e.Redraw()
}

// SetDrawingType parses a kind name and selects it.
func (e *Editor) SetDrawingType(name string) error {
	k, err := shape.ParseKind(name)
	if err != nil {
		return err
	}
	return e.SetKind(k)
}

// SetKind selects the kind new drawings get. Any shape under construction
// is dropped.
func (e *Editor) SetKind(k shape.Kind) error {
	h, err := e.handlers.Get(k)
	if err != nil {
		return err
	}
	e.kind, e.handler = k, h
	hadBuffer := len(e.buf) > 0
	e.buf = nil
	e.capture = captureIdle
	e.release(false)
	if hadBuffer {
		return e.Redraw()
	}
	return nil
}

// SetDrawingColor sets the colour of drawings created from now on.
func (e *Editor) SetDrawingColor(c string) error {
	if err := checkColor(c); err != nil {
		return err
	}
	e.color = c
	return nil
}

// SetDrawingMode parses a mode name and switches to it.
func (e *Editor) SetDrawingMode(name string) error {
	m, err := ParseMode(name)
	if err != nil {
		return err
	}
	return e.SetMode(m)
}

// SetMode switches the interaction mode, dropping any shape under
// construction and any drag in flight, and repaints.
func (e *Editor) SetMode(m Mode) error {
	if m < ModeDraw || m > ModeView {
		return fmt.Errorf("%w: unknown drawing mode %d", ErrInvalidConfiguration, int(m))
	}
	e.release(true)
	e.mode = m
	e.buf = nil
	e.capture = captureIdle
	e.s.SetCursor(e.idleCursor())
	return e.Redraw()
}

// SetLineWidth sets the stroke width of lines and freehand strokes created
// from now on.
func (e *Editor) SetLineWidth(w float64) error {
	if w <= 0 {
		return fmt.Errorf("%w: line width must be positive, got %g", ErrInvalidConfiguration, w)
	}
	e.lineWidth = w
	return nil
}

func (e *Editor) SetShowCrossIcon(show bool) error {
	e.marker.SetVisible(show)
	return e.Redraw()
}

// SetClickThreshold changes the pointer tolerance used for closing polygons
// and grabbing vertices.
func (e *Editor) SetClickThreshold(tol float64) error {
	handlers, err := shape.NewRegistry(tol)
	if err != nil {
		return err
	}
	h, err := handlers.Get(e.kind)
	if err != nil {
		return err
	}
	e.handlers, e.handler, e.tol = handlers, h, tol
	return nil
}

// ClickThreshold returns the pointer tolerance.
func (e *Editor) ClickThreshold() float64 { return e.tol }

// SetResizeOnCanvasSizeChange toggles proportional rescaling of drawings
// made on a surface of a different size, and repaints.
func (e *Editor) SetResizeOnCanvasSizeChange(on bool) error {
	e.rescale = on
	return e.Redraw()
}

// CancelDrawing drops the shape under construction.
func (e *Editor) CancelDrawing() error {
	e.buf = nil
	e.capture = captureIdle
	return e.Redraw()
}

// ClearCanvas removes every drawing and the shape under construction.
func (e *Editor) ClearCanvas() error {
	e.buf = nil
	e.capture = captureIdle
	e.release(false)
	e.drawings = nil
	e.notify()
	return e.Redraw()
}

func (e *Editor) notify() {
	if e.OnChange != nil {
		e.OnChange(e.Drawings())
	}
}

func (e *Editor) stamp() shape.Stamp {
	return shape.Stamp{
		ID:         e.newID(),
		Color:      e.color,
		LineWidth:  e.lineWidth,
		CanvasSize: e.SurfaceSize(),
	}
}

func (e *Editor) idleCursor() surface.Cursor {
	if e.mode == ModeDraw {
		return surface.CursorCrosshair
	}
	return surface.CursorDefault
}

// Redraw repaints the grid, every drawing with its marker in draw mode, and
// the in-progress buffer.
func (e *Editor) Redraw() error {
	e.s.Clear()
	if err := e.grid.render(e.s); err != nil {
		return err
	}
	size := e.SurfaceSize()
	for i := range e.drawings {
		if e.rescale {
			e.drawings[i] = rescale(e.drawings[i], size)
		}
		d := e.drawings[i]
		h, err := e.handlers.Get(d.Type)
		if err != nil {
			return fmt.Errorf("drawing %d: %w", i, err)
		}
		if err := h.Render(e.s, d); err != nil {
			return fmt.Errorf("render drawing %d: %w", i, err)
		}
		if e.mode == ModeDraw {
			if err := e.marker.Render(d); err != nil {
				return fmt.Errorf("render marker %d: %w", i, err)
			}
		}
	}
	if len(e.buf) < 2 {
		return nil
	}
	e.s.BeginPath()
	e.s.MoveTo(e.buf[0].X, e.buf[0].Y)
	for _, p := range e.buf[1:] {
		e.s.LineTo(p.X, p.Y)
	}
	return e.s.Stroke(surface.StrokeStyle{Color: e.color, Width: bufferWidth})
}

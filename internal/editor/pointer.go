package editor

import (
	"ShapeBoard/internal/shape"
	"ShapeBoard/internal/surface"
)

// Click handles a press-and-release without movement at (x, y).
func (e *Editor) Click(x, y float64) error {
	if e.mode != ModeDraw {
		return nil
	}
	p := shape.Pt(x, y)

	if _, ok := e.handler.(shape.Capturer); ok && e.capture == captureDone {
		// the release that ended a stroke
		e.capture = captureIdle
		return nil
	}

	if len(e.buf) == 0 {
		list, removed, err := e.marker.Click(e.drawings, p)
		if err != nil {
			return err
		}
		if removed {
			e.drawings = list
			e.notify()
			return e.Redraw()
		}
	}

	if _, ok := e.handler.(shape.Capturer); ok {
		return nil
	}
	buf, d, done := e.handler.Click(e.buf, p, e.stamp())
	e.buf = buf
	if done {
		e.drawings = append(e.drawings, d)
		e.notify()
	}
	return e.Redraw()
}

// PointerEnter sets the cursor for the current mode.
func (e *Editor) PointerEnter(x, y float64) error {
	e.s.SetCursor(e.idleCursor())
	if e.mode == ModeDraw && len(e.buf) == 0 && e.capture != captureActive {
		return e.marker.Hover(e.drawings, shape.Pt(x, y))
	}
	return nil
}

// PointerDown starts a freehand stroke in draw mode, or grabs a drawing (move)
// or one of its vertices (resize).
func (e *Editor) PointerDown(x, y float64) error {
	p := shape.Pt(x, y)
	switch e.mode {
	case ModeDraw:
		c, ok := e.handler.(shape.Capturer)
		if !ok {
			return nil
		}
		i, err := e.marker.Hit(e.drawings, p)
		if err != nil {
			return err
		}
		if i >= 0 {
			// leave the press to Click so the marker can delete
			e.capture = captureIdle
			return nil
		}
		e.buf = c.Begin(p)
		e.capture = captureActive
	case ModeMove:
		for i := len(e.drawings) - 1; i >= 0; i-- {
			h, err := e.handlers.Get(e.drawings[i].Type)
			if err != nil {
				return err
			}
			in, err := h.Contains(e.drawings[i], p)
			if err != nil {
				return err
			}
			if in {
				e.target, e.dragFrom = i, p
				e.s.SetCursor(surface.CursorMove)
				return nil
			}
		}
	case ModeResize:
		for i := len(e.drawings) - 1; i >= 0; i-- {
			h, err := e.handlers.Get(e.drawings[i].Type)
			if err != nil {
				return err
			}
			v, err := h.VertexAt(e.drawings[i], p)
			if err != nil {
				return err
			}
			if v != shape.NoVertex {
				e.target, e.vertex, e.dragFrom = i, v, p
				e.s.SetCursor(surface.CursorPointer)
				return nil
			}
		}
	}
	return nil
}

// PointerMove extends a stroke, previews the shape under construction, drags
// the grabbed drawing, or updates the hover cursor.
func (e *Editor) PointerMove(x, y float64) error {
	p := shape.Pt(x, y)
	switch e.mode {
	case ModeDraw:
		if c, ok := e.handler.(shape.Capturer); ok && e.capture == captureActive {
			e.buf = c.Extend(e.buf, p)
		}
		if len(e.buf) == 0 {
			return e.marker.Hover(e.drawings, p)
		}
		if err := e.Redraw(); err != nil {
			return err
		}
		return e.handler.Preview(e.s, e.buf, p, e.color, e.lineWidth)
	case ModeMove:
		if e.target >= 0 {
			delta := p.Sub(e.dragFrom)
			e.drawings[e.target] = e.drawings[e.target].Translate(delta.X, delta.Y)
			e.dragFrom = p
			e.dirty = true
			return e.Redraw()
		}
		return e.hover(p, func(h shape.Handler, d shape.Drawing) (bool, error) {
			return h.Contains(d, p)
		}, surface.CursorMove)
	case ModeResize:
		if e.target >= 0 && e.vertex != shape.NoVertex {
			h, err := e.handlers.Get(e.drawings[e.target].Type)
			if err != nil {
				return err
			}
			d, err := h.Resize(e.drawings[e.target], e.vertex, e.dragFrom, p)
			if err != nil {
				return err
			}
			e.drawings[e.target] = d
			e.dragFrom = p
			e.dirty = true
			return e.Redraw()
		}
		return e.hover(p, func(h shape.Handler, d shape.Drawing) (bool, error) {
			v, err := h.VertexAt(d, p)
			return v != shape.NoVertex, err
		}, surface.CursorPointer)
	}
	return nil
}

// hover sets over when any drawing satisfies hit, the default cursor
// otherwise.
func (e *Editor) hover(p shape.Point, hit func(shape.Handler, shape.Drawing) (bool, error), over surface.Cursor) error {
	for i := len(e.drawings) - 1; i >= 0; i-- {
		h, err := e.handlers.Get(e.drawings[i].Type)
		if err != nil {
			return err
		}
		ok, err := hit(h, e.drawings[i])
		if err != nil {
			return err
		}
		if ok {
			e.s.SetCursor(over)
			return nil
		}
	}
	e.s.SetCursor(surface.CursorDefault)
	return nil
}

// PointerUp ends a freehand stroke or a drag.
func (e *Editor) PointerUp(x, y float64) error {
	return e.end()
}

// PointerLeave behaves like PointerUp.
func (e *Editor) PointerLeave() error {
	return e.end()
}

func (e *Editor) end() error {
	if e.capture == captureActive {
		e.capture = captureDone
		c, ok := e.handler.(shape.Capturer)
		if !ok {
			e.buf = nil
			return e.Redraw()
		}
		d, keep := c.Finish(e.buf, e.stamp())
		e.buf = nil
		if keep {
			e.drawings = append(e.drawings, d)
			e.notify()
		}
		return e.Redraw()
	}
	e.release(true)
	return nil
}

// release drops the drag anchor, reporting the change when announce is set
// and the grabbed drawing moved.
func (e *Editor) release(announce bool) {
	moved := e.dirty
	e.target, e.vertex, e.dirty = -1, shape.NoVertex, false
	if announce && moved {
		e.notify()
	}
}

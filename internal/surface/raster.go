package surface

import (
	"fmt"
	"image"
	"io"
	"math"

	"github.com/gogpu/gg"
)

// Raster is a Surface that paints into an in-memory pixmap through a gg
// drawing context.
type Raster struct {
	dc            *gg.Context
	width, height float64
	background    gg.RGBA
	cursor        Cursor
}

var _ Surface = (*Raster)(nil)

// NewRaster creates a raster surface of the given size with a white background.
func NewRaster(width, height float64) (*Raster, error) {
	w, h, err := pixelSize(width, height)
	if err != nil {
		return nil, err
	}
	return &Raster{
		dc:         gg.NewContext(w, h),
		width:      width,
		height:     height,
		background: gg.White,
	}, nil
}

func pixelSize(width, height float64) (int, int, error) {
	if width <= 0 || height <= 0 || math.IsNaN(width) || math.IsNaN(height) {
		return 0, 0, fmt.Errorf("invalid surface size %gx%g", width, height)
	}
	return int(math.Ceil(width)), int(math.Ceil(height)), nil
}

// SetBackground sets the colour Clear paints. An empty string means transparent.
func (r *Raster) SetBackground(c string) error {
	if c == "" {
		r.background = gg.Transparent
		return nil
	}
	col, err := ParseColor(c)
	if err != nil {
		return err
	}
	r.background = gg.FromColor(col)
	return nil
}

func (r *Raster) Size() (float64, float64) { return r.width, r.height }

func (r *Raster) Resize(width, height float64) error {
	w, h, err := pixelSize(width, height)
	if err != nil {
		return err
	}
	if err := r.dc.Resize(w, h); err != nil {
		return err
	}
	r.width, r.height = width, height
	return nil
}

func (r *Raster) Clear() {
	r.dc.ClearPath()
	r.dc.ClearWithColor(r.background)
}

func (r *Raster) BeginPath()              { r.dc.ClearPath() }
func (r *Raster) MoveTo(x, y float64)     { r.dc.MoveTo(x, y) }
func (r *Raster) LineTo(x, y float64)     { r.dc.LineTo(x, y) }
func (r *Raster) ClosePath()              { r.dc.ClosePath() }
func (r *Raster) Circle(x, y, rr float64) { r.dc.DrawCircle(x, y, rr) }

func (r *Raster) Rect(x, y, w, h float64) {
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}
	r.dc.DrawRectangle(x, y, w, h)
}

func (r *Raster) Fill(c string) error {
	col, err := ParseColor(c)
	if err != nil {
		return err
	}
	r.dc.SetColor(col)
	return r.dc.FillPreserve()
}

func (r *Raster) Stroke(st StrokeStyle) error {
	col, err := ParseColor(st.Color)
	if err != nil {
		return err
	}
	r.dc.SetColor(col)
	r.dc.SetLineWidth(st.Width)
	if st.Round {
		r.dc.SetLineCap(gg.LineCapRound)
		r.dc.SetLineJoin(gg.LineJoinRound)
	} else {
		r.dc.SetLineCap(gg.LineCapButt)
		r.dc.SetLineJoin(gg.LineJoinMiter)
	}
	return r.dc.StrokePreserve()
}

func (r *Raster) SetCursor(c Cursor) { r.cursor = c }

// Cursor returns the affordance last requested by the editor.
func (r *Raster) Cursor() Cursor { return r.cursor }

// Image returns a snapshot of the painted pixels.
func (r *Raster) Image() image.Image { return r.dc.Image() }

// EncodePNG writes the current pixels as PNG.
func (r *Raster) EncodePNG(w io.Writer) error { return r.dc.EncodePNG(w) }

package surface

import "fmt"

// Op is one recorded Surface call.
type Op struct {
	Name  string
	Args  []float64
	Style StrokeStyle // Color is also set for Fill
}

// Recorder is a Surface that records calls instead of painting. Colours are
// still validated so bad input surfaces the same errors as Raster.
type Recorder struct {
	Width, Height float64
	Ops           []Op
	Cursor        Cursor
}

var _ Surface = (*Recorder)(nil)

// NewRecorder returns a recorder of the given size.
func NewRecorder(width, height float64) *Recorder {
	return &Recorder{Width: width, Height: height}
}

func (r *Recorder) add(name string, args ...float64) {
	r.Ops = append(r.Ops, Op{Name: name, Args: args})
}

func (r *Recorder) Size() (float64, float64) { return r.Width, r.Height }

func (r *Recorder) Resize(width, height float64) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid surface size %gx%g", width, height)
	}
	r.Width, r.Height = width, height
	r.add("resize", width, height)
	return nil
}

func (r *Recorder) Clear()                  { r.add("clear") }
func (r *Recorder) BeginPath()              { r.add("begin") }
func (r *Recorder) MoveTo(x, y float64)     { r.add("moveTo", x, y) }
func (r *Recorder) LineTo(x, y float64)     { r.add("lineTo", x, y) }
func (r *Recorder) ClosePath()              { r.add("close") }
func (r *Recorder) Rect(x, y, w, h float64) { r.add("rect", x, y, w, h) }
func (r *Recorder) Circle(x, y, rr float64) { r.add("circle", x, y, rr) }

func (r *Recorder) Fill(c string) error {
	if _, err := ParseColor(c); err != nil {
		return err
	}
	r.Ops = append(r.Ops, Op{Name: "fill", Style: StrokeStyle{Color: c}})
	return nil
}

func (r *Recorder) Stroke(st StrokeStyle) error {
	if _, err := ParseColor(st.Color); err != nil {
		return err
	}
	r.Ops = append(r.Ops, Op{Name: "stroke", Style: st})
	return nil
}

func (r *Recorder) SetCursor(c Cursor) { r.Cursor = c }

// Count returns how many calls named name were recorded.
func (r *Recorder) Count(name string) int {
	n := 0
	for _, op := range r.Ops {
		if op.Name == name {
			n++
		}
	}
	return n
}

// Calls returns the recorded calls named name.
func (r *Recorder) Calls(name string) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Name == name {
			out = append(out, op)
		}
	}
	return out
}

// Reset drops all recorded calls.
func (r *Recorder) Reset() { r.Ops = nil }

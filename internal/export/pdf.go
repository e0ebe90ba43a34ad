package export

import (
	"fmt"
	"image/color"
	"io"

	"ShapeBoard/internal/surface"

	"github.com/jung-kurt/gofpdf"
)

type segKind int

const (
	segMove segKind = iota
	segLine
	segClose
	segRect
	segCircle
)

type segment struct {
	kind segKind
	args [4]float64
}

// PDF is a Surface that writes vector output to a single PDF page, one point
// per surface pixel. The current path is kept until the next BeginPath so a
// fill can be followed by a stroke of the same outline.
type PDF struct {
	f             *gofpdf.Fpdf
	width, height float64
	background    string
	path          []segment
}

var _ surface.Surface = (*PDF)(nil)

// NewPDF starts a document with one page of the given size.
func NewPDF(width, height float64) (*PDF, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid page size %gx%g", width, height)
	}
	f := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: width, Ht: height},
	})
	f.SetMargins(0, 0, 0)
	f.SetAutoPageBreak(false, 0)
	f.AddPage()
	return &PDF{f: f, width: width, height: height, background: "white"}, nil
}

func (p *PDF) Size() (float64, float64) { return p.width, p.height }

// Resize only accepts the page's own size.
func (p *PDF) Resize(width, height float64) error {
	if width != p.width || height != p.height {
		return fmt.Errorf("pdf page is fixed at %gx%g", p.width, p.height)
	}
	return nil
}

// Clear paints the page background.
func (p *PDF) Clear() {
	p.path = p.path[:0]
	if err := p.setFill(p.background); err == nil {
		p.f.Rect(0, 0, p.width, p.height, "F")
		p.f.SetAlpha(1, "Normal")
	}
}

func (p *PDF) BeginPath() { p.path = p.path[:0] }

func (p *PDF) MoveTo(x, y float64) {
	p.path = append(p.path, segment{kind: segMove, args: [4]float64{x, y}})
}

func (p *PDF) LineTo(x, y float64) {
	p.path = append(p.path, segment{kind: segLine, args: [4]float64{x, y}})
}

func (p *PDF) ClosePath() { p.path = append(p.path, segment{kind: segClose}) }

func (p *PDF) Rect(x, y, w, h float64) {
	p.path = append(p.path, segment{kind: segRect, args: [4]float64{x, y, w, h}})
}

func (p *PDF) Circle(x, y, r float64) {
	p.path = append(p.path, segment{kind: segCircle, args: [4]float64{x, y, r}})
}

func (p *PDF) SetCursor(surface.Cursor) {}

func (p *PDF) Fill(c string) error {
	if err := p.setFill(c); err != nil {
		return err
	}
	p.replay("F")
	p.f.SetAlpha(1, "Normal")
	return p.f.Error()
}

func (p *PDF) Stroke(st surface.StrokeStyle) error {
	col, err := surface.ParseColor(st.Color)
	if err != nil {
		return err
	}
	c := color.NRGBAModel.Convert(col).(color.NRGBA)
	p.f.SetDrawColor(int(c.R), int(c.G), int(c.B))
	p.f.SetAlpha(float64(c.A)/255, "Normal")
	p.f.SetLineWidth(st.Width)
	if st.Round {
		p.f.SetLineCapStyle("round")
		p.f.SetLineJoinStyle("round")
	} else {
		p.f.SetLineCapStyle("butt")
		p.f.SetLineJoinStyle("miter")
	}
	p.replay("D")
	p.f.SetAlpha(1, "Normal")
	return p.f.Error()
}

func (p *PDF) setFill(c string) error {
	col, err := surface.ParseColor(c)
	if err != nil {
		return err
	}
	n := color.NRGBAModel.Convert(col).(color.NRGBA)
	p.f.SetFillColor(int(n.R), int(n.G), int(n.B))
	p.f.SetAlpha(float64(n.A)/255, "Normal")
	return nil
}

// replay emits the buffered path with the given gofpdf style. Line segments
// are grouped into one path object; rectangles and circles are emitted as
// their own primitives.
func (p *PDF) replay(style string) {
	open := false
	flush := func() {
		if open {
			p.f.DrawPath(style)
			open = false
		}
	}
	for _, s := range p.path {
		switch s.kind {
		case segMove:
			p.f.MoveTo(s.args[0], s.args[1])
			open = true
		case segLine:
			if open {
				p.f.LineTo(s.args[0], s.args[1])
			}
		case segClose:
			if open {
				p.f.ClosePath()
			}
		case segRect:
			flush()
			p.f.Rect(s.args[0], s.args[1], s.args[2], s.args[3], style)
		case segCircle:
			flush()
			p.f.Circle(s.args[0], s.args[1], s.args[2], style)
		}
	}
	flush()
}

// Write emits the finished document.
func (p *PDF) Write(w io.Writer) error {
	return p.f.Output(w)
}

// WriteFile emits the finished document to path.
func (p *PDF) WriteFile(path string) error {
	return p.f.OutputFileAndClose(path)
}

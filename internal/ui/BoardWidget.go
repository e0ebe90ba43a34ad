package ui

import (
	"fmt"
	"log/slog"

	"ShapeBoard/internal/editor"
	"ShapeBoard/internal/logx"
	"ShapeBoard/internal/shape"
	"ShapeBoard/internal/surface"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// BoardWidget hosts an editor on a raster surface and feeds it pointer
// events. All methods must be called on the fyne UI goroutine.
type BoardWidget struct {
	widget.BaseWidget

	raster    *surface.Raster
	editor    *editor.Editor
	image     *canvas.Image
	statusBar *widget.Label
	log       *slog.Logger

	// OnChange receives the drawing list after every user edit.
	OnChange func([]shape.Drawing)
}

var (
	_ fyne.Widget        = (*BoardWidget)(nil)
	_ fyne.Tappable      = (*BoardWidget)(nil)
	_ fyne.Draggable     = (*BoardWidget)(nil)
	_ desktop.Mouseable  = (*BoardWidget)(nil)
	_ desktop.Hoverable  = (*BoardWidget)(nil)
	_ desktop.Cursorable = (*BoardWidget)(nil)
)

// NewBoardWidget builds the raster and editor from cfg.
func NewBoardWidget(cfg editor.Config) (*BoardWidget, error) {
	size := cfg.SurfaceSize
	if size.IsZero() {
		size = editor.DefaultConfig().SurfaceSize
		cfg.SurfaceSize = size
	}
	raster, err := surface.NewRaster(size.Width, size.Height)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", editor.ErrInvalidSurface, err)
	}
	ed, err := editor.New(raster, cfg)
	if err != nil {
		return nil, err
	}
	b := &BoardWidget{
		raster:    raster,
		editor:    ed,
		statusBar: widget.NewLabel("Ready"),
		log:       logx.For("ui"),
	}
	ed.OnChange = func(list []shape.Drawing) {
		if b.OnChange != nil {
			b.OnChange(list)
		}
	}
	b.image = canvas.NewImageFromImage(raster.Image())
	b.image.FillMode = canvas.ImageFillStretch
	b.image.ScaleMode = canvas.ImageScalePixels
	b.ExtendBaseWidget(b)
	return b, nil
}

// Editor exposes the controller for settings the toolbar does not cover.
func (b *BoardWidget) Editor() *editor.Editor { return b.editor }

// StatusBar is the label the board reports into.
func (b *BoardWidget) StatusBar() *widget.Label { return b.statusBar }

// SetStatus shows text in the status bar.
func (b *BoardWidget) SetStatus(text string) {
	b.statusBar.SetText(text)
}

// do runs an editor call, reports a failure and repaints.
func (b *BoardWidget) do(op string, fn func() error) {
	if err := fn(); err != nil {
		b.log.Error("editor call failed", "op", op, "err", err)
		b.SetStatus(fmt.Sprintf("%s: %v", op, err))
	}
	b.paint()
}

func (b *BoardWidget) paint() {
	b.image.Image = b.raster.Image()
	b.image.Refresh()
}

// Drawings returns a copy of the current list.
func (b *BoardWidget) Drawings() []shape.Drawing { return b.editor.Drawings() }

// SetDrawings replaces the list without reporting a change. Remote updates
// come in this way.
func (b *BoardWidget) SetDrawings(list []shape.Drawing) {
	b.do("set drawings", func() error { return b.editor.SetDrawings(list) })
}

// LoadDrawings replaces the list and reports it as a local edit.
func (b *BoardWidget) LoadDrawings(list []shape.Drawing) {
	b.SetDrawings(list)
	if b.OnChange != nil {
		b.OnChange(b.editor.Drawings())
	}
	b.SetStatus(fmt.Sprintf("Loaded %d drawings", len(list)))
}

func (b *BoardWidget) SetMode(name string) {
	b.do("mode", func() error { return b.editor.SetDrawingMode(name) })
}

func (b *BoardWidget) SetKind(name string) {
	b.do("drawing type", func() error { return b.editor.SetDrawingType(name) })
}

func (b *BoardWidget) SetColor(c string) {
	b.do("color", func() error { return b.editor.SetDrawingColor(c) })
}

func (b *BoardWidget) SetLineWidth(w float64) {
	b.do("line width", func() error { return b.editor.SetLineWidth(w) })
}

func (b *BoardWidget) SetShowGrid(show bool) {
	b.do("grid", func() error { return b.editor.SetShowGrid(show) })
}

func (b *BoardWidget) SetGridSize(n float64) {
	b.do("grid size", func() error { return b.editor.SetGridSize(n) })
}

func (b *BoardWidget) SetShowCrossIcon(show bool) {
	b.do("cross icon", func() error { return b.editor.SetShowCrossIcon(show) })
}

// Cancel drops the shape under construction.
func (b *BoardWidget) Cancel() {
	b.do("cancel", b.editor.CancelDrawing)
}

// ClearPaths is called by the toolbar's clear button.
func (b *BoardWidget) ClearPaths() {
	b.do("clear", b.editor.ClearCanvas)
}

// resizeSurface follows the widget size.
func (b *BoardWidget) resizeSurface(size fyne.Size) {
	if size.Width <= 0 || size.Height <= 0 {
		return
	}
	cur := b.editor.SurfaceSize()
	if float32(cur.Width) == size.Width && float32(cur.Height) == size.Height {
		return
	}
	b.do("resize", func() error {
		return b.editor.SetSurfaceSize(float64(size.Width), float64(size.Height))
	})
}

func pos(p fyne.Position) (float64, float64) {
	return float64(p.X), float64(p.Y)
}

func (b *BoardWidget) Tapped(e *fyne.PointEvent) {
	x, y := pos(e.Position)
	b.do("click", func() error { return b.editor.Click(x, y) })
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	x, y := pos(e.Position)
	b.do("pointer down", func() error { return b.editor.PointerDown(x, y) })
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	x, y := pos(e.Position)
	b.do("pointer up", func() error { return b.editor.PointerUp(x, y) })
}

func (b *BoardWidget) MouseIn(e *desktop.MouseEvent) {
	x, y := pos(e.Position)
	b.do("pointer enter", func() error { return b.editor.PointerEnter(x, y) })
}

func (b *BoardWidget) MouseMoved(e *desktop.MouseEvent) {
	x, y := pos(e.Position)
	b.do("pointer move", func() error { return b.editor.PointerMove(x, y) })
}

func (b *BoardWidget) MouseOut() {
	b.do("pointer leave", b.editor.PointerLeave)
}

// Dragged stands in for MouseMoved while a button is held.
func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	x, y := pos(e.Position)
	b.do("pointer move", func() error { return b.editor.PointerMove(x, y) })
}

func (b *BoardWidget) DragEnd() {}

// Cursor maps the editor's requested affordance onto fyne's cursor set,
// which has no move cursor.
func (b *BoardWidget) Cursor() desktop.Cursor {
	switch b.raster.Cursor() {
	case surface.CursorCrosshair:
		return desktop.CrosshairCursor
	case surface.CursorPointer, surface.CursorMove:
		return desktop.PointerCursor
	}
	return desktop.DefaultCursor
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	return &boardWidgetRenderer{board: b}
}

type boardWidgetRenderer struct {
	board *BoardWidget
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.board.image}
}

func (r *boardWidgetRenderer) Layout(size fyne.Size) {
	r.board.image.Resize(size)
	r.board.resizeSurface(size)
}

func (r *boardWidgetRenderer) Refresh() {
	r.board.paint()
}

func (r *boardWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *boardWidgetRenderer) Destroy() {}

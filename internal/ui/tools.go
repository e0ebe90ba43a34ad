package ui

import (
	"image/color"

	"ShapeBoard/internal/editor"
	"ShapeBoard/internal/shape"
	"ShapeBoard/internal/surface"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// palette is the swatch row, as colour strings the editor accepts.
var palette = []string{"black", "#e53935", "#43a047", "#1e88e5", "#fdd835", "#8e24aa", "#ffffff"}

type colorSwatch struct {
	widget.BaseWidget
	Name     string
	Color    color.Color
	OnTapped func(string)
}

func newColorSwatch(name string, tapped func(string)) *colorSwatch {
	c, err := surface.ParseColor(name)
	if err != nil {
		c = color.Black
	}
	s := &colorSwatch{Name: name, Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(28, 28))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Name)
	}
}

// Actions are the file and sharing commands the toolbar triggers.
type Actions struct {
	Save      func()
	Open      func()
	ExportPDF func()
	ExportPNG func()
	CopyLink  func()
}

func kindNames() []string {
	names := make([]string, 0, len(shape.Kinds()))
	for _, k := range shape.Kinds() {
		names = append(names, k.String())
	}
	return names
}

func modeNames() []string {
	modes := []editor.Mode{editor.ModeDraw, editor.ModeMove, editor.ModeResize, editor.ModeView}
	names := make([]string, len(modes))
	for i, m := range modes {
		names[i] = m.String()
	}
	return names
}

// NewToolbar builds the controls above the board.
func NewToolbar(board *BoardWidget, actions Actions) fyne.CanvasObject {
	ed := board.Editor()

	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.CancelIcon(), board.Cancel),
		widget.NewToolbarAction(theme.DeleteIcon(), board.ClearPaths),
		widget.NewToolbarSeparator(),
	)
	addAction := func(icon fyne.Resource, fn func()) {
		if fn != nil {
			tb.Append(widget.NewToolbarAction(icon, fn))
		}
	}
	addAction(theme.FolderOpenIcon(), actions.Open)
	addAction(theme.DocumentSaveIcon(), actions.Save)
	addAction(theme.DocumentPrintIcon(), actions.ExportPDF)
	addAction(theme.MediaPhotoIcon(), actions.ExportPNG)
	addAction(theme.ContentCopyIcon(), actions.CopyLink)

	mode := widget.NewSelect(modeNames(), board.SetMode)
	mode.SetSelected(ed.Mode().String())

	kind := widget.NewSelect(kindNames(), board.SetKind)
	kind.SetSelected(ed.Kind().String())

	colorBox := container.NewHBox()
	for _, name := range palette {
		colorBox.Add(newColorSwatch(name, board.SetColor))
	}

	width := widget.NewSlider(1, 50)
	width.SetValue(ed.LineWidth())
	width.OnChanged = board.SetLineWidth
	widthBox := container.New(layout.NewGridWrapLayout(fyne.NewSize(120, 35)), width)

	gridSize := widget.NewSlider(5, 100)
	gridSize.Step = 5
	gridSize.SetValue(ed.GridSize())
	gridSize.OnChanged = board.SetGridSize
	gridBox := container.New(layout.NewGridWrapLayout(fyne.NewSize(100, 35)), gridSize)

	grid := widget.NewCheck("Grid", board.SetShowGrid)
	grid.SetChecked(ed.ShowGrid())

	markers := widget.NewCheck("Delete icons", board.SetShowCrossIcon)
	markers.SetChecked(ed.ShowCrossIcon())

	return container.NewHBox(
		tb,
		widget.NewSeparator(),
		widget.NewLabel("Mode:"),
		mode,
		widget.NewLabel("Shape:"),
		kind,
		widget.NewSeparator(),
		colorBox,
		widget.NewSeparator(),
		widget.NewLabel("Width:"),
		widthBox,
		widget.NewSeparator(),
		grid,
		gridBox,
		markers,
		layout.NewSpacer(),
	)
}

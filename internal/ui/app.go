package ui

import (
	"ShapeBoard/internal/logx"
	"ShapeBoard/internal/store"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
)

// Options configures the main window.
type Options struct {
	Title         string
	Width, Height float32
	// ShareLink enables the copy-link action when set.
	ShareLink string
	// DrawingsPath, when set, receives the board on window close.
	DrawingsPath string
	// StartupError is shown once the window is up.
	StartupError error
}

// App is the desktop application around one board.
type App struct {
	fyne fyne.App
	win  fyne.Window
	opts Options
}

// NewApp starts the fyne application. Create boards after calling it.
func NewApp(opts Options) *App {
	a := app.New()
	w := a.NewWindow(opts.Title)
	w.Resize(fyne.NewSize(opts.Width, opts.Height))
	return &App{fyne: a, win: w, opts: opts}
}

// ShowError reports err in a dialog.
func (a *App) ShowError(err error) {
	dialog.ShowError(err, a.win)
}

// Run lays out the board and blocks until the window closes.
func (a *App) Run(board *BoardWidget) {
	files := &fileActions{board: board, win: a.win}
	actions := Actions{
		Save:      files.save,
		Open:      files.open,
		ExportPDF: files.exportPDF,
		ExportPNG: files.exportPNG,
	}
	if link := a.opts.ShareLink; link != "" {
		actions.CopyLink = func() {
			a.win.Clipboard().SetContent(link)
			board.SetStatus("Share link copied: " + link)
		}
		board.SetStatus("Hosting at " + link)
	}

	toolbar := NewToolbar(board, actions)
	content := container.NewBorder(toolbar, board.StatusBar(), nil, nil, board)
	a.win.SetContent(content)
	if err := a.opts.StartupError; err != nil {
		a.ShowError(err)
	}

	if path := a.opts.DrawingsPath; path != "" {
		a.win.SetCloseIntercept(func() {
			if err := store.Save(path, board.Drawings()); err != nil {
				logx.For("ui").Error("autosave failed", "path", path, "err", err)
			}
			a.win.Close()
		})
	}
	a.win.ShowAndRun()
}

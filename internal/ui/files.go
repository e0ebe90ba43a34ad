package ui

import (
	"fmt"
	"io"

	"ShapeBoard/internal/export"
	"ShapeBoard/internal/store"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
)

// fileActions runs the toolbar's file dialogs against a board.
type fileActions struct {
	board *BoardWidget
	win   fyne.Window
}

func (f *fileActions) saveAs(name, ext string, write func(io.Writer) error, done string) {
	d := dialog.NewFileSave(func(w fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, f.win)
			return
		}
		if w == nil {
			return
		}
		defer func() {
			if err := w.Close(); err != nil {
				f.board.log.Warn("close failed", "uri", w.URI().String(), "err", err)
			}
		}()
		if err := write(w); err != nil {
			f.board.log.Error("write failed", "uri", w.URI().String(), "err", err)
			dialog.ShowError(err, f.win)
			return
		}
		f.board.log.Info(done, "uri", w.URI().String())
		f.board.SetStatus(fmt.Sprintf("%s to %s", done, w.URI().Name()))
	}, f.win)
	d.SetFileName(name)
	d.SetFilter(storage.NewExtensionFileFilter([]string{ext}))
	d.Show()
}

func (f *fileActions) save() {
	f.saveAs("drawings.json", ".json", func(w io.Writer) error {
		return store.Encode(w, f.board.Drawings())
	}, "Saved drawings")
}

func (f *fileActions) exportPDF() {
	f.saveAs("drawings.pdf", ".pdf", func(w io.Writer) error {
		return export.WritePDF(w, f.board.Drawings(), export.Options{Size: f.board.Editor().SurfaceSize()})
	}, "Exported PDF")
}

func (f *fileActions) exportPNG() {
	f.saveAs("drawings.png", ".png", func(w io.Writer) error {
		return export.WritePNG(w, f.board.Drawings(), export.Options{Size: f.board.Editor().SurfaceSize()})
	}, "Exported PNG")
}

func (f *fileActions) open() {
	d := dialog.NewFileOpen(func(r fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, f.win)
			return
		}
		if r == nil {
			return
		}
		defer r.Close()
		list, err := store.Decode(r)
		if err != nil {
			f.board.log.Error("load failed", "uri", r.URI().String(), "err", err)
			dialog.ShowError(err, f.win)
			return
		}
		f.board.LoadDrawings(list)
	}, f.win)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".json"}))
	d.Show()
}

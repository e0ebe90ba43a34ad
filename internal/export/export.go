// Package export renders drawing lists to PDF and PNG files.
package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"ShapeBoard/internal/logx"
	"ShapeBoard/internal/shape"
	"ShapeBoard/internal/surface"
)

// Options controls an export.
type Options struct {
	// Size is the page or image size. Zero means the canvas size recorded on
	// the first drawing, falling back to 960x540.
	Size shape.Size
	// Background fills the page. Empty means white; PNG also accepts
	// "transparent".
	Background string
}

// ErrUnknownFormat is returned by SaveFile for extensions other than .pdf and
// .png.
var ErrUnknownFormat = errors.New("unknown export format")

var fallbackSize = shape.Size{Width: 960, Height: 540}

func (o Options) size(list []shape.Drawing) shape.Size {
	if !o.Size.IsZero() {
		return o.Size
	}
	for _, d := range list {
		if !d.CanvasSize.IsZero() {
			return d.CanvasSize
		}
	}
	return fallbackSize
}

func (o Options) background() string {
	if o.Background == "" {
		return "white"
	}
	return o.Background
}

// Render paints every drawing in list onto s in order.
func Render(s surface.Surface, list []shape.Drawing) error {
	// Rendering ignores the click threshold; any positive value works.
	handlers, err := shape.NewRegistry(1)
	if err != nil {
		return err
	}
	for i, d := range list {
		h, err := handlers.Get(d.Type)
		if err != nil {
			return fmt.Errorf("drawing %d: %w", i, err)
		}
		if err := h.Render(s, d); err != nil {
			return fmt.Errorf("render drawing %d: %w", i, err)
		}
	}
	return nil
}

// WritePDF renders list as a one-page PDF.
func WritePDF(w io.Writer, list []shape.Drawing, opts Options) error {
	doc, err := buildPDF(list, opts)
	if err != nil {
		return err
	}
	return doc.Write(w)
}

// SavePDF renders list as a one-page PDF at path.
func SavePDF(path string, list []shape.Drawing, opts Options) error {
	doc, err := buildPDF(list, opts)
	if err != nil {
		return err
	}
	if err := doc.WriteFile(path); err != nil {
		return fmt.Errorf("could not write %s: %w", path, err)
	}
	logx.For("export").Info("exported pdf", "path", path, "drawings", len(list))
	return nil
}

func buildPDF(list []shape.Drawing, opts Options) (*PDF, error) {
	size := opts.size(list)
	doc, err := NewPDF(size.Width, size.Height)
	if err != nil {
		return nil, err
	}
	if _, err := surface.ParseColor(opts.background()); err != nil {
		return nil, err
	}
	doc.background = opts.background()
	doc.Clear()
	if err := Render(doc, list); err != nil {
		return nil, err
	}
	return doc, nil
}

// WritePNG rasterises list and encodes it as PNG.
func WritePNG(w io.Writer, list []shape.Drawing, opts Options) error {
	size := opts.size(list)
	r, err := surface.NewRaster(size.Width, size.Height)
	if err != nil {
		return err
	}
	bg := opts.background()
	if bg == "transparent" {
		bg = ""
	}
	if err := r.SetBackground(bg); err != nil {
		return err
	}
	r.Clear()
	if err := Render(r, list); err != nil {
		return err
	}
	return r.EncodePNG(w)
}

// SavePNG rasterises list to a PNG file at path.
func SavePNG(path string, list []shape.Drawing, opts Options) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create %s: %w", path, err)
	}
	if err := WritePNG(f, list, opts); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("could not write %s: %w", path, err)
	}
	logx.For("export").Info("exported png", "path", path, "drawings", len(list))
	return nil
}

// SaveFile picks PDF or PNG output from path's extension.
func SaveFile(path string, list []shape.Drawing, opts Options) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".pdf":
		return SavePDF(path, list, opts)
	case ".png":
		return SavePNG(path, list, opts)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
}

// Package surface defines the paint target the editor draws on and provides a
// raster implementation backed by gogpu/gg.
//
// The Surface API follows the HTML canvas path model: BeginPath starts a new
// path, path building calls append to it, and Fill/Stroke paint the current
// path without consuming it.
package surface

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/gogpu/gg"
	"golang.org/x/image/colornames"
)

// ErrInvalidColor is returned for colour strings that are neither hex nor a
// CSS colour name.
var ErrInvalidColor = errors.New("invalid color")

// Cursor is the pointer affordance a surface should show.
type Cursor int

const (
	CursorDefault Cursor = iota
	CursorCrosshair
	CursorPointer
	CursorMove
)

func (c Cursor) String() string {
	switch c {
	case CursorCrosshair:
		return "crosshair"
	case CursorPointer:
		return "pointer"
	case CursorMove:
		return "move"
	default:
		return "default"
	}
}

// StrokeStyle describes how the current path is stroked.
type StrokeStyle struct {
	Color string
	Width float64
	// Round selects round caps and joins instead of butt caps and miter joins.
	Round bool
}

// Surface is a 2D paintable area.
type Surface interface {
	Size() (width, height float64)
	Resize(width, height float64) error
	Clear()

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
	Rect(x, y, w, h float64)
	Circle(x, y, r float64)

	Fill(color string) error
	Stroke(style StrokeStyle) error

	SetCursor(c Cursor)
}

// ParseColor converts "#rgb", "#rgba", "#rrggbb", "#rrggbbaa" or a CSS colour
// name into a color.Color.
func ParseColor(s string) (color.Color, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidColor)
	}
	if v == "transparent" {
		return color.Transparent, nil
	}
	if strings.HasPrefix(v, "#") {
		hex := v[1:]
		switch len(hex) {
		case 3, 4, 6, 8:
		default:
			return nil, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		for _, r := range hex {
			if !strings.ContainsRune("0123456789abcdef", r) {
				return nil, fmt.Errorf("%w: %q", ErrInvalidColor, s)
			}
		}
		return gg.Hex(hex).Color(), nil
	}
	if c, ok := colornames.Map[v]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidColor, s)
}

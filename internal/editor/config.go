package editor

import "ShapeBoard/internal/shape"

// Config holds construction-time settings. Start from DefaultConfig; the zero
// value is not usable.
type Config struct {
	SurfaceSize shape.Size `toml:"surface_size" json:"surfaceSize"`

	GridSize  float64 `toml:"grid_size" json:"gridSize"`
	GridColor string  `toml:"grid_color" json:"gridColor"`
	ShowGrid  bool    `toml:"show_grid" json:"showGrid"`

	// Drawings seeds the list. It is not part of the config file.
	Drawings []shape.Drawing `toml:"-" json:"drawings,omitempty"`

	DrawingType  string  `toml:"drawing_type" json:"drawingType"`
	DrawingColor string  `toml:"drawing_color" json:"drawingColor"`
	DrawingMode  string  `toml:"drawing_mode" json:"drawingMode"`
	LineWidth    float64 `toml:"line_width" json:"lineWidth"`

	CrossIconSize float64 `toml:"cross_icon_size" json:"crossIconSize"`
	// CrossIconColor empty means each marker uses its drawing's colour.
	CrossIconColor           string `toml:"cross_icon_color" json:"crossIconColor"`
	CrossIconBackgroundColor string `toml:"cross_icon_background_color" json:"crossIconBackgroundColor"`
	ShowCrossIcon            bool   `toml:"show_cross_icon" json:"showCrossIcon"`

	ClickThreshold           float64 `toml:"click_threshold" json:"clickThreshold"`
	ResizeOnCanvasSizeChange bool    `toml:"resize_on_canvas_size_change" json:"resizeOnCanvasSizeChange"`
}

// DefaultConfig returns the stock settings.
func DefaultConfig() Config {
	return Config{
		SurfaceSize:              shape.Size{Width: 960, Height: 540},
		GridSize:                 20,
		GridColor:                "#dddddd",
		DrawingType:              shape.Polygon.String(),
		DrawingColor:             "black",
		DrawingMode:              ModeDraw.String(),
		LineWidth:                2,
		CrossIconSize:            10,
		CrossIconBackgroundColor: "white",
		ShowCrossIcon:            true,
		ClickThreshold:           20,
	}
}

package editor

import "ShapeBoard/internal/shape"

// Error kinds surfaced by the editor. They are the shape package's sentinels,
// so errors.Is works against either name.
var (
	ErrInvalidSurface       = shape.ErrInvalidSurface
	ErrInvalidConfiguration = shape.ErrInvalidConfiguration
	ErrMissingData          = shape.ErrMissingData
)

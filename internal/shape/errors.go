package shape

import "errors"

var (
	// ErrInvalidSurface reports an unusable paint target.
	ErrInvalidSurface = errors.New("invalid surface")
	// ErrInvalidConfiguration reports a bad drawing type, mode, or grid setting.
	ErrInvalidConfiguration = errors.New("invalid configuration")
	// ErrMissingData reports a drawing that lacks data its kind requires,
	// such as a circle without a radius.
	ErrMissingData = errors.New("missing drawing data")
)

package editor

import (
	"fmt"
	"strings"
)

// Mode selects how pointer input is interpreted.
type Mode int

const (
	ModeDraw Mode = iota
	ModeMove
	ModeResize
	// ModeView ignores pointer input.
	ModeView
)

var modeNames = [...]string{
	ModeDraw:   "draw",
	ModeMove:   "move",
	ModeResize: "resize",
	ModeView:   "view",
}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// ParseMode maps a mode name to its Mode.
func ParseMode(s string) (Mode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range modeNames {
		if n == name {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown drawing mode %q", ErrInvalidConfiguration, s)
}

func (m Mode) MarshalText() ([]byte, error) {
	if m < 0 || int(m) >= len(modeNames) {
		return nil, fmt.Errorf("%w: unknown drawing mode %d", ErrInvalidConfiguration, int(m))
	}
	return []byte(modeNames[m]), nil
}

func (m *Mode) UnmarshalText(b []byte) error {
	v, err := ParseMode(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// captureState tracks a freehand stroke across pointer events. captureDone
// marks a stroke that just ended so the click the host fires after the
// release is swallowed.
type captureState int

const (
	captureIdle captureState = iota
	captureActive
	captureDone
)

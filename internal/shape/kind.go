package shape

import (
	"fmt"
	"strings"
)

// Kind identifies one of the six drawable shapes.
type Kind int

const (
	Polygon Kind = iota
	Rectangle
	Circle
	Triangle
	Line
	Freehand
)

var kindNames = [...]string{
	Polygon:   "polygon",
	Rectangle: "rectangle",
	Circle:    "circle",
	Triangle:  "triangle",
	Line:      "line",
	Freehand:  "freehand",
}

// Kinds lists every kind in declaration order.
func Kinds() []Kind {
	return []Kind{Polygon, Rectangle, Circle, Triangle, Line, Freehand}
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	return k >= 0 && int(k) < len(kindNames)
}

// ParseKind converts a kind name such as "rectangle" into a Kind.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown drawing type %q", ErrInvalidConfiguration, s)
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: unknown drawing type %d", ErrInvalidConfiguration, int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind name.
func (k *Kind) UnmarshalText(b []byte) error {
	v, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

package share

import (
	"errors"
	"fmt"

	"ShapeBoard/internal/shape"
)

// MessageType names a message on the wire.
type MessageType string

const (
	// MsgSnapshot carries the sender's whole drawing list.
	MsgSnapshot MessageType = "snapshot"
	// MsgClear empties every board.
	MsgClear MessageType = "clear"
)

// ErrBadMessage is returned for messages that fail validation.
var ErrBadMessage = errors.New("bad message")

// Message is the unit exchanged between peers.
type Message struct {
	Type     MessageType     `json:"type"`
	Site     string          `json:"site"`
	Lamport  uint64          `json:"lamport"`
	Drawings []shape.Drawing `json:"drawings,omitempty"`
}

// Validate checks the envelope and every drawing it carries.
func (m Message) Validate() error {
	switch m.Type {
	case MsgSnapshot, MsgClear:
	default:
		return fmt.Errorf("%w: unknown type %q", ErrBadMessage, m.Type)
	}
	if m.Site == "" {
		return fmt.Errorf("%w: missing site", ErrBadMessage)
	}
	for i, d := range m.Drawings {
		if err := d.Validate(); err != nil {
			return fmt.Errorf("%w: drawing %d: %w", ErrBadMessage, i, err)
		}
	}
	return nil
}

// version orders messages: higher Lamport time wins, ties go to the larger
// site id.
type version struct {
	lamport uint64
	site    string
}

func (m Message) version() version { return version{lamport: m.Lamport, site: m.Site} }

func (v version) after(o version) bool {
	if v.lamport != o.lamport {
		return v.lamport > o.lamport
	}
	return v.site > o.site
}

package share

import (
	"sync"

	"ShapeBoard/internal/shape"
)

// Replica decides which board state wins. Every change is a full snapshot;
// the newest by (lamport, site) is kept and older ones are dropped.
type Replica struct {
	clock *Clock

	mu   sync.Mutex
	last version
}

func NewReplica(clock *Clock) *Replica {
	return &Replica{clock: clock}
}

// Site returns the local site id.
func (r *Replica) Site() string { return r.clock.Site() }

// Local stamps a snapshot of the local list.
func (r *Replica) Local(list []shape.Drawing) Message {
	return r.stamp(MsgSnapshot, shape.CloneAll(list))
}

// LocalClear stamps a clear.
func (r *Replica) LocalClear() Message {
	return r.stamp(MsgClear, nil)
}

func (r *Replica) stamp(t MessageType, list []shape.Drawing) Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	m := Message{Type: t, Site: r.clock.Site(), Lamport: r.clock.Tick(), Drawings: list}
	r.last = m.version()
	return m
}

// Apply merges a peer's message. It returns the list to show and true when
// the message is newer than anything applied so far.
func (r *Replica) Apply(m Message) ([]shape.Drawing, bool) {
	r.clock.Observe(m.Lamport)
	if m.Site == r.clock.Site() {
		return nil, false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if !m.version().after(r.last) {
		return nil, false
	}
	r.last = m.version()
	if m.Type == MsgClear {
		return []shape.Drawing{}, true
	}
	out := shape.CloneAll(m.Drawings)
	if out == nil {
		out = []shape.Drawing{}
	}
	return out, true
}

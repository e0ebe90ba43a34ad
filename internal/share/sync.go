// Package share keeps drawing boards in step across peers on a LAN. A host
// serves a websocket endpoint and relays every change; clients join with a
// shapeboard:// link. Each change travels as a full snapshot stamped with a
// Lamport clock, and the newest snapshot wins.
package share

import (
	"log/slog"

	"ShapeBoard/internal/logx"
	"ShapeBoard/internal/shape"
)

// Publisher sends a local message to peers. Host and Client implement it.
type Publisher interface {
	Publish(Message) error
}

var (
	_ Publisher = (*Host)(nil)
	_ Publisher = (*Client)(nil)
)

// Sync connects a board to a publisher through a Replica.
type Sync struct {
	replica *Replica
	pub     Publisher
	apply   func([]shape.Drawing)
	log     *slog.Logger
}

// NewSync returns a Sync that publishes local changes through pub and hands
// winning remote lists to apply.
func NewSync(replica *Replica, pub Publisher, apply func([]shape.Drawing)) *Sync {
	return &Sync{replica: replica, pub: pub, apply: apply, log: logx.For("share")}
}

// Changed publishes the local list. An empty list goes out as a clear.
func (s *Sync) Changed(list []shape.Drawing) error {
	var m Message
	if len(list) == 0 {
		m = s.replica.LocalClear()
	} else {
		m = s.replica.Local(list)
	}
	return s.pub.Publish(m)
}

// Deliver applies a remote message if it wins.
func (s *Sync) Deliver(m Message) {
	list, ok := s.replica.Apply(m)
	if !ok {
		s.log.Debug("stale message", "site", m.Site, "lamport", m.Lamport)
		return
	}
	s.apply(list)
}

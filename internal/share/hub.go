package share

import (
	"log/slog"
	"sync"
	"time"

	"ShapeBoard/internal/logx"

	"github.com/gorilla/websocket"
)

const writeWait = 5 * time.Second

// conn serialises writes to one websocket.
type conn struct {
	ws *websocket.Conn
	mu sync.Mutex
}

func newConn(ws *websocket.Conn) *conn { return &conn{ws: ws} }

func (c *conn) write(data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.ws.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return c.ws.WriteMessage(websocket.TextMessage, data)
}

func (c *conn) close() error {
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	_ = c.ws.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
	return c.ws.Close()
}

func (c *conn) remote() string { return c.ws.RemoteAddr().String() }

// Hub tracks the host's peer connections.
type Hub struct {
	mu    sync.RWMutex
	conns map[*conn]struct{}
	log   *slog.Logger
}

func NewHub() *Hub {
	return &Hub{conns: make(map[*conn]struct{}), log: logx.For("share")}
}

func (h *Hub) add(c *conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[c] = struct{}{}
	h.log.Info("peer connected", "remote", c.remote(), "peers", len(h.conns))
}

func (h *Hub) remove(c *conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns, c)
	h.log.Info("peer disconnected", "remote", c.remote(), "peers", len(h.conns))
}

// Len returns the number of connected peers.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns)
}

// Broadcast sends data to every peer except exclude and returns how many
// writes succeeded.
func (h *Hub) Broadcast(data []byte, exclude *conn) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	sent := 0
	for c := range h.conns {
		if c == exclude {
			continue
		}
		if err := c.write(data); err != nil {
			h.log.Warn("send failed", "remote", c.remote(), "err", err)
			continue
		}
		sent++
	}
	return sent
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.conns {
		_ = c.close()
		delete(h.conns, c)
	}
}

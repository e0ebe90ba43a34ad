package share

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"ShapeBoard/internal/logx"

	"github.com/gorilla/websocket"
)

// Host relays messages between peers and hands the latest board to each
// newcomer.
type Host struct {
	// OnMessage receives every valid message from a peer. It runs on the
	// peer's read goroutine.
	OnMessage func(Message)

	hub      *Hub
	upgrader websocket.Upgrader
	log      *slog.Logger

	mu     sync.Mutex
	latest *Message
}

func NewHost() *Host {
	return &Host{
		hub: NewHub(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		log: logx.For("share"),
	}
}

// Peers returns the number of connected peers.
func (h *Host) Peers() int { return h.hub.Len() }

// Handler serves the websocket endpoint at /ws.
func (h *Host) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", h.serveWS)
	return mux
}

// ListenAndServe serves on addr until ctx is cancelled.
func (h *Host) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: h.Handler(), ReadHeaderTimeout: 5 * time.Second}
	stop := context.AfterFunc(ctx, func() {
		shutdown, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdown)
		h.hub.closeAll()
	})
	defer stop()

	h.log.Info("host listening", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("host server: %w", err)
	}
	return nil
}

// Publish sends a local message to every peer.
func (h *Host) Publish(m Message) error {
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode message: %w", err)
	}
	h.remember(m)
	h.hub.Broadcast(data, nil)
	return nil
}

func (h *Host) remember(m Message) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.latest == nil || m.version().after(h.latest.version()) {
		h.latest = &m
	}
}

func (h *Host) snapshot() *Message {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.latest
}

func (h *Host) serveWS(w http.ResponseWriter, r *http.Request) {
	ws, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("upgrade failed", "remote", r.RemoteAddr, "err", err)
		return
	}
	c := newConn(ws)
	h.hub.add(c)
	defer func() {
		h.hub.remove(c)
		_ = ws.Close()
	}()

	if m := h.snapshot(); m != nil {
		data, err := json.Marshal(m)
		if err == nil {
			err = c.write(data)
		}
		if err != nil {
			h.log.Warn("initial snapshot failed", "remote", c.remote(), "err", err)
			return
		}
	}

	for {
		var m Message
		if err := ws.ReadJSON(&m); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.log.Debug("read ended", "remote", c.remote(), "err", err)
			}
			return
		}
		if err := m.Validate(); err != nil {
			h.log.Warn("dropping message", "remote", c.remote(), "err", err)
			continue
		}
		h.log.Debug("received", "type", m.Type, "site", m.Site, "lamport", m.Lamport)
		h.remember(m)
		data, err := json.Marshal(m)
		if err != nil {
			continue
		}
		h.hub.Broadcast(data, c)
		if h.OnMessage != nil {
			h.OnMessage(m)
		}
	}
}

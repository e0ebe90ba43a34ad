package share

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/gorilla/websocket"
)

// Client is a peer connected to a host.
type Client struct {
	c *conn
}

// Dial connects to the host named by a share link.
func Dial(ctx context.Context, link string) (*Client, error) {
	addr, err := ParseLink(link)
	if err != nil {
		return nil, err
	}
	u := url.URL{Scheme: "ws", Host: addr, Path: "/ws"}
	ws, _, err := websocket.DefaultDialer.DialContext(ctx, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("could not connect to %s: %w", addr, err)
	}
	return &Client{c: newConn(ws)}, nil
}

// LocalAddr is the client end of the connection.
func (cl *Client) LocalAddr() string { return cl.c.ws.LocalAddr().String() }

// Publish sends a local message to the host.
func (cl *Client) Publish(m Message) error {
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode message: %w", err)
	}
	return cl.c.write(data)
}

// Run reads messages from the host and passes each valid one to deliver. It
// returns nil when ctx is cancelled or the host closes cleanly.
func (cl *Client) Run(ctx context.Context, deliver func(Message)) error {
	stop := context.AfterFunc(ctx, func() { _ = cl.c.close() })
	defer stop()
	for {
		var m Message
		if err := cl.c.ws.ReadJSON(&m); err != nil {
			if ctx.Err() != nil || websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			return fmt.Errorf("read from host: %w", err)
		}
		if err := m.Validate(); err != nil {
			continue
		}
		deliver(m)
	}
}

// Close ends the session.
func (cl *Client) Close() error { return cl.c.close() }

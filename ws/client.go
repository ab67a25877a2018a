// Package ws adapts one live WebSocket connection to the event router:
// inbound frames become router events, fanned-out domain events become
// outbound frames. Delivery to a client is best-effort; a connection
// that cannot keep up loses frames rather than stalling the room.
package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"chat-rooms/contract"
	"chat-rooms/domain"
	"chat-rooms/domain/event"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

var _ contract.EventSink = (*Client)(nil)

// Client is one transient connection bound to at most one (name, room)
// pair for its entire duration. Its identity is fixed at creation.
type Client struct {
	log    *slog.Logger
	conn   *websocket.Conn
	router contract.IRouter
	connID string
	send   chan []byte
	once   sync.Once
}

func NewClient(log *slog.Logger, conn *websocket.Conn, router contract.IRouter, sendBuffer int) *Client {
	return &Client{
		log:    log,
		conn:   conn,
		router: router,
		send:   make(chan []byte, sendBuffer),
	}
}

// Serve binds the connection to identity and pumps frames until either
// side goes away. A rejected connect (incomplete identity, stale room)
// closes the socket silently, surfacing nothing to the peer.
func (c *Client) Serve(ctx context.Context, identity domain.Identity) {
	connID, err := c.router.OnConnect(ctx, identity, c)
	if err != nil {
		c.log.Debug("Connection rejected", "error", err)
		_ = c.conn.Close()
		return
	}
	c.connID = connID

	go c.writePump()
	c.readPump(ctx)
}

// Consume is called by the fan-out. Events the wire protocol does not
// know about are ignored; a full send buffer drops the frame instead of
// blocking the room's delivery to everyone else.
func (c *Client) Consume(ctx context.Context, e event.DomainEvent) error {
	frame, ok := encode(e)
	if !ok {
		return nil
	}
	select {
	case c.send <- frame:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		c.log.Debug("Send buffer full, dropping frame")
		return nil
	}
}

func (c *Client) readPump(ctx context.Context) {
	defer func() {
		c.router.OnDisconnect(ctx, c.connID)
		c.once.Do(func() { close(c.send) })
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.log.Debug("Read failed", "error", err)
			}
			return
		}

		var env Envelope
		if err := json.Unmarshal(raw, &env); err != nil {
			c.log.Debug("Malformed frame", "error", err)
			continue
		}
		if env.Event != EventMessage {
			continue
		}
		var payload InboundMessage
		if err := json.Unmarshal(env.Data, &payload); err != nil {
			c.log.Debug("Malformed message payload", "error", err)
			continue
		}
		c.router.OnMessage(ctx, c.connID, payload.Data)
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case frame, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

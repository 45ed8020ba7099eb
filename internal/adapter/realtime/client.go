package realtime

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Conn is the subset of *websocket.Conn the hub relies on.
type Conn interface {
	ReadMessage() (messageType int, p []byte, err error)
	WriteMessage(messageType int, data []byte) error
	SetReadDeadline(t time.Time) error
	SetWriteDeadline(t time.Time) error
	SetPongHandler(h func(appData string) error)
	Close() error
}

// MessageHandler receives every text frame read from a client.
type MessageHandler func(ctx context.Context, client *Client, payload []byte)

// Client is one live connection. Its send queue is never closed; done
// signals the end of the connection instead.
type Client struct {
	ID     string
	UserID uint64

	conn      Conn
	send      chan []byte
	done      chan struct{}
	closeOnce sync.Once

	// groups is guarded by the owning Hub's mutex.
	groups map[string]struct{}
}

func newClient(userID uint64, conn Conn, queueSize int) *Client {
	return &Client{
		ID:     uuid.NewString(),
		UserID: userID,
		conn:   conn,
		send:   make(chan []byte, queueSize),
		done:   make(chan struct{}),
		groups: make(map[string]struct{}),
	}
}

func (c *Client) Done() <-chan struct{} {
	return c.done
}

func (c *Client) enqueue(payload []byte) bool {
	select {
	case <-c.done:
		return false
	default:
	}

	select {
	case c.send <- payload:
		return true
	default:
		return false
	}
}

func (c *Client) isClosed() bool {
	select {
	case <-c.done:
		return true
	default:
		return false
	}
}

func (c *Client) close() {
	c.closeOnce.Do(func() {
		close(c.done)
		_ = c.conn.Close()
	})
}

// Serve pumps the connection until it fails, the client is disconnected or
// ctx is cancelled. The client is always disconnected on return.
func (h *Hub) Serve(ctx context.Context, client *Client, onMessage MessageHandler) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer h.Disconnect(client)

	go func() {
		if err := h.writePump(ctx, client); err != nil {
			zap.L().Debug("websocket write failed", zap.String("client_id", client.ID), zap.Error(err))
		}
		h.Disconnect(client)
	}()

	h.readPump(ctx, client, onMessage)
}

func (h *Hub) readPump(ctx context.Context, client *Client, onMessage MessageHandler) {
	_ = client.conn.SetReadDeadline(time.Now().Add(h.config.PongWait))
	client.conn.SetPongHandler(func(string) error {
		return client.conn.SetReadDeadline(time.Now().Add(h.config.PongWait))
	})

	for {
		messageType, payload, err := client.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) && !client.isClosed() {
				zap.L().Info("websocket closed unexpectedly", zap.String("client_id", client.ID), zap.Error(err))
			}
			return
		}
		if messageType != websocket.TextMessage || onMessage == nil {
			continue
		}
		onMessage(ctx, client, payload)
	}
}

func (h *Hub) writePump(ctx context.Context, client *Client) error {
	ticker := time.NewTicker(h.config.PingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-client.done:
			return nil
		case payload := <-client.send:
			_ = client.conn.SetWriteDeadline(time.Now().Add(h.config.WriteWait))
			if err := client.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return err
			}
		case <-ticker.C:
			_ = client.conn.SetWriteDeadline(time.Now().Add(h.config.WriteWait))
			if err := client.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return err
			}
		}
	}
}

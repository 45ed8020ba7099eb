package realtime

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
)

var ErrSubscriptionRefused = errors.New("subscription refused")

// Authorizer decides whether a user may join a group.
type Authorizer func(ctx context.Context, userID uint64, group string) (bool, error)

// Publisher is implemented by the local hub and the cross-instance relay.
type Publisher interface {
	Publish(ctx context.Context, group string, payload []byte)
}

type HubConfig struct {
	// QueueSize bounds each client's outbound queue. Messages for a client
	// with a full queue are dropped.
	QueueSize  int
	PingPeriod time.Duration
	PongWait   time.Duration
	WriteWait  time.Duration
}

func DefaultHubConfig() HubConfig {
	return HubConfig{
		QueueSize:  64,
		PingPeriod: 30 * time.Second,
		PongWait:   60 * time.Second,
		WriteWait:  10 * time.Second,
	}
}

// Hub is the per-process group registry. All methods are safe for concurrent
// use; Deliver never blocks on a slow connection.
type Hub struct {
	config    HubConfig
	authorize Authorizer

	mu     sync.RWMutex
	groups map[string]map[*Client]struct{}
}

var _ Publisher = (*Hub)(nil)

func NewHub(config HubConfig, authorize Authorizer) *Hub {
	defaults := DefaultHubConfig()
	if config.QueueSize <= 0 {
		config.QueueSize = defaults.QueueSize
	}
	if config.PingPeriod <= 0 {
		config.PingPeriod = defaults.PingPeriod
	}
	if config.PongWait <= 0 {
		config.PongWait = defaults.PongWait
	}
	if config.WriteWait <= 0 {
		config.WriteWait = defaults.WriteWait
	}
	return &Hub{
		config:    config,
		authorize: authorize,
		groups:    make(map[string]map[*Client]struct{}),
	}
}

func (h *Hub) NewClient(userID uint64, conn Conn) *Client {
	return newClient(userID, conn, h.config.QueueSize)
}

// Subscribe adds the client to the group once the authorizer accepts it. A
// refused client is closed and never receives events.
func (h *Hub) Subscribe(ctx context.Context, client *Client, group string) error {
	allowed, err := h.authorize(ctx, client.UserID, group)
	if err != nil {
		client.close()
		return err
	}
	if !allowed {
		zap.L().Info("websocket subscription refused",
			zap.String("client_id", client.ID),
			zap.Uint64("user_id", client.UserID),
			zap.String("group", group),
		)
		client.close()
		return ErrSubscriptionRefused
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if client.isClosed() {
		return ErrSubscriptionRefused
	}
	members, ok := h.groups[group]
	if !ok {
		members = make(map[*Client]struct{})
		h.groups[group] = members
	}
	members[client] = struct{}{}
	client.groups[group] = struct{}{}
	return nil
}

// Unsubscribe is a no-op for clients that are not in the group.
func (h *Hub) Unsubscribe(client *Client, group string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(client, group)
}

// Disconnect removes the client from every group and closes its connection.
// It is safe to call more than once.
func (h *Hub) Disconnect(client *Client) {
	// Closing first makes a racing Subscribe see the client as gone.
	client.close()

	h.mu.Lock()
	defer h.mu.Unlock()
	for group := range client.groups {
		h.removeLocked(client, group)
	}
}

// Publish delivers to the subscribers connected to this process.
func (h *Hub) Publish(_ context.Context, group string, payload []byte) {
	h.Deliver(group, payload)
}

// Deliver enqueues the payload for every current member of the group and
// returns how many accepted it.
func (h *Hub) Deliver(group string, payload []byte) int {
	h.mu.RLock()
	members := make([]*Client, 0, len(h.groups[group]))
	for client := range h.groups[group] {
		members = append(members, client)
	}
	h.mu.RUnlock()

	delivered := 0
	for _, client := range members {
		if client.enqueue(payload) {
			delivered++
			continue
		}
		zap.L().Warn("dropping websocket message",
			zap.String("client_id", client.ID),
			zap.String("group", group),
		)
	}
	return delivered
}

func (h *Hub) GroupSize(group string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.groups[group])
}

// ConnectionCount returns the number of distinct subscribed clients.
func (h *Hub) ConnectionCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	clients := make(map[*Client]struct{})
	for _, members := range h.groups {
		for client := range members {
			clients[client] = struct{}{}
		}
	}
	return len(clients)
}

// Close disconnects every client. Used on shutdown.
func (h *Hub) Close() {
	h.mu.Lock()
	clients := make(map[*Client]struct{})
	for _, members := range h.groups {
		for client := range members {
			clients[client] = struct{}{}
		}
	}
	h.groups = make(map[string]map[*Client]struct{})
	for client := range clients {
		client.groups = make(map[string]struct{})
	}
	h.mu.Unlock()

	for client := range clients {
		client.close()
	}
}

func (h *Hub) removeLocked(client *Client, group string) {
	delete(client.groups, group)
	members, ok := h.groups[group]
	if !ok {
		return
	}
	delete(members, client)
	if len(members) == 0 {
		delete(h.groups, group)
	}
}

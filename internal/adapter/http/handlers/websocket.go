package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"slices"
	"strings"

	"creatingtasks/internal/adapter/http/middleware"
	"creatingtasks/internal/adapter/realtime"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

type WebSocketConfig struct {
	// AllowedOrigins lists accepted Origin hosts. Empty means same host only,
	// "*" accepts any origin.
	AllowedOrigins []string
}

type WebSocketHandler struct {
	hub       *realtime.Hub
	publisher realtime.Publisher
	upgrader  websocket.Upgrader
}

// NewWebSocketHandler wires the streams to hub. Inbound task updates are
// re-broadcast through publisher so that other instances see them too.
func NewWebSocketHandler(hub *realtime.Hub, publisher realtime.Publisher, config WebSocketConfig) *WebSocketHandler {
	return &WebSocketHandler{
		hub:       hub,
		publisher: publisher,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(config.AllowedOrigins),
		},
	}
}

func (h *WebSocketHandler) TaskListStream(c *gin.Context) {
	taskListID, ok := parseIDParam(c, "taskListId")
	if !ok {
		return
	}
	group := realtime.TaskListGroup(taskListID)
	h.serve(c, group, realtime.RebroadcastTaskUpdates(h.publisher, group))
}

// NotificationStream is push only; inbound frames are discarded.
func (h *WebSocketHandler) NotificationStream(c *gin.Context) {
	h.serve(c, realtime.NotificationGroup(middleware.CurrentUserID(c)), nil)
}

func (h *WebSocketHandler) serve(c *gin.Context, group string, onMessage realtime.MessageHandler) {
	userID := middleware.CurrentUserID(c)

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// The upgrader has already replied with an HTTP error.
		zap.L().Debug("websocket upgrade failed", zap.String("group", group), zap.Error(err))
		return
	}

	ctx := c.Request.Context()
	client := h.hub.NewClient(userID, conn)
	if err := h.hub.Subscribe(ctx, client, group); err != nil {
		if !errors.Is(err, realtime.ErrSubscriptionRefused) {
			zap.L().Error("failed to authorize websocket subscription",
				zap.Uint64("user_id", userID),
				zap.String("group", group),
				zap.Error(err),
			)
		}
		return
	}

	zap.L().Debug("websocket connected",
		zap.String("client_id", client.ID),
		zap.Uint64("user_id", userID),
		zap.String("group", group),
	)
	h.hub.Serve(ctx, client, onMessage)
}

func originChecker(allowed []string) func(r *http.Request) bool {
	if len(allowed) == 0 {
		return nil
	}
	if slices.Contains(allowed, "*") {
		return func(*http.Request) bool { return true }
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		parsed, err := url.Parse(origin)
		if err != nil {
			return false
		}
		for _, host := range allowed {
			if strings.EqualFold(parsed.Host, host) || strings.EqualFold(origin, host) {
				return true
			}
		}
		return false
	}
}

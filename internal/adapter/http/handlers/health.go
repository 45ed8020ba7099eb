package handlers

import (
	"context"
	"net/http"
	"os"
	"time"

	"creatingtasks/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

const (
	StatusOk       = "ok"
	StatusDown     = "down"
	StatusDisabled = "disabled"

	healthPingTimeout = 2 * time.Second
	healthTimeLayout  = "2006-01-02 15:04:05"
)

type HealthBasic struct {
	AppName           string `json:"app_name"`
	AppVersion        string `json:"app_version"`
	CurrentSystemTime string `json:"current_system_time"`
	Message           string `json:"message"`
}

type HealthServices struct {
	Mysql string `json:"mysql"`
	Redis string `json:"redis"`
}

type HealthAdvanced struct {
	AppName           string         `json:"app_name"`
	AppVersion        string         `json:"app_version"`
	CurrentSystemTime string         `json:"current_system_time"`
	Language          string         `json:"language"`
	Status            HealthServices `json:"status"`
	WebSocketClients  int            `json:"websocket_clients"`
}

// ConnectionCounter reports live WebSocket clients on this instance.
type ConnectionCounter interface {
	ConnectionCount() int
}

type HealthHandler struct {
	db          *sqlx.DB
	redis       *redis.Client
	connections ConnectionCounter
}

// NewHealthHandler accepts a nil redis client when the relay is disabled.
func NewHealthHandler(db *sqlx.DB, redisClient *redis.Client) *HealthHandler {
	return &HealthHandler{db: db, redis: redisClient}
}

func (h *HealthHandler) WithConnections(counter ConnectionCounter) *HealthHandler {
	h.connections = counter
	return h
}

// CheckHealth fails when MySQL is down or when an enabled Redis is down.
func (h *HealthHandler) CheckHealth(c *gin.Context) {
	services := h.services(c.Request.Context())

	statusCode := http.StatusOK
	message := StatusOk
	if services.Mysql == StatusDown || services.Redis == StatusDown {
		statusCode = http.StatusInternalServerError
		message = StatusDown
	}

	c.JSON(statusCode, HealthBasic{
		AppName:           os.Getenv("APP_NAME"),
		AppVersion:        getAppVersion(),
		CurrentSystemTime: time.Now().Format(healthTimeLayout),
		Message:           message,
	})
}

func (h *HealthHandler) CheckHealthReport(c *gin.Context) {
	report := HealthAdvanced{
		AppName:           os.Getenv("APP_NAME"),
		AppVersion:        getAppVersion(),
		CurrentSystemTime: time.Now().Format(healthTimeLayout),
		Language:          middleware.GetLang(c),
		Status:            h.services(c.Request.Context()),
	}
	if h.connections != nil {
		report.WebSocketClients = h.connections.ConnectionCount()
	}

	c.JSON(http.StatusOK, report)
}

func (h *HealthHandler) services(ctx context.Context) HealthServices {
	return HealthServices{
		Mysql: h.mysqlStatus(ctx),
		Redis: h.redisStatus(ctx),
	}
}

func (h *HealthHandler) mysqlStatus(ctx context.Context) string {
	if h.db == nil {
		return StatusDown
	}
	return pingStatus(ctx, h.db.PingContext)
}

func (h *HealthHandler) redisStatus(ctx context.Context) string {
	if h.redis == nil {
		return StatusDisabled
	}
	return pingStatus(ctx, func(ctx context.Context) error {
		return h.redis.Ping(ctx).Err()
	})
}

// pingStatus bounds the ping so a stalled dependency cannot hang the health check.
func pingStatus(ctx context.Context, ping func(context.Context) error) string {
	timeoutCtx, cancel := context.WithTimeout(ctx, healthPingTimeout)
	defer cancel()
	if err := ping(timeoutCtx); err != nil {
		return StatusDown
	}
	return StatusOk
}

func getAppVersion() string {
	version := os.Getenv("APP_VERSION")
	if version == "" {
		return "dev"
	}
	return version
}

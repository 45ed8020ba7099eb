package tests

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"creatingtasks/internal/adapter/auth"
	httpadapter "creatingtasks/internal/adapter/http"
	"creatingtasks/internal/adapter/http/handlers"
	"creatingtasks/internal/adapter/realtime"
	"creatingtasks/internal/core/domain"
	"creatingtasks/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const (
	aliceToken = "alice-key"
	bobToken   = "bob-key"
)

var (
	alice = domain.User{ID: 10, Username: "alice", Email: "alice@example.com", IsActive: true, Profile: domain.DefaultProfile()}
	bob   = domain.User{ID: 20, Username: "bob", Email: "bob@example.com", IsActive: true, Profile: domain.DefaultProfile()}

	fixedNow = time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
)

type authenticatorStub map[string]domain.User

func (s authenticatorStub) Authenticate(_ context.Context, token string) (domain.User, error) {
	user, ok := s[token]
	if !ok {
		return domain.User{}, domain.ErrUnauthenticated
	}
	return user, nil
}

type testEnv struct {
	router        *gin.Engine
	hub           *realtime.Hub
	sessions      *auth.JWTManager
	tasks         *taskServiceMock
	lists         *taskListServiceMock
	users         *userServiceMock
	comments      *commentServiceMock
	notifications *notificationServiceMock
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		sessions:      auth.NewJWTManager(auth.JWTConfig{SecretKey: "test-secret", TTL: time.Hour, Issuer: "creatingtasks"}),
		tasks:         new(taskServiceMock),
		lists:         new(taskListServiceMock),
		users:         new(userServiceMock),
		comments:      new(commentServiceMock),
		notifications: new(notificationServiceMock),
	}
	env.hub = realtime.NewHub(realtime.DefaultHubConfig(), realtime.GroupAuthorizer(env.lists))
	t.Cleanup(env.hub.Close)

	env.router = gin.New()
	httpadapter.RegisterRoutes(env.router, httpadapter.Handlers{
		Health:        handlers.NewHealthHandler(nil, nil).WithConnections(env.hub),
		Auth:          handlers.NewAuthHandler(env.users, env.sessions, handlers.CookieConfig{Name: "session"}),
		TaskLists:     handlers.NewTaskListHandler(env.lists),
		Tasks:         handlers.NewTaskHandler(env.tasks).WithClock(func() time.Time { return fixedNow }),
		Comments:      handlers.NewCommentHandler(env.comments),
		Notifications: handlers.NewNotificationHandler(env.notifications),
		WebSocket:     handlers.NewWebSocketHandler(env.hub, env.hub, handlers.WebSocketConfig{AllowedOrigins: []string{"*"}}),
	}, httpadapter.AuthDeps{
		Users:             authenticatorStub{aliceToken: alice, bobToken: bob},
		Sessions:          env.sessions,
		SessionCookieName: "session",
	})

	t.Cleanup(func() {
		env.tasks.AssertExpectations(t)
		env.lists.AssertExpectations(t)
		env.users.AssertExpectations(t)
		env.comments.AssertExpectations(t)
		env.notifications.AssertExpectations(t)
	})
	return env
}

type requestOption func(*http.Request)

func withToken(token string) requestOption {
	return func(r *http.Request) { r.Header.Set("Authorization", "Token "+token) }
}

func withLanguage(lang string) requestOption {
	return func(r *http.Request) { r.Header.Set("Accept-Language", lang) }
}

func (e *testEnv) do(method, target, body string, options ...requestOption) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, option := range options {
		option(req)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var got T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got), rec.Body.String())
	return got
}

func requireAPIError(t *testing.T, rec *httptest.ResponseRecorder, status int, message string) apierrors.JsonErr {
	t.Helper()
	require.Equal(t, status, rec.Code, rec.Body.String())
	got := decodeBody[apierrors.JsonErr](t, rec)
	require.Equal(t, status, got.ErrDetails.Code)
	require.Equal(t, message, got.ErrDetails.Message)
	return got
}

func uint64Ptr(value uint64) *uint64 {
	return &value
}

func timePtr(value time.Time) *time.Time {
	return &value
}

package tests

import (
	"net/http"
	"testing"

	"creatingtasks/internal/adapter/http/dto"
	"creatingtasks/internal/core/domain"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNotificationHandler_ListNotifications(t *testing.T) {
	env := newTestEnv(t)
	notification := domain.Notification{
		ID:            1,
		UserID:        bob.ID,
		Type:          domain.NotificationTaskAssigned,
		Title:         "New task",
		Message:       "You were assigned to Write report",
		RelatedTaskID: uint64Ptr(7),
		CreatedAt:     fixedNow,
	}
	env.notifications.On("ListNotifications", mock.Anything, bob.ID, true).Return([]domain.Notification{notification}, nil).Once()
	env.notifications.On("ListNotifications", mock.Anything, bob.ID, false).Return(nil, nil).Once()

	rec := env.do(http.MethodGet, "/api/notifications?unread=true", "", withToken(bobToken))
	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody[[]dto.NotificationItem](t, rec)
	require.Len(t, got, 1)
	require.Equal(t, "task_assigned", got[0].NotificationType)
	require.Equal(t, uint64(7), *got[0].RelatedTask)
	require.False(t, got[0].IsRead)

	rec = env.do(http.MethodGet, "/api/notifications", "", withToken(bobToken))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `[]`, rec.Body.String())
}

func TestNotificationHandler_Counters(t *testing.T) {
	env := newTestEnv(t)
	env.notifications.On("UnreadCount", mock.Anything, bob.ID).Return(int64(4), nil).Once()
	env.notifications.On("MarkAllRead", mock.Anything, bob.ID).Return(int64(4), nil).Once()

	rec := env.do(http.MethodGet, "/api/notifications/unread-count", "", withToken(bobToken))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"count":4}`, rec.Body.String())

	rec = env.do(http.MethodPost, "/api/notifications/read-all", "", withToken(bobToken))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"updated":4}`, rec.Body.String())
}

func TestNotificationHandler_MarkRead(t *testing.T) {
	env := newTestEnv(t)
	env.notifications.On("MarkRead", mock.Anything, bob.ID, uint64(1)).Return(domain.Notification{ID: 1, UserID: bob.ID, IsRead: true, CreatedAt: fixedNow}, nil).Once()
	env.notifications.On("MarkRead", mock.Anything, alice.ID, uint64(1)).Return(domain.Notification{}, domain.ErrNotificationNotFound).Once()

	rec := env.do(http.MethodPost, "/api/notifications/1/read", "", withToken(bobToken))
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, decodeBody[dto.NotificationItem](t, rec).IsRead)

	rec = env.do(http.MethodPost, "/api/notifications/1/read", "", withToken(aliceToken))
	requireAPIError(t, rec, http.StatusNotFound, "Notification not found.")
}

package ports

import (
	"context"

	"creatingtasks/internal/core/domain"
)

type NotificationRepository interface {
	CreateNotification(ctx context.Context, input domain.CreateNotificationInput) (domain.Notification, error)
	ListNotifications(ctx context.Context, filter domain.NotificationFilter) ([]domain.Notification, error)
	GetNotification(ctx context.Context, notificationID uint64) (domain.Notification, error)
	MarkRead(ctx context.Context, notificationID uint64) error
	MarkAllRead(ctx context.Context, userID uint64) (int64, error)
	CountUnread(ctx context.Context, userID uint64) (int64, error)
}

// Notifier persists a notification and pushes it to the recipient's live
// connections. Push failures are never returned.
type Notifier interface {
	Notify(ctx context.Context, input domain.CreateNotificationInput) (domain.Notification, error)
}

type NotificationService interface {
	Notifier
	ListNotifications(ctx context.Context, userID uint64, unreadOnly bool) ([]domain.Notification, error)
	MarkRead(ctx context.Context, userID, notificationID uint64) (domain.Notification, error)
	MarkAllRead(ctx context.Context, userID uint64) (int64, error)
	UnreadCount(ctx context.Context, userID uint64) (int64, error)
}

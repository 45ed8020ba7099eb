package service

import (
	"context"

	"go.uber.org/zap"

	"creatingtasks/internal/core/domain"
	"creatingtasks/internal/core/ports"
)

type NotificationService struct {
	notificationRepository ports.NotificationRepository
	userRepository         ports.UserRepository
	broadcaster            ports.Broadcaster
}

func NewNotificationService(
	notificationRepository ports.NotificationRepository,
	userRepository ports.UserRepository,
	broadcaster ports.Broadcaster,
) *NotificationService {
	return &NotificationService{
		notificationRepository: notificationRepository,
		userRepository:         userRepository,
		broadcaster:            broadcaster,
	}
}

// Notify stores the notification first and pushes it afterwards. The push is
// skipped for users who disabled every notification channel.
func (s *NotificationService) Notify(ctx context.Context, input domain.CreateNotificationInput) (domain.Notification, error) {
	notification, err := s.notificationRepository.CreateNotification(ctx, input)
	if err != nil {
		return domain.Notification{}, err
	}

	recipient, err := s.userRepository.GetUser(ctx, input.UserID)
	if err != nil {
		zap.L().Warn("notification stored but recipient lookup failed",
			zap.Uint64("notification_id", notification.ID),
			zap.Error(err),
		)
		return notification, nil
	}
	if recipient.Profile.WantsPush() {
		s.broadcaster.SendNotification(ctx, notification)
	}
	return notification, nil
}

func (s *NotificationService) ListNotifications(ctx context.Context, userID uint64, unreadOnly bool) ([]domain.Notification, error) {
	return s.notificationRepository.ListNotifications(ctx, domain.NotificationFilter{
		UserID:     userID,
		UnreadOnly: unreadOnly,
	})
}

func (s *NotificationService) MarkRead(ctx context.Context, userID, notificationID uint64) (domain.Notification, error) {
	notification, err := s.notificationRepository.GetNotification(ctx, notificationID)
	if err != nil {
		return domain.Notification{}, err
	}
	if notification.UserID != userID {
		return domain.Notification{}, domain.ErrNotificationNotFound
	}
	if notification.IsRead {
		return notification, nil
	}
	if err := s.notificationRepository.MarkRead(ctx, notificationID); err != nil {
		return domain.Notification{}, err
	}
	notification.IsRead = true
	return notification, nil
}

func (s *NotificationService) MarkAllRead(ctx context.Context, userID uint64) (int64, error) {
	return s.notificationRepository.MarkAllRead(ctx, userID)
}

func (s *NotificationService) UnreadCount(ctx context.Context, userID uint64) (int64, error) {
	return s.notificationRepository.CountUnread(ctx, userID)
}

var _ ports.NotificationService = (*NotificationService)(nil)

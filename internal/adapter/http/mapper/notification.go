package mapper

import (
	"creatingtasks/internal/adapter/http/dto"
	"creatingtasks/internal/core/domain"
)

func ToNotificationItems(notifications []domain.Notification) []dto.NotificationItem {
	items := make([]dto.NotificationItem, 0, len(notifications))
	for _, notification := range notifications {
		items = append(items, ToNotificationItem(notification))
	}
	return items
}

func ToNotificationItem(notification domain.Notification) dto.NotificationItem {
	return dto.NotificationItem{
		ID:               notification.ID,
		NotificationType: string(notification.Type),
		Title:            notification.Title,
		Message:          notification.Message,
		RelatedTask:      notification.RelatedTaskID,
		IsRead:           notification.IsRead,
		CreatedAt:        formatTime(notification.CreatedAt),
	}
}

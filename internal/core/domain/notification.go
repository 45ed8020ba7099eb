package domain

import "time"

type NotificationType string

const (
	NotificationTaskAssigned  NotificationType = "task_assigned"
	NotificationTaskDue       NotificationType = "task_due"
	NotificationTaskCompleted NotificationType = "task_completed"
	NotificationCommentAdded  NotificationType = "comment_added"
)

func (t NotificationType) Valid() bool {
	switch t {
	case NotificationTaskAssigned, NotificationTaskDue, NotificationTaskCompleted, NotificationCommentAdded:
		return true
	}
	return false
}

type Notification struct {
	ID            uint64
	UserID        uint64
	Type          NotificationType
	Title         string
	Message       string
	RelatedTaskID *uint64
	IsRead        bool
	CreatedAt     time.Time
}

type CreateNotificationInput struct {
	UserID        uint64
	Type          NotificationType
	Title         string
	Message       string
	RelatedTaskID *uint64
}

type NotificationFilter struct {
	UserID     uint64
	UnreadOnly bool
}

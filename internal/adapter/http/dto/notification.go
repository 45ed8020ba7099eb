package dto

type NotificationItem struct {
	ID               uint64  `json:"id"`
	NotificationType string  `json:"notification_type"`
	Title            string  `json:"title"`
	Message          string  `json:"message"`
	RelatedTask      *uint64 `json:"related_task"`
	IsRead           bool    `json:"is_read"`
	CreatedAt        string  `json:"created_at"`
}

type UnreadCountResponse struct {
	Count int64 `json:"count"`
}

type MarkAllReadResponse struct {
	Updated int64 `json:"updated"`
}

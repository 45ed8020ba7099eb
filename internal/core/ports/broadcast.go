package ports

import (
	"context"

	"creatingtasks/internal/core/domain"
)

// Broadcaster is the service-side view of the real-time fan-out layer.
// Delivery is best effort: implementations log and swallow failures.
type Broadcaster interface {
	BroadcastTaskCreated(ctx context.Context, task domain.Task)
	BroadcastTaskUpdated(ctx context.Context, task domain.Task)
	BroadcastTaskDeleted(ctx context.Context, taskListID, taskID uint64)
	SendNotification(ctx context.Context, notification domain.Notification)
}

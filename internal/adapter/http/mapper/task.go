package mapper

import (
	"time"

	"creatingtasks/internal/adapter/http/dto"
	"creatingtasks/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task, now time.Time) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task, now))
	}
	return items
}

// ToTaskItem computes the overdue fields against now; they are never stored.
func ToTaskItem(task domain.Task, now time.Time) dto.TaskItem {
	item := dto.TaskItem{
		ID:           task.ID,
		TaskList:     task.TaskListID,
		TaskListName: task.TaskListName,
		TaskListSlug: task.TaskListSlug,
		Title:        task.Title,
		Description:  task.Description,
		Status:       string(task.Status),
		Priority:     string(task.Priority),
		CreatedBy:    toUserRef(task.CreatedBy),
		AssignedTo:   toUserRef(task.AssignedTo),
		DueDate:      formatOptionalTime(task.DueDate),
		CompletedAt:  formatOptionalTime(task.CompletedAt),
		IsArchived:   task.IsArchived,
		IsOverdue:    task.IsOverdue(now),
		CreatedAt:    formatTime(task.CreatedAt),
		UpdatedAt:    formatTime(task.UpdatedAt),
	}

	if item.CreatedBy == nil && task.CreatedByID != 0 {
		item.CreatedBy = &dto.UserRef{ID: task.CreatedByID}
	}
	if item.AssignedTo == nil && task.AssignedToID != nil {
		item.AssignedTo = &dto.UserRef{ID: *task.AssignedToID}
	}

	if remaining, ok := task.TimeUntilDue(now); ok {
		seconds := int64(remaining / time.Second)
		item.TimeUntilDueSeconds = &seconds
	}

	return item
}

func toUserRef(ref *domain.UserRef) *dto.UserRef {
	if ref == nil {
		return nil
	}
	return &dto.UserRef{ID: ref.ID, Username: ref.Username}
}

func formatTime(value time.Time) string {
	return value.UTC().Format(time.RFC3339)
}

func formatOptionalTime(value *time.Time) *string {
	if value == nil {
		return nil
	}
	formatted := formatTime(*value)
	return &formatted
}

package ports

import (
	"context"
	"time"

	"creatingtasks/internal/core/domain"
)

type TaskRepository interface {
	ListTasks(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error)
	GetTask(ctx context.Context, taskID uint64) (domain.Task, error)
	CreateTask(ctx context.Context, createdByID uint64, input domain.CreateTaskInput) (domain.Task, error)
	UpdateTask(ctx context.Context, taskID uint64, input domain.UpdateTaskInput) (domain.Task, error)
	// CompleteTask persists the status and completion time of task in a
	// single statement and returns the stored row.
	CompleteTask(ctx context.Context, task domain.Task) (domain.Task, error)
	DeleteTask(ctx context.Context, taskID uint64) error
	ListDueForReminder(ctx context.Context, dueBefore time.Time) ([]domain.Task, error)
	MarkDueReminded(ctx context.Context, taskID uint64, remindedAt time.Time) error
}

type TaskService interface {
	ListTasks(ctx context.Context, userID uint64, filter domain.TaskFilter) ([]domain.Task, error)
	ListMyTasks(ctx context.Context, userID uint64) ([]domain.Task, error)
	GetTask(ctx context.Context, userID, taskID uint64) (domain.Task, error)
	CreateTask(ctx context.Context, userID uint64, input domain.CreateTaskInput) (domain.Task, error)
	UpdateTask(ctx context.Context, userID, taskID uint64, input domain.UpdateTaskInput) (domain.Task, error)
	CompleteTask(ctx context.Context, userID, taskID uint64) (domain.Task, error)
	DeleteTask(ctx context.Context, userID, taskID uint64) error
}

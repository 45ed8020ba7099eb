package ports

import (
	"context"

	"creatingtasks/internal/core/domain"
)

type TaskListRepository interface {
	ListTaskLists(ctx context.Context, filter domain.TaskListFilter) ([]domain.TaskList, error)
	GetTaskList(ctx context.Context, taskListID uint64) (domain.TaskList, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	CreateTaskList(ctx context.Context, ownerID uint64, slug string, input domain.CreateTaskListInput) (domain.TaskList, error)
	UpdateTaskList(ctx context.Context, taskListID uint64, input domain.UpdateTaskListInput) (domain.TaskList, error)
	DeleteTaskList(ctx context.Context, taskListID uint64) error
	AddMember(ctx context.Context, taskListID, userID uint64) error
	RemoveMember(ctx context.Context, taskListID, userID uint64) error
}

type TaskListService interface {
	ListTaskLists(ctx context.Context, userID uint64, archived *bool) ([]domain.TaskList, error)
	GetTaskList(ctx context.Context, userID, taskListID uint64) (domain.TaskList, error)
	CreateTaskList(ctx context.Context, userID uint64, input domain.CreateTaskListInput) (domain.TaskList, error)
	UpdateTaskList(ctx context.Context, userID, taskListID uint64, input domain.UpdateTaskListInput) (domain.TaskList, error)
	DeleteTaskList(ctx context.Context, userID, taskListID uint64) error
	AddMember(ctx context.Context, userID, taskListID, memberID uint64) (domain.TaskList, error)
	RemoveMember(ctx context.Context, userID, taskListID, memberID uint64) (domain.TaskList, error)
	IsMember(ctx context.Context, userID, taskListID uint64) (bool, error)
}

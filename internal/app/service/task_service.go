package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"creatingtasks/internal/core/domain"
	"creatingtasks/internal/core/ports"
)

type TaskService struct {
	taskRepository     ports.TaskRepository
	taskListRepository ports.TaskListRepository
	notifier           ports.Notifier
	broadcaster        ports.Broadcaster
	now                func() time.Time
}

func NewTaskService(
	taskRepository ports.TaskRepository,
	taskListRepository ports.TaskListRepository,
	notifier ports.Notifier,
	broadcaster ports.Broadcaster,
) *TaskService {
	return &TaskService{
		taskRepository:     taskRepository,
		taskListRepository: taskListRepository,
		notifier:           notifier,
		broadcaster:        broadcaster,
		now:                time.Now,
	}
}

// WithClock replaces the time source used for completion timestamps.
func (s *TaskService) WithClock(now func() time.Time) *TaskService {
	s.now = now
	return s
}

func (s *TaskService) ListTasks(ctx context.Context, userID uint64, filter domain.TaskFilter) ([]domain.Task, error) {
	if filter.TaskListID != nil {
		if _, err := s.accessibleList(ctx, userID, *filter.TaskListID); err != nil {
			return nil, err
		}
	}
	filter.UserID = userID
	return s.taskRepository.ListTasks(ctx, filter)
}

func (s *TaskService) ListMyTasks(ctx context.Context, userID uint64) ([]domain.Task, error) {
	archived := false
	return s.taskRepository.ListTasks(ctx, domain.TaskFilter{
		UserID:       userID,
		AssignedToID: &userID,
		Archived:     &archived,
	})
}

func (s *TaskService) GetTask(ctx context.Context, userID, taskID uint64) (domain.Task, error) {
	task, _, err := s.accessibleTask(ctx, userID, taskID)
	return task, err
}

func (s *TaskService) CreateTask(ctx context.Context, userID uint64, input domain.CreateTaskInput) (domain.Task, error) {
	list, err := s.accessibleList(ctx, userID, input.TaskListID)
	if err != nil {
		return domain.Task{}, err
	}
	if input.AssignedToID != nil && !list.HasAccess(*input.AssignedToID) {
		return domain.Task{}, domain.ErrAssigneeNotMember
	}
	if input.Status == "" {
		input.Status = domain.TaskStatusPending
	}
	if input.Priority == "" {
		input.Priority = domain.TaskPriorityMedium
	}

	task, err := s.taskRepository.CreateTask(ctx, userID, input)
	if err != nil {
		return domain.Task{}, err
	}

	s.broadcaster.BroadcastTaskCreated(ctx, task)
	if task.AssignedToID != nil && *task.AssignedToID != userID {
		s.notifyAssigned(ctx, task)
	}
	return task, nil
}

// UpdateTask applies a partial update. Status edits through this path never
// touch CompletedAt, so reverting a completed task keeps its old timestamp.
func (s *TaskService) UpdateTask(ctx context.Context, userID, taskID uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	current, list, err := s.accessibleTask(ctx, userID, taskID)
	if err != nil {
		return domain.Task{}, err
	}
	if input.AssignedToIDSet && input.AssignedToID != nil && !list.HasAccess(*input.AssignedToID) {
		return domain.Task{}, domain.ErrAssigneeNotMember
	}

	task, err := s.taskRepository.UpdateTask(ctx, taskID, input)
	if err != nil {
		return domain.Task{}, err
	}

	s.broadcaster.BroadcastTaskUpdated(ctx, task)
	if reassigned(current, task) && *task.AssignedToID != userID {
		s.notifyAssigned(ctx, task)
	}
	return task, nil
}

// CompleteTask is the only operation that stamps the completion time.
func (s *TaskService) CompleteTask(ctx context.Context, userID, taskID uint64) (domain.Task, error) {
	current, _, err := s.accessibleTask(ctx, userID, taskID)
	if err != nil {
		return domain.Task{}, err
	}

	current.MarkAsCompleted(s.now().UTC())
	task, err := s.taskRepository.CompleteTask(ctx, current)
	if err != nil {
		return domain.Task{}, err
	}

	s.broadcaster.BroadcastTaskUpdated(ctx, task)
	if task.CreatedByID != userID {
		s.notify(ctx, domain.CreateNotificationInput{
			UserID:        task.CreatedByID,
			Type:          domain.NotificationTaskCompleted,
			Title:         "Task completed",
			Message:       fmt.Sprintf("Task %q in %q was completed.", task.Title, task.TaskListName),
			RelatedTaskID: &task.ID,
		})
	}
	return task, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, userID, taskID uint64) error {
	task, _, err := s.accessibleTask(ctx, userID, taskID)
	if err != nil {
		return err
	}
	if err := s.taskRepository.DeleteTask(ctx, taskID); err != nil {
		return err
	}
	s.broadcaster.BroadcastTaskDeleted(ctx, task.TaskListID, task.ID)
	return nil
}

func (s *TaskService) accessibleList(ctx context.Context, userID, taskListID uint64) (domain.TaskList, error) {
	list, err := s.taskListRepository.GetTaskList(ctx, taskListID)
	if err != nil {
		return domain.TaskList{}, err
	}
	if !list.HasAccess(userID) {
		return domain.TaskList{}, domain.ErrTaskListNotFound
	}
	return list, nil
}

// accessibleTask reports tasks of lists the user cannot access as not found.
func (s *TaskService) accessibleTask(ctx context.Context, userID, taskID uint64) (domain.Task, domain.TaskList, error) {
	task, err := s.taskRepository.GetTask(ctx, taskID)
	if err != nil {
		return domain.Task{}, domain.TaskList{}, err
	}
	list, err := s.accessibleList(ctx, userID, task.TaskListID)
	if err != nil {
		if errors.Is(err, domain.ErrTaskListNotFound) {
			return domain.Task{}, domain.TaskList{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, domain.TaskList{}, err
	}
	return task, list, nil
}

func (s *TaskService) notifyAssigned(ctx context.Context, task domain.Task) {
	s.notify(ctx, domain.CreateNotificationInput{
		UserID:        *task.AssignedToID,
		Type:          domain.NotificationTaskAssigned,
		Title:         "New task assigned",
		Message:       fmt.Sprintf("You were assigned to %q in %q.", task.Title, task.TaskListName),
		RelatedTaskID: &task.ID,
	})
}

// notify never fails the triggering request: the task change is already
// committed at this point.
func (s *TaskService) notify(ctx context.Context, input domain.CreateNotificationInput) {
	if _, err := s.notifier.Notify(ctx, input); err != nil {
		zap.L().Error("failed to create notification",
			zap.Uint64("user_id", input.UserID),
			zap.String("type", string(input.Type)),
			zap.Error(err),
		)
	}
}

func reassigned(before, after domain.Task) bool {
	if after.AssignedToID == nil {
		return false
	}
	return before.AssignedToID == nil || *before.AssignedToID != *after.AssignedToID
}

var _ ports.TaskService = (*TaskService)(nil)

package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"creatingtasks/internal/core/domain"
	"creatingtasks/internal/core/ports"
)

type CommentService struct {
	commentRepository  ports.CommentRepository
	taskRepository     ports.TaskRepository
	taskListRepository ports.TaskListRepository
	notifier           ports.Notifier
}

func NewCommentService(
	commentRepository ports.CommentRepository,
	taskRepository ports.TaskRepository,
	taskListRepository ports.TaskListRepository,
	notifier ports.Notifier,
) *CommentService {
	return &CommentService{
		commentRepository:  commentRepository,
		taskRepository:     taskRepository,
		taskListRepository: taskListRepository,
		notifier:           notifier,
	}
}

func (s *CommentService) ListComments(ctx context.Context, userID uint64, taskID *uint64) ([]domain.Comment, error) {
	if taskID == nil {
		return s.commentRepository.ListVisibleComments(ctx, userID)
	}
	if _, err := s.visibleTask(ctx, userID, *taskID); err != nil {
		return nil, err
	}
	return s.commentRepository.ListComments(ctx, *taskID)
}

func (s *CommentService) GetComment(ctx context.Context, userID, commentID uint64) (domain.Comment, error) {
	return s.visibleComment(ctx, userID, commentID)
}

func (s *CommentService) CreateComment(ctx context.Context, userID uint64, input domain.CreateCommentInput) (domain.Comment, error) {
	task, err := s.visibleTask(ctx, userID, input.TaskID)
	if err != nil {
		return domain.Comment{}, err
	}

	comment, err := s.commentRepository.CreateComment(ctx, userID, input)
	if err != nil {
		return domain.Comment{}, err
	}

	for _, recipientID := range commentRecipients(task, userID) {
		notification := domain.CreateNotificationInput{
			UserID:        recipientID,
			Type:          domain.NotificationCommentAdded,
			Title:         "New comment",
			Message:       fmt.Sprintf("New comment on %q.", task.Title),
			RelatedTaskID: &task.ID,
		}
		if _, err := s.notifier.Notify(ctx, notification); err != nil {
			zap.L().Error("failed to create comment notification",
				zap.Uint64("comment_id", comment.ID),
				zap.Uint64("user_id", recipientID),
				zap.Error(err),
			)
		}
	}
	return comment, nil
}

func (s *CommentService) UpdateComment(ctx context.Context, userID, commentID uint64, content string) (domain.Comment, error) {
	comment, err := s.visibleComment(ctx, userID, commentID)
	if err != nil {
		return domain.Comment{}, err
	}
	if comment.AuthorID != userID {
		return domain.Comment{}, domain.ErrForbidden
	}
	return s.commentRepository.UpdateComment(ctx, commentID, content)
}

func (s *CommentService) DeleteComment(ctx context.Context, userID, commentID uint64) error {
	comment, err := s.visibleComment(ctx, userID, commentID)
	if err != nil {
		return err
	}
	if comment.AuthorID != userID {
		return domain.ErrForbidden
	}
	return s.commentRepository.DeleteComment(ctx, commentID)
}

func (s *CommentService) visibleTask(ctx context.Context, userID, taskID uint64) (domain.Task, error) {
	task, err := s.taskRepository.GetTask(ctx, taskID)
	if err != nil {
		return domain.Task{}, err
	}
	list, err := s.taskListRepository.GetTaskList(ctx, task.TaskListID)
	if err != nil {
		if errors.Is(err, domain.ErrTaskListNotFound) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}
	if !list.HasAccess(userID) {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	return task, nil
}

func (s *CommentService) visibleComment(ctx context.Context, userID, commentID uint64) (domain.Comment, error) {
	comment, err := s.commentRepository.GetComment(ctx, commentID)
	if err != nil {
		return domain.Comment{}, err
	}
	if _, err := s.visibleTask(ctx, userID, comment.TaskID); err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			return domain.Comment{}, domain.ErrCommentNotFound
		}
		return domain.Comment{}, err
	}
	return comment, nil
}

// commentRecipients returns the assignee and the creator, without duplicates
// and without the comment author.
func commentRecipients(task domain.Task, authorID uint64) []uint64 {
	candidates := []uint64{task.CreatedByID}
	if task.AssignedToID != nil {
		candidates = append([]uint64{*task.AssignedToID}, candidates...)
	}
	return withoutID(candidates, authorID)
}

var _ ports.CommentService = (*CommentService)(nil)

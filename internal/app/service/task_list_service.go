package service

import (
	"context"
	"errors"
	"fmt"

	"creatingtasks/internal/core/domain"
	"creatingtasks/internal/core/ports"
)

// maxSlugAttempts bounds the suffix search so a pathological table cannot
// keep a request spinning.
const maxSlugAttempts = 1000

type TaskListService struct {
	taskListRepository ports.TaskListRepository
	userRepository     ports.UserRepository
}

func NewTaskListService(taskListRepository ports.TaskListRepository, userRepository ports.UserRepository) *TaskListService {
	return &TaskListService{
		taskListRepository: taskListRepository,
		userRepository:     userRepository,
	}
}

func (s *TaskListService) ListTaskLists(ctx context.Context, userID uint64, archived *bool) ([]domain.TaskList, error) {
	return s.taskListRepository.ListTaskLists(ctx, domain.TaskListFilter{UserID: userID, Archived: archived})
}

func (s *TaskListService) GetTaskList(ctx context.Context, userID, taskListID uint64) (domain.TaskList, error) {
	return s.visibleTaskList(ctx, userID, taskListID)
}

// CreateTaskList assigns the first free slug among base, base-1, base-2, ...
// The existence check and the insert are not atomic: two concurrent creations
// with the same name can race, in which case the unique index rejects the
// loser with domain.ErrSlugTaken.
func (s *TaskListService) CreateTaskList(ctx context.Context, userID uint64, input domain.CreateTaskListInput) (domain.TaskList, error) {
	if input.Color == "" {
		input.Color = domain.DefaultTaskListColor
	}
	input.MemberIDs = withoutID(input.MemberIDs, userID)
	for _, memberID := range input.MemberIDs {
		if _, err := s.userRepository.GetUser(ctx, memberID); err != nil {
			return domain.TaskList{}, err
		}
	}

	slug, err := s.nextFreeSlug(ctx, domain.SlugFromName(input.Name))
	if err != nil {
		return domain.TaskList{}, err
	}

	return s.taskListRepository.CreateTaskList(ctx, userID, slug, input)
}

func (s *TaskListService) UpdateTaskList(ctx context.Context, userID, taskListID uint64, input domain.UpdateTaskListInput) (domain.TaskList, error) {
	if _, err := s.ownedTaskList(ctx, userID, taskListID); err != nil {
		return domain.TaskList{}, err
	}
	return s.taskListRepository.UpdateTaskList(ctx, taskListID, input)
}

func (s *TaskListService) DeleteTaskList(ctx context.Context, userID, taskListID uint64) error {
	if _, err := s.ownedTaskList(ctx, userID, taskListID); err != nil {
		return err
	}
	return s.taskListRepository.DeleteTaskList(ctx, taskListID)
}

func (s *TaskListService) AddMember(ctx context.Context, userID, taskListID, memberID uint64) (domain.TaskList, error) {
	list, err := s.ownedTaskList(ctx, userID, taskListID)
	if err != nil {
		return domain.TaskList{}, err
	}
	if list.HasAccess(memberID) {
		return domain.TaskList{}, domain.ErrMemberAlreadyAdded
	}
	if _, err := s.userRepository.GetUser(ctx, memberID); err != nil {
		return domain.TaskList{}, err
	}
	if err := s.taskListRepository.AddMember(ctx, taskListID, memberID); err != nil {
		return domain.TaskList{}, err
	}
	return s.taskListRepository.GetTaskList(ctx, taskListID)
}

// RemoveMember is idempotent for users that are not members.
func (s *TaskListService) RemoveMember(ctx context.Context, userID, taskListID, memberID uint64) (domain.TaskList, error) {
	list, err := s.ownedTaskList(ctx, userID, taskListID)
	if err != nil {
		return domain.TaskList{}, err
	}
	if list.OwnerID == memberID {
		return domain.TaskList{}, domain.ErrCannotRemoveOwner
	}
	if err := s.taskListRepository.RemoveMember(ctx, taskListID, memberID); err != nil {
		return domain.TaskList{}, err
	}
	return s.taskListRepository.GetTaskList(ctx, taskListID)
}

// IsMember reports whether the user is the owner or a member of the list.
// A missing list is not an error.
func (s *TaskListService) IsMember(ctx context.Context, userID, taskListID uint64) (bool, error) {
	list, err := s.taskListRepository.GetTaskList(ctx, taskListID)
	if err != nil {
		if errors.Is(err, domain.ErrTaskListNotFound) {
			return false, nil
		}
		return false, err
	}
	return list.HasAccess(userID), nil
}

func (s *TaskListService) nextFreeSlug(ctx context.Context, base string) (string, error) {
	for n := 0; n < maxSlugAttempts; n++ {
		candidate := domain.SlugCandidate(base, n)
		exists, err := s.taskListRepository.SlugExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("no free slug for %q after %d attempts: %w", base, maxSlugAttempts, domain.ErrSlugTaken)
}

// visibleTaskList hides lists the user cannot access behind not-found.
func (s *TaskListService) visibleTaskList(ctx context.Context, userID, taskListID uint64) (domain.TaskList, error) {
	list, err := s.taskListRepository.GetTaskList(ctx, taskListID)
	if err != nil {
		return domain.TaskList{}, err
	}
	if !list.HasAccess(userID) {
		return domain.TaskList{}, domain.ErrTaskListNotFound
	}
	return list, nil
}

func (s *TaskListService) ownedTaskList(ctx context.Context, userID, taskListID uint64) (domain.TaskList, error) {
	list, err := s.visibleTaskList(ctx, userID, taskListID)
	if err != nil {
		return domain.TaskList{}, err
	}
	if list.OwnerID != userID {
		return domain.TaskList{}, domain.ErrForbidden
	}
	return list, nil
}

func withoutID(ids []uint64, excluded uint64) []uint64 {
	seen := make(map[uint64]struct{}, len(ids))
	out := make([]uint64, 0, len(ids))
	for _, id := range ids {
		if id == excluded {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

var _ ports.TaskListService = (*TaskListService)(nil)

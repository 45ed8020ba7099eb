package service_test

import (
	"context"
	"errors"
	"testing"

	"creatingtasks/internal/app/service"
	"creatingtasks/internal/core/domain"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTaskListService_CreateTaskList_AssignsNextFreeSlug(t *testing.T) {
	listRepo := new(taskListRepositoryMock)
	userRepo := new(userRepositoryMock)

	listRepo.On("SlugExists", mock.Anything, "sprint").Return(true, nil).Once()
	listRepo.On("SlugExists", mock.Anything, "sprint-1").Return(false, nil).Once()
	listRepo.On("CreateTaskList", mock.Anything, uint64(1), "sprint-1", domain.CreateTaskListInput{
		Name:      "Sprint",
		Color:     domain.DefaultTaskListColor,
		MemberIDs: []uint64{},
	}).Return(domain.TaskList{ID: 2, Name: "Sprint", Slug: "sprint-1", OwnerID: 1}, nil).Once()

	svc := service.NewTaskListService(listRepo, userRepo)
	list, err := svc.CreateTaskList(context.Background(), 1, domain.CreateTaskListInput{Name: "Sprint"})

	require.NoError(t, err)
	require.Equal(t, "sprint-1", list.Slug)
	listRepo.AssertExpectations(t)
}

func TestTaskListService_CreateTaskList_DropsOwnerAndDuplicateMembers(t *testing.T) {
	listRepo := new(taskListRepositoryMock)
	userRepo := new(userRepositoryMock)

	userRepo.On("GetUser", mock.Anything, uint64(2)).Return(domain.User{ID: 2}, nil).Once()
	listRepo.On("SlugExists", mock.Anything, "team").Return(false, nil).Once()
	listRepo.On("CreateTaskList", mock.Anything, uint64(1), "team", mock.MatchedBy(func(input domain.CreateTaskListInput) bool {
		return len(input.MemberIDs) == 1 && input.MemberIDs[0] == 2 && input.Color == "#000000"
	})).Return(domain.TaskList{ID: 3, Slug: "team", OwnerID: 1, MemberIDs: []uint64{2}}, nil).Once()

	svc := service.NewTaskListService(listRepo, userRepo)
	_, err := svc.CreateTaskList(context.Background(), 1, domain.CreateTaskListInput{
		Name:      "Team",
		Color:     "#000000",
		MemberIDs: []uint64{1, 2, 2},
	})

	require.NoError(t, err)
	listRepo.AssertExpectations(t)
	userRepo.AssertExpectations(t)
}

func TestTaskListService_CreateTaskList_UnknownMember(t *testing.T) {
	listRepo := new(taskListRepositoryMock)
	userRepo := new(userRepositoryMock)
	userRepo.On("GetUser", mock.Anything, uint64(9)).Return(domain.User{}, domain.ErrUserNotFound).Once()

	svc := service.NewTaskListService(listRepo, userRepo)
	_, err := svc.CreateTaskList(context.Background(), 1, domain.CreateTaskListInput{Name: "Team", MemberIDs: []uint64{9}})

	require.ErrorIs(t, err, domain.ErrUserNotFound)
	listRepo.AssertNotCalled(t, "CreateTaskList", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestTaskListService_GetTaskList_HiddenFromOutsiders(t *testing.T) {
	listRepo := new(taskListRepositoryMock)
	listRepo.On("GetTaskList", mock.Anything, uint64(5)).Return(domain.TaskList{ID: 5, OwnerID: 1, MemberIDs: []uint64{2}}, nil)

	svc := service.NewTaskListService(listRepo, new(userRepositoryMock))

	_, err := svc.GetTaskList(context.Background(), 3, 5)
	require.ErrorIs(t, err, domain.ErrTaskListNotFound)

	list, err := svc.GetTaskList(context.Background(), 2, 5)
	require.NoError(t, err)
	require.Equal(t, uint64(5), list.ID)
}

func TestTaskListService_UpdateTaskList_OwnerOnly(t *testing.T) {
	listRepo := new(taskListRepositoryMock)
	listRepo.On("GetTaskList", mock.Anything, uint64(5)).Return(domain.TaskList{ID: 5, OwnerID: 1, MemberIDs: []uint64{2}}, nil)

	svc := service.NewTaskListService(listRepo, new(userRepositoryMock))
	name := "Renamed"
	_, err := svc.UpdateTaskList(context.Background(), 2, 5, domain.UpdateTaskListInput{Name: &name})

	require.ErrorIs(t, err, domain.ErrForbidden)
	listRepo.AssertNotCalled(t, "UpdateTaskList", mock.Anything, mock.Anything, mock.Anything)
}

func TestTaskListService_AddMember(t *testing.T) {
	tests := []struct {
		name     string
		memberID uint64
		wantErr  error
	}{
		{name: "new member", memberID: 3},
		{name: "already a member", memberID: 2, wantErr: domain.ErrMemberAlreadyAdded},
		{name: "owner", memberID: 1, wantErr: domain.ErrMemberAlreadyAdded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			listRepo := new(taskListRepositoryMock)
			userRepo := new(userRepositoryMock)
			listRepo.On("GetTaskList", mock.Anything, uint64(5)).Return(domain.TaskList{ID: 5, OwnerID: 1, MemberIDs: []uint64{2}}, nil)
			userRepo.On("GetUser", mock.Anything, tt.memberID).Return(domain.User{ID: tt.memberID}, nil)
			listRepo.On("AddMember", mock.Anything, uint64(5), tt.memberID).Return(nil)

			svc := service.NewTaskListService(listRepo, userRepo)
			_, err := svc.AddMember(context.Background(), 1, 5, tt.memberID)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				listRepo.AssertNotCalled(t, "AddMember", mock.Anything, mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			listRepo.AssertCalled(t, "AddMember", mock.Anything, uint64(5), tt.memberID)
		})
	}
}

func TestTaskListService_RemoveMember_RefusesOwner(t *testing.T) {
	listRepo := new(taskListRepositoryMock)
	listRepo.On("GetTaskList", mock.Anything, uint64(5)).Return(domain.TaskList{ID: 5, OwnerID: 1}, nil)

	svc := service.NewTaskListService(listRepo, new(userRepositoryMock))
	_, err := svc.RemoveMember(context.Background(), 1, 5, 1)

	require.ErrorIs(t, err, domain.ErrCannotRemoveOwner)
}

func TestTaskListService_IsMember(t *testing.T) {
	listRepo := new(taskListRepositoryMock)
	listRepo.On("GetTaskList", mock.Anything, uint64(5)).Return(domain.TaskList{ID: 5, OwnerID: 1, MemberIDs: []uint64{2}}, nil)
	listRepo.On("GetTaskList", mock.Anything, uint64(6)).Return(domain.TaskList{}, domain.ErrTaskListNotFound)
	listRepo.On("GetTaskList", mock.Anything, uint64(7)).Return(domain.TaskList{}, errors.New("connection reset"))

	svc := service.NewTaskListService(listRepo, new(userRepositoryMock))
	ctx := context.Background()

	ok, err := svc.IsMember(ctx, 1, 5)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = svc.IsMember(ctx, 2, 5)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = svc.IsMember(ctx, 3, 5)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = svc.IsMember(ctx, 1, 6)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = svc.IsMember(ctx, 1, 7)
	require.Error(t, err)
}

func TestTaskListService_CreateTaskList_GivesUpAfterThousandCandidates(t *testing.T) {
	listRepo := new(taskListRepositoryMock)
	listRepo.On("SlugExists", mock.Anything, mock.Anything).Return(true, nil)

	svc := service.NewTaskListService(listRepo, new(userRepositoryMock))
	_, err := svc.CreateTaskList(context.Background(), 1, domain.CreateTaskListInput{Name: "Sprint"})

	require.ErrorIs(t, err, domain.ErrSlugTaken)
	listRepo.AssertNumberOfCalls(t, "SlugExists", 1000)
	listRepo.AssertCalled(t, "SlugExists", mock.Anything, "sprint-999")
	listRepo.AssertNotCalled(t, "CreateTaskList", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

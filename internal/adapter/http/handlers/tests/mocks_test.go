package tests

import (
	"context"

	"creatingtasks/internal/core/domain"
	"creatingtasks/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type taskServiceMock struct {
	mock.Mock
}

var _ ports.TaskService = (*taskServiceMock)(nil)

func (m *taskServiceMock) ListTasks(ctx context.Context, userID uint64, filter domain.TaskFilter) ([]domain.Task, error) {
	args := m.Called(ctx, userID, filter)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskServiceMock) ListMyTasks(ctx context.Context, userID uint64) ([]domain.Task, error) {
	args := m.Called(ctx, userID)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskServiceMock) GetTask(ctx context.Context, userID, taskID uint64) (domain.Task, error) {
	args := m.Called(ctx, userID, taskID)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) CreateTask(ctx context.Context, userID uint64, input domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, userID, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) UpdateTask(ctx context.Context, userID, taskID uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, userID, taskID, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) CompleteTask(ctx context.Context, userID, taskID uint64) (domain.Task, error) {
	args := m.Called(ctx, userID, taskID)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) DeleteTask(ctx context.Context, userID, taskID uint64) error {
	args := m.Called(ctx, userID, taskID)
	return args.Error(0)
}

type taskListServiceMock struct {
	mock.Mock
}

var _ ports.TaskListService = (*taskListServiceMock)(nil)

func (m *taskListServiceMock) ListTaskLists(ctx context.Context, userID uint64, archived *bool) ([]domain.TaskList, error) {
	args := m.Called(ctx, userID, archived)

	var lists []domain.TaskList
	if value := args.Get(0); value != nil {
		lists = value.([]domain.TaskList)
	}
	return lists, args.Error(1)
}

func (m *taskListServiceMock) GetTaskList(ctx context.Context, userID, taskListID uint64) (domain.TaskList, error) {
	args := m.Called(ctx, userID, taskListID)
	return args.Get(0).(domain.TaskList), args.Error(1)
}

func (m *taskListServiceMock) CreateTaskList(ctx context.Context, userID uint64, input domain.CreateTaskListInput) (domain.TaskList, error) {
	args := m.Called(ctx, userID, input)
	return args.Get(0).(domain.TaskList), args.Error(1)
}

func (m *taskListServiceMock) UpdateTaskList(ctx context.Context, userID, taskListID uint64, input domain.UpdateTaskListInput) (domain.TaskList, error) {
	args := m.Called(ctx, userID, taskListID, input)
	return args.Get(0).(domain.TaskList), args.Error(1)
}

func (m *taskListServiceMock) DeleteTaskList(ctx context.Context, userID, taskListID uint64) error {
	args := m.Called(ctx, userID, taskListID)
	return args.Error(0)
}

func (m *taskListServiceMock) AddMember(ctx context.Context, userID, taskListID, memberID uint64) (domain.TaskList, error) {
	args := m.Called(ctx, userID, taskListID, memberID)
	return args.Get(0).(domain.TaskList), args.Error(1)
}

func (m *taskListServiceMock) RemoveMember(ctx context.Context, userID, taskListID, memberID uint64) (domain.TaskList, error) {
	args := m.Called(ctx, userID, taskListID, memberID)
	return args.Get(0).(domain.TaskList), args.Error(1)
}

func (m *taskListServiceMock) IsMember(ctx context.Context, userID, taskListID uint64) (bool, error) {
	args := m.Called(ctx, userID, taskListID)
	return args.Bool(0), args.Error(1)
}

type userServiceMock struct {
	mock.Mock
}

var _ ports.UserService = (*userServiceMock)(nil)

func (m *userServiceMock) Register(ctx context.Context, input domain.RegisterInput) (domain.User, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userServiceMock) Login(ctx context.Context, username, password string) (domain.Session, error) {
	args := m.Called(ctx, username, password)
	return args.Get(0).(domain.Session), args.Error(1)
}

func (m *userServiceMock) TelegramLogin(ctx context.Context, input domain.TelegramLoginInput) (domain.Session, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Session), args.Error(1)
}

func (m *userServiceMock) Logout(ctx context.Context, userID uint64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *userServiceMock) Authenticate(ctx context.Context, token string) (domain.User, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userServiceMock) GetUser(ctx context.Context, userID uint64) (domain.User, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userServiceMock) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)

	var users []domain.User
	if value := args.Get(0); value != nil {
		users = value.([]domain.User)
	}
	return users, args.Error(1)
}

func (m *userServiceMock) UpdateProfile(ctx context.Context, userID uint64, input domain.UpdateProfileInput) (domain.User, error) {
	args := m.Called(ctx, userID, input)
	return args.Get(0).(domain.User), args.Error(1)
}

type commentServiceMock struct {
	mock.Mock
}

var _ ports.CommentService = (*commentServiceMock)(nil)

func (m *commentServiceMock) ListComments(ctx context.Context, userID uint64, taskID *uint64) ([]domain.Comment, error) {
	args := m.Called(ctx, userID, taskID)

	var comments []domain.Comment
	if value := args.Get(0); value != nil {
		comments = value.([]domain.Comment)
	}
	return comments, args.Error(1)
}

func (m *commentServiceMock) GetComment(ctx context.Context, userID, commentID uint64) (domain.Comment, error) {
	args := m.Called(ctx, userID, commentID)
	return args.Get(0).(domain.Comment), args.Error(1)
}

func (m *commentServiceMock) CreateComment(ctx context.Context, userID uint64, input domain.CreateCommentInput) (domain.Comment, error) {
	args := m.Called(ctx, userID, input)
	return args.Get(0).(domain.Comment), args.Error(1)
}

func (m *commentServiceMock) UpdateComment(ctx context.Context, userID, commentID uint64, content string) (domain.Comment, error) {
	args := m.Called(ctx, userID, commentID, content)
	return args.Get(0).(domain.Comment), args.Error(1)
}

func (m *commentServiceMock) DeleteComment(ctx context.Context, userID, commentID uint64) error {
	args := m.Called(ctx, userID, commentID)
	return args.Error(0)
}

type notificationServiceMock struct {
	mock.Mock
}

var _ ports.NotificationService = (*notificationServiceMock)(nil)

func (m *notificationServiceMock) Notify(ctx context.Context, input domain.CreateNotificationInput) (domain.Notification, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Notification), args.Error(1)
}

func (m *notificationServiceMock) ListNotifications(ctx context.Context, userID uint64, unreadOnly bool) ([]domain.Notification, error) {
	args := m.Called(ctx, userID, unreadOnly)

	var notifications []domain.Notification
	if value := args.Get(0); value != nil {
		notifications = value.([]domain.Notification)
	}
	return notifications, args.Error(1)
}

func (m *notificationServiceMock) MarkRead(ctx context.Context, userID, notificationID uint64) (domain.Notification, error) {
	args := m.Called(ctx, userID, notificationID)
	return args.Get(0).(domain.Notification), args.Error(1)
}

func (m *notificationServiceMock) MarkAllRead(ctx context.Context, userID uint64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *notificationServiceMock) UnreadCount(ctx context.Context, userID uint64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

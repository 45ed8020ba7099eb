package service_test

import (
	"context"
	"time"

	"creatingtasks/internal/core/domain"
	"creatingtasks/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type taskRepositoryMock struct {
	mock.Mock
}

func (m *taskRepositoryMock) ListTasks(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error) {
	args := m.Called(ctx, filter)
	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskRepositoryMock) GetTask(ctx context.Context, taskID uint64) (domain.Task, error) {
	args := m.Called(ctx, taskID)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) CreateTask(ctx context.Context, createdByID uint64, input domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, createdByID, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) UpdateTask(ctx context.Context, taskID uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, taskID, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) CompleteTask(ctx context.Context, task domain.Task) (domain.Task, error) {
	args := m.Called(ctx, task)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) DeleteTask(ctx context.Context, taskID uint64) error {
	return m.Called(ctx, taskID).Error(0)
}

func (m *taskRepositoryMock) ListDueForReminder(ctx context.Context, dueBefore time.Time) ([]domain.Task, error) {
	args := m.Called(ctx, dueBefore)
	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskRepositoryMock) MarkDueReminded(ctx context.Context, taskID uint64, remindedAt time.Time) error {
	return m.Called(ctx, taskID, remindedAt).Error(0)
}

type taskListRepositoryMock struct {
	mock.Mock
}

func (m *taskListRepositoryMock) ListTaskLists(ctx context.Context, filter domain.TaskListFilter) ([]domain.TaskList, error) {
	args := m.Called(ctx, filter)
	var lists []domain.TaskList
	if value := args.Get(0); value != nil {
		lists = value.([]domain.TaskList)
	}
	return lists, args.Error(1)
}

func (m *taskListRepositoryMock) GetTaskList(ctx context.Context, taskListID uint64) (domain.TaskList, error) {
	args := m.Called(ctx, taskListID)
	return args.Get(0).(domain.TaskList), args.Error(1)
}

func (m *taskListRepositoryMock) SlugExists(ctx context.Context, slug string) (bool, error) {
	args := m.Called(ctx, slug)
	return args.Bool(0), args.Error(1)
}

func (m *taskListRepositoryMock) CreateTaskList(ctx context.Context, ownerID uint64, slug string, input domain.CreateTaskListInput) (domain.TaskList, error) {
	args := m.Called(ctx, ownerID, slug, input)
	return args.Get(0).(domain.TaskList), args.Error(1)
}

func (m *taskListRepositoryMock) UpdateTaskList(ctx context.Context, taskListID uint64, input domain.UpdateTaskListInput) (domain.TaskList, error) {
	args := m.Called(ctx, taskListID, input)
	return args.Get(0).(domain.TaskList), args.Error(1)
}

func (m *taskListRepositoryMock) DeleteTaskList(ctx context.Context, taskListID uint64) error {
	return m.Called(ctx, taskListID).Error(0)
}

func (m *taskListRepositoryMock) AddMember(ctx context.Context, taskListID, userID uint64) error {
	return m.Called(ctx, taskListID, userID).Error(0)
}

func (m *taskListRepositoryMock) RemoveMember(ctx context.Context, taskListID, userID uint64) error {
	return m.Called(ctx, taskListID, userID).Error(0)
}

type userRepositoryMock struct {
	mock.Mock
}

func (m *userRepositoryMock) CreateUser(ctx context.Context, input domain.CreateUserInput) (domain.User, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepositoryMock) GetUser(ctx context.Context, userID uint64) (domain.User, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepositoryMock) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepositoryMock) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepositoryMock) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	var users []domain.User
	if value := args.Get(0); value != nil {
		users = value.([]domain.User)
	}
	return users, args.Error(1)
}

func (m *userRepositoryMock) LinkTelegram(ctx context.Context, userID uint64, telegramID int64, telegramUsername *string) error {
	return m.Called(ctx, userID, telegramID, telegramUsername).Error(0)
}

func (m *userRepositoryMock) UpdateProfile(ctx context.Context, userID uint64, input domain.UpdateProfileInput) error {
	return m.Called(ctx, userID, input).Error(0)
}

type tokenRepositoryMock struct {
	mock.Mock
}

func (m *tokenRepositoryMock) GetOrCreateToken(ctx context.Context, userID uint64, key string) (string, error) {
	args := m.Called(ctx, userID, key)
	return args.String(0), args.Error(1)
}

func (m *tokenRepositoryMock) GetUserIDByToken(ctx context.Context, key string) (uint64, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *tokenRepositoryMock) DeleteToken(ctx context.Context, userID uint64) error {
	return m.Called(ctx, userID).Error(0)
}

type commentRepositoryMock struct {
	mock.Mock
}

func (m *commentRepositoryMock) ListComments(ctx context.Context, taskID uint64) ([]domain.Comment, error) {
	args := m.Called(ctx, taskID)
	var comments []domain.Comment
	if value := args.Get(0); value != nil {
		comments = value.([]domain.Comment)
	}
	return comments, args.Error(1)
}

func (m *commentRepositoryMock) ListVisibleComments(ctx context.Context, userID uint64) ([]domain.Comment, error) {
	args := m.Called(ctx, userID)
	var comments []domain.Comment
	if value := args.Get(0); value != nil {
		comments = value.([]domain.Comment)
	}
	return comments, args.Error(1)
}

func (m *commentRepositoryMock) GetComment(ctx context.Context, commentID uint64) (domain.Comment, error) {
	args := m.Called(ctx, commentID)
	return args.Get(0).(domain.Comment), args.Error(1)
}

func (m *commentRepositoryMock) CreateComment(ctx context.Context, authorID uint64, input domain.CreateCommentInput) (domain.Comment, error) {
	args := m.Called(ctx, authorID, input)
	return args.Get(0).(domain.Comment), args.Error(1)
}

func (m *commentRepositoryMock) UpdateComment(ctx context.Context, commentID uint64, content string) (domain.Comment, error) {
	args := m.Called(ctx, commentID, content)
	return args.Get(0).(domain.Comment), args.Error(1)
}

func (m *commentRepositoryMock) DeleteComment(ctx context.Context, commentID uint64) error {
	return m.Called(ctx, commentID).Error(0)
}

type notificationRepositoryMock struct {
	mock.Mock
}

func (m *notificationRepositoryMock) CreateNotification(ctx context.Context, input domain.CreateNotificationInput) (domain.Notification, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Notification), args.Error(1)
}

func (m *notificationRepositoryMock) ListNotifications(ctx context.Context, filter domain.NotificationFilter) ([]domain.Notification, error) {
	args := m.Called(ctx, filter)
	var notifications []domain.Notification
	if value := args.Get(0); value != nil {
		notifications = value.([]domain.Notification)
	}
	return notifications, args.Error(1)
}

func (m *notificationRepositoryMock) GetNotification(ctx context.Context, notificationID uint64) (domain.Notification, error) {
	args := m.Called(ctx, notificationID)
	return args.Get(0).(domain.Notification), args.Error(1)
}

func (m *notificationRepositoryMock) MarkRead(ctx context.Context, notificationID uint64) error {
	return m.Called(ctx, notificationID).Error(0)
}

func (m *notificationRepositoryMock) MarkAllRead(ctx context.Context, userID uint64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *notificationRepositoryMock) CountUnread(ctx context.Context, userID uint64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

type notifierMock struct {
	mock.Mock
}

func (m *notifierMock) Notify(ctx context.Context, input domain.CreateNotificationInput) (domain.Notification, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Notification), args.Error(1)
}

type broadcasterMock struct {
	mock.Mock
}

func (m *broadcasterMock) BroadcastTaskCreated(ctx context.Context, task domain.Task) {
	m.Called(ctx, task)
}

func (m *broadcasterMock) BroadcastTaskUpdated(ctx context.Context, task domain.Task) {
	m.Called(ctx, task)
}

func (m *broadcasterMock) BroadcastTaskDeleted(ctx context.Context, taskListID, taskID uint64) {
	m.Called(ctx, taskListID, taskID)
}

func (m *broadcasterMock) SendNotification(ctx context.Context, notification domain.Notification) {
	m.Called(ctx, notification)
}

type passwordHasherStub struct{}

func (passwordHasherStub) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (passwordHasherStub) Verify(password, hash string) bool { return hash == "hashed:"+password }

type tokenGeneratorStub struct {
	token string
}

func (g tokenGeneratorStub) NewToken() string { return g.token }

var (
	_ ports.TaskRepository         = (*taskRepositoryMock)(nil)
	_ ports.TaskListRepository     = (*taskListRepositoryMock)(nil)
	_ ports.UserRepository         = (*userRepositoryMock)(nil)
	_ ports.TokenRepository        = (*tokenRepositoryMock)(nil)
	_ ports.CommentRepository      = (*commentRepositoryMock)(nil)
	_ ports.NotificationRepository = (*notificationRepositoryMock)(nil)
	_ ports.Notifier               = (*notifierMock)(nil)
	_ ports.Broadcaster            = (*broadcasterMock)(nil)
	_ ports.PasswordHasher         = passwordHasherStub{}
	_ ports.TokenGenerator         = tokenGeneratorStub{}
)

func uint64Ptr(v uint64) *uint64 { return &v }

func timePtr(v time.Time) *time.Time { return &v }

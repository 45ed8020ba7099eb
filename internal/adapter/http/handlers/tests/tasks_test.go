package tests

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"creatingtasks/internal/adapter/http/dto"
	"creatingtasks/internal/core/domain"
	"creatingtasks/pkg/translator"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func sampleTask() domain.Task {
	due := fixedNow.Add(-2 * time.Hour)
	return domain.Task{
		ID:           7,
		TaskListID:   1,
		TaskListName: "Sprint",
		TaskListSlug: "sprint",
		CreatedByID:  alice.ID,
		CreatedBy:    &domain.UserRef{ID: alice.ID, Username: alice.Username},
		AssignedToID: uint64Ptr(bob.ID),
		AssignedTo:   &domain.UserRef{ID: bob.ID, Username: bob.Username},
		Title:        "Write report",
		Status:       domain.TaskStatusPending,
		Priority:     domain.TaskPriorityHigh,
		DueDate:      &due,
		CreatedAt:    fixedNow.Add(-24 * time.Hour),
		UpdatedAt:    fixedNow.Add(-24 * time.Hour),
	}
}

func TestTaskHandler_ListTasks_Success(t *testing.T) {
	env := newTestEnv(t)
	status := domain.TaskStatusPending
	archived := false
	env.tasks.On("ListTasks", mock.Anything, alice.ID, domain.TaskFilter{
		UserID:       alice.ID,
		TaskListID:   uint64Ptr(1),
		Status:       &status,
		AssignedToID: uint64Ptr(alice.ID),
		Archived:     &archived,
	}).Return([]domain.Task{sampleTask()}, nil).Once()

	rec := env.do(http.MethodGet, "/api/tasks?task_list=1&status=pending&assigned_to_me=true&archived=false", "", withToken(aliceToken))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	got := decodeBody[[]dto.TaskItem](t, rec)
	require.Len(t, got, 1)
	require.Equal(t, uint64(7), got[0].ID)
	require.Equal(t, "sprint", got[0].TaskListSlug)
	require.Equal(t, "high", got[0].Priority)
	require.Equal(t, "bob", got[0].AssignedTo.Username)
	require.True(t, got[0].IsOverdue)
	require.Nil(t, got[0].TimeUntilDueSeconds)
	require.Equal(t, "2026-03-02T10:00:00Z", *got[0].DueDate)
}

func TestTaskHandler_ListTasks_InvalidFilter(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/api/tasks?status=done", "", withToken(aliceToken))

	got := requireAPIError(t, rec, http.StatusBadRequest, "Some fields are invalid.")
	require.Equal(t, "This value is not one of the allowed choices.", got.ErrDetails.Fields["status"])
}

func TestTaskHandler_ListTasks_Error(t *testing.T) {
	env := newTestEnv(t)
	env.tasks.On("ListTasks", mock.Anything, alice.ID, mock.Anything).Return(nil, errors.New("db is down")).Once()

	rec := env.do(http.MethodGet, "/api/tasks", "", withToken(aliceToken))

	requireAPIError(t, rec, http.StatusInternalServerError, "Failed to list tasks.")
}

func TestTaskHandler_RequiresAuthentication(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/api/tasks", "")
	requireAPIError(t, rec, http.StatusUnauthorized, "Authentication credentials were not provided or are invalid.")

	rec = env.do(http.MethodGet, "/api/tasks", "", withToken("stolen"), withLanguage("ru-RU"))
	requireAPIError(t, rec, http.StatusUnauthorized, "Учетные данные не были предоставлены или недействительны.")
}

func TestTaskHandler_ListMyTasks(t *testing.T) {
	env := newTestEnv(t)
	task := sampleTask()
	env.tasks.On("ListMyTasks", mock.Anything, bob.ID).Return([]domain.Task{task}, nil).Once()

	rec := env.do(http.MethodGet, "/api/tasks/my", "", withToken(bobToken))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, decodeBody[[]dto.TaskItem](t, rec), 1)
}

func TestTaskHandler_GetTask(t *testing.T) {
	env := newTestEnv(t)
	env.tasks.On("GetTask", mock.Anything, alice.ID, uint64(7)).Return(sampleTask(), nil).Once()
	env.tasks.On("GetTask", mock.Anything, alice.ID, uint64(8)).Return(domain.Task{}, domain.ErrTaskNotFound).Once()

	rec := env.do(http.MethodGet, "/api/tasks/7", "", withToken(aliceToken))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Write report", decodeBody[dto.TaskItem](t, rec).Title)

	rec = env.do(http.MethodGet, "/api/tasks/8", "", withToken(aliceToken))
	requireAPIError(t, rec, http.StatusNotFound, "Task not found.")

	rec = env.do(http.MethodGet, "/api/tasks/abc", "", withToken(aliceToken))
	requireAPIError(t, rec, http.StatusBadRequest, "The identifier in the path is invalid.")
}

func TestTaskHandler_CreateTask_Success(t *testing.T) {
	env := newTestEnv(t)
	due := time.Date(2026, 3, 3, 12, 0, 0, 0, time.UTC)
	created := sampleTask()
	created.DueDate = &due

	env.tasks.On("CreateTask", mock.Anything, alice.ID, domain.CreateTaskInput{
		TaskListID:   1,
		Title:        "Write report",
		Status:       domain.TaskStatusPending,
		Priority:     domain.TaskPriorityHigh,
		AssignedToID: uint64Ptr(bob.ID),
		DueDate:      &due,
	}).Return(created, nil).Once()

	rec := env.do(http.MethodPost, "/api/tasks",
		`{"task_list":1,"title":" Write report ","priority":"high","assigned_to_id":20,"due_date":"2026-03-03T12:00:00Z"}`,
		withToken(aliceToken),
	)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	got := decodeBody[dto.TaskItem](t, rec)
	require.False(t, got.IsOverdue)
	require.NotNil(t, got.TimeUntilDueSeconds)
	require.Equal(t, int64(24*3600), *got.TimeUntilDueSeconds)
}

func TestTaskHandler_CreateTask_ValidationErrors(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/api/tasks", `{"title":""}`, withToken(aliceToken), withLanguage(translator.LanguageEn))
	got := requireAPIError(t, rec, http.StatusBadRequest, "Some fields are invalid.")
	require.Equal(t, map[string]string{
		"task_list": "This field is required.",
		"title":     "This field is required.",
	}, got.ErrDetails.Fields)

	rec = env.do(http.MethodPost, "/api/tasks", `{"task_list":`, withToken(aliceToken))
	requireAPIError(t, rec, http.StatusBadRequest, "The request body is malformed.")

	rec = env.do(http.MethodPost, "/api/tasks", `[1,2]`, withToken(aliceToken))
	requireAPIError(t, rec, http.StatusBadRequest, "The request body is malformed.")
}

func TestTaskHandler_CreateTask_AssigneeNotMember(t *testing.T) {
	env := newTestEnv(t)
	env.tasks.On("CreateTask", mock.Anything, alice.ID, mock.Anything).Return(domain.Task{}, domain.ErrAssigneeNotMember).Once()

	rec := env.do(http.MethodPost, "/api/tasks", `{"task_list":1,"title":"x","assigned_to_id":99}`, withToken(aliceToken))

	got := requireAPIError(t, rec, http.StatusBadRequest, "The assignee must be a member of the task list.")
	require.Contains(t, got.ErrDetails.Fields, "assigned_to_id")
}

func TestTaskHandler_CreateTask_ListOutsideScope(t *testing.T) {
	env := newTestEnv(t)
	env.tasks.On("CreateTask", mock.Anything, bob.ID, mock.Anything).Return(domain.Task{}, domain.ErrTaskListNotFound).Once()

	rec := env.do(http.MethodPost, "/api/tasks", `{"task_list":5,"title":"x"}`, withToken(bobToken))

	requireAPIError(t, rec, http.StatusNotFound, "Task list not found.")
}

func TestTaskHandler_UpdateTask_PatchSemantics(t *testing.T) {
	env := newTestEnv(t)
	updated := sampleTask()
	updated.AssignedToID = nil
	updated.AssignedTo = nil
	updated.Status = domain.TaskStatusInProgress

	status := domain.TaskStatusInProgress
	env.tasks.On("UpdateTask", mock.Anything, alice.ID, uint64(7), domain.UpdateTaskInput{
		Status:          &status,
		AssignedToIDSet: true,
	}).Return(updated, nil).Once()

	rec := env.do(http.MethodPatch, "/api/tasks/7", `{"status":"in_progress","assigned_to_id":null}`, withToken(aliceToken))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	got := decodeBody[dto.TaskItem](t, rec)
	require.Equal(t, "in_progress", got.Status)
	require.Nil(t, got.AssignedTo)
}

func TestTaskHandler_UpdateTask_EmptyPatch(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPatch, "/api/tasks/7", `{}`, withToken(aliceToken))

	requireAPIError(t, rec, http.StatusBadRequest, "The request body is malformed.")
}

func TestTaskHandler_CompleteTask(t *testing.T) {
	env := newTestEnv(t)
	completed := sampleTask()
	completed.MarkAsCompleted(fixedNow)
	env.tasks.On("CompleteTask", mock.Anything, bob.ID, uint64(7)).Return(completed, nil).Once()

	rec := env.do(http.MethodPost, "/api/tasks/7/complete", "", withToken(bobToken))

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody[dto.TaskItem](t, rec)
	require.Equal(t, "completed", got.Status)
	require.False(t, got.IsOverdue)
	require.Equal(t, "2026-03-02T12:00:00Z", *got.CompletedAt)
}

func TestTaskHandler_DeleteTask(t *testing.T) {
	env := newTestEnv(t)
	env.tasks.On("DeleteTask", mock.Anything, alice.ID, uint64(7)).Return(nil).Once()
	env.tasks.On("DeleteTask", mock.Anything, alice.ID, uint64(9)).Return(domain.ErrTaskNotFound).Once()

	rec := env.do(http.MethodDelete, "/api/tasks/7", "", withToken(aliceToken))
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = env.do(http.MethodDelete, "/api/tasks/9", "", withToken(aliceToken))
	requireAPIError(t, rec, http.StatusNotFound, "Task not found.")
}

func TestTaskHandler_CreateTask_Russian(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/api/tasks", `{"task_list":1}`, withToken(aliceToken), withLanguage("ru"))

	got := requireAPIError(t, rec, http.StatusBadRequest, "Некоторые поля заполнены неверно.")
	require.Equal(t, "Обязательное поле.", got.ErrDetails.Fields["title"])
}

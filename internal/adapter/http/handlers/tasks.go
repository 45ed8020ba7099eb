package handlers

import (
	"net/http"
	"time"

	"creatingtasks/internal/adapter/http/dto"
	"creatingtasks/internal/adapter/http/mapper"
	"creatingtasks/internal/adapter/http/middleware"
	"creatingtasks/internal/adapter/http/validation"
	"creatingtasks/internal/core/domain"
	"creatingtasks/internal/core/ports"
	"creatingtasks/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type TaskHandler struct {
	taskService ports.TaskService
	now         func() time.Time
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService, now: time.Now}
}

// WithClock replaces the clock used for is_overdue and time_until_due_seconds.
func (h *TaskHandler) WithClock(now func() time.Time) *TaskHandler {
	h.now = now
	return h
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	filter, err := taskFilterFromQuery(c, userID)
	if err != nil {
		respondError(c, err, "invalid task filter", apierrors.MsgFailListTask)
		return
	}

	tasks, err := h.taskService.ListTasks(c.Request.Context(), userID, filter)
	if err != nil {
		respondError(c, err, "failed to list tasks", apierrors.MsgFailListTask, zap.Uint64("user_id", userID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItems(tasks, h.now()))
}

func (h *TaskHandler) ListMyTasks(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	tasks, err := h.taskService.ListMyTasks(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "failed to list assigned tasks", apierrors.MsgFailListTask, zap.Uint64("user_id", userID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItems(tasks, h.now()))
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(c.Request.Context(), middleware.CurrentUserID(c), taskID)
	if err != nil {
		respondError(c, err, "failed to get task", apierrors.MsgInternalError, zap.Uint64("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task, h.now()))
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req dto.CreateTaskRequest
	raw, ok := bindJSON(c, &req)
	if !ok {
		return
	}

	input, err := validation.BuildCreateTaskInput(req, raw)
	if err != nil {
		respondError(c, err, "invalid task payload", apierrors.MsgFailCreateTask)
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), middleware.CurrentUserID(c), input)
	if err != nil {
		respondError(c, err, "failed to create task", apierrors.MsgFailCreateTask, zap.Uint64("task_list_id", input.TaskListID))
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTaskItem(task, h.now()))
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateTaskRequest
	raw, ok := bindJSON(c, &req)
	if !ok {
		return
	}

	input, err := validation.BuildUpdateTaskInput(req, raw)
	if err != nil {
		respondError(c, err, "invalid task payload", apierrors.MsgInternalError)
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), middleware.CurrentUserID(c), taskID, input)
	if err != nil {
		respondError(c, err, "failed to update task", apierrors.MsgInternalError, zap.Uint64("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task, h.now()))
}

func (h *TaskHandler) CompleteTask(c *gin.Context) {
	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	task, err := h.taskService.CompleteTask(c.Request.Context(), middleware.CurrentUserID(c), taskID)
	if err != nil {
		respondError(c, err, "failed to complete task", apierrors.MsgInternalError, zap.Uint64("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task, h.now()))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), middleware.CurrentUserID(c), taskID); err != nil {
		respondError(c, err, "failed to delete task", apierrors.MsgInternalError, zap.Uint64("task_id", taskID))
		return
	}

	c.Status(http.StatusNoContent)
}

func taskFilterFromQuery(c *gin.Context, userID uint64) (domain.TaskFilter, error) {
	filter := domain.TaskFilter{UserID: userID}

	taskListID, err := parseUintQuery(c, "task_list")
	if err != nil {
		return filter, err
	}
	filter.TaskListID = taskListID

	if raw := c.Query("status"); raw != "" {
		status := domain.TaskStatus(raw)
		if !status.Valid() {
			return filter, validation.FieldErrors{"status": "oneof"}
		}
		filter.Status = &status
	}

	if raw := c.Query("priority"); raw != "" {
		priority := domain.TaskPriority(raw)
		if !priority.Valid() {
			return filter, validation.FieldErrors{"priority": "oneof"}
		}
		filter.Priority = &priority
	}

	assignedToMe, err := parseBoolQuery(c, "assigned_to_me")
	if err != nil {
		return filter, err
	}
	if assignedToMe != nil && *assignedToMe {
		filter.AssignedToID = &userID
	}

	archived, err := parseBoolQuery(c, "archived")
	if err != nil {
		return filter, err
	}
	filter.Archived = archived

	return filter, nil
}

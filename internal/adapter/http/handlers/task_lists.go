package handlers

import (
	"net/http"

	"creatingtasks/internal/adapter/http/dto"
	"creatingtasks/internal/adapter/http/mapper"
	"creatingtasks/internal/adapter/http/middleware"
	"creatingtasks/internal/adapter/http/validation"
	"creatingtasks/internal/core/ports"
	"creatingtasks/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type TaskListHandler struct {
	taskListService ports.TaskListService
}

func NewTaskListHandler(taskListService ports.TaskListService) *TaskListHandler {
	return &TaskListHandler{taskListService: taskListService}
}

func (h *TaskListHandler) ListTaskLists(c *gin.Context) {
	archived, err := parseBoolQuery(c, "archived")
	if err != nil {
		respondError(c, err, "invalid task list filter", apierrors.MsgInternalError)
		return
	}

	userID := middleware.CurrentUserID(c)
	lists, err := h.taskListService.ListTaskLists(c.Request.Context(), userID, archived)
	if err != nil {
		respondError(c, err, "failed to list task lists", apierrors.MsgInternalError, zap.Uint64("user_id", userID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskListItems(lists))
}

func (h *TaskListHandler) GetTaskList(c *gin.Context) {
	taskListID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	list, err := h.taskListService.GetTaskList(c.Request.Context(), middleware.CurrentUserID(c), taskListID)
	if err != nil {
		respondError(c, err, "failed to get task list", apierrors.MsgInternalError, zap.Uint64("task_list_id", taskListID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskListItem(list))
}

func (h *TaskListHandler) CreateTaskList(c *gin.Context) {
	var req dto.CreateTaskListRequest
	if _, ok := bindJSON(c, &req); !ok {
		return
	}

	input, err := validation.BuildCreateTaskListInput(req)
	if err != nil {
		respondError(c, err, "invalid task list payload", apierrors.MsgInternalError)
		return
	}

	list, err := h.taskListService.CreateTaskList(c.Request.Context(), middleware.CurrentUserID(c), input)
	if err != nil {
		respondError(c, err, "failed to create task list", apierrors.MsgInternalError)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTaskListItem(list))
}

func (h *TaskListHandler) UpdateTaskList(c *gin.Context) {
	taskListID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateTaskListRequest
	raw, ok := bindJSON(c, &req)
	if !ok {
		return
	}

	input, err := validation.BuildUpdateTaskListInput(req, raw)
	if err != nil {
		respondError(c, err, "invalid task list payload", apierrors.MsgInternalError)
		return
	}

	list, err := h.taskListService.UpdateTaskList(c.Request.Context(), middleware.CurrentUserID(c), taskListID, input)
	if err != nil {
		respondError(c, err, "failed to update task list", apierrors.MsgInternalError, zap.Uint64("task_list_id", taskListID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskListItem(list))
}

func (h *TaskListHandler) DeleteTaskList(c *gin.Context) {
	taskListID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.taskListService.DeleteTaskList(c.Request.Context(), middleware.CurrentUserID(c), taskListID); err != nil {
		respondError(c, err, "failed to delete task list", apierrors.MsgInternalError, zap.Uint64("task_list_id", taskListID))
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TaskListHandler) AddMember(c *gin.Context) {
	taskListID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.AddMemberRequest
	if _, ok := bindJSON(c, &req); !ok {
		return
	}
	if err := validation.ValidateAddMember(req); err != nil {
		respondError(c, err, "invalid member payload", apierrors.MsgInternalError)
		return
	}

	list, err := h.taskListService.AddMember(c.Request.Context(), middleware.CurrentUserID(c), taskListID, req.UserID)
	if err != nil {
		respondError(c, err, "failed to add member", apierrors.MsgInternalError,
			zap.Uint64("task_list_id", taskListID),
			zap.Uint64("member_id", req.UserID),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskListItem(list))
}

func (h *TaskListHandler) RemoveMember(c *gin.Context) {
	taskListID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	memberID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	list, err := h.taskListService.RemoveMember(c.Request.Context(), middleware.CurrentUserID(c), taskListID, memberID)
	if err != nil {
		respondError(c, err, "failed to remove member", apierrors.MsgInternalError,
			zap.Uint64("task_list_id", taskListID),
			zap.Uint64("member_id", memberID),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskListItem(list))
}

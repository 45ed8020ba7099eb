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

type CommentHandler struct {
	commentService ports.CommentService
}

func NewCommentHandler(commentService ports.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

func (h *CommentHandler) ListComments(c *gin.Context) {
	taskID, err := parseUintQuery(c, "task")
	if err != nil {
		respondError(c, err, "invalid comment filter", apierrors.MsgInternalError)
		return
	}

	comments, err := h.commentService.ListComments(c.Request.Context(), middleware.CurrentUserID(c), taskID)
	if err != nil {
		respondError(c, err, "failed to list comments", apierrors.MsgInternalError)
		return
	}

	c.JSON(http.StatusOK, mapper.ToCommentItems(comments))
}

func (h *CommentHandler) GetComment(c *gin.Context) {
	commentID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	comment, err := h.commentService.GetComment(c.Request.Context(), middleware.CurrentUserID(c), commentID)
	if err != nil {
		respondError(c, err, "failed to get comment", apierrors.MsgInternalError, zap.Uint64("comment_id", commentID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToCommentItem(comment))
}

func (h *CommentHandler) CreateComment(c *gin.Context) {
	var req dto.CreateCommentRequest
	if _, ok := bindJSON(c, &req); !ok {
		return
	}

	input, err := validation.BuildCreateCommentInput(req)
	if err != nil {
		respondError(c, err, "invalid comment payload", apierrors.MsgInternalError)
		return
	}

	comment, err := h.commentService.CreateComment(c.Request.Context(), middleware.CurrentUserID(c), input)
	if err != nil {
		respondError(c, err, "failed to create comment", apierrors.MsgInternalError, zap.Uint64("task_id", input.TaskID))
		return
	}

	c.JSON(http.StatusCreated, mapper.ToCommentItem(comment))
}

func (h *CommentHandler) UpdateComment(c *gin.Context) {
	commentID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateCommentRequest
	if _, ok := bindJSON(c, &req); !ok {
		return
	}

	content, err := validation.BuildCommentContent(req)
	if err != nil {
		respondError(c, err, "invalid comment payload", apierrors.MsgInternalError)
		return
	}

	comment, err := h.commentService.UpdateComment(c.Request.Context(), middleware.CurrentUserID(c), commentID, content)
	if err != nil {
		respondError(c, err, "failed to update comment", apierrors.MsgInternalError, zap.Uint64("comment_id", commentID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToCommentItem(comment))
}

func (h *CommentHandler) DeleteComment(c *gin.Context) {
	commentID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.commentService.DeleteComment(c.Request.Context(), middleware.CurrentUserID(c), commentID); err != nil {
		respondError(c, err, "failed to delete comment", apierrors.MsgInternalError, zap.Uint64("comment_id", commentID))
		return
	}

	c.Status(http.StatusNoContent)
}

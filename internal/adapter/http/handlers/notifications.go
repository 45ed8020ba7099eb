package handlers

import (
	"net/http"

	"creatingtasks/internal/adapter/http/dto"
	"creatingtasks/internal/adapter/http/mapper"
	"creatingtasks/internal/adapter/http/middleware"
	"creatingtasks/internal/core/ports"
	"creatingtasks/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type NotificationHandler struct {
	notificationService ports.NotificationService
}

func NewNotificationHandler(notificationService ports.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	unread, err := parseBoolQuery(c, "unread")
	if err != nil {
		respondError(c, err, "invalid notification filter", apierrors.MsgInternalError)
		return
	}

	userID := middleware.CurrentUserID(c)
	notifications, err := h.notificationService.ListNotifications(c.Request.Context(), userID, unread != nil && *unread)
	if err != nil {
		respondError(c, err, "failed to list notifications", apierrors.MsgInternalError, zap.Uint64("user_id", userID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToNotificationItems(notifications))
}

func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	count, err := h.notificationService.UnreadCount(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "failed to count unread notifications", apierrors.MsgInternalError, zap.Uint64("user_id", userID))
		return
	}

	c.JSON(http.StatusOK, dto.UnreadCountResponse{Count: count})
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	notificationID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	notification, err := h.notificationService.MarkRead(c.Request.Context(), middleware.CurrentUserID(c), notificationID)
	if err != nil {
		respondError(c, err, "failed to mark notification read", apierrors.MsgInternalError, zap.Uint64("notification_id", notificationID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToNotificationItem(notification))
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	updated, err := h.notificationService.MarkAllRead(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "failed to mark notifications read", apierrors.MsgInternalError, zap.Uint64("user_id", userID))
		return
	}

	c.JSON(http.StatusOK, dto.MarkAllReadResponse{Updated: updated})
}

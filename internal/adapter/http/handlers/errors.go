package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"creatingtasks/internal/adapter/http/middleware"
	"creatingtasks/internal/adapter/http/validation"
	"creatingtasks/internal/core/domain"
	"creatingtasks/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type domainErrorMapping struct {
	target error
	status int
	msgKey string
}

// Outsiders get the same 404 as a missing resource.
var domainErrorMappings = []domainErrorMapping{
	{domain.ErrUnauthenticated, http.StatusUnauthorized, apierrors.MsgUnauthenticated},
	{domain.ErrInvalidCredentials, http.StatusBadRequest, apierrors.MsgInvalidCredentials},
	{domain.ErrUserInactive, http.StatusBadRequest, apierrors.MsgUserInactive},
	{domain.ErrForbidden, http.StatusForbidden, apierrors.MsgForbidden},
	{domain.ErrInvalidInput, http.StatusBadRequest, apierrors.MsgInvalidPayload},
	{domain.ErrUserNotFound, http.StatusNotFound, apierrors.MsgUserNotFound},
	{domain.ErrTaskListNotFound, http.StatusNotFound, apierrors.MsgTaskListNotFound},
	{domain.ErrTaskNotFound, http.StatusNotFound, apierrors.MsgTaskNotFound},
	{domain.ErrCommentNotFound, http.StatusNotFound, apierrors.MsgCommentNotFound},
	{domain.ErrNotificationNotFound, http.StatusNotFound, apierrors.MsgNotificationNotFound},
	{domain.ErrUsernameTaken, http.StatusConflict, apierrors.MsgUsernameTaken},
	{domain.ErrEmailTaken, http.StatusConflict, apierrors.MsgEmailTaken},
	{domain.ErrTelegramIDTaken, http.StatusConflict, apierrors.MsgTelegramIDTaken},
	{domain.ErrSlugTaken, http.StatusConflict, apierrors.MsgSlugTaken},
	{domain.ErrMemberAlreadyAdded, http.StatusConflict, apierrors.MsgMemberAlreadyAdded},
	{domain.ErrCannotRemoveOwner, http.StatusBadRequest, apierrors.MsgCannotRemoveOwner},
}

var fieldMessageKeys = map[string]string{
	"required": "fieldRequired",
	"min":      "fieldMin",
	"max":      "fieldMax",
	"email":    "fieldEmail",
	"oneof":    "fieldOneof",
	"invalid":  "fieldInvalid",
}

// respondError answers with the status matching err. Unknown errors are
// logged with logMsg and reported as 500 with fallbackKey.
func respondError(c *gin.Context, err error, logMsg string, fallbackKey string, fields ...zap.Field) {
	lang := middleware.GetLang(c)

	var fieldErrors validation.FieldErrors
	if errors.As(err, &fieldErrors) {
		respondFieldErrors(c, fieldErrors)
		return
	}
	if errors.Is(err, validation.ErrInvalidPayload) {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
		)
		return
	}
	if errors.Is(err, domain.ErrAssigneeNotMember) {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateValidationError(http.StatusBadRequest, apierrors.MsgAssigneeNotMember, lang, map[string]string{
				"assigned_to_id": apierrors.GetTransErrorMsg(apierrors.MsgAssigneeNotMember, lang),
			}),
		)
		return
	}

	for _, mapping := range domainErrorMappings {
		if errors.Is(err, mapping.target) {
			c.JSON(mapping.status, apierrors.CreateError(mapping.status, mapping.msgKey, lang))
			return
		}
	}

	zap.L().Error(logMsg, append(fields, zap.Error(err))...)
	c.JSON(
		http.StatusInternalServerError,
		apierrors.CreateError(http.StatusInternalServerError, fallbackKey, lang),
	)
}

func respondFieldErrors(c *gin.Context, fieldErrors validation.FieldErrors) {
	lang := middleware.GetLang(c)
	messages := make(map[string]string, len(fieldErrors))
	for field, rule := range fieldErrors {
		key, ok := fieldMessageKeys[rule]
		if !ok {
			key = fieldMessageKeys["invalid"]
		}
		messages[field] = apierrors.GetTransErrorMsg(key, lang)
	}
	c.JSON(
		http.StatusBadRequest,
		apierrors.CreateValidationError(http.StatusBadRequest, apierrors.MsgValidationFailed, lang, messages),
	)
}

// bindJSON decodes the body into req and also returns the raw object so that
// PATCH handlers can tell an explicit null from an absent field.
func bindJSON(c *gin.Context, req any) (map[string]json.RawMessage, bool) {
	lang := middleware.GetLang(c)

	body, err := c.GetRawData()
	raw := map[string]json.RawMessage{}
	if err == nil {
		err = json.Unmarshal(body, &raw)
	}
	if err == nil {
		err = json.Unmarshal(body, req)
	}
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
		)
		return nil, false
	}
	return raw, true
}

func parseIDParam(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		lang := middleware.GetLang(c)
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidID, lang),
		)
		return 0, false
	}
	return id, true
}

// parseBoolQuery returns nil when the parameter is absent.
func parseBoolQuery(c *gin.Context, name string) (*bool, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseBool(strings.ToLower(raw))
	if err != nil {
		return nil, validation.FieldErrors{name: "invalid"}
	}
	return &value, nil
}

func parseUintQuery(c *gin.Context, name string) (*uint64, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || value == 0 {
		return nil, validation.FieldErrors{name: "invalid"}
	}
	return &value, nil
}

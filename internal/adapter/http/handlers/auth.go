package handlers

import (
	"net/http"
	"time"

	"creatingtasks/internal/adapter/http/dto"
	"creatingtasks/internal/adapter/http/mapper"
	"creatingtasks/internal/adapter/http/middleware"
	"creatingtasks/internal/adapter/http/validation"
	"creatingtasks/internal/core/ports"
	"creatingtasks/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SessionIssuer signs the browser session returned alongside the API key.
type SessionIssuer interface {
	Issue(userID uint64, apiKey string) (string, error)
	TTL() time.Duration
}

type CookieConfig struct {
	Name   string
	Secure bool
}

type AuthHandler struct {
	userService ports.UserService
	sessions    SessionIssuer
	cookie      CookieConfig
}

func NewAuthHandler(userService ports.UserService, sessions SessionIssuer, cookie CookieConfig) *AuthHandler {
	return &AuthHandler{userService: userService, sessions: sessions, cookie: cookie}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if _, ok := bindJSON(c, &req); !ok {
		return
	}

	input, err := validation.BuildRegisterInput(req)
	if err != nil {
		respondError(c, err, "invalid registration payload", apierrors.MsgInternalError)
		return
	}

	user, err := h.userService.Register(c.Request.Context(), input)
	if err != nil {
		respondError(c, err, "failed to register user", apierrors.MsgInternalError)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToUserItem(user))
}

// Login returns the API key and also sets the session cookie for browsers.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if _, ok := bindJSON(c, &req); !ok {
		return
	}
	if err := validation.ValidateLogin(req); err != nil {
		respondError(c, err, "invalid login payload", apierrors.MsgInternalError)
		return
	}

	session, err := h.userService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err, "failed to log in", apierrors.MsgInternalError)
		return
	}

	signed, err := h.sessions.Issue(session.User.ID, session.Token)
	if err != nil {
		respondError(c, err, "failed to sign session", apierrors.MsgInternalError, zap.Uint64("user_id", session.User.ID))
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, signed, int(h.sessions.TTL().Seconds()), "/", "", h.cookie.Secure, true)

	c.JSON(http.StatusOK, mapper.ToSessionResponse(session))
}

func (h *AuthHandler) TelegramLogin(c *gin.Context) {
	var req dto.TelegramLoginRequest
	if _, ok := bindJSON(c, &req); !ok {
		return
	}

	input, err := validation.BuildTelegramLoginInput(req)
	if err != nil {
		respondError(c, err, "invalid telegram login payload", apierrors.MsgInternalError)
		return
	}

	session, err := h.userService.TelegramLogin(c.Request.Context(), input)
	if err != nil {
		respondError(c, err, "failed to log in with telegram", apierrors.MsgInternalError, zap.Int64("telegram_id", input.TelegramID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToSessionResponse(session))
}

func (h *AuthHandler) Logout(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	if err := h.userService.Logout(c.Request.Context(), userID); err != nil {
		respondError(c, err, "failed to log out", apierrors.MsgInternalError, zap.Uint64("user_id", userID))
		return
	}

	c.SetCookie(h.cookie.Name, "", -1, "/", "", h.cookie.Secure, true)
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	user, err := h.userService.GetUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "failed to load current user", apierrors.MsgInternalError, zap.Uint64("user_id", userID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToUserItem(user))
}

func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateProfileRequest
	raw, ok := bindJSON(c, &req)
	if !ok {
		return
	}

	input, err := validation.BuildUpdateProfileInput(req, raw)
	if err != nil {
		respondError(c, err, "invalid profile payload", apierrors.MsgInternalError)
		return
	}

	userID := middleware.CurrentUserID(c)
	user, err := h.userService.UpdateProfile(c.Request.Context(), userID, input)
	if err != nil {
		respondError(c, err, "failed to update profile", apierrors.MsgInternalError, zap.Uint64("user_id", userID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToUserItem(user))
}

func (h *AuthHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to list users", apierrors.MsgInternalError)
		return
	}

	c.JSON(http.StatusOK, mapper.ToUserItems(users))
}

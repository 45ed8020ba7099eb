package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"creatingtasks/internal/core/domain"
	"creatingtasks/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const userContextKey = "user"

// Authenticator resolves an opaque API key to its active user.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (domain.User, error)
}

// SessionValidator turns a signed session token back into the API key it wraps.
type SessionValidator interface {
	Validate(token string) (string, error)
}

type AuthConfig struct {
	SessionCookieName string
	// AllowQueryToken accepts ?token=<key>, used by WebSocket clients that
	// cannot set headers.
	AllowQueryToken bool
}

// AuthMiddleware accepts, in order: "Authorization: Token <key>",
// "Authorization: Bearer <jwt>", the session cookie and, when enabled, the
// token query parameter.
func AuthMiddleware(users Authenticator, sessions SessionValidator, config AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := GetLang(c)

		key, ok := apiKey(c, sessions, config)
		if !ok {
			abortUnauthenticated(c, lang)
			return
		}

		user, err := users.Authenticate(c.Request.Context(), key)
		if err != nil {
			if errors.Is(err, domain.ErrUnauthenticated) || errors.Is(err, domain.ErrUserInactive) {
				abortUnauthenticated(c, lang)
				return
			}
			zap.L().Error("failed to authenticate request", zap.Error(err))
			c.AbortWithStatusJSON(
				http.StatusInternalServerError,
				apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternalError, lang),
			)
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

func apiKey(c *gin.Context, sessions SessionValidator, config AuthConfig) (string, bool) {
	if header := c.GetHeader("Authorization"); header != "" {
		scheme, credentials, found := strings.Cut(header, " ")
		credentials = strings.TrimSpace(credentials)
		if !found || credentials == "" {
			return "", false
		}
		switch {
		case strings.EqualFold(scheme, "Token"):
			return credentials, true
		case strings.EqualFold(scheme, "Bearer"):
			return sessionKey(sessions, credentials)
		}
		return "", false
	}

	if config.SessionCookieName != "" {
		if cookie, err := c.Cookie(config.SessionCookieName); err == nil && cookie != "" {
			return sessionKey(sessions, cookie)
		}
	}

	if config.AllowQueryToken {
		if token := c.Query("token"); token != "" {
			return token, true
		}
	}
	return "", false
}

func sessionKey(sessions SessionValidator, token string) (string, bool) {
	key, err := sessions.Validate(token)
	if err != nil {
		zap.L().Debug("rejected session token", zap.Error(err))
		return "", false
	}
	return key, true
}

func abortUnauthenticated(c *gin.Context, lang string) {
	c.AbortWithStatusJSON(
		http.StatusUnauthorized,
		apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthenticated, lang),
	)
}

// CurrentUser returns the user stored by AuthMiddleware.
func CurrentUser(c *gin.Context) (domain.User, bool) {
	value, exists := c.Get(userContextKey)
	if !exists {
		return domain.User{}, false
	}
	user, ok := value.(domain.User)
	return user, ok
}

func CurrentUserID(c *gin.Context) uint64 {
	user, _ := CurrentUser(c)
	return user.ID
}

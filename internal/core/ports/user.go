package ports

import (
	"context"

	"creatingtasks/internal/core/domain"
)

type UserRepository interface {
	// CreateUser inserts the user and its profile in one transaction.
	CreateUser(ctx context.Context, input domain.CreateUserInput) (domain.User, error)
	GetUser(ctx context.Context, userID uint64) (domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	LinkTelegram(ctx context.Context, userID uint64, telegramID int64, telegramUsername *string) error
	UpdateProfile(ctx context.Context, userID uint64, input domain.UpdateProfileInput) error
}

type TokenRepository interface {
	// GetOrCreateToken returns the user's existing key or stores the given one.
	GetOrCreateToken(ctx context.Context, userID uint64, key string) (string, error)
	GetUserIDByToken(ctx context.Context, key string) (uint64, error)
	DeleteToken(ctx context.Context, userID uint64) error
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

type TokenGenerator interface {
	NewToken() string
}

type UserService interface {
	Register(ctx context.Context, input domain.RegisterInput) (domain.User, error)
	Login(ctx context.Context, username, password string) (domain.Session, error)
	TelegramLogin(ctx context.Context, input domain.TelegramLoginInput) (domain.Session, error)
	Logout(ctx context.Context, userID uint64) error
	Authenticate(ctx context.Context, token string) (domain.User, error)
	GetUser(ctx context.Context, userID uint64) (domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	UpdateProfile(ctx context.Context, userID uint64, input domain.UpdateProfileInput) (domain.User, error)
}

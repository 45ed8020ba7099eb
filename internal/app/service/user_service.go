package service

import (
	"context"
	"errors"
	"strings"

	"creatingtasks/internal/core/domain"
	"creatingtasks/internal/core/ports"
)

type UserService struct {
	userRepository  ports.UserRepository
	tokenRepository ports.TokenRepository
	hasher          ports.PasswordHasher
	tokens          ports.TokenGenerator
}

func NewUserService(
	userRepository ports.UserRepository,
	tokenRepository ports.TokenRepository,
	hasher ports.PasswordHasher,
	tokens ports.TokenGenerator,
) *UserService {
	return &UserService{
		userRepository:  userRepository,
		tokenRepository: tokenRepository,
		hasher:          hasher,
		tokens:          tokens,
	}
}

// Register creates the user and its default profile as one operation.
func (s *UserService) Register(ctx context.Context, input domain.RegisterInput) (domain.User, error) {
	username := strings.TrimSpace(input.Username)
	email := normalizeEmail(input.Email)

	if _, err := s.userRepository.GetUserByUsername(ctx, username); err == nil {
		return domain.User{}, domain.ErrUsernameTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return domain.User{}, err
	}
	if _, err := s.userRepository.GetUserByEmail(ctx, email); err == nil {
		return domain.User{}, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return domain.User{}, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return domain.User{}, err
	}

	return s.userRepository.CreateUser(ctx, domain.CreateUserInput{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		Profile:      domain.DefaultProfile(),
	})
}

func (s *UserService) Login(ctx context.Context, username, password string) (domain.Session, error) {
	user, err := s.userRepository.GetUserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.Session{}, domain.ErrInvalidCredentials
		}
		return domain.Session{}, err
	}
	if !s.hasher.Verify(password, user.PasswordHash) {
		return domain.Session{}, domain.ErrInvalidCredentials
	}
	if !user.IsActive {
		return domain.Session{}, domain.ErrUserInactive
	}
	return s.openSession(ctx, user)
}

// TelegramLogin links the chat identity to the account registered with the
// given email and hands back an API token for the bot.
func (s *UserService) TelegramLogin(ctx context.Context, input domain.TelegramLoginInput) (domain.Session, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		return domain.Session{}, err
	}
	if !user.IsActive {
		return domain.Session{}, domain.ErrUserInactive
	}
	if err := s.userRepository.LinkTelegram(ctx, user.ID, input.TelegramID, input.TelegramUsername); err != nil {
		return domain.Session{}, err
	}
	telegramID := input.TelegramID
	user.TelegramID = &telegramID
	user.TelegramUsername = input.TelegramUsername
	return s.openSession(ctx, user)
}

func (s *UserService) Logout(ctx context.Context, userID uint64) error {
	return s.tokenRepository.DeleteToken(ctx, userID)
}

func (s *UserService) Authenticate(ctx context.Context, token string) (domain.User, error) {
	if token == "" {
		return domain.User{}, domain.ErrUnauthenticated
	}
	userID, err := s.tokenRepository.GetUserIDByToken(ctx, token)
	if err != nil {
		return domain.User{}, err
	}
	user, err := s.userRepository.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.User{}, domain.ErrUnauthenticated
		}
		return domain.User{}, err
	}
	if !user.IsActive {
		return domain.User{}, domain.ErrUnauthenticated
	}
	return user, nil
}

func (s *UserService) GetUser(ctx context.Context, userID uint64) (domain.User, error) {
	return s.userRepository.GetUser(ctx, userID)
}

func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.userRepository.ListUsers(ctx)
}

func (s *UserService) UpdateProfile(ctx context.Context, userID uint64, input domain.UpdateProfileInput) (domain.User, error) {
	if err := s.userRepository.UpdateProfile(ctx, userID, input); err != nil {
		return domain.User{}, err
	}
	return s.userRepository.GetUser(ctx, userID)
}

func (s *UserService) openSession(ctx context.Context, user domain.User) (domain.Session, error) {
	token, err := s.tokenRepository.GetOrCreateToken(ctx, user.ID, s.tokens.NewToken())
	if err != nil {
		return domain.Session{}, err
	}
	return domain.Session{User: user, Token: token}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

var _ ports.UserService = (*UserService)(nil)

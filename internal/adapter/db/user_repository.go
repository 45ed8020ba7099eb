package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"creatingtasks/internal/core/domain"
	"creatingtasks/internal/core/ports"
)

const selectUserQuery = `
SELECT
  u.id, u.username, u.email, u.password_hash, u.first_name, u.last_name,
  u.telegram_id, u.telegram_username, u.phone_number, u.is_active, u.created_at,
  p.avatar_url, p.timezone, p.email_notifications, p.telegram_notifications
FROM users u
JOIN user_profiles p ON p.user_id = u.id
`

type UserRepository struct {
	db *sqlx.DB
}

type userRow struct {
	ID                    uint64         `db:"id"`
	Username              string         `db:"username"`
	Email                 string         `db:"email"`
	PasswordHash          string         `db:"password_hash"`
	FirstName             string         `db:"first_name"`
	LastName              string         `db:"last_name"`
	TelegramID            sql.NullInt64  `db:"telegram_id"`
	TelegramUsername      sql.NullString `db:"telegram_username"`
	PhoneNumber           sql.NullString `db:"phone_number"`
	IsActive              bool           `db:"is_active"`
	CreatedAt             time.Time      `db:"created_at"`
	AvatarURL             sql.NullString `db:"avatar_url"`
	Timezone              string         `db:"timezone"`
	EmailNotifications    bool           `db:"email_notifications"`
	TelegramNotifications bool           `db:"telegram_notifications"`
}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// CreateUser writes the user and its profile row in one transaction so a user
// never exists without a profile.
func (r *UserRepository) CreateUser(ctx context.Context, input domain.CreateUserInput) (domain.User, error) {
	var userID uint64
	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO users (username, email, password_hash, first_name, last_name) VALUES (?, ?, ?, ?, ?)`,
			input.Username, input.Email, input.PasswordHash, input.FirstName, input.LastName,
		)
		if err != nil {
			return mapUserConflict(err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		userID = uint64(id)

		_, err = tx.ExecContext(ctx,
			`INSERT INTO user_profiles (user_id, avatar_url, timezone, email_notifications, telegram_notifications) VALUES (?, ?, ?, ?, ?)`,
			userID, input.Profile.AvatarURL, input.Profile.Timezone,
			input.Profile.EmailNotifications, input.Profile.TelegramNotifications,
		)
		if err != nil {
			return fmt.Errorf("insert profile: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.User{}, err
	}
	return r.GetUser(ctx, userID)
}

func (r *UserRepository) GetUser(ctx context.Context, userID uint64) (domain.User, error) {
	return r.getOne(ctx, selectUserQuery+`WHERE u.id = ?`, userID)
}

func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	return r.getOne(ctx, selectUserQuery+`WHERE u.username = ?`, username)
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	return r.getOne(ctx, selectUserQuery+`WHERE LOWER(u.email) = ?`, strings.ToLower(email))
}

func (r *UserRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	var rows []userRow
	if err := r.db.SelectContext(ctx, &rows, selectUserQuery+`WHERE u.is_active = TRUE ORDER BY u.username`); err != nil {
		return nil, err
	}

	users := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, mapUserRowToDomainUser(row))
	}
	return users, nil
}

func (r *UserRepository) LinkTelegram(ctx context.Context, userID uint64, telegramID int64, telegramUsername *string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET telegram_id = ?, telegram_username = ? WHERE id = ?`,
		telegramID, telegramUsername, userID,
	)
	if err != nil {
		return mapUserConflict(err)
	}
	return r.checkUpdated(ctx, res, userID)
}

func (r *UserRepository) UpdateProfile(ctx context.Context, userID uint64, input domain.UpdateProfileInput) error {
	sets := make([]string, 0, 4)
	args := make([]any, 0, 5)
	if input.Timezone != nil {
		sets = append(sets, "timezone = ?")
		args = append(args, *input.Timezone)
	}
	if input.EmailNotifications != nil {
		sets = append(sets, "email_notifications = ?")
		args = append(args, *input.EmailNotifications)
	}
	if input.TelegramNotifications != nil {
		sets = append(sets, "telegram_notifications = ?")
		args = append(args, *input.TelegramNotifications)
	}
	if input.AvatarURLSet {
		sets = append(sets, "avatar_url = ?")
		args = append(args, input.AvatarURL)
	}
	if len(sets) == 0 {
		_, err := r.GetUser(ctx, userID)
		return err
	}

	args = append(args, userID)
	res, err := r.db.ExecContext(ctx, `UPDATE user_profiles SET `+strings.Join(sets, ", ")+` WHERE user_id = ?`, args...)
	if err != nil {
		return err
	}
	return r.checkUpdated(ctx, res, userID)
}

// checkUpdated tells a missing user apart from a no-op update, since MySQL
// reports zero affected rows for both.
func (r *UserRepository) checkUpdated(ctx context.Context, res sql.Result, userID uint64) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		_, err := r.GetUser(ctx, userID)
		return err
	}
	return nil
}

func (r *UserRepository) getOne(ctx context.Context, query string, args ...any) (domain.User, error) {
	var row userRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, err
	}
	return mapUserRowToDomainUser(row), nil
}

func mapUserConflict(err error) error {
	if !isDuplicateEntry(err) {
		return err
	}
	switch duplicateKeyName(err) {
	case "uq_users_username":
		return domain.ErrUsernameTaken
	case "uq_users_email":
		return domain.ErrEmailTaken
	case "uq_users_telegram_id":
		return domain.ErrTelegramIDTaken
	}
	return err
}

func requireAffected(res sql.Result, notFound error) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return notFound
	}
	return nil
}

func mapUserRowToDomainUser(row userRow) domain.User {
	user := domain.User{
		ID:           row.ID,
		Username:     row.Username,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		FirstName:    row.FirstName,
		LastName:     row.LastName,
		IsActive:     row.IsActive,
		CreatedAt:    row.CreatedAt,
		Profile: domain.Profile{
			Timezone:              row.Timezone,
			EmailNotifications:    row.EmailNotifications,
			TelegramNotifications: row.TelegramNotifications,
		},
	}

	if row.TelegramID.Valid {
		value := row.TelegramID.Int64
		user.TelegramID = &value
	}

	if row.TelegramUsername.Valid {
		value := row.TelegramUsername.String
		user.TelegramUsername = &value
	}

	if row.PhoneNumber.Valid {
		value := row.PhoneNumber.String
		user.PhoneNumber = &value
	}

	if row.AvatarURL.Valid {
		value := row.AvatarURL.String
		user.Profile.AvatarURL = &value
	}

	return user
}

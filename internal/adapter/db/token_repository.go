package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"creatingtasks/internal/core/domain"
	"creatingtasks/internal/core/ports"
)

type TokenRepository struct {
	db *sqlx.DB
}

var _ ports.TokenRepository = (*TokenRepository)(nil)

func NewTokenRepository(db *sqlx.DB) *TokenRepository {
	return &TokenRepository{db: db}
}

// GetOrCreateToken keeps at most one key per user: the candidate key is only
// stored when the user has none yet.
func (r *TokenRepository) GetOrCreateToken(ctx context.Context, userID uint64, key string) (string, error) {
	if _, err := r.db.ExecContext(ctx,
		`INSERT IGNORE INTO auth_tokens (token_key, user_id) VALUES (?, ?)`,
		key, userID,
	); err != nil {
		return "", err
	}

	var stored string
	if err := r.db.GetContext(ctx, &stored, `SELECT token_key FROM auth_tokens WHERE user_id = ?`, userID); err != nil {
		return "", err
	}
	return stored, nil
}

func (r *TokenRepository) GetUserIDByToken(ctx context.Context, key string) (uint64, error) {
	var userID uint64
	if err := r.db.GetContext(ctx, &userID, `SELECT user_id FROM auth_tokens WHERE token_key = ?`, key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, domain.ErrUnauthenticated
		}
		return 0, err
	}
	return userID, nil
}

func (r *TokenRepository) DeleteToken(ctx context.Context, userID uint64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM auth_tokens WHERE user_id = ?`, userID)
	return err
}

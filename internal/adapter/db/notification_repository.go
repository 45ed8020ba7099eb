package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"creatingtasks/internal/core/domain"
	"creatingtasks/internal/core/ports"
)

const selectNotificationQuery = `
SELECT id, user_id, type, title, message, related_task_id, is_read, created_at
FROM notifications
`

type NotificationRepository struct {
	db *sqlx.DB
}

type notificationRow struct {
	ID            uint64        `db:"id"`
	UserID        uint64        `db:"user_id"`
	Type          string        `db:"type"`
	Title         string        `db:"title"`
	Message       string        `db:"message"`
	RelatedTaskID sql.NullInt64 `db:"related_task_id"`
	IsRead        bool          `db:"is_read"`
	CreatedAt     time.Time     `db:"created_at"`
}

var _ ports.NotificationRepository = (*NotificationRepository)(nil)

func NewNotificationRepository(db *sqlx.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) CreateNotification(ctx context.Context, input domain.CreateNotificationInput) (domain.Notification, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO notifications (user_id, type, title, message, related_task_id) VALUES (?, ?, ?, ?, ?)`,
		input.UserID, string(input.Type), input.Title, input.Message, input.RelatedTaskID,
	)
	if err != nil {
		return domain.Notification{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Notification{}, err
	}
	return r.GetNotification(ctx, uint64(id))
}

func (r *NotificationRepository) ListNotifications(ctx context.Context, filter domain.NotificationFilter) ([]domain.Notification, error) {
	query := selectNotificationQuery + `WHERE user_id = ?`
	if filter.UnreadOnly {
		query += ` AND is_read = FALSE`
	}
	query += ` ORDER BY created_at DESC, id DESC`

	var rows []notificationRow
	if err := r.db.SelectContext(ctx, &rows, query, filter.UserID); err != nil {
		return nil, err
	}

	notifications := make([]domain.Notification, 0, len(rows))
	for _, row := range rows {
		notifications = append(notifications, mapNotificationRowToDomainNotification(row))
	}
	return notifications, nil
}

func (r *NotificationRepository) GetNotification(ctx context.Context, notificationID uint64) (domain.Notification, error) {
	var row notificationRow
	if err := r.db.GetContext(ctx, &row, selectNotificationQuery+`WHERE id = ?`, notificationID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Notification{}, domain.ErrNotificationNotFound
		}
		return domain.Notification{}, err
	}
	return mapNotificationRowToDomainNotification(row), nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, notificationID uint64) error {
	_, err := r.db.ExecContext(ctx, `UPDATE notifications SET is_read = TRUE WHERE id = ?`, notificationID)
	return err
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID uint64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE notifications SET is_read = TRUE WHERE user_id = ? AND is_read = FALSE`, userID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *NotificationRepository) CountUnread(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM notifications WHERE user_id = ? AND is_read = FALSE`, userID); err != nil {
		return 0, err
	}
	return count, nil
}

func mapNotificationRowToDomainNotification(row notificationRow) domain.Notification {
	notification := domain.Notification{
		ID:        row.ID,
		UserID:    row.UserID,
		Type:      domain.NotificationType(row.Type),
		Title:     row.Title,
		Message:   row.Message,
		IsRead:    row.IsRead,
		CreatedAt: row.CreatedAt,
	}

	if row.RelatedTaskID.Valid {
		id := uint64(row.RelatedTaskID.Int64)
		notification.RelatedTaskID = &id
	}

	return notification
}

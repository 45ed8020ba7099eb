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

const selectCommentQuery = `
SELECT c.id, c.task_id, c.author_id, u.username AS author_username, c.content, c.created_at, c.updated_at
FROM comments c
JOIN users u ON u.id = c.author_id
`

type CommentRepository struct {
	db *sqlx.DB
}

type commentRow struct {
	ID             uint64    `db:"id"`
	TaskID         uint64    `db:"task_id"`
	AuthorID       uint64    `db:"author_id"`
	AuthorUsername string    `db:"author_username"`
	Content        string    `db:"content"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

var _ ports.CommentRepository = (*CommentRepository)(nil)

func NewCommentRepository(db *sqlx.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) ListComments(ctx context.Context, taskID uint64) ([]domain.Comment, error) {
	return r.selectComments(ctx, selectCommentQuery+`WHERE c.task_id = ? ORDER BY c.created_at, c.id`, taskID)
}

// ListVisibleComments returns the comments of every task in the user's lists.
func (r *CommentRepository) ListVisibleComments(ctx context.Context, userID uint64) ([]domain.Comment, error) {
	query := selectCommentQuery + `
JOIN tasks t ON t.id = c.task_id
JOIN task_lists l ON l.id = t.task_list_id
WHERE ` + accessibleListsCondition + `
ORDER BY c.created_at, c.id`
	return r.selectComments(ctx, query, userID, userID)
}

func (r *CommentRepository) GetComment(ctx context.Context, commentID uint64) (domain.Comment, error) {
	var row commentRow
	if err := r.db.GetContext(ctx, &row, selectCommentQuery+`WHERE c.id = ?`, commentID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Comment{}, domain.ErrCommentNotFound
		}
		return domain.Comment{}, err
	}
	return mapCommentRowToDomainComment(row), nil
}

func (r *CommentRepository) CreateComment(ctx context.Context, authorID uint64, input domain.CreateCommentInput) (domain.Comment, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO comments (task_id, author_id, content) VALUES (?, ?, ?)`,
		input.TaskID, authorID, input.Content,
	)
	if err != nil {
		return domain.Comment{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Comment{}, err
	}
	return r.GetComment(ctx, uint64(id))
}

func (r *CommentRepository) UpdateComment(ctx context.Context, commentID uint64, content string) (domain.Comment, error) {
	if _, err := r.db.ExecContext(ctx, `UPDATE comments SET content = ? WHERE id = ?`, content, commentID); err != nil {
		return domain.Comment{}, err
	}
	return r.GetComment(ctx, commentID)
}

func (r *CommentRepository) DeleteComment(ctx context.Context, commentID uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE id = ?`, commentID)
	if err != nil {
		return err
	}
	return requireAffected(res, domain.ErrCommentNotFound)
}

func (r *CommentRepository) selectComments(ctx context.Context, query string, args ...any) ([]domain.Comment, error) {
	var rows []commentRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	comments := make([]domain.Comment, 0, len(rows))
	for _, row := range rows {
		comments = append(comments, mapCommentRowToDomainComment(row))
	}
	return comments, nil
}

func mapCommentRowToDomainComment(row commentRow) domain.Comment {
	return domain.Comment{
		ID:        row.ID,
		TaskID:    row.TaskID,
		AuthorID:  row.AuthorID,
		Author:    &domain.UserRef{ID: row.AuthorID, Username: row.AuthorUsername},
		Content:   row.Content,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

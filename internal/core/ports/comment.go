package ports

import (
	"context"

	"creatingtasks/internal/core/domain"
)

type CommentRepository interface {
	ListComments(ctx context.Context, taskID uint64) ([]domain.Comment, error)
	ListVisibleComments(ctx context.Context, userID uint64) ([]domain.Comment, error)
	GetComment(ctx context.Context, commentID uint64) (domain.Comment, error)
	CreateComment(ctx context.Context, authorID uint64, input domain.CreateCommentInput) (domain.Comment, error)
	UpdateComment(ctx context.Context, commentID uint64, content string) (domain.Comment, error)
	DeleteComment(ctx context.Context, commentID uint64) error
}

type CommentService interface {
	ListComments(ctx context.Context, userID uint64, taskID *uint64) ([]domain.Comment, error)
	GetComment(ctx context.Context, userID, commentID uint64) (domain.Comment, error)
	CreateComment(ctx context.Context, userID uint64, input domain.CreateCommentInput) (domain.Comment, error)
	UpdateComment(ctx context.Context, userID, commentID uint64, content string) (domain.Comment, error)
	DeleteComment(ctx context.Context, userID, commentID uint64) error
}

package mapper

import (
	"creatingtasks/internal/adapter/http/dto"
	"creatingtasks/internal/core/domain"
)

func ToCommentItems(comments []domain.Comment) []dto.CommentItem {
	items := make([]dto.CommentItem, 0, len(comments))
	for _, comment := range comments {
		items = append(items, ToCommentItem(comment))
	}
	return items
}

func ToCommentItem(comment domain.Comment) dto.CommentItem {
	author := toUserRef(comment.Author)
	if author == nil {
		author = &dto.UserRef{ID: comment.AuthorID}
	}
	return dto.CommentItem{
		ID:        comment.ID,
		Task:      comment.TaskID,
		Author:    author,
		Content:   comment.Content,
		CreatedAt: formatTime(comment.CreatedAt),
		UpdatedAt: formatTime(comment.UpdatedAt),
	}
}

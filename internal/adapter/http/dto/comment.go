package dto

type CommentItem struct {
	ID        uint64   `json:"id"`
	Task      uint64   `json:"task"`
	Author    *UserRef `json:"author"`
	Content   string   `json:"content"`
	CreatedAt string   `json:"created_at"`
	UpdatedAt string   `json:"updated_at"`
}

type CreateCommentRequest struct {
	Task    uint64 `json:"task" validate:"required,gt=0"`
	Content string `json:"content" validate:"required,max=10000"`
}

type UpdateCommentRequest struct {
	Content string `json:"content" validate:"required,max=10000"`
}

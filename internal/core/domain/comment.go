package domain

import "time"

type Comment struct {
	ID        uint64
	TaskID    uint64
	AuthorID  uint64
	Author    *UserRef
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CreateCommentInput struct {
	TaskID  uint64
	Content string
}

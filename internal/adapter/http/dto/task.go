package dto

import "time"

type TaskItem struct {
	ID                  uint64   `json:"id"`
	TaskList            uint64   `json:"task_list"`
	TaskListName        string   `json:"task_list_name"`
	TaskListSlug        string   `json:"task_list_slug"`
	Title               string   `json:"title"`
	Description         string   `json:"description"`
	Status              string   `json:"status"`
	Priority            string   `json:"priority"`
	CreatedBy           *UserRef `json:"created_by"`
	AssignedTo          *UserRef `json:"assigned_to"`
	DueDate             *string  `json:"due_date"`
	CompletedAt         *string  `json:"completed_at"`
	IsArchived          bool     `json:"is_archived"`
	IsOverdue           bool     `json:"is_overdue"`
	TimeUntilDueSeconds *int64   `json:"time_until_due_seconds"`
	CreatedAt           string   `json:"created_at"`
	UpdatedAt           string   `json:"updated_at"`
}

type CreateTaskRequest struct {
	TaskList     uint64     `json:"task_list" validate:"required,gt=0"`
	Title        string     `json:"title" validate:"required,max=200"`
	Description  string     `json:"description" validate:"max=10000"`
	Status       *string    `json:"status" validate:"omitempty,oneof=pending in_progress completed cancelled"`
	Priority     *string    `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	AssignedToID *uint64    `json:"assigned_to_id" validate:"omitempty,gt=0"`
	DueDate      *time.Time `json:"due_date"`
}

type UpdateTaskRequest struct {
	Title        *string    `json:"title" validate:"omitempty,max=200"`
	Description  *string    `json:"description" validate:"omitempty,max=10000"`
	Status       *string    `json:"status" validate:"omitempty,oneof=pending in_progress completed cancelled"`
	Priority     *string    `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	AssignedToID *uint64    `json:"assigned_to_id" validate:"omitempty,gt=0"`
	DueDate      *time.Time `json:"due_date"`
	IsArchived   *bool      `json:"is_archived"`
}

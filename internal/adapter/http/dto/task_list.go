package dto

type TaskListItem struct {
	ID          uint64   `json:"id"`
	Name        string   `json:"name"`
	Slug        string   `json:"slug"`
	Description string   `json:"description"`
	CreatedBy   uint64   `json:"created_by"`
	Members     []uint64 `json:"members"`
	Color       string   `json:"color"`
	IsArchived  bool     `json:"is_archived"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

type CreateTaskListRequest struct {
	Name        string   `json:"name" validate:"required,max=200"`
	Description string   `json:"description" validate:"max=10000"`
	Color       *string  `json:"color" validate:"omitempty,rrggbb"`
	Members     []uint64 `json:"members" validate:"omitempty,dive,gt=0"`
}

type UpdateTaskListRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=200"`
	Description *string `json:"description" validate:"omitempty,max=10000"`
	Color       *string `json:"color" validate:"omitempty,rrggbb"`
	IsArchived  *bool   `json:"is_archived"`
}

type AddMemberRequest struct {
	UserID uint64 `json:"user_id" validate:"required,gt=0"`
}

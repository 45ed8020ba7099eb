package domain

import "time"

const DefaultTaskListColor = "#3498db"

type TaskList struct {
	ID          uint64
	Name        string
	Slug        string
	Description string
	OwnerID     uint64
	MemberIDs   []uint64
	Color       string
	IsArchived  bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasAccess reports whether the user may see the list. The owner always has
// access even when absent from MemberIDs.
func (l TaskList) HasAccess(userID uint64) bool {
	if l.OwnerID == userID {
		return true
	}
	for _, id := range l.MemberIDs {
		if id == userID {
			return true
		}
	}
	return false
}

type TaskListFilter struct {
	UserID   uint64
	Archived *bool
}

type CreateTaskListInput struct {
	Name        string
	Description string
	Color       string
	MemberIDs   []uint64
}

type UpdateTaskListInput struct {
	Name        *string
	Description *string
	Color       *string
	IsArchived  *bool
}

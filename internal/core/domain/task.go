package domain

import "time"

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusCancelled  TaskStatus = "cancelled"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted, TaskStatusCancelled:
		return true
	}
	return false
}

// Closed statuses never count as overdue.
func (s TaskStatus) Closed() bool {
	return s == TaskStatusCompleted || s == TaskStatusCancelled
}

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
	TaskPriorityUrgent TaskPriority = "urgent"
)

func (p TaskPriority) Valid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh, TaskPriorityUrgent:
		return true
	}
	return false
}

type Task struct {
	ID            uint64
	TaskListID    uint64
	CreatedByID   uint64
	AssignedToID  *uint64
	Title         string
	Description   string
	Status        TaskStatus
	Priority      TaskPriority
	DueDate       *time.Time
	CompletedAt   *time.Time
	DueRemindedAt *time.Time
	IsArchived    bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
	CreatedBy     *UserRef
	AssignedTo    *UserRef
	TaskListSlug  string
	TaskListName  string
}

// UserRef is the short user projection embedded in task payloads.
type UserRef struct {
	ID       uint64
	Username string
}

// IsOverdue must be evaluated on every read; it is never persisted.
func (t Task) IsOverdue(now time.Time) bool {
	if t.DueDate == nil || t.Status.Closed() {
		return false
	}
	return now.After(*t.DueDate)
}

// TimeUntilDue returns the remaining time when the due date lies ahead of now.
func (t Task) TimeUntilDue(now time.Time) (time.Duration, bool) {
	if t.DueDate == nil || !t.DueDate.After(now) {
		return 0, false
	}
	return t.DueDate.Sub(now), true
}

// MarkAsCompleted is the only transition that stamps CompletedAt. Calling it on
// an already completed task re-stamps the timestamp.
func (t *Task) MarkAsCompleted(now time.Time) {
	t.Status = TaskStatusCompleted
	completedAt := now
	t.CompletedAt = &completedAt
}

func (t Task) IsAssignedTo(userID uint64) bool {
	return t.AssignedToID != nil && *t.AssignedToID == userID
}

type TaskFilter struct {
	UserID       uint64
	TaskListID   *uint64
	Status       *TaskStatus
	Priority     *TaskPriority
	AssignedToID *uint64
	Archived     *bool
}

type CreateTaskInput struct {
	TaskListID   uint64
	Title        string
	Description  string
	Status       TaskStatus
	Priority     TaskPriority
	AssignedToID *uint64
	DueDate      *time.Time
}

// UpdateTaskInput carries PATCH semantics: nil means untouched, the *Set flags
// distinguish an explicit null from an absent field.
type UpdateTaskInput struct {
	Title           *string
	Description     *string
	Status          *TaskStatus
	Priority        *TaskPriority
	AssignedToID    *uint64
	AssignedToIDSet bool
	DueDate         *time.Time
	DueDateSet      bool
	IsArchived      *bool
}

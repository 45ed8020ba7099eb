package db

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"creatingtasks/internal/core/domain"
	"creatingtasks/internal/core/ports"
)

const selectTaskQuery = `
SELECT
  t.id, t.task_list_id, t.created_by_id, t.assigned_to_id, t.title, t.description,
  t.status, t.priority, t.due_date, t.completed_at, t.due_reminded_at, t.is_archived,
  t.created_at, t.updated_at,
  l.name AS task_list_name,
  l.slug AS task_list_slug,
  c.username AS created_by_username,
  a.username AS assigned_to_username
FROM tasks t
JOIN task_lists l ON l.id = t.task_list_id
JOIN users c ON c.id = t.created_by_id
LEFT JOIN users a ON a.id = t.assigned_to_id
`

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID                 uint64         `db:"id"`
	TaskListID         uint64         `db:"task_list_id"`
	CreatedByID        uint64         `db:"created_by_id"`
	AssignedToID       sql.NullInt64  `db:"assigned_to_id"`
	Title              string         `db:"title"`
	Description        string         `db:"description"`
	Status             string         `db:"status"`
	Priority           string         `db:"priority"`
	DueDate            sql.NullTime   `db:"due_date"`
	CompletedAt        sql.NullTime   `db:"completed_at"`
	DueRemindedAt      sql.NullTime   `db:"due_reminded_at"`
	IsArchived         bool           `db:"is_archived"`
	CreatedAt          time.Time      `db:"created_at"`
	UpdatedAt          time.Time      `db:"updated_at"`
	TaskListName       string         `db:"task_list_name"`
	TaskListSlug       string         `db:"task_list_slug"`
	CreatedByUsername  string         `db:"created_by_username"`
	AssignedToUsername sql.NullString `db:"assigned_to_username"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// ListTasks only returns tasks of lists the filter's user can access.
func (r *TaskRepository) ListTasks(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error) {
	conditions := []string{accessibleListsCondition}
	args := []any{filter.UserID, filter.UserID}

	if filter.TaskListID != nil {
		conditions = append(conditions, "t.task_list_id = ?")
		args = append(args, *filter.TaskListID)
	}
	if filter.Status != nil {
		conditions = append(conditions, "t.status = ?")
		args = append(args, string(*filter.Status))
	}
	if filter.Priority != nil {
		conditions = append(conditions, "t.priority = ?")
		args = append(args, string(*filter.Priority))
	}
	if filter.AssignedToID != nil {
		conditions = append(conditions, "t.assigned_to_id = ?")
		args = append(args, *filter.AssignedToID)
	}
	if filter.Archived != nil {
		conditions = append(conditions, "t.is_archived = ?")
		args = append(args, *filter.Archived)
	}

	query := selectTaskQuery + "WHERE " + strings.Join(conditions, " AND ") + " ORDER BY t.created_at DESC, t.id DESC"
	return r.selectTasks(ctx, query, args...)
}

func (r *TaskRepository) GetTask(ctx context.Context, taskID uint64) (domain.Task, error) {
	var row taskRow
	if err := r.db.GetContext(ctx, &row, selectTaskQuery+"WHERE t.id = ?", taskID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}
	return mapTaskRowToDomainTask(row), nil
}

func (r *TaskRepository) CreateTask(ctx context.Context, createdByID uint64, input domain.CreateTaskInput) (domain.Task, error) {
	res, err := r.db.ExecContext(ctx, `
INSERT INTO tasks (task_list_id, created_by_id, assigned_to_id, title, description, status, priority, due_date)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		input.TaskListID, createdByID, input.AssignedToID, input.Title, input.Description,
		string(input.Status), string(input.Priority), input.DueDate,
	)
	if err != nil {
		return domain.Task{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Task{}, err
	}
	return r.GetTask(ctx, uint64(id))
}

// UpdateTask never writes completed_at. Moving the due date clears the
// reminder stamp so the new date gets its own reminder.
func (r *TaskRepository) UpdateTask(ctx context.Context, taskID uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	sets := make([]string, 0, 8)
	args := make([]any, 0, 9)
	if input.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *input.Title)
	}
	if input.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *input.Description)
	}
	if input.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, string(*input.Status))
	}
	if input.Priority != nil {
		sets = append(sets, "priority = ?")
		args = append(args, string(*input.Priority))
	}
	if input.AssignedToIDSet {
		sets = append(sets, "assigned_to_id = ?")
		args = append(args, input.AssignedToID)
	}
	if input.DueDateSet {
		sets = append(sets, "due_date = ?", "due_reminded_at = NULL")
		args = append(args, input.DueDate)
	}
	if input.IsArchived != nil {
		sets = append(sets, "is_archived = ?")
		args = append(args, *input.IsArchived)
	}

	if len(sets) > 0 {
		args = append(args, taskID)
		if _, err := r.db.ExecContext(ctx, "UPDATE tasks SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...); err != nil {
			return domain.Task{}, err
		}
	}
	return r.GetTask(ctx, taskID)
}

func (r *TaskRepository) CompleteTask(ctx context.Context, task domain.Task) (domain.Task, error) {
	if _, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET status = ?, completed_at = ? WHERE id = ?`,
		string(task.Status), task.CompletedAt, task.ID,
	); err != nil {
		return domain.Task{}, err
	}
	return r.GetTask(ctx, task.ID)
}

func (r *TaskRepository) DeleteTask(ctx context.Context, taskID uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, taskID)
	if err != nil {
		return err
	}
	return requireAffected(res, domain.ErrTaskNotFound)
}

// ListDueForReminder returns assigned open tasks due before the cutoff that
// have not been reminded yet.
func (r *TaskRepository) ListDueForReminder(ctx context.Context, dueBefore time.Time) ([]domain.Task, error) {
	query := selectTaskQuery + `
WHERE t.due_date IS NOT NULL
  AND t.due_date <= ?
  AND t.due_reminded_at IS NULL
  AND t.assigned_to_id IS NOT NULL
  AND t.is_archived = FALSE
  AND t.status IN (?, ?)
ORDER BY t.due_date, t.id`
	return r.selectTasks(ctx, query, dueBefore, string(domain.TaskStatusPending), string(domain.TaskStatusInProgress))
}

func (r *TaskRepository) MarkDueReminded(ctx context.Context, taskID uint64, remindedAt time.Time) error {
	res, err := r.db.ExecContext(ctx, `UPDATE tasks SET due_reminded_at = ? WHERE id = ?`, remindedAt, taskID)
	if err != nil {
		return err
	}
	return requireAffected(res, domain.ErrTaskNotFound)
}

func (r *TaskRepository) selectTasks(ctx context.Context, query string, args ...any) ([]domain.Task, error) {
	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
	}

	return tasks, nil
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	task := domain.Task{
		ID:           row.ID,
		TaskListID:   row.TaskListID,
		CreatedByID:  row.CreatedByID,
		Title:        row.Title,
		Description:  row.Description,
		Status:       domain.TaskStatus(row.Status),
		Priority:     domain.TaskPriority(row.Priority),
		IsArchived:   row.IsArchived,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
		TaskListName: row.TaskListName,
		TaskListSlug: row.TaskListSlug,
		CreatedBy: &domain.UserRef{
			ID:       row.CreatedByID,
			Username: row.CreatedByUsername,
		},
	}

	if row.AssignedToID.Valid {
		id := uint64(row.AssignedToID.Int64)
		task.AssignedToID = &id
		task.AssignedTo = &domain.UserRef{ID: id, Username: row.AssignedToUsername.String}
	}

	if row.DueDate.Valid {
		value := row.DueDate.Time
		task.DueDate = &value
	}

	if row.CompletedAt.Valid {
		value := row.CompletedAt.Time
		task.CompletedAt = &value
	}

	if row.DueRemindedAt.Valid {
		value := row.DueRemindedAt.Time
		task.DueRemindedAt = &value
	}

	return task
}

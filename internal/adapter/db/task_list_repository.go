package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"creatingtasks/internal/core/domain"
	"creatingtasks/internal/core/ports"
)

const selectTaskListQuery = `
SELECT l.id, l.name, l.slug, l.description, l.created_by_id, l.color, l.is_archived, l.created_at, l.updated_at
FROM task_lists l
`

// accessibleListsCondition restricts task_lists aliased as l to those owned by
// or shared with the bound user id (bound twice).
const accessibleListsCondition = `(l.created_by_id = ? OR EXISTS (
  SELECT 1 FROM task_list_members m WHERE m.task_list_id = l.id AND m.user_id = ?
))`

type TaskListRepository struct {
	db *sqlx.DB
}

type taskListRow struct {
	ID          uint64    `db:"id"`
	Name        string    `db:"name"`
	Slug        string    `db:"slug"`
	Description string    `db:"description"`
	CreatedByID uint64    `db:"created_by_id"`
	Color       string    `db:"color"`
	IsArchived  bool      `db:"is_archived"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type memberRow struct {
	TaskListID uint64 `db:"task_list_id"`
	UserID     uint64 `db:"user_id"`
}

var _ ports.TaskListRepository = (*TaskListRepository)(nil)

func NewTaskListRepository(db *sqlx.DB) *TaskListRepository {
	return &TaskListRepository{db: db}
}

func (r *TaskListRepository) ListTaskLists(ctx context.Context, filter domain.TaskListFilter) ([]domain.TaskList, error) {
	query := selectTaskListQuery + `WHERE ` + accessibleListsCondition
	args := []any{filter.UserID, filter.UserID}
	if filter.Archived != nil {
		query += ` AND l.is_archived = ?`
		args = append(args, *filter.Archived)
	}
	query += ` ORDER BY l.created_at DESC, l.id DESC`

	var rows []taskListRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []domain.TaskList{}, nil
	}

	ids := make([]uint64, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	members, err := r.membersOf(ctx, ids)
	if err != nil {
		return nil, err
	}

	lists := make([]domain.TaskList, 0, len(rows))
	for _, row := range rows {
		lists = append(lists, mapTaskListRowToDomainTaskList(row, members[row.ID]))
	}
	return lists, nil
}

func (r *TaskListRepository) GetTaskList(ctx context.Context, taskListID uint64) (domain.TaskList, error) {
	var row taskListRow
	if err := r.db.GetContext(ctx, &row, selectTaskListQuery+`WHERE l.id = ?`, taskListID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.TaskList{}, domain.ErrTaskListNotFound
		}
		return domain.TaskList{}, err
	}

	members, err := r.membersOf(ctx, []uint64{taskListID})
	if err != nil {
		return domain.TaskList{}, err
	}
	return mapTaskListRowToDomainTaskList(row, members[taskListID]), nil
}

func (r *TaskListRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	if err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM task_lists WHERE slug = ?)`, slug); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *TaskListRepository) CreateTaskList(ctx context.Context, ownerID uint64, slug string, input domain.CreateTaskListInput) (domain.TaskList, error) {
	var taskListID uint64
	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO task_lists (name, slug, description, created_by_id, color) VALUES (?, ?, ?, ?, ?)`,
			input.Name, slug, input.Description, ownerID, input.Color,
		)
		if err != nil {
			if isDuplicateEntry(err) {
				return domain.ErrSlugTaken
			}
			return err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		taskListID = uint64(id)

		for _, memberID := range input.MemberIDs {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO task_list_members (task_list_id, user_id) VALUES (?, ?)`,
				taskListID, memberID,
			); err != nil {
				return fmt.Errorf("insert member %d: %w", memberID, err)
			}
		}
		return nil
	})
	if err != nil {
		return domain.TaskList{}, err
	}
	return r.GetTaskList(ctx, taskListID)
}

func (r *TaskListRepository) UpdateTaskList(ctx context.Context, taskListID uint64, input domain.UpdateTaskListInput) (domain.TaskList, error) {
	sets := make([]string, 0, 4)
	args := make([]any, 0, 5)
	if input.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *input.Name)
	}
	if input.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *input.Description)
	}
	if input.Color != nil {
		sets = append(sets, "color = ?")
		args = append(args, *input.Color)
	}
	if input.IsArchived != nil {
		sets = append(sets, "is_archived = ?")
		args = append(args, *input.IsArchived)
	}

	if len(sets) > 0 {
		args = append(args, taskListID)
		if _, err := r.db.ExecContext(ctx, `UPDATE task_lists SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...); err != nil {
			return domain.TaskList{}, err
		}
	}
	return r.GetTaskList(ctx, taskListID)
}

func (r *TaskListRepository) DeleteTaskList(ctx context.Context, taskListID uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM task_lists WHERE id = ?`, taskListID)
	if err != nil {
		return err
	}
	return requireAffected(res, domain.ErrTaskListNotFound)
}

func (r *TaskListRepository) AddMember(ctx context.Context, taskListID, userID uint64) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO task_list_members (task_list_id, user_id) VALUES (?, ?)`, taskListID, userID)
	if isDuplicateEntry(err) {
		return domain.ErrMemberAlreadyAdded
	}
	return err
}

func (r *TaskListRepository) RemoveMember(ctx context.Context, taskListID, userID uint64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM task_list_members WHERE task_list_id = ? AND user_id = ?`, taskListID, userID)
	return err
}

func (r *TaskListRepository) membersOf(ctx context.Context, taskListIDs []uint64) (map[uint64][]uint64, error) {
	query, args, err := sqlx.In(
		`SELECT task_list_id, user_id FROM task_list_members WHERE task_list_id IN (?) ORDER BY task_list_id, user_id`,
		taskListIDs,
	)
	if err != nil {
		return nil, err
	}

	var rows []memberRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, err
	}

	members := make(map[uint64][]uint64, len(taskListIDs))
	for _, row := range rows {
		members[row.TaskListID] = append(members[row.TaskListID], row.UserID)
	}
	return members, nil
}

func mapTaskListRowToDomainTaskList(row taskListRow, memberIDs []uint64) domain.TaskList {
	if memberIDs == nil {
		memberIDs = []uint64{}
	}
	return domain.TaskList{
		ID:          row.ID,
		Name:        row.Name,
		Slug:        row.Slug,
		Description: row.Description,
		OwnerID:     row.CreatedByID,
		MemberIDs:   memberIDs,
		Color:       row.Color,
		IsArchived:  row.IsArchived,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

package validation

import (
	"encoding/json"
	"strings"

	"creatingtasks/internal/adapter/http/dto"
	"creatingtasks/internal/core/domain"
)

func BuildCreateTaskInput(req dto.CreateTaskRequest, raw map[string]json.RawMessage) (domain.CreateTaskInput, error) {
	if err := rejectNulls(raw, "task_list", "title", "status", "priority"); err != nil {
		return domain.CreateTaskInput{}, err
	}
	if err := Struct(req); err != nil {
		return domain.CreateTaskInput{}, err
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.CreateTaskInput{}, required("title")
	}

	status := domain.TaskStatusPending
	if req.Status != nil {
		status = domain.TaskStatus(*req.Status)
	}

	priority := domain.TaskPriorityMedium
	if req.Priority != nil {
		priority = domain.TaskPriority(*req.Priority)
	}

	return domain.CreateTaskInput{
		TaskListID:   req.TaskList,
		Title:        title,
		Description:  strings.TrimSpace(req.Description),
		Status:       status,
		Priority:     priority,
		AssignedToID: req.AssignedToID,
		DueDate:      req.DueDate,
	}, nil
}

// BuildUpdateTaskInput keeps PATCH semantics: an explicit null for
// assigned_to_id or due_date clears the value, absence leaves it untouched.
func BuildUpdateTaskInput(req dto.UpdateTaskRequest, raw map[string]json.RawMessage) (domain.UpdateTaskInput, error) {
	if !hasAnyField(raw, "title", "description", "status", "priority", "assigned_to_id", "due_date", "is_archived") {
		return domain.UpdateTaskInput{}, ErrInvalidPayload
	}
	if err := rejectNulls(raw, "title", "description", "status", "priority", "is_archived"); err != nil {
		return domain.UpdateTaskInput{}, err
	}
	if err := Struct(req); err != nil {
		return domain.UpdateTaskInput{}, err
	}

	input := domain.UpdateTaskInput{
		AssignedToID:    req.AssignedToID,
		AssignedToIDSet: hasJSONField(raw, "assigned_to_id"),
		DueDate:         req.DueDate,
		DueDateSet:      hasJSONField(raw, "due_date"),
		IsArchived:      req.IsArchived,
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return domain.UpdateTaskInput{}, required("title")
		}
		input.Title = &title
	}
	if req.Description != nil {
		description := strings.TrimSpace(*req.Description)
		input.Description = &description
	}
	if req.Status != nil {
		status := domain.TaskStatus(*req.Status)
		input.Status = &status
	}
	if req.Priority != nil {
		priority := domain.TaskPriority(*req.Priority)
		input.Priority = &priority
	}

	return input, nil
}

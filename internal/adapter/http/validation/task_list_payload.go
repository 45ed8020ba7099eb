package validation

import (
	"encoding/json"
	"strings"

	"creatingtasks/internal/adapter/http/dto"
	"creatingtasks/internal/core/domain"
)

func BuildCreateTaskListInput(req dto.CreateTaskListRequest) (domain.CreateTaskListInput, error) {
	if err := Struct(req); err != nil {
		return domain.CreateTaskListInput{}, err
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.CreateTaskListInput{}, required("name")
	}

	color := domain.DefaultTaskListColor
	if req.Color != nil {
		color = strings.ToLower(*req.Color)
	}

	return domain.CreateTaskListInput{
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		Color:       color,
		MemberIDs:   req.Members,
	}, nil
}

func BuildUpdateTaskListInput(req dto.UpdateTaskListRequest, raw map[string]json.RawMessage) (domain.UpdateTaskListInput, error) {
	if !hasAnyField(raw, "name", "description", "color", "is_archived") {
		return domain.UpdateTaskListInput{}, ErrInvalidPayload
	}
	if err := rejectNulls(raw, "name", "description", "color", "is_archived"); err != nil {
		return domain.UpdateTaskListInput{}, err
	}
	if err := Struct(req); err != nil {
		return domain.UpdateTaskListInput{}, err
	}

	input := domain.UpdateTaskListInput{
		Description: req.Description,
		IsArchived:  req.IsArchived,
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return domain.UpdateTaskListInput{}, required("name")
		}
		input.Name = &name
	}
	if req.Color != nil {
		color := strings.ToLower(*req.Color)
		input.Color = &color
	}
	return input, nil
}

func ValidateAddMember(req dto.AddMemberRequest) error {
	return Struct(req)
}

package mapper

import (
	"creatingtasks/internal/adapter/http/dto"
	"creatingtasks/internal/core/domain"
)

func ToTaskListItems(lists []domain.TaskList) []dto.TaskListItem {
	items := make([]dto.TaskListItem, 0, len(lists))
	for _, list := range lists {
		items = append(items, ToTaskListItem(list))
	}
	return items
}

func ToTaskListItem(list domain.TaskList) dto.TaskListItem {
	members := list.MemberIDs
	if members == nil {
		members = []uint64{}
	}
	return dto.TaskListItem{
		ID:          list.ID,
		Name:        list.Name,
		Slug:        list.Slug,
		Description: list.Description,
		CreatedBy:   list.OwnerID,
		Members:     members,
		Color:       list.Color,
		IsArchived:  list.IsArchived,
		CreatedAt:   formatTime(list.CreatedAt),
		UpdatedAt:   formatTime(list.UpdatedAt),
	}
}

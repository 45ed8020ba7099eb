package mapper

import (
	"creatingtasks/internal/adapter/http/dto"
	"creatingtasks/internal/core/domain"
)

func ToUserItems(users []domain.User) []dto.UserItem {
	items := make([]dto.UserItem, 0, len(users))
	for _, user := range users {
		items = append(items, ToUserItem(user))
	}
	return items
}

func ToUserItem(user domain.User) dto.UserItem {
	return dto.UserItem{
		ID:               user.ID,
		Username:         user.Username,
		Email:            user.Email,
		FirstName:        user.FirstName,
		LastName:         user.LastName,
		TelegramUsername: user.TelegramUsername,
		Profile: dto.ProfileItem{
			AvatarURL:             user.Profile.AvatarURL,
			Timezone:              user.Profile.Timezone,
			EmailNotifications:    user.Profile.EmailNotifications,
			TelegramNotifications: user.Profile.TelegramNotifications,
		},
	}
}

func ToSessionResponse(session domain.Session) dto.SessionResponse {
	return dto.SessionResponse{Token: session.Token, User: ToUserItem(session.User)}
}

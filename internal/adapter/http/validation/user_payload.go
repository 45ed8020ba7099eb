package validation

import (
	"encoding/json"
	"strings"

	"creatingtasks/internal/adapter/http/dto"
	"creatingtasks/internal/core/domain"
)

func BuildRegisterInput(req dto.RegisterRequest) (domain.RegisterInput, error) {
	if err := Struct(req); err != nil {
		return domain.RegisterInput{}, err
	}
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return domain.RegisterInput{}, required("username")
	}
	return domain.RegisterInput{
		Username:  username,
		Email:     strings.TrimSpace(req.Email),
		Password:  req.Password,
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
	}, nil
}

func ValidateLogin(req dto.LoginRequest) error {
	return Struct(req)
}

func BuildTelegramLoginInput(req dto.TelegramLoginRequest) (domain.TelegramLoginInput, error) {
	if err := Struct(req); err != nil {
		return domain.TelegramLoginInput{}, err
	}
	var username *string
	if req.TelegramUsername != nil {
		if value := strings.TrimPrefix(strings.TrimSpace(*req.TelegramUsername), "@"); value != "" {
			username = &value
		}
	}
	return domain.TelegramLoginInput{
		Email:            strings.TrimSpace(req.Email),
		TelegramID:       req.TelegramID,
		TelegramUsername: username,
	}, nil
}

func BuildUpdateProfileInput(req dto.UpdateProfileRequest, raw map[string]json.RawMessage) (domain.UpdateProfileInput, error) {
	if !hasAnyField(raw, "timezone", "email_notifications", "telegram_notifications", "avatar") {
		return domain.UpdateProfileInput{}, ErrInvalidPayload
	}
	if err := rejectNulls(raw, "timezone", "email_notifications", "telegram_notifications"); err != nil {
		return domain.UpdateProfileInput{}, err
	}
	if err := Struct(req); err != nil {
		return domain.UpdateProfileInput{}, err
	}
	return domain.UpdateProfileInput{
		Timezone:              req.Timezone,
		EmailNotifications:    req.EmailNotifications,
		TelegramNotifications: req.TelegramNotifications,
		AvatarURL:             req.AvatarURL,
		AvatarURLSet:          hasJSONField(raw, "avatar"),
	}, nil
}

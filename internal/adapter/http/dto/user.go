package dto

type ProfileItem struct {
	AvatarURL             *string `json:"avatar"`
	Timezone              string  `json:"timezone"`
	EmailNotifications    bool    `json:"email_notifications"`
	TelegramNotifications bool    `json:"telegram_notifications"`
}

type UserItem struct {
	ID               uint64      `json:"id"`
	Username         string      `json:"username"`
	Email            string      `json:"email"`
	FirstName        string      `json:"first_name"`
	LastName         string      `json:"last_name"`
	TelegramUsername *string     `json:"telegram_username"`
	Profile          ProfileItem `json:"profile"`
}

// UserRef is the short user projection embedded in other payloads.
type UserRef struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
}

type RegisterRequest struct {
	Username  string `json:"username" validate:"required,max=150"`
	Email     string `json:"email" validate:"required,email,max=254"`
	Password  string `json:"password" validate:"required,min=8,max=128"`
	FirstName string `json:"first_name" validate:"max=150"`
	LastName  string `json:"last_name" validate:"max=150"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type TelegramLoginRequest struct {
	Email            string  `json:"email" validate:"required,email"`
	TelegramID       int64   `json:"telegram_id" validate:"required,gt=0"`
	TelegramUsername *string `json:"telegram_username" validate:"omitempty,max=100"`
}

type SessionResponse struct {
	Token string   `json:"token"`
	User  UserItem `json:"user"`
}

type UpdateProfileRequest struct {
	Timezone              *string `json:"timezone" validate:"omitempty,timezone"`
	EmailNotifications    *bool   `json:"email_notifications"`
	TelegramNotifications *bool   `json:"telegram_notifications"`
	AvatarURL             *string `json:"avatar" validate:"omitempty,url,max=500"`
}

package domain

import "time"

const DefaultTimezone = "UTC"

type User struct {
	ID               uint64
	Username         string
	Email            string
	PasswordHash     string
	FirstName        string
	LastName         string
	TelegramID       *int64
	TelegramUsername *string
	PhoneNumber      *string
	IsActive         bool
	CreatedAt        time.Time
	Profile          Profile
}

// Profile is created together with its user and never exists on its own.
type Profile struct {
	AvatarURL             *string
	Timezone              string
	EmailNotifications    bool
	TelegramNotifications bool
}

func DefaultProfile() Profile {
	return Profile{
		Timezone:              DefaultTimezone,
		EmailNotifications:    true,
		TelegramNotifications: true,
	}
}

// WantsPush reports whether live notification pushes are enabled for the user.
func (p Profile) WantsPush() bool {
	return p.EmailNotifications || p.TelegramNotifications
}

type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
}

type CreateUserInput struct {
	Username     string
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Profile      Profile
}

type TelegramLoginInput struct {
	Email            string
	TelegramID       int64
	TelegramUsername *string
}

type UpdateProfileInput struct {
	Timezone              *string
	EmailNotifications    *bool
	TelegramNotifications *bool
	AvatarURL             *string
	AvatarURLSet          bool
}

// Session is what a successful login hands back to the transport layer.
type Session struct {
	User  User
	Token string
}

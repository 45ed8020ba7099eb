package domain

import "errors"

var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("forbidden")
	ErrInvalidInput    = errors.New("invalid input")

	ErrUserNotFound         = errors.New("user not found")
	ErrUserInactive         = errors.New("user is inactive")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrUsernameTaken        = errors.New("username already taken")
	ErrEmailTaken           = errors.New("email already taken")
	ErrTelegramIDTaken      = errors.New("telegram id already linked")
	ErrTaskListNotFound     = errors.New("task list not found")
	ErrSlugTaken            = errors.New("slug already taken")
	ErrMemberAlreadyAdded   = errors.New("user is already a member")
	ErrCannotRemoveOwner    = errors.New("owner cannot be removed from the list")
	ErrTaskNotFound         = errors.New("task not found")
	ErrAssigneeNotMember    = errors.New("assignee is not a member of the list")
	ErrCommentNotFound      = errors.New("comment not found")
	ErrNotificationNotFound = errors.New("notification not found")
)

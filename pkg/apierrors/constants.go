package apierrors

const (
	MsgInternalError    = "internalError"
	MsgUnauthenticated  = "unauthenticated"
	MsgForbidden        = "forbidden"
	MsgInvalidPayload   = "invalidPayload"
	MsgValidationFailed = "validationFailed"
	MsgInvalidID        = "invalidID"

	MsgInvalidCredentials = "invalidCredentials"
	MsgUserInactive       = "userInactive"
	MsgUserNotFound       = "userNotFound"
	MsgUsernameTaken      = "usernameTaken"
	MsgEmailTaken         = "emailTaken"
	MsgTelegramIDTaken    = "telegramIDTaken"

	MsgTaskListNotFound   = "taskListNotFound"
	MsgSlugTaken          = "slugTaken"
	MsgMemberAlreadyAdded = "memberAlreadyAdded"
	MsgCannotRemoveOwner  = "cannotRemoveOwner"

	MsgTaskNotFound      = "taskNotFound"
	MsgAssigneeNotMember = "assigneeNotMember"
	MsgFailListTask      = "errorListTask"
	MsgFailCreateTask    = "failCreateTask"

	MsgCommentNotFound      = "commentNotFound"
	MsgNotificationNotFound = "notificationNotFound"
)

package realtime

import (
	"context"
	"strconv"
	"strings"
)

const (
	taskListGroupPrefix     = "tasks:"
	notificationGroupPrefix = "notifications:"
)

func TaskListGroup(taskListID uint64) string {
	return taskListGroupPrefix + strconv.FormatUint(taskListID, 10)
}

func NotificationGroup(userID uint64) string {
	return notificationGroupPrefix + strconv.FormatUint(userID, 10)
}

// MembershipChecker reports task list access for the tasks:<id> groups.
type MembershipChecker interface {
	IsMember(ctx context.Context, userID, taskListID uint64) (bool, error)
}

// GroupAuthorizer admits members of a task list to its group and a user only
// to their own notification group. Unknown group keys are refused.
func GroupAuthorizer(membership MembershipChecker) Authorizer {
	return func(ctx context.Context, userID uint64, group string) (bool, error) {
		if id, ok := groupID(group, taskListGroupPrefix); ok {
			return membership.IsMember(ctx, userID, id)
		}
		if id, ok := groupID(group, notificationGroupPrefix); ok {
			return id == userID, nil
		}
		return false, nil
	}
}

func groupID(group, prefix string) (uint64, bool) {
	raw, ok := strings.CutPrefix(group, prefix)
	if !ok {
		return 0, false
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

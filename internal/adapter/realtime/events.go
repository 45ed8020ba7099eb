package realtime

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"creatingtasks/internal/core/domain"
	"creatingtasks/internal/core/ports"
)

const (
	EventTaskCreated  = "task_created"
	EventTaskUpdated  = "task_updated"
	EventTaskDeleted  = "task_deleted"
	EventNotification = "notification"
)

// Envelope is the JSON frame pushed to task list sockets. Notification frames
// are the notification fields themselves plus "type".
type Envelope struct {
	Type   string `json:"type"`
	Task   any    `json:"task,omitempty"`
	TaskID uint64 `json:"task_id,omitempty"`
}

// Encoders turn domain values into their wire representation, which is the
// same shape the REST API returns.
type Encoders struct {
	Task         func(domain.Task) any
	Notification func(domain.Notification) any
}

// Events publishes domain changes to the groups that watch them.
type Events struct {
	publisher Publisher
	encoders  Encoders
}

var _ ports.Broadcaster = (*Events)(nil)

func NewEvents(publisher Publisher, encoders Encoders) *Events {
	return &Events{publisher: publisher, encoders: encoders}
}

func (e *Events) BroadcastTaskCreated(ctx context.Context, task domain.Task) {
	e.publish(ctx, TaskListGroup(task.TaskListID), Envelope{Type: EventTaskCreated, Task: e.encoders.Task(task)})
}

func (e *Events) BroadcastTaskUpdated(ctx context.Context, task domain.Task) {
	e.publish(ctx, TaskListGroup(task.TaskListID), Envelope{Type: EventTaskUpdated, Task: e.encoders.Task(task)})
}

func (e *Events) BroadcastTaskDeleted(ctx context.Context, taskListID, taskID uint64) {
	e.publish(ctx, TaskListGroup(taskListID), Envelope{Type: EventTaskDeleted, TaskID: taskID})
}

func (e *Events) SendNotification(ctx context.Context, notification domain.Notification) {
	group := NotificationGroup(notification.UserID)
	payload, err := flatFrame(EventNotification, e.encoders.Notification(notification))
	if err != nil {
		logEncodeFailure(group, EventNotification, err)
		return
	}
	e.publisher.Publish(ctx, group, payload)
}

func (e *Events) publish(ctx context.Context, group string, envelope Envelope) {
	payload, err := json.Marshal(envelope)
	if err != nil {
		logEncodeFailure(group, envelope.Type, err)
		return
	}
	e.publisher.Publish(ctx, group, payload)
}

// flatFrame encodes body as a JSON object and sets its "type" key.
func flatFrame(eventType string, body any) ([]byte, error) {
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("%s body is not a JSON object: %w", eventType, err)
	}
	fields["type"], err = json.Marshal(eventType)
	if err != nil {
		return nil, err
	}
	return json.Marshal(fields)
}

func logEncodeFailure(group, eventType string, err error) {
	zap.L().Warn("failed to encode websocket event",
		zap.String("group", group),
		zap.String("type", eventType),
		zap.Error(err),
	)
}

// RebroadcastTaskUpdates returns the inbound handler for task list sockets:
// frames of type task_updated are relayed verbatim to the whole group,
// sender included. Anything else is ignored.
func RebroadcastTaskUpdates(publisher Publisher, group string) MessageHandler {
	return func(ctx context.Context, client *Client, payload []byte) {
		var frame struct {
			Type string `json:"type"`
		}
		if err := json.Unmarshal(payload, &frame); err != nil {
			zap.L().Debug("ignoring malformed websocket frame", zap.String("client_id", client.ID), zap.Error(err))
			return
		}
		if frame.Type != EventTaskUpdated {
			zap.L().Debug("ignoring websocket frame", zap.String("client_id", client.ID), zap.String("type", frame.Type))
			return
		}
		publisher.Publish(ctx, group, payload)
	}
}

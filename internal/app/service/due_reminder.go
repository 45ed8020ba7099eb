package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"creatingtasks/internal/core/domain"
	"creatingtasks/internal/core/ports"
)

type DueReminderConfig struct {
	Interval time.Duration
	Window   time.Duration
}

func DefaultDueReminderConfig() DueReminderConfig {
	return DueReminderConfig{
		Interval: 15 * time.Minute,
		Window:   24 * time.Hour,
	}
}

// DueReminder periodically sends a single task_due notification to the
// assignee of every open task whose due date enters the reminder window.
type DueReminder struct {
	config         DueReminderConfig
	taskRepository ports.TaskRepository
	notifier       ports.Notifier
	now            func() time.Time
}

func NewDueReminder(config DueReminderConfig, taskRepository ports.TaskRepository, notifier ports.Notifier) *DueReminder {
	return &DueReminder{
		config:         config,
		taskRepository: taskRepository,
		notifier:       notifier,
		now:            time.Now,
	}
}

func (r *DueReminder) WithClock(now func() time.Time) *DueReminder {
	r.now = now
	return r
}

// Run scans once immediately and then on every tick until ctx is cancelled.
func (r *DueReminder) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.config.Interval)
	defer ticker.Stop()

	zap.L().Info("due reminder started",
		zap.Duration("interval", r.config.Interval),
		zap.Duration("window", r.config.Window),
	)
	for {
		if _, err := r.RunOnce(ctx); err != nil {
			zap.L().Error("due reminder scan failed", zap.Error(err))
		}
		select {
		case <-ctx.Done():
			zap.L().Info("due reminder stopped")
			return nil
		case <-ticker.C:
		}
	}
}

// RunOnce returns the number of reminders sent. A failure for one task does
// not stop the scan; the task is retried on the next scan.
func (r *DueReminder) RunOnce(ctx context.Context) (int, error) {
	now := r.now().UTC()
	tasks, err := r.taskRepository.ListDueForReminder(ctx, now.Add(r.config.Window))
	if err != nil {
		return 0, fmt.Errorf("list tasks due for reminder: %w", err)
	}

	sent := 0
	for _, task := range tasks {
		if task.AssignedToID == nil || task.Status.Closed() {
			continue
		}
		if _, err := r.notifier.Notify(ctx, domain.CreateNotificationInput{
			UserID:        *task.AssignedToID,
			Type:          domain.NotificationTaskDue,
			Title:         "Task due soon",
			Message:       dueMessage(task, now),
			RelatedTaskID: &task.ID,
		}); err != nil {
			zap.L().Error("failed to send due reminder", zap.Uint64("task_id", task.ID), zap.Error(err))
			continue
		}
		if err := r.taskRepository.MarkDueReminded(ctx, task.ID, now); err != nil {
			zap.L().Error("failed to stamp due reminder", zap.Uint64("task_id", task.ID), zap.Error(err))
			continue
		}
		sent++
	}
	return sent, nil
}

func dueMessage(task domain.Task, now time.Time) string {
	if task.IsOverdue(now) {
		return fmt.Sprintf("Task %q is overdue.", task.Title)
	}
	remaining, _ := task.TimeUntilDue(now)
	return fmt.Sprintf("Task %q is due in %s.", task.Title, remaining.Round(time.Minute))
}

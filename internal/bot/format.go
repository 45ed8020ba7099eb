package bot

import (
	"fmt"
	"html"
	"strings"
	"time"

	"creatingtasks/internal/adapter/http/dto"
)

const dueDateLayout = "02.01.2006 15:04"

var statusLabels = map[string]struct{ emoji, text string }{
	"pending":     {"⏳", "Ожидает"},
	"in_progress": {"🔄", "В процессе"},
	"completed":   {"✅", "Завершена"},
	"cancelled":   {"❌", "Отменена"},
}

var priorityLabels = map[string]struct{ emoji, text string }{
	"low":    {"🔵", "Низкий"},
	"medium": {"🟡", "Средний"},
	"high":   {"🟠", "Высокий"},
	"urgent": {"🔴", "Срочный"},
}

// FormatTask renders a task as an HTML message. User supplied text is escaped.
func FormatTask(task dto.TaskItem) string {
	status, ok := statusLabels[task.Status]
	if !ok {
		status = struct{ emoji, text string }{"📝", task.Status}
	}
	priority, ok := priorityLabels[task.Priority]
	if !ok {
		priority = struct{ emoji, text string }{"⚪", task.Priority}
	}

	description := task.Description
	if strings.TrimSpace(description) == "" {
		description = "Нет описания"
	}

	author := "Неизвестно"
	if task.CreatedBy != nil {
		author = task.CreatedBy.Username
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s <b>%s</b>\n\n", status.emoji, html.EscapeString(task.Title))
	fmt.Fprintf(&b, "📋 Описание: %s\n", html.EscapeString(description))
	fmt.Fprintf(&b, "📁 Список: %s\n", html.EscapeString(task.TaskListName))
	fmt.Fprintf(&b, "%s Приоритет: %s\n", priority.emoji, priority.text)
	fmt.Fprintf(&b, "⏰ Срок: %s\n", formatDueDate(task.DueDate))
	fmt.Fprintf(&b, "👤 Создал: %s\n", html.EscapeString(author))
	fmt.Fprintf(&b, "📊 Статус: %s", status.text)
	return b.String()
}

// FormatTaskDetails extends FormatTask with assignment and timing details.
func FormatTaskDetails(task dto.TaskItem) string {
	var b strings.Builder
	b.WriteString(FormatTask(task))

	assignee := "Не назначен"
	if task.AssignedTo != nil {
		assignee = task.AssignedTo.Username
	}
	fmt.Fprintf(&b, "\n🙋 Исполнитель: %s", html.EscapeString(assignee))
	if task.IsOverdue {
		b.WriteString("\n⚠️ Просрочена")
	}
	if task.CompletedAt != nil {
		fmt.Fprintf(&b, "\n🏁 Завершена: %s", formatDueDate(task.CompletedAt))
	}
	fmt.Fprintf(&b, "\n🕑 Создана: %s", formatDueDate(&task.CreatedAt))
	return b.String()
}

func formatDueDate(value *string) string {
	if value == nil || *value == "" {
		return "Не установлен"
	}
	parsed, err := time.Parse(time.RFC3339, *value)
	if err != nil {
		return html.EscapeString(*value)
	}
	return parsed.UTC().Format(dueDateLayout)
}

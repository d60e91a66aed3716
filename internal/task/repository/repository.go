package repository

import (
	"time"

	"github.com/SafouaneCh/TaskMate-main/internal/task/domain"
)

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *domain.Task) error

	// FindByID finds a task by its ID
	FindByID(id string) (*domain.Task, error)

	// FindByUserID finds all tasks for a user with optional status filter
	FindByUserID(userID string, status *domain.TaskStatus, limit, offset int) ([]*domain.Task, int64, error)

	// Update updates an existing task
	Update(task *domain.Task) error

	// Delete deletes a task by ID
	Delete(id string) error

	// CountByStatus returns per-status task counts for a user
	CountByStatus(userID string) (map[domain.TaskStatus]int64, error)

	// FindOverdue finds a user's tasks whose due date has passed and are still
	// pending, in progress, or already flagged overdue
	FindOverdue(userID string, now time.Time) ([]*domain.Task, error)

	// MarkOverdue flags past-due pending/in_progress tasks of a user as
	// overdue; returns how many rows changed
	MarkOverdue(userID string, now time.Time) (int64, error)

	// FindPendingReminders finds tasks that need reminder notifications.
	// Returns tasks where reminder_at <= now AND reminder_sent = false AND
	// status is neither completed nor cancelled
	FindPendingReminders(now time.Time) ([]*domain.Task, error)

	// MarkReminderSent marks a task's reminder as sent
	MarkReminderSent(id string) error

	// ClearCompletedReminders drops reminder state from completed tasks so no
	// stale notifications fire; returns how many rows changed
	ClearCompletedReminders() (int64, error)
}

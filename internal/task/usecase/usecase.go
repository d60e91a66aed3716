package usecase

import (
	"context"
	"time"

	"github.com/SafouaneCh/TaskMate-main/internal/task/domain"
	"github.com/SafouaneCh/TaskMate-main/pkg/ai"
)

// TaskUsecase defines the interface for task business logic
type TaskUsecase interface {
	// CreateTask creates a new task manually
	CreateTask(userID string, req CreateTaskRequest) (*domain.Task, error)

	// GetTaskByID retrieves a task by ID (with ownership check)
	GetTaskByID(userID, taskID string) (*domain.Task, error)

	// GetUserTasks retrieves all tasks for a user with optional status filter
	GetUserTasks(userID string, status *string, limit, offset int) ([]*domain.Task, int64, error)

	// UpdateTask updates an existing task
	UpdateTask(userID, taskID string, updates TaskUpdateRequest) (*domain.Task, error)

	// UpdateTaskStatus transitions a task to a new status, maintaining the
	// completion timestamp
	UpdateTaskStatus(userID, taskID string, status string) (*domain.Task, error)

	// DeleteTask deletes a task
	DeleteTask(userID, taskID string) error

	// GetTaskStats returns per-status counts and the completion rate
	GetTaskStats(userID string) (*TaskStats, error)

	// GetOverdueTasks lists the user's past-due tasks
	GetOverdueTasks(userID string) ([]*domain.Task, error)

	// SweepOverdueTasks flags past-due pending/in_progress tasks as overdue
	SweepOverdueTasks(userID string) (int64, error)

	// ParseTask turns a natural-language sentence into a persisted task
	ParseTask(ctx context.Context, userID, text string) (*domain.Task, error)

	// SetParser sets the natural-language parser used by ParseTask
	SetParser(parser NaturalLanguageParser)
}

// CreateTaskRequest represents the fields for manual task creation
type CreateTaskRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Contact     string  `json:"contact"`
	Type        string  `json:"type"`
	Priority    string  `json:"priority"`
	DueAt       *string `json:"due_at"`
	ReminderAt  *string `json:"reminder_at"`
}

// TaskUpdateRequest represents the fields that can be updated
type TaskUpdateRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Contact     *string `json:"contact,omitempty"`
	Type        *string `json:"type,omitempty"`
	Priority    *string `json:"priority,omitempty"`
	Status      *string `json:"status,omitempty"`
	DueAt       *string `json:"due_at,omitempty"`
	ReminderAt  *string `json:"reminder_at,omitempty"`
}

// TaskStats summarizes a user's tasks by status
type TaskStats struct {
	Total          int64                       `json:"total"`
	Completed      int64                       `json:"completed"`
	CompletionRate float64                     `json:"completion_rate"`
	ByStatus       map[domain.TaskStatus]int64 `json:"by_status"`
}

// NaturalLanguageParser is the interface for converting free text into a
// structured task descriptor
type NaturalLanguageParser interface {
	ParseNaturalLanguage(ctx context.Context, input string, now time.Time) (*ai.ParsedTask, error)
}

package domain

import "time"

// Priority represents task priority level
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// TaskStatus represents the current state of a task
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusCancelled  TaskStatus = "cancelled"
	TaskStatusOverdue    TaskStatus = "overdue"
)

// ValidStatuses lists every status a task may hold.
var ValidStatuses = []TaskStatus{
	TaskStatusPending,
	TaskStatusInProgress,
	TaskStatusCompleted,
	TaskStatusCancelled,
	TaskStatusOverdue,
}

// IsValidStatus reports whether s is one of ValidStatuses.
func IsValidStatus(s TaskStatus) bool {
	for _, valid := range ValidStatuses {
		if s == valid {
			return true
		}
	}
	return false
}

// TaskType categorizes a task (mirrors the parser's type field)
type TaskType string

const (
	TaskTypeEvent         TaskType = "event"
	TaskTypeFollowUp      TaskType = "follow-up"
	TaskTypeCommunication TaskType = "communication"
	TaskTypeReminder      TaskType = "reminder"
)

// Task represents a to-do item created manually or parsed from natural
// language text
type Task struct {
	ID           string     `json:"id" gorm:"primaryKey"`
	UserID       string     `json:"user_id" gorm:"index;not null"`
	Name         string     `json:"name" gorm:"not null"`
	Description  string     `json:"description,omitempty"`
	Contact      string     `json:"contact,omitempty"` // Person the task concerns
	Type         TaskType   `json:"type" gorm:"default:reminder"`
	Priority     Priority   `json:"priority" gorm:"default:medium"`
	Status       TaskStatus `json:"status" gorm:"default:pending;index"`
	DueAt        *time.Time `json:"due_at,omitempty"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	ReminderAt   *time.Time `json:"reminder_at,omitempty"`              // When to send the push reminder
	ReminderSent bool       `json:"reminder_sent" gorm:"default:false"` // Track if reminder was sent
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

package ai

// TaskType categorizes what kind of task was described
type TaskType string

const (
	TypeEvent         TaskType = "event"
	TypeFollowUp      TaskType = "follow-up"
	TypeCommunication TaskType = "communication"
	TypeReminder      TaskType = "reminder"
)

// TaskPriority is the user-facing priority label
type TaskPriority string

const (
	PriorityHigh   TaskPriority = "High priority"
	PriorityMedium TaskPriority = "Medium priority"
	PriorityLow    TaskPriority = "Low priority"
)

// TaskStatus represents the current state of a task
type TaskStatus string

const (
	StatusPending    TaskStatus = "pending"
	StatusInProgress TaskStatus = "in_progress"
	StatusCompleted  TaskStatus = "completed"
)

// ParsedTask is the structured result of parsing one natural-language input.
// Task is always non-empty; Type, Priority and Status are always one of the
// constants above. Datetime, when set, is an ISO 8601 timestamp with
// millisecond precision.
type ParsedTask struct {
	Task        string       `json:"task"`
	Description string       `json:"description,omitempty"`
	Person      string       `json:"person,omitempty"`
	Datetime    string       `json:"datetime,omitempty"`
	Type        TaskType     `json:"type"`
	Priority    TaskPriority `json:"priority"`
	Status      TaskStatus   `json:"status"`
}

// isoMillis is the output layout for ParsedTask.Datetime.
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

package ai

import (
	"strings"
	"time"
)

// validDatetimeLayouts are accepted for the model's datetime field. Anything
// that parses under one of these is passed through verbatim; anything else is
// dropped so the descriptor never carries an unparsable timestamp.
var validDatetimeLayouts = []string{
	isoMillis,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// normalize coerces an arbitrary decoded object into a ParsedTask. Every
// field is treated as untrusted: enums are checked against an allow-list and
// anything unrecognized falls back to its default. Only a missing task title
// is an error.
func normalize(raw map[string]interface{}) (*ParsedTask, error) {
	task := stringField(raw, "task")
	if task == "" {
		return nil, ErrMissingTaskField
	}

	parsed := &ParsedTask{
		Task:     task,
		Type:     normalizeType(stringField(raw, "type")),
		Priority: normalizePriority(stringField(raw, "priority")),
		Status:   normalizeStatus(stringField(raw, "status")),
	}

	if desc := stringField(raw, "description"); desc != "" {
		parsed.Description = desc
	}
	if person := stringField(raw, "person"); person != "" {
		parsed.Person = person
	}
	if dt := stringField(raw, "datetime"); dt != "" && isValidDatetime(dt) {
		parsed.Datetime = dt
	}

	return parsed, nil
}

func normalizeType(value string) TaskType {
	switch TaskType(strings.ToLower(value)) {
	case TypeEvent:
		return TypeEvent
	case TypeFollowUp:
		return TypeFollowUp
	case TypeCommunication:
		return TypeCommunication
	default:
		return TypeReminder
	}
}

// normalizePriority applies the coarse substring policy: any value containing
// "high" maps to High, "low" to Low, everything else to Medium. This is
// deliberately loose ("not high priority at all" still reads as high).
func normalizePriority(value string) TaskPriority {
	lower := strings.ToLower(value)
	switch {
	case strings.Contains(lower, "high"):
		return PriorityHigh
	case strings.Contains(lower, "low"):
		return PriorityLow
	default:
		return PriorityMedium
	}
}

func normalizeStatus(value string) TaskStatus {
	lower := strings.ToLower(value)
	switch {
	case strings.Contains(lower, "progress"), strings.Contains(lower, "doing"):
		return StatusInProgress
	case strings.Contains(lower, "done"),
		strings.Contains(lower, "completed"),
		strings.Contains(lower, "finished"):
		return StatusCompleted
	default:
		return StatusPending
	}
}

func isValidDatetime(value string) bool {
	for _, layout := range validDatetimeLayouts {
		if _, err := time.Parse(layout, value); err == nil {
			return true
		}
	}
	return false
}

func stringField(raw map[string]interface{}, key string) string {
	if s, ok := raw[key].(string); ok {
		return s
	}
	return ""
}

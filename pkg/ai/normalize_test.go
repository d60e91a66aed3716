package ai

import (
	"errors"
	"testing"
)

func TestNormalizeMissingTask(t *testing.T) {
	for _, raw := range []map[string]interface{}{
		{},
		{"task": ""},
		{"task": 42},
		{"description": "no title here"},
	} {
		if _, err := normalize(raw); !errors.Is(err, ErrMissingTaskField) {
			t.Errorf("normalize(%v) error = %v, want ErrMissingTaskField", raw, err)
		}
	}
}

func TestNormalizeIdempotence(t *testing.T) {
	raw := map[string]interface{}{
		"task":        "Call",
		"description": "Sarah",
		"person":      "Sarah",
		"datetime":    "2025-06-10T14:00:00.000Z",
		"type":        "communication",
		"priority":    "High priority",
		"status":      "pending",
	}

	parsed, err := normalize(raw)
	if err != nil {
		t.Fatalf("normalize returned error: %v", err)
	}

	want := &ParsedTask{
		Task:        "Call",
		Description: "Sarah",
		Person:      "Sarah",
		Datetime:    "2025-06-10T14:00:00.000Z",
		Type:        TypeCommunication,
		Priority:    PriorityHigh,
		Status:      StatusPending,
	}
	if *parsed != *want {
		t.Errorf("normalize changed an already-valid object:\ngot  %+v\nwant %+v", parsed, want)
	}
}

func TestNormalizeEnumContainment(t *testing.T) {
	// Arbitrary junk in every enum field must coerce to a member of the enum,
	// never pass through raw.
	junkValues := []interface{}{
		"URGENT!!!", "Event", "EVENT", "follow-up", "followup", "whatever",
		"HIGH", "not high priority at all", "lowish", "in PROGRESS", "Doing it",
		"done and dusted", "finished!", "", nil, 3.14, true,
		[]interface{}{"a"}, map[string]interface{}{"k": "v"},
	}

	validTypes := map[TaskType]bool{TypeEvent: true, TypeFollowUp: true, TypeCommunication: true, TypeReminder: true}
	validPriorities := map[TaskPriority]bool{PriorityHigh: true, PriorityMedium: true, PriorityLow: true}
	validStatuses := map[TaskStatus]bool{StatusPending: true, StatusInProgress: true, StatusCompleted: true}

	for _, junk := range junkValues {
		raw := map[string]interface{}{
			"task":     "Something",
			"type":     junk,
			"priority": junk,
			"status":   junk,
		}
		parsed, err := normalize(raw)
		if err != nil {
			t.Fatalf("normalize(%v) returned error: %v", raw, err)
		}
		if !validTypes[parsed.Type] {
			t.Errorf("type %v escaped the enum as %q", junk, parsed.Type)
		}
		if !validPriorities[parsed.Priority] {
			t.Errorf("priority %v escaped the enum as %q", junk, parsed.Priority)
		}
		if !validStatuses[parsed.Status] {
			t.Errorf("status %v escaped the enum as %q", junk, parsed.Status)
		}
	}
}

func TestNormalizeDefaults(t *testing.T) {
	parsed, err := normalize(map[string]interface{}{"task": "Buy"})
	if err != nil {
		t.Fatalf("normalize returned error: %v", err)
	}

	if parsed.Type != TypeReminder {
		t.Errorf("type default = %q, want %q", parsed.Type, TypeReminder)
	}
	if parsed.Priority != PriorityMedium {
		t.Errorf("priority default = %q, want %q", parsed.Priority, PriorityMedium)
	}
	if parsed.Status != StatusPending {
		t.Errorf("status default = %q, want %q", parsed.Status, StatusPending)
	}
	if parsed.Description != "" || parsed.Person != "" || parsed.Datetime != "" {
		t.Errorf("optional fields should stay empty, got %+v", parsed)
	}
}

func TestNormalizeCoarsePriorityMatch(t *testing.T) {
	// Substring matching is deliberate: "high" anywhere wins.
	tests := []struct {
		value string
		want  TaskPriority
	}{
		{"High priority", PriorityHigh},
		{"not high priority at all", PriorityHigh},
		{"LOW", PriorityLow},
		{"medium", PriorityMedium},
		{"normal", PriorityMedium},
	}
	for _, tt := range tests {
		parsed, err := normalize(map[string]interface{}{"task": "t", "priority": tt.value})
		if err != nil {
			t.Fatalf("normalize returned error: %v", err)
		}
		if parsed.Priority != tt.want {
			t.Errorf("priority %q normalized to %q, want %q", tt.value, parsed.Priority, tt.want)
		}
	}
}

func TestNormalizeDropsUnparsableDatetime(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"2025-06-10T14:00:00.000Z", "2025-06-10T14:00:00.000Z"},
		{"2025-06-10T14:00:00Z", "2025-06-10T14:00:00Z"},
		{"2025-06-10", "2025-06-10"},
		{"next tuesday sometime", ""},
		{"garbage", ""},
	}

	for _, tt := range tests {
		parsed, err := normalize(map[string]interface{}{"task": "t", "datetime": tt.value})
		if err != nil {
			t.Fatalf("normalize returned error: %v", err)
		}
		if parsed.Datetime != tt.want {
			t.Errorf("datetime %q normalized to %q, want %q", tt.value, parsed.Datetime, tt.want)
		}
	}
}

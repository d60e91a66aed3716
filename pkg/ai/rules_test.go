package ai

import (
	"strings"
	"testing"
	"time"
)

var ruleNow = time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

func TestParseWithRulesDateAnchoring(t *testing.T) {
	parsed := parseWithRules("Call mom today at 2pm", ruleNow)

	if parsed.Task != "Call" {
		t.Errorf("task = %q, want %q", parsed.Task, "Call")
	}
	if parsed.Type != TypeCommunication {
		t.Errorf("type = %q, want %q", parsed.Type, TypeCommunication)
	}
	if want := "2025-06-10T14:00:00.000Z"; parsed.Datetime != want {
		t.Errorf("datetime = %q, want %q", parsed.Datetime, want)
	}
}

func TestParseWithRulesTomorrowDefault(t *testing.T) {
	parsed := parseWithRules("Buy groceries", ruleNow)

	if parsed.Task != "Buy" {
		t.Errorf("task = %q, want %q", parsed.Task, "Buy")
	}
	if want := "2025-06-11T09:00:00.000Z"; parsed.Datetime != want {
		t.Errorf("datetime = %q, want %q", parsed.Datetime, want)
	}
	if parsed.Priority != PriorityMedium {
		t.Errorf("priority = %q, want %q", parsed.Priority, PriorityMedium)
	}
	if parsed.Status != StatusPending {
		t.Errorf("status = %q, want %q", parsed.Status, StatusPending)
	}
}

func TestParseWithRulesTodayWithoutTime(t *testing.T) {
	now := time.Date(2025, 6, 10, 16, 45, 30, 0, time.UTC)
	parsed := parseWithRules("Review contract today", now)

	if want := "2025-06-10T16:45:30.000Z"; parsed.Datetime != want {
		t.Errorf("datetime = %q, want exact current instant %q", parsed.Datetime, want)
	}
}

func TestParseWithRulesTimePhrases(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"pm conversion", "Meeting tomorrow at 3pm", "2025-06-11T15:00:00.000Z"},
		{"noon stays twelve", "Meeting today at 12pm", "2025-06-10T12:00:00.000Z"},
		{"midnight", "Meeting today at 12am", "2025-06-10T00:00:00.000Z"},
		{"minutes", "Meeting today at 9:30am", "2025-06-10T09:30:00.000Z"},
		{"24h without meridiem", "Meeting today at 14:00", "2025-06-10T14:00:00.000Z"},
		{"tomorrow no time", "Meeting tomorrow", "2025-06-11T09:00:00.000Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed := parseWithRules(tt.input, ruleNow)
			if parsed.Datetime != tt.want {
				t.Errorf("parseWithRules(%q).Datetime = %q, want %q", tt.input, parsed.Datetime, tt.want)
			}
		})
	}
}

func TestParseWithRulesPriorityAndStatus(t *testing.T) {
	tests := []struct {
		input        string
		wantPriority TaskPriority
		wantStatus   TaskStatus
	}{
		{"Review contract, urgent", PriorityHigh, StatusPending},
		{"Buy milk asap", PriorityHigh, StatusPending},
		{"Read report sometime", PriorityLow, StatusPending},
		{"Write draft, low priority", PriorityLow, StatusPending},
		{"Update slides, working on it", PriorityMedium, StatusInProgress},
		{"Email team, done", PriorityMedium, StatusCompleted},
		{"Call plumber", PriorityMedium, StatusPending},
	}

	for _, tt := range tests {
		parsed := parseWithRules(tt.input, ruleNow)
		if parsed.Priority != tt.wantPriority {
			t.Errorf("parseWithRules(%q).Priority = %q, want %q", tt.input, parsed.Priority, tt.wantPriority)
		}
		if parsed.Status != tt.wantStatus {
			t.Errorf("parseWithRules(%q).Status = %q, want %q", tt.input, parsed.Status, tt.wantStatus)
		}
	}
}

func TestParseWithRulesPersonExtraction(t *testing.T) {
	parsed := parseWithRules("Meeting with Sarah tomorrow", ruleNow)

	if parsed.Person != "Sarah" {
		t.Errorf("person = %q, want %q", parsed.Person, "Sarah")
	}
	if parsed.Task != "Meeting" {
		t.Errorf("task = %q, want %q", parsed.Task, "Meeting")
	}
	if parsed.Type != TypeEvent {
		t.Errorf("type = %q, want %q", parsed.Type, TypeEvent)
	}
}

func TestParseWithRulesTypeClassification(t *testing.T) {
	tests := []struct {
		input string
		want  TaskType
	}{
		{"Meeting with the board", TypeEvent},
		{"Company event on friday", TypeEvent},
		{"Follow up on the invoice", TypeFollowUp},
		{"Check the build status", TypeFollowUp},
		{"Call the dentist", TypeCommunication},
		{"Email the landlord", TypeCommunication},
		{"Message Anna about dinner", TypeCommunication},
		{"Water the plants", TypeReminder},
	}

	for _, tt := range tests {
		if got := parseWithRules(tt.input, ruleNow).Type; got != tt.want {
			t.Errorf("parseWithRules(%q).Type = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestParseWithRulesTitleFallsBackToInput(t *testing.T) {
	input := "water the plants"
	parsed := parseWithRules(input, ruleNow)
	if parsed.Task != input {
		t.Errorf("task = %q, want raw input when no action verb matches", parsed.Task)
	}
}

func TestParseWithRulesDescriptionStripping(t *testing.T) {
	parsed := parseWithRules("Call Sarah tomorrow at 2 PM, urgent", ruleNow)
	if parsed.Description != "Sarah" {
		t.Errorf("description = %q, want %q", parsed.Description, "Sarah")
	}

	// Nothing stripped means no description.
	parsed = parseWithRules("groceries", ruleNow)
	if parsed.Description != "" {
		t.Errorf("description = %q, want empty when stripping changes nothing", parsed.Description)
	}
}

// Totality: every non-empty input yields a descriptor that satisfies the
// ParsedTask invariants.
func TestParseWithRulesTotality(t *testing.T) {
	inputs := []string{
		"x",
		"call",
		"today",
		"tomorrow at",
		"at 99:99pm",
		"with",
		", , ,",
		"meeting meeting meeting",
		"urgent urgent done doing",
		strings.Repeat("word ", 200),
		"émoji ✅ input with unicode",
		"12345",
	}

	validTypes := map[TaskType]bool{TypeEvent: true, TypeFollowUp: true, TypeCommunication: true, TypeReminder: true}
	validPriorities := map[TaskPriority]bool{PriorityHigh: true, PriorityMedium: true, PriorityLow: true}
	validStatuses := map[TaskStatus]bool{StatusPending: true, StatusInProgress: true, StatusCompleted: true}

	for _, input := range inputs {
		parsed := parseWithRules(input, ruleNow)
		if parsed.Task == "" {
			t.Errorf("parseWithRules(%q): empty task", input)
		}
		if !validTypes[parsed.Type] {
			t.Errorf("parseWithRules(%q): invalid type %q", input, parsed.Type)
		}
		if !validPriorities[parsed.Priority] {
			t.Errorf("parseWithRules(%q): invalid priority %q", input, parsed.Priority)
		}
		if !validStatuses[parsed.Status] {
			t.Errorf("parseWithRules(%q): invalid status %q", input, parsed.Status)
		}
		if parsed.Datetime != "" {
			if _, err := time.Parse(isoMillis, parsed.Datetime); err != nil {
				t.Errorf("parseWithRules(%q): unparsable datetime %q: %v", input, parsed.Datetime, err)
			}
		}
	}
}

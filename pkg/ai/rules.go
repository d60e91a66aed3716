package ai

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// The rule-based fallback parser. Fully deterministic, no I/O, and total: it
// produces a valid ParsedTask for any non-empty input.

// typeRules classify the input; evaluated top to bottom, first match wins.
var typeRules = []struct {
	keywords []string
	taskType TaskType
}{
	{[]string{"meeting", "event"}, TypeEvent},
	{[]string{"follow", "check"}, TypeFollowUp},
	{[]string{"call", "email", "message"}, TypeCommunication},
}

// titleRules map action verbs to a canonical short title; first match wins.
// When nothing matches, the raw input itself becomes the title.
var titleRules = []struct {
	keywords []string
	title    string
}{
	{[]string{"call"}, "Call"},
	{[]string{"meeting"}, "Meeting"},
	{[]string{"email", "send"}, "Email"},
	{[]string{"buy", "purchase"}, "Buy"},
	{[]string{"run", "running"}, "Running"},
	{[]string{"review"}, "Review"},
	{[]string{"create", "make"}, "Create"},
	{[]string{"update", "edit"}, "Update"},
	{[]string{"delete", "remove"}, "Delete"},
	{[]string{"read", "check"}, "Read"},
	{[]string{"write", "draft"}, "Write"},
}

var (
	highPriorityKeywords = []string{"urgent", "asap", "critical", "high priority"}
	lowPriorityKeywords  = []string{"low priority", "when possible", "sometime"}

	inProgressKeywords = []string{"in progress", "working on", "doing", "started"}
	completedKeywords  = []string{"done", "completed", "finished"}
)

// descriptionStrippers remove date, time, priority, status and action-verb
// tokens from the input when deriving the description.
var descriptionStrippers = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(tomorrow|today|yesterday|monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`),
	regexp.MustCompile(`(?i)\b(at|on|in)\s+\d{1,2}(:\d{2})?\s*(am|pm)?\b`),
	regexp.MustCompile(`(?i)\b(urgent|asap|critical|high priority|medium priority|low priority|when possible|sometime)\b`),
	regexp.MustCompile(`(?i)\b(in progress|working on|doing|started|done|completed|finished|pending|to do|need to|should)\b`),
	regexp.MustCompile(`(?i)\b(call|meeting|email|buy|run|review|create|update|delete|read|write)\b`),
}

var (
	whitespaceRE    = regexp.MustCompile(`\s+`)
	trailingCommaRE = regexp.MustCompile(`,\s*$`)
	personRE        = regexp.MustCompile(`(?i)(?:with|to)\s+([a-zA-Z]+)`)
	timePhraseRE    = regexp.MustCompile(`(?i)at\s+(\d{1,2})(?::(\d{2}))?\s*(am|pm)?`)
)

// parseWithRules converts free-text input into a ParsedTask using keyword and
// regex matching only. The reference instant now anchors "today"/"tomorrow".
func parseWithRules(input string, now time.Time) *ParsedTask {
	lower := strings.ToLower(input)

	parsed := &ParsedTask{
		Task:     extractTitle(input, lower),
		Type:     classifyType(lower),
		Priority: matchPriority(lower),
		Status:   matchStatus(lower),
		Datetime: resolveDatetime(input, lower, now),
	}

	if desc := extractDescription(input); desc != "" {
		parsed.Description = desc
	}
	if m := personRE.FindStringSubmatch(input); m != nil {
		parsed.Person = m[1]
	}

	return parsed
}

func classifyType(lower string) TaskType {
	for _, rule := range typeRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.taskType
			}
		}
	}
	return TypeReminder
}

func extractTitle(input, lower string) string {
	for _, rule := range titleRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.title
			}
		}
	}
	return input
}

func extractDescription(input string) string {
	clean := input
	for _, re := range descriptionStrippers {
		clean = re.ReplaceAllString(clean, "")
	}
	clean = whitespaceRE.ReplaceAllString(clean, " ")
	clean = trailingCommaRE.ReplaceAllString(clean, "")
	clean = strings.TrimSpace(clean)

	if clean == "" || clean == input {
		return ""
	}
	return clean
}

func matchPriority(lower string) TaskPriority {
	for _, kw := range highPriorityKeywords {
		if strings.Contains(lower, kw) {
			return PriorityHigh
		}
	}
	for _, kw := range lowPriorityKeywords {
		if strings.Contains(lower, kw) {
			return PriorityLow
		}
	}
	return PriorityMedium
}

func matchStatus(lower string) TaskStatus {
	for _, kw := range inProgressKeywords {
		if strings.Contains(lower, kw) {
			return StatusInProgress
		}
	}
	for _, kw := range completedKeywords {
		if strings.Contains(lower, kw) {
			return StatusCompleted
		}
	}
	return StatusPending
}

// resolveDatetime picks the anchor date (today, tomorrow, or the
// default-to-tomorrow fallback) and applies any "at H[:MM] [am|pm]" phrase.
// Without a time phrase, "today" keeps the exact current instant and the
// other anchors settle on 09:00 local time.
func resolveDatetime(input, lower string, now time.Time) string {
	switch {
	case strings.Contains(lower, "today"):
		if hour, minute, ok := matchTimePhrase(input); ok {
			return atTime(now, hour, minute)
		}
		return now.Format(isoMillis)

	case strings.Contains(lower, "tomorrow"):
		tomorrow := now.AddDate(0, 0, 1)
		if hour, minute, ok := matchTimePhrase(input); ok {
			return atTime(tomorrow, hour, minute)
		}
		return atTime(tomorrow, 9, 0)

	default:
		// No explicit day mentioned: tomorrow at 09:00 is the fallback of
		// last resort.
		return atTime(now.AddDate(0, 0, 1), 9, 0)
	}
}

// matchTimePhrase extracts the hour and minute from an "at ..." phrase,
// converting 12-hour clock values to 24-hour.
func matchTimePhrase(input string) (hour, minute int, ok bool) {
	m := timePhraseRE.FindStringSubmatch(input)
	if m == nil {
		return 0, 0, false
	}

	hour, _ = strconv.Atoi(m[1])
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	}

	switch strings.ToLower(m[3]) {
	case "pm":
		if hour != 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	}

	return hour, minute, true
}

// atTime serializes the given day's date at hour:minute local time.
func atTime(day time.Time, hour, minute int) string {
	t := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location())
	return t.Format(isoMillis)
}

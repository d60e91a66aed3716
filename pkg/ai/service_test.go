package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

var serviceNow = time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

// completionServer fakes the chat-completion endpoint, wrapping replyContent
// the way the real API does.
func completionServer(t *testing.T, status int, replyContent string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-token" {
			t.Errorf("unexpected Authorization header %q", auth)
		}

		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("failed to decode request body: %v", err)
		}
		if len(req.Messages) != 1 || req.Messages[0].Role != "user" {
			t.Errorf("unexpected messages: %+v", req.Messages)
		}

		w.WriteHeader(status)
		if status == http.StatusOK {
			json.NewEncoder(w).Encode(map[string]interface{}{
				"choices": []map[string]interface{}{
					{"message": map[string]string{"content": replyContent}},
				},
			})
		}
	}))
}

func newTestService(url string) *Service {
	return NewService(Config{APIURL: url, APIKey: "test-token"})
}

func TestParseNaturalLanguageEmptyInput(t *testing.T) {
	svc := NewService(Config{})
	for _, input := range []string{"", "   ", "\t\n"} {
		if _, err := svc.ParseNaturalLanguage(context.Background(), input, serviceNow); !errors.Is(err, ErrEmptyInput) {
			t.Errorf("ParseNaturalLanguage(%q) error = %v, want ErrEmptyInput", input, err)
		}
	}
}

func TestParseNaturalLanguageLLMPath(t *testing.T) {
	reply := `Here you go: {"task":"Call","description":"mom","person":"mom","datetime":"2025-06-10T14:00:00.000Z","type":"communication","priority":"High priority","status":"pending"}`
	srv := completionServer(t, http.StatusOK, reply)
	defer srv.Close()

	parsed, err := newTestService(srv.URL).ParseNaturalLanguage(context.Background(), "Call mom today at 2pm, urgent", serviceNow)
	if err != nil {
		t.Fatalf("ParseNaturalLanguage returned error: %v", err)
	}

	if parsed.Task != "Call" || parsed.Type != TypeCommunication || parsed.Priority != PriorityHigh {
		t.Errorf("unexpected descriptor from LLM path: %+v", parsed)
	}
	if parsed.Datetime != "2025-06-10T14:00:00.000Z" {
		t.Errorf("datetime = %q", parsed.Datetime)
	}
}

func TestParseNaturalLanguageFallsBackOnServerError(t *testing.T) {
	srv := completionServer(t, http.StatusInternalServerError, "")
	defer srv.Close()

	parsed, err := newTestService(srv.URL).ParseNaturalLanguage(context.Background(), "Buy groceries", serviceNow)
	if err != nil {
		t.Fatalf("AI failure must not surface, got error: %v", err)
	}

	// Rule-based result.
	if parsed.Task != "Buy" {
		t.Errorf("task = %q, want rule-based %q", parsed.Task, "Buy")
	}
	if want := "2025-06-11T09:00:00.000Z"; parsed.Datetime != want {
		t.Errorf("datetime = %q, want %q", parsed.Datetime, want)
	}
}

func TestParseNaturalLanguageFallsBackOnGarbageReply(t *testing.T) {
	tests := []struct {
		name  string
		reply string
	}{
		{"no JSON at all", "I could not find a task in that."},
		{"malformed JSON", `{"task": unquoted}`},
		{"missing task field", `{}`},
		{"empty task field", `{"task":""}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := completionServer(t, http.StatusOK, tt.reply)
			defer srv.Close()

			parsed, err := newTestService(srv.URL).ParseNaturalLanguage(context.Background(), "Call mom today at 2pm", serviceNow)
			if err != nil {
				t.Fatalf("garbage reply must not surface, got error: %v", err)
			}
			if parsed.Task != "Call" {
				t.Errorf("task = %q, want rule-based %q", parsed.Task, "Call")
			}
		})
	}
}

func TestParseNaturalLanguageUnreachableEndpoint(t *testing.T) {
	svc := NewService(Config{
		APIURL:  "http://127.0.0.1:1", // nothing listens here
		APIKey:  "test-token",
		Timeout: 500 * time.Millisecond,
	})

	parsed, err := svc.ParseNaturalLanguage(context.Background(), "Review contract, urgent", serviceNow)
	if err != nil {
		t.Fatalf("transport failure must not surface, got error: %v", err)
	}
	if parsed.Task != "Review" || parsed.Priority != PriorityHigh {
		t.Errorf("unexpected fallback descriptor: %+v", parsed)
	}
}

func TestParseNaturalLanguageWithoutCredential(t *testing.T) {
	// No API key: rule engine only, no outbound call.
	svc := NewService(Config{})

	parsed, err := svc.ParseNaturalLanguage(context.Background(), "Meeting with Sarah tomorrow", serviceNow)
	if err != nil {
		t.Fatalf("ParseNaturalLanguage returned error: %v", err)
	}
	if parsed.Person != "Sarah" || parsed.Type != TypeEvent {
		t.Errorf("unexpected descriptor: %+v", parsed)
	}
}

package ai

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{"bare object", `{"task":"Call"}`, nil},
		{"prose around object", `Sure! Here is the result: {"task":"Call"} Hope that helps.`, nil},
		{"markdown fence", "```json\n{\"task\":\"Call\"}\n```", nil},
		{"nested braces", `{"task":"Call","extra":{"a":1}}`, nil},
		{"no object", "no braces here", ErrNoJSONFound},
		{"only close brace", "}", ErrNoJSONFound},
		{"broken json", `{"task": unquoted}`, ErrMalformedJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := extractJSON(tt.content)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("extractJSON(%q) error = %v, want %v", tt.content, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("extractJSON(%q) returned error: %v", tt.content, err)
			}
			if raw["task"] != "Call" {
				t.Errorf("extracted task = %v, want Call", raw["task"])
			}
		})
	}
}

func TestBuildPromptEmbedsDates(t *testing.T) {
	now := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	prompt := buildPrompt("Call mom tomorrow", now)

	for _, want := range []string{
		"2025-06-10", // today
		"2025-06-11", // tomorrow
		`Input: "Call mom tomorrow"`,
		"Return only the JSON object",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg := Config{APIKey: "token"}.withDefaults()

	if cfg.APIURL == "" || cfg.Model == "" {
		t.Errorf("endpoint defaults not applied: %+v", cfg)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("timeout = %v, want 30s", cfg.Timeout)
	}
	if cfg.Temperature != 0.1 || cfg.TopP != 0.9 || cfg.MaxTokens != 200 {
		t.Errorf("sampling defaults not applied: %+v", cfg)
	}
}

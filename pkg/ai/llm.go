package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Config holds the chat-completion endpoint settings. It is injected into
// NewService so the adapter never reads ambient process state.
type Config struct {
	APIURL      string        // e.g. "https://models.github.ai/inference"
	APIKey      string        // bearer credential; empty disables the LLM path
	Model       string        // e.g. "openai/gpt-4o"
	Timeout     time.Duration // per-request ceiling
	Temperature float64
	TopP        float64
	MaxTokens   int
}

func (c Config) withDefaults() Config {
	if c.APIURL == "" {
		c.APIURL = "https://models.github.ai/inference"
	}
	if c.Model == "" {
		c.Model = "openai/gpt-4o"
	}
	if c.Timeout <= 0 {
		c.Timeout = 30 * time.Second
	}
	if c.Temperature == 0 {
		c.Temperature = 0.1
	}
	if c.TopP == 0 {
		c.TopP = 0.9
	}
	if c.MaxTokens == 0 {
		c.MaxTokens = 200
	}
	return c
}

// llmClient sends prompts to an OpenAI-compatible chat-completion endpoint.
type llmClient struct {
	cfg    Config
	client *http.Client
}

func newLLMClient(cfg Config) *llmClient {
	cfg = cfg.withDefaults()
	return &llmClient{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
	TopP        float64       `json:"top_p"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// complete sends one prompt and returns the raw reply text.
func (c *llmClient) complete(ctx context.Context, prompt string) (string, error) {
	payload := chatRequest{
		Model:       c.cfg.Model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: c.cfg.Temperature,
		TopP:        c.cfg.TopP,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.cfg.APIURL+"/chat/completions", bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCompletionFailed, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: failed to read response: %v", ErrCompletionFailed, err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d: %s", ErrCompletionFailed, resp.StatusCode, string(respBody))
	}

	var result chatResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("%w: %v", ErrCompletionFailed, err)
	}

	if len(result.Choices) == 0 || result.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("%w: no content in response", ErrCompletionFailed)
	}

	return result.Choices[0].Message.Content, nil
}

// extractJSON locates the first top-level {...} span in the reply text and
// decodes it. The span runs from the first "{" to the last "}" so replies
// wrapped in prose or markdown fences still parse.
func extractJSON(content string) (map[string]interface{}, error) {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end <= start {
		return nil, ErrNoJSONFound
	}

	var raw map[string]interface{}
	if err := json.Unmarshal([]byte(content[start:end+1]), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}
	return raw, nil
}

// buildPrompt constructs the extraction prompt. The current and next calendar
// dates are embedded so the model can resolve "today" and "tomorrow".
func buildPrompt(input string, now time.Time) string {
	currentDate := now.Format("2006-01-02")
	tomorrow := now.AddDate(0, 0, 1)
	tomorrowDate := tomorrow.Format("2006-01-02")

	return fmt.Sprintf(`You are a task parsing assistant. Parse this natural language input and extract task information.

IMPORTANT: Today's date is %s (%s).
Tomorrow's date is %s (%s).

Input: "%s"

Extract and return ONLY a valid JSON object with these exact fields:
- task: clean, concise title (1-2 words like "Meeting", "Call", "Running", "Email", "Review", "Buy", "Send")
- description: clean description without dates, times, priority, or status (e.g., "with John about project", "Sarah to confirm appointment", "weekly report to team")
- person: who it's about (if mentioned)
- datetime: when it's due (in ISO 8601 format like 2025-08-26T14:00:00.000Z)
- type: task category (event, follow-up, communication, or reminder)
- priority: task priority (High priority, Medium priority, or Low priority)
- status: task status (pending, in_progress, or completed)

TITLE EXTRACTION RULES:
- Extract the main action/activity as a clean 1-2 word title
- Examples: "Call Sarah tomorrow" -> task: "Call", description: "Sarah"
- Examples: "Meeting with team" -> task: "Meeting", description: "with team"
- Examples: "Send report" -> task: "Send", description: "report"
- Examples: "Buy groceries" -> task: "Buy", description: "groceries"

DESCRIPTION RULES:
- Keep only the essential details about what needs to be done
- Remove all dates, times, priority words, and status words
- Focus on WHO and WHAT, not WHEN or HOW URGENT
- Do NOT include trailing commas in the description
- Examples: "Call Sarah tomorrow at 2 PM, urgent" -> description: "Sarah"
- Examples: "Meeting with John about project, high priority" -> description: "with John about project"

CRITICAL DATE RULES:
- When the user says "today", use today's date (%s)
- When the user says "tomorrow", use tomorrow's date (%s)
- Always use the current year (%d) unless explicitly specified otherwise
- If no specific date is mentioned, default to tomorrow (%s)
- Always include a datetime field - never leave it empty

PRIORITY RULES:
- "urgent", "asap", "critical", "high priority" -> "High priority"
- "medium priority", "normal priority" -> "Medium priority"
- "low priority", "when possible", "sometime" -> "Low priority"
- If no priority mentioned, default to "Medium priority"

STATUS RULES:
- "in progress", "working on", "doing", "started" -> "in_progress"
- "done", "completed", "finished" -> "completed"
- "pending", "to do", "need to", "should" -> "pending"
- If no status mentioned, default to "pending"

Return only the JSON object, no additional text.`,
		currentDate, now.Format("Mon Jan 02 2006"),
		tomorrowDate, tomorrow.Format("Mon Jan 02 2006"),
		input,
		currentDate, tomorrowDate, now.Year(), tomorrowDate)
}

package ai

import (
	"context"
	"log"
	"strings"
	"time"
)

// Service parses natural-language task descriptions. It tries the hosted LLM
// first when a credential is configured and falls back to the rule-based
// parser on any AI-side failure, so callers never see an AI error: worst case
// they get a lower-quality, deterministically parsed result.
type Service struct {
	llm *llmClient
}

// NewService creates a parser service. When cfg.APIKey is empty the LLM path
// is disabled and every parse goes straight to the rule engine.
func NewService(cfg Config) *Service {
	s := &Service{}
	if cfg.APIKey != "" {
		s.llm = newLLMClient(cfg)
	}
	return s
}

// ParseNaturalLanguage converts input into a ParsedTask. The reference
// instant now anchors relative dates ("today", "tomorrow"). Empty input is
// the only error condition; at most one outbound request is made per call,
// bounded by the configured timeout.
func (s *Service) ParseNaturalLanguage(ctx context.Context, input string, now time.Time) (*ParsedTask, error) {
	if strings.TrimSpace(input) == "" {
		return nil, ErrEmptyInput
	}

	if s.llm != nil {
		parsed, err := s.parseWithLLM(ctx, input, now)
		if err == nil {
			return parsed, nil
		}
		log.Printf("[AI] LLM parsing failed, using rule-based fallback: %v", err)
	}

	return parseWithRules(input, now), nil
}

func (s *Service) parseWithLLM(ctx context.Context, input string, now time.Time) (*ParsedTask, error) {
	content, err := s.llm.complete(ctx, buildPrompt(input, now))
	if err != nil {
		return nil, err
	}

	raw, err := extractJSON(content)
	if err != nil {
		return nil, err
	}

	return normalize(raw)
}

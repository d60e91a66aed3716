package ai

import "errors"

var (
	// ErrEmptyInput is returned when there is nothing to parse. This is the
	// only error ParseNaturalLanguage surfaces to its caller.
	ErrEmptyInput = errors.New("input text is empty")

	// ErrNoJSONFound means the model reply contained no JSON object at all.
	ErrNoJSONFound = errors.New("no JSON object found in model reply")

	// ErrMalformedJSON means the extracted JSON span failed to parse.
	ErrMalformedJSON = errors.New("model reply contained malformed JSON")

	// ErrMissingTaskField means the decoded object lacked a usable task title.
	ErrMissingTaskField = errors.New("task field is required")

	// ErrCompletionFailed wraps transport-level failures against the
	// chat-completion endpoint (network error, timeout, non-2xx response).
	ErrCompletionFailed = errors.New("completion request failed")
)

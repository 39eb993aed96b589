package quizgen

import "fmt"

// ConfigError indicates bad caller input: an unknown question type or
// grade level. Fatal to the call, recoverable by the caller.
type ConfigError struct {
	Field string
	Value string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s: %q", e.Field, e.Value)
}

// MalformedResponseError indicates the model returned a payload that does
// not match the expected structure. It is surfaced immediately and not
// retried; the same prompt is unlikely to produce a different shape.
type MalformedResponseError struct {
	Reason string
	Raw    []byte
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed model response: %s", e.Reason)
}

// GenerationError wraps a failed generation attempt with enough detail
// (standard, question type, failure kind) for the caller to decide
// whether to retry, skip, or abort the batch.
type GenerationError struct {
	StandardID   string
	QuestionType QuestionType
	Err          error
}

func (e *GenerationError) Error() string {
	if e.QuestionType != "" {
		return fmt.Sprintf("generate %s question for %s: %v", e.QuestionType, e.StandardID, e.Err)
	}
	return fmt.Sprintf("assess %s: %v", e.StandardID, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

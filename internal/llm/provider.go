package llm

import (
	"context"
	"errors"
	"fmt"
)

// Provider defines the interface for LLM providers
type Provider interface {
	// Complete runs a single chat completion and returns the generated text
	Complete(ctx context.Context, request *CompletionRequest) (*CompletionResponse, error)

	// Name returns the provider name (e.g., "huggingface", "gemini")
	Name() string
}

// CompletionRequest contains all parameters needed for a completion
type CompletionRequest struct {
	Model        string
	SystemPrompt string
	UserPrompt   string
	Temperature  float64
	MaxTokens    int64
}

// CompletionResponse contains the result from the LLM
type CompletionResponse struct {
	Text  string
	Usage Usage
}

// Usage holds token accounting for a completion
type Usage struct {
	InputTokens  int64
	OutputTokens int64
	TotalTokens  int64
}

// StatusError reports the HTTP status a provider backend answered with,
// so callers can distinguish auth failures from missing models.
type StatusError struct {
	Status int
	Err    error
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("provider returned status %d: %v", e.Status, e.Err)
}

func (e *StatusError) Unwrap() error {
	return e.Err
}

// StatusOf extracts the HTTP status from a provider error, if any.
func StatusOf(err error) (int, bool) {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Status, true
	}
	return 0, false
}

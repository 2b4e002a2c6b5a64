package llm

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const providerNameHuggingFace = "huggingface"

// HuggingFaceProvider implements the Provider interface against the Hugging
// Face inference router, which speaks the OpenAI chat-completions protocol.
type HuggingFaceProvider struct {
	client *openai.Client
}

// NewHuggingFaceProvider creates a provider pointed at the given router base URL.
func NewHuggingFaceProvider(apiKey, baseURL string) *HuggingFaceProvider {
	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(baseURL),
		// The affirmation service owns retries and model fallback.
		option.WithMaxRetries(0),
	)
	return &HuggingFaceProvider{client: &client}
}

// Name returns the provider name
func (p *HuggingFaceProvider) Name() string {
	return providerNameHuggingFace
}

// Complete runs a single chat completion against the router
func (p *HuggingFaceProvider) Complete(ctx context.Context, request *CompletionRequest) (*CompletionResponse, error) {
	start := time.Now()

	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(request.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(request.SystemPrompt),
			openai.UserMessage(request.UserPrompt),
		},
	}
	if request.Temperature > 0 {
		params.Temperature = openai.Float(request.Temperature)
	}
	if request.MaxTokens > 0 {
		params.MaxTokens = openai.Int(request.MaxTokens)
	}

	completion, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		var apierr *openai.Error
		if errors.As(err, &apierr) {
			return nil, &StatusError{Status: apierr.StatusCode, Err: err}
		}
		return nil, fmt.Errorf("hugging face request failed: %w", err)
	}

	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("hugging face returned no choices for model %s", request.Model)
	}
	text := strings.TrimSpace(completion.Choices[0].Message.Content)
	if text == "" {
		return nil, fmt.Errorf("empty response from hugging face model %s", request.Model)
	}

	log.Printf("[INFO] hugging face completion finished model=%s duration=%s", request.Model, time.Since(start))

	return &CompletionResponse{
		Text: text,
		Usage: Usage{
			InputTokens:  completion.Usage.PromptTokens,
			OutputTokens: completion.Usage.CompletionTokens,
			TotalTokens:  completion.Usage.TotalTokens,
		},
	}, nil
}

package llm

import (
	"context"
	"fmt"
	"strings"
)

// ProviderFactory creates providers based on model name
type ProviderFactory struct {
	hfAPIKey     string
	hfBaseURL    string
	geminiAPIKey string
}

// NewProviderFactory creates a new provider factory
func NewProviderFactory(hfAPIKey, hfBaseURL, geminiAPIKey string) *ProviderFactory {
	return &ProviderFactory{
		hfAPIKey:     hfAPIKey,
		hfBaseURL:    hfBaseURL,
		geminiAPIKey: geminiAPIKey,
	}
}

// GetProvider returns the appropriate provider for the given model name.
// Gemini models are served by the Gemini API; everything else goes through
// the Hugging Face router.
func (f *ProviderFactory) GetProvider(ctx context.Context, model string) (Provider, error) {
	if strings.HasPrefix(strings.ToLower(model), "gemini-") {
		if f.geminiAPIKey == "" {
			return nil, fmt.Errorf("gemini API key not configured")
		}
		return NewGeminiProvider(ctx, f.geminiAPIKey)
	}

	if f.hfAPIKey == "" {
		return nil, fmt.Errorf("hugging face API key not configured")
	}
	return NewHuggingFaceProvider(f.hfAPIKey, f.hfBaseURL), nil
}

package affirmation

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mood-architect/affirm-api/internal/config"
	"github.com/mood-architect/affirm-api/internal/llm"
	"github.com/mood-architect/affirm-api/internal/logger"
	"github.com/mood-architect/affirm-api/internal/metrics"
	"github.com/mood-architect/affirm-api/internal/observability"
)

const (
	maxAttemptsPerModel = 3
	temperature         = 0.7
	maxTokens           = 256
)

// Request carries the user input for one affirmation. Name and feeling are
// expected to be trimmed and non-empty by the time they reach the service.
type Request struct {
	Name    string
	Feeling string
	Details string
}

// ProviderFactory resolves a model name to an LLM provider.
type ProviderFactory interface {
	GetProvider(ctx context.Context, model string) (llm.Provider, error)
}

// Service generates affirmations, walking an ordered model list with
// per-model retries.
type Service struct {
	factory ProviderFactory
	models  []string
	timeout time.Duration
	lf      *observability.LangfuseClient

	backoff []time.Duration
	now     func() time.Time
	metrics *metrics.SentryMetrics
}

// NewService creates the affirmation service from configuration.
func NewService(factory ProviderFactory, cfg *config.Config, lf *observability.LangfuseClient) *Service {
	return &Service{
		factory: factory,
		models:  cfg.ModelList(),
		timeout: cfg.GenerationTimeout,
		lf:      lf,
		backoff: []time.Duration{2 * time.Second, 4 * time.Second, 8 * time.Second},
		now:     time.Now,
		metrics: metrics.NewSentryMetrics(),
	}
}

// Generate produces an affirmation for the request. Each model in the list
// gets up to three attempts with exponential backoff; a 401/403 from any
// provider aborts the whole run, a 404/410 skips to the next model.
func (s *Service) Generate(ctx context.Context, req *Request) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	userPayload := buildUserPayload(req, s.now())

	trace := s.lf.StartTrace(ctx, "affirmation", map[string]interface{}{
		"feeling": req.Feeling,
	})
	defer trace.Finish()

	var lastErr error
	for _, model := range s.models {
		provider, err := s.factory.GetProvider(ctx, model)
		if err != nil {
			logger.Warn("provider unavailable", logger.Fields{"model": model, "error": err.Error()})
			lastErr = err
			continue
		}

		text, err := s.tryModel(ctx, trace, provider, model, userPayload)
		if err == nil {
			return text, nil
		}
		lastErr = err

		if status, ok := llm.StatusOf(err); ok && (status == http.StatusUnauthorized || status == http.StatusForbidden) {
			// Invalid or unauthorized token; no point trying other models.
			return "", err
		}
		if ctx.Err() != nil {
			return "", fmt.Errorf("generation aborted: %w", ctx.Err())
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("no models configured")
	}
	logger.Error("all models failed", lastErr, logger.Fields{"models": len(s.models)})
	return "", fmt.Errorf("all models failed: %w", lastErr)
}

func (s *Service) tryModel(ctx context.Context, trace *observability.Trace, provider llm.Provider, model, userPayload string) (string, error) {
	var lastErr error
	for attempt := 0; attempt < maxAttemptsPerModel; attempt++ {
		gen := trace.Generation("completion", map[string]interface{}{
			"model":    model,
			"provider": provider.Name(),
			"attempt":  attempt + 1,
		})
		gen.Input(userPayload)

		resp, err := provider.Complete(ctx, &llm.CompletionRequest{
			Model:        model,
			SystemPrompt: systemPrompt + "\n" + safetyNotice,
			UserPrompt:   userPayload,
			Temperature:  temperature,
			MaxTokens:    maxTokens,
		})
		if err == nil {
			gen.Output(resp.Text)
			gen.Usage(model, resp.Usage)
			gen.Finish()
			s.metrics.RecordTokenUsage(ctx, model, resp.Usage)
			return resp.Text, nil
		}

		gen.SetLevel("ERROR")
		gen.Finish()
		lastErr = err
		logger.Warn("completion attempt failed", logger.Fields{
			"model":   model,
			"attempt": attempt + 1,
			"error":   err.Error(),
		})

		if status, ok := llm.StatusOf(err); ok {
			switch status {
			case http.StatusUnauthorized, http.StatusForbidden:
				return "", err
			case http.StatusNotFound, http.StatusGone:
				// Model not hosted; move to the next model immediately.
				return "", err
			}
		}
		if attempt < maxAttemptsPerModel-1 {
			if err := sleepContext(ctx, s.backoff[attempt]); err != nil {
				return "", lastErr
			}
		}
	}
	return "", lastErr
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

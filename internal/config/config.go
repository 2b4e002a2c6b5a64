package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultHFBaseURL    = "https://router.huggingface.co/v1"
	defaultPrimaryModel = "meta-llama/Meta-Llama-3-8B-Instruct"
	defaultFallbacks    = "Qwen/Qwen2.5-7B-Instruct"
)

// Config holds the application configuration
// Note: This is a stateless configuration - the service keeps no database
// and no user state; everything is supplied through the environment
type Config struct {
	// Environment
	Environment string
	Port        string
	Debug       bool

	// CORS
	AllowedOrigins []string

	// LLM access
	HFAPIKey       string // Hugging Face API token for the inference router
	HFBaseURL      string // Hugging Face router base URL (OpenAI-compatible)
	PrimaryModel   string
	FallbackModels []string // tried in order after the primary model
	GeminiAPIKey   string   // Google Gemini API key (optional fallback provider)

	// Generation
	GenerationTimeout time.Duration

	// Observability
	SentryDSN         string // Sentry DSN for error tracking
	LangfusePublicKey string // Langfuse public key
	LangfuseSecretKey string // Langfuse secret key
	LangfuseHost      string // Langfuse host URL (cloud or self-hosted)
	LangfuseEnabled   bool   // Feature flag for Langfuse
}

func Load() *Config {
	return &Config{
		Environment:       getEnv("ENVIRONMENT", "development"),
		Port:              getEnv("PORT", "8080"),
		Debug:             parseBool(getEnv("DEBUG", "false")),
		AllowedOrigins:    splitCSV(getEnv("ALLOWED_ORIGINS", "")),
		HFAPIKey:          getEnv("HUGGING_FACE_API_KEY", ""),
		HFBaseURL:         getEnv("HUGGING_FACE_BASE_URL", defaultHFBaseURL),
		PrimaryModel:      getEnv("HUGGING_FACE_MODEL", defaultPrimaryModel),
		FallbackModels:    splitCSV(getEnv("HUGGING_FACE_FALLBACK_MODELS", defaultFallbacks)),
		GeminiAPIKey:      getEnv("GEMINI_API_KEY", ""),
		GenerationTimeout: time.Duration(parseInt(getEnv("GENERATION_TIMEOUT_SECONDS", "60"), 60)) * time.Second,
		SentryDSN:         getEnv("SENTRY_DSN", ""),
		LangfusePublicKey: getEnv("LANGFUSE_PUBLIC_KEY", ""),
		LangfuseSecretKey: getEnv("LANGFUSE_SECRET_KEY", ""),
		LangfuseHost:      getEnv("LANGFUSE_HOST", "https://cloud.langfuse.com"),
		LangfuseEnabled:   getEnv("LANGFUSE_ENABLED", "false") == "true",
	}
}

// ModelList returns the primary model followed by the fallback models,
// deduplicated while preserving order.
func (c *Config) ModelList() []string {
	seen := make(map[string]bool)
	ordered := make([]string, 0, len(c.FallbackModels)+1)
	for _, model := range append([]string{c.PrimaryModel}, c.FallbackModels...) {
		model = strings.TrimSpace(model)
		if model == "" || seen[model] {
			continue
		}
		ordered = append(ordered, model)
		seen[model] = true
	}
	return ordered
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}

func splitCSV(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseBool(raw string) bool {
	switch strings.ToLower(raw) {
	case "1", "true", "yes":
		return true
	}
	return false
}

func parseInt(raw string, fallback int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completionRequest() *CompletionRequest {
	return &CompletionRequest{
		Model:        "meta-llama/Meta-Llama-3-8B-Instruct",
		SystemPrompt: "You are a supportive companion.",
		UserPrompt:   "Name: Amina\nFeeling: Hopeful",
		Temperature:  0.7,
		MaxTokens:    256,
	}
}

func TestHuggingFaceComplete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected authorization header: %q", got)
		}

		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode request body: %v", err)
		}
		assert.Equal(t, "meta-llama/Meta-Llama-3-8B-Instruct", body["model"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "cmpl-1",
			"object": "chat.completion",
			"choices": [{"index": 0, "finish_reason": "stop",
				"message": {"role": "assistant", "content": "  You are exactly where you need to be.  "}}],
			"usage": {"prompt_tokens": 42, "completion_tokens": 17, "total_tokens": 59}
		}`))
	}))
	defer server.Close()

	provider := NewHuggingFaceProvider("test-key", server.URL)
	resp, err := provider.Complete(context.Background(), completionRequest())

	require.NoError(t, err)
	assert.Equal(t, "You are exactly where you need to be.", resp.Text)
	assert.Equal(t, int64(42), resp.Usage.InputTokens)
	assert.Equal(t, int64(17), resp.Usage.OutputTokens)
	assert.Equal(t, int64(59), resp.Usage.TotalTokens)
}

func TestHuggingFaceCompleteEmptyContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "cmpl-2",
			"object": "chat.completion",
			"choices": [{"index": 0, "finish_reason": "stop",
				"message": {"role": "assistant", "content": ""}}]
		}`))
	}))
	defer server.Close()

	provider := NewHuggingFaceProvider("test-key", server.URL)
	_, err := provider.Complete(context.Background(), completionRequest())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty response")
}

func TestHuggingFaceCompleteStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error": {"message": "invalid token", "type": "auth"}}`))
	}))
	defer server.Close()

	provider := NewHuggingFaceProvider("bad-key", server.URL)
	_, err := provider.Complete(context.Background(), completionRequest())

	require.Error(t, err)
	status, ok := StatusOf(err)
	require.True(t, ok, "expected a StatusError, got %v", err)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestHuggingFaceCompleteNetworkFailure(t *testing.T) {
	provider := NewHuggingFaceProvider("test-key", "http://127.0.0.1:1")
	_, err := provider.Complete(context.Background(), completionRequest())

	require.Error(t, err)
	_, ok := StatusOf(err)
	assert.False(t, ok, "network failures carry no HTTP status")
}

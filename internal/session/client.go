package session

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// DefaultBaseURL points at a locally running affirmation backend.
const DefaultBaseURL = "http://localhost:8080"

// Client calls the affirmation backend. It imposes no timeout of its own;
// a call runs until the transport resolves or the context is cancelled.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the given base URL (trailing slash stripped).
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
}

// Generate posts the request and returns the affirmation text. Any network
// failure, non-success status, undecodable body, or missing affirmation field
// is an error; callers do not need to distinguish the cause.
func (c *Client) Generate(ctx context.Context, genReq GenerationRequest) (string, error) {
	body, err := json.Marshal(genReq)
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/affirmation", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("affirmation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("affirmation request failed with status %d", resp.StatusCode)
	}

	var decoded struct {
		Affirmation string `json:"affirmation"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if decoded.Affirmation == "" {
		return "", fmt.Errorf("response missing affirmation text")
	}
	return decoded.Affirmation, nil
}

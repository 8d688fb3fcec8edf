package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"sampahkupilah/api/internal/classify"
	"sampahkupilah/api/internal/classify/prompt"
)

const defaultEndpoint = "https://api.openai.com/v1/chat/completions"

// Bounded output keeps the reply short and deterministic; truncation is
// handled by the resilient decoder.
const (
	temperature = 0.2
	maxTokens   = 700
)

type Engine struct {
	APIKey   string
	Model    string
	Endpoint string
	httpc    *http.Client
}

func New(key, model string) *Engine {
	return &Engine{
		APIKey:   key,
		Model:    model,
		Endpoint: defaultEndpoint,
		httpc:    &http.Client{Timeout: 60 * time.Second},
	}
}

// WithHTTPClient overrides the internal HTTP client (e.g. for tests).
func (e *Engine) WithHTTPClient(c *http.Client) *Engine {
	if c != nil {
		e.httpc = c
	}
	return e
}

func (e *Engine) Name() string { return "openai" }

func (e *Engine) GetModel() string { return e.Model }

func (e *Engine) Classify(ctx context.Context, images []string) (string, error) {
	if e.APIKey == "" {
		return "", fmt.Errorf("OPENAI_API_KEY is empty: Missing credentials")
	}

	content := []any{
		map[string]any{"type": "text", "text": prompt.User},
	}
	for _, dataURL := range images {
		content = append(content, map[string]any{
			"type":      "image_url",
			"image_url": map[string]any{"url": dataURL, "detail": "low"},
		})
	}

	body := map[string]any{
		"model": e.Model,
		"messages": []any{
			map[string]any{"role": "system", "content": prompt.System},
			map[string]any{"role": "user", "content": content},
		},
		"temperature":     temperature,
		"max_tokens":      maxTokens,
		"response_format": map[string]any{"type": "json_object"},
	}
	payload, _ := json.Marshal(body)

	req, err := http.NewRequestWithContext(ctx, "POST", e.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+e.APIKey)

	resp, err := e.httpc.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusTooManyRequests {
		x, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("%w: openai classify 429: %s", classify.ErrRateLimited, strings.TrimSpace(string(x)))
	}
	if resp.StatusCode != http.StatusOK {
		x, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("openai classify %d: %s", resp.StatusCode, strings.TrimSpace(string(x)))
	}

	var raw struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return "", err
	}
	if len(raw.Choices) == 0 {
		return "{}", nil
	}
	return strings.TrimSpace(raw.Choices[0].Message.Content), nil
}

package classify

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Engine is a vision model backend. Classify receives the normalized data
// URLs and returns the raw text of the model reply; decoding happens upstream.
type Engine interface {
	Name() string
	GetModel() string
	Classify(ctx context.Context, images []string) (string, error)
}

// ErrRateLimited marks an upstream 429 so the handler can answer with its own
// retry hint instead of a generic failure.
var ErrRateLimited = errors.New("inference service rate limited")

// IsCredentialError reports whether err looks like a missing or rejected API
// key. Providers phrase this differently, so we match on the message.
func IsCredentialError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, token := range []string{"api key", "api_key", "missing credentials", "unauthorized", "invalid authentication"} {
		if strings.Contains(msg, token) {
			return true
		}
	}
	return false
}

// Engines holds the configured backends and picks one by name.
type Engines struct {
	OpenAI  Engine
	Gemini  Engine
	Default string
}

func (e *Engines) Get(name string) (Engine, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		n = strings.ToLower(strings.TrimSpace(e.Default))
	}
	switch n {
	case "", "openai", "gpt":
		if e.OpenAI != nil {
			return e.OpenAI, nil
		}
	case "gemini":
		if e.Gemini != nil {
			return e.Gemini, nil
		}
	}
	return nil, fmt.Errorf("unknown engine %q", name)
}

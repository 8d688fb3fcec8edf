package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"sampahkupilah/api/internal/classify"
	"sampahkupilah/api/internal/classify/prompt"
	"sampahkupilah/api/internal/util"
)

type Engine struct {
	APIKey string
	Model  string
}

func New(apiKey, model string) *Engine {
	return &Engine{
		APIKey: strings.TrimSpace(apiKey),
		Model:  strings.TrimSpace(model),
	}
}

func (e *Engine) Name() string { return "gemini" }

func (e *Engine) GetModel() string { return e.Model }

func (e *Engine) Classify(ctx context.Context, images []string) (string, error) {
	if e.APIKey == "" {
		return "", errors.New("GEMINI_API_KEY is empty: Missing credentials")
	}
	cl, err := genai.NewClient(ctx, option.WithAPIKey(e.APIKey))
	if err != nil {
		return "", err
	}
	defer cl.Close()

	m := cl.GenerativeModel(e.Model)
	if m == nil {
		return "", fmt.Errorf("gemini: model is nil")
	}
	m.GenerationConfig = genai.GenerationConfig{
		Temperature:      ptrFloat32(0.2),
		MaxOutputTokens:  ptrInt32(700),
		ResponseMIMEType: "application/json",
	}
	m.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(prompt.System)},
	}

	parts := []genai.Part{genai.Text(prompt.User)}
	for _, dataURL := range images {
		imgBytes, mimeHint, err := util.DecodeBase64MaybeDataURL(dataURL)
		if err != nil {
			return "", fmt.Errorf("gemini classify: bad base64: %w", err)
		}
		mime := util.PickMIME("", mimeHint, imgBytes)
		parts = append(parts, &genai.Blob{MIMEType: mime, Data: imgBytes})
	}

	// Retries for transient transport failures.
	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		resp, err := m.GenerateContent(ctx, parts...)
		if err != nil {
			if isRateLimited(err) {
				return "", fmt.Errorf("%w: %v", classify.ErrRateLimited, err)
			}
			lastErr = err
			time.Sleep(time.Duration(attempt) * 300 * time.Millisecond)
			continue
		}
		txt := firstText(resp)
		if strings.TrimSpace(txt) == "" {
			return "{}", nil
		}
		return strings.TrimSpace(txt), nil
	}
	return "", lastErr
}

func isRateLimited(err error) bool {
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "429") || strings.Contains(s, "resource_exhausted") || strings.Contains(s, "rate limit")
}

func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	for _, c := range resp.Candidates {
		if c.Content == nil {
			continue
		}
		for _, p := range c.Content.Parts {
			if t, ok := p.(genai.Text); ok {
				return string(t)
			}
		}
	}
	return ""
}

func ptrFloat32(v float32) *float32 { return &v }
func ptrInt32(v int32) *int32       { return &v }

package config

import (
	"log"
	"os"
	"strings"
)

type Config struct {
	Port   string
	Engine string // default backend: "openai" | "gemini"

	OpenAIAPIKey string
	OpenAIModel  string
	GeminiAPIKey string
	GeminiModel  string

	TelegramBotToken string
	WebhookURL       string
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() *Config {
	return &Config{
		Port:   getEnv("PORT", "8000"),
		Engine: getEnv("ENGINE", "openai"),

		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:  getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.0-flash"),

		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		WebhookURL:       os.Getenv("WEBHOOK_URL"),
	}
}

// WarnMissingInferenceKey logs a startup warning when the selected backend has
// no credentials. The process still starts; classify requests answer 500
// missing_api_key until the operator reconfigures.
func (c *Config) WarnMissingInferenceKey() {
	switch strings.ToLower(strings.TrimSpace(c.Engine)) {
	case "gemini":
		if strings.TrimSpace(c.GeminiAPIKey) == "" {
			log.Printf("warning: GEMINI_API_KEY is empty; classification will fail with missing_api_key")
		}
	default:
		if strings.TrimSpace(c.OpenAIAPIKey) == "" {
			log.Printf("warning: OPENAI_API_KEY is empty; classification will fail with missing_api_key")
		}
	}
}

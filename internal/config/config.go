package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/Goutam-aswani/pdf-to-html-converter/internal/llm"
)

// Settings is the process-wide immutable configuration, loaded once at
// startup from the environment (optionally seeded from a .env file) and
// injected into the components that need it.
type Settings struct {
	ListenAddr     string
	AllowedOrigins []string
	LLM            llm.Config
}

// Load reads and validates all settings.
func Load() (*Settings, error) {
	// A missing .env file is fine; real deployments configure through
	// the environment directly.
	_ = godotenv.Load()

	s := &Settings{
		ListenAddr:     GetEnv("LISTEN_ADDR", ":8000"),
		AllowedOrigins: splitList(GetEnv("ALLOWED_ORIGINS", "*")),
		LLM: llm.Config{
			Provider:      GetEnv("LLM_PROVIDER", "googleai"),
			GoogleAPIKey:  GetEnv("GOOGLE_API_KEY", ""),
			OpenAIAPIKey:  GetEnv("OPENAI_API_KEY", ""),
			OpenAIBaseURL: GetEnv("OPENAI_BASE_URL", ""),
			OllamaHost:    GetEnv("OLLAMA_HOST", ""),
			MarkdownModel: GetEnv("MARKDOWN_MODEL", "gemini-2.0-flash-lite"),
			HTMLModel:     GetEnv("HTML_MODEL", "gemini-2.0-flash"),
		},
	}

	switch strings.ToLower(s.LLM.Provider) {
	case "googleai":
		if s.LLM.GoogleAPIKey == "" {
			return nil, fmt.Errorf("GOOGLE_API_KEY environment variable must be set")
		}
	case "openai":
		if s.LLM.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable must be set")
		}
	case "ollama":
		// Host defaults client-side.
	default:
		return nil, fmt.Errorf("unsupported LLM_PROVIDER: %s", s.LLM.Provider)
	}

	return s, nil
}

// GetEnv is a helper to read an environment variable or return a default value.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"
)

// Config selects the generative-model provider and the per-stage models.
type Config struct {
	Provider string // "googleai", "openai" or "ollama"

	GoogleAPIKey  string
	OpenAIAPIKey  string
	OpenAIBaseURL string // optional, for OpenAI-compatible endpoints
	OllamaHost    string

	MarkdownModel string
	HTMLModel     string
}

// Client holds one pre-configured model per pipeline stage.
type Client struct {
	markdownModel llms.Model
	htmlModel     llms.Model
}

// NewClient creates a client holding both stage models. The provider is
// immutable process-wide configuration; synthesizers receive the models by
// injection so they stay testable with fakes.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	markdownModel, err := newModel(ctx, cfg, cfg.MarkdownModel)
	if err != nil {
		return nil, fmt.Errorf("markdown model: %w", err)
	}
	htmlModel, err := newModel(ctx, cfg, cfg.HTMLModel)
	if err != nil {
		return nil, fmt.Errorf("html model: %w", err)
	}
	return &Client{
		markdownModel: markdownModel,
		htmlModel:     htmlModel,
	}, nil
}

// NewClientWithModels wraps already-built models. Used by tests to inject
// fakes without touching a provider.
func NewClientWithModels(markdownModel, htmlModel llms.Model) *Client {
	return &Client{
		markdownModel: markdownModel,
		htmlModel:     htmlModel,
	}
}

// MarkdownModel returns the model used by the Markdown synthesizer.
func (c *Client) MarkdownModel() llms.Model {
	return c.markdownModel
}

// HTMLModel returns the model used by the HTML synthesizer.
func (c *Client) HTMLModel() llms.Model {
	return c.htmlModel
}

func newModel(ctx context.Context, cfg Config, modelName string) (llms.Model, error) {
	switch strings.ToLower(cfg.Provider) {
	case "", "googleai":
		if cfg.GoogleAPIKey == "" {
			return nil, fmt.Errorf("GOOGLE_API_KEY is not set")
		}
		return googleai.New(ctx,
			googleai.WithAPIKey(cfg.GoogleAPIKey),
			googleai.WithDefaultModel(modelName),
		)
	case "openai":
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is not set")
		}
		opts := []openai.Option{
			openai.WithToken(cfg.OpenAIAPIKey),
			openai.WithModel(modelName),
		}
		if cfg.OpenAIBaseURL != "" {
			opts = append(opts, openai.WithBaseURL(cfg.OpenAIBaseURL))
		}
		return openai.New(opts...)
	case "ollama":
		opts := []ollama.Option{ollama.WithModel(modelName)}
		if cfg.OllamaHost != "" {
			opts = append(opts, ollama.WithServerURL(cfg.OllamaHost))
		}
		return ollama.New(opts...)
	default:
		return nil, fmt.Errorf("unsupported model provider: %s", cfg.Provider)
	}
}

// Complete issues a single non-conversational completion with greedy
// decoding and returns the first choice verbatim. No retries, no output
// validation; whatever the model returns is the caller's content.
func Complete(ctx context.Context, model llms.Model, system, user string) (string, error) {
	resp, err := model.GenerateContent(ctx,
		[]llms.MessageContent{
			llms.TextParts(llms.ChatMessageTypeSystem, system),
			llms.TextParts(llms.ChatMessageTypeHuman, user),
		},
		llms.WithTemperature(0),
	)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("model returned no choices")
	}
	return resp.Choices[0].Content, nil
}

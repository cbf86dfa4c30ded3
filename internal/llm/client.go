// Package llm provides the client seam for the OpenAI-compatible completion
// provider. The service talks to the provider exclusively through the narrow
// Completer and Embedder interfaces so tests can substitute fakes.
package llm

import (
	"context"

	"github.com/sashabaranov/go-openai"

	"github.com/compagent/platform/internal/config"
)

// Completer issues a single synchronous chat completion. Calls are
// single-attempt: there is no retry, backoff, or streaming.
type Completer interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Embedder generates embedding vectors for text inputs.
type Embedder interface {
	CreateEmbeddings(ctx context.Context, req openai.EmbeddingRequestConverter) (openai.EmbeddingResponse, error)
}

// Client bundles the provider handle with the configured model names. One
// client is created at startup and shared by all requests.
type Client struct {
	api            *openai.Client
	Model          string
	EmbeddingModel string
}

// New creates a provider client from the LLM configuration. The base URL
// selects the provider; Groq's OpenAI-compatible endpoint is the default.
func New(cfg *config.LLMConfig) *Client {
	apiCfg := openai.DefaultConfig(cfg.APIKey())
	if cfg.BaseURL != "" {
		apiCfg.BaseURL = cfg.BaseURL
	}

	return &Client{
		api:            openai.NewClientWithConfig(apiCfg),
		Model:          cfg.Model,
		EmbeddingModel: cfg.EmbeddingModel,
	}
}

// CreateChatCompletion implements Completer.
func (c *Client) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	return c.api.CreateChatCompletion(ctx, req)
}

// CreateEmbeddings implements Embedder.
func (c *Client) CreateEmbeddings(ctx context.Context, req openai.EmbeddingRequestConverter) (openai.EmbeddingResponse, error) {
	return c.api.CreateEmbeddings(ctx, req)
}

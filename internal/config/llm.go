package config

import (
	"fmt"
	"os"
)

const (
	// EnvLLMAPIKey supplies the completion provider API key.
	// The key is never read from TOML files.
	EnvLLMAPIKey = "LLM_API_KEY"

	// EnvLLMBaseURL overrides the provider base URL.
	EnvLLMBaseURL = "LLM_BASE_URL"

	// EnvLLMModel overrides the completion model name.
	EnvLLMModel = "LLM_MODEL"

	// EnvLLMEmbeddingModel overrides the embedding model name.
	EnvLLMEmbeddingModel = "LLM_EMBEDDING_MODEL"
)

// LLMConfig contains settings for the OpenAI-compatible completion provider.
type LLMConfig struct {
	BaseURL        string `toml:"base_url"`
	Model          string `toml:"model"`
	EmbeddingModel string `toml:"embedding_model"`
	apiKey         string
}

// APIKey returns the provider API key loaded from the environment.
func (c *LLMConfig) APIKey() string {
	return c.apiKey
}

// Finalize applies defaults, loads environment overrides, and validates the configuration.
func (c *LLMConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *LLMConfig) Merge(overlay *LLMConfig) {
	if overlay.BaseURL != "" {
		c.BaseURL = overlay.BaseURL
	}
	if overlay.Model != "" {
		c.Model = overlay.Model
	}
	if overlay.EmbeddingModel != "" {
		c.EmbeddingModel = overlay.EmbeddingModel
	}
}

func (c *LLMConfig) loadDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = "https://api.groq.com/openai/v1"
	}
	if c.Model == "" {
		c.Model = "llama-3.1-8b-instant"
	}
	if c.EmbeddingModel == "" {
		c.EmbeddingModel = "text-embedding-3-small"
	}
}

func (c *LLMConfig) loadEnv() {
	c.apiKey = os.Getenv(EnvLLMAPIKey)

	if v := os.Getenv(EnvLLMBaseURL); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv(EnvLLMModel); v != "" {
		c.Model = v
	}
	if v := os.Getenv(EnvLLMEmbeddingModel); v != "" {
		c.EmbeddingModel = v
	}
}

func (c *LLMConfig) validate() error {
	if c.apiKey == "" {
		return fmt.Errorf("api key required: set %s", EnvLLMAPIKey)
	}
	return nil
}

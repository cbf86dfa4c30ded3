package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/compagent/platform/internal/config"
	"github.com/compagent/platform/internal/llm"
	"github.com/compagent/platform/internal/storage"
	"github.com/compagent/platform/internal/vector"
	"github.com/compagent/platform/pkg/logging"
	"github.com/compagent/platform/pkg/pagination"
)

// Runtime holds the process-wide infrastructure: logger, record storage,
// the vector backend, and the provider client. Created once at startup and
// shared read-only by all request handlers.
type Runtime struct {
	Logger     *slog.Logger
	Storage    storage.System
	Vector     *vector.Postgres
	LLM        *llm.Client
	Pagination pagination.Config
}

// NewRuntime initializes infrastructure from configuration: runs pending
// schema migrations, opens the vector backend, and prepares record storage.
func NewRuntime(ctx context.Context, cfg *config.Config) (*Runtime, error) {
	logger := logging.New(&cfg.Logging)

	if err := vector.Migrate(cfg.Vector.URL(), logger); err != nil {
		return nil, fmt.Errorf("vector migrations failed: %w", err)
	}

	llmClient := llm.New(&cfg.LLM)

	backend, err := vector.NewPostgres(ctx, &cfg.Vector, llmClient, llmClient.EmbeddingModel, logger)
	if err != nil {
		return nil, fmt.Errorf("vector init failed: %w", err)
	}

	store, err := storage.New(&cfg.Storage, logger)
	if err != nil {
		backend.Close()
		return nil, fmt.Errorf("storage init failed: %w", err)
	}

	return &Runtime{
		Logger:     logger,
		Storage:    store,
		Vector:     backend,
		LLM:        llmClient,
		Pagination: cfg.Pagination,
	}, nil
}

// Close releases runtime resources.
func (r *Runtime) Close() error {
	return r.Vector.Close()
}

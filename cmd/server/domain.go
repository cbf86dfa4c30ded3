package main

import (
	"context"
	"fmt"

	"github.com/compagent/platform/internal/agents"
	"github.com/compagent/platform/internal/config"
	"github.com/compagent/platform/internal/configurator"
	"github.com/compagent/platform/internal/conversation"
	"github.com/compagent/platform/internal/knowledge"
	"github.com/compagent/platform/internal/products"
	"github.com/compagent/platform/internal/tracker"
)

// Domain holds the service's domain systems, constructed over the runtime
// infrastructure and injected into handlers.
type Domain struct {
	Agents    agents.System
	Knowledge *knowledge.Store
	Catalog   *knowledge.Catalog
	Engine    *conversation.Engine
	Generator *configurator.Generator
	Products  *products.Registry
	Tracker   *tracker.Client
}

// NewDomain wires the domain systems. The agent registry rebuilds its index
// from stored records, so construction can fail.
func NewDomain(ctx context.Context, runtime *Runtime, cfg *config.Config) (*Domain, error) {
	registry, err := agents.NewRegistry(ctx, runtime.Storage, runtime.Logger)
	if err != nil {
		return nil, fmt.Errorf("agent registry init failed: %w", err)
	}

	return &Domain{
		Agents:    registry,
		Knowledge: knowledge.NewStore(runtime.Vector, runtime.Logger),
		Catalog:   knowledge.NewCatalog(),
		Engine:    conversation.NewEngine(runtime.LLM, runtime.LLM.Model, runtime.Logger),
		Generator: configurator.NewGenerator(runtime.LLM, runtime.LLM.Model, runtime.Logger),
		Products:  products.NewRegistry(),
		Tracker:   tracker.New(&cfg.Tracker, runtime.Logger),
	}, nil
}

package main

import (
	"net/http"

	"github.com/compagent/platform/internal/agents"
	"github.com/compagent/platform/internal/analytics"
	"github.com/compagent/platform/internal/config"
	"github.com/compagent/platform/internal/configurator"
	"github.com/compagent/platform/internal/conversation"
	"github.com/compagent/platform/internal/products"
	"github.com/compagent/platform/internal/tracker"
	"github.com/compagent/platform/pkg/routes"
)

// registerRoutes configures all HTTP routes for the service.
func registerRoutes(r routes.System, runtime *Runtime, domain *Domain, cfg *config.Config) {
	agentsHandler := agents.NewHandler(
		domain.Agents,
		domain.Knowledge,
		domain.Engine,
		runtime.Logger,
		runtime.Pagination,
		cfg.Storage.MaxUploadSizeBytes(),
	)
	conversationHandler := conversation.NewHandler(domain.Engine, domain.Catalog, runtime.Logger)
	configuratorHandler := configurator.NewHandler(domain.Generator, runtime.Logger)
	productsHandler := products.NewHandler(domain.Products, domain.Catalog, runtime.Logger, runtime.Pagination)
	analyticsHandler := analytics.NewHandler(runtime.Logger)
	trackerHandler := tracker.NewHandler(domain.Tracker, runtime.Logger)

	r.RegisterGroup(routes.Group{
		Prefix:      "/api/v1",
		Description: "Versioned service API",
		Children: []routes.Group{
			agentsHandler.Routes(),
			conversationHandler.Routes(),
			configuratorHandler.Routes(),
			productsHandler.Routes(),
			analyticsHandler.Routes(),
			trackerHandler.Routes(),
		},
	})

	r.RegisterRoute(routes.Route{
		Method:  "GET",
		Pattern: "/healthz",
		Handler: handleHealthCheck,
	})

	r.RegisterRoute(routes.Route{
		Method:  "GET",
		Pattern: "/readyz",
		Handler: func(w http.ResponseWriter, req *http.Request) {
			handleReadinessCheck(w, req, runtime)
		},
	})
}

// handleHealthCheck responds with OK status for health monitoring.
func handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// handleReadinessCheck verifies the vector backend is reachable.
func handleReadinessCheck(w http.ResponseWriter, r *http.Request, runtime *Runtime) {
	if err := runtime.Vector.Ping(r.Context()); err != nil {
		runtime.Logger.Warn("readiness check failed", "error", err)
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("NOT READY"))
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("READY"))
}

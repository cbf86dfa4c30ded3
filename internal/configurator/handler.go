package configurator

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/compagent/platform/pkg/decode"
	"github.com/compagent/platform/pkg/handlers"
	"github.com/compagent/platform/pkg/routes"
)

// ConfigureRequest asks for a configuration from loosely typed user inputs.
type ConfigureRequest struct {
	ProductID    string         `json:"product_id"`
	UserInputs   map[string]any `json:"user_inputs"`
	Requirements []string       `json:"requirements,omitempty"`
}

// ConfigureResponse is the generated configuration payload.
type ConfigureResponse struct {
	ProductID         string        `json:"product_id"`
	Configuration     Settings      `json:"configuration"`
	EstimatedPrice    float64       `json:"estimated_price"`
	SetupSteps        []string      `json:"setup_steps"`
	Integrations      []Integration `json:"integrations"`
	AIRecommendations string        `json:"ai_recommendations,omitempty"`
}

// AnalyzeRequest asks for a requirements analysis.
type AnalyzeRequest struct {
	ProductID    string   `json:"product_id"`
	Requirements []string `json:"requirements"`
}

// AnalyzeResponse is the analysis payload.
type AnalyzeResponse struct {
	ProductID            string         `json:"product_id"`
	RequirementsAnalysis string         `json:"requirements_analysis"`
	RecommendedConfig    Recommendation `json:"recommended_config"`
	CompatibilityScore   float64        `json:"compatibility_score"`
}

// Handler provides HTTP handlers for configuration generation and
// requirements analysis.
type Handler struct {
	gen    *Generator
	logger *slog.Logger
}

// NewHandler creates a new configurator HTTP handler.
func NewHandler(gen *Generator, logger *slog.Logger) *Handler {
	return &Handler{
		gen:    gen,
		logger: logger,
	}
}

// Routes returns the route group configuration for configurator endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/agent",
		Tags:        []string{"Configurator"},
		Description: "Product configuration and requirements analysis",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/configure", Handler: h.Configure},
			{Method: "POST", Pattern: "/analyze-requirements", Handler: h.Analyze},
		},
	}
}

// Configure handles POST /agent/configure to generate a configuration.
func (h *Handler) Configure(w http.ResponseWriter, r *http.Request) {
	var req ConfigureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}
	if req.ProductID == "" {
		handlers.RespondError(w, h.logger, http.StatusBadRequest,
			fmt.Errorf("product_id is required"))
		return
	}

	inputs, err := decode.FromMap[Inputs](req.UserInputs)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	config := h.gen.Generate(r.Context(), req.ProductID, inputs, req.Requirements)

	handlers.RespondJSON(w, http.StatusOK, ConfigureResponse{
		ProductID:         req.ProductID,
		Configuration:     config.Settings,
		EstimatedPrice:    config.Pricing,
		SetupSteps:        config.SetupSteps,
		Integrations:      config.Integrations,
		AIRecommendations: config.AIRecommendations,
	})
}

// Analyze handles POST /agent/analyze-requirements. Provider failures map
// to 502 since the analysis cannot degrade gracefully.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}
	if req.ProductID == "" || len(req.Requirements) == 0 {
		handlers.RespondError(w, h.logger, http.StatusBadRequest,
			fmt.Errorf("product_id and requirements are required"))
		return
	}

	analysis, err := h.gen.Analyze(r.Context(), req.ProductID, req.Requirements)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadGateway, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, AnalyzeResponse{
		ProductID:            req.ProductID,
		RequirementsAnalysis: analysis.Analysis,
		RecommendedConfig:    analysis.Recommendation,
		CompatibilityScore:   analysis.Score,
	})
}

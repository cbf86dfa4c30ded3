package conversation

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/compagent/platform/internal/knowledge"
	"github.com/compagent/platform/pkg/handlers"
	"github.com/compagent/platform/pkg/routes"
)

// ChatRequest is a product-keyed chat turn in the legacy flow.
type ChatRequest struct {
	ProductID string         `json:"product_id"`
	Message   string         `json:"message"`
	Context   map[string]any `json:"context,omitempty"`
	SessionID string         `json:"session_id,omitempty"`
}

// ChatResponse is the legacy chat payload.
type ChatResponse struct {
	Response      string         `json:"response"`
	Confidence    float64        `json:"confidence"`
	Suggestions   []string       `json:"suggestions"`
	ProductConfig map[string]any `json:"product_config"`
}

// Handler provides HTTP handlers for the legacy product-keyed
// conversational endpoints.
type Handler struct {
	engine  *Engine
	catalog *knowledge.Catalog
	logger  *slog.Logger
}

// NewHandler creates a new conversation HTTP handler.
func NewHandler(engine *Engine, catalog *knowledge.Catalog, logger *slog.Logger) *Handler {
	return &Handler{
		engine:  engine,
		catalog: catalog,
		logger:  logger,
	}
}

// Routes returns the route group configuration for the legacy endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/agent",
		Tags:        []string{"Assistant"},
		Description: "Product-keyed conversation and capabilities",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/chat", Handler: h.Chat},
			{Method: "GET", Pattern: "/product/{id}/capabilities", Handler: h.Capabilities},
		},
	}
}

// Chat handles POST /agent/chat: answers a product question with the
// catalog knowledge for the product.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}
	if req.ProductID == "" || req.Message == "" {
		handlers.RespondError(w, h.logger, http.StatusBadRequest,
			fmt.Errorf("product_id and message are required"))
		return
	}

	product := h.catalog.Get(req.ProductID)
	answer := h.engine.AnswerQuestion(r.Context(), product, req.Message, req.Context, req.SessionID)

	handlers.RespondJSON(w, http.StatusOK, ChatResponse{
		Response:      answer.Answer,
		Confidence:    answer.Confidence,
		Suggestions:   answer.Suggestions,
		ProductConfig: answer.ConfigSuggestion,
	})
}

// Capabilities handles GET /agent/product/{id}/capabilities to list the
// product's features.
func (h *Handler) Capabilities(w http.ResponseWriter, r *http.Request) {
	productID := r.PathValue("id")

	handlers.RespondJSON(w, http.StatusOK, map[string]any{
		"product_id":   productID,
		"capabilities": h.catalog.Capabilities(productID),
	})
}

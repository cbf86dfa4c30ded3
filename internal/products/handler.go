package products

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/compagent/platform/internal/knowledge"
	"github.com/compagent/platform/pkg/decode"
	"github.com/compagent/platform/pkg/handlers"
	"github.com/compagent/platform/pkg/pagination"
	"github.com/compagent/platform/pkg/routes"
)

// Handler provides HTTP handlers for product CRUD. Supplied knowledge bases
// are mirrored into the conversational catalog.
type Handler struct {
	registry   *Registry
	catalog    *knowledge.Catalog
	logger     *slog.Logger
	pagination pagination.Config
}

// NewHandler creates a new products HTTP handler.
func NewHandler(registry *Registry, catalog *knowledge.Catalog, logger *slog.Logger, pagination pagination.Config) *Handler {
	return &Handler{
		registry:   registry,
		catalog:    catalog,
		logger:     logger,
		pagination: pagination,
	}
}

// Routes returns the route group configuration for product endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/products",
		Tags:        []string{"Products"},
		Description: "Product catalog",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List},
			{Method: "POST", Pattern: "", Handler: h.Create},
			{Method: "GET", Pattern: "/{id}", Handler: h.Find},
			{Method: "PUT", Pattern: "/{id}", Handler: h.Update},
			{Method: "DELETE", Pattern: "/{id}", Handler: h.Delete},
		},
	}
}

// List handles GET /products with optional category filter.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination)
	category := r.URL.Query().Get("category")

	handlers.RespondJSON(w, http.StatusOK, pagination.Slice(h.registry.List(category), page))
}

// Create handles POST /products. A supplied knowledge_base seeds the
// conversational catalog under the new product's identifier.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var cmd CreateCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	product, err := h.registry.Create(cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	if len(cmd.KnowledgeBase) > 0 {
		if err := h.seedKnowledge(product.ID, cmd.KnowledgeBase); err != nil {
			handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
			return
		}
	}

	h.logger.Info("product created", "id", product.ID, "name", product.Name)
	handlers.RespondJSON(w, http.StatusCreated, product)
}

// Find handles GET /products/{id}.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	product, err := h.registry.GetByID(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, product)
}

// Update handles PUT /products/{id}. A supplied knowledge_base replaces the
// product's catalog knowledge.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var cmd UpdateCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	product, err := h.registry.Update(r.PathValue("id"), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	if cmd.KnowledgeBase != nil {
		if err := h.seedKnowledge(product.ID, *cmd.KnowledgeBase); err != nil {
			handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
			return
		}
	}

	handlers.RespondJSON(w, http.StatusOK, product)
}

// Delete handles DELETE /products/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.registry.Delete(r.PathValue("id")); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) seedKnowledge(productID string, raw map[string]any) error {
	k, err := decode.FromMap[knowledge.ProductKnowledge](raw)
	if err != nil {
		return err
	}
	h.catalog.Put(productID, k)
	return nil
}

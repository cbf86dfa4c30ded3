package analytics

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/compagent/platform/pkg/handlers"
	"github.com/compagent/platform/pkg/routes"
)

// Handler provides HTTP handlers for reporting endpoints.
type Handler struct {
	logger *slog.Logger
}

// NewHandler creates a new analytics HTTP handler.
func NewHandler(logger *slog.Logger) *Handler {
	return &Handler{logger: logger}
}

// Routes returns the route group configuration for analytics endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/analytics",
		Tags:        []string{"Analytics"},
		Description: "Conversation and product reporting",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/conversations", Handler: h.Conversations},
			{Method: "GET", Pattern: "/products/{id}", Handler: h.Product},
			{Method: "GET", Pattern: "/agent/performance", Handler: h.Performance},
			{Method: "GET", Pattern: "/dashboard", Handler: h.Dashboard},
		},
	}
}

// Conversations handles GET /analytics/conversations over a required date
// range.
func (h *Handler) Conversations(w http.ResponseWriter, r *http.Request) {
	if _, _, err := dateRange(r); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, conversationMetrics())
}

// Product handles GET /analytics/products/{id} with an optional days
// window.
func (h *Handler) Product(w http.ResponseWriter, r *http.Request) {
	// days narrows the reporting window once real aggregation lands; for
	// now it is validated only.
	if raw := r.URL.Query().Get("days"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err != nil || parsed <= 0 {
			handlers.RespondError(w, h.logger, http.StatusBadRequest,
				fmt.Errorf("invalid days parameter: %q", raw))
			return
		}
	}

	handlers.RespondJSON(w, http.StatusOK, productMetrics(r.PathValue("id")))
}

// Performance handles GET /analytics/agent/performance over a required
// date range.
func (h *Handler) Performance(w http.ResponseWriter, r *http.Request) {
	if _, _, err := dateRange(r); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, agentPerformance())
}

// Dashboard handles GET /analytics/dashboard.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, dashboardSummary(time.Now().UTC()))
}

// dateRange parses the required start_date and end_date query parameters
// as RFC 3339 timestamps.
func dateRange(r *http.Request) (time.Time, time.Time, error) {
	start, err := time.Parse(time.RFC3339, r.URL.Query().Get("start_date"))
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid start_date: %w", err)
	}

	end, err := time.Parse(time.RFC3339, r.URL.Query().Get("end_date"))
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid end_date: %w", err)
	}

	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("end_date precedes start_date")
	}

	return start, end, nil
}

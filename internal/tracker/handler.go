package tracker

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/compagent/platform/pkg/handlers"
	"github.com/compagent/platform/pkg/routes"
)

// TaskRequest asks for an issue to be created from text.
type TaskRequest struct {
	Text       string `json:"text"`
	ProjectKey string `json:"project_key,omitempty"`
	IssueType  string `json:"issue_type,omitempty"`
}

// TaskResponse reports the created issue.
type TaskResponse struct {
	Success bool   `json:"success"`
	TaskKey string `json:"task_key"`
	TaskURL string `json:"task_url"`
	Message string `json:"message"`
}

// Handler provides HTTP handlers for the tracker passthrough.
type Handler struct {
	client *Client
	logger *slog.Logger
}

// NewHandler creates a new tracker HTTP handler.
func NewHandler(client *Client, logger *slog.Logger) *Handler {
	return &Handler{
		client: client,
		logger: logger,
	}
}

// Routes returns the route group configuration for tracker endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/jira",
		Tags:        []string{"Tracker"},
		Description: "Issue tracker passthrough",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/create-task", Handler: h.CreateTask},
			{Method: "GET", Pattern: "/test-connection", Handler: h.TestConnection},
		},
	}
}

// CreateTask handles POST /jira/create-task.
func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req TaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}
	if req.Text == "" {
		handlers.RespondError(w, h.logger, http.StatusBadRequest,
			fmt.Errorf("text is required"))
		return
	}

	task, err := h.client.CreateTask(r.Context(), req.Text, req.ProjectKey, req.IssueType)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, TaskResponse{
		Success: true,
		TaskKey: task.Key,
		TaskURL: task.URL,
		Message: fmt.Sprintf("Task %s created successfully", task.Key),
	})
}

// TestConnection handles GET /jira/test-connection.
func (h *Handler) TestConnection(w http.ResponseWriter, r *http.Request) {
	user, err := h.client.TestConnection(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Tracker connection successful",
		"user":    user,
	})
}

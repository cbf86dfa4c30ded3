package agents

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/compagent/platform/internal/conversation"
	"github.com/compagent/platform/internal/knowledge"
	"github.com/compagent/platform/pkg/handlers"
	"github.com/compagent/platform/pkg/pagination"
	"github.com/compagent/platform/pkg/routes"
)

// Handler provides HTTP handlers for agent CRUD, document uploads,
// endpoint declarations, and retrieval-augmented chat.
type Handler struct {
	sys        System
	knowledge  *knowledge.Store
	engine     *conversation.Engine
	logger     *slog.Logger
	pagination pagination.Config
	maxUpload  int64
}

// NewHandler creates a new agents HTTP handler.
func NewHandler(sys System, store *knowledge.Store, engine *conversation.Engine, logger *slog.Logger, pagination pagination.Config, maxUpload int64) *Handler {
	return &Handler{
		sys:        sys,
		knowledge:  store,
		engine:     engine,
		logger:     logger,
		pagination: pagination,
		maxUpload:  maxUpload,
	}
}

// Routes returns the route group configuration for agent endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/agents",
		Tags:        []string{"Agents"},
		Description: "Agent configuration, documents, and chat",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List},
			{Method: "POST", Pattern: "", Handler: h.Create},
			{Method: "GET", Pattern: "/{id}", Handler: h.Find},
			{Method: "PUT", Pattern: "/{id}", Handler: h.Update},
			{Method: "DELETE", Pattern: "/{id}", Handler: h.Delete},
			{Method: "POST", Pattern: "/{id}/documents", Handler: h.UploadDocument},
			{Method: "POST", Pattern: "/{id}/endpoints", Handler: h.AddEndpoint},
			{Method: "POST", Pattern: "/{id}/chat", Handler: h.Chat},
		},
	}
}

// List handles GET /agents to retrieve a paginated list of agents.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination)

	agents, err := h.sys.List(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, pagination.Slice(ToViews(agents), page))
}

// Create handles POST /agents to create an agent and its knowledge
// collection.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var cmd CreateCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	agent, err := h.sys.Create(r.Context(), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	// Indexing failure must surface: an agent without a collection cannot
	// accept documents.
	if err := h.knowledge.CreateCollection(r.Context(), agent.ID); err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, ToView(agent))
}

// Find handles GET /agents/{id} to retrieve a single agent.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	agent, err := h.sys.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, ToView(agent))
}

// Update handles PUT /agents/{id} to apply a partial update.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var cmd UpdateCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	agent, err := h.sys.Update(r.Context(), r.PathValue("id"), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, ToView(agent))
}

// Delete handles DELETE /agents/{id}. The knowledge collection is removed
// best-effort: the agent record is already gone, so a backend failure only
// leaves orphaned chunks.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := h.sys.Delete(r.Context(), id); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	if err := h.knowledge.DeleteCollection(r.Context(), id); err != nil {
		h.logger.Warn("orphaned knowledge collection", "agent", id, "error", err)
	}

	handlers.RespondMessage(w, http.StatusOK, "Agent deleted successfully")
}

// UploadDocument handles POST /agents/{id}/documents: accepts a text file
// upload, indexes it, and appends document metadata to the agent.
func (h *Handler) UploadDocument(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if _, err := h.sys.GetByID(r.Context(), id); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)
	if err := r.ParseMultipartForm(h.maxUpload); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(uploadError(err)), uploadError(err))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(uploadError(err)), uploadError(err))
		return
	}

	if !utf8.Valid(content) {
		handlers.RespondError(w, h.logger, MapHTTPStatus(ErrBinaryUpload), ErrBinaryUpload)
		return
	}

	docID, _, err := h.knowledge.AddDocument(r.Context(), id, string(content), map[string]any{
		"filename": header.Filename,
		"agent_id": id,
	})
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	doc := Document{
		ID:         docID,
		Name:       header.Filename,
		Size:       int64(len(content)),
		Type:       header.Header.Get("Content-Type"),
		Status:     "ready",
		UploadedAt: time.Now().UTC(),
	}

	if _, err := h.sys.AddDocument(r.Context(), id, doc); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, map[string]any{
		"message":  "Document uploaded successfully",
		"document": doc,
	})
}

// AddEndpoint handles POST /agents/{id}/endpoints to append a declared
// endpoint.
func (h *Handler) AddEndpoint(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var cmd EndpointCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}
	if err := cmd.Validate(); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	endpoint := Endpoint{
		ID:              uuid.NewString(),
		Name:            cmd.Name,
		Method:          cmd.Method,
		URL:             cmd.URL,
		Description:     cmd.Description,
		RequestExample:  cmd.RequestExample,
		ResponseExample: cmd.ResponseExample,
	}

	if _, err := h.sys.AddEndpoint(r.Context(), id, endpoint); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, map[string]any{
		"message":  "Endpoint added successfully",
		"endpoint": endpoint,
	})
}

// Chat handles POST /agents/{id}/chat: retrieves relevant document context
// and answers with the agent's persona.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var cmd ChatCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}
	if err := cmd.Validate(); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	agent, err := h.sys.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	docContext := h.knowledge.Search(r.Context(), agent.ID, cmd.Message, knowledge.DefaultTopK)

	profile := conversation.Profile{
		Name:         agent.Name,
		Description:  agent.Description,
		Role:         agent.PersonaRole,
		Tone:         agent.PersonaTone,
		Instructions: agent.PersonaInstructions,
		Constraints:  agent.PersonaConstraints,
	}

	response := h.engine.Respond(r.Context(), profile.SystemPrompt(), cmd.Message, docContext, cmd.SessionID)

	handlers.RespondJSON(w, http.StatusOK, map[string]any{
		"response":   response,
		"agent_id":   agent.ID,
		"agent_name": agent.Name,
	})
}

// uploadError normalizes body-limit errors to the domain error so they map
// to 413 instead of 500.
func uploadError(err error) error {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return ErrUploadTooLarge
	}
	return err
}

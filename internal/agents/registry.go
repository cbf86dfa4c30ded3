package agents

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/compagent/platform/internal/storage"
)

// Registry implements System with an in-memory index backed by durable
// record storage: one JSON file per agent, rewritten atomically on every
// mutation. Safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	agents map[string]*Agent
	store  storage.System
	logger *slog.Logger
}

// NewRegistry creates a Registry and rebuilds the in-memory index from the
// records already on disk. Unreadable records are skipped with a warning so
// one corrupt file cannot block startup.
func NewRegistry(ctx context.Context, store storage.System, logger *slog.Logger) (*Registry, error) {
	r := &Registry{
		agents: make(map[string]*Agent),
		store:  store,
		logger: logger.With("system", "agents"),
	}

	keys, err := store.List(ctx, ".json")
	if err != nil {
		return nil, fmt.Errorf("scan agent records: %w", err)
	}

	for _, key := range keys {
		data, err := store.Retrieve(ctx, key)
		if err != nil {
			r.logger.Warn("skipping unreadable agent record", "key", key, "error", err)
			continue
		}

		var agent Agent
		if err := json.Unmarshal(data, &agent); err != nil || agent.ID == "" {
			r.logger.Warn("skipping corrupt agent record", "key", key, "error", err)
			continue
		}

		r.agents[agent.ID] = &agent
	}

	r.logger.Info("agent registry loaded", "count", len(r.agents))
	return r, nil
}

func recordKey(id string) string {
	return id + ".json"
}

// persist rewrites the agent's record. Callers must hold the write lock.
func (r *Registry) persist(ctx context.Context, agent *Agent) error {
	data, err := json.MarshalIndent(agent, "", "  ")
	if err != nil {
		return fmt.Errorf("encode agent %s: %w", agent.ID, err)
	}
	if err := r.store.Store(ctx, recordKey(agent.ID), data); err != nil {
		return fmt.Errorf("persist agent %s: %w", agent.ID, err)
	}
	return nil
}

// Create assigns an identifier and persists the new agent immediately.
func (r *Registry) Create(ctx context.Context, cmd CreateCommand) (*Agent, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	agent := &Agent{
		ID:                  uuid.NewString(),
		Name:                cmd.Name,
		Description:         cmd.Description,
		PersonaRole:         cmd.PersonaRole,
		PersonaTone:         cmd.PersonaTone,
		PersonaInstructions: cmd.PersonaInstructions,
		PersonaConstraints:  cmd.PersonaConstraints,
		Status:              StatusActive,
		Documents:           []Document{},
		Endpoints:           []Endpoint{},
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.persist(ctx, agent); err != nil {
		return nil, err
	}
	r.agents[agent.ID] = agent

	r.logger.Info("agent created", "id", agent.ID, "name", agent.Name)
	return agent.clone(), nil
}

// Update applies supplied fields only, bumps the update timestamp, and
// persists the record.
func (r *Registry) Update(ctx context.Context, id string, cmd UpdateCommand) (*Agent, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	agent, ok := r.agents[id]
	if !ok {
		return nil, ErrNotFound
	}

	updated := agent.clone()
	if cmd.Name != nil {
		updated.Name = *cmd.Name
	}
	if cmd.Description != nil {
		updated.Description = *cmd.Description
	}
	if cmd.PersonaRole != nil {
		updated.PersonaRole = *cmd.PersonaRole
	}
	if cmd.PersonaTone != nil {
		updated.PersonaTone = *cmd.PersonaTone
	}
	if cmd.PersonaInstructions != nil {
		updated.PersonaInstructions = *cmd.PersonaInstructions
	}
	if cmd.PersonaConstraints != nil {
		updated.PersonaConstraints = *cmd.PersonaConstraints
	}
	if cmd.Status != nil {
		updated.Status = *cmd.Status
	}
	updated.UpdatedAt = time.Now().UTC()

	if err := r.persist(ctx, updated); err != nil {
		return nil, err
	}
	r.agents[id] = updated

	return updated.clone(), nil
}

// Delete removes the agent and its record. The caller is responsible for
// cleaning up the agent's knowledge collection.
func (r *Registry) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.agents[id]; !ok {
		return ErrNotFound
	}

	if err := r.store.Delete(ctx, recordKey(id)); err != nil {
		return fmt.Errorf("delete agent record %s: %w", id, err)
	}
	delete(r.agents, id)

	r.logger.Info("agent deleted", "id", id)
	return nil
}

// GetByID returns a copy of the agent.
func (r *Registry) GetByID(_ context.Context, id string) (*Agent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	agent, ok := r.agents[id]
	if !ok {
		return nil, ErrNotFound
	}
	return agent.clone(), nil
}

// List returns all agents ordered by creation time, oldest first. Name
// breaks ties so the ordering is stable across restarts.
func (r *Registry) List(_ context.Context) ([]Agent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	agents := make([]Agent, 0, len(r.agents))
	for _, agent := range r.agents {
		agents = append(agents, *agent.clone())
	}

	sort.Slice(agents, func(i, j int) bool {
		if agents[i].CreatedAt.Equal(agents[j].CreatedAt) {
			return strings.Compare(agents[i].Name, agents[j].Name) < 0
		}
		return agents[i].CreatedAt.Before(agents[j].CreatedAt)
	})

	return agents, nil
}

// AddDocument appends document metadata and persists the record.
func (r *Registry) AddDocument(ctx context.Context, id string, doc Document) (*Agent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	agent, ok := r.agents[id]
	if !ok {
		return nil, ErrNotFound
	}

	updated := agent.clone()
	updated.Documents = append(updated.Documents, doc)
	updated.UpdatedAt = time.Now().UTC()

	if err := r.persist(ctx, updated); err != nil {
		return nil, err
	}
	r.agents[id] = updated

	return updated.clone(), nil
}

// AddEndpoint appends an endpoint and persists the record.
func (r *Registry) AddEndpoint(ctx context.Context, id string, endpoint Endpoint) (*Agent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	agent, ok := r.agents[id]
	if !ok {
		return nil, ErrNotFound
	}

	updated := agent.clone()
	updated.Endpoints = append(updated.Endpoints, endpoint)
	updated.UpdatedAt = time.Now().UTC()

	if err := r.persist(ctx, updated); err != nil {
		return nil, err
	}
	r.agents[id] = updated

	return updated.clone(), nil
}

// Package agents implements the agent registry: persona-configured records
// persisted as one JSON file each, with appended document and endpoint
// metadata and the HTTP surface for CRUD, uploads, and chat.
package agents

import "time"

// Conventional agent statuses. The field is free-form: updates may set any
// string, these are just the values the service itself assigns or expects.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusDraft    = "draft"
)

// Agent is a configurable AI persona bound to a knowledge collection. The
// record is the unit of persistence: every mutation rewrites the agent's
// JSON file.
type Agent struct {
	ID                  string     `json:"id"`
	Name                string     `json:"name"`
	Description         string     `json:"description"`
	PersonaRole         string     `json:"persona_role"`
	PersonaTone         string     `json:"persona_tone"`
	PersonaInstructions string     `json:"persona_instructions"`
	PersonaConstraints  string     `json:"persona_constraints"`
	Status              string     `json:"status"`
	Documents           []Document `json:"documents"`
	Endpoints           []Endpoint `json:"endpoints"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// Document is upload metadata for an indexed document. The content itself
// lives as chunks in the vector backend under the document's ID.
type Document struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Size       int64     `json:"size"`
	Type       string    `json:"type"`
	Status     string    `json:"status"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// Endpoint is a declared integration endpoint attached to an agent.
type Endpoint struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Method          string `json:"method"`
	URL             string `json:"url"`
	Description     string `json:"description"`
	RequestExample  string `json:"request_example"`
	ResponseExample string `json:"response_example"`
}

// clone returns a deep copy so registry callers never share slices with
// the stored record.
func (a *Agent) clone() *Agent {
	c := *a
	c.Documents = make([]Document, len(a.Documents))
	copy(c.Documents, a.Documents)
	c.Endpoints = make([]Endpoint, len(a.Endpoints))
	copy(c.Endpoints, a.Endpoints)
	return &c
}

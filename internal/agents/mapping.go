package agents

import "time"

// AgentView is the response projection for agent records: full persona
// fields plus attachment counts instead of the attachment lists.
type AgentView struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	Description         string    `json:"description"`
	PersonaRole         string    `json:"persona_role"`
	PersonaTone         string    `json:"persona_tone"`
	PersonaInstructions string    `json:"persona_instructions"`
	PersonaConstraints  string    `json:"persona_constraints"`
	Status              string    `json:"status"`
	DocumentCount       int       `json:"document_count"`
	EndpointCount       int       `json:"endpoint_count"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// ToView maps an Agent to its response projection.
func ToView(a *Agent) AgentView {
	return AgentView{
		ID:                  a.ID,
		Name:                a.Name,
		Description:         a.Description,
		PersonaRole:         a.PersonaRole,
		PersonaTone:         a.PersonaTone,
		PersonaInstructions: a.PersonaInstructions,
		PersonaConstraints:  a.PersonaConstraints,
		Status:              a.Status,
		DocumentCount:       len(a.Documents),
		EndpointCount:       len(a.Endpoints),
		CreatedAt:           a.CreatedAt,
		UpdatedAt:           a.UpdatedAt,
	}
}

// ToViews maps a slice of agents to their response projections.
func ToViews(agents []Agent) []AgentView {
	views := make([]AgentView, len(agents))
	for i := range agents {
		views[i] = ToView(&agents[i])
	}
	return views
}

package agents

import "fmt"

const (
	maxNameLength        = 200
	maxDescriptionLength = 1000
)

// CreateCommand carries the fields for creating an agent. Persona fields
// are optional; tone defaults to "professional".
type CreateCommand struct {
	Name                string `json:"name"`
	Description         string `json:"description"`
	PersonaRole         string `json:"persona_role"`
	PersonaTone         string `json:"persona_tone"`
	PersonaInstructions string `json:"persona_instructions"`
	PersonaConstraints  string `json:"persona_constraints"`
}

// Validate checks field constraints and applies defaults.
func (c *CreateCommand) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if len(c.Name) > maxNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrValidation, maxNameLength)
	}
	if c.Description == "" {
		return fmt.Errorf("%w: description is required", ErrValidation)
	}
	if len(c.Description) > maxDescriptionLength {
		return fmt.Errorf("%w: description exceeds %d characters", ErrValidation, maxDescriptionLength)
	}
	if c.PersonaTone == "" {
		c.PersonaTone = "professional"
	}
	return nil
}

// UpdateCommand carries a partial update; nil fields are left unchanged.
type UpdateCommand struct {
	Name                *string `json:"name,omitempty"`
	Description         *string `json:"description,omitempty"`
	PersonaRole         *string `json:"persona_role,omitempty"`
	PersonaTone         *string `json:"persona_tone,omitempty"`
	PersonaInstructions *string `json:"persona_instructions,omitempty"`
	PersonaConstraints  *string `json:"persona_constraints,omitempty"`
	Status              *string `json:"status,omitempty"`
}

// Validate checks supplied fields; absent fields are not constrained.
func (c *UpdateCommand) Validate() error {
	if c.Name != nil {
		if *c.Name == "" {
			return fmt.Errorf("%w: name cannot be empty", ErrValidation)
		}
		if len(*c.Name) > maxNameLength {
			return fmt.Errorf("%w: name exceeds %d characters", ErrValidation, maxNameLength)
		}
	}
	if c.Description != nil && len(*c.Description) > maxDescriptionLength {
		return fmt.Errorf("%w: description exceeds %d characters", ErrValidation, maxDescriptionLength)
	}
	// Status carries no state machine; any string is stored as-is.
	return nil
}

// EndpointCommand declares an endpoint to append to an agent.
type EndpointCommand struct {
	Name            string `json:"name"`
	Method          string `json:"method"`
	URL             string `json:"url"`
	Description     string `json:"description"`
	RequestExample  string `json:"request_example"`
	ResponseExample string `json:"response_example"`
}

// Validate checks required endpoint fields.
func (c *EndpointCommand) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("%w: endpoint name is required", ErrValidation)
	}
	if c.Method == "" {
		return fmt.Errorf("%w: endpoint method is required", ErrValidation)
	}
	if c.URL == "" {
		return fmt.Errorf("%w: endpoint url is required", ErrValidation)
	}
	return nil
}

// ChatCommand is a chat turn addressed to an agent. SessionID is optional;
// when present, the exchange participates in rolling session history.
type ChatCommand struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id,omitempty"`
}

// Validate checks the message is present.
func (c *ChatCommand) Validate() error {
	if c.Message == "" {
		return fmt.Errorf("%w: message is required", ErrValidation)
	}
	return nil
}

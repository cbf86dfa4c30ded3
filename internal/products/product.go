// Package products implements the product catalog: in-memory CRUD records
// with optional seeded knowledge for the legacy conversational flows.
package products

import (
	"fmt"
	"time"
)

// Product is a catalog entry describing a sellable product.
type Product struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Description        string    `json:"description"`
	Category           string    `json:"category"`
	Features           []string  `json:"features"`
	PricingModel       string    `json:"pricing_model"`
	IntegrationOptions []string  `json:"integration_options"`
	DocumentationURL   string    `json:"documentation_url,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// CreateCommand carries the fields for creating a product. KnowledgeBase
// optionally seeds the conversational knowledge for the product.
type CreateCommand struct {
	Name               string         `json:"name"`
	Description        string         `json:"description"`
	Category           string         `json:"category"`
	Features           []string       `json:"features"`
	PricingModel       string         `json:"pricing_model"`
	IntegrationOptions []string       `json:"integration_options"`
	DocumentationURL   string         `json:"documentation_url,omitempty"`
	KnowledgeBase      map[string]any `json:"knowledge_base,omitempty"`
}

// Validate checks required creation fields.
func (c *CreateCommand) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if c.Category == "" {
		return fmt.Errorf("%w: category is required", ErrValidation)
	}
	return nil
}

// UpdateCommand carries a partial update; nil fields are left unchanged.
// Category is fixed at creation.
type UpdateCommand struct {
	Name               *string         `json:"name,omitempty"`
	Description        *string         `json:"description,omitempty"`
	Features           *[]string       `json:"features,omitempty"`
	PricingModel       *string         `json:"pricing_model,omitempty"`
	IntegrationOptions *[]string       `json:"integration_options,omitempty"`
	DocumentationURL   *string         `json:"documentation_url,omitempty"`
	KnowledgeBase      *map[string]any `json:"knowledge_base,omitempty"`
}

// Validate checks supplied fields.
func (c *UpdateCommand) Validate() error {
	if c.Name != nil && *c.Name == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrValidation)
	}
	return nil
}

package products

import (
	"fmt"
	"sort"
	"sync"
	"time"
)

// Registry is the in-memory product index. Identifiers are sequential and
// never reused within a process lifetime. Safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	products map[string]Product
	seq      int
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{products: make(map[string]Product)}
}

// Create assigns the next identifier and stores the product.
func (r *Registry) Create(cmd CreateCommand) (*Product, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	now := time.Now().UTC()

	product := Product{
		ID:                 fmt.Sprintf("prod_%d", r.seq),
		Name:               cmd.Name,
		Description:        cmd.Description,
		Category:           cmd.Category,
		Features:           cmd.Features,
		PricingModel:       cmd.PricingModel,
		IntegrationOptions: cmd.IntegrationOptions,
		DocumentationURL:   cmd.DocumentationURL,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	r.products[product.ID] = product
	return &product, nil
}

// GetByID returns the product.
func (r *Registry) GetByID(id string) (*Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &product, nil
}

// List returns products ordered by creation time, optionally filtered by
// category.
func (r *Registry) List(category string) []Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]Product, 0, len(r.products))
	for _, p := range r.products {
		if category != "" && p.Category != category {
			continue
		}
		products = append(products, p)
	}

	sort.Slice(products, func(i, j int) bool {
		if products[i].CreatedAt.Equal(products[j].CreatedAt) {
			return products[i].ID < products[j].ID
		}
		return products[i].CreatedAt.Before(products[j].CreatedAt)
	})

	return products
}

// Update applies supplied fields only and bumps the update timestamp.
func (r *Registry) Update(id string, cmd UpdateCommand) (*Product, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[id]
	if !ok {
		return nil, ErrNotFound
	}

	if cmd.Name != nil {
		product.Name = *cmd.Name
	}
	if cmd.Description != nil {
		product.Description = *cmd.Description
	}
	if cmd.Features != nil {
		product.Features = *cmd.Features
	}
	if cmd.PricingModel != nil {
		product.PricingModel = *cmd.PricingModel
	}
	if cmd.IntegrationOptions != nil {
		product.IntegrationOptions = *cmd.IntegrationOptions
	}
	if cmd.DocumentationURL != nil {
		product.DocumentationURL = *cmd.DocumentationURL
	}
	product.UpdatedAt = time.Now().UTC()

	r.products[id] = product
	return &product, nil
}

// Delete removes the product.
func (r *Registry) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return ErrNotFound
	}
	delete(r.products, id)
	return nil
}

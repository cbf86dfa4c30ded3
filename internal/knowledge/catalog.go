package knowledge

import (
	"strings"
	"sync"
)

// ProductKnowledge is the ad-hoc knowledge structure backing the legacy
// product-keyed endpoints. Unlike agent collections it lives in memory and
// is not vector-indexed.
type ProductKnowledge struct {
	ProductID        string         `json:"product_id"`
	Name             string         `json:"name"`
	Description      string         `json:"description"`
	Features         []string       `json:"features"`
	TechnicalSpecs   map[string]any `json:"technical_specs"`
	UseCases         []string       `json:"use_cases"`
	IntegrationGuide map[string]any `json:"integration_guide"`
	FAQ              []FAQEntry     `json:"faq"`
	Pricing          map[string]any `json:"pricing"`
	Documentation    string         `json:"documentation,omitempty"`
}

// FAQEntry is a question/answer pair in a product's knowledge.
type FAQEntry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// KnowledgeUpdate carries a partial update; nil fields are left unchanged.
type KnowledgeUpdate struct {
	Name             *string         `json:"name,omitempty"`
	Description      *string         `json:"description,omitempty"`
	Features         *[]string       `json:"features,omitempty"`
	TechnicalSpecs   *map[string]any `json:"technical_specs,omitempty"`
	UseCases         *[]string       `json:"use_cases,omitempty"`
	IntegrationGuide *map[string]any `json:"integration_guide,omitempty"`
	FAQ              *[]FAQEntry     `json:"faq,omitempty"`
	Pricing          *map[string]any `json:"pricing,omitempty"`
	Documentation    *string         `json:"documentation,omitempty"`
}

// SearchResult is a keyword-search hit with a fixed relevance weight per
// category.
type SearchResult struct {
	Type      string  `json:"type"`
	Content   any     `json:"content"`
	Relevance float64 `json:"relevance"`
}

// Catalog holds per-product knowledge for the legacy endpoints. Safe for
// concurrent use.
type Catalog struct {
	mu      sync.RWMutex
	entries map[string]ProductKnowledge
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{entries: make(map[string]ProductKnowledge)}
}

// defaultKnowledge is returned for products with no stored knowledge, so
// the legacy flows always have a structure to work against.
func defaultKnowledge(productID string) ProductKnowledge {
	return ProductKnowledge{
		ProductID:        productID,
		Name:             "Sample Product",
		Description:      "Product description",
		Features:         []string{},
		TechnicalSpecs:   map[string]any{},
		UseCases:         []string{},
		IntegrationGuide: map[string]any{},
		FAQ:              []FAQEntry{},
		Pricing:          map[string]any{},
	}
}

// Get returns the stored knowledge for productID, or the default structure
// when none has been added.
func (c *Catalog) Get(productID string) ProductKnowledge {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if k, ok := c.entries[productID]; ok {
		return k
	}
	return defaultKnowledge(productID)
}

// Put stores knowledge for productID, replacing any existing entry.
func (c *Catalog) Put(productID string, k ProductKnowledge) {
	k.ProductID = productID

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[productID] = k
}

// Update applies a partial update to an existing entry. Returns false when
// the product has no stored knowledge.
func (c *Catalog) Update(productID string, update KnowledgeUpdate) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	k, ok := c.entries[productID]
	if !ok {
		return false
	}

	if update.Name != nil {
		k.Name = *update.Name
	}
	if update.Description != nil {
		k.Description = *update.Description
	}
	if update.Features != nil {
		k.Features = *update.Features
	}
	if update.TechnicalSpecs != nil {
		k.TechnicalSpecs = *update.TechnicalSpecs
	}
	if update.UseCases != nil {
		k.UseCases = *update.UseCases
	}
	if update.IntegrationGuide != nil {
		k.IntegrationGuide = *update.IntegrationGuide
	}
	if update.FAQ != nil {
		k.FAQ = *update.FAQ
	}
	if update.Pricing != nil {
		k.Pricing = *update.Pricing
	}
	if update.Documentation != nil {
		k.Documentation = *update.Documentation
	}

	c.entries[productID] = k
	return true
}

// Capabilities lists the product's feature names.
func (c *Catalog) Capabilities(productID string) []string {
	k := c.Get(productID)
	if k.Features == nil {
		return []string{}
	}
	return k.Features
}

// SearchKnowledge runs a case-insensitive keyword search over the product's
// FAQ entries and features. category narrows the search to "faq" or
// "features"; empty searches both. FAQ hits outrank feature hits.
func (c *Catalog) SearchKnowledge(productID, query, category string) []SearchResult {
	k := c.Get(productID)
	needle := strings.ToLower(query)

	results := []SearchResult{}

	if category == "faq" || category == "" {
		for _, item := range k.FAQ {
			if strings.Contains(strings.ToLower(item.Question), needle) {
				results = append(results, SearchResult{
					Type:      "faq",
					Content:   item,
					Relevance: 0.9,
				})
			}
		}
	}

	if category == "features" || category == "" {
		for _, feature := range k.Features {
			if strings.Contains(strings.ToLower(feature), needle) {
				results = append(results, SearchResult{
					Type:      "feature",
					Content:   feature,
					Relevance: 0.8,
				})
			}
		}
	}

	return results
}

// IndexDocumentation attaches raw documentation text to an existing entry.
// Returns false when the product has no stored knowledge.
func (c *Catalog) IndexDocumentation(productID, documentation string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	k, ok := c.entries[productID]
	if !ok {
		return false
	}

	k.Documentation = documentation
	c.entries[productID] = k
	return true
}

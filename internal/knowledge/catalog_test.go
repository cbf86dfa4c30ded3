package knowledge_test

import (
	"testing"

	"github.com/compagent/platform/internal/knowledge"
)

func TestCatalogDefaults(t *testing.T) {
	catalog := knowledge.NewCatalog()

	k := catalog.Get("prod_1")
	if k.ProductID != "prod_1" {
		t.Errorf("ProductID = %q, want prod_1", k.ProductID)
	}
	if k.Name != "Sample Product" {
		t.Errorf("Name = %q, want Sample Product", k.Name)
	}
	if k.Description != "Product description" {
		t.Errorf("Description = %q, want Product description", k.Description)
	}
	if k.Features == nil || len(k.Features) != 0 {
		t.Errorf("Features = %v, want empty slice", k.Features)
	}
	if k.FAQ == nil || len(k.FAQ) != 0 {
		t.Errorf("FAQ = %v, want empty slice", k.FAQ)
	}
}

func TestCatalogPutGet(t *testing.T) {
	catalog := knowledge.NewCatalog()

	catalog.Put("prod_1", knowledge.ProductKnowledge{
		Name:     "CRM Suite",
		Features: []string{"Lead tracking", "Email sync"},
	})

	k := catalog.Get("prod_1")
	if k.Name != "CRM Suite" {
		t.Errorf("Name = %q, want CRM Suite", k.Name)
	}
	if k.ProductID != "prod_1" {
		t.Errorf("ProductID = %q, want prod_1", k.ProductID)
	}

	caps := catalog.Capabilities("prod_1")
	if len(caps) != 2 || caps[0] != "Lead tracking" {
		t.Errorf("Capabilities() = %v, want [Lead tracking Email sync]", caps)
	}
}

func TestCatalogUpdate(t *testing.T) {
	catalog := knowledge.NewCatalog()
	catalog.Put("prod_1", knowledge.ProductKnowledge{
		Name:        "CRM Suite",
		Description: "Customer management",
	})

	name := "CRM Suite Pro"
	if !catalog.Update("prod_1", knowledge.KnowledgeUpdate{Name: &name}) {
		t.Fatal("Update() = false, want true")
	}

	k := catalog.Get("prod_1")
	if k.Name != "CRM Suite Pro" {
		t.Errorf("Name = %q, want CRM Suite Pro", k.Name)
	}
	if k.Description != "Customer management" {
		t.Errorf("Description = %q, want unchanged", k.Description)
	}

	if catalog.Update("missing", knowledge.KnowledgeUpdate{Name: &name}) {
		t.Error("Update() on unknown product = true, want false")
	}
}

func TestCatalogSearchKnowledge(t *testing.T) {
	catalog := knowledge.NewCatalog()
	catalog.Put("prod_1", knowledge.ProductKnowledge{
		Features: []string{"Invoice export", "Audit log"},
		FAQ: []knowledge.FAQEntry{
			{Question: "How do I export invoices?", Answer: "Use the export menu."},
			{Question: "Is there an API?", Answer: "Yes."},
		},
	})

	tests := []struct {
		name      string
		query     string
		category  string
		types     []string
		relevance []float64
	}{
		{"faq outranks feature", "export", "", []string{"faq", "feature"}, []float64{0.9, 0.8}},
		{"faq only", "export", "faq", []string{"faq"}, []float64{0.9}},
		{"features only", "export", "features", []string{"feature"}, []float64{0.8}},
		{"case insensitive", "EXPORT", "faq", []string{"faq"}, []float64{0.9}},
		{"no hits", "billing", "", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := catalog.SearchKnowledge("prod_1", tt.query, tt.category)
			if len(results) != len(tt.types) {
				t.Fatalf("SearchKnowledge() returned %d results, want %d", len(results), len(tt.types))
			}
			for i, r := range results {
				if r.Type != tt.types[i] {
					t.Errorf("result %d type = %q, want %q", i, r.Type, tt.types[i])
				}
				if r.Relevance != tt.relevance[i] {
					t.Errorf("result %d relevance = %v, want %v", i, r.Relevance, tt.relevance[i])
				}
			}
		})
	}
}

func TestCatalogIndexDocumentation(t *testing.T) {
	catalog := knowledge.NewCatalog()

	if catalog.IndexDocumentation("missing", "docs") {
		t.Error("IndexDocumentation() on unknown product = true, want false")
	}

	catalog.Put("prod_1", knowledge.ProductKnowledge{Name: "CRM Suite"})
	if !catalog.IndexDocumentation("prod_1", "Full setup guide.") {
		t.Fatal("IndexDocumentation() = false, want true")
	}
	if got := catalog.Get("prod_1").Documentation; got != "Full setup guide." {
		t.Errorf("Documentation = %q, want %q", got, "Full setup guide.")
	}
}

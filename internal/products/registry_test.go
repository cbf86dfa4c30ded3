package products_test

import (
	"errors"
	"testing"

	"github.com/compagent/platform/internal/products"
)

func TestRegistryCreate(t *testing.T) {
	registry := products.NewRegistry()

	product, err := registry.Create(products.CreateCommand{
		Name:     "CRM Suite",
		Category: "crm",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if product.ID != "prod_1" {
		t.Errorf("ID = %q, want prod_1", product.ID)
	}
	if product.CreatedAt.IsZero() || product.UpdatedAt.IsZero() {
		t.Error("timestamps not set")
	}
}

func TestRegistryCreateValidation(t *testing.T) {
	registry := products.NewRegistry()

	tests := []struct {
		name string
		cmd  products.CreateCommand
	}{
		{"missing name", products.CreateCommand{Category: "crm"}},
		{"missing category", products.CreateCommand{Name: "CRM Suite"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := registry.Create(tt.cmd); !errors.Is(err, products.ErrValidation) {
				t.Errorf("Create() error = %v, want ErrValidation", err)
			}
		})
	}
}

func TestRegistryIDsNeverReused(t *testing.T) {
	registry := products.NewRegistry()

	first, err := registry.Create(products.CreateCommand{Name: "First", Category: "crm"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := registry.Delete(first.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	second, err := registry.Create(products.CreateCommand{Name: "Second", Category: "crm"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if second.ID != "prod_2" {
		t.Errorf("ID = %q, want prod_2 after delete", second.ID)
	}
}

func TestRegistryListByCategory(t *testing.T) {
	registry := products.NewRegistry()

	for _, p := range []products.CreateCommand{
		{Name: "CRM Suite", Category: "crm"},
		{Name: "Helpdesk", Category: "support"},
		{Name: "CRM Lite", Category: "crm"},
	} {
		if _, err := registry.Create(p); err != nil {
			t.Fatalf("Create(%s) error = %v", p.Name, err)
		}
	}

	all := registry.List("")
	if len(all) != 3 {
		t.Errorf("List(\"\") returned %d products, want 3", len(all))
	}

	crm := registry.List("crm")
	if len(crm) != 2 {
		t.Fatalf("List(crm) returned %d products, want 2", len(crm))
	}
	for _, p := range crm {
		if p.Category != "crm" {
			t.Errorf("List(crm) returned category %q", p.Category)
		}
	}
}

func TestRegistryUpdate(t *testing.T) {
	registry := products.NewRegistry()

	product, err := registry.Create(products.CreateCommand{
		Name:        "CRM Suite",
		Description: "original",
		Category:    "crm",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	name := "CRM Suite Pro"
	updated, err := registry.Update(product.ID, products.UpdateCommand{Name: &name})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Name != "CRM Suite Pro" {
		t.Errorf("Name = %q, want CRM Suite Pro", updated.Name)
	}
	if updated.Description != "original" {
		t.Errorf("Description = %q, want unchanged", updated.Description)
	}
	if updated.Category != "crm" {
		t.Errorf("Category = %q, want unchanged", updated.Category)
	}

	if _, err := registry.Update("missing", products.UpdateCommand{Name: &name}); !errors.Is(err, products.ErrNotFound) {
		t.Errorf("Update() on unknown product error = %v, want ErrNotFound", err)
	}
}

func TestRegistryDelete(t *testing.T) {
	registry := products.NewRegistry()

	product, err := registry.Create(products.CreateCommand{Name: "CRM Suite", Category: "crm"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := registry.Delete(product.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := registry.GetByID(product.ID); !errors.Is(err, products.ErrNotFound) {
		t.Errorf("GetByID() after delete error = %v, want ErrNotFound", err)
	}
	if err := registry.Delete(product.ID); !errors.Is(err, products.ErrNotFound) {
		t.Errorf("Delete() twice error = %v, want ErrNotFound", err)
	}
}

package decode_test

import (
	"testing"

	"github.com/compagent/platform/pkg/decode"
)

type settings struct {
	Name     string   `json:"name"`
	Replicas int      `json:"replicas"`
	Tags     []string `json:"tags"`
	Nested   struct {
		Enabled bool `json:"enabled"`
	} `json:"nested"`
}

func TestFromMap(t *testing.T) {
	got, err := decode.FromMap[settings](map[string]any{
		"name":     "primary",
		"replicas": 3,
		"tags":     []string{"a", "b"},
		"nested":   map[string]any{"enabled": true},
	})
	if err != nil {
		t.Fatalf("FromMap() error = %v", err)
	}

	if got.Name != "primary" || got.Replicas != 3 {
		t.Errorf("FromMap() = %+v, want name primary replicas 3", got)
	}
	if len(got.Tags) != 2 {
		t.Errorf("Tags = %v, want 2 entries", got.Tags)
	}
	if !got.Nested.Enabled {
		t.Error("Nested.Enabled = false, want true")
	}
}

func TestFromMapIgnoresUnknownKeys(t *testing.T) {
	got, err := decode.FromMap[settings](map[string]any{
		"name":    "primary",
		"unknown": "ignored",
	})
	if err != nil {
		t.Fatalf("FromMap() error = %v", err)
	}
	if got.Name != "primary" {
		t.Errorf("Name = %q, want primary", got.Name)
	}
}

func TestFromMapTypeMismatch(t *testing.T) {
	if _, err := decode.FromMap[settings](map[string]any{"replicas": "three"}); err == nil {
		t.Error("FromMap() error = nil, want type mismatch failure")
	}
}

func TestFromMapNil(t *testing.T) {
	got, err := decode.FromMap[settings](nil)
	if err != nil {
		t.Fatalf("FromMap(nil) error = %v", err)
	}
	if got.Name != "" || got.Replicas != 0 {
		t.Errorf("FromMap(nil) = %+v, want zero value", got)
	}
}

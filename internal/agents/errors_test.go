package agents_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/compagent/platform/internal/agents"
)

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", agents.ErrNotFound, http.StatusNotFound},
		{"validation", agents.ErrValidation, http.StatusBadRequest},
		{"binary upload", agents.ErrBinaryUpload, http.StatusBadRequest},
		{"upload too large", agents.ErrUploadTooLarge, http.StatusRequestEntityTooLarge},
		{"wrapped not found", fmt.Errorf("lookup: %w", agents.ErrNotFound), http.StatusNotFound},
		{"wrapped validation", fmt.Errorf("create: %w", agents.ErrValidation), http.StatusBadRequest},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
		{"nil", nil, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := agents.MapHTTPStatus(tt.err); got != tt.want {
				t.Errorf("MapHTTPStatus(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

package agents

import (
	"errors"
	"net/http"
)

// Domain errors for agent operations.
var (
	ErrNotFound       = errors.New("agent not found")
	ErrValidation     = errors.New("invalid agent request")
	ErrBinaryUpload   = errors.New("only text files are supported (TXT, MD)")
	ErrUploadTooLarge = errors.New("uploaded file exceeds the size limit")
)

// MapHTTPStatus maps domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrValidation) || errors.Is(err, ErrBinaryUpload) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrUploadTooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusInternalServerError
}

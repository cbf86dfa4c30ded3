package tracker

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/compagent/platform/internal/config"
)

// Domain errors for tracker operations.
var (
	ErrNotConfigured = fmt.Errorf(
		"tracker is not configured: set %s, %s, and %s",
		config.EnvTrackerServer, config.EnvTrackerEmail, config.EnvTrackerAPIToken,
	)
	ErrUpstream = errors.New("tracker request failed")
)

// MapHTTPStatus maps domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotConfigured) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrUpstream) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

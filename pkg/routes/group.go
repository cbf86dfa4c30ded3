// Package routes provides HTTP route registration and multiplexer construction.
// Handlers declare their endpoints as route groups; the system assembles them
// into a single http.Handler using Go 1.22 method patterns.
package routes

import "net/http"

// Route represents an HTTP route with method, pattern, and handler.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
}

// Group represents a collection of routes under a common URL prefix.
// Groups can contain child groups for hierarchical route organization.
type Group struct {
	Prefix      string
	Tags        []string
	Description string
	Routes      []Route
	Children    []Group
}

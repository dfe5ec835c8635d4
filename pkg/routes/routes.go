// Package routes describes native HTTP routes as data and registers them on
// a module router.
package routes

import (
	"net/http"

	"github.com/JaimeStill/student-portal/pkg/module"
)

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
	Description string
	Routes      []Route
	Children    []Group
}

// Register adds every route in the groups to r as native routes.
func Register(r *module.Router, groups ...Group) {
	for _, g := range groups {
		register(r, "", g)
	}
}

func register(r *module.Router, parentPrefix string, g Group) {
	prefix := parentPrefix + g.Prefix
	for _, route := range g.Routes {
		r.HandleNative(route.Method+" "+prefix+route.Pattern, route.Handler)
	}
	for _, child := range g.Children {
		register(r, prefix, child)
	}
}

// Package routing provides an immutable client route table for single-page
// applications. A Router maps URL paths to views, resolves locations according
// to the configured history mode, and generates URLs for named routes.
package routing

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/JaimeStill/student-portal/pkg/web"
)

// Route maps a URL path to a view. Name is optional and enables lookup
// through Named and Href.
type Route struct {
	Path string
	Name string
	View web.ViewDef
}

// Config holds the inputs of New.
type Config struct {
	History History
	Base    string
	Routes  []Route
}

// Router is a validated route table. It is read-only after New returns and
// safe for concurrent use.
type Router struct {
	history History
	base    string
	routes  []Route
	byPath  map[string]int
	byName  map[string]int
}

// New validates the route table and builds a Router from it.
// The route slice is copied; later changes to cfg.Routes are not observed.
func New(cfg Config) (*Router, error) {
	if err := cfg.History.Validate(); err != nil {
		return nil, err
	}

	r := &Router{
		history: cfg.History,
		base:    normalizeBase(cfg.Base),
		routes:  make([]Route, len(cfg.Routes)),
		byPath:  make(map[string]int, len(cfg.Routes)),
		byName:  make(map[string]int),
	}
	copy(r.routes, cfg.Routes)

	for i, route := range r.routes {
		if !strings.HasPrefix(route.Path, "/") {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPath, route.Path)
		}
		if route.View.Template == "" {
			return nil, fmt.Errorf("%w: %s", ErrMissingView, route.Path)
		}

		key := normalizePath(route.Path)
		if _, ok := r.byPath[key]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePath, route.Path)
		}
		r.byPath[key] = i

		if route.Name == "" {
			continue
		}
		if _, ok := r.byName[route.Name]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateName, route.Name)
		}
		r.byName[route.Name] = i
	}

	return r, nil
}

// History returns the configured history mode.
func (r *Router) History() History {
	return r.history
}

// Base returns the normalized base path. The root base is "".
func (r *Router) Base() string {
	return r.base
}

// Len returns the number of route entries.
func (r *Router) Len() int {
	return len(r.routes)
}

// Routes returns a copy of the route table in declaration order.
func (r *Router) Routes() []Route {
	routes := make([]Route, len(r.routes))
	copy(routes, r.routes)
	return routes
}

// Resolve returns the route matching location. The location may be a path
// or a full URL. The URL path must lie under the base path in both modes. In
// web mode the remainder is the route path; in hash mode the fragment holds
// the route path and an empty fragment is "/".
func (r *Router) Resolve(location string) (Route, error) {
	u, err := url.Parse(location)
	if err != nil {
		return Route{}, fmt.Errorf("%w: %s", ErrNoMatch, location)
	}

	p, ok := r.trimBase(u.Path)
	if r.history == HistoryHash {
		// A fragment-only location carries no path to check against the base.
		ok = ok || u.Path == ""
		p, _, _ = strings.Cut(u.Fragment, "?")
	}
	if !ok {
		return Route{}, fmt.Errorf("%w: %s", ErrNoMatch, location)
	}

	i, ok := r.byPath[normalizePath(p)]
	if !ok {
		return Route{}, fmt.Errorf("%w: %s", ErrNoMatch, location)
	}
	return r.routes[i], nil
}

// Named returns the route registered under name.
func (r *Router) Named(name string) (Route, error) {
	i, ok := r.byName[name]
	if !ok {
		return Route{}, fmt.Errorf("%w: %s", ErrUnknownName, name)
	}
	return r.routes[i], nil
}

// Href returns the browser URL for the named route.
func (r *Router) Href(name string) (string, error) {
	route, err := r.Named(name)
	if err != nil {
		return "", err
	}
	return r.HrefPath(route.Path), nil
}

// HrefPath returns the browser URL for a route path under the current
// history mode and base.
func (r *Router) HrefPath(path string) string {
	if r.history == HistoryHash {
		return r.base + "/#" + path
	}
	return r.base + path
}

func (r *Router) trimBase(p string) (string, bool) {
	if r.base == "" {
		return p, true
	}
	if p == r.base {
		return "/", true
	}
	if rest, ok := strings.CutPrefix(p, r.base); ok && strings.HasPrefix(rest, "/") {
		return rest, true
	}
	return "", false
}

func normalizeBase(base string) string {
	base = strings.TrimRight(strings.TrimSpace(base), "/")
	if base != "" && !strings.HasPrefix(base, "/") {
		base = "/" + base
	}
	return base
}

func normalizePath(p string) string {
	if p == "" {
		return "/"
	}
	if len(p) > 1 && strings.HasSuffix(p, "/") {
		return p[:len(p)-1]
	}
	return p
}

// Package module mounts HTTP handlers under single-segment path prefixes.
// A module sees request paths relative to its prefix, which keeps each
// module's route table independent of where it is mounted.
package module

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// Module pairs a path prefix with the handler serving it. The empty prefix
// denotes the root module, which receives every path no other module claims.
type Module struct {
	prefix     string
	router     http.Handler
	middleware []func(http.Handler) http.Handler
}

// New creates a module. It panics if prefix is neither empty nor a single
// path segment such as "/app", since prefixes are fixed at startup.
func New(prefix string, router http.Handler) *Module {
	if err := validatePrefix(prefix); err != nil {
		panic(err)
	}
	return &Module{prefix: prefix, router: router}
}

// Prefix returns the mount prefix.
func (m *Module) Prefix() string {
	return m.prefix
}

// Use appends middleware. The first middleware added is the outermost.
func (m *Module) Use(mw ...func(http.Handler) http.Handler) {
	m.middleware = append(m.middleware, mw...)
}

// Handler returns the module handler wrapped in its middleware.
func (m *Module) Handler() http.Handler {
	h := m.router
	for i := len(m.middleware) - 1; i >= 0; i-- {
		h = m.middleware[i](h)
	}
	return h
}

// Serve strips the module prefix from the request path and dispatches it.
func (m *Module) Serve(w http.ResponseWriter, r *http.Request) {
	p := strings.TrimPrefix(r.URL.Path, m.prefix)
	if p == "" {
		p = "/"
	}
	m.Handler().ServeHTTP(w, withPath(r, p))
}

func withPath(r *http.Request, p string) *http.Request {
	r2 := new(http.Request)
	*r2 = *r
	r2.URL = new(url.URL)
	*r2.URL = *r.URL
	r2.URL.Path = p
	r2.URL.RawPath = ""
	return r2
}

func validatePrefix(prefix string) error {
	if prefix == "" {
		return nil
	}
	if !strings.HasPrefix(prefix, "/") {
		return fmt.Errorf("module prefix must start with /: %q", prefix)
	}
	if len(prefix) == 1 || strings.Contains(prefix[1:], "/") {
		return fmt.Errorf("module prefix must be a single path segment: %q", prefix)
	}
	return nil
}

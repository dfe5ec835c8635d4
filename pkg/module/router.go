package module

import (
	"net/http"
	"strings"
)

// Router dispatches native routes first, then modules by the first path
// segment, then the root module if one is mounted.
type Router struct {
	native  *http.ServeMux
	modules map[string]*Module
	root    *Module
}

// NewRouter creates an empty Router.
func NewRouter() *Router {
	return &Router{
		native:  http.NewServeMux(),
		modules: make(map[string]*Module),
	}
}

// HandleNative registers a handler that is matched before any module.
func (r *Router) HandleNative(pattern string, handler http.HandlerFunc) {
	r.native.HandleFunc(pattern, handler)
}

// Mount registers a module under its prefix. Mounting a second module with
// the same prefix replaces the first.
func (r *Router) Mount(m *Module) {
	if m.prefix == "" {
		r.root = m
		return
	}
	r.modules[m.prefix] = m
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if _, pattern := r.native.Handler(req); pattern != "" {
		r.native.ServeHTTP(w, req)
		return
	}

	p := normalizePath(req.URL.Path)
	if m, ok := r.modules[firstSegment(p)]; ok {
		m.Serve(w, withPath(req, p))
		return
	}
	if r.root != nil {
		r.root.Serve(w, withPath(req, p))
		return
	}
	http.NotFound(w, req)
}

func firstSegment(p string) string {
	if i := strings.IndexByte(p[1:], '/'); i >= 0 {
		return p[:i+1]
	}
	return p
}

func normalizePath(p string) string {
	if p == "" {
		return "/"
	}
	if len(p) > 1 {
		p = strings.TrimSuffix(p, "/")
	}
	return p
}

package app

import "github.com/JaimeStill/student-portal/pkg/routing"

// Shell is the view data exposed to templates as {{ .Data }}.
type Shell struct {
	History  routing.History
	Path     string
	Manifest routing.Manifest

	router *routing.Router
}

func (h *Handler) shell(route routing.Route) Shell {
	return Shell{
		History:  h.router.History(),
		Path:     route.Path,
		Manifest: h.router.Manifest(),
		router:   h.router,
	}
}

// Href returns the browser URL for a route path.
func (s Shell) Href(path string) string {
	return s.router.HrefPath(path)
}

// HrefName returns the browser URL for a named route, or "#" when the name
// is not registered.
func (s Shell) HrefName(name string) string {
	href, err := s.router.Href(name)
	if err != nil {
		return "#"
	}
	return href
}

// Active reports whether path is the route being rendered.
func (s Shell) Active(path string) bool {
	return s.Path == path
}

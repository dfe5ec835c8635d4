// Package app provides the student portal web module: its route table,
// embedded templates and client assets.
package app

import (
	"embed"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/student-portal/pkg/module"
	"github.com/JaimeStill/student-portal/pkg/routing"
	"github.com/JaimeStill/student-portal/pkg/web"
)

//go:embed dist/*
var distFS embed.FS

//go:embed server/layouts/*
var layoutFS embed.FS

//go:embed server/views/*
var viewFS embed.FS

const layout = "app.html"

// Handler serves the portal views for one router instance.
type Handler struct {
	router    *routing.Router
	templates *web.TemplateSet
	logger    *slog.Logger
}

// NewHandler builds the route table and parses the templates for its views.
func NewHandler(history routing.History, basePath string, logger *slog.Logger) (*Handler, error) {
	router, err := NewRouter(history, basePath)
	if err != nil {
		return nil, fmt.Errorf("build routes: %w", err)
	}

	views := make([]web.ViewDef, 0, router.Len()+1)
	for _, route := range router.Routes() {
		views = append(views, route.View)
	}
	views = append(views, NotFound)

	ts, err := web.NewTemplateSet(
		layoutFS,
		viewFS,
		"server/layouts/*.html",
		"server/views",
		router.Base(),
		views,
	)
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	return &Handler{
		router:    router,
		templates: ts,
		logger:    logger,
	}, nil
}

// Router returns the route table served by the handler.
func (h *Handler) Router() *routing.Router {
	return h.router
}

// Module returns the handler mounted under the router base path.
func (h *Handler) Module() *module.Module {
	return module.New(h.router.Base(), h.Routes())
}

// Routes builds the HTTP handler for the views, the route API and assets.
// Paths are relative to the base path. In web history mode every route path
// is served so deep links load directly; in hash mode only "/" is served and
// the client resolves the fragment.
func (h *Handler) Routes() http.Handler {
	r := web.NewRouter()
	r.SetFallback(h.templates.ErrorHandler(layout, NotFound, http.StatusNotFound))

	for _, route := range h.served() {
		r.HandleFunc("GET "+pattern(route.Path), h.templates.ViewHandler(layout, route.View, h.shell(route)))
	}

	r.HandleFunc("GET /api/routes", h.handleManifest)
	r.HandleFunc("GET /api/routes/{name}", h.handleNamed)
	r.HandleFunc("GET /api/resolve", h.handleResolve)
	r.Handle("GET /dist/", http.FileServer(http.FS(distFS)))

	return r
}

func (h *Handler) served() []routing.Route {
	if h.router.History() == routing.HistoryWeb {
		return h.router.Routes()
	}
	entry, err := h.router.Resolve(h.router.HrefPath("/"))
	if err != nil {
		h.logger.Warn("hash history without a root route", "base", h.router.Base())
		return nil
	}
	return []routing.Route{entry}
}

func pattern(path string) string {
	if path == "/" {
		return "/{$}"
	}
	return path
}

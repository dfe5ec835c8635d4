package main

import (
	"net/http"

	"github.com/JaimeStill/student-portal/internal/config"
	"github.com/JaimeStill/student-portal/pkg/handlers"
	"github.com/JaimeStill/student-portal/pkg/lifecycle"
	"github.com/JaimeStill/student-portal/pkg/module"
	"github.com/JaimeStill/student-portal/pkg/routes"
)

// registerRoutes configures the infrastructure routes served ahead of the portal.
func registerRoutes(r *module.Router, ready lifecycle.ReadinessChecker, cfg *config.Config) {
	routes.Register(r, routes.Group{
		Description: "Infrastructure",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/healthz", Handler: handleHealthCheck},
			{Method: "GET", Pattern: "/readyz", Handler: func(w http.ResponseWriter, r *http.Request) {
				handleReadinessCheck(w, ready)
			}},
			{Method: "GET", Pattern: "/version", Handler: func(w http.ResponseWriter, r *http.Request) {
				handlers.RespondJSON(w, http.StatusOK, map[string]string{"version": cfg.Version})
			}},
		},
	})
}

// handleHealthCheck responds with OK status for health monitoring.
func handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func handleReadinessCheck(w http.ResponseWriter, ready lifecycle.ReadinessChecker) {
	if !ready.Ready() {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("NOT READY"))
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("READY"))
}

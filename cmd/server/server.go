package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/JaimeStill/student-portal/internal/config"
	"github.com/JaimeStill/student-portal/internal/server"
	"github.com/JaimeStill/student-portal/pkg/lifecycle"
	"github.com/JaimeStill/student-portal/pkg/logging"
	"github.com/JaimeStill/student-portal/pkg/module"
	"github.com/JaimeStill/student-portal/web/app"
)

// Server coordinates the lifecycle of all subsystems.
type Server struct {
	lifecycle *lifecycle.Coordinator
	logger    *slog.Logger
	handler   http.Handler
	http      server.System
}

// NewServer builds logging, the portal route table, and the HTTP stack.
func NewServer(cfg *config.Config) (*Server, error) {
	lc := lifecycle.New()
	logger := logging.New(&cfg.Logging)

	portal, err := app.NewHandler(cfg.App.History, cfg.App.BasePath, logger)
	if err != nil {
		return nil, fmt.Errorf("portal init failed: %w", err)
	}

	router := module.NewRouter()
	registerRoutes(router, lc, cfg)
	router.Mount(portal.Module())

	handler := buildMiddleware(logger).Apply(router)

	logger.Info(
		"server initialized",
		"addr", cfg.Server.Addr(),
		"version", cfg.Version,
		"history", portal.Router().History(),
		"base_path", portal.Router().Base(),
		"routes", portal.Router().Len(),
	)

	return &Server{
		lifecycle: lc,
		logger:    logger,
		handler:   handler,
		http:      server.New(&cfg.Server, handler, logger),
	}, nil
}

// Handler returns the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start begins all subsystems and returns once the listener is bound.
func (s *Server) Start() error {
	s.logger.Info("starting server")

	if err := s.http.Start(s.lifecycle); err != nil {
		return err
	}

	go func() {
		s.lifecycle.WaitForStartup()
		s.logger.Info("all subsystems ready", "addr", s.http.Addr())
	}()

	return nil
}

// Shutdown gracefully stops all subsystems within timeout.
func (s *Server) Shutdown(timeout time.Duration) error {
	s.logger.Info("initiating shutdown")
	return s.lifecycle.Shutdown(timeout)
}

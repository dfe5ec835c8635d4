package main

import (
	"log/slog"

	"github.com/JaimeStill/student-portal/pkg/middleware"
)

// buildMiddleware creates the middleware stack: request ids, request
// logging, then trailing slash canonicalization.
func buildMiddleware(logger *slog.Logger) middleware.System {
	sys := middleware.New()
	sys.Use(middleware.RequestID())
	sys.Use(middleware.Logger(logger))
	sys.Use(middleware.TrimSlash())
	return sys
}

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/JaimeStill/student-portal/pkg/routing"
)

const (
	// EnvAppBasePath overrides the path prefix the portal is mounted under.
	EnvAppBasePath = "APP_BASE_PATH"

	// EnvAppHistory overrides the client history mode (web or hash).
	EnvAppHistory = "APP_HISTORY"
)

// AppConfig configures the portal web application.
type AppConfig struct {
	// BasePath is "" to serve the portal at the root, or a single segment such as "/portal".
	BasePath string          `toml:"base_path"`
	History  routing.History `toml:"history"`
}

// Finalize applies defaults, loads environment overrides, and validates the app configuration.
func (c *AppConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *AppConfig) Merge(overlay *AppConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.History != "" {
		c.History = overlay.History
	}
}

func (c *AppConfig) loadDefaults() {
	if c.History == "" {
		c.History = routing.HistoryWeb
	}
}

func (c *AppConfig) loadEnv() {
	if v, ok := os.LookupEnv(EnvAppBasePath); ok {
		c.BasePath = v
	}
	if v := os.Getenv(EnvAppHistory); v != "" {
		c.History = routing.History(v)
	}
}

func (c *AppConfig) validate() error {
	c.BasePath = strings.TrimRight(c.BasePath, "/")
	if c.BasePath != "" {
		if !strings.HasPrefix(c.BasePath, "/") || strings.Contains(c.BasePath[1:], "/") {
			return fmt.Errorf("invalid base_path %q: must be empty or a single segment like /portal", c.BasePath)
		}
	}
	return c.History.Validate()
}

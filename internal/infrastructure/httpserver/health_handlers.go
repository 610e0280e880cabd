package httpserver

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
)

// healthCheck reports liveness: 200 with an empty body. Dependency probes run
// at startup (see cmd/server) and are exposed to tests via CheckDependencies.
func (s *Server) healthCheck(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

// CheckDependencies runs every configured health checker and returns the
// failures keyed by checker name.
func (s *Server) CheckDependencies(ctx context.Context) map[string]error {
	failures := make(map[string]error)
	for _, hc := range s.healthCheckers {
		if hc == nil {
			continue
		}
		if err := hc.Check(ctx); err != nil {
			failures[hc.Name()] = err
		}
	}
	return failures
}

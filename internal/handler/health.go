package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/slateworks/postparse/internal/server"
)

// HealthHandler exposes a system endpoint that uptime monitors and
// load balancers can use to verify the service is alive. There are no
// external dependencies to check, so healthy means "responding".
type HealthHandler struct {
	Handler

	startTime time.Time
}

// NewHealthHandler constructs a HealthHandler.
func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler:   NewHandler(s),
		startTime: time.Now(),
	}
}

// CheckHealth returns service status, environment and uptime.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"uptime":      time.Since(h.startTime).Seconds(),
	})
}

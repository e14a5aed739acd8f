package router

import (
	"github.com/labstack/echo/v4"
	"github.com/slateworks/postparse/internal/handler"
	"github.com/slateworks/postparse/internal/middleware"
)

// registerSystemRoutes registers endpoints that are not part of the
// body-format API: the landing page and the health endpoint.
//
// The CSRF middleware is scoped to the landing page so the cookie is
// issued there; the API endpoints stay CSRF-exempt.
func registerSystemRoutes(e *echo.Echo, h *handler.Handlers, m *middleware.Middlewares) {
	e.GET("/", h.Index.ServeIndex, m.Global.CSRF())

	e.GET("/status", h.Health.CheckHealth)
}

// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/slateworks/postparse/internal/handler"
	"github.com/slateworks/postparse/internal/middleware"
)

// New assembles the Echo instance: global middleware, the error
// handler funnel, and every route. The caller hands the result to the
// server as its http.Handler.
func New(h *handler.Handlers, m *middleware.Middlewares) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = m.Global.GlobalErrorHandler

	// Order matters: the request ID must exist before the context
	// enhancer builds the request-scoped logger, and recovery wraps
	// everything downstream.
	e.Use(middleware.RequestID())
	e.Use(m.ContextEnhancer.EnhanceContext())
	e.Use(m.Global.RequestLogger())
	e.Use(m.Global.Recover())
	e.Use(m.Global.Secure())
	e.Use(m.Global.CORS())

	registerAPIRoutes(e, h)
	registerSystemRoutes(e, h, m)

	return e
}

// registerAPIRoutes maps each body format to its handler. All API
// endpoints are POST-only; Echo answers other methods with 405.
func registerAPIRoutes(e *echo.Echo, h *handler.Handlers) {
	api := e.Group("/api")

	api.POST("/json/", h.Content.HandleJSON())
	api.POST("/multipart/", h.Content.HandleMultipart())
	api.POST("/urlencoded/", h.Content.HandleURLEncoded())
	api.POST("/text/", h.Content.HandleText())
	api.POST("/binary/", h.Content.HandleBinary())
	api.POST("/xml/", h.Content.HandleXML())
	api.POST("/html/", h.Content.HandleHTML())
	api.POST("/svg/", h.Content.HandleSVG())
	api.POST("/ndjson/", h.Content.HandleNDJSON())
}

package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/slateworks/postparse/internal/middleware"
	"github.com/slateworks/postparse/internal/server"
)

// Handler is the base handler type holding shared application
// dependencies. Concrete handlers embed it to reach config and the
// root logger via *server.Server.
type Handler struct {
	server *server.Server
}

// NewHandler constructs a base Handler. Returning by value is fine:
// the struct only contains a pointer field.
func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// decodeFunc decodes one request body and returns the success payload
// to serialize, or an error for the global error handler to format.
type decodeFunc func(c echo.Context) (interface{}, error)

// handle is the shared execution pipeline for all content handlers.
// It centralizes structured logging, timing, and response writing so
// the per-content handlers are just decode -> validate -> payload.
func (h Handler) handle(operation string, fn decodeFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		logger := middleware.GetLogger(c).With().
			Str("operation", operation).
			Str("content_type", middleware.RequestContentType(c)).
			Logger()

		logger.Debug().Msg("handling request")

		result, err := fn(c)
		if err != nil {
			logger.Error().
				Err(err).
				Dur("handler_duration", time.Since(start)).
				Msg("handler execution failed")
			return err
		}

		logger.Info().
			Dur("handler_duration", time.Since(start)).
			Msg("request completed successfully")

		return c.JSON(http.StatusOK, result)
	}
}

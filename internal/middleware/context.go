package middleware

import (
	"context"
	"mime"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// LoggerKey is the context key for the request-scoped logger.
const LoggerKey = "logger"

// ContextEnhancer enriches each request with a request-scoped logger
// carrying correlation fields (request_id, method, path, ip). The
// logger is stored both in the Echo context and the Go request
// context so non-Echo code can retrieve it.
type ContextEnhancer struct {
	logger zerolog.Logger
}

// NewContextEnhancer creates a ContextEnhancer deriving from the
// application's root logger.
func NewContextEnhancer(logger zerolog.Logger) *ContextEnhancer {
	return &ContextEnhancer{logger: logger}
}

// EnhanceContext returns the Echo middleware. It must run after the
// RequestID middleware so the correlation ID is available.
func (ce *ContextEnhancer) EnhanceContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			contextLogger := ce.logger.With().
				Str("request_id", GetRequestID(c)).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Str("ip", c.RealIP()).
				Logger()

			c.Set(LoggerKey, &contextLogger)

			ctx := context.WithValue(c.Request().Context(), LoggerKey, &contextLogger)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// GetLogger retrieves the request-scoped logger from Echo context.
// Returns a no-op logger if the ContextEnhancer did not run.
func GetLogger(c echo.Context) *zerolog.Logger {
	if logger, ok := c.Get(LoggerKey).(*zerolog.Logger); ok {
		return logger
	}

	logger := zerolog.Nop()
	return &logger
}

// RequestContentType returns the request's declared media type with
// parameters (boundary, charset) stripped, the way it is echoed back
// in every response envelope. Returns the raw header value if it does
// not parse as a media type.
func RequestContentType(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderContentType)
	if header == "" {
		return ""
	}

	mediaType, _, err := mime.ParseMediaType(header)
	if err != nil {
		return header
	}
	return mediaType
}

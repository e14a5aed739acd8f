package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/slateworks/postparse/internal/config"
	"github.com/slateworks/postparse/internal/errs"
)

// GlobalMiddlewares groups the middleware applied to every route plus
// the global error handler. The struct holds config so middleware can
// read CORS origins and environment.
type GlobalMiddlewares struct {
	config *config.Config
}

// NewGlobalMiddlewares constructs the middleware bundle.
func NewGlobalMiddlewares(cfg *config.Config) *GlobalMiddlewares {
	return &GlobalMiddlewares{config: cfg}
}

// CORS returns Echo's CORS middleware configured from the allowed
// origins list.
func (global *GlobalMiddlewares) CORS() echo.MiddlewareFunc {
	return middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: global.config.Server.CORSAllowedOrigins,
	})
}

// Recover returns Echo's panic recovery middleware. Panics become 500
// responses instead of crashing the process.
func (global *GlobalMiddlewares) Recover() echo.MiddlewareFunc {
	return middleware.Recover()
}

// Secure returns Echo's secure headers middleware.
func (global *GlobalMiddlewares) Secure() echo.MiddlewareFunc {
	return middleware.Secure()
}

// CSRF returns Echo's CSRF middleware configured to issue the token
// via cookie. It is scoped to the landing page only; the API routes
// are CSRF-exempt.
func (global *GlobalMiddlewares) CSRF() echo.MiddlewareFunc {
	return middleware.CSRFWithConfig(middleware.CSRFConfig{
		TokenLookup:    "form:csrf_token",
		CookieName:     "csrftoken",
		CookiePath:     "/",
		CookieSameSite: http.SameSiteLaxMode,
	})
}

// RequestLogger returns Echo's request logger middleware with a
// custom LogValuesFunc that produces one structured log line per
// request, leveled by status.
func (global *GlobalMiddlewares) RequestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:     true,
		LogStatus:  true,
		LogError:   true,
		LogLatency: true,
		LogHost:    true,
		LogMethod:  true,
		LogURIPath: true,

		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			statusCode := v.Status

			// When a handler returns an error the final status is
			// decided later by the global error handler, so derive
			// it from the error type to avoid logging status=200.
			if v.Error != nil {
				var httpErr *errs.HTTPError
				var echoErr *echo.HTTPError

				if errors.As(v.Error, &httpErr) {
					statusCode = httpErr.Status
				} else if errors.As(v.Error, &echoErr) {
					statusCode = echoErr.Code
				}
			}

			logger := GetLogger(c)

			var e *zerolog.Event
			switch {
			case statusCode >= 500:
				e = logger.Error().Err(v.Error)
			case statusCode >= 400:
				e = logger.Warn()
			default:
				e = logger.Info()
			}

			if requestID := GetRequestID(c); requestID != "" {
				e = e.Str("request_id", requestID)
			}

			e.
				Dur("latency", v.Latency).
				Int("status", statusCode).
				Str("method", v.Method).
				Str("uri", v.URI).
				Str("host", v.Host).
				Str("ip", c.RealIP()).
				Str("user_agent", c.Request().UserAgent()).
				Msg("API")

			return nil
		},
	})
}

// GlobalErrorHandler is the final error funnel for the HTTP server.
//
// Every error a handler or middleware returns ends up here and is
// translated into the API's error envelope:
//
//	{"status":"error", "errors":{...}|absent, "error":"..."|absent, "content_type":"..."}
//
// Parse/decode failures carry a single message; validation failures
// carry the aggregated field map. Unknown routes and unexpected
// faults are converted to the same shape.
func (global *GlobalMiddlewares) GlobalErrorHandler(err error, c echo.Context) {
	originalErr := err

	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		var echoErr *echo.HTTPError
		if errors.As(err, &echoErr) {
			if echoErr.Code == http.StatusNotFound {
				err = errs.NewNotFoundError("Route not found")
			}
		} else {
			err = errs.NewInternalServerError()
		}
	}

	var echoErr *echo.HTTPError
	var status int
	var code string
	var message string
	var fieldErrors map[string][]string

	switch {
	case errors.As(err, &httpErr):
		status = httpErr.Status
		code = httpErr.Code
		message = httpErr.Message
		fieldErrors = httpErr.Fields

	case errors.As(err, &echoErr):
		status = echoErr.Code
		code = errs.MakeUpperCaseWithUnderscores(http.StatusText(status))
		if msg, ok := echoErr.Message.(string); ok {
			message = msg
		} else {
			message = http.StatusText(echoErr.Code)
		}

	default:
		status = http.StatusInternalServerError
		code = errs.MakeUpperCaseWithUnderscores(http.StatusText(status))
		message = http.StatusText(status)
	}

	logger := GetLogger(c)

	var e *zerolog.Event
	if status >= 500 {
		e = logger.Error()
	} else {
		e = logger.Warn()
	}
	e.Err(originalErr).
		Int("status", status).
		Str("error_code", code).
		Msg("request failed")

	if !c.Response().Committed {
		_ = c.JSON(status, errs.ErrorResponse{
			Status:      "error",
			Errors:      fieldErrors,
			Message:     message,
			ContentType: RequestContentType(c),
		})
	}
}

package middleware

import (
	"github.com/rs/zerolog"
	"github.com/slateworks/postparse/internal/config"
)

// Middlewares is a lightweight container that groups all middleware
// components used by the HTTP server, so routing/setup code receives
// one object instead of many.
type Middlewares struct {
	// Global holds middleware used across the whole API: CORS,
	// request logging, recovery, secure headers, CSRF, and the
	// global error handler.
	Global *GlobalMiddlewares

	// ContextEnhancer enriches each request with a request-scoped
	// logger (request_id, method, path, ip).
	ContextEnhancer *ContextEnhancer
}

// NewMiddlewares constructs all middleware components once; they are
// reused for every request.
func NewMiddlewares(cfg *config.Config, logger zerolog.Logger) *Middlewares {
	return &Middlewares{
		Global:          NewGlobalMiddlewares(cfg),
		ContextEnhancer: NewContextEnhancer(logger),
	}
}

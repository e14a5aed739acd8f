// Package middleware wires cross-cutting request concerns:
// correlation IDs, request-scoped logging, CORS, panic recovery,
// security headers, CSRF for the landing page, and the global error
// handler that turns every failure into the API's error envelope.
package middleware

// Package errs defines custom error types and utilities.
//
// Its purpose is to create specific error structures
// (per-field validation errors, parse and decode failures)
// so the client receives meaningful, actionable, and consistent
// error payloads.
package errs

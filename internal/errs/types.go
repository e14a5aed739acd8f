package errs

import "strings"

// Kind classifies what went wrong with a request body.
type Kind string

const (
	// KindParse means the body was not syntactically valid for its
	// declared format (bad JSON, bad XML, bad NDJSON line).
	KindParse Kind = "parse"

	// KindValidation means the body parsed fine but violated the
	// field constraints of its rule set.
	KindValidation Kind = "validation"

	// KindDecode means the body bytes were not valid text for a
	// handler that treats its input as text.
	KindDecode Kind = "decode"

	// KindTransport covers everything that is not a body problem:
	// unknown routes, wrong methods, unexpected server faults.
	KindTransport Kind = "transport"
)

// HTTPError is the main custom error type for API responses.
//
// It implements the `error` interface via Error() and carries enough
// information for the global error handler to build the wire payload:
// either a single message ("error") or a per-field error map
// ("errors"), never both.
type HTTPError struct {
	// Kind tags the error class for logging and tests.
	Kind Kind

	// Code is a machine-friendly error code (e.g. "BAD_REQUEST").
	Code string

	// Message is the human-friendly message. Empty when Fields is set.
	Message string

	// Status is the HTTP status code to respond with.
	Status int

	// Fields holds aggregated validation errors: every violated
	// constraint, keyed by field name, in rule order.
	Fields map[string][]string
}

// Error makes *HTTPError satisfy the built-in error interface.
func (e *HTTPError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "validation failed"
}

// Is reports whether target is also a *HTTPError, so
// errors.Is(err, &HTTPError{}) works as a type check.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// ErrorResponse is the wire shape for every failed request.
//
// Exactly one of Errors or Message is populated. ContentType echoes
// the media type the request declared.
type ErrorResponse struct {
	Status      string              `json:"status"`
	Errors      map[string][]string `json:"errors,omitempty"`
	Message     string              `json:"error,omitempty"`
	ContentType string              `json:"content_type"`
}

// MakeUpperCaseWithUnderscores converts a string into an
// UPPER_CASE_WITH_UNDERSCORES error code.
//
// Example: "Bad Request" -> "BAD_REQUEST".
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}

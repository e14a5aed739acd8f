package errs

import "net/http"

// NewParseError creates a 400 HTTPError for a body that is not
// syntactically valid for its declared format.
//
// message is the client-facing string, e.g. "Invalid JSON".
func NewParseError(message string) *HTTPError {
	return &HTTPError{
		Kind:    KindParse,
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusBadRequest)),
		Message: message,
		Status:  http.StatusBadRequest,
	}
}

// NewValidationError creates a 400 HTTPError carrying the aggregated
// field->messages map produced by a rule set.
func NewValidationError(fields map[string][]string) *HTTPError {
	return &HTTPError{
		Kind:   KindValidation,
		Code:   "VALIDATION_FAILED",
		Status: http.StatusBadRequest,
		Fields: fields,
	}
}

// NewDecodeError creates a 400 HTTPError for body bytes that are not
// valid text for a text-consuming handler.
func NewDecodeError(message string) *HTTPError {
	return &HTTPError{
		Kind:    KindDecode,
		Code:    "DECODE_FAILED",
		Message: message,
		Status:  http.StatusBadRequest,
	}
}

// NewNotFoundError creates a 404 Not Found HTTPError.
func NewNotFoundError(message string) *HTTPError {
	return &HTTPError{
		Kind:    KindTransport,
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotFound)),
		Message: message,
		Status:  http.StatusNotFound,
	}
}

// NewInternalServerError creates a 500 HTTPError.
//
// The message is the generic status text, not the real internal
// error: clients do not need stack traces.
func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Kind:    KindTransport,
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusInternalServerError)),
		Message: http.StatusText(http.StatusInternalServerError),
		Status:  http.StatusInternalServerError,
	}
}

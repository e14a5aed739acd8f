package handler

import (
	"encoding/json"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/slateworks/postparse/internal/errs"
	"github.com/slateworks/postparse/internal/validation"
)

// jsonSuccess is the success envelope for the JSON endpoint.
type jsonSuccess struct {
	Status      string              `json:"status"`
	Received    validation.JSONData `json:"received"`
	ContentType string              `json:"content_type"`
}

// HandleJSON handles application/json requests.
//
// The body must be a JSON object matching the payload schema
// (name 2-100 chars, valid email, age 0-150). Malformed JSON yields
// "Invalid JSON"; schema violations yield the aggregated per-field
// error map.
func (h *ContentHandler) HandleJSON() echo.HandlerFunc {
	return h.handle("handle_json", func(c echo.Context) (interface{}, error) {
		body, err := readBody(c)
		if err != nil {
			return nil, err
		}

		var payload validation.JSONPayload
		if err := json.Unmarshal(body, &payload); err != nil {
			// A wrong JSON type on a known field is a schema
			// violation, not a syntax problem.
			var typeErr *json.UnmarshalTypeError
			if errors.As(err, &typeErr) && typeErr.Field != "" {
				return nil, errs.NewValidationError(map[string][]string{
					typeErr.Field: {validation.TypeMismatchMessage(typeErr.Field, typeErr.Type.String())},
				})
			}
			return nil, errs.NewParseError("Invalid JSON")
		}

		if fieldErrors := validation.CheckJSONPayload(&payload); len(fieldErrors) > 0 {
			return nil, errs.NewValidationError(fieldErrors)
		}

		return jsonSuccess{
			Status:      "success",
			Received:    payload.Normalized(),
			ContentType: contentType(c),
		}, nil
	})
}

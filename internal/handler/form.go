package handler

import (
	"net/url"

	"github.com/labstack/echo/v4"
	"github.com/slateworks/postparse/internal/errs"
	"github.com/slateworks/postparse/internal/validation"
)

// multipartSuccess is the success envelope for the multipart
// endpoint: the submitted field values plus a descriptor for every
// uploaded file part.
type multipartSuccess struct {
	Status      string                                `json:"status"`
	FormData    map[string][]string                   `json:"form_data"`
	Files       map[string]validation.FileDescriptor `json:"files"`
	ContentType string                                `json:"content_type"`
}

// urlencodedSuccess is the success envelope for the urlencoded
// endpoint.
type urlencodedSuccess struct {
	Status      string              `json:"status"`
	Received    map[string][]string `json:"received"`
	ContentType string              `json:"content_type"`
}

// HandleMultipart handles multipart/form-data requests (forms with
// files). Fields and the optional avatar upload are checked against
// the multipart rule set; every violation is reported at once.
func (h *ContentHandler) HandleMultipart() echo.HandlerFunc {
	return h.handle("handle_multipart", func(c echo.Context) (interface{}, error) {
		form, err := c.MultipartForm()
		if err != nil {
			return nil, errs.NewParseError("Invalid multipart form")
		}

		result := validation.MultipartRules.Validate(url.Values(form.Value), form.File)
		if !result.Valid() {
			return nil, errs.NewValidationError(result.Errors)
		}

		// Describe every uploaded part, not only the ones a rule
		// covers.
		files := make(map[string]validation.FileDescriptor)
		for key, headers := range form.File {
			if len(headers) == 0 {
				continue
			}
			files[key] = validation.FileDescriptor{
				Name:        headers[0].Filename,
				Size:        headers[0].Size,
				ContentType: headers[0].Header.Get("Content-Type"),
			}
		}

		return multipartSuccess{
			Status:      "success",
			FormData:    form.Value,
			Files:       files,
			ContentType: contentType(c),
		}, nil
	})
}

// HandleURLEncoded handles application/x-www-form-urlencoded
// requests, checked against the urlencoded rule set.
func (h *ContentHandler) HandleURLEncoded() echo.HandlerFunc {
	return h.handle("handle_urlencoded", func(c echo.Context) (interface{}, error) {
		params, err := c.FormParams()
		if err != nil {
			return nil, errs.NewParseError("Invalid form data")
		}

		result := validation.URLEncodedRules.Validate(params, nil)
		if !result.Valid() {
			return nil, errs.NewValidationError(result.Errors)
		}

		return urlencodedSuccess{
			Status:      "success",
			Received:    params,
			ContentType: contentType(c),
		}, nil
	})
}

package handler

import (
	"io"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/slateworks/postparse/internal/middleware"
	"github.com/slateworks/postparse/internal/server"
)

// ContentHandler serves the nine body-format endpoints. It embeds the
// base Handler for the shared pipeline and dependencies.
type ContentHandler struct {
	Handler
}

// NewContentHandler constructs a ContentHandler with access to shared
// app dependencies.
func NewContentHandler(s *server.Server) *ContentHandler {
	return &ContentHandler{Handler: NewHandler(s)}
}

// readBody drains the request body. The body is fully buffered before
// any size rule runs; the transport timeouts are the only cap.
func readBody(c echo.Context) ([]byte, error) {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read request body")
	}
	return body, nil
}

// contentType shortens the middleware helper for payload structs.
func contentType(c echo.Context) string {
	return middleware.RequestContentType(c)
}

package handler

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/slateworks/postparse/internal/server"
)

//go:embed templates/index.html
var templateFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// endpointInfo describes one API endpoint for the landing page.
type endpointInfo struct {
	Path        string
	ContentType string
	Validated   bool
}

// endpoints is the fixed table rendered on the landing page.
var endpoints = []endpointInfo{
	{Path: "/api/json/", ContentType: "application/json", Validated: true},
	{Path: "/api/multipart/", ContentType: "multipart/form-data", Validated: true},
	{Path: "/api/urlencoded/", ContentType: "application/x-www-form-urlencoded", Validated: true},
	{Path: "/api/text/", ContentType: "text/plain", Validated: false},
	{Path: "/api/binary/", ContentType: "application/octet-stream", Validated: false},
	{Path: "/api/xml/", ContentType: "application/xml", Validated: false},
	{Path: "/api/html/", ContentType: "text/html", Validated: false},
	{Path: "/api/svg/", ContentType: "image/svg+xml", Validated: false},
	{Path: "/api/ndjson/", ContentType: "application/x-ndjson", Validated: false},
}

// IndexHandler renders the landing page listing every endpoint. The
// CSRF middleware on this route issues the csrftoken cookie; the
// token is exposed to scripts via a meta tag.
type IndexHandler struct {
	Handler
}

// NewIndexHandler constructs an IndexHandler.
func NewIndexHandler(s *server.Server) *IndexHandler {
	return &IndexHandler{Handler: NewHandler(s)}
}

// ServeIndex renders the endpoint overview page.
func (h *IndexHandler) ServeIndex(c echo.Context) error {
	token, _ := c.Get("csrf").(string)

	var buf bytes.Buffer
	err := indexTemplate.Execute(&buf, map[string]interface{}{
		"CSRFToken": token,
		"Endpoints": endpoints,
	})
	if err != nil {
		return errors.Wrap(err, "failed to render index template")
	}

	return c.HTML(http.StatusOK, buf.String())
}

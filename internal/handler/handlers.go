package handler

import (
	"github.com/slateworks/postparse/internal/server"
)

// Handlers is a container that groups all HTTP handlers, so router
// setup receives one object instead of many.
type Handlers struct {
	Content *ContentHandler // Content serves the nine body-format endpoints.
	Index   *IndexHandler   // Index serves the HTML landing page.
	Health  *HealthHandler  // Health serves the service health endpoint.
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server) *Handlers {
	return &Handlers{
		Content: NewContentHandler(s),
		Index:   NewIndexHandler(s),
		Health:  NewHealthHandler(s),
	}
}

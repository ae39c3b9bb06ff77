package handler

import (
	"itemsapi/internal/server"
	"itemsapi/internal/service"
)

// Handlers is a container that groups all HTTP handlers, so router
// setup passes one object around instead of many.
type Handlers struct {
	Items  *ItemsHandler
	Health *HealthHandler
}

// NewHandlers constructs the handler container from the application
// container and the business layer container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Items:  NewItemsHandler(s, services.Items),
		Health: NewHealthHandler(s),
	}
}

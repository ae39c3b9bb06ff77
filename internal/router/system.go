package router

import (
	"itemsapi/internal/handler"

	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers endpoints that are not part of
// business logic. Health runs outside the transaction scope: it must
// answer even when the database cannot open a transaction.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	// Health status endpoint (used by orchestrators/monitors).
	r.GET("/health", h.Health.CheckHealth)
}

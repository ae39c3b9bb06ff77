package router

import (
	"net/http"

	"itemsapi/internal/handler"
	"itemsapi/internal/middleware"

	"github.com/labstack/echo/v4"
)

// registerItemRoutes registers the item CRUD group. Every route in the
// group runs inside a per-request transaction: commit on success,
// rollback on error.
func registerItemRoutes(r *echo.Echo, h *handler.Handlers, mw *middleware.Middlewares) {
	g := r.Group("/items", mw.Tx.Scope())

	g.GET("", handler.Handle(h.Items.Handler, h.Items.List, http.StatusOK))
	g.POST("", handler.Handle(h.Items.Handler, h.Items.Create, http.StatusCreated))
	g.GET("/:id", handler.Handle(h.Items.Handler, h.Items.Get, http.StatusOK))
	g.PATCH("/:id", handler.Handle(h.Items.Handler, h.Items.Update, http.StatusOK))
	g.DELETE("/:id", handler.HandleNoContent(h.Items.Handler, h.Items.Delete, http.StatusNoContent))
}

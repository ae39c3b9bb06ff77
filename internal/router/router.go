// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers
package router

import (
	"itemsapi/internal/handler"
	"itemsapi/internal/middleware"
	"itemsapi/internal/server"

	"github.com/labstack/echo/v4"
)

// Setup builds the echo instance: global middleware in order, the
// global error handler, and all route groups.
//
// Middleware ordering matters:
//   - Recover first, so panics anywhere below become 500s
//   - RequestID before the context enhancer, which logs it
//   - New Relic before the enhancer, so trace metadata is available
//   - BodyLimit before any route so oversized payloads never reach a
//     handler
func Setup(s *server.Server, h *handler.Handlers, mw *middleware.Middlewares) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = mw.Global.GlobalErrorHandler

	e.Use(mw.Global.Recover())
	e.Use(middleware.RequestID())
	e.Use(mw.Tracing.NewRelicMiddleware())
	e.Use(mw.ContextEnhancer.EnhanceContext())
	e.Use(mw.Global.BodyLimit())
	e.Use(mw.Global.CORS())
	e.Use(mw.Global.Secure())
	e.Use(mw.Global.RequestLogger())
	e.Use(mw.Tracing.EnhanceTracing())

	registerSystemRoutes(e, h)
	registerItemRoutes(e, h, mw)

	return e
}

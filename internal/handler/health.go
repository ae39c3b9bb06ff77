package handler

import (
	"context"
	"net/http"
	"time"

	"itemsapi/internal/middleware"
	"itemsapi/internal/server"

	"github.com/labstack/echo/v4"
)

// HealthHandler exposes the endpoint external systems use to verify the
// service is alive and the database is reachable. Not business logic,
// but embedding the base Handler keeps handler patterns consistent.
type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// healthProbeTimeout bounds the connectivity probe so a wedged database
// cannot hang the health endpoint.
const healthProbeTimeout = 5 * time.Second

// CheckHealth returns {"ok": true} with 200 when the database answers a
// trivial connectivity probe, {"ok": false} with 503 otherwise.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	ctx, cancel := context.WithTimeout(c.Request().Context(), healthProbeTimeout)
	defer cancel()

	ok := h.server.DB.Healthcheck(ctx)

	if !ok {
		logger.Error().
			Dur("duration", time.Since(start)).
			Msg("database health check failed")

		return c.JSON(http.StatusServiceUnavailable, map[string]bool{"ok": false})
	}

	logger.Info().
		Dur("duration", time.Since(start)).
		Msg("health check passed")

	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

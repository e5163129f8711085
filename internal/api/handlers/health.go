package handlers

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Pinger is the health slice of the store.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves liveness probes on / and /health*. Hosting
// platforms probe with both GET and HEAD.
type HealthHandler struct {
	store Pinger
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(s Pinger) *HealthHandler {
	return &HealthHandler{store: s}
}

// Health returns 200 when the process is up and the store reachable.
func (h *HealthHandler) Health(c echo.Context) error {
	if err := h.store.Ping(c.Request().Context()); err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]any{
			"ok":    false,
			"error": "store unavailable",
		})
	}

	if c.Request().Method == http.MethodHead {
		return c.NoContent(http.StatusOK)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"ok":      true,
		"service": "resell-sync",
	})
}

// Package api assembles the Echo webhook server for resell-sync.
package api

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/resellops/resell-sync/internal/api/handlers"
	"github.com/resellops/resell-sync/internal/api/middleware"
)

// Config carries the router's external collaborators.
type Config struct {
	Webhook *handlers.WebhookHandler
	Health  *handlers.HealthHandler
	APIKey  string
	Logger  *slog.Logger
}

// NewRouter builds the Echo instance with all routes and middleware.
//
// Sale notifications are accepted on an allow-list of POST paths:
// /webhook, /sold and /prepared (different notification tools were
// pointed at different paths over time; they all carry the same
// payloads). Everything else is 404.
func NewRouter(cfg Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recovery(cfg.Logger))
	e.Use(middleware.RequestLog(cfg.Logger))
	e.Use(middleware.Metrics())

	// Health probes.
	e.GET("/", cfg.Health.Health)
	e.HEAD("/", cfg.Health.Health)
	e.GET("/health", cfg.Health.Health)
	e.HEAD("/health", cfg.Health.Health)
	e.GET("/health/*", cfg.Health.Health)
	e.HEAD("/health/*", cfg.Health.Health)

	// Prometheus metrics.
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Webhook ingress, auth checked before the body is read.
	auth := middleware.APIKey(cfg.APIKey)
	for _, path := range []string{"/webhook", "/sold", "/prepared"} {
		e.POST(path, cfg.Webhook.Handle, auth)
		e.POST(path+"/*", cfg.Webhook.Handle, auth)
	}

	// Unknown paths get the JSON shape callers expect.
	e.RouteNotFound("/*", func(c echo.Context) error {
		return c.JSON(http.StatusNotFound, map[string]any{
			"ok":    false,
			"error": "not_found",
			"path":  c.Request().URL.Path,
		})
	})

	return e
}

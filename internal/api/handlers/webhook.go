// Package handlers implements HTTP handlers for the resell-sync
// webhook server.
package handlers

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/resellops/resell-sync/internal/dispatch"
	"github.com/resellops/resell-sync/internal/metrics"
)

// Dispatcher is the slice of the dispatch core the webhook needs.
type Dispatcher interface {
	Dispatch(ctx context.Context, event dispatch.SaleEvent, policy dispatch.Policy) (*dispatch.Result, error)
}

// WebhookHandler receives marketplace sale notifications and feeds
// them into the dispatch core.
type WebhookHandler struct {
	dispatcher Dispatcher
	policy     dispatch.Policy
	log        *slog.Logger
}

// NewWebhookHandler creates a WebhookHandler. All webhook dispatches
// run under the same policy; the webhook is a non-interactive
// transport, so confirmation comes from configuration.
func NewWebhookHandler(d Dispatcher, policy dispatch.Policy, log *slog.Logger) *WebhookHandler {
	return &WebhookHandler{dispatcher: d, policy: policy, log: log}
}

// Handle processes one webhook POST.
//
// Rejections map onto HTTP statuses: malformed or incomplete bodies
// and unknown platforms are 400; non-sale events are acknowledged with
// 200 and ignored:true so senders don't retry them. Rejected events
// cause no state or audit side effects.
func (h *WebhookHandler) Handle(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{
			"ok":    false,
			"error": "unreadable body",
		})
	}

	event, err := dispatch.FromWebhook(body)
	if err != nil {
		reason := dispatch.ReasonOf(err)
		metrics.DispatchRejectionsTotal.WithLabelValues(string(reason)).Inc()

		if reason == dispatch.ReasonUnsupportedEvent {
			h.log.Info("webhook event ignored", "error", err)
			return c.JSON(http.StatusOK, map[string]any{
				"ok":      true,
				"ignored": true,
			})
		}

		h.log.Warn("webhook event rejected", "reason", reason, "error", err)
		return c.JSON(http.StatusBadRequest, map[string]any{
			"ok":     false,
			"error":  err.Error(),
			"reason": string(reason),
		})
	}

	result, err := h.dispatcher.Dispatch(c.Request().Context(), event, h.policy)
	if err != nil {
		// Storage failure: the sale is not guaranteed recorded, the
		// sender must retry the whole event.
		h.log.Error("dispatch failed", "item_id", event.ItemID(), "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]any{
			"ok":    false,
			"error": "dispatch failed",
		})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"ok":       true,
		"item_id":  event.ItemID(),
		"sold_on":  event.SoldOn(),
		"mode":     result.Mode,
		"outcomes": result.Outcomes,
	})
}

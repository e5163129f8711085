package api

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/resellops/resell-sync/internal/api/handlers"
	"github.com/resellops/resell-sync/internal/dispatch"
	domain "github.com/resellops/resell-sync/pkg/types"
)

type stubDispatcher struct{}

func (stubDispatcher) Dispatch(
	_ context.Context,
	_ dispatch.SaleEvent,
	_ dispatch.Policy,
) (*dispatch.Result, error) {
	return &dispatch.Result{
		Accepted: true,
		Mode:     domain.ModeSimulated,
		Outcomes: map[domain.Platform]dispatch.Outcome{},
	}, nil
}

type stubPinger struct{}

func (stubPinger) Ping(context.Context) error { return nil }

func newTestRouter(apiKey string) http.Handler {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRouter(Config{
		Webhook: handlers.NewWebhookHandler(stubDispatcher{}, dispatch.SimulatePolicy(), log),
		Health:  handlers.NewHealthHandler(stubPinger{}),
		APIKey:  apiKey,
		Logger:  log,
	})
}

func TestRouter_Routes(t *testing.T) {
	t.Parallel()

	router := newTestRouter("")
	saleBody := `{"event": "ITEM_SOLD", "platform": "depop", "sku": "SKU-1"}`

	tests := []struct {
		name     string
		method   string
		path     string
		body     string
		wantCode int
	}{
		{name: "root health", method: http.MethodGet, path: "/", wantCode: http.StatusOK},
		{name: "health", method: http.MethodGet, path: "/health", wantCode: http.StatusOK},
		{name: "health head", method: http.MethodHead, path: "/health", wantCode: http.StatusOK},
		{name: "health subpath", method: http.MethodGet, path: "/health/ready", wantCode: http.StatusOK},
		{name: "metrics", method: http.MethodGet, path: "/metrics", wantCode: http.StatusOK},
		{name: "webhook", method: http.MethodPost, path: "/webhook", body: saleBody, wantCode: http.StatusOK},
		{name: "sold alias", method: http.MethodPost, path: "/sold", body: saleBody, wantCode: http.StatusOK},
		{name: "prepared alias", method: http.MethodPost, path: "/prepared", body: saleBody, wantCode: http.StatusOK},
		{name: "webhook subpath", method: http.MethodPost, path: "/webhook/ebay", body: saleBody, wantCode: http.StatusOK},
		{name: "unknown path", method: http.MethodGet, path: "/nope", wantCode: http.StatusNotFound},
		{name: "unknown post path", method: http.MethodPost, path: "/hooks", body: saleBody, wantCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var body io.Reader
			if tt.body != "" {
				body = strings.NewReader(tt.body)
			}
			req := httptest.NewRequest(tt.method, tt.path, body)
			if tt.body != "" {
				req.Header.Set("Content-Type", "application/json")
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestRouter_WebhookRequiresKey(t *testing.T) {
	t.Parallel()

	router := newTestRouter("secret")
	saleBody := `{"event": "ITEM_SOLD", "platform": "depop", "sku": "SKU-1"}`

	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(saleBody))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(saleBody))
	req.Header.Set("X-API-Key", "secret")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_HealthNeverRequiresKey(t *testing.T) {
	t.Parallel()

	router := newTestRouter("secret")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

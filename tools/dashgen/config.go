package main

import "errors"

// KnownMetrics is the set of metric names exported by resell-sync plus
// recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"resell_http_request_duration_seconds": true,
	"resell_http_requests_total":           true,

	// Dispatch metrics.
	"resell_dispatches_total":          true,
	"resell_dispatch_rejections_total": true,
	"resell_adapter_attempts_total":    true,
	"resell_adapter_duration_seconds":  true,

	// Queue metrics.
	"resell_queue_rows_processed_total": true,
	"resell_queue_rows_skipped_total":   true,
	"resell_queue_run_errors_total":     true,

	// eBay API metrics.
	"resell_ebay_api_calls_total":        true,
	"resell_ebay_daily_limit_hits_total": true,

	// Crosslist metrics.
	"resell_crosslist_drafts_total": true,

	// Notification metrics.
	"resell_notifications_total":           true,
	"resell_notification_duration_seconds": true,

	// Recording rules.
	"resell:http_requests:rate5m":    true,
	"resell:http_errors:rate5m":      true,
	"resell:dispatches:rate5m":       true,
	"resell:adapter_failures:rate5m": true,
	"resell:queue_errors:rate5m":     true,
	"resell:ebay_api_calls:rate5m":   true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}

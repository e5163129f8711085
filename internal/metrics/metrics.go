// Package metrics defines Prometheus metrics for resell-sync.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "resell"

// HTTP metrics.
var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})
)

// Dispatch metrics.
var (
	DispatchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "dispatches_total",
		Help:      "Total number of sale events dispatched, by mode.",
	}, []string{"mode"})

	DispatchRejectionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "dispatch_rejections_total",
		Help:      "Total number of events rejected by the normalizer.",
	}, []string{"reason"})

	AdapterAttemptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "adapter_attempts_total",
		Help:      "Total number of delist attempts, by platform and outcome.",
	}, []string{"platform", "outcome"})

	AdapterDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "adapter_duration_seconds",
		Help:      "Duration of platform delist attempts in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"platform"})
)

// Notification metrics.
var (
	NotificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_total",
		Help:      "Total number of operator notifications sent, by result.",
	}, []string{"result"})

	NotificationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "notification_duration_seconds",
		Help:      "Duration of notification webhook deliveries in seconds.",
		Buckets:   prometheus.DefBuckets,
	})
)

// Queue metrics.
var (
	QueueRowsProcessedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "queue_rows_processed_total",
		Help:      "Total number of CSV queue rows processed.",
	})

	QueueRowsSkippedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "queue_rows_skipped_total",
		Help:      "Total number of CSV queue rows skipped as invalid.",
	})

	QueueRunErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "queue_run_errors_total",
		Help:      "Total number of failed queue sweeps.",
	})
)

// eBay API metrics.
var (
	EbayAPICallsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ebay_api_calls_total",
		Help:      "Total cumulative eBay Trading API calls.",
	})

	EbayDailyLimitHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ebay_daily_limit_hits_total",
		Help:      "Total number of times the daily eBay API limit was reached.",
	})
)

// Crosslist metrics.
var (
	CrosslistDraftsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "crosslist_drafts_total",
		Help:      "Total number of draft listings generated, by platform.",
	}, []string{"platform"})
)

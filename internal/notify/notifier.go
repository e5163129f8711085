// Package notify defines the notification interface and implementations
// for alerting an operator about cleanup targets that need attention.
package notify

import (
	"context"

	domain "github.com/resellops/resell-sync/pkg/types"
)

// AlertKind classifies why a cleanup target needs operator attention.
type AlertKind string

const (
	// KindManualRequired means the platform has no automated delist path
	// and the listing must be removed by hand.
	KindManualRequired AlertKind = "MANUAL_REQUIRED"
	// KindDelistFailed means an automated delist attempt errored.
	KindDelistFailed AlertKind = "FAILED"
)

// CleanupAlert describes one cleanup target that did not complete
// automatically.
type CleanupAlert struct {
	ItemID   string
	SoldOn   domain.Platform
	Platform domain.Platform
	Kind     AlertKind
	Detail   string
}

// Notifier defines the interface for delivering cleanup alerts.
type Notifier interface {
	SendAlert(ctx context.Context, alert CleanupAlert) error
	SendBatchAlert(ctx context.Context, alerts []CleanupAlert, itemID string) error
}

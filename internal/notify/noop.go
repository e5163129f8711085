package notify

import (
	"context"
	"log/slog"
)

// NoOpNotifier implements Notifier by logging discarded alerts. It is
// used when Discord (or another notification backend) is not configured.
type NoOpNotifier struct {
	log *slog.Logger
}

// NewNoOpNotifier creates a notifier that discards alerts with a log message.
func NewNoOpNotifier(log *slog.Logger) *NoOpNotifier {
	return &NoOpNotifier{log: log}
}

// SendAlert logs and discards a single alert.
func (n *NoOpNotifier) SendAlert(_ context.Context, alert CleanupAlert) error {
	n.log.Debug("notification discarded (no backend configured)",
		"item_id", alert.ItemID,
		"platform", alert.Platform,
		"kind", alert.Kind,
	)
	return nil
}

// SendBatchAlert logs and discards a batch of alerts.
func (n *NoOpNotifier) SendBatchAlert(_ context.Context, alerts []CleanupAlert, itemID string) error {
	n.log.Debug("batch notification discarded (no backend configured)",
		"item_id", itemID,
		"count", len(alerts),
	)
	return nil
}

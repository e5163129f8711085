package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/resellops/resell-sync/internal/metrics"
	"github.com/resellops/resell-sync/internal/notify"
	"github.com/resellops/resell-sync/internal/platform"
	"github.com/resellops/resell-sync/internal/store"
	domain "github.com/resellops/resell-sync/pkg/types"
)

const defaultAdapterTimeout = 2 * time.Minute

// Dispatcher turns one sale event into a state update, an audit entry,
// and cleanup attempts on every platform except the sale origin.
type Dispatcher struct {
	store    store.Store
	audit    store.AuditLog
	adapters map[domain.Platform]platform.Adapter
	notifier notify.Notifier
	log      *slog.Logger

	adapterTimeout time.Duration
	nowFunc        func() time.Time
}

// Option configures the Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) Option {
	return func(d *Dispatcher) {
		d.log = l
	}
}

// WithAdapterTimeout bounds each per-target adapter call. A timeout
// surfaces as a transient failure for that target only.
func WithAdapterTimeout(t time.Duration) Option {
	return func(d *Dispatcher) {
		d.adapterTimeout = t
	}
}

// WithNotifier sets the notifier for targets that end up needing
// operator attention.
func WithNotifier(n notify.Notifier) Option {
	return func(d *Dispatcher) {
		d.notifier = n
	}
}

// WithNowFunc overrides the time function for testing.
func WithNowFunc(f func() time.Time) Option {
	return func(d *Dispatcher) {
		d.nowFunc = f
	}
}

// NewDispatcher creates a Dispatcher with injected dependencies. Every
// platform in domain.AllPlatforms must have an adapter.
func NewDispatcher(
	s store.Store,
	audit store.AuditLog,
	adapters []platform.Adapter,
	opts ...Option,
) *Dispatcher {
	d := &Dispatcher{
		store:          s,
		audit:          audit,
		adapters:       make(map[domain.Platform]platform.Adapter, len(adapters)),
		log:            slog.Default(),
		adapterTimeout: defaultAdapterTimeout,
		nowFunc:        time.Now,
	}
	for _, a := range adapters {
		d.adapters[a.Platform()] = a
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.notifier == nil {
		d.notifier = notify.NewNoOpNotifier(d.log)
	}
	return d
}

// Dispatch processes one sale event under the given policy.
//
// The state write and audit append happen before any cleanup attempt,
// so the trail captures intent even if execution dies mid-way. Both are
// idempotent with respect to re-delivery of the same event. A storage
// failure aborts the dispatch; the caller retries the whole event.
func (d *Dispatcher) Dispatch(ctx context.Context, event SaleEvent, policy Policy) (*Result, error) {
	targets := d.targetsFor(event.SoldOn())

	mode := domain.ModeReal
	if policy.Simulate {
		mode = domain.ModeSimulated
	}

	d.log.Info("dispatching sale event",
		"item_id", event.ItemID(),
		"sold_on", event.SoldOn(),
		"mode", mode,
		"targets", len(targets),
	)

	if err := d.recordSale(ctx, event); err != nil {
		return nil, err
	}

	if err := d.audit.Append(ctx, domain.AuditEntry{
		Timestamp: d.nowFunc(),
		Event:     EventItemSold,
		ItemID:    event.ItemID(),
		Platform:  event.SoldOn(),
		Mode:      mode,
	}); err != nil {
		return nil, fmt.Errorf("appending audit entry: %w", err)
	}

	metrics.DispatchesTotal.WithLabelValues(string(mode)).Inc()

	result := &Result{
		Accepted: true,
		Mode:     mode,
		Targets:  targets,
		Outcomes: make(map[domain.Platform]Outcome, len(targets)),
		Errors:   make(map[domain.Platform]string),
	}

	if policy.Simulate {
		for _, t := range targets {
			result.Outcomes[t] = OutcomeSimulated
		}
		return result, nil
	}

	// Confirmation is a single blocking suspension point; no adapter
	// call starts until it resolves.
	if !policy.confirmed() {
		d.log.Info("cleanup declined by confirmation", "item_id", event.ItemID())
		for _, t := range targets {
			result.Outcomes[t] = OutcomeSkippedNoConfirm
		}
		return result, nil
	}

	d.cleanTargets(ctx, event, targets, result)
	return result, nil
}

// targetsFor returns every platform except the sale origin. You never
// delist where the sale happened; the sale itself removed that listing.
func (d *Dispatcher) targetsFor(soldOn domain.Platform) []domain.Platform {
	targets := make([]domain.Platform, 0, 2)
	for _, p := range domain.AllPlatforms() {
		if p != soldOn {
			targets = append(targets, p)
		}
	}
	return targets
}

// recordSale applies the idempotent SOLD overwrite, preserving any
// cleanup flags from earlier deliveries of the same event.
func (d *Dispatcher) recordSale(ctx context.Context, event SaleEvent) error {
	rec, err := d.store.GetItem(ctx, event.ItemID())
	if err != nil {
		return fmt.Errorf("loading inventory record: %w", err)
	}
	if rec == nil {
		rec = domain.NewInventoryRecord()
	}

	now := d.nowFunc()
	rec.Status = domain.StatusSold
	rec.SoldOn = event.SoldOn()
	rec.SoldAt = &now

	if err := d.store.PutItem(ctx, event.ItemID(), rec); err != nil {
		return fmt.Errorf("recording sale: %w", err)
	}
	return nil
}

// cleanTargets runs one adapter per target concurrently. Targets are
// independent: a failure on one never blocks or rolls back another,
// and no cancellation propagates between in-flight calls.
func (d *Dispatcher) cleanTargets(
	ctx context.Context,
	event SaleEvent,
	targets []domain.Platform,
	result *Result,
) {
	type targetOutcome struct {
		platform domain.Platform
		outcome  Outcome
		errText  string
	}

	outcomes := make(chan targetOutcome, len(targets))
	var wg sync.WaitGroup

	for _, t := range targets {
		wg.Add(1)
		go func(t domain.Platform) {
			defer wg.Done()
			outcome, errText := d.cleanOne(ctx, t, event.ItemID())
			outcomes <- targetOutcome{platform: t, outcome: outcome, errText: errText}
		}(t)
	}

	wg.Wait()
	close(outcomes)

	var alerts []notify.CleanupAlert
	for o := range outcomes {
		result.Outcomes[o.platform] = o.outcome
		if o.errText != "" {
			result.Errors[o.platform] = o.errText
		}
		switch o.outcome {
		case OutcomeSucceeded:
			d.markCleaned(ctx, event.ItemID(), o.platform)
		case OutcomeManualRequired, OutcomeFailed:
			alerts = append(alerts, notify.CleanupAlert{
				ItemID:   event.ItemID(),
				SoldOn:   event.SoldOn(),
				Platform: o.platform,
				Kind:     alertKind(o.outcome),
				Detail:   o.errText,
			})
		}
	}

	d.notifyAlerts(ctx, event.ItemID(), alerts)
}

func alertKind(o Outcome) notify.AlertKind {
	if o == OutcomeFailed {
		return notify.KindDelistFailed
	}
	return notify.KindManualRequired
}

// notifyAlerts delivers operator alerts best-effort. A notification
// failure never fails the dispatch; the audit trail already has the
// outcomes.
func (d *Dispatcher) notifyAlerts(ctx context.Context, itemID string, alerts []notify.CleanupAlert) {
	if len(alerts) == 0 {
		return
	}

	var err error
	if len(alerts) == 1 {
		err = d.notifier.SendAlert(ctx, alerts[0])
	} else {
		err = d.notifier.SendBatchAlert(ctx, alerts, itemID)
	}

	if err != nil {
		metrics.NotificationsTotal.WithLabelValues("error").Inc()
		d.log.Warn("sending cleanup alert", "item_id", itemID, "error", err)
		return
	}
	metrics.NotificationsTotal.WithLabelValues("sent").Inc()
}

func (d *Dispatcher) cleanOne(ctx context.Context, target domain.Platform, itemID string) (Outcome, string) {
	adapter, ok := d.adapters[target]
	if !ok {
		// Misconfiguration, not an adapter failure.
		return OutcomeManualRequired, fmt.Sprintf("no adapter registered for %s", target)
	}

	callCtx, cancel := context.WithTimeout(ctx, d.adapterTimeout)
	defer cancel()

	start := time.Now()
	err := adapter.Delist(callCtx, itemID)
	metrics.AdapterDuration.WithLabelValues(string(target)).Observe(time.Since(start).Seconds())

	outcome := OutcomeSucceeded
	errText := ""

	if err != nil {
		switch platform.KindOf(err) {
		case platform.KindItemNotFound:
			// Nothing left to delist; success-equivalent.
			d.log.Info("listing already gone", "platform", target, "item_id", itemID)
		case platform.KindUnsupported:
			outcome = OutcomeManualRequired
			errText = err.Error()
			d.log.Warn("manual delist required", "platform", target, "item_id", itemID)
		default:
			outcome = OutcomeFailed
			errText = err.Error()
			d.log.Error("delist failed", "platform", target, "item_id", itemID, "error", err)
		}
	} else {
		d.log.Info("delisted", "platform", target, "item_id", itemID)
	}

	metrics.AdapterAttemptsTotal.WithLabelValues(string(target), string(outcome)).Inc()
	return outcome, errText
}

// markCleaned flips the cleanup flag for a successful target. Failure
// to persist the flag is logged, not fatal: the dispatch already
// succeeded and re-delivery converges to the same state.
func (d *Dispatcher) markCleaned(ctx context.Context, itemID string, target domain.Platform) {
	rec, err := d.store.GetItem(ctx, itemID)
	if err != nil || rec == nil {
		d.log.Error("loading record to mark cleanup", "item_id", itemID, "error", err)
		return
	}
	if rec.Cleanup == nil {
		rec.Cleanup = make(map[domain.Platform]bool, 3)
	}
	rec.Cleanup[target] = true
	if err := d.store.PutItem(ctx, itemID, rec); err != nil {
		d.log.Error("persisting cleanup flag", "item_id", itemID, "platform", target, "error", err)
	}
}

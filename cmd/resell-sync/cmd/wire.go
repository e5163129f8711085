package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/resellops/resell-sync/internal/config"
	"github.com/resellops/resell-sync/internal/dispatch"
	"github.com/resellops/resell-sync/internal/ebay"
	"github.com/resellops/resell-sync/internal/notify"
	"github.com/resellops/resell-sync/internal/platform"
	"github.com/resellops/resell-sync/internal/store"
	"github.com/resellops/resell-sync/pkg/logger"
	domain "github.com/resellops/resell-sync/pkg/types"
)

// newLogger builds the process logger from the logging config.
func newLogger(cfg *config.Config) (*slog.Logger, error) {
	l, err := logger.NewWithFile(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.File)
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return l, nil
}

// openStore opens the configured state backend. The returned cleanup
// must be called on shutdown.
func openStore(ctx context.Context, cfg *config.Config) (store.Store, store.AuditLog, func(), error) {
	switch cfg.Store.Backend {
	case "postgres":
		ps, err := store.NewPostgresStore(ctx, cfg.Database.DSN())
		if err != nil {
			return nil, nil, nil, fmt.Errorf("connecting to postgres store: %w", err)
		}
		return ps, ps, ps.Close, nil
	default:
		fs, err := store.NewFileStore(cfg.Store.StatePath)
		if err != nil {
			return nil, nil, nil, err
		}
		audit, err := store.NewFileAuditLog(cfg.Store.AuditPath)
		if err != nil {
			return nil, nil, nil, err
		}
		return fs, audit, fs.Close, nil
	}
}

// newTradingClient builds the eBay Trading API client with the
// configured rate limits.
func newTradingClient(cfg *config.Config) *ebay.Client {
	limiter := ebay.NewRateLimiter(
		cfg.Ebay.RateLimit.PerSecond,
		cfg.Ebay.RateLimit.Burst,
		cfg.Ebay.RateLimit.DailyLimit,
	)
	return ebay.NewClient(
		cfg.Ebay.AuthToken,
		ebay.WithTradingURL(cfg.Ebay.TradingURL),
		ebay.WithSiteID(strconv.Itoa(cfg.Ebay.SiteID)),
		ebay.WithRateLimiter(limiter),
	)
}

// newAdapters builds one delist adapter per marketplace. eBay goes
// through the Trading API; the others use a configured runner command
// or fall back to reporting manual work.
func newAdapters(cfg *config.Config, tc ebay.TradingClient, log *slog.Logger) []platform.Adapter {
	adapters := []platform.Adapter{
		platform.NewEbayAdapter(tc, ebay.EndReasonNotAvailable),
	}
	for _, p := range []domain.Platform{domain.PlatformDepop, domain.PlatformPoshmark} {
		if runner, ok := cfg.Dispatch.Runners[string(p)]; ok {
			adapters = append(adapters, platform.NewRunnerAdapter(p, runner.Command, runner.Args, log))
			continue
		}
		adapters = append(adapters, platform.NewManualAdapter(p))
	}
	return adapters
}

// newNotifier builds the operator alert backend.
func newNotifier(cfg *config.Config, log *slog.Logger) notify.Notifier {
	if cfg.Notifications.Discord.Enabled {
		return notify.NewDiscordNotifier(cfg.Notifications.Discord.WebhookURL)
	}
	return notify.NewNoOpNotifier(log)
}

// newDispatcher assembles the dispatch core from the config.
func newDispatcher(
	cfg *config.Config,
	st store.Store,
	audit store.AuditLog,
	log *slog.Logger,
) *dispatch.Dispatcher {
	return dispatch.NewDispatcher(
		st,
		audit,
		newAdapters(cfg, newTradingClient(cfg), log),
		dispatch.WithLogger(log),
		dispatch.WithAdapterTimeout(cfg.Dispatch.AdapterTimeout),
		dispatch.WithNotifier(newNotifier(cfg, log)),
	)
}

// serverPolicy derives the dispatch policy for non-interactive
// transports. Real mode without auto_confirm has no way to ask anyone,
// so it is rejected up front rather than silently skipping cleanups.
func serverPolicy(cfg *config.Config) (dispatch.Policy, error) {
	if cfg.Dispatch.Simulate {
		return dispatch.SimulatePolicy(), nil
	}
	if !cfg.Dispatch.AutoConfirm {
		return dispatch.Policy{}, fmt.Errorf(
			"dispatch.auto_confirm must be true to run real cleanups without a terminal; " +
				"set dispatch.simulate: true to run safely instead",
		)
	}
	return dispatch.AutoConfirmPolicy(), nil
}

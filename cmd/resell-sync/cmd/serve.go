package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"github.com/resellops/resell-sync/internal/api"
	"github.com/resellops/resell-sync/internal/api/handlers"
	"github.com/resellops/resell-sync/internal/queue"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the webhook server and queue scheduler",
		Long: "Start the HTTP server that receives marketplace sale webhooks,\n" +
			"plus a background sweep of the CSV sale queue on the configured\n" +
			"interval.",
		RunE: runServe,
	}
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log, err := newLogger(cfg)
	if err != nil {
		return err
	}

	policy, err := serverPolicy(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	st, audit, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	dispatcher := newDispatcher(cfg, st, audit, log)

	e := api.NewRouter(api.Config{
		Webhook: handlers.NewWebhookHandler(dispatcher, policy, log),
		Health:  handlers.NewHealthHandler(st),
		APIKey:  cfg.Server.APIKey,
		Logger:  log,
	})
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	// Queue sweep on a fixed interval.
	processor := queue.NewProcessor(cfg.Queue.Path, cfg.Queue.ProcessedPath, dispatcher, policy, log)
	scheduler := cron.New()
	_, err = scheduler.AddFunc(fmt.Sprintf("@every %s", cfg.Queue.Interval), func() {
		if n, err := processor.Run(ctx); err != nil {
			log.Error("queue sweep failed", "error", err)
		} else if n > 0 {
			log.Info("queue sweep complete", "processed", n)
		}
	})
	if err != nil {
		return fmt.Errorf("scheduling queue sweep: %w", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("starting server",
		"addr", addr,
		"simulate", cfg.Dispatch.Simulate,
		"store", cfg.Store.Backend,
		"queue_interval", cfg.Queue.Interval,
	)

	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	log.Info("server stopped")
	return nil
}

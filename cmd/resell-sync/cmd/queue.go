package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/resellops/resell-sync/internal/queue"
)

func queueCmd() *cobra.Command {
	queueRoot := &cobra.Command{
		Use:   "queue",
		Short: "Work with the CSV sale queue",
	}

	queueRoot.AddCommand(queueRunCmd())

	return queueRoot
}

func queueRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Process every pending queue row once",
		Long: "Sweep the CSV queue of pending sales: dispatch each row, append it\n" +
			"to the processed log, and reset the queue file to its header.",
		RunE: runQueueRun,
	}
}

func runQueueRun(_ *cobra.Command, _ []string) error {
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

	ctx := context.Background()

	st, audit, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	dispatcher := newDispatcher(cfg, st, audit, log)
	processor := queue.NewProcessor(cfg.Queue.Path, cfg.Queue.ProcessedPath, dispatcher, policy, log)

	n, err := processor.Run(ctx)
	if err != nil {
		return fmt.Errorf("processing queue: %w", err)
	}

	fmt.Printf("Processed %d queue row(s)\n", n)
	return nil
}

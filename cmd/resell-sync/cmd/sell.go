package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/resellops/resell-sync/internal/dispatch"
)

func sellCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "sell <item-id> <platform>",
		Short: "Record a sale and delist the remaining listings",
		Long: "Record that an item sold on the given marketplace and delist it\n" +
			"from the others. The sale platform itself is never touched.",
		Example: `  # Item sold on Depop: end the eBay listing, flag Poshmark
  resell-sync sell SKU-0042 depop

  # Dry run, nothing is touched
  resell-sync sell SKU-0042 depop --simulate

  # Skip the confirmation prompt
  resell-sync sell SKU-0042 depop --yes`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return runSell(args[0], args[1], yes)
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "skip the confirmation prompt")

	return cmd
}

func runSell(itemID, platformName string, yes bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log, err := newLogger(cfg)
	if err != nil {
		return err
	}

	event, err := dispatch.FromArgs(itemID, platformName)
	if err != nil {
		return fmt.Errorf("invalid sale: %w", err)
	}

	ctx := context.Background()

	st, audit, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	dispatcher := newDispatcher(cfg, st, audit, log)

	policy := dispatch.Policy{Simulate: cfg.Dispatch.Simulate}
	if !policy.Simulate && !yes && !cfg.Dispatch.AutoConfirm {
		policy.Confirm = confirmPrompt(event)
	}

	result, err := dispatcher.Dispatch(ctx, event, policy)
	if err != nil {
		return fmt.Errorf("dispatching sale: %w", err)
	}

	fmt.Printf("Item %s sold on %s (%s mode)\n", event.ItemID(), event.SoldOn(), result.Mode)
	for _, target := range result.Targets {
		line := fmt.Sprintf("  %-10s %s", target, result.Outcomes[target])
		if msg, ok := result.Errors[target]; ok {
			line += ": " + msg
		}
		fmt.Println(line)
	}

	if result.Failed() {
		failed := 0
		for _, o := range result.Outcomes {
			if o == dispatch.OutcomeFailed {
				failed++
			}
		}
		return fmt.Errorf("cleanup failed on %d target(s)", failed)
	}
	return nil
}

// confirmPrompt asks on the terminal before any listing is touched.
// Only a literal YES proceeds.
func confirmPrompt(event dispatch.SaleEvent) func() bool {
	return func() bool {
		fmt.Printf("Item %s sold on %s. The listings on every other marketplace will be ended.\n",
			event.ItemID(), event.SoldOn())
		fmt.Print("Type YES to continue: ")

		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil {
			return false
		}
		return strings.TrimSpace(line) == "YES"
	}
}

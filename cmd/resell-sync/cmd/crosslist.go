package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/resellops/resell-sync/internal/drafts"
	"github.com/resellops/resell-sync/internal/ebay"
	domain "github.com/resellops/resell-sync/pkg/types"
)

// crosslistEvent is the audit event recorded for drafted listings.
const crosslistEvent = "CROSSLIST_DRAFT"

func crosslistCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "crosslist <item-id-or-url>",
		Short: "Draft Depop and Poshmark listings from an eBay item",
		Long: "Fetch an active eBay listing and write platform-ready draft files\n" +
			"for Depop and Poshmark into the drafts directory, along with a JSON\n" +
			"snapshot of the fetched item for later inspection.",
		Example: `  resell-sync crosslist 166123456789
  resell-sync crosslist "https://www.ebay.com/itm/166123456789"`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runCrosslist(args[0])
		},
	}
}

func runCrosslist(arg string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log, err := newLogger(cfg)
	if err != nil {
		return err
	}

	itemID, err := ebay.ExtractItemID(arg)
	if err != nil {
		return fmt.Errorf("resolving item id: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	client := newTradingClient(cfg)
	item, err := client.GetItem(ctx, itemID)
	if err != nil {
		return fmt.Errorf("fetching eBay item %s: %w", itemID, err)
	}

	writer, err := drafts.NewWriter(cfg.Drafts.Dir)
	if err != nil {
		return err
	}
	files, err := writer.WriteCrosslist(item)
	if err != nil {
		return err
	}

	_, audit, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	if err := audit.Append(ctx, domain.AuditEntry{
		Timestamp: time.Now(),
		Event:     crosslistEvent,
		ItemID:    itemID,
		Platform:  domain.PlatformEbay,
		Mode:      domain.ModeReal,
	}); err != nil {
		return fmt.Errorf("recording crosslist: %w", err)
	}

	log.Info("crosslist drafts written", "item_id", itemID, "title", item.Title)

	fmt.Printf("Drafted %q (%s %s)\n", item.Title, item.Currency, item.Price)
	fmt.Println("  depop:    ", files.DepopPath)
	fmt.Println("  poshmark: ", files.PoshmarkPath)
	fmt.Println("  snapshot: ", files.DebugPath)
	return nil
}

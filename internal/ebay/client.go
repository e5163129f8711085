// Package ebay provides a typed eBay Trading API client abstracted
// behind interfaces for testability. Callers see request/response
// structs only; XML never crosses the package boundary.
package ebay

import (
	"context"
)

// Item holds the listing fields resell-sync consumes from GetItem.
type Item struct {
	ItemID          string
	Title           string
	DescriptionHTML string
	Description     string // DescriptionHTML with markup stripped
	Price           string
	Currency        string
	Category        string
	Condition       string
	Brand           string
	Specifics       map[string]string
	PictureURLs     []string
}

// EndReason is the reason code sent with an EndItem call.
type EndReason string

// End reason constants from the Trading API.
const (
	EndReasonNotAvailable EndReason = "NotAvailable"
	EndReasonSold         EndReason = "Sold"
)

// TradingClient defines the interface for the eBay Trading API calls
// resell-sync depends on.
type TradingClient interface {
	// GetItem fetches full listing details for a live or ended listing.
	GetItem(ctx context.Context, itemID string) (*Item, error)
	// EndItem ends an active listing with the given reason.
	EndItem(ctx context.Context, itemID string, reason EndReason) error
}

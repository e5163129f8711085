package platform

import (
	"context"
	"errors"

	"github.com/resellops/resell-sync/internal/ebay"
	domain "github.com/resellops/resell-sync/pkg/types"
)

// EbayAdapter delists via the eBay Trading API EndItem call.
type EbayAdapter struct {
	client ebay.TradingClient
	reason ebay.EndReason
}

// NewEbayAdapter creates an adapter ending listings with the given
// reason. eBay rejects EndItem with reason Sold for listings without a
// completed transaction, so cross-platform cleanup uses NotAvailable.
func NewEbayAdapter(client ebay.TradingClient, reason ebay.EndReason) *EbayAdapter {
	if reason == "" {
		reason = ebay.EndReasonNotAvailable
	}
	return &EbayAdapter{client: client, reason: reason}
}

// Platform implements Adapter.
func (*EbayAdapter) Platform() domain.Platform {
	return domain.PlatformEbay
}

// Delist implements Adapter by ending the eBay listing.
func (a *EbayAdapter) Delist(ctx context.Context, itemID string) error {
	err := a.client.EndItem(ctx, itemID, a.reason)
	if err == nil {
		return nil
	}

	kind := KindTransientFailure
	switch {
	case ebay.IsNotFound(err):
		kind = KindItemNotFound
	case ebay.IsAuthFailure(err):
		kind = KindAuthFailure
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		kind = KindTransientFailure
	}

	return &Error{Kind: kind, Platform: domain.PlatformEbay, Err: err}
}
